package woof

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text", "text"},
		{"COMPACT", "compact"},
		{"json", "json"},
		{" json ", "json"},
		{"yaml", DefaultFormat.String()},
		{"", DefaultFormat.String()},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFormat(tt.in).String())
		})
	}
}

func TestFormatCustom_Name(t *testing.T) {
	f := FormatCustom(func(Entry) string { return "" })
	assert.Equal(t, "custom", f.String())
}

func TestFormats_BuiltinsOnly(t *testing.T) {
	assert.Equal(t, []string{"text", "compact", "json"}, slices.Collect(Formats()))
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"auto", ColorAuto},
		{"Always", ColorAlways},
		{"never", ColorNever},
		{"sometimes", DefaultColors},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColorMode(tt.in))
		})
	}
}

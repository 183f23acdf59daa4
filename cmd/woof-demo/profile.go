package main

import "github.com/pkg/profile"

// startProfile starts a pprof capture for the given mode, or returns nil
// when profiling is not requested. Both the returned controller and a nil
// result are safe to handle with a single deferred Stop check.
func startProfile(mode, dir string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(dir), profile.Quiet)
	default:
		return nil
	}
}

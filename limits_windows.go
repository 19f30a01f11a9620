//go:build windows
// +build windows

package main

// SetLimits is a no-op on Windows, which has no equivalent of a
// per-process open file descriptor rlimit.
func SetLimits() error {
	return nil
}

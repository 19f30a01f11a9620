//go:build !windows
// +build !windows

package main

import "syscall"

// fileLimitWant and fileLimitMin governs the file descriptor limit this
// daemon tries to raise the process to, and the minimum it tolerates
// falling back to. A full node keeps one socket per peer plus the block
// database's open file handles; the default per-process limit on most
// unix systems is too low to comfortably run with many peers.
const (
	fileLimitWant = 2048
	fileLimitMin  = 1024
)

// SetLimits raises the process's open file descriptor limit toward
// fileLimitWant, falling back to whatever the kernel allows down to
// fileLimitMin. No third-party package in the reference pack wraps
// getrlimit/setrlimit; this is a direct syscall, which is the idiomatic
// way the rest of the ecosystem handles it too.
func SetLimits() error {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return err
	}

	if rLimit.Cur >= fileLimitWant {
		return nil
	}

	want := uint64(fileLimitWant)
	if rLimit.Max < want {
		want = rLimit.Max
	}
	if want < fileLimitMin {
		want = fileLimitMin
	}

	rLimit.Cur = want
	return syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
}

//go:build linux || darwin

package main

import (
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// enableCrashForensics raises the core dump soft limit to the hard limit.
func enableCrashForensics() {
	debug.SetTraceback("crash")

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		return
	}
	if limit.Cur >= limit.Max {
		return
	}
	limit.Cur = limit.Max
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// querySystemIdentity 通过 uname(2) 读取系统信息
func querySystemIdentity() (*SystemIdentity, error) {
	var uname unix.Utsname
	if err := unix.Uname(&uname); err != nil {
		return nil, &OSQueryError{Op: "uname", Err: fmt.Errorf("failed to get system info using Uname: %w", err)}
	}

	return &SystemIdentity{
		Sysname:  unix.ByteSliceToString(uname.Sysname[:]),
		Nodename: unix.ByteSliceToString(uname.Nodename[:]),
		Release:  unix.ByteSliceToString(uname.Release[:]),
		Version:  unix.ByteSliceToString(uname.Version[:]),
		Machine:  unix.ByteSliceToString(uname.Machine[:]),
	}, nil
}

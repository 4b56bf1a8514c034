//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package main

import "runtime"

// querySystemIdentity 检测系统信息 (Fallback for other OS)
// 这些系统没有 uname 接口，不回退到编译时的 runtime.GOARCH
func querySystemIdentity() (*SystemIdentity, error) {
	return nil, &OSQueryError{Op: "uname (" + runtime.GOOS + ")", Err: ErrUnsupportedOS}
}

package main

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOS 当前操作系统没有 uname 接口
	ErrUnsupportedOS = errors.New("uname is not supported on this OS")
	// ErrEmptyMachine 操作系统返回了空的架构字段
	ErrEmptyMachine = errors.New("empty machine field")
)

// SystemIdentity 表示一次 uname 查询的结果
type SystemIdentity struct {
	Sysname  string // Sysname 操作系统名 (例如 "Linux")
	Nodename string // Nodename 网络节点名
	Release  string // Release 内核版本号
	Version  string // Version 内核构建信息
	Machine  string // Machine 硬件架构 (例如 "x86_64", "aarch64")
}

// OSQueryError 表示无法从操作系统读取系统信息
type OSQueryError struct {
	Op  string
	Err error
}

func (e *OSQueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OSQueryError) Unwrap() error {
	return e.Err
}

// identityQuery 查询当前主机的系统信息
type identityQuery func() (*SystemIdentity, error)

// getArchitecture 返回操作系统报告的硬件架构名，不做映射
func getArchitecture(query identityQuery) (string, error) {
	identity, err := query()
	if err != nil {
		var queryErr *OSQueryError
		if errors.As(err, &queryErr) {
			return "", err
		}
		return "", &OSQueryError{Op: "uname", Err: err}
	}

	if identity == nil || identity.Machine == "" {
		return "", &OSQueryError{Op: "uname", Err: ErrEmptyMachine}
	}

	return identity.Machine, nil
}

package main

import (
	"io"
	"os"
)

const (
	// exitOK 成功输出架构名
	exitOK = 0
	// exitOSQueryFailed 无法从操作系统读取系统信息
	exitOSQueryFailed = 1
	// exitWriteFailed 架构名无法写入标准输出
	exitWriteFailed = 1
)

// run 查询系统架构并写入 stdout，返回进程退出码
// 失败时 stdout 不写入任何内容，诊断信息写入 stderr
func run(stdout, stderr io.Writer, query identityQuery) int {
	logger := newLogger(stderr)

	architecture, err := getArchitecture(query)
	if err != nil {
		logger.WithError(err).Error("Failed to query system architecture")
		return exitOSQueryFailed
	}

	if _, err := io.WriteString(stdout, architecture+"\n"); err != nil {
		logger.WithError(err).Error("Failed to write system architecture")
		return exitWriteFailed
	}

	return exitOK
}

// main 函数程序入口点，不解析任何命令行参数
func main() {
	os.Exit(run(os.Stdout, os.Stderr, querySystemIdentity))
}

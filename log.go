package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger 创建写入 w 的诊断日志，成功路径上不输出任何日志
func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = w
	logger.Level = logrus.InfoLevel
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return logger
}

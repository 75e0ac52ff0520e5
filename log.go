// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/contentglob

package contentglob

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// logger is the package logger stored atomically.
var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "contentglob",
	}))
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger.Load()
}

// SetLogger replaces the package logger. Nil is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

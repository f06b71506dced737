// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

type printf func(string, ...interface{})

var (
	p         atomic.Pointer[printf]
	developer atomic.Bool
)

func init() {
	SetPrintf(nil)
}

func slogPrintf(format string, v ...interface{}) {
	slog.Info(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
}

// SetPrintf installs the console printer. A nil printer restores the
// default slog output.
func SetPrintf(f func(string, ...interface{})) {
	if f == nil {
		f = slogPrintf
	}
	pf := printf(f)
	p.Store(&pf)
}

// SetDeveloper switches developer messages on or off.
func SetDeveloper(on bool) {
	developer.Store(on)
}

func Developer() bool {
	return developer.Load()
}

func Printf(format string, v ...interface{}) {
	(*p.Load())(format, v...)
}

// DPrintf prints only in developer mode.
func DPrintf(format string, v ...interface{}) {
	if !developer.Load() {
		return
	}
	(*p.Load())(format, v...)
}

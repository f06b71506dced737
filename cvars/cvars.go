// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"kextrace/conlog"
	"kextrace/cvar"
)

var (
	Developer       *cvar.Cvar
	TraceClimbAngle *cvar.Cvar
	TraceMaxHops    *cvar.Cvar
	TraceStepHeight *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	TraceClimbAngle = cvar.MustRegister("trace_climbangle", "140", cvar.ARCHIVE) // degrees
	TraceMaxHops = cvar.MustRegister("trace_maxhops", "1024", cvar.NONE)
	TraceStepHeight = cvar.MustRegister("trace_stepheight", "12", cvar.ARCHIVE)

	Developer.SetCallback(func(cv *cvar.Cvar) {
		on := cv.Bool()
		if on && !conlog.Developer() {
			conlog.SetDeveloper(true)
			cvar.List("trace_")
			return
		}
		conlog.SetDeveloper(on)
	})
}

// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"kextrace/conlog"
)

var (
	mu         sync.RWMutex
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	// cvar flags bitfield
	NONE    flag = 0
	ARCHIVE flag = 1
	NOTIFY  flag = 1 << 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	notify   bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
}

func All() []*Cvar {
	mu.RLock()
	defer mu.RUnlock()
	r := make([]*Cvar, len(cvarArray))
	copy(r, cvarArray)
	return r
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) Notify() bool {
	return cv.notify
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

// SetCallback installs cb and calls it once with the current value.
func (cv *Cvar) SetCallback(cb CallbackFunc) {
	mu.Lock()
	cv.callback = cb
	mu.Unlock()
	if cb != nil {
		cb(cv)
	}
}

func (cv *Cvar) SetByString(s string) {
	mu.Lock()
	if cv.rom {
		mu.Unlock()
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(strings.TrimSpace(s), 32)
	cv.value = float32(pf)
	cb := cv.callback
	mu.Unlock()
	if cv.notify {
		conlog.Printf("\"%s\" changed to \"%s\"\n", cv.name, s)
	}
	if cb != nil {
		cb(cv)
	}
}

func (cv *Cvar) Reset() {
	mu.RLock()
	d := cv.defaultValue
	mu.RUnlock()
	cv.SetByString(d)
}

func (cv *Cvar) String() string {
	mu.RLock()
	defer mu.RUnlock()
	return cv.stringValue
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	mu.RLock()
	defer mu.RUnlock()
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Bool() bool {
	return cv.Value() != 0
}

func Get(name string) (*Cvar, bool) {
	mu.RLock()
	defer mu.RUnlock()
	cv, ok := cvarByName[strings.ToLower(name)]
	return cv, ok
}

// create expects mu to be held.
func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value, stringValue: value}
	pf, _ := strconv.ParseFloat(value, 32)
	cv.value = float32(pf)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	name = strings.ToLower(name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("can't register variable %s, already defined", name)
	}

	cv := create(name, value)

	if flags&ARCHIVE != 0 {
		cv.archive = true
	}
	if flags&NOTIFY != 0 {
		cv.notify = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}

	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(err)
	}
	return cv
}

// Execute handles a console line of the form "name [value]". It reports
// whether the line named a cvar. Unknown names are created as user cvars
// when the line starts with "set".
func Execute(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	if strings.EqualFold(args[0], "set") {
		return true, set(args[1:])
	}
	cv, ok := Get(args[0])
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1])
	return true, nil
}

func set(args []string) error {
	if len(args) < 2 {
		return errors.New("set <cvar> <value>")
	}
	if cv, ok := Get(args[0]); ok {
		cv.SetByString(args[1])
		return nil
	}
	mu.Lock()
	cv := create(strings.ToLower(args[0]), args[1])
	cv.user = true
	mu.Unlock()
	return nil
}

// List prints the cvars whose name starts with prefix, sorted by name.
// An empty prefix lists all of them.
func List(prefix string) {
	var cvars []*Cvar
	for _, cv := range All() {
		if strings.HasPrefix(cv.name, prefix) {
			cvars = append(cvars, cv)
		}
	}
	sort.Slice(cvars, func(i, j int) bool { return cvars[i].name < cvars[j].name })
	for _, v := range cvars {
		conlog.Printf("%s%s %s \"%s\"\n",
			func() string {
				if v.Archive() {
					return "*"
				}
				return " "
			}(),
			func() string {
				if v.Notify() {
					return "s"
				}
				return " "
			}(),
			v.Name(),
			v.String())
	}
	conlog.Printf("%v cvars\n", len(cvars))
}

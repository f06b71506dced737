// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"sync"
	"testing"
)

func TestDPrintfOnlyInDeveloperMode(t *testing.T) {
	var got []string
	SetPrintf(func(f string, v ...interface{}) {
		got = append(got, fmt.Sprintf(f, v...))
	})
	defer SetPrintf(nil)
	defer SetDeveloper(false)

	SetDeveloper(false)
	DPrintf("hidden %d\n", 1)
	if len(got) != 0 {
		t.Errorf("DPrintf printed %q outside developer mode", got)
	}
	SetDeveloper(true)
	DPrintf("shown %d\n", 2)
	Printf("always\n")
	if len(got) != 2 || got[0] != "shown 2\n" || got[1] != "always\n" {
		t.Errorf("printed %q want [\"shown 2\\n\" \"always\\n\"]", got)
	}
}

func TestSetPrintfConcurrent(t *testing.T) {
	defer SetPrintf(nil)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetPrintf(func(string, ...interface{}) {})
		}()
		go func() {
			defer wg.Done()
			Printf("from a trace %d\n", 1)
		}()
	}
	wg.Wait()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/avlgrid/avl"
	"github.com/bitmark-inc/avlgrid/background"
)

type builder struct {
	start int32
	tree  *avl.Tree
	err   error
}

func TestBackground(t *testing.T) {

	proc1 := &builder{start: 0}
	proc2 := &builder{start: 1000000}

	// list of background processes to start
	processes := background.Processes{
		proc1,
		proc2,
	}

	p := background.Start(processes, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()
	p.Stop() // second stop is harmless

	for i, proc := range []*builder{proc1, proc2} {
		if nil != proc.err {
			t.Fatalf("%d: insert error: %s", i, proc.err)
		}
		if proc.tree.IsEmpty() {
			t.Fatalf("%d: nothing was inserted", i)
		}
		if err := proc.tree.Check(); nil != err {
			t.Fatalf("%d: inconsistent tree: %s", i, err)
		}
		if proc.start != proc.tree.Values()[0] {
			t.Fatalf("%d: first value: %d  expected: %d", i, proc.tree.Values()[0], proc.start)
		}
		proc.tree.Destroy()
	}
}

// each process owns its tree so no locking is needed
func (state *builder) Run(args interface{}, shutdown <-chan struct{}) {

	state.tree = avl.NewWithAllocator(avl.NewAllocator(0))

	v := state.start
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		if _, err := state.tree.Insert(v); nil != err {
			state.err = err
			return
		}
		v += 1
		time.Sleep(time.Millisecond)
	}
}

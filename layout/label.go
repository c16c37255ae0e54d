// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"strconv"

	"github.com/bitmark-inc/avlgrid/fault"
)

// LabelMode - how a node value is turned into text
type LabelMode int

// label modes
const (
	LabelAuto  LabelMode = iota // full decimal if it fits the slot else the low digit
	LabelDigit                  // always the low order decimal digit
	LabelFull                   // always full decimal, error if it does not fit
)

// String - name of the mode
func (m LabelMode) String() string {
	switch m {
	case LabelAuto:
		return "auto"
	case LabelDigit:
		return "digit"
	case LabelFull:
		return "full"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseLabelMode - convert a name back to a mode
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "", "auto":
		return LabelAuto, nil
	case "digit":
		return LabelDigit, nil
	case "full":
		return LabelFull, nil
	default:
		return LabelAuto, fault.ErrInvalidLabelMode
	}
}

// lowDigit - the low order decimal digit of the magnitude
func lowDigit(value int32) string {
	v := int64(value)
	if v < 0 {
		v = -v
	}
	return string('0' + byte(v%10))
}

// labelText - text for a value in a slot of span columns
//
// the text starts at the centre column so it must fit in the right
// half of the slot
func labelText(value int32, span int, mode LabelMode) (string, error) {
	room := span / 2
	if room < 1 {
		room = 1
	}

	switch mode {
	case LabelDigit:
		return lowDigit(value), nil

	case LabelFull:
		text := strconv.FormatInt(int64(value), 10)
		if len(text) > room {
			return "", fault.ErrLabelTooWide
		}
		return text, nil

	default:
		text := strconv.FormatInt(int64(value), 10)
		if len(text) > room {
			return lowDigit(value), nil
		}
		return text, nil
	}
}

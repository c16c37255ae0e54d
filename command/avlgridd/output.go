// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avlgrid/util"
)

//go:generate mockgen -source=output.go -destination=mocks/output.go -package=mocks

// Output - destination for each rendering
type Output interface {
	Write(text string) error
}

type fileOutput struct {
	fileName string
}

// replace the whole file so a reader never sees a partial grid
func newFileOutput(fileName string) Output {
	return &fileOutput{
		fileName: fileName,
	}
}

func (f *fileOutput) Write(text string) error {
	return util.WriteFileAtomic(f.fileName, []byte(text), 0644)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlgrid/background"
	"github.com/bitmark-inc/avlgrid/command/avlgridd/mocks"
	"github.com/bitmark-inc/avlgrid/fault"
)

const (
	valuesFileName = "values.txt"
	threeTwoOne    = "  2  \n     \n 1 3 \n"
)

func testConfiguration(dir string) *Configuration {
	return &Configuration{
		DataDirectory: dir,
		ValuesFile:    filepath.Join(dir, valuesFileName),
		OutputFile:    filepath.Join(dir, defaultOutputFile),
		RebuildRate:   1000,
		RebuildBurst:  1,
		CacheExpiry:   60,
		Render: RenderType{
			Labels:        "auto",
			Filler:        " ",
			MaximumHeight: 16,
		},
	}
}

func setupRenderer(t *testing.T, cfg *Configuration, output Output) *Renderer {
	r, err := newRenderer(cfg, output, newWatcherChannel(), logger.New(logCategory))
	require.NoError(t, err, "new renderer")
	return r
}

func TestRendererRefresh(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "3 2 1\n",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	output := mocks.NewMockOutput(ctl)
	output.EXPECT().Write(threeTwoOne).Return(nil).Times(2)

	r := setupRenderer(t, testConfiguration(dir), output)

	assert.NoError(t, r.refresh(), "first refresh")
	assert.Equal(t, uint64(1), r.rebuilds.Uint64(), "rebuilds")
	assert.Equal(t, uint64(0), r.cacheHits.Uint64(), "cache hits")

	assert.NoError(t, r.refresh(), "second refresh")
	assert.Equal(t, uint64(1), r.rebuilds.Uint64(), "rebuilds")
	assert.Equal(t, uint64(1), r.cacheHits.Uint64(), "cache hits")
	assert.Equal(t, 1, r.cache.count(), "cached renderings")

	assert.Equal(t, 0, r.allocator.Live(), "nodes still live after render")
}

func TestRendererEmptyValues(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "# nothing yet\n",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	output := mocks.NewMockOutput(ctl)
	output.EXPECT().Write("(empty tree)\n").Return(nil).Times(1)

	r := setupRenderer(t, testConfiguration(dir), output)
	assert.NoError(t, r.refresh(), "refresh")
}

func TestRendererErrors(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "1 2 3 4 5\n",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	output := mocks.NewMockOutput(ctl)
	output.EXPECT().Write(gomock.Any()).Times(0)

	cfg := testConfiguration(dir)
	cfg.NodeLimit = 3
	r := setupRenderer(t, cfg, output)

	assert.Equal(t, fault.ErrAllocationFailure, r.refresh(), "node limit")
	assert.Equal(t, 0, r.allocator.Live(), "partial tree was not released")

	err := ioutil.WriteFile(cfg.ValuesFile, []byte("1 two 3\n"), 0600)
	require.NoError(t, err, "write values")
	assert.True(t, fault.IsErrInvalid(r.refresh()), "invalid value")

	require.NoError(t, os.Remove(cfg.ValuesFile), "remove values")
	assert.Equal(t, fault.ErrNotFoundValuesFile, r.refresh(), "missing values")

	assert.Equal(t, uint64(3), r.failures.Uint64(), "failures")
	assert.Equal(t, uint64(0), r.rebuilds.Uint64(), "rebuilds")
}

func TestRendererOutputError(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "3,2,1",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failed := errors.New("disk full")

	output := mocks.NewMockOutput(ctl)
	output.EXPECT().Write(threeTwoOne).Return(failed).Times(1)

	r := setupRenderer(t, testConfiguration(dir), output)
	assert.Equal(t, failed, r.refresh(), "output error")
	assert.Equal(t, uint64(1), r.failures.Uint64(), "failures")
}

func TestRendererTooTall(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "0 1 2 3 4 5 6 7 8 9",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	output := mocks.NewMockOutput(ctl)
	output.EXPECT().Write(gomock.Any()).Times(0)

	cfg := testConfiguration(dir)
	cfg.Render.MaximumHeight = 3
	r := setupRenderer(t, cfg, output)

	assert.Equal(t, fault.ErrTreeTooTall, r.refresh(), "too tall")
}

func TestNewRendererErrors(t *testing.T) {
	cfg := testConfiguration(".")

	_, err := newRenderer(cfg, nil, newWatcherChannel(), nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger")

	cfg.Render.Labels = "none"
	_, err = newRenderer(cfg, nil, newWatcherChannel(), logger.New(logCategory))
	assert.Equal(t, fault.ErrInvalidLabelMode, err, "label mode")
}

func TestRendererRun(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "3 2 1",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	written := make(chan string, 10)
	record := func(text string) {
		written <- text
	}

	output := mocks.NewMockOutput(ctl)
	gomock.InOrder(
		output.EXPECT().Write(threeTwoOne).Do(record).Return(nil),
		output.EXPECT().Write(" 1 \n").Do(record).Return(nil),
		output.EXPECT().Write(threeTwoOne).Do(record).Return(nil),
	)

	cfg := testConfiguration(dir)
	r := setupRenderer(t, cfg, output)

	p := background.Start(background.Processes{r}, nil)
	defer p.Stop()

	wait := func(expected string) {
		select {
		case text := <-written:
			assert.Equal(t, expected, text, "written text")
		case <-time.After(5 * time.Second):
			t.Fatalf("timeout waiting for: %q", expected)
		}
	}

	// initial render
	wait(threeTwoOne)

	require.NoError(t, ioutil.WriteFile(cfg.ValuesFile, []byte("1"), 0600), "write values")
	r.channels.change <- struct{}{}
	wait(" 1 \n")

	// a removal keeps the last output
	r.channels.remove <- struct{}{}

	require.NoError(t, ioutil.WriteFile(cfg.ValuesFile, []byte("3 2 1"), 0600), "write values")
	r.channels.change <- struct{}{}
	wait(threeTwoOne)

	p.Stop()

	assert.Equal(t, uint64(2), r.rebuilds.Uint64(), "rebuilds")
	assert.Equal(t, uint64(1), r.cacheHits.Uint64(), "cache hits")
}

func TestRendererStopDuringRateLimit(t *testing.T) {
	dir := makeDataDirectory(t, map[string]string{
		valuesFileName: "1",
	})
	defer os.RemoveAll(dir)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	done := make(chan struct{})

	output := mocks.NewMockOutput(ctl)
	output.EXPECT().Write(" 1 \n").Do(func(string) { close(done) }).Return(nil).Times(1)

	cfg := testConfiguration(dir)
	cfg.RebuildRate = 0.01
	r := setupRenderer(t, cfg, output)

	// use up the single token so the next rebuild must wait
	r.limiter.Allow()

	p := background.Start(background.Processes{r}, nil)
	<-done

	r.channels.change <- struct{}{}
	time.Sleep(20 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("renderer did not stop while rate limited")
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlgrid/avl"
	"github.com/bitmark-inc/avlgrid/counter"
	"github.com/bitmark-inc/avlgrid/fault"
	"github.com/bitmark-inc/avlgrid/layout"
	"github.com/bitmark-inc/avlgrid/ratelimit"
	"github.com/bitmark-inc/avlgrid/values"
)

const (
	rendererLoggerPrefix = "renderer"

	// a pool larger than this is released after a rebuild
	poolTrimThreshold = 4096
)

// Renderer - rebuild and draw the tree each time the values change
//
// the tree exists only inside refresh so no other goroutine can see it
type Renderer struct {
	log        *logger.L
	valuesFile string
	options    layout.Options
	allocator  *avl.Allocator
	limiter    *rate.Limiter
	cache      *renderCache
	output     Output
	channels   WatcherChannel

	rebuilds  counter.Counter
	cacheHits counter.Counter
	failures  counter.Counter
}

func newRenderer(cfg *Configuration, output Output, channels WatcherChannel, log *logger.L) (*Renderer, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	options, err := cfg.renderOptions()
	if nil != err {
		return nil, err
	}

	return &Renderer{
		log:        log,
		valuesFile: cfg.ValuesFile,
		options:    options,
		allocator:  avl.NewAllocator(cfg.NodeLimit),
		limiter:    rate.NewLimiter(rate.Limit(cfg.RebuildRate), cfg.RebuildBurst),
		cache:      newRenderCache(cfg.cacheExpiry()),
		output:     output,
		channels:   channels,
	}, nil
}

// Run - background process: render once then again on each change
func (r *Renderer) Run(args interface{}, shutdown <-chan struct{}) {

	log := r.log
	log.Info("starting…")

	if err := r.refresh(); nil != err {
		log.Errorf("initial render error: %s", err)
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channels.remove:
			log.Warnf("values file: %q removed, keeping last output", r.valuesFile)

		case <-r.channels.change:
			err := ratelimit.LimitOrCancel(r.limiter, shutdown)
			if fault.ErrCancelled == err {
				break loop
			} else if nil != err {
				log.Errorf("rate limit error: %s", err)
				continue loop
			}
			if err := r.refresh(); nil != err {
				log.Errorf("render error: %s", err)
			}
		}
	}

	log.Infof("rebuilds: %d  cache hits: %d  cached: %d  failures: %d",
		r.rebuilds.Uint64(), r.cacheHits.Uint64(), r.cache.count(), r.failures.Uint64())
	log.Info("stopped")
}

// refresh - read the values file and write its rendering
func (r *Renderer) refresh() error {
	list, err := values.ReadFile(r.valuesFile)
	if nil != err {
		r.failures.Increment()
		return err
	}

	key := values.Key(list)
	if text, ok := r.cache.get(key); ok {
		r.cacheHits.Increment()
		r.log.Debugf("cache hit: %d values", len(list))
		return r.write(text)
	}

	text, err := r.render(list)
	if nil != err {
		r.failures.Increment()
		return err
	}
	r.cache.set(key, text)
	r.rebuilds.Increment()

	return r.write(text)
}

func (r *Renderer) render(list []int32) (string, error) {
	tree, err := values.Build(r.allocator, list)
	if nil != err {
		return "", err
	}
	defer func() {
		tree.Destroy()
		if r.allocator.Free() > poolTrimThreshold {
			r.log.Debugf("trimmed pool: %d nodes", r.allocator.Trim())
		}
	}()

	if err := tree.Check(); nil != err {
		r.log.Criticalf("built tree failed check: %s", err)
		return "", err
	}

	r.log.Infof("built tree: %d nodes  height: %d", tree.Count(), tree.Height())
	return layout.RenderWithOptions(tree.Root(), r.options)
}

func (r *Renderer) write(text string) error {
	if err := r.output.Write(text); nil != err {
		r.failures.Increment()
		return err
	}
	return nil
}

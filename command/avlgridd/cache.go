// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// renderCache - renderings keyed by the value list in insertion order
//
// insertion order determines the tree shape so the same set of values
// in a different order is a different key
type renderCache struct {
	c *cache.Cache
}

func newRenderCache(expiry time.Duration) *renderCache {
	return &renderCache{
		c: cache.New(expiry, 2*expiry),
	}
}

func (r *renderCache) get(key string) (string, bool) {
	v, found := r.c.Get(key)
	if !found {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}

func (r *renderCache) set(key string, text string) {
	r.c.SetDefault(key, text)
}

func (r *renderCache) count() int {
	return r.c.ItemCount()
}

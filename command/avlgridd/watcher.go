// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlgrid/fault"
)

const (
	watcherLoggerPrefix = "watcher"
)

// WatcherChannel - single slot notification channels, a pending
// notification absorbs any further events of the same kind
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcher - report changes to the values file
//
// the containing directory is watched so that editors which replace
// the file by rename are still seen
type FileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels WatcherChannel
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (*FileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	directory := filepath.Dir(filePath)
	err = watcher.Add(directory)
	if nil != err {
		log.Errorf("watcher add: %q  error: %s", directory, err)
		watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
	}, nil
}

// Run - background process forwarding file system events
func (w *FileWatcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.process(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	if err := w.watcher.Close(); nil != err {
		log.Errorf("watcher close error: %s", err)
	}
	log.Info("stopped")
}

func (w *FileWatcher) process(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.filePath {
		w.log.Debugf("discard event: %v", event)
		return
	}
	w.log.Debugf("file event: %v", event)

	switch {
	case watcherEventFileRemove(event):
		w.log.Warnf("file %q removed", w.filePath)
		w.sendEvent(w.channels.remove, "remove")
	case watcherEventFileChange(event):
		w.sendEvent(w.channels.change, "change")
	}
}

func (w *FileWatcher) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *FileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

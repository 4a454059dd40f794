// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/logger"
)

// WatcherChannel - notifications about the watched file
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

// FileWatcherData - watch one file for changes
//
// the directory is watched so that editors replacing the file are seen
type FileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (*FileWatcherData, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ConfigurationFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
	}, nil
}

// Run - forward file events until shutdown
func (w *FileWatcherData) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			log.Infof("file event: %v", event)

			if watcherEventFileRemove(event) {
				log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				continue loop
			}

			if watcherEventFileChange(event) {
				log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}
		}
	}

	w.watcher.Close()
	log.Info("stopped")
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
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

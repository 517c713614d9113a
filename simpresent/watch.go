// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simpresent

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reconfigures the platform with the profile in the given file
// whenever the file changes, until ctx is done. The surface chain
// becomes out of date on every change, so the next frame recreates it.
// changed, if non-nil, is called after each successful reload.
// The directory of the file is watched, so that editors that replace
// the file are handled.
func (p *Platform) Watch(ctx context.Context, filename string, changed func(pr *Profile)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		watcher.Close()
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				pr, err := Open(abs)
				if err != nil {
					slog.Error("simpresent: reloading profile", "file", abs, "err", err)
					continue
				}
				p.Reconfigure(pr)
				slog.Info("simpresent: profile reloaded", "file", abs, "profile", pr.Name)
				if changed != nil {
					changed(pr)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("simpresent: profile watcher error: " + err.Error())
			}
		}
	}()
	return nil
}

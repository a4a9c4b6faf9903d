package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchCmd regenerates on every change to the schema file or the templates
// directory. Generation failures are logged and watching continues; only a
// watcher failure or a signal ends the loop.
type WatchCmd struct {
	GenerateCmd `embed:""`

	Debounce time.Duration `default:"250ms" help:"Quiet period after a change before regenerating."`
}

// Run is called by Kong when the watch command is executed.
func (c *WatchCmd) Run(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(c.Templates); err != nil {
		return err
	}
	// Watch the schema's directory rather than the file: editors that save
	// via rename would otherwise drop the watch after the first change.
	if err := w.Add(filepath.Dir(c.Schema)); err != nil {
		return err
	}

	if err := c.generate(ctx, logger); err != nil {
		logger.Error("generation failed", zap.Error(err))
	}
	logger.Info("watching for changes",
		zap.String("templates", c.Templates), zap.String("schema", c.Schema))

	timer := time.NewTimer(c.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !c.relevant(ev) {
				continue
			}
			logger.Debug("change detected",
				zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(c.Debounce)
			pending = true
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-timer.C:
			pending = false
			if err := c.generate(ctx, logger); err != nil {
				logger.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}

// relevant filters watcher noise down to the schema file and template files.
func (c *WatchCmd) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if filepath.Base(ev.Name) == filepath.Base(c.Schema) {
		return true
	}
	return strings.HasSuffix(ev.Name, ".tmpl")
}

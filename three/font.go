//go:build js

package three

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"syscall/js"

	"github.com/mokiat/lacking/util/async"
)

// Scheduler hands work back to the animation loop. *loop.Loop implements it.
type Scheduler interface {
	Schedule(fn func())
}

type fontPayload struct {
	data string
}

type fontEntry struct {
	font    js.Value
	loaded  bool
	waiters []func(js.Value, error)
}

// FontCache downloads typeface fonts once per URL and shares the parsed
// font between all text meshes. Callbacks run from the animation loop.
type FontCache struct {
	scheduler Scheduler
	client    *http.Client
	entries   map[string]*fontEntry
}

func NewFontCache(scheduler Scheduler) *FontCache {
	return &FontCache{
		scheduler: scheduler,
		client:    http.DefaultClient,
		entries:   make(map[string]*fontEntry),
	}
}

// Load calls cb with the font at url. A failed download is not cached, so
// the next Load tries again.
func (c *FontCache) Load(url string, cb func(font js.Value, err error)) {
	if entry, ok := c.entries[url]; ok {
		if entry.loaded {
			cb(entry.font, nil)
		} else {
			entry.waiters = append(entry.waiters, cb)
		}
		return
	}
	entry := &fontEntry{
		waiters: []func(js.Value, error){cb},
	}
	c.entries[url] = entry

	slog.Info("Loading font", slog.String("url", url))
	var payload fontPayload
	promise := async.InjectionPromise(c.fetch(url, &payload), &payload)
	promise.OnSuccess(func(payload *fontPayload) {
		c.scheduler.Schedule(func() {
			c.resolve(url, payload.data)
		})
	})
	promise.OnError(func(err error) {
		c.scheduler.Schedule(func() {
			c.fail(url, err)
		})
	})
}

func (c *FontCache) fetch(url string, target *fontPayload) async.Operation {
	return async.NewFuncOperation(func() error {
		resp, err := c.client.Get(url)
		if err != nil {
			return fmt.Errorf("failed to fetch font: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("failed to fetch font: status %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		target.data = string(data)
		return nil
	})
}

func (c *FontCache) resolve(url, data string) {
	entry, ok := c.entries[url]
	if !ok {
		return
	}
	font, err := parseFont(data)
	if err != nil {
		c.fail(url, err)
		return
	}
	entry.font = font
	entry.loaded = true
	waiters := entry.waiters
	entry.waiters = nil

	slog.Info("Font loaded", slog.String("url", url))
	for _, cb := range waiters {
		cb(font, nil)
	}
}

func (c *FontCache) fail(url string, err error) {
	entry, ok := c.entries[url]
	if !ok {
		return
	}
	delete(c.entries, url)

	slog.Error("Failed to load font",
		slog.String("url", url),
		slog.String("error", err.Error()),
	)
	for _, cb := range entry.waiters {
		cb(js.Undefined(), err)
	}
}

func parseFont(data string) (font js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse font: %v", r)
		}
	}()
	loader := Addon("FontLoader")
	if !loader.Truthy() {
		return js.Undefined(), fmt.Errorf("FontLoader add-on is not loaded")
	}
	return loader.New().Call("parse", jsJSON.Call("parse", data)), nil
}

//go:build js

package three

import (
	"fmt"
	"syscall/js"

	"github.com/nobonobo/memory-land/gallery"
)

var _ gallery.Store = (*LocalStorage)(nil)

// LocalStorage is a gallery.Store backed by window.localStorage.
type LocalStorage struct {
	value js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		value: window.Get("localStorage"),
	}
}

func (s *LocalStorage) Get(key string) (string, bool) {
	item := s.value.Call("getItem", key)
	if item.IsNull() || item.IsUndefined() {
		return "", false
	}
	return item.String(), true
}

// Set stores value under key. Quota errors thrown by the browser are
// returned instead of panicking.
func (s *LocalStorage) Set(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("localStorage: %v", r)
		}
	}()
	s.value.Call("setItem", key, value)
	return nil
}

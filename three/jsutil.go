//go:build js

// Package three binds the gallery and earth scenes to three.js through
// syscall/js. The host page exposes three.js as window.THREE and the
// example add-ons as window.THREE_ADDONS.
package three

import (
	"fmt"
	"net/url"
	"syscall/js"
)

var (
	document = js.Global().Get("document")
	window   = js.Global().Get("window")
	location = js.Global().Get("location")
	jsJSON   = js.Global().Get("JSON")
	THREE    = js.Global().Get("THREE")
	params   url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
}

func Document() js.Value { return document }

func Window() js.Value { return window }

func Global() js.Value { return THREE }

// Params returns the query parameters of the page URL.
func Params() url.Values {
	return params
}

// New constructs THREE.<class> with args.
func New(class string, args ...any) js.Value {
	return THREE.Get(class).New(args...)
}

// Addon returns window.THREE_ADDONS.<name>.
func Addon(name string) js.Value {
	addons := js.Global().Get("THREE_ADDONS")
	if !addons.Truthy() {
		return js.Undefined()
	}
	return addons.Get(name)
}

// RequireAddons makes sure every named add-on is available, importing the
// missing ones from their module paths. It blocks until the imports finish
// and must not be called from a JS callback.
func RequireAddons(modules map[string]string) error {
	addons := js.Global().Get("THREE_ADDONS")
	if !addons.Truthy() {
		addons = js.Global().Get("Object").New()
		js.Global().Set("THREE_ADDONS", addons)
	}
	for name, module := range modules {
		if addons.Get(name).Truthy() {
			continue
		}
		value, err := Await(Import(module))
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", module, err)
		}
		if !value.Get(name).Truthy() {
			return fmt.Errorf("module %s has no export %s", module, name)
		}
		addons.Set(name, value.Get(name))
	}
	return nil
}

// Listen registers fn for event on target. The returned function is kept
// alive for the lifetime of the page.
func Listen(target js.Value, event string, fn func(event js.Value)) js.Func {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var e js.Value
		if len(args) > 0 {
			e = args[0]
		}
		fn(e)
		return nil
	})
	target.Call("addEventListener", event, cb)
	return cb
}

type Promise[T any] interface {
	Then(cb func(value T)) Promise[T]
	Catch(cb func(err error)) Promise[T]
}

var _ Promise[struct{}] = goPromise[struct{}]{}

type goPromise[T any] struct {
	jsValue js.Value
	convert func(value js.Value) T
}

func (g goPromise[T]) Then(cb func(value T)) Promise[T] {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer jsFunc.Release()
		cb(g.convert(args[0]))
		return nil
	})
	g.jsValue.Call("then", jsFunc)
	return g
}

func (g goPromise[T]) Catch(cb func(err error)) Promise[T] {
	var jsFunc js.Func
	jsFunc = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer jsFunc.Release()
		cb(js.Error{
			Value: args[0],
		})
		return js.Undefined()
	})
	g.jsValue.Call("catch", jsFunc)
	return g
}

// Import loads an ES module by URL or import-map name.
func Import(url string) Promise[js.Value] {
	return goPromise[js.Value]{
		jsValue: js.Global().Call("import", url),
		convert: func(value js.Value) js.Value {
			return value
		},
	}
}

// Await blocks until promise settles.
func Await[T any](promise Promise[T]) (T, error) {
	type result struct {
		value T
		err   error
	}
	ch := make(chan result, 1)
	promise.
		Then(func(value T) { ch <- result{value: value} }).
		Catch(func(err error) { ch <- result{err: err} })
	r := <-ch
	return r.value, r.err
}

//go:build !js

package main

import "errors"

func runApplication() error {
	return errors.New("earth runs in the browser, build it with GOOS=js GOARCH=wasm")
}

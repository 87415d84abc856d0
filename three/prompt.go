//go:build js

package three

import "github.com/nobonobo/memory-land/gallery"

var _ gallery.Prompter = WindowPrompter{}

// WindowPrompter asks with window.prompt.
type WindowPrompter struct{}

func (WindowPrompter) Prompt(message string) (string, bool) {
	result := window.Call("prompt", message)
	if result.IsNull() || result.IsUndefined() {
		return "", false
	}
	return result.String(), true
}

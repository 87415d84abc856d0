//go:build js

package main

import (
	"syscall/js"

	"github.com/nobonobo/memory-land/intro"
	"github.com/nobonobo/memory-land/three"
)

const (
	splashTitle = "Welcome to MemoryLand"
	splashText  = "This is an interactive gallery where you can create your space and find your peace."
)

// newSplashStages builds the splash elements and returns the callbacks that
// animate them through their CSS classes.
func newSplashStages(assetBase string) intro.Stages {
	document := three.Document()

	screen := createElement("div", "splash-screen")
	screen.Set("id", "splash-screen")
	content := createElement("div", "splash-content")
	title := createElement("h1", "")
	title.Set("textContent", splashTitle)
	text := createElement("p", "")
	text.Set("textContent", splashText)
	content.Call("appendChild", title)
	content.Call("appendChild", text)
	screen.Call("appendChild", content)

	var image js.Value

	return intro.Stages{
		ShowTitle: func() {
			document.Get("body").Call("appendChild", screen)
		},
		FadeTitle: func() {
			content.Get("classList").Call("add", "fade-out")
		},
		ShowImage: func() {
			content.Get("style").Set("display", "none")
			image = createElement("img", "splash-image fade-in")
			image.Set("src", assetBase+"/gallery/controls.png")
			screen.Call("appendChild", image)
		},
		FadeImage: func() {
			classes := image.Get("classList")
			classes.Call("remove", "fade-in")
			classes.Call("add", "fade-out")
		},
		Hide: func() {
			screen.Get("style").Set("display", "none")
		},
	}
}

func createElement(tag, className string) js.Value {
	element := three.Document().Call("createElement", tag)
	if className != "" {
		element.Set("className", className)
	}
	return element
}

//go:build js

package main

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/mokiat/gog/opt"

	"github.com/nobonobo/memory-land/config"
	"github.com/nobonobo/memory-land/gallery"
	"github.com/nobonobo/memory-land/intro"
	"github.com/nobonobo/memory-land/loop"
	"github.com/nobonobo/memory-land/schema"
	"github.com/nobonobo/memory-land/three"
)

var addons = map[string]string{
	"FontLoader":   "three/addons/loaders/FontLoader.js",
	"TextGeometry": "three/addons/geometries/TextGeometry.js",
	"FlyControls":  "three/addons/controls/FlyControls.js",
}

var shapeButtons = map[string]schema.ObjectType{
	"text-shape":   schema.ObjectTypeText,
	"sphere-shape": schema.ObjectTypeSphere,
	"box-shape":    schema.ObjectTypeBox,
}

func runApplication() error {
	cfg, err := config.FromQuery(three.Params())
	if err != nil {
		slog.Warn("Using default configuration",
			slog.String("error", err.Error()),
		)
		cfg = config.Default()
	}
	if err := three.RequireAddons(addons); err != nil {
		return fmt.Errorf("failed to load three.js add-ons: %w", err)
	}

	app := NewApplication(cfg)
	app.Run()

	done := make(chan struct{})
	three.Listen(three.Window(), "pagehide", func(js.Value) {
		close(done)
	})
	<-done
	return nil
}

type Application struct {
	cfg  config.Config
	loop *loop.Loop

	scene    js.Value
	camera   js.Value
	renderer js.Value
	controls js.Value
	clock    js.Value

	gallery     *gallery.Gallery
	highlighter *gallery.Highlighter
	picker      *three.Picker
	splash      *intro.Splash
}

func NewApplication(cfg config.Config) *Application {
	return &Application{
		cfg:         cfg,
		loop:        loop.New(nil),
		highlighter: gallery.NewHighlighter(cfg.HighlightColor),
	}
}

func (app *Application) Run() {
	window := three.Window()
	width, height := window.Get("innerWidth").Float(), window.Get("innerHeight").Float()

	app.scene = three.New("Scene")
	app.scene.Call("add", three.New("AmbientLight", 0x404040, 10))
	app.scene.Set("background", three.New("Color", 0xefd1b5))

	light := three.New("DirectionalLight", 0xffffff, 1)
	light.Get("position").Call("set", 5, 5, 5)
	light.Set("castShadow", true)
	shadow := light.Get("shadow")
	shadow.Get("mapSize").Set("width", 1024)
	shadow.Get("mapSize").Set("height", 1024)
	shadow.Get("camera").Set("near", 0.1)
	shadow.Get("camera").Set("far", 25)
	app.scene.Call("add", light)

	app.camera = three.New("PerspectiveCamera", 75, width/height, 0.1, 1000)
	app.camera.Get("position").Set("z", 5)

	app.renderer = three.New("WebGLRenderer", map[string]any{
		"antialias": true,
	})
	app.renderer.Call("setPixelRatio", window.Get("devicePixelRatio"))
	app.renderer.Call("setSize", width, height)
	app.renderer.Get("shadowMap").Set("enabled", true)
	app.renderer.Get("shadowMap").Set("type", three.Global().Get("PCFSoftShadowMap"))
	three.Document().Get("body").Call("appendChild", app.renderer.Get("domElement"))

	app.controls = three.Addon("FlyControls").New(app.camera, app.renderer.Get("domElement"))
	app.controls.Set("movementSpeed", app.cfg.MoveSpeed)
	app.controls.Set("rollSpeed", app.cfg.RollSpeed)
	app.controls.Set("autoForward", false)
	app.controls.Set("dragToLook", true)
	app.clock = three.New("Clock")

	app.picker = three.NewPicker(app.camera, app.scene)
	app.gallery = gallery.New(gallery.Info{
		Scene:      three.NewScene(app.scene),
		Builder:    three.NewBuilder(three.NewFontCache(app.loop), app.cfg.FontURL),
		Store:      three.NewLocalStorage(),
		Prompter:   three.WindowPrompter{},
		StorageKey: opt.V(app.cfg.StorageKey),
	})

	app.splash = intro.NewSplash(newSplashStages(app.cfg.AssetBase))
	app.splash.OnOpen(func() {
		slog.Info("Accepting input")
	})
	app.listen()
	app.selectShape("text-shape")

	count, err := app.gallery.LoadObjects()
	if err != nil {
		slog.Error("Ignoring saved objects",
			slog.String("error", err.Error()),
		)
	}
	if count > 0 {
		app.splash.Open()
	} else {
		app.splash.Start(app.loop)
	}

	app.renderer.Call("setAnimationLoop", js.FuncOf(func(this js.Value, args []js.Value) any {
		app.frame()
		return nil
	}))
}

func (app *Application) listen() {
	window := three.Window()
	three.Listen(window, "resize", func(js.Value) { app.onResize() })
	three.Listen(window, "mousemove", app.onMouseMove)
	three.Listen(window, "click", app.onClick)
	three.Listen(window, "keydown", app.onKeyDown)
	three.Listen(window, "keyup", app.onKeyUp)

	for id, objectType := range shapeButtons {
		button := three.Document().Call("getElementById", id)
		if !button.Truthy() {
			slog.Warn("Missing shape button", slog.String("id", id))
			continue
		}
		three.Listen(button, "click", func(js.Value) {
			app.gallery.SetSelectedType(objectType)
			app.selectShape(id)
			slog.Info("Selected shape", slog.String("type", objectType))
		})
	}
}

func (app *Application) frame() {
	app.loop.Tick()
	app.controls.Call("update", app.clock.Call("getDelta"))
	app.renderer.Call("render", app.scene, app.camera)
}

func (app *Application) selectShape(id string) {
	options := three.Document().Call("querySelectorAll", ".shape-option")
	for i := range options.Length() {
		option := options.Index(i)
		option.Get("classList").Call("toggle", "selected", option.Get("id").String() == id)
	}
}

func (app *Application) onResize() {
	window := three.Window()
	width, height := window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
	app.camera.Set("aspect", width/height)
	app.camera.Call("updateProjectionMatrix")
	app.renderer.Call("setSize", width, height)
}

func (app *Application) onMouseMove(event js.Value) {
	if !app.splash.Accepting() {
		return
	}
	if mesh, ok := app.picker.Pick(event); ok {
		app.highlighter.Hover(mesh)
	} else {
		app.highlighter.Clear()
	}
}

func (app *Application) onClick(event js.Value) {
	if !app.splash.Accepting() {
		return
	}
	if target := event.Get("target"); target.Truthy() && target.Get("closest").Truthy() {
		if target.Call("closest", ".shape-option").Truthy() {
			return
		}
	}
	forward := app.camera.Call("getWorldDirection", three.New("Vector3"))
	position := gallery.Placement(
		three.ToVec3(app.camera.Get("position")),
		three.ToVec3(forward),
		app.cfg.PlaceDistance,
	)
	rotation := three.ToEuler(app.camera.Get("rotation"))
	if _, err := app.gallery.AddObject(position, rotation, opt.T[string]{}, opt.T[uint32]{}, false); err != nil {
		slog.Info("Nothing placed",
			slog.String("type", app.gallery.SelectedType()),
			slog.String("reason", err.Error()),
		)
	}
}

func (app *Application) onKeyDown(event js.Value) {
	switch event.Get("key").String() {
	case "Shift":
		app.controls.Set("movementSpeed", app.cfg.BoostSpeed)
	case "Backspace":
		event.Call("preventDefault")
		app.removeHovered()
	}
}

func (app *Application) onKeyUp(event js.Value) {
	if event.Get("key").String() == "Shift" {
		app.controls.Set("movementSpeed", app.cfg.MoveSpeed)
	}
}

func (app *Application) removeHovered() {
	if !app.splash.Accepting() {
		return
	}
	current := app.highlighter.Current()
	if current == nil {
		return
	}
	app.gallery.RemoveObject(current.ID())
	app.highlighter.Release()
}

//go:build js

package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"syscall/js"

	"github.com/nobonobo/memory-land/config"
	"github.com/nobonobo/memory-land/earth"
	"github.com/nobonobo/memory-land/three"
)

func runApplication() error {
	cfg, err := config.FromQuery(three.Params())
	if err != nil {
		slog.Warn("Using default configuration",
			slog.String("error", err.Error()),
		)
		cfg = config.Default()
	}
	if err := three.RequireAddons(map[string]string{
		"OrbitControls": "three/addons/controls/OrbitControls.js",
	}); err != nil {
		return fmt.Errorf("failed to load three.js add-ons: %w", err)
	}

	app := &Application{
		cfg:   cfg,
		globe: earth.NewGlobe(),
	}
	app.Run()

	done := make(chan struct{})
	three.Listen(three.Window(), "pagehide", func(js.Value) {
		close(done)
	})
	<-done
	return nil
}

type Application struct {
	cfg   config.Config
	globe *earth.Globe

	scene    js.Value
	camera   js.Value
	renderer js.Value
	meshes   []js.Value
}

func (app *Application) Run() {
	window := three.Window()
	width, height := window.Get("innerWidth").Float(), window.Get("innerHeight").Float()

	app.scene = three.New("Scene")
	app.camera = three.New("PerspectiveCamera", 75, width/height, 0.1, 1000)
	app.camera.Get("position").Set("z", 5)
	app.renderer = three.New("WebGLRenderer", map[string]any{
		"antialias": true,
	})
	app.renderer.Call("setSize", width, height)
	three.Document().Get("body").Call("appendChild", app.renderer.Get("domElement"))
	three.Addon("OrbitControls").New(app.camera, app.renderer.Get("domElement"))

	group := three.New("Group")
	group.Get("rotation").Set("z", app.globe.Tilt.Radians())
	loader := three.New("TextureLoader")
	geometry := three.New("IcosahedronGeometry", 1, 12)
	for _, layer := range app.globe.Layers {
		mesh := three.New("Mesh", geometry, app.material(loader, layer))
		mesh.Get("scale").Call("setScalar", layer.Scale)
		group.Call("add", mesh)
		app.meshes = append(app.meshes, mesh)
	}
	app.scene.Call("add", group)

	app.scene.Call("add", app.starfield(loader))

	sun := three.New("DirectionalLight", 0xffffff, 2.0)
	sun.Get("position").Call("set", -2, 0.5, 1.5)
	app.scene.Call("add", sun)

	slog.Info("Earth scene ready",
		slog.Int("layers", len(app.globe.Layers)),
		slog.Int("stars", app.cfg.StarCount),
	)

	three.Listen(window, "resize", func(js.Value) { app.onResize() })
	app.renderer.Call("setAnimationLoop", js.FuncOf(func(this js.Value, args []js.Value) any {
		app.frame()
		return nil
	}))
}

func (app *Application) material(loader js.Value, layer *earth.Layer) js.Value {
	switch layer.Material {
	case earth.MaterialFresnel:
		return fresnelMaterial(earth.DefaultFresnel())
	case earth.MaterialBasic:
		return three.New("MeshBasicMaterial", map[string]any{
			"map": app.texture(loader, layer.Texture),
		})
	}
	params := map[string]any{
		"map": app.texture(loader, layer.Texture),
	}
	if layer.AlphaMap != "" {
		params["alphaMap"] = app.texture(loader, layer.AlphaMap)
	}
	if layer.Transparent() {
		params["transparent"] = true
		params["opacity"] = layer.Opacity
		params["blending"] = three.Global().Get("AdditiveBlending")
	}
	return three.New("MeshStandardMaterial", params)
}

func (app *Application) texture(loader js.Value, name string) js.Value {
	return loader.Call("load", app.cfg.AssetBase+"/"+name)
}

func (app *Application) starfield(loader js.Value) js.Value {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	positions, colors := earth.StarBuffers(earth.GenerateStarfield(rng, app.cfg.StarCount))

	geometry := three.New("BufferGeometry")
	geometry.Call("setAttribute", "position", three.New("Float32BufferAttribute", floats(positions), 3))
	geometry.Call("setAttribute", "color", three.New("Float32BufferAttribute", floats(colors), 3))
	material := three.New("PointsMaterial", map[string]any{
		"size":         0.2,
		"vertexColors": true,
		"map":          app.texture(loader, "circle.png"),
	})
	return three.New("Points", geometry, material)
}

func fresnelMaterial(f earth.Fresnel) js.Value {
	uniform := func(value any) map[string]any {
		return map[string]any{"value": value}
	}
	return three.New("ShaderMaterial", map[string]any{
		"uniforms": map[string]any{
			"color1":       uniform(three.New("Color", f.RimColor)),
			"color2":       uniform(three.New("Color", f.FacingColor)),
			"fresnelBias":  uniform(f.Bias),
			"fresnelScale": uniform(f.Scale),
			"fresnelPower": uniform(f.Power),
		},
		"vertexShader":   earth.FresnelVertexShader,
		"fragmentShader": earth.FresnelFragmentShader,
		"transparent":    true,
		"blending":       three.Global().Get("AdditiveBlending"),
	})
}

func floats(values []float32) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

func (app *Application) frame() {
	app.globe.Advance()
	for i, layer := range app.globe.Layers {
		app.meshes[i].Get("rotation").Set("y", layer.Angle.Radians())
	}
	app.renderer.Call("render", app.scene, app.camera)
}

func (app *Application) onResize() {
	window := three.Window()
	width, height := window.Get("innerWidth").Float(), window.Get("innerHeight").Float()
	app.camera.Set("aspect", width/height)
	app.camera.Call("updateProjectionMatrix")
	app.renderer.Call("setSize", width, height)
}

// lumen - Sphere Ray Tracer
// Render built-in scenes to PPM or PNG, or preview them in your terminal.
//
// Preview controls:
//
//	A/D or ←/→  - Orbit around the scene
//	+/-         - Zoom in/out
//	R           - Reset view
//	?           - Toggle status line
//	Esc         - Quit
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/models"
	"github.com/taigrr/lumen/pkg/render"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/shading"
)

var (
	sceneName = flag.String("scene", "default", "Scene to render (see list below, or \"none\")")
	width     = flag.Int("width", 100, "Image width in pixels")
	height    = flag.Int("height", 50, "Image height in pixels")
	fovDeg    = flag.Float64("fov", 0, "Field of view in degrees (0 = scene default)")
	outPath   = flag.String("out", "", "Output file (.ppm or .png); defaults to <scene>.ppm")
	modelPath = flag.String("model", "", "GLB model to add as bounding-sphere proxies")
	fitModel  = flag.Bool("fit", true, "Center and scale the model to a 2 unit cube")
	preview   = flag.Bool("preview", false, "Preview the scene in the terminal")
	targetFPS = flag.Int("fps", 30, "Target FPS for the preview")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lumen - Sphere Ray Tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lumen [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nScenes:\n")
		for _, s := range scene.Scenes() {
			fmt.Fprintf(os.Stderr, "  %-11s - %s\n", s.Name, s.Description)
		}
		fmt.Fprintf(os.Stderr, "\nPreview controls:\n")
		fmt.Fprintf(os.Stderr, "  A/D, ←/→    - Orbit\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle status line\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	world, view, err := buildWorld(*sceneName)
	if err != nil {
		return err
	}

	if *modelPath != "" {
		if err := addModel(world, *modelPath); err != nil {
			return err
		}
	}

	if *fovDeg > 0 {
		view.FieldOfView = *fovDeg * math.Pi / 180
	}

	if *preview {
		return runPreview(world, view)
	}
	return renderToFile(world, view)
}

// buildWorld returns the named scene, or a lit empty world for "none".
func buildWorld(name string) (*scene.World, scene.View, error) {
	if name == "none" {
		w := scene.NewWorld()
		w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, -10), shading.White))
		def, _ := scene.Lookup("default")
		return w, def.View, nil
	}

	s, ok := scene.Lookup(name)
	if !ok {
		names := make([]string, 0)
		for _, s := range scene.Scenes() {
			names = append(names, s.Name)
		}
		return nil, scene.View{}, fmt.Errorf("unknown scene %q (have %s)", name, strings.Join(names, ", "))
	}
	return s.Build(), s.View, nil
}

func addModel(world *scene.World, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".glb" && ext != ".gltf" {
		return fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}

	meshes, err := models.LoadGLB(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	proxies := models.SphereProxies(meshes, *fitModel)
	for _, s := range proxies {
		world.AddObject(s)
	}
	fmt.Printf("Loaded: %s (%d meshes, %d sphere proxies)\n", filepath.Base(path), len(meshes), len(proxies))
	return nil
}

func renderToFile(world *scene.World, view scene.View) error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}

	path := *outPath
	if path == "" {
		path = *sceneName + ".ppm"
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ppm" && ext != ".png" {
		return fmt.Errorf("unsupported output format: %s (use .ppm or .png)", ext)
	}

	camera := render.NewCamera(*width, *height, view.FieldOfView)
	camera.SetTransform(view.Transform())

	start := time.Now()
	fb := camera.RenderFramebuffer(world)
	elapsed := time.Since(start)

	save := fb.SavePPM
	if ext == ".png" {
		save = fb.SavePNG
	}
	if err := save(path); err != nil {
		return fmt.Errorf("save image: %w", err)
	}

	fmt.Printf("Rendered %dx%d in %v: %s\n", *width, *height, elapsed.Round(time.Millisecond), path)
	return nil
}

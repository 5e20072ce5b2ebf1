package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/lumen/pkg/math3d"
	"github.com/taigrr/lumen/pkg/render"
	"github.com/taigrr/lumen/pkg/scene"
)

const (
	orbitStep = math.Pi / 12
	zoomStep  = 0.1
	minZoom   = 0.2
	maxZoom   = 4.0
)

// OrbitAxis eases a value toward its target with a harmonica spring
type OrbitAxis struct {
	Position float64
	Target   float64
	velocity float64
	spring   harmonica.Spring
}

// NewOrbitAxis creates an axis resting at initial
func NewOrbitAxis(fps int, initial float64) OrbitAxis {
	return OrbitAxis{
		Position: initial,
		Target:   initial,
		// Frequency 6.0 = quick, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the spring by one frame
func (a *OrbitAxis) Update() {
	a.Position, a.velocity = a.spring.Update(a.Position, a.velocity, a.Target)
}

// Settled reports whether the axis has come to rest at its target
func (a *OrbitAxis) Settled() bool {
	return math.Abs(a.Position-a.Target) < 1e-4 && math.Abs(a.velocity) < 1e-4
}

// OrbitState holds the preview camera's orbit angle and zoom
type OrbitState struct {
	Angle OrbitAxis // radians around the look-at point's vertical axis
	Zoom  OrbitAxis // multiplier on the scene's eye distance
	fps   int
}

// NewOrbitState creates an orbit at the scene's own view
func NewOrbitState(fps int) *OrbitState {
	return &OrbitState{
		Angle: NewOrbitAxis(fps, 0),
		Zoom:  NewOrbitAxis(fps, 1),
		fps:   fps,
	}
}

// Update advances both springs
func (o *OrbitState) Update() {
	o.Angle.Update()
	o.Zoom.Update()
}

// Settled reports whether the camera has stopped moving
func (o *OrbitState) Settled() bool {
	return o.Angle.Settled() && o.Zoom.Settled()
}

// Orbit turns the target angle by delta radians
func (o *OrbitState) Orbit(delta float64) {
	o.Angle.Target += delta
}

// ZoomBy changes the target zoom, keeping it within [minZoom, maxZoom]
func (o *OrbitState) ZoomBy(delta float64) {
	o.Zoom.Target = math.Max(minZoom, math.Min(maxZoom, o.Zoom.Target+delta))
}

// Reset eases back to the scene's own view
func (o *OrbitState) Reset() {
	o.Angle.Target = 0
	o.Zoom.Target = 1
}

// Eye returns the eye position for view after orbiting and zooming.
func (o *OrbitState) Eye(view scene.View) math3d.Tuple {
	offset := view.From.Sub(view.To)
	offset = math3d.RotationY(o.Angle.Position).MulTuple(offset).Scale(o.Zoom.Position)
	return view.To.Add(offset)
}

// Status renders a one-line summary of the preview state
type Status struct {
	sceneName string
	objects   int
	frameTime time.Duration
}

// Draw writes the status line on the bottom row of area
func (s *Status) Draw(scr uv.Screen, area uv.Rectangle, orbit *OrbitState) {
	const (
		reset   = "\x1b[0m"
		bgBlack = "\x1b[40m"
		fgGreen = "\x1b[92m"
		fgWhite = "\x1b[97m"
	)

	line := fmt.Sprintf("%s%s %s %s%d spheres  %.0f°  %.1fx  %v/frame %s",
		bgBlack, fgGreen, s.sceneName, fgWhite, s.objects,
		orbit.Angle.Position*180/math.Pi, orbit.Zoom.Position,
		s.frameTime.Round(time.Millisecond), reset)

	uv.NewStyledString(line).Draw(scr, uv.Rect(area.Min.X, area.Max.Y-1, area.Dx(), 1))
}

func runPreview(world *scene.World, view scene.View) error {
	if *targetFPS <= 0 {
		return fmt.Errorf("invalid fps %d", *targetFPS)
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Shared with the event handler
	var mu sync.Mutex
	orbit := NewOrbitState(*targetFPS)
	showStatus := true
	dirty := true

	go func() {
		for ev := range term.Events() {
			mu.Lock()
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				dirty = true

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					cancel()
				case ev.MatchString("a", "left"):
					orbit.Orbit(-orbitStep)
				case ev.MatchString("d", "right"):
					orbit.Orbit(orbitStep)
				case ev.MatchString("+", "="):
					orbit.ZoomBy(-zoomStep)
				case ev.MatchString("-", "_"):
					orbit.ZoomBy(zoomStep)
				case ev.MatchString("r"):
					orbit.Reset()
				case ev.MatchString("?", "shift+/"):
					showStatus = !showStatus
					dirty = true
				}
			}
			mu.Unlock()
		}
	}()

	status := &Status{sceneName: *sceneName, objects: world.ObjectCount()}
	camera := render.NewCamera(1, 1, view.FieldOfView)
	var fb *render.Framebuffer

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		mu.Lock()
		orbit.Update()
		redraw := dirty || !orbit.Settled()
		dirty = false
		w, h := width, height
		eye := orbit.Eye(view)
		drawStatus := showStatus
		mu.Unlock()

		if redraw && w > 0 && h > 0 {
			// Half-block cells give two pixels per terminal row
			if fb == nil || fb.Width != w || fb.Height != h*2 {
				fb = render.NewFramebuffer(w, h*2)
				camera.SetSize(w, h*2)
			}
			camera.SetTransform(math3d.ViewTransform(eye, view.To, view.Up))

			camera.Render(world, fb)
			status.frameTime = time.Since(now)

			area := uv.Rect(0, 0, w, h)
			fb.Draw(term, area)
			if drawStatus {
				mu.Lock()
				status.Draw(term, area, orbit)
				mu.Unlock()
			}

			if err := term.Display(); err != nil {
				cleanup()
				return fmt.Errorf("display: %w", err)
			}
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

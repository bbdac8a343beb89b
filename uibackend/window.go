package uibackend

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/cs330/deskscene/config"
)

type Window struct {
	window *glfw.Window
}

// NewWindow creates a window with a 4.3 core profile context, makes it
// current and initializes GL. Must be called from the main thread.
func NewWindow(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := InitGL(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	return &Window{window: window}, nil
}

func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) ShouldStop() bool {
	return w.window.ShouldClose()
}

// ProcessEvents polls window events. Escape closes the window.
func (w *Window) ProcessEvents() {
	glfw.PollEvents()
	if w.window.GetKey(glfw.KeyEscape) == glfw.Press {
		w.window.SetShouldClose(true)
	}
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Aspect is framebuffer width / height, 0 while minimized.
func (w *Window) Aspect() float32 {
	width, height := w.FramebufferSize()
	if height == 0 {
		return 0
	}
	return float32(width) / float32(height)
}

func (w *Window) PostRender() {
	w.window.SwapBuffers()
}

package main

import (
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/hexaflex/quad/shader"
	"github.com/hexaflex/quad/shader/gldriver"
)

// programCacheSize bounds the number of programs kept alive across reloads.
const programCacheSize = 8

// App defines application context.
type App struct {
	config   *Config             // Application configuration.
	window   *glfw.Window        // OpenGL/GLFW context.
	mesh     *Mesh               // Quad buffers.
	programs *shader.Cache       // Linked programs by source.
	program  uint32              // Program used for drawing; 0 if none could be built.
	prof     interface{ Stop() } // Active profiler, if any.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	return &App{config: config}
}

// Run runs the application and does not return until the window is closed
// or an error occured during initialization.
func (a *App) Run() error {
	if a.config.Profile {
		a.prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}

	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	builder := shader.NewBuilder(gldriver.New(), log.New(os.Stderr, "shader: ", log.LstdFlags))

	var err error
	a.programs, err = shader.NewCache(builder, programCacheSize)
	if err != nil {
		return err
	}

	a.mesh = uploadMesh()

	// A broken shader is not fatal; the quad simply isn't drawn.
	if err := a.loadShader(); err != nil {
		log.Println(err)
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop renders a single frame and processes pending events.
func (a *App) mainLoop() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if a.program != 0 {
		gl.UseProgram(a.program)
		a.mesh.Draw()
	}

	a.window.SwapBuffers()
	glfw.PollEvents()
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if a.programs != nil {
		a.programs.Purge()
		a.programs = nil
		a.program = 0
	}

	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()

	if a.prof != nil {
		a.prof.Stop()
		a.prof = nil
	}
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF5:
		err = a.loadShader()
	}

	if err != nil {
		log.Println(err)
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	a.window, err = glfw.CreateWindow(a.config.Width, a.config.Height, a.config.Title, nil, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(_bool(a.config.VSync))

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// loadShader loads the shader file from disk and switches to the resulting
// program. The current program is kept if this fails.
func (a *App) loadShader() error {
	log.Println("loading", a.config.Shader)

	src, err := shader.Load(a.config.Shader)
	if err != nil {
		return err
	}

	program, err := a.programs.Get(src)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s", a.config.Shader)
	}

	a.program = program
	return nil
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F5       (re)load the shader from disk.")
	log.Println(sb.String())
}

func _bool(v bool) int {
	if v {
		return 1
	}
	return 0
}

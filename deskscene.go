package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/pkg/errors"

	"github.com/cs330/deskscene/config"
	"github.com/cs330/deskscene/r3d"
	"github.com/cs330/deskscene/scene"
	"github.com/cs330/deskscene/uibackend"
	"github.com/cs330/deskscene/utils"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var scenePath, textureDir string
	var width, height int
	var dump bool
	flag.StringVar(&scenePath, "scene", "", "Path to scene yaml, built-in desk scene if empty")
	flag.StringVar(&textureDir, "textures", "", "Texture directory override")
	flag.IntVar(&width, "width", 0, "Window width override")
	flag.IntVar(&height, "height", 0, "Window height override")
	flag.BoolVar(&dump, "dump", false, "Dump loaded scene and first frame uniforms to log")
	flag.Parse()

	desc, err := loadScene(scenePath)
	if err != nil {
		log.Fatal(err)
	}
	if textureDir != "" {
		desc.TextureDir = textureDir
	}
	if width > 0 {
		desc.Window.Width = width
	}
	if height > 0 {
		desc.Window.Height = height
	}
	if dump {
		utils.LogDump(desc)
	}

	if err := run(desc, dump); err != nil {
		log.Fatal(err)
	}
}

func loadScene(path string) (*config.Scene, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(desc *config.Scene, dump bool) error {
	window, err := uibackend.NewWindow(desc.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := uibackend.LoadSceneProgram()
	if err != nil {
		return errors.Wrap(err, "scene program")
	}
	defer program.Delete()
	program.Use()

	var uniforms r3d.Uniforms = program
	var recorder *r3d.UniformRecorder
	if dump {
		recorder = r3d.NewUniformRecorder()
		uniforms = r3d.Tee(program, recorder)
	}

	meshes := uibackend.NewMeshes()
	s, err := scene.New(desc, uniforms, uibackend.Textures{}, meshes)
	if err != nil {
		meshes.Destroy()
		return err
	}
	defer s.Destroy()

	if err := s.Prepare(); err != nil {
		return err
	}
	st := s.Stats()
	log.Printf("Scene ready: %d/%d textures, %d materials, %d meshes, %d draws",
		st.Textures, s.Textures.Capacity(), st.Materials, st.Meshes, st.Draws)
	if dump {
		utils.LogDump(s.Instructions())
	}

	camera := r3d.NewOrbitController(desc.Camera.Target, desc.Camera.Distance, desc.Camera.Pitch, desc.Camera.Yaw)
	camera.Fov, camera.Near, camera.Far = desc.Camera.Fov, desc.Camera.Near, desc.Camera.Far

	background := [3]float32(desc.Window.Background)
	for frame := 0; !window.ShouldStop(); frame++ {
		window.ProcessEvents()

		w, h := window.FramebufferSize()
		uibackend.PreRender(background, w, h)

		r3d.ApplyCamera(uniforms, camera, window.Aspect())
		s.Render()

		if dump && frame == 0 {
			utils.LogDump(recorder.Snapshot())
		}
		window.PostRender()
	}
	return nil
}

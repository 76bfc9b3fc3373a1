package main

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	vk "github.com/vulkan-go/vulkan"

	"github.com/vulkan-go/bringup/vkcontext"
)

// windowSystem binds SDL2 to vkcontext.WindowSystem.
type windowSystem struct {
	log    logrus.FieldLogger
	loaded bool
}

func (s *windowSystem) Init() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func (s *windowSystem) VulkanSupported() bool {
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		s.log.WithError(err).Warn("SDL could not load the Vulkan loader")
		return false
	}
	s.loaded = true
	vk.SetGetInstanceProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	return vk.Init() == nil
}

// RequiredInstanceExtensions asks SDL without a window; SDL answers for the
// current video driver.
func (s *windowSystem) RequiredInstanceExtensions() []string {
	var w *sdl.Window
	return w.VulkanGetInstanceExtensions()
}

func (s *windowSystem) CreateWindow(width, height int, title string) (vkcontext.Window, error) {
	w, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, err
	}
	return &window{Window: w, log: s.log}, nil
}

func (s *windowSystem) Terminate() {
	if s.loaded {
		sdl.VulkanUnloadLibrary()
		s.loaded = false
	}
	sdl.Quit()
}

type window struct {
	*sdl.Window
	log logrus.FieldLogger
}

func (w *window) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	surfPtr, err := w.VulkanCreateSurface(instance)
	if err != nil {
		return vk.NullSurface, errors.Wrap(err, "SDL_Vulkan_CreateSurface")
	}
	return vk.SurfaceFromPointer(surfPtr), nil
}

func (w *window) Destroy() {
	if err := w.Window.Destroy(); err != nil {
		w.log.WithError(err).Warn("destroying SDL window")
	}
}

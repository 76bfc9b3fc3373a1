package main

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"github.com/vulkan-go/bringup/vkcontext"
)

// windowSystem binds GLFW to vkcontext.WindowSystem.
type windowSystem struct{}

func (windowSystem) Init() error {
	return glfw.Init()
}

func (windowSystem) VulkanSupported() bool {
	if !glfw.VulkanSupported() {
		return false
	}
	procAddr := glfw.GetVulkanGetInstanceProcAddress()
	if procAddr == nil {
		return false
	}
	vk.SetGetInstanceProcAddr(procAddr)
	return vk.Init() == nil
}

func (windowSystem) RequiredInstanceExtensions() []string {
	return glfw.GetCurrentContext().GetRequiredInstanceExtensions()
}

func (windowSystem) CreateWindow(width, height int, title string) (vkcontext.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &window{w}, nil
}

func (windowSystem) Terminate() {
	glfw.Terminate()
}

type window struct {
	*glfw.Window
}

func (w *window) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	surfacePtr, err := w.CreateWindowSurface(instance, nil)
	if err != nil {
		return vk.NullSurface, errors.Wrap(err, "glfwCreateWindowSurface")
	}
	return vk.SurfaceFromPointer(surfacePtr), nil
}

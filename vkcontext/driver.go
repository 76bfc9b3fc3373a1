package vkcontext

import vk "github.com/vulkan-go/vulkan"

// ApplicationInfo is the identity block passed on instance creation.
type ApplicationInfo struct {
	APIVersion         uint32
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
}

// InstanceInfo describes an instance to create.
type InstanceInfo struct {
	Application ApplicationInfo
	Layers      []string
	Extensions  []string
}

// QueueInfo requests len(Priorities) queues from a single family.
type QueueInfo struct {
	FamilyIndex uint32
	Priorities  []float32
}

// DeviceInfo describes a logical device to create.
type DeviceInfo struct {
	Queues     []QueueInfo
	Extensions []string
}

// Driver is the native graphics driver boundary. Handles returned by it are
// opaque and owned by whoever created them.
type Driver interface {
	CreateInstance(info *InstanceInfo) (vk.Instance, vk.Result)
	DestroyInstance(instance vk.Instance)

	EnumeratePhysicalDevices(instance vk.Instance, count *uint32, out []vk.PhysicalDevice) vk.Result
	PhysicalDeviceProperties(gpu vk.PhysicalDevice) vk.PhysicalDeviceProperties
	QueueFamilyProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.QueueFamilyProperties)

	CreateDevice(gpu vk.PhysicalDevice, info *DeviceInfo) (vk.Device, vk.Result)
	DestroyDevice(device vk.Device)

	SurfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.SurfaceFormat) vk.Result
	SurfaceSupport(gpu vk.PhysicalDevice, family uint32, surface vk.Surface) (bool, vk.Result)
	DestroySurface(instance vk.Instance, surface vk.Surface)
}

// WindowSystem is the windowing subsystem that owns OS windows and knows
// how to bind them to a Vulkan instance.
type WindowSystem interface {
	Init() error
	// VulkanSupported reports whether a Vulkan loader and ICD are usable.
	VulkanSupported() bool
	RequiredInstanceExtensions() []string
	// CreateWindow creates a window with no client API bound to it.
	CreateWindow(width, height int, title string) (Window, error)
	Terminate()
}

// Window is a native window created by a WindowSystem.
type Window interface {
	CreateSurface(instance vk.Instance) (vk.Surface, error)
	Destroy()
}

// Inspector is implemented by drivers that can list the instance layers and
// extensions installed on the system.
type Inspector interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
}

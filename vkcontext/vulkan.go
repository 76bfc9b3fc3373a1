package vkcontext

import (
	"github.com/cockroachdb/errors"
	as "github.com/vulkan-go/asche"
	vk "github.com/vulkan-go/vulkan"
)

// VulkanDriver implements Driver on top of the vulkan-go bindings.
// The window system must have set the instance proc address and called
// vk.Init before it is used.
type VulkanDriver struct{}

// NewVulkanDriver returns the default Driver.
func NewVulkanDriver() *VulkanDriver {
	return &VulkanDriver{}
}

func (d *VulkanDriver) CreateInstance(info *InstanceInfo) (vk.Instance, vk.Result) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         info.Application.APIVersion,
		ApplicationVersion: info.Application.ApplicationVersion,
		PApplicationName:   safeString(info.Application.ApplicationName),
		EngineVersion:      info.Application.EngineVersion,
		PEngineName:        safeString(info.Application.EngineName),
	}
	layers := safeStrings(info.Layers)
	extensions := safeStrings(info.Extensions)
	instanceCreateInfo := &vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}
	var instance vk.Instance
	ret := vk.CreateInstance(instanceCreateInfo, nil, &instance)
	if ret != vk.Success {
		return nil, ret
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, vk.ErrorInitializationFailed
	}
	return instance, vk.Success
}

func (d *VulkanDriver) DestroyInstance(instance vk.Instance) {
	vk.DestroyInstance(instance, nil)
}

func (d *VulkanDriver) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, out []vk.PhysicalDevice) vk.Result {
	return vk.EnumeratePhysicalDevices(instance, count, out)
}

func (d *VulkanDriver) PhysicalDeviceProperties(gpu vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(gpu, &props)
	props.Deref()
	return props
}

func (d *VulkanDriver) QueueFamilyProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.QueueFamilyProperties) {
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, count, out)
}

func (d *VulkanDriver) CreateDevice(gpu vk.PhysicalDevice, info *DeviceInfo) (vk.Device, vk.Result) {
	queueCreateInfos := make([]vk.DeviceQueueCreateInfo, 0, len(info.Queues))
	for _, q := range info.Queues {
		queueCreateInfos = append(queueCreateInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.FamilyIndex,
			QueueCount:       uint32(len(q.Priorities)),
			PQueuePriorities: q.Priorities,
		})
	}
	extensions := safeStrings(info.Extensions)
	deviceCreateInfo := &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueCreateInfos)),
		PQueueCreateInfos:       queueCreateInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}
	var device vk.Device
	ret := vk.CreateDevice(gpu, deviceCreateInfo, nil, &device)
	if ret != vk.Success {
		return nil, ret
	}
	return device, vk.Success
}

func (d *VulkanDriver) DestroyDevice(device vk.Device) {
	vk.DestroyDevice(device, nil)
}

func (d *VulkanDriver) SurfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.SurfaceFormat) vk.Result {
	return vk.GetPhysicalDeviceSurfaceFormats(gpu, surface, count, out)
}

func (d *VulkanDriver) SurfaceSupport(gpu vk.PhysicalDevice, family uint32, surface vk.Surface) (bool, vk.Result) {
	var supported vk.Bool32
	ret := vk.GetPhysicalDeviceSurfaceSupport(gpu, family, surface, &supported)
	return supported.B(), ret
}

func (d *VulkanDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	vk.DestroySurface(instance, surface, nil)
}

// AvailableLayers lists the instance layers installed on the system.
func (d *VulkanDriver) AvailableLayers() ([]string, error) {
	names, err := as.ValidationLayers()
	return names, errors.Wrap(err, "listing instance layers")
}

// AvailableExtensions lists the instance extensions installed on the system.
func (d *VulkanDriver) AvailableExtensions() ([]string, error) {
	names, err := as.InstanceExtensions()
	return names, errors.Wrap(err, "listing instance extensions")
}

func safeString(s string) string {
	return s + "\x00"
}

func safeStrings(list []string) []string {
	safe := make([]string, 0, len(list))
	for _, s := range list {
		safe = append(safe, safeString(s))
	}
	return safe
}

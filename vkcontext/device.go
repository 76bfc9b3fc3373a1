package vkcontext

import vk "github.com/vulkan-go/vulkan"

// PhysicalDeviceInfo is a read-only snapshot of a physical device as reported
// by the driver. The handle is borrowed, not owned.
type PhysicalDeviceInfo struct {
	Handle        vk.PhysicalDevice
	Index         int
	Name          string
	Type          vk.PhysicalDeviceType
	VendorID      uint32
	DeviceID      uint32
	APIVersion    vk.Version
	DriverVersion vk.Version
}

func newPhysicalDeviceInfo(index int, gpu vk.PhysicalDevice, props vk.PhysicalDeviceProperties) PhysicalDeviceInfo {
	return PhysicalDeviceInfo{
		Handle:        gpu,
		Index:         index,
		Name:          vk.ToString(props.DeviceName[:]),
		Type:          props.DeviceType,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		APIVersion:    vk.Version(props.ApiVersion),
		DriverVersion: vk.Version(props.DriverVersion),
	}
}

// DeviceSelector picks one of the enumerated devices and returns its
// position in the list.
type DeviceSelector func(devices []PhysicalDeviceInfo) int

// FirstDevice always selects the first enumerated device.
// TODO: replace with a suitability score (present support, memory, device type).
func FirstDevice(devices []PhysicalDeviceInfo) int {
	return 0
}

// DeviceTypeString names a physical device type.
func DeviceTypeString(t vk.PhysicalDeviceType) string {
	switch t {
	case vk.PhysicalDeviceTypeOther:
		return "other"
	case vk.PhysicalDeviceTypeCpu:
		return "CPU"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "Discrete GPU"
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "Integrated GPU"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "Virtual GPU"
	default:
		return "Unknown"
	}
}

// SurfaceFormat is a pixel format and color space pair supported by a surface.
type SurfaceFormat struct {
	Format     vk.Format
	ColorSpace vk.ColorSpace
}

func surfaceFormatsFrom(list []vk.SurfaceFormat) []SurfaceFormat {
	formats := make([]SurfaceFormat, len(list))
	for i := range list {
		list[i].Deref()
		formats[i] = SurfaceFormat{
			Format:     list[i].Format,
			ColorSpace: list[i].ColorSpace,
		}
	}
	return formats
}

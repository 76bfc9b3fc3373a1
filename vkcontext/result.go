package vkcontext

import (
	"fmt"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// Describe returns a human-readable sentence for a Vulkan result code.
// Codes it does not know are rendered as their hexadecimal value.
func Describe(ret vk.Result) string {
	switch ret {
	// success codes
	case vk.Success:
		return "Command successfully completed."
	case vk.NotReady:
		return "A fence or query has not yet completed."
	case vk.Timeout:
		return "A wait operation has not completed in the specified time."
	case vk.EventSet:
		return "An event is signaled."
	case vk.EventReset:
		return "An event is unsignaled."
	case vk.Incomplete:
		return "A return array was too small for the result."
	case vk.Suboptimal:
		return "A swapchain no longer matches the surface properties exactly, but can still be used to present to the surface successfully."

	// error codes
	case vk.ErrorOutOfHostMemory:
		return "A host memory allocation has failed."
	case vk.ErrorOutOfDeviceMemory:
		return "A device memory allocation has failed."
	case vk.ErrorInitializationFailed:
		return "Initialization of an object could not be completed for implementation-specific reasons."
	case vk.ErrorDeviceLost:
		return "The logical or physical device has been lost."
	case vk.ErrorMemoryMapFailed:
		return "Mapping of a memory object has failed."
	case vk.ErrorLayerNotPresent:
		return "A requested layer is not present or could not be loaded."
	case vk.ErrorExtensionNotPresent:
		return "A requested extension is not supported."
	case vk.ErrorFeatureNotPresent:
		return "A requested feature is not supported."
	case vk.ErrorIncompatibleDriver:
		return "The requested version of Vulkan is not supported by the driver or is otherwise incompatible for implementation-specific reasons."
	case vk.ErrorTooManyObjects:
		return "Too many objects of the type have already been created."
	case vk.ErrorFormatNotSupported:
		return "A requested format is not supported on this device."
	case vk.ErrorSurfaceLost:
		return "A surface is no longer available."
	case vk.ErrorNativeWindowInUse:
		return "The requested window is already connected to a VkSurfaceKHR, or to some other non-Vulkan API."
	case vk.ErrorOutOfDate:
		return "A surface has changed in such a way that it is no longer compatible with the swapchain, and further presentation requests using the " +
			"swapchain will fail. Applications must query the new surface properties and recreate their swapchain if they wish to continue " +
			"presenting to the surface."
	case vk.ErrorIncompatibleDisplay:
		return "The display used by a swapchain does not use the same presentable image layout, or is incompatible in a way that prevents sharing an " +
			"image."
	case vk.ErrorValidationFailed:
		return "A validation layer found an error."
	default:
		return fmt.Sprintf("Unknown VkResult: 0x%x", uint32(ret))
	}
}

// ResultError is a non-success status returned by a driver call.
type ResultError struct {
	Op     string
	Result vk.Result
}

func (e *ResultError) Error() string {
	if e.Op == "" {
		return Describe(e.Result)
	}
	return fmt.Sprintf("%s: %s", e.Op, Describe(e.Result))
}

// NewError wraps a non-success result into a *ResultError.
// It returns nil for vk.Success.
func NewError(op string, ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	return errors.WithStack(&ResultError{Op: op, Result: ret})
}

// IsResult reports whether err carries the given driver result.
func IsResult(err error, ret vk.Result) bool {
	var re *ResultError
	if errors.As(err, &re) {
		return re.Result == ret
	}
	return false
}

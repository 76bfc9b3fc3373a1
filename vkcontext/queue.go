package vkcontext

import (
	"math"
	"strings"

	vk "github.com/vulkan-go/vulkan"
)

// InvalidQueueFamily is returned by a QueueFamilySelector that found nothing.
const InvalidQueueFamily = uint32(math.MaxUint32)

// QueueFamily describes one queue family of a physical device.
// Index is its position in the enumeration.
type QueueFamily struct {
	Index      uint32
	Flags      vk.QueueFlags
	QueueCount uint32
}

// Has reports whether every bit of bit is set on the family.
func (q QueueFamily) Has(bit vk.QueueFlagBits) bool {
	return q.Flags&vk.QueueFlags(bit) == vk.QueueFlags(bit)
}

// QueueFamilySelector picks a queue family index from families listed in
// enumeration order, or returns InvalidQueueFamily.
type QueueFamilySelector func(families []QueueFamily) uint32

// FirstGraphics selects the first family that supports graphics operations.
// It is first-fit: a later family with more capabilities is never preferred.
func FirstGraphics(families []QueueFamily) uint32 {
	for _, family := range families {
		if family.Has(vk.QueueGraphicsBit) {
			return family.Index
		}
	}
	return InvalidQueueFamily
}

var queueFlagNames = []struct {
	bit  vk.QueueFlagBits
	name string
}{
	{vk.QueueComputeBit, "COMPUTE"},
	{vk.QueueGraphicsBit, "GRAPHICS"},
	{vk.QueueTransferBit, "TRANSFER"},
	{vk.QueueSparseBindingBit, "SPARSE BINDING"},
	{vk.QueueProtectedBit, "PROTECTED"},
}

// QueueFlagsString renders the known capability bits joined by " | ".
func QueueFlagsString(flags vk.QueueFlags) string {
	var names []string
	for _, f := range queueFlagNames {
		if flags&vk.QueueFlags(f.bit) != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, " | ")
}

func queueFamiliesFrom(props []vk.QueueFamilyProperties) []QueueFamily {
	families := make([]QueueFamily, len(props))
	for i := range props {
		props[i].Deref()
		families[i] = QueueFamily{
			Index:      uint32(i),
			Flags:      props[i].QueueFlags,
			QueueCount: props[i].QueueCount,
		}
	}
	return families
}

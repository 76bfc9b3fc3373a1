package vkcontext

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestNewPrinter(t *testing.T) {
	assert.IsType(t, &TextPrinter{}, NewPrinter(ReportText, nil))
	assert.IsType(t, &TablePrinter{}, NewPrinter(ReportTable, nil))
}

func TestTextPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewTextPrinter(&out)

	p.Layers([]string{"VK_LAYER_KHRONOS_validation"})
	p.Devices([]PhysicalDeviceInfo{{Index: 0, Name: "llvmpipe", Type: vk.PhysicalDeviceTypeCpu}})
	p.QueueFamilies([]QueueFamily{{Index: 0, Flags: graphics | compute | transfer, QueueCount: 1}})
	p.SurfaceFormats(nil)
	require.NoError(t, p.Flush())

	assert.Equal(t, "Available layers:\n\tVK_LAYER_KHRONOS_validation\n\n"+
		"Available GPUs:\nGPU[0]:\n\tName: llvmpipe\n\tType: CPU\n\n"+
		"Queue[0]:\n\tQueue Count: 1\n\tQueue Flags: COMPUTE | GRAPHICS | TRANSFER\n\n"+
		"Supported SurfaceFormats:\n\n", out.String())
}

func TestTextPrinterStopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	p := NewTextPrinter(w)

	p.RequiredExtensions([]string{"VK_KHR_surface", "VK_KHR_xlib_surface"})
	p.Devices(nil)
	err := p.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, w.writes)
}

func TestTablePrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewTablePrinter(&out)

	p.RequiredExtensions([]string{"VK_KHR_surface"})
	p.Layers([]string{"VK_LAYER_KHRONOS_validation"})
	p.Devices([]PhysicalDeviceInfo{{
		Index:      0,
		Name:       "Test GPU",
		Type:       vk.PhysicalDeviceTypeDiscreteGpu,
		VendorID:   0x10de,
		APIVersion: vk.Version(vk.MakeVersion(1, 2, 0)),
	}})
	p.QueueFamilies([]QueueFamily{{Index: 0, Flags: graphics, QueueCount: 16}})
	p.SurfaceFormats([]SurfaceFormat{{Format: vk.FormatB8g8r8a8Unorm}})
	require.NoError(t, p.Flush())

	s := out.String()
	for _, want := range []string{
		"VULKAN CONTEXT",
		"REQUIRED EXTENSIONS",
		"VK_KHR_surface",
		"VK_LAYER_KHRONOS_validation",
		"Test GPU",
		"Discrete GPU",
		"10de",
		"Queue[0] x16",
		"GRAPHICS",
		"format 0x2c, color space 0x0",
	} {
		assert.Contains(t, s, want)
	}

	n := out.Len()
	require.NoError(t, p.Flush())
	assert.Equal(t, n, out.Len(), "rendered once")
}

func TestTablePrinterWriteError(t *testing.T) {
	p := NewTablePrinter(&failingWriter{})
	p.Devices(nil)
	assert.Error(t, p.Flush())
}

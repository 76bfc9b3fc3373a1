package vkcontext

import (
	"strings"
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// journal records driver and window system calls in the order they happen.
type journal struct {
	calls []string
}

func (j *journal) record(call string) {
	j.calls = append(j.calls, call)
}

// releases returns only the calls that give a resource back.
func (j *journal) releases() []string {
	var out []string
	for _, call := range j.calls {
		if strings.HasSuffix(call, ".Destroy") || strings.HasSuffix(call, ".Terminate") {
			out = append(out, call)
		}
	}
	return out
}

// handleArena backs fake driver handles: distinct addresses outside the Go
// heap, like the C handles they stand in for.
var (
	handleArena [256]uint64
	nextHandle  int
)

func newHandle() unsafe.Pointer {
	h := unsafe.Pointer(&handleArena[nextHandle%len(handleArena)])
	nextHandle++
	return h
}

type fakeGPU struct {
	name     string
	typ      vk.PhysicalDeviceType
	families []vk.QueueFlags
}

type fakeDriver struct {
	j *journal

	createInstanceResult vk.Result
	enumerateResult      vk.Result
	createDeviceResult   vk.Result
	formatsResult        vk.Result
	supportResult        vk.Result
	noPresent            bool

	gpus    []fakeGPU
	formats []vk.SurfaceFormat

	handles      []vk.PhysicalDevice
	instance     vk.Instance
	device       vk.Device
	instanceInfo *InstanceInfo
	deviceInfo   *DeviceInfo
	deviceGPU    vk.PhysicalDevice
}

func newFakeDriver(j *journal, gpus ...fakeGPU) *fakeDriver {
	d := &fakeDriver{j: j, gpus: gpus}
	for range gpus {
		d.handles = append(d.handles, vk.PhysicalDevice(newHandle()))
	}
	return d
}

func (d *fakeDriver) gpu(handle vk.PhysicalDevice) fakeGPU {
	for i, h := range d.handles {
		if h == handle {
			return d.gpus[i]
		}
	}
	panic("unknown physical device")
}

// fill behaves like a count-then-fill driver query over src.
func fill[T any](src []T, count *uint32, out []T) vk.Result {
	if out == nil {
		*count = uint32(len(src))
		return vk.Success
	}
	n := int(*count)
	if n > len(out) {
		n = len(out)
	}
	n = copy(out[:n], src)
	*count = uint32(n)
	if n < len(src) {
		return vk.Incomplete
	}
	return vk.Success
}

func (d *fakeDriver) CreateInstance(info *InstanceInfo) (vk.Instance, vk.Result) {
	d.j.record("instance.Create")
	d.instanceInfo = info
	if d.createInstanceResult != vk.Success {
		return nil, d.createInstanceResult
	}
	d.instance = vk.Instance(newHandle())
	return d.instance, vk.Success
}

func (d *fakeDriver) DestroyInstance(instance vk.Instance) {
	if instance != d.instance {
		panic("destroying an unknown instance")
	}
	d.j.record("instance.Destroy")
}

func (d *fakeDriver) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, out []vk.PhysicalDevice) vk.Result {
	if d.enumerateResult != vk.Success {
		return d.enumerateResult
	}
	return fill(d.handles, count, out)
}

func (d *fakeDriver) PhysicalDeviceProperties(gpu vk.PhysicalDevice) vk.PhysicalDeviceProperties {
	g := d.gpu(gpu)
	props := vk.PhysicalDeviceProperties{
		DeviceType:    g.typ,
		VendorID:      0x10de,
		ApiVersion:    vk.MakeVersion(1, 2, 0),
		DriverVersion: vk.MakeVersion(470, 0, 0),
	}
	copy(props.DeviceName[:], g.name)
	return props
}

func (d *fakeDriver) QueueFamilyProperties(gpu vk.PhysicalDevice, count *uint32, out []vk.QueueFamilyProperties) {
	var props []vk.QueueFamilyProperties
	for _, flags := range d.gpu(gpu).families {
		props = append(props, vk.QueueFamilyProperties{QueueFlags: flags, QueueCount: 1})
	}
	fill(props, count, out)
}

func (d *fakeDriver) CreateDevice(gpu vk.PhysicalDevice, info *DeviceInfo) (vk.Device, vk.Result) {
	d.j.record("device.Create")
	d.deviceGPU = gpu
	d.deviceInfo = info
	if d.createDeviceResult != vk.Success {
		return nil, d.createDeviceResult
	}
	d.device = vk.Device(newHandle())
	return d.device, vk.Success
}

func (d *fakeDriver) DestroyDevice(device vk.Device) {
	if device != d.device {
		panic("destroying an unknown device")
	}
	d.j.record("device.Destroy")
}

func (d *fakeDriver) SurfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface, count *uint32, out []vk.SurfaceFormat) vk.Result {
	if d.formatsResult != vk.Success {
		return d.formatsResult
	}
	return fill(d.formats, count, out)
}

func (d *fakeDriver) SurfaceSupport(gpu vk.PhysicalDevice, family uint32, surface vk.Surface) (bool, vk.Result) {
	return !d.noPresent, d.supportResult
}

func (d *fakeDriver) DestroySurface(instance vk.Instance, surface vk.Surface) {
	if instance != d.instance {
		panic("destroying a surface with the wrong instance")
	}
	d.j.record("surface.Destroy")
}

// inspectingDriver also reports what is installed on the system.
type inspectingDriver struct {
	*fakeDriver
	layers     []string
	extensions []string
}

func (d *inspectingDriver) AvailableLayers() ([]string, error) {
	return d.layers, nil
}

func (d *inspectingDriver) AvailableExtensions() ([]string, error) {
	return d.extensions, nil
}

type fakeWindowSystem struct {
	j *journal

	initErr          error
	unsupported      bool
	createWindowErr  error
	createSurfaceErr error
	required         []string

	width, height int
	title         string
}

func (s *fakeWindowSystem) Init() error {
	s.j.record("ws.Init")
	return s.initErr
}

func (s *fakeWindowSystem) VulkanSupported() bool {
	return !s.unsupported
}

func (s *fakeWindowSystem) RequiredInstanceExtensions() []string {
	return s.required
}

func (s *fakeWindowSystem) CreateWindow(width, height int, title string) (Window, error) {
	s.j.record("window.Create")
	s.width, s.height, s.title = width, height, title
	if s.createWindowErr != nil {
		return nil, s.createWindowErr
	}
	return &fakeWindow{j: s.j, surfaceErr: s.createSurfaceErr}, nil
}

func (s *fakeWindowSystem) Terminate() {
	s.j.record("ws.Terminate")
}

type fakeWindow struct {
	j          *journal
	surfaceErr error
}

func (w *fakeWindow) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	w.j.record("surface.Create")
	if instance == nil {
		return vk.NullSurface, errors.New("no instance")
	}
	if w.surfaceErr != nil {
		return vk.NullSurface, w.surfaceErr
	}
	return vk.Surface(newHandle()), nil
}

func (w *fakeWindow) Destroy() {
	w.j.record("window.Destroy")
}

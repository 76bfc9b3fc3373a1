package vkcontext

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// Context owns everything needed before anything can be drawn: a window,
// an instance, the selected physical device, a logical device and a
// presentation surface bound to the window.
type Context struct {
	id      uuid.UUID
	cfg     Config
	drv     Driver
	ws      WindowSystem
	log     logrus.FieldLogger
	printer Printer

	selectDevice      DeviceSelector
	selectQueueFamily QueueFamilySelector

	state   State
	history []State
	unwind  Unwind
	started time.Duration

	window   Window
	instance vk.Instance
	gpu      vk.PhysicalDevice
	device   vk.Device
	surface  vk.Surface

	instanceLayers     []string
	instanceExtensions []string
	deviceExtensions   []string

	devices             []PhysicalDeviceInfo
	queueFamilies       []QueueFamily
	graphicsQueueFamily uint32
	presentSupported    bool
	surfaceFormats      []SurfaceFormat
}

// Option customizes a Context before bring-up.
type Option func(c *Context)

// WithLogger sets the logger lifecycle events are written to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Context) {
		c.log = log
	}
}

// WithPrinter sets where diagnostic output goes. By default it is discarded.
func WithPrinter(p Printer) Option {
	return func(c *Context) {
		c.printer = p
	}
}

// WithDeviceSelector replaces the FirstDevice policy.
func WithDeviceSelector(s DeviceSelector) Option {
	return func(c *Context) {
		c.selectDevice = s
	}
}

// WithQueueFamilySelector replaces the FirstGraphics policy.
func WithQueueFamilySelector(s QueueFamilySelector) Option {
	return func(c *Context) {
		c.selectQueueFamily = s
	}
}

// New brings a context up. It either returns a Ready context or releases
// everything it acquired, in reverse order, and returns the error.
func New(cfg Config, drv Driver, ws WindowSystem, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Context{
		id:                  uuid.New(),
		cfg:                 cfg,
		drv:                 drv,
		ws:                  ws,
		log:                 logrus.StandardLogger(),
		printer:             NewTextPrinter(io.Discard),
		selectDevice:        FirstDevice,
		selectQueueFamily:   FirstGraphics,
		state:               Uninitialized,
		history:             []State{Uninitialized},
		graphicsQueueFamily: InvalidQueueFamily,
		surface:             vk.NullSurface,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithField("context", c.id.String())
	c.started = hrtime.Now()

	err := c.init()
	if flushErr := c.printer.Flush(); flushErr != nil {
		c.log.WithError(flushErr).Warn("diagnostic output failed")
	}
	if err != nil {
		c.fail(err)
		return nil, err
	}
	return c, nil
}

func (c *Context) init() error {
	if err := c.ws.Init(); err != nil {
		return errors.Mark(errors.Wrap(err, "window system failed to init"), ErrWindowSystem)
	}
	c.unwind.Add("window system", c.ws.Terminate)
	if !c.ws.VulkanSupported() {
		return errors.WithStack(ErrVulkanUnsupported)
	}
	c.transition(WindowSystemReady)

	required := c.ws.RequiredInstanceExtensions()
	c.instanceLayers = append([]string{}, c.cfg.InstanceLayers...)
	c.instanceExtensions = append(append([]string{}, c.cfg.InstanceExtensions...), required...)
	c.deviceExtensions = append([]string{}, c.cfg.DeviceExtensions...)
	for _, name := range required {
		c.log.WithField("extension", name).Info("Require extension")
	}
	c.printer.RequiredExtensions(required)
	c.inspect()

	if err := c.createInstance(); err != nil {
		return err
	}
	if err := c.pickPhysicalDevice(); err != nil {
		return err
	}
	if err := c.createLogicalDevice(); err != nil {
		return err
	}
	if err := c.createSurface(); err != nil {
		return err
	}
	if err := c.querySurfaceFormats(); err != nil {
		return err
	}
	c.transition(Ready)
	return nil
}

// inspect warns about requested names the system does not provide. The
// requested lists are passed to the driver unchanged either way.
func (c *Context) inspect() {
	insp, ok := c.drv.(Inspector)
	if !ok {
		return
	}
	layers, err := insp.AvailableLayers()
	if err != nil {
		c.log.WithError(err).Warn("could not list instance layers")
	} else {
		c.printer.Layers(layers)
		for _, name := range missing(c.instanceLayers, layers) {
			c.log.WithField("layer", name).Warn("requested layer is not available")
		}
	}
	extensions, err := insp.AvailableExtensions()
	if err != nil {
		c.log.WithError(err).Warn("could not list instance extensions")
		return
	}
	for _, name := range missing(c.instanceExtensions, extensions) {
		c.log.WithField("extension", name).Warn("requested extension is not available")
	}
}

func (c *Context) createInstance() error {
	instance, ret := c.drv.CreateInstance(&InstanceInfo{
		Application: c.cfg.Application,
		Layers:      c.instanceLayers,
		Extensions:  c.instanceExtensions,
	})
	if err := NewError("vkCreateInstance", ret); err != nil {
		return err
	}
	c.instance = instance
	c.unwind.Add("instance", func() {
		c.drv.DestroyInstance(instance)
		c.instance = nil
	})
	c.transition(InstanceCreated)
	return nil
}

func (c *Context) pickPhysicalDevice() error {
	gpus, err := Enumerate[vk.PhysicalDevice]("physical devices", func(count *uint32, out []vk.PhysicalDevice) vk.Result {
		return c.drv.EnumeratePhysicalDevices(c.instance, count, out)
	})
	if err != nil {
		return err
	}
	if len(gpus) == 0 {
		return errors.WithStack(ErrNoPhysicalDevices)
	}
	c.devices = make([]PhysicalDeviceInfo, len(gpus))
	for i, gpu := range gpus {
		c.devices[i] = newPhysicalDeviceInfo(i, gpu, c.drv.PhysicalDeviceProperties(gpu))
	}
	c.printer.Devices(c.devices)

	selected := c.selectDevice(c.devices)
	if selected < 0 || selected >= len(c.devices) {
		return errors.Newf("device selector picked %d out of %d devices", selected, len(c.devices))
	}
	c.gpu = c.devices[selected].Handle
	c.log.WithFields(logrus.Fields{
		"gpu":  c.devices[selected].Name,
		"type": DeviceTypeString(c.devices[selected].Type),
	}).Info("physical device selected")
	c.transition(DeviceSelected)
	return nil
}

func (c *Context) createLogicalDevice() error {
	props := EnumerateVoid[vk.QueueFamilyProperties](func(count *uint32, out []vk.QueueFamilyProperties) {
		c.drv.QueueFamilyProperties(c.gpu, count, out)
	})
	c.queueFamilies = queueFamiliesFrom(props)
	c.printer.QueueFamilies(c.queueFamilies)

	family := c.selectQueueFamily(c.queueFamilies)
	if family == InvalidQueueFamily || int64(family) >= int64(len(c.queueFamilies)) {
		return errors.WithStack(ErrNoGraphicsQueue)
	}
	c.graphicsQueueFamily = family

	device, ret := c.drv.CreateDevice(c.gpu, &DeviceInfo{
		Queues: []QueueInfo{{
			FamilyIndex: family,
			Priorities:  []float32{1.0},
		}},
		Extensions: c.deviceExtensions,
	})
	if err := NewError("vkCreateDevice", ret); err != nil {
		return err
	}
	c.device = device
	c.unwind.Add("device", func() {
		c.drv.DestroyDevice(device)
		c.device = nil
	})
	c.log.WithField("family", family).Info("logical device created")
	c.transition(LogicalDeviceCreated)
	return nil
}

func (c *Context) createSurface() error {
	window, err := c.ws.CreateWindow(c.cfg.Width, c.cfg.Height, c.cfg.Application.ApplicationName)
	if err != nil {
		return errors.Wrap(err, "creating window")
	}
	c.window = window
	c.unwind.Add("window", func() {
		window.Destroy()
		c.window = nil
	})

	surface, err := window.CreateSurface(c.instance)
	if err != nil {
		return errors.Wrap(err, "could not init Vulkan surface")
	}
	c.surface = surface
	instance := c.instance
	c.unwind.Add("surface", func() {
		c.drv.DestroySurface(instance, surface)
		c.surface = vk.NullSurface
	})
	c.transition(SurfaceBound)

	// The graphics family was chosen before the surface existed.
	supported, ret := c.drv.SurfaceSupport(c.gpu, c.graphicsQueueFamily, surface)
	if err := NewError("vkGetPhysicalDeviceSurfaceSupportKHR", ret); err != nil {
		c.log.WithError(err).Warn("could not query present support")
		return nil
	}
	c.presentSupported = supported
	if !supported {
		c.log.WithField("family", c.graphicsQueueFamily).Warn("graphics queue family cannot present to the surface")
	}
	return nil
}

func (c *Context) querySurfaceFormats() error {
	list, err := Enumerate[vk.SurfaceFormat]("surface formats", func(count *uint32, out []vk.SurfaceFormat) vk.Result {
		return c.drv.SurfaceFormats(c.gpu, c.surface, count, out)
	})
	if err != nil {
		return err
	}
	c.surfaceFormats = surfaceFormatsFrom(list)
	c.printer.SurfaceFormats(c.surfaceFormats)
	return nil
}

func (c *Context) transition(s State) {
	c.state = s
	c.history = append(c.history, s)
	c.log.WithFields(logrus.Fields{
		"state":   s.String(),
		"elapsed": hrtime.Since(c.started),
	}).Info("state changed")
}

func (c *Context) fail(err error) {
	c.log.WithError(err).WithField("state", c.state.String()).Error("bring-up failed")
	c.transition(Failed)
	c.release()
}

func (c *Context) release() {
	c.unwind.Unwind(func(name string) {
		c.log.WithField("resource", name).Debug("releasing")
	})
}

// Destroy releases the surface, window, logical device, instance and window
// system, in that order. It is safe to call more than once.
func (c *Context) Destroy() {
	if c == nil || c.state == Destroyed {
		return
	}
	c.release()
	c.transition(Destroyed)
}

func (c *Context) ID() uuid.UUID {
	return c.id
}

func (c *Context) State() State {
	return c.state
}

// History returns every state the context went through, in order.
func (c *Context) History() []State {
	return append([]State(nil), c.history...)
}

func (c *Context) Window() Window {
	return c.window
}

func (c *Context) Instance() vk.Instance {
	return c.instance
}

func (c *Context) PhysicalDevice() vk.PhysicalDevice {
	return c.gpu
}

func (c *Context) Device() vk.Device {
	return c.device
}

func (c *Context) Surface() vk.Surface {
	return c.surface
}

// GraphicsQueueFamily is the index of the family the device queue came from.
func (c *Context) GraphicsQueueFamily() uint32 {
	return c.graphicsQueueFamily
}

// PresentSupported reports whether the graphics queue family can present
// to the surface.
func (c *Context) PresentSupported() bool {
	return c.presentSupported
}

func (c *Context) InstanceLayers() []string {
	return c.instanceLayers
}

func (c *Context) InstanceExtensions() []string {
	return c.instanceExtensions
}

func (c *Context) DeviceExtensions() []string {
	return c.deviceExtensions
}

func (c *Context) Devices() []PhysicalDeviceInfo {
	return c.devices
}

func (c *Context) QueueFamilies() []QueueFamily {
	return c.queueFamilies
}

// SurfaceFormats lists what the surface supports. None is selected yet.
func (c *Context) SurfaceFormats() []SurfaceFormat {
	return c.surfaceFormats
}

func missing(requested, available []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, name := range available {
		have[name] = struct{}{}
	}
	var out []string
	for _, name := range requested {
		if _, ok := have[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

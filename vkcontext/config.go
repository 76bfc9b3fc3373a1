package vkcontext

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// Report formats accepted by Config.Report.
const (
	ReportText  = "text"
	ReportTable = "table"
)

// Config describes the context to bring up.
type Config struct {
	Width  int
	Height int

	Application ApplicationInfo

	// InstanceLayers, InstanceExtensions and DeviceExtensions are the
	// hard-coded required names. Extensions required by the window system
	// are appended to InstanceExtensions at bring-up.
	InstanceLayers     []string
	InstanceExtensions []string
	DeviceExtensions   []string

	Report   string
	LogLevel string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Application: ApplicationInfo{
			APIVersion:         vk.MakeVersion(1, 0, 2),
			ApplicationName:    "GLFW test",
			ApplicationVersion: 1,
			EngineName:         "vkcam",
			EngineVersion:      1,
		},
		InstanceLayers:     []string{"VK_LAYER_LUNARG_standard_validation"},
		InstanceExtensions: []string{"VK_EXT_debug_report"},
		DeviceExtensions:   []string{vk.KhrSwapchainExtensionName},
		Report:             ReportText,
		LogLevel:           "info",
	}
}

// LoadConfig returns DefaultConfig overlaid with VKCONTEXT_* variables from
// the environment or a .env file.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	var err error
	if cfg.Width, err = envInt("VKCONTEXT_WIDTH", cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt("VKCONTEXT_HEIGHT", cfg.Height); err != nil {
		return cfg, err
	}
	cfg.Application.ApplicationName = envy.Get("VKCONTEXT_APP_NAME", cfg.Application.ApplicationName)
	cfg.Application.EngineName = envy.Get("VKCONTEXT_ENGINE_NAME", cfg.Application.EngineName)
	cfg.InstanceLayers = envList("VKCONTEXT_LAYERS", cfg.InstanceLayers)
	cfg.InstanceExtensions = envList("VKCONTEXT_INSTANCE_EXTENSIONS", cfg.InstanceExtensions)
	cfg.DeviceExtensions = envList("VKCONTEXT_DEVICE_EXTENSIONS", cfg.DeviceExtensions)
	cfg.Report = envy.Get("VKCONTEXT_REPORT", cfg.Report)
	cfg.LogLevel = envy.Get("VKCONTEXT_LOG_LEVEL", cfg.LogLevel)

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values bring-up cannot use.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "window size %dx%d", c.Width, c.Height)
	}
	if c.Application.ApplicationName == "" {
		return errors.Wrap(ErrInvalidConfig, "empty application name")
	}
	switch c.Report {
	case ReportText, ReportTable:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown report format %q", c.Report)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level: %v", err)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, errors.Wrapf(ErrInvalidConfig, "%s=%q", key, v)
	}
	return n, nil
}

// envList reads a comma separated list. An empty value clears the list.
func envList(key string, def []string) []string {
	v, err := envy.MustGet(key)
	if err != nil {
		return def
	}
	var list []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}

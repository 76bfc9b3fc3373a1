package vkcontext

import "github.com/cockroachdb/errors"

// environment errors
var (
	ErrWindowSystem      = errors.New("window system failed to init")
	ErrVulkanUnsupported = errors.New("vulkan not supported")
)

// selection errors
var (
	ErrNoPhysicalDevices = errors.New("no physical devices found")
	ErrNoGraphicsQueue   = errors.New("unable to find graphics queue family")
)

var (
	ErrIncomplete    = errors.New("enumeration kept returning an incomplete array")
	ErrInvalidConfig = errors.New("invalid configuration")
)

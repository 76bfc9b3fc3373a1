package vkcontext

// State is a step of the context bring-up sequence.
type State int

const (
	Uninitialized State = iota
	WindowSystemReady
	InstanceCreated
	DeviceSelected
	LogicalDeviceCreated
	SurfaceBound
	Ready
	// Failed is terminal and reachable from any state before Ready.
	Failed
	// Destroyed is reached once every resource has been released.
	Destroyed
)

var stateNames = [...]string{
	Uninitialized:        "Uninitialized",
	WindowSystemReady:    "WindowSystemReady",
	InstanceCreated:      "InstanceCreated",
	DeviceSelected:       "DeviceSelected",
	LogicalDeviceCreated: "LogicalDeviceCreated",
	SurfaceBound:         "SurfaceBound",
	Ready:                "Ready",
	Failed:               "Failed",
	Destroyed:            "Destroyed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is allowed.
func (s State) Terminal() bool {
	return s == Failed || s == Destroyed
}

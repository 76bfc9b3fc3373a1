package vkcontext

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	f := newFixture(twoGPUs()...)
	var out bytes.Buffer

	require.NoError(t, Run(DefaultConfig(), f.drv, f.ws, &out, WithLogger(f.log)))
	assert.Contains(t, out.String(), "Supported SurfaceFormats:")
	assert.Equal(t, []string{
		"surface.Destroy",
		"window.Destroy",
		"device.Destroy",
		"instance.Destroy",
		"ws.Terminate",
	}, f.j.releases())
}

func TestRunTable(t *testing.T) {
	f := newFixture(twoGPUs()...)
	cfg := DefaultConfig()
	cfg.Report = ReportTable
	var out bytes.Buffer

	require.NoError(t, Run(cfg, f.drv, f.ws, &out, WithLogger(f.log)))
	assert.Contains(t, out.String(), "VULKAN CONTEXT")
	assert.Contains(t, out.String(), "Discrete Test GPU")
}

func TestRunFailure(t *testing.T) {
	f := newFixture()
	var out bytes.Buffer

	err := Run(DefaultConfig(), f.drv, f.ws, &out, WithLogger(f.log))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPhysicalDevices))
	assert.Equal(t, []string{"instance.Destroy", "ws.Terminate"}, f.j.releases())
}

package addon_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediakit/addon-sdk/addon"
	"github.com/mediakit/addon-sdk/api"
	"github.com/mediakit/addon-sdk/hostsim"
	"github.com/mediakit/addon-sdk/version"
)

func pathBridge(t *testing.T) *addon.Bridge {
	t.Helper()
	host := hostsim.New(
		hostsim.WithAddonPath("/addons/spectrum"),
		hostsim.WithUserPath("/userdata/addon_data/spectrum"),
		hostsim.WithLibPath("/addons/spectrum/lib"),
	)
	br, _ := addon.Register(host.Interface(), func(*addon.Bridge) addon.Addon {
		return &testAddon{}
	})
	return br
}

func TestAddonPathAppend(t *testing.T) {
	br := pathBridge(t)
	sep := string(os.PathSeparator)

	assert.Equal(t, "/addons/spectrum", br.AddonPath(""))
	assert.Equal(t, "/addons/spectrum"+sep+"resources", br.AddonPath("resources"))
	assert.Equal(t, "/addons/spectrum/presets", br.AddonPath("/presets"))
}

func TestBaseUserPathAppend(t *testing.T) {
	br := pathBridge(t)
	sep := string(os.PathSeparator)

	assert.Equal(t, "/userdata/addon_data/spectrum", br.BaseUserPath(""))
	assert.Equal(t, "/userdata/addon_data/spectrum"+sep+"cache", br.BaseUserPath("cache"))
}

func TestLibPath(t *testing.T) {
	br := pathBridge(t)
	assert.Equal(t, "/addons/spectrum/lib", br.LibPath())
}

func TestTypeVersionForwarding(t *testing.T) {
	br := pathBridge(t)

	assert.Equal(t, version.ForType(api.TypeScreensaver), br.TypeVersion(api.TypeScreensaver))
	assert.Equal(t, version.MinForType(api.TypeScreensaver), br.TypeMinVersion(api.TypeScreensaver))
}

func TestGetInterface(t *testing.T) {
	host := hostsim.New()
	type renderTable struct{ Flip func() }
	host.ProvideInterface("render", "1.0.0", &renderTable{})

	br, _ := addon.Register(host.Interface(), func(*addon.Bridge) addon.Addon {
		return &testAddon{}
	})

	assert.NotNil(t, br.GetInterface("render", "1.0.0"))
	assert.Nil(t, br.GetInterface("render", "2.0.0"))
	assert.Nil(t, br.GetInterface("audio", "1.0.0"))
}

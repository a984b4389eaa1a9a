package addon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit/addon-sdk/addon"
	"github.com/mediakit/addon-sdk/api"
	"github.com/mediakit/addon-sdk/hostsim"
	"github.com/mediakit/addon-sdk/internal/testutil"
)

// testAddon is a configurable addon; hooks not set fall back to the Base
// defaults.
type testAddon struct {
	addon.Base

	createStatus api.Status
	createFn     func(t api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status)
	setSettingFn func(name string, value api.SettingValue) api.Status
	createCalls  int
	destroyedIDs []string
	status       api.Status
}

func (a *testAddon) Create() api.Status {
	return a.createStatus
}

func (a *testAddon) GetStatus() api.Status {
	return a.status
}

func (a *testAddon) SetSetting(name string, value api.SettingValue) api.Status {
	if a.setSettingFn != nil {
		return a.setSettingFn(name, value)
	}
	return a.Base.SetSetting(name, value)
}

func (a *testAddon) CreateInstance(t api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
	a.createCalls++
	if a.createFn != nil {
		return a.createFn(t, id, host, version)
	}
	return nil, api.StatusUnknown
}

func (a *testAddon) DestroyInstance(t api.InstanceType, id string, inst addon.Instance) {
	a.destroyedIDs = append(a.destroyedIDs, id)
}

type testInstance struct {
	addon.InstanceBase

	childFn func(t api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status)
}

func newTestInstance(t api.InstanceType, version string) *testInstance {
	return &testInstance{InstanceBase: addon.NewInstanceBase(t, version)}
}

func (i *testInstance) CreateInstance(t api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
	if i.childFn != nil {
		return i.childFn(t, id, host, version)
	}
	return i.InstanceBase.CreateInstance(t, id, host, version)
}

func register(t *testing.T, a *testAddon) (*hostsim.Host, *api.Interface, *addon.Bridge) {
	t.Helper()
	host := hostsim.New()
	iface := host.Interface()
	br, status := addon.Register(iface, func(*addon.Bridge) addon.Addon { return a })
	testutil.RequireStatus(t, a.createStatus, status)
	return host, iface, br
}

func TestRegisterLifecycle(t *testing.T) {
	a := &testAddon{createStatus: api.StatusOK}
	_, _, br := register(t, a)

	assert.Equal(t, addon.StateRunning, br.State())
	assert.Same(t, a, br.Addon())
}

func TestRegisterCreateHookFailureKeepsCreatedState(t *testing.T) {
	a := &testAddon{createStatus: api.StatusNeedSettings}
	_, _, br := register(t, a)

	assert.Equal(t, addon.StateCreated, br.State())
}

func TestRegisterNilFactoryResultPanics(t *testing.T) {
	iface := hostsim.New().Interface()
	require.PanicsWithValue(t, "addon: factory returned a nil addon", func() {
		addon.Register(iface, func(*addon.Bridge) addon.Addon { return nil })
	})
}

func TestRegisterIncompleteInterfacePanics(t *testing.T) {
	require.Panics(t, func() {
		addon.Register(&api.Interface{}, func(*addon.Bridge) addon.Addon {
			return &testAddon{}
		})
	})
}

func TestCreateDestroyInstanceRoundTrip(t *testing.T) {
	a := &testAddon{}
	a.createFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}
	host, iface, _ := register(t, a)

	handle, status := iface.ToAddon.CreateInstance(api.TypeScreensaver, "saver-1", host, "2.1.0", nil)
	testutil.RequireStatus(t, api.StatusOK, status)

	inst, ok := handle.(addon.Instance)
	require.True(t, ok)
	assert.Equal(t, api.TypeScreensaver, inst.Type())
	assert.Equal(t, "saver-1", inst.ID(), "dispatcher stamps the identifier")
	assert.Equal(t, "2.1.0", inst.HostVersion())

	iface.ToAddon.DestroyInstance(api.TypeScreensaver, handle)
	assert.Equal(t, []string{"saver-1"}, a.destroyedIDs)
}

func TestDestroyInstanceTypeMismatchPanics(t *testing.T) {
	a := &testAddon{}
	a.createFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}
	host, iface, _ := register(t, a)

	handle, _ := iface.ToAddon.CreateInstance(api.TypeScreensaver, "saver-1", host, "2.1.0", nil)

	require.Panics(t, func() {
		iface.ToAddon.DestroyInstance(api.TypeVisualization, handle)
	})
	assert.Empty(t, a.destroyedIDs, "destroy hook must not run on mismatch")
}

func TestDestroyInstanceForeignHandlePanics(t *testing.T) {
	a := &testAddon{}
	_, iface, _ := register(t, a)

	require.Panics(t, func() {
		iface.ToAddon.DestroyInstance(api.TypeScreensaver, "not an instance")
	})
}

func TestCreateInstanceEmptyHandlePanics(t *testing.T) {
	a := &testAddon{} // default hook yields no instance
	host, iface, _ := register(t, a)

	require.PanicsWithValue(t, "addon: CreateInstance returned an empty instance handle", func() {
		iface.ToAddon.CreateInstance(api.TypeScreensaver, "saver-1", host, "2.1.0", nil)
	})
}

func TestCreateInstanceTypeMismatchPanics(t *testing.T) {
	a := &testAddon{}
	a.createFn = func(_ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(api.TypeVisualization, version), api.StatusOK
	}
	host, iface, _ := register(t, a)

	require.Panics(t, func() {
		iface.ToAddon.CreateInstance(api.TypeScreensaver, "saver-1", host, "2.1.0", nil)
	})
}

func TestCreateInstanceParentOfferedFirst(t *testing.T) {
	a := &testAddon{}
	host, iface, _ := register(t, a)

	parent := newTestInstance(api.TypeInputStream, "2.0.3")
	parent.childFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}

	handle, status := iface.ToAddon.CreateInstance(api.TypeVFS, "vfs-1", host, "1.0.1", parent)
	testutil.RequireStatus(t, api.StatusOK, status)
	assert.Equal(t, "vfs-1", handle.(addon.Instance).ID())
	assert.Zero(t, a.createCalls, "base hook must not run when the parent handles creation")
}

func TestCreateInstanceParentDeclinesFallsBackToBase(t *testing.T) {
	a := &testAddon{}
	a.createFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}
	host, iface, _ := register(t, a)

	parent := newTestInstance(api.TypeInputStream, "2.0.3") // declines via default hook

	_, status := iface.ToAddon.CreateInstance(api.TypeVFS, "vfs-1", host, "1.0.1", parent)
	testutil.RequireStatus(t, api.StatusOK, status)
	assert.Equal(t, 1, a.createCalls)
}

func TestDefaultInstanceShortCircuit(t *testing.T) {
	a := &testAddon{}
	host, iface, br := register(t, a)

	shared := newTestInstance(api.TypeVisualization, "2.2.1")
	br.SetDefaultInstance(shared)

	handle, status := iface.ToAddon.CreateInstance(api.TypeVisualization, "viz-1", host, "2.2.1", nil)
	testutil.RequireStatus(t, api.StatusOK, status)
	assert.Same(t, shared, handle)
	assert.Equal(t, "viz-1", shared.ID(), "shared instance carries the requested identifier")
	assert.Zero(t, a.createCalls, "general creation path must not run for the shared instance")
}

func TestDefaultInstanceYieldsToParent(t *testing.T) {
	a := &testAddon{}
	host, iface, br := register(t, a)

	br.SetDefaultInstance(newTestInstance(api.TypeInputStream, "2.0.3"))

	parent := newTestInstance(api.TypeInputStream, "2.0.3")
	parent.childFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}

	handle, status := iface.ToAddon.CreateInstance(api.TypeInputStream, "demux-1", host, "2.0.3", parent)
	testutil.RequireStatus(t, api.StatusOK, status)
	assert.NotSame(t, br.DefaultInstance(), handle, "parent creation takes precedence over the shared instance")
	assert.Equal(t, "demux-1", handle.(addon.Instance).ID())
}

func TestDefaultInstanceRequiresMatchingHostHandle(t *testing.T) {
	a := &testAddon{}
	a.createFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}
	_, iface, br := register(t, a)

	br.SetDefaultInstance(newTestInstance(api.TypeVisualization, "2.2.1"))

	other := hostsim.New()
	_, status := iface.ToAddon.CreateInstance(api.TypeVisualization, "viz-2", other, "2.2.1", nil)
	testutil.RequireStatus(t, api.StatusOK, status)
	assert.Equal(t, 1, a.createCalls, "foreign host handle takes the general path")
}

func TestDefaultInstanceRequiresMatchingType(t *testing.T) {
	a := &testAddon{}
	a.createFn = func(typ api.InstanceType, id string, host api.Handle, version string) (addon.Instance, api.Status) {
		return newTestInstance(typ, version), api.StatusOK
	}
	host, iface, br := register(t, a)

	br.SetDefaultInstance(newTestInstance(api.TypeVisualization, "2.2.1"))

	_, status := iface.ToAddon.CreateInstance(api.TypeScreensaver, "saver-1", host, "2.1.0", nil)
	testutil.RequireStatus(t, api.StatusOK, status)
	assert.Equal(t, 1, a.createCalls)
}

func TestDestroyInstanceNoopInSingleInstanceMode(t *testing.T) {
	a := &testAddon{}
	host, iface, br := register(t, a)

	shared := newTestInstance(api.TypeVisualization, "2.2.1")
	br.SetDefaultInstance(shared)
	handle, _ := iface.ToAddon.CreateInstance(api.TypeVisualization, "viz-1", host, "2.2.1", nil)

	// Even a mismatched tag is ignored; the shared instance dies with the
	// module.
	iface.ToAddon.DestroyInstance(api.TypeScreensaver, handle)
	assert.Empty(t, a.destroyedIDs)
}

func TestGetStatusForwards(t *testing.T) {
	a := &testAddon{status: api.StatusNeedRestart}
	_, iface, _ := register(t, a)

	testutil.RequireStatus(t, api.StatusNeedRestart, iface.ToAddon.GetStatus())
}

func TestDestroyIsTerminal(t *testing.T) {
	a := &testAddon{}
	_, iface, br := register(t, a)

	iface.ToAddon.Destroy()

	assert.Equal(t, addon.StateDestroyed, br.State())
	assert.Nil(t, br.Addon())
	assert.Nil(t, br.DefaultInstance())
}

package addon

import (
	"fmt"

	"github.com/mediakit/addon-sdk/api"
)

// State tracks the module lifecycle. Destroyed is terminal; a destroyed
// module cannot be re-created without a reload.
type State int

const (
	StateUnloaded State = iota
	StateCreated
	StateRunning
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Bridge is the per-load context threaded through every dispatch call. It
// replaces the process-wide interface pointer of older binding layers: one
// Bridge is built by Register, owns the base addon object, and holds the
// host function table the helper methods forward to.
type Bridge struct {
	toHost          *api.ToHost
	firstHostHandle api.Handle
	libBasePath     string
	apiVersion      string

	base            Addon
	defaultInstance Instance
	state           State
}

// Register constructs the addon via factory, binds the dispatch functions
// into iface.ToAddon, and runs the addon's Create hook. The returned status
// is the hook's result; a factory that fails to produce an addon is an
// addon programming error and panics.
//
// The host calls the module's creation entry point exactly once per load;
// Register must only run from there.
func Register(iface *api.Interface, factory func(*Bridge) Addon) (*Bridge, api.Status) {
	if iface == nil || iface.ToHost == nil || iface.ToAddon == nil {
		panic("addon: Register called with an incomplete host interface")
	}

	br := &Bridge{
		toHost:          iface.ToHost,
		firstHostHandle: iface.FirstHostHandle,
		libBasePath:     iface.LibBasePath,
		apiVersion:      iface.APIVersion,
		state:           StateUnloaded,
	}

	base := factory(br)
	if base == nil {
		panic("addon: factory returned a nil addon")
	}
	base.attach(br)
	br.base = base
	br.state = StateCreated

	iface.ToAddon.Destroy = br.destroy
	iface.ToAddon.GetStatus = br.getStatus
	iface.ToAddon.SetSetting = br.setSetting
	iface.ToAddon.CreateInstance = br.createInstance
	iface.ToAddon.DestroyInstance = br.destroyInstance

	status := base.Create()
	if status == api.StatusOK {
		br.state = StateRunning
	}
	return br, status
}

// State returns the current lifecycle state.
func (br *Bridge) State() State { return br.state }

// Addon returns the base addon object, or nil after Destroy.
func (br *Bridge) Addon() Addon { return br.base }

// APIVersion returns the host's global addon API version string.
func (br *Bridge) APIVersion() string { return br.apiVersion }

// SetDefaultInstance switches the bridge into single-instance mode: a
// creation request from the load-time host handle whose type matches inst
// returns inst directly instead of running the base creation hook (a
// parent instance that claims the request still wins), and instance
// destruction becomes a no-op. Call it from the Create hook.
func (br *Bridge) SetDefaultInstance(inst Instance) {
	br.defaultInstance = inst
}

// DefaultInstance returns the shared instance, or nil when the addon runs
// in multi-instance mode.
func (br *Bridge) DefaultInstance() Instance { return br.defaultInstance }

// destroy drops the base object and marks the terminal state. The host
// contract guarantees exactly one call; a second call is undefined.
func (br *Bridge) destroy() {
	br.base = nil
	br.defaultInstance = nil
	br.state = StateDestroyed
}

func (br *Bridge) getStatus() api.Status {
	return br.base.GetStatus()
}

func (br *Bridge) setSetting(name string, value api.SettingValue) api.Status {
	return br.base.SetSetting(name, value)
}

// createInstance routes an instance creation request through the candidate
// chain: the parent instance first, then the shared default instance, then
// the base addon. A nil result or a type tag differing from the request
// means a broken addon implementation and fails fast.
func (br *Bridge) createInstance(t api.InstanceType, id string, host api.Handle, version string, parent api.Handle) (api.Handle, api.Status) {
	var inst Instance
	status := api.StatusNotImplemented
	if parent != nil {
		p, ok := parent.(Instance)
		if !ok {
			panic(fmt.Sprintf("addon: CreateInstance parent handle %T is not an instance", parent))
		}
		inst, status = p.CreateInstance(t, id, host, version)
	}
	if status == api.StatusNotImplemented {
		if br.defaultInstance != nil && host == br.firstHostHandle && br.defaultInstance.Type() == t {
			inst, status = br.defaultInstance, api.StatusOK
		} else {
			inst, status = br.base.CreateInstance(t, id, host, version)
		}
	}

	if inst == nil {
		panic("addon: CreateInstance returned an empty instance handle")
	}
	if inst.Type() != t {
		panic(fmt.Sprintf("addon: CreateInstance returned a %s instance for a %s request", inst.Type(), t))
	}

	inst.stamp(id)
	return inst, status
}

// destroyInstance verifies the handle's recorded type and notifies the base
// addon. In single-instance mode, or when the handle is the base object
// itself, the call is a no-op: the shared instance dies with the module.
func (br *Bridge) destroyInstance(t api.InstanceType, h api.Handle) {
	if br.defaultInstance != nil || h == api.Handle(br.base) {
		return
	}

	inst, ok := h.(Instance)
	if !ok {
		panic(fmt.Sprintf("addon: DestroyInstance called with a foreign handle %T", h))
	}
	if inst.Type() != t {
		panic(fmt.Sprintf("addon: DestroyInstance called with type %s for a %s instance", t, inst.Type()))
	}

	br.base.DestroyInstance(t, inst.ID(), inst)
}

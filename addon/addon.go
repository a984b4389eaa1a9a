package addon

import "github.com/mediakit/addon-sdk/api"

// Addon is the author-implemented main object of a loaded module. Exactly
// one exists per load. Embed Base to inherit the default hook behavior and
// override what the addon actually handles.
type Addon interface {
	// Create runs once right after construction. Returning anything other
	// than StatusOK leaves the addon out of the Running state.
	Create() api.Status

	// GetStatus reports the addon's current health to the host.
	GetStatus() api.Status

	// SetSetting delivers a changed setting. The value view is only valid
	// for the duration of the call.
	SetSetting(name string, value api.SettingValue) api.Status

	// CreateInstance produces a typed sub-instance, or declines with
	// StatusNotImplemented / fails with StatusUnknown.
	CreateInstance(t api.InstanceType, id string, host api.Handle, version string) (Instance, api.Status)

	// DestroyInstance is notified before an instance is dropped. id is the
	// identifier stamped at creation.
	DestroyInstance(t api.InstanceType, id string, inst Instance)

	attach(*Bridge)
}

// Base provides the default hook implementations. Embed it by value.
type Base struct {
	bridge *Bridge
}

// Bridge returns the bridge this addon was registered with. It is nil until
// Register has run the factory.
func (b *Base) Bridge() *Bridge { return b.bridge }

func (b *Base) attach(br *Bridge) { b.bridge = br }

func (b *Base) Create() api.Status { return api.StatusOK }

func (b *Base) GetStatus() api.Status { return api.StatusOK }

func (b *Base) SetSetting(string, api.SettingValue) api.Status {
	return api.StatusUnknown
}

// CreateInstance fails by default. Single-instance addons never see this
// call for their default instance; the dispatcher short-circuits it.
func (b *Base) CreateInstance(api.InstanceType, string, api.Handle, string) (Instance, api.Status) {
	return nil, api.StatusUnknown
}

// DestroyInstance is an optional notification; the default does nothing.
func (b *Base) DestroyInstance(api.InstanceType, string, Instance) {}

package addon

import "github.com/mediakit/addon-sdk/api"

// Instance is a typed sub-object created on host request for a specific
// capability (screensaver, visualization, ...). Implementations embed
// InstanceBase and override CreateInstance when they host child instances.
type Instance interface {
	// Type returns the instance-type tag recorded at construction.
	Type() api.InstanceType

	// HostVersion returns the instance API version the host requested.
	HostVersion() string

	// ID returns the identifier the host assigned, stamped by the
	// dispatcher after creation.
	ID() string

	// CreateInstance lets a parent instance handle creation of a child.
	// Returning StatusNotImplemented declines and passes the request to the
	// next candidate.
	CreateInstance(t api.InstanceType, id string, host api.Handle, version string) (Instance, api.Status)

	stamp(id string)
}

// InstanceBase carries the per-instance bookkeeping every Instance needs.
// Embed it by value; its methods use a pointer receiver.
type InstanceBase struct {
	typ         api.InstanceType
	hostVersion string
	id          string
}

// NewInstanceBase records the instance-type tag and the host's requested
// instance API version.
func NewInstanceBase(t api.InstanceType, hostVersion string) InstanceBase {
	return InstanceBase{typ: t, hostVersion: hostVersion}
}

func (b *InstanceBase) Type() api.InstanceType { return b.typ }

func (b *InstanceBase) HostVersion() string { return b.hostVersion }

func (b *InstanceBase) ID() string { return b.id }

// CreateInstance declines by default; instances without children inherit it.
func (b *InstanceBase) CreateInstance(api.InstanceType, string, api.Handle, string) (Instance, api.Status) {
	return nil, api.StatusNotImplemented
}

func (b *InstanceBase) stamp(id string) { b.id = id }

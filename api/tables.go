package api

// ToHost is the function table the host fills in before handing the
// Interface to the addon entry point. Every call carries the host base
// handle back as its first argument; the addon treats it as opaque.
type ToHost struct {
	// HostBase identifies the host-side object behind this table.
	HostBase Handle

	// Log appends a message to the host log. Over-long messages are
	// truncated by the caller, never rejected.
	Log func(base Handle, level LogLevel, msg string)

	GetSettingString func(base Handle, name string) (string, bool)
	GetSettingInt    func(base Handle, name string) (int, bool)
	GetSettingUInt   func(base Handle, name string) (uint, bool)
	GetSettingBool   func(base Handle, name string) (bool, bool)
	GetSettingFloat  func(base Handle, name string) (float64, bool)

	SetSettingString func(base Handle, name, value string) bool
	SetSettingInt    func(base Handle, name string, value int) bool
	SetSettingUInt   func(base Handle, name string, value uint) bool
	SetSettingBool   func(base Handle, name string, value bool) bool
	SetSettingFloat  func(base Handle, name string, value float64) bool

	GetAddonPath    func(base Handle) string
	GetBaseUserPath func(base Handle) string

	// GetTypeVersion and GetTypeMinVersion report the host's view of an
	// instance-type API version, as MAJOR.MINOR.PATCH strings.
	GetTypeVersion    func(base Handle, t InstanceType) string
	GetTypeMinVersion func(base Handle, t InstanceType) string

	// GetInterface returns a named platform-specific function table, or nil
	// when the host does not provide it.
	GetInterface func(base Handle, name, version string) any
}

// ToAddon is the function table the dispatcher fills in at load time. The
// host calls these to drive the addon lifecycle; the addon never calls them
// itself.
type ToAddon struct {
	Destroy    func()
	GetStatus  func() Status
	SetSetting func(name string, value SettingValue) Status

	// CreateInstance produces a typed sub-instance for the given tag. The
	// returned handle identifies the instance on later calls. parent is the
	// enclosing instance for hierarchical types, or nil.
	CreateInstance func(t InstanceType, id string, host Handle, version string, parent Handle) (Handle, Status)

	// DestroyInstance tears down an instance previously returned from
	// CreateInstance. The type tag must match the one it was created with.
	DestroyInstance func(t InstanceType, inst Handle)
}

// Interface is the record the host hands to the addon creation entry point.
// It lives for the whole module lifetime; the host owns it.
type Interface struct {
	ToHost  *ToHost
	ToAddon *ToAddon

	// FirstHostHandle is the host-side handle passed at load time. The
	// single-default-instance short-circuit compares against it.
	FirstHostHandle Handle

	// LibBasePath is where the host unpacked the addon's binary payload.
	LibBasePath string

	// APIVersion is the host's global addon API version string.
	APIVersion string
}

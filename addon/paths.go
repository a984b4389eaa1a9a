package addon

import (
	"os"

	"github.com/mediakit/addon-sdk/api"
)

// AddonPath returns the host-reported addon install path, with sub appended
// using the platform path separator. Pass "" for the bare path.
func (br *Bridge) AddonPath(sub string) string {
	return appendPath(br.toHost.GetAddonPath(br.toHost.HostBase), sub)
}

// BaseUserPath returns the host-reported addon user-data path, with sub
// appended using the platform path separator.
func (br *Bridge) BaseUserPath(sub string) string {
	return appendPath(br.toHost.GetBaseUserPath(br.toHost.HostBase), sub)
}

// LibPath returns the path the host unpacked the addon binaries to.
func (br *Bridge) LibPath() string { return br.libBasePath }

// TypeVersion returns the host's API version for an instance type.
func (br *Bridge) TypeVersion(t api.InstanceType) string {
	return br.toHost.GetTypeVersion(br.toHost.HostBase, t)
}

// TypeMinVersion returns the oldest instance API version the host accepts
// for an instance type.
func (br *Bridge) TypeMinVersion(t api.InstanceType) string {
	return br.toHost.GetTypeMinVersion(br.toHost.HostBase, t)
}

// GetInterface asks the host for a named platform function table. It
// returns nil when the host does not provide the interface in a compatible
// version.
func (br *Bridge) GetInterface(name, version string) any {
	return br.toHost.GetInterface(br.toHost.HostBase, name, version)
}

// appendPath joins sub onto base unless sub already leads with a
// separator, mirroring the host's path convention on every platform.
func appendPath(base, sub string) string {
	if sub == "" {
		return base
	}
	if sub[0] == '/' || sub[0] == '\\' {
		return base + sub
	}
	return base + string(os.PathSeparator) + sub
}

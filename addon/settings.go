package addon

// Settings accessors forwarding through the host function table. Each type
// has a checked form returning an ok flag, a convenience form returning the
// zero value on failure, and a setter.

// CheckSettingString reads a string setting, reporting whether it exists.
func (br *Bridge) CheckSettingString(name string) (string, bool) {
	return br.toHost.GetSettingString(br.toHost.HostBase, name)
}

// SettingString reads a string setting, or "" when unset.
func (br *Bridge) SettingString(name string) string {
	v, _ := br.CheckSettingString(name)
	return v
}

// SetSettingString stores a string setting on the host.
func (br *Bridge) SetSettingString(name, value string) bool {
	return br.toHost.SetSettingString(br.toHost.HostBase, name, value)
}

// CheckSettingInt reads an int setting, reporting whether it exists.
func (br *Bridge) CheckSettingInt(name string) (int, bool) {
	return br.toHost.GetSettingInt(br.toHost.HostBase, name)
}

// SettingInt reads an int setting, or 0 when unset.
func (br *Bridge) SettingInt(name string) int {
	v, _ := br.CheckSettingInt(name)
	return v
}

// SetSettingInt stores an int setting on the host.
func (br *Bridge) SetSettingInt(name string, value int) bool {
	return br.toHost.SetSettingInt(br.toHost.HostBase, name, value)
}

// CheckSettingUInt reads an unsigned setting, reporting whether it exists.
func (br *Bridge) CheckSettingUInt(name string) (uint, bool) {
	return br.toHost.GetSettingUInt(br.toHost.HostBase, name)
}

// SettingUInt reads an unsigned setting, or 0 when unset.
func (br *Bridge) SettingUInt(name string) uint {
	v, _ := br.CheckSettingUInt(name)
	return v
}

// SetSettingUInt stores an unsigned setting on the host.
func (br *Bridge) SetSettingUInt(name string, value uint) bool {
	return br.toHost.SetSettingUInt(br.toHost.HostBase, name, value)
}

// CheckSettingBool reads a bool setting, reporting whether it exists.
func (br *Bridge) CheckSettingBool(name string) (bool, bool) {
	return br.toHost.GetSettingBool(br.toHost.HostBase, name)
}

// SettingBool reads a bool setting, or false when unset.
func (br *Bridge) SettingBool(name string) bool {
	v, _ := br.CheckSettingBool(name)
	return v
}

// SetSettingBool stores a bool setting on the host.
func (br *Bridge) SetSettingBool(name string, value bool) bool {
	return br.toHost.SetSettingBool(br.toHost.HostBase, name, value)
}

// CheckSettingFloat reads a float setting, reporting whether it exists.
func (br *Bridge) CheckSettingFloat(name string) (float64, bool) {
	return br.toHost.GetSettingFloat(br.toHost.HostBase, name)
}

// SettingFloat reads a float setting, or 0 when unset.
func (br *Bridge) SettingFloat(name string) float64 {
	v, _ := br.CheckSettingFloat(name)
	return v
}

// SetSettingFloat stores a float setting on the host.
func (br *Bridge) SetSettingFloat(name string, value float64) bool {
	return br.toHost.SetSettingFloat(br.toHost.HostBase, name, value)
}

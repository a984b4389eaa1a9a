package api

import "unsafe"

// SettingValue is a read-only view over a host-owned raw setting value.
//
// The host passes the address of the live value; no copy is made and no type
// tag travels with it. The caller must request the type the host actually
// stored — asking for the wrong one reinterprets foreign memory. The view
// must not be retained past the dispatch call that delivered it.
type SettingValue struct {
	p unsafe.Pointer
}

// NewSettingValue wraps a host-owned value pointer.
func NewSettingValue(p unsafe.Pointer) SettingValue {
	return SettingValue{p: p}
}

// Empty reports whether the host passed no value at all.
func (v SettingValue) Empty() bool {
	return v.p == nil
}

// The accessors carry a Get prefix so the view never satisfies
// fmt.Stringer; a String method here would let fmt dereference an empty
// view's nil pointer.

func (v SettingValue) GetString() string {
	return *(*string)(v.p)
}

func (v SettingValue) GetInt() int {
	return *(*int)(v.p)
}

func (v SettingValue) GetUInt() uint {
	return *(*uint)(v.p)
}

func (v SettingValue) GetBool() bool {
	return *(*bool)(v.p)
}

func (v SettingValue) GetFloat() float64 {
	return *(*float64)(v.p)
}

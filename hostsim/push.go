package hostsim

import (
	"unsafe"

	"github.com/mediakit/addon-sdk/api"
)

// PushSetting* store a value and deliver the change to the addon through
// its dispatch table, passing a transient view over the live value — the
// same calling convention the real host uses. The view is only valid for
// the duration of the dispatch call.

func (h *Host) PushSettingString(ta *api.ToAddon, name, value string) api.Status {
	h.SetString(name, value)
	return ta.SetSetting(name, api.NewSettingValue(unsafe.Pointer(&value)))
}

func (h *Host) PushSettingInt(ta *api.ToAddon, name string, value int) api.Status {
	h.SetInt(name, value)
	return ta.SetSetting(name, api.NewSettingValue(unsafe.Pointer(&value)))
}

func (h *Host) PushSettingUInt(ta *api.ToAddon, name string, value uint) api.Status {
	h.SetUInt(name, value)
	return ta.SetSetting(name, api.NewSettingValue(unsafe.Pointer(&value)))
}

func (h *Host) PushSettingBool(ta *api.ToAddon, name string, value bool) api.Status {
	h.SetBool(name, value)
	return ta.SetSetting(name, api.NewSettingValue(unsafe.Pointer(&value)))
}

func (h *Host) PushSettingFloat(ta *api.ToAddon, name string, value float64) api.Status {
	h.SetFloat(name, value)
	return ta.SetSetting(name, api.NewSettingValue(unsafe.Pointer(&value)))
}

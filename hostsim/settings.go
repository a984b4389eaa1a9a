package hostsim

// Typed settings store. One map per primitive type, matching the host's
// per-type storage; names are independent between types.

func (h *Host) GetString(name string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.strings[name]
	return v, ok
}

func (h *Host) SetString(name, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.strings[name] = value
}

func (h *Host) GetInt(name string) (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.ints[name]
	return v, ok
}

func (h *Host) SetInt(name string, value int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ints[name] = value
}

func (h *Host) GetUInt(name string) (uint, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.uints[name]
	return v, ok
}

func (h *Host) SetUInt(name string, value uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.uints[name] = value
}

func (h *Host) GetBool(name string) (bool, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.bools[name]
	return v, ok
}

func (h *Host) SetBool(name string, value bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bools[name] = value
}

func (h *Host) GetFloat(name string) (float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.floats[name]
	return v, ok
}

func (h *Host) SetFloat(name string, value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.floats[name] = value
}

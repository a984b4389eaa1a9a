// Package hostsim is an in-process stand-in for the media-center host. It
// serves the host side of the function-table contract — settings store, log
// sink, paths, version tables — so addons can be exercised in tests and
// examples without a real host process.
package hostsim

import (
	"sync"

	"go.uber.org/zap"

	"github.com/mediakit/addon-sdk/api"
	"github.com/mediakit/addon-sdk/version"
)

// LogEntry is one message delivered through the host log call.
type LogEntry struct {
	Level   api.LogLevel
	Message string
}

type ifaceKey struct {
	name    string
	version string
}

// Host implements the host side of the boundary contract in memory.
type Host struct {
	mu         sync.RWMutex
	logger     *zap.Logger
	addonPath  string
	userPath   string
	libPath    string
	apiVersion string

	strings map[string]string
	ints    map[string]int
	uints   map[string]uint
	bools   map[string]bool
	floats  map[string]float64

	interfaces map[ifaceKey]any
	entries    []LogEntry
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the zap logger the host log sink writes to.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) {
		h.logger = l
	}
}

// WithAddonPath sets the reported addon install path.
func WithAddonPath(p string) Option {
	return func(h *Host) {
		h.addonPath = p
	}
}

// WithUserPath sets the reported addon user-data path.
func WithUserPath(p string) Option {
	return func(h *Host) {
		h.userPath = p
	}
}

// WithLibPath sets the reported binary payload path.
func WithLibPath(p string) Option {
	return func(h *Host) {
		h.libPath = p
	}
}

// New creates a Host with defaults: no-op logger, empty settings store, and
// version tables served from the version package.
func New(opts ...Option) *Host {
	h := &Host{
		logger:     zap.NewNop(),
		addonPath:  "/addons/demo",
		userPath:   "/userdata/addon_data/demo",
		libPath:    "/addons/demo/lib",
		apiVersion: version.ForType(api.TypeMain),
		strings:    make(map[string]string),
		ints:       make(map[string]int),
		uints:      make(map[string]uint),
		bools:      make(map[string]bool),
		floats:     make(map[string]float64),
		interfaces: make(map[ifaceKey]any),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Interface builds the interface record the host hands to the addon
// creation entry point. Each call yields a fresh ToAddon table for the
// dispatcher to fill.
func (h *Host) Interface() *api.Interface {
	return &api.Interface{
		ToHost:          h.table(),
		ToAddon:         &api.ToAddon{},
		FirstHostHandle: h,
		LibBasePath:     h.libPath,
		APIVersion:      h.apiVersion,
	}
}

func (h *Host) table() *api.ToHost {
	return &api.ToHost{
		HostBase: h,
		Log: func(base api.Handle, level api.LogLevel, msg string) {
			base.(*Host).log(level, msg)
		},
		GetSettingString: func(base api.Handle, name string) (string, bool) {
			return base.(*Host).GetString(name)
		},
		GetSettingInt: func(base api.Handle, name string) (int, bool) {
			return base.(*Host).GetInt(name)
		},
		GetSettingUInt: func(base api.Handle, name string) (uint, bool) {
			return base.(*Host).GetUInt(name)
		},
		GetSettingBool: func(base api.Handle, name string) (bool, bool) {
			return base.(*Host).GetBool(name)
		},
		GetSettingFloat: func(base api.Handle, name string) (float64, bool) {
			return base.(*Host).GetFloat(name)
		},
		SetSettingString: func(base api.Handle, name, value string) bool {
			base.(*Host).SetString(name, value)
			return true
		},
		SetSettingInt: func(base api.Handle, name string, value int) bool {
			base.(*Host).SetInt(name, value)
			return true
		},
		SetSettingUInt: func(base api.Handle, name string, value uint) bool {
			base.(*Host).SetUInt(name, value)
			return true
		},
		SetSettingBool: func(base api.Handle, name string, value bool) bool {
			base.(*Host).SetBool(name, value)
			return true
		},
		SetSettingFloat: func(base api.Handle, name string, value float64) bool {
			base.(*Host).SetFloat(name, value)
			return true
		},
		GetAddonPath: func(base api.Handle) string {
			return base.(*Host).addonPath
		},
		GetBaseUserPath: func(base api.Handle) string {
			return base.(*Host).userPath
		},
		GetTypeVersion: func(_ api.Handle, t api.InstanceType) string {
			return version.ForType(t)
		},
		GetTypeMinVersion: func(_ api.Handle, t api.InstanceType) string {
			return version.MinForType(t)
		},
		GetInterface: func(base api.Handle, name, ver string) any {
			return base.(*Host).lookupInterface(name, ver)
		},
	}
}

// ProvideInterface registers a named platform function table served through
// the GetInterface host call.
func (h *Host) ProvideInterface(name, ver string, table any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.interfaces[ifaceKey{name: name, version: ver}] = table
}

func (h *Host) lookupInterface(name, ver string) any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.interfaces[ifaceKey{name: name, version: ver}]
}

func (h *Host) log(level api.LogLevel, msg string) {
	h.mu.Lock()
	h.entries = append(h.entries, LogEntry{Level: level, Message: msg})
	h.mu.Unlock()

	switch level {
	case api.LogDebug:
		h.logger.Debug(msg)
	case api.LogInfo, api.LogNotice:
		h.logger.Info(msg)
	case api.LogWarning:
		h.logger.Warn(msg)
	case api.LogError, api.LogSevere, api.LogFatal:
		h.logger.Error(msg)
	case api.LogNone:
	}
}

// LogEntries returns a copy of everything logged so far.
func (h *Host) LogEntries() []LogEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]LogEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

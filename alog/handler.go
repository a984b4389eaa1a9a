// Package alog routes log/slog records through the host's log sink, so
// addon code can log idiomatically while everything lands in the host log.
package alog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mediakit/addon-sdk/addon"
	"github.com/mediakit/addon-sdk/api"
)

// Handler implements slog.Handler on top of a bridge's host Log call.
type Handler struct {
	bridge *addon.Bridge
	opts   handlerConfig
	attrs  []slog.Attr
	group  string
}

// HandlerOption configures the Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{level: slog.LevelInfo}
}

// WithLevel sets the minimum log level to forward. Records below it are
// filtered on the addon side and never reach the host.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a Handler forwarding through br.
func NewHandler(br *addon.Bridge, opts ...HandlerOption) *Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Handler{bridge: br, opts: cfg}
}

// SetDefault installs a host-routed handler as the slog default logger.
func SetDefault(br *addon.Bridge, opts ...HandlerOption) {
	slog.SetDefault(slog.New(NewHandler(br, opts...)))
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle flattens the record into a single line and hands it to the host.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	if h.group != "" {
		b.WriteString(h.group)
		b.WriteString(": ")
	}
	b.WriteString(record.Message)
	for _, attr := range h.attrs {
		writeAttr(&b, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, attr)
		return true
	})
	if h.opts.addSource && record.PC != 0 {
		src := source(record)
		if src != "" {
			b.WriteString(" source=")
			b.WriteString(src)
		}
	}
	h.bridge.Log(hostLevel(record.Level), "%s", b.String())
	return nil
}

// WithAttrs returns a Handler that includes the given attributes on every
// record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &nh
}

// WithGroup returns a Handler with the given group name prefixed.
func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}

func writeAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}

// hostLevel maps slog levels onto the host's log level enum.
func hostLevel(level slog.Level) api.LogLevel {
	switch {
	case level < slog.LevelInfo:
		return api.LogDebug
	case level < slog.LevelWarn:
		return api.LogInfo
	case level < slog.LevelError:
		return api.LogWarning
	default:
		return api.LogError
	}
}

func source(record slog.Record) string {
	fs := runtimeFrames(record.PC)
	if fs.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", fs.File, fs.Line)
}

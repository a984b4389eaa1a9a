package api

// Handle is an opaque reference to an object owned by the other side of the
// boundary. The host never inspects addon handles and vice versa; the
// dispatcher maps them back to typed objects.
type Handle any

// InstanceType tags a sub-instance with the capability it implements.
// The numeric values are assigned by the host and shared across all addons.
type InstanceType int

const (
	// TypeMain tags the base addon object itself.
	TypeMain InstanceType = iota

	// TypeScreensaver is a screensaver renderer instance.
	TypeScreensaver

	// TypeVisualization is an audio visualization instance.
	TypeVisualization

	// TypeAudioDecoder is an audio decoder instance.
	TypeAudioDecoder

	// TypeInputStream is an input stream provider instance.
	TypeInputStream

	// TypePeripheral is a peripheral driver instance.
	TypePeripheral

	// TypeVFS is a virtual file system provider instance.
	TypeVFS

	// TypeGame is a game client instance.
	TypeGame
)

func (t InstanceType) String() string {
	switch t {
	case TypeMain:
		return "main"
	case TypeScreensaver:
		return "screensaver"
	case TypeVisualization:
		return "visualization"
	case TypeAudioDecoder:
		return "audiodecoder"
	case TypeInputStream:
		return "inputstream"
	case TypePeripheral:
		return "peripheral"
	case TypeVFS:
		return "vfs"
	case TypeGame:
		return "game"
	}
	return "unknown"
}

// LogLevel is the severity passed through the host log call.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogNotice
	LogWarning
	LogError
	LogSevere
	LogFatal
	LogNone
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogNotice:
		return "notice"
	case LogWarning:
		return "warning"
	case LogError:
		return "error"
	case LogSevere:
		return "severe"
	case LogFatal:
		return "fatal"
	case LogNone:
		return "none"
	}
	return "unknown"
}

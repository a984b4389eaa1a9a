package api

// Status is the lifecycle/health result returned from addon hooks.
// The host decides the follow-up action (restart, open settings, disable).
type Status int

const (
	// StatusOK indicates the call completed normally.
	StatusOK Status = iota

	// StatusLostConnection indicates the addon lost contact with its backend.
	StatusLostConnection

	// StatusNeedRestart asks the host to restart the addon.
	StatusNeedRestart

	// StatusNeedSettings asks the host to open the addon settings dialog.
	StatusNeedSettings

	// StatusUnknown indicates an unspecified error.
	StatusUnknown

	// StatusPermanentFailure tells the host the addon cannot recover.
	StatusPermanentFailure

	// StatusNotImplemented indicates the hook does not handle the request.
	// The dispatcher uses it as the "declined, try the next candidate"
	// signal during instance creation.
	StatusNotImplemented
)

// String returns the fixed human-readable label for the status.
// Undefined codes map to "Unknown"; the mapping is total.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusLostConnection:
		return "Lost Connection"
	case StatusNeedRestart:
		return "Need Restart"
	case StatusNeedSettings:
		return "Need Settings"
	case StatusUnknown:
		return "Unknown error"
	case StatusPermanentFailure:
		return "Permanent failure"
	case StatusNotImplemented:
		return "Not implemented"
	}
	return "Unknown"
}

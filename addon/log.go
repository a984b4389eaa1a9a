package addon

import (
	"fmt"

	"github.com/mediakit/addon-sdk/api"
)

// logBufferSize matches the host's fixed log message buffer. Formatted
// output beyond it is silently discarded, never rejected.
const logBufferSize = 16 * 1024

// Log formats a message printf-style and forwards it to the host log sink,
// truncating at the host's 16 KiB buffer limit.
func (br *Bridge) Log(level api.LogLevel, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > logBufferSize {
		msg = msg[:logBufferSize]
	}
	br.toHost.Log(br.toHost.HostBase, level, msg)
}

package mirror

import (
	"fmt"
	"os"
	"strings"
)

// TTYOpen returns an OpenFunc that writes the mirror onto an auxiliary
// terminal device, named by the mirror_tty config field (for example a spare
// terminal's `tty` output, or a serial console). An empty path means the
// capability is not configured; an unopenable device means it is not
// available. Both report ErrUnsupported.
func TTYOpen(path string) OpenFunc {
	return func() (Surface, error) {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			return nil, ErrUnsupported
		}
		f, err := os.OpenFile(trimmed, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrUnsupported, trimmed, err)
		}
		return f, nil
	}
}

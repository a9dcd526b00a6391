package writers

import (
	"errors"
	"io"
	"syscall"
)

var pipeErrs = []error{syscall.EPIPE, io.ErrClosedPipe}

// IsBrokenPipe reports whether err means stdout's reader went away
// (e.g. `gridprod | head -1`). Such runs still exit 0.
func IsBrokenPipe(err error) bool {
	for _, pe := range pipeErrs {
		if errors.Is(err, pe) {
			return true
		}
	}
	return false
}

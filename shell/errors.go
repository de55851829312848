package shell

import (
	"github.com/jmgilman/go/errors"
)

// CodeInputFailed marks an unrecoverable failure reading from the input stream.
const CodeInputFailed errors.ErrorCode = "INPUT_FAILED"

// message strips the "[CODE]" prefix from platform errors for display.
func message(err error) string {
	var pe errors.PlatformError
	if errors.As(err, &pe) {
		return pe.Message()
	}
	return err.Error()
}

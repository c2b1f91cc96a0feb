package cmd

import (
	"errors"
	"fmt"
)

// SilentExit carries an exit code without an error message.
type SilentExit struct {
	Code int
}

// NewSilentExit returns an error that makes Execute exit with code and
// print nothing.
func NewSilentExit(code int) error {
	return &SilentExit{Code: code}
}

func (e *SilentExit) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// IsSilentExit reports whether err is a SilentExit and returns its code.
func IsSilentExit(err error) (int, bool) {
	var se *SilentExit
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

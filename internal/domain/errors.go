package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCreatorNotFound       = errors.New("creator not found")
	ErrUnsupportedPlatform   = errors.New("unsupported platform")
	ErrPlatformNotConfigured = errors.New("platform credentials not configured")
	ErrInvalidReportType     = errors.New("invalid report type")
)

// PlatformError é o erro tipado de um adapter de plataforma. Identifica a plataforma,
// a operação que falhou e embrulha a mensagem do erro de origem.
type PlatformError struct {
	Platform Platform
	Op       string
	Err      error
}

func NewPlatformError(platform Platform, op string, err error) *PlatformError {
	return &PlatformError{Platform: platform, Op: op, Err: err}
}

func (e *PlatformError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Platform, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Platform, e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

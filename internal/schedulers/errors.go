package schedulers

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedPolicy = errors.New("unsupported scheduling algorithm")
	ErrMissingQuantum    = errors.New("round robin requires a positive quantum")
	ErrInvalidHorizon    = errors.New("run_for must be positive")
	ErrHorizonTooLarge   = errors.New("run_for exceeds the maximum horizon")
	ErrInvalidArrival    = errors.New("arrival must not be negative")
	ErrInvalidBurst      = errors.New("burst must be positive")
	ErrEmptyName         = errors.New("process name is empty")
	ErrDuplicateProcess  = errors.New("duplicate process name")
)

// ConfigError reports input rejected before any engine runs. It wraps one of
// the sentinel errors above.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(field string, value any, err error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Err: err}
}

// IsConfigError reports whether err was caused by invalid input.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// internal/errors/errors.go
package appErrors

import "fmt"

// ErrUnknownColumn is returned when a table operation names a column that does not exist
type ErrUnknownColumn struct {
	Key string
}

func (e *ErrUnknownColumn) Error() string {
	return fmt.Sprintf("unknown column %q", e.Key)
}

func NewUnknownColumn(key string) error {
	return &ErrUnknownColumn{Key: key}
}

// ErrGatewayStatus is returned by the client when the gateway answers with a non-2xx status
type ErrGatewayStatus struct {
	StatusCode int
}

func (e *ErrGatewayStatus) Error() string {
	return fmt.Sprintf("gateway responded with status %d", e.StatusCode)
}

func NewGatewayStatus(code int) error {
	return &ErrGatewayStatus{StatusCode: code}
}

// ErrSeedFailed wraps the failure of a seed batch. The batch has been rolled back.
type ErrSeedFailed struct {
	BatchSize int
	Err       error
}

func (e *ErrSeedFailed) Error() string {
	return fmt.Sprintf("seeding %d customers failed, batch rolled back: %v", e.BatchSize, e.Err)
}

func (e *ErrSeedFailed) Unwrap() error {
	return e.Err
}

func NewSeedFailed(size int, err error) error {
	return &ErrSeedFailed{BatchSize: size, Err: err}
}

// ErrInvalidFilterMode is returned when FILTER_MODE holds an unsupported value
type ErrInvalidFilterMode struct {
	Mode string
}

func (e *ErrInvalidFilterMode) Error() string {
	return fmt.Sprintf("invalid filter mode %q", e.Mode)
}

func NewInvalidFilterMode(mode string) error {
	return &ErrInvalidFilterMode{Mode: mode}
}

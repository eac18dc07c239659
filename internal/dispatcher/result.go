package dispatcher

// Status indicates the outcome of handling one key event.
type Status uint8

const (
	// StatusHandled means the key was consumed; the host must suppress
	// its default handling.
	StatusHandled Status = iota
	// StatusNoOp means no feature claimed the key; the host proceeds as
	// usual.
	StatusNoOp
	// StatusError means processing failed; the keystroke was abandoned
	// with the buffer untouched.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one key event.
type Result struct {
	Status Status
	// Err carries the failure for StatusError and is nil otherwise.
	Err error
}

// Handled reports whether the host should suppress the key.
func (r Result) Handled() bool { return r.Status == StatusHandled }

func handled() Result          { return Result{Status: StatusHandled} }
func noOp() Result             { return Result{Status: StatusNoOp} }
func failed(err error) Result  { return Result{Status: StatusError, Err: err} }

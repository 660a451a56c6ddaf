package timeline

import "fmt"

type ErrorCode string

const (
	CodeDataFormat    ErrorCode = "DATA_FORMAT"
	CodeInvalidWindow ErrorCode = "INVALID_WINDOW"
)

// DataFormatError reports a task field that cannot be turned into a layout,
// such as a malformed date or a negative week index.
type DataFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *DataFormatError) Error() string {
	msg := fmt.Sprintf("%s: %s: invalid value %q", CodeDataFormat, e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataFormatError) Unwrap() error { return e.Err }

func (e *DataFormatError) Code() ErrorCode { return CodeDataFormat }

// InvalidWindowError reports a window with no buckets or no span.
type InvalidWindowError struct {
	Buckets  int
	SpanDays int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("%s: window has %d buckets spanning %d days", CodeInvalidWindow, e.Buckets, e.SpanDays)
}

func (e *InvalidWindowError) Code() ErrorCode { return CodeInvalidWindow }

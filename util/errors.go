package util

const (
	ERROR_BAD_TYPE_PATTERNS = 201
	ERROR_NO_SUITES         = 202
	ERROR_BAD_OUTPUT_PATH   = 203
	ERROR_REPORT_WRITE      = 204
	ERROR_STEPS_FAILED      = 210
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

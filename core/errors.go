package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// General error codes
const (
	NOERROR      int = 0
	EIO          int = 120 // generic read failure
	EMISSING     int = 122 // resource does not exist
	EINVALID     int = 123 // validation failed
	EINTERNAL    int = 125 // internal error, or a foreign error without a code
	EPLIST       int = 126 // property list present but structurally unusable
	EXML         int = 127 // malformed XML document
	EPARSE       int = 128 // other structural parse issues
	EMISSINGATTR int = 129 // a name has no entry where one is required
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EIO:
		return "I/O error"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case EPLIST:
		return "plist error"
	case EXML:
		return "XML error"
	case EPARSE:
		return "parse error"
	case EMISSINGATTR:
		return "missing attribute"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// PathError is implemented by errors which know the file they refer to.
type PathError interface {
	error
	Path() string
}

type coreError struct {
	error
	code int
	msg  string
	path string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", e.code, e.msg)
	if e.path != "" {
		fmt.Fprintf(&b, " (%s)", e.path)
	}
	if e.error != nil {
		if cause := e.error.Error(); cause != e.msg && cause != errorText(e.code) {
			b.WriteString(": ")
			b.WriteString(cause)
		}
	}
	return b.String()
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

func (e coreError) Path() string {
	return e.path
}

var _ AppError = coreError{}
var _ PathError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{error: err, code: code, msg: errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's standard text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{error: err, code: code, msg: msg}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		error: errors.New(errorText(code)),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// MissingAttribute creates an EMISSINGATTR error for name. The user message
// is the name itself, path names the file where the name had been looked up.
func MissingAttribute(name string, path string) error {
	return coreError{
		error: errors.New(errorText(EMISSINGATTR)),
		code:  EMISSINGATTR,
		msg:   name,
		path:  path,
	}
}

// Other wraps a foreign error, i.e. one originating outside of this module,
// into an EINTERNAL error. The foreign error stays reachable with errors.As.
func Other(err error) error {
	if err == nil {
		return nil
	}
	return coreError{error: err, code: EINTERNAL, msg: err.Error()}
}

// WithPath attaches a file path to an error for diagnostics.
// Errors without a code are wrapped as EINTERNAL.
// If err is nil, nil is returned.
func WithPath(err error, path string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(coreError); ok {
		e.path = path
		return e
	}
	return coreError{error: err, code: Code(err), msg: UserMessage(err), path: path}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// Is reports whether err carries error code code.
func Is(err error, code int) bool {
	return Code(err) == code
}

// IsIOError reports whether err is a read failure. Missing files count as
// read failures, too.
func IsIOError(err error) bool {
	c := Code(err)
	return c == EIO || c == EMISSING
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Path returns the file path associated with an error, or "".
func Path(err error) string {
	if e := PathError(nil); errors.As(err, &e) {
		return e.Path()
	}
	return ""
}

// UserError prints an error to stderr.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		if p := Path(err); p != "" {
			fmt.Fprintf(os.Stderr, "[%d] %s (%s)\n", e.ErrorCode(), e.UserMessage(), p)
			return
		}
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

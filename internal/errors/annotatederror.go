// Package errors provides error wrapping with slog annotations and source
// locations so that failures can be logged with full context at the edge of
// the application.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError decorates an error with a message, slog attributes, and the
// source location of the wrap site.
type annotatedError struct {
	err    error
	msg    string
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// callerSource resolves the file:line of the caller skipping the given number
// of frames on top of callerSource itself.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	// Trim the path down to the last two elements for readability.
	parts := strings.Split(file, "/")
	if len(parts) > 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// New creates a new annotated error with the given message and attributes.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		err:    nil,
		msg:    msg,
		attrs:  attrs,
		source: callerSource(1),
	}
}

// NewSentinel creates an error intended for package-level sentinel values.
// It carries no source location since the declaration site is not interesting.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with a message and optional slog attributes. A nil err
// is allowed so that the wrap site shows up even when the cause is missing.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		err:    err,
		msg:    msg,
		attrs:  attrs,
		source: callerSource(1),
	}
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the panic site.
func DecoratePanic(recovered any) error {
	const panicDepth = 3 // runtime.gopanic and the deferred recover frame
	return &annotatedError{
		err:    nil,
		msg:    fmt.Sprintf("panic: %v", recovered),
		attrs:  nil,
		source: callerSource(panicDepth),
	}
}

// SlogError renders err as a slog group attribute containing the message,
// the innermost annotated source location, and all annotations collected
// from the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		source      string
		annotations []any
	)
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		var annotated *annotatedError
		if errors.As(unwrapped, &annotated) {
			// The deepest annotated error wins so that the source points
			// closest to the root cause.
			source = annotated.source
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
			unwrapped = annotated
		}
	}

	attrs := []any{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", attrs...)
}

// Re-exports so that callers only need to import this package.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps a list of errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

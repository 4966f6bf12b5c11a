// Package errors provides error annotation helpers on top of the standard library.
//
// The annotated errors carry [slog.Attr] metadata and the source location of the
// call site so that log lines point at the code that produced the failure.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// annotatedError wraps an error with a message, slog annotations, and the
// program counter of the call site.
type annotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	pc          uintptr
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap exposes the wrapped error for [errors.Is] and [errors.As].
func (e *annotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates an error meant to be used as a sentinel value for
// [Is] checks. It records the call site for logging purposes.
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:         msg,
		err:         nil,
		annotations: nil,
		pc:          callerPC(),
	}
}

// Wrap annotates err with a message and optional [slog.Attr] metadata.
//
// A nil err is tolerated so that callers don't have to guard against it; the
// resulting error then only carries the message.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &annotatedError{
		msg:         msg,
		err:         err,
		annotations: annotations,
		pc:          callerPC(),
	}
}

// New is a drop-in replacement for [errors.New].
func New(msg string) error {
	return errors.New(msg)
}

// Is is a drop-in replacement for [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a drop-in replacement for [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap is a drop-in replacement for [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join is a drop-in replacement for [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// DecoratePanic converts a recovered panic value into an error that records
// the site of the panic statement rather than the recover handler.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:         fmt.Sprintf("panic: %v", recovered),
		err:         nil,
		annotations: nil,
		pc:          panicPC(),
	}
}

// SlogError converts an error into a [slog.Attr] carrying the message, the
// source location of the innermost annotated error, and all annotations found
// in the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []any{slog.String("message", err.Error())}

	if source := deepestSource(err); source != "" {
		attrs = append(attrs, slog.String("source", source))
	}

	if annotations := collectAnnotations(err); len(annotations) > 0 {
		groupArgs := make([]any, 0, len(annotations))
		for _, a := range annotations {
			groupArgs = append(groupArgs, a)
		}
		attrs = append(attrs, slog.Group("annotations", groupArgs...))
	}

	return slog.Group("error", attrs...)
}

// collectAnnotations gathers the slog annotations from every annotated error
// in the chain, outermost first.
func collectAnnotations(err error) []slog.Attr {
	var annotations []slog.Attr
	for _, e := range flatten(err) {
		if annotated, ok := e.(*annotatedError); ok {
			annotations = append(annotations, annotated.annotations...)
		}
	}
	return annotations
}

// deepestSource returns the formatted source location of the innermost
// annotated error in the chain.
func deepestSource(err error) string {
	var pc uintptr
	for _, e := range flatten(err) {
		if annotated, ok := e.(*annotatedError); ok && annotated.pc != 0 {
			pc = annotated.pc
		}
	}
	if pc == 0 {
		return ""
	}
	return formatSource(pc)
}

// flatten walks the error chain depth-first, following both single and
// multi-error Unwrap implementations.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	out := []error{err}
	switch unwrapped := err.(type) {
	case interface{ Unwrap() error }:
		out = append(out, flatten(unwrapped.Unwrap())...)
	case interface{ Unwrap() []error }:
		for _, e := range unwrapped.Unwrap() {
			out = append(out, flatten(e)...)
		}
	}
	return out
}

// callerPC captures the program counter two frames up, i.e. the caller of the
// exported constructor.
func callerPC() uintptr {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerPC, and the constructor.
	if runtime.Callers(3, pcs[:]) == 0 {
		return 0
	}
	return pcs[0]
}

// panicPC finds the program counter of the panic statement by scanning past
// runtime.gopanic in the call stack.
func panicPC() uintptr {
	var pcs [64]uintptr
	n := runtime.Callers(1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	sawPanic := false
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.gopanic") {
			sawPanic = true
		} else if sawPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return frame.PC
		}
		if !more {
			return 0
		}
	}
}

// formatSource renders a program counter as "file.go:line".
func formatSource(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

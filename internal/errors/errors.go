// Package errors is the single errors import for tasktrack. Sentinels and
// tree inspection come from the standard library; wrapping goes through
// pkg/errors so that %+v on a logged error prints where it was wrapped.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New builds a sentinel. It carries no stack; wrap it at the failure site.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Find is As without the out-parameter:
//
//	if appErr, ok := errors.Find[domainerrors.AppError](err); ok { ... }
func Find[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Join combines errs; Is and As see every one of them.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap prefixes err with message and records the caller's stack.
// A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf is fmt.Errorf plus a stack. It does not understand %w; use Wrap
// when there is a cause.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

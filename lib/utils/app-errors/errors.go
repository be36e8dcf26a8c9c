package apperrors

import (
	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

type appError struct {
	kind Kind
	msg  string
}

func (e *appError) Error() string {
	return e.msg
}

func NewValidation(msg string) error {
	return &appError{kind: KindValidation, msg: msg}
}

func NewNotFound(msg string) error {
	return &appError{kind: KindNotFound, msg: msg}
}

func NewConflict(msg string) error {
	return &appError{kind: KindConflict, msg: msg}
}

// NewInternal сообщение уходит клиенту, подробности ошибки только в лог
func NewInternal(msg string) error {
	return &appError{kind: KindInternal, msg: msg}
}

// KindOf ошибки без типа считаются внутренними
func KindOf(err error) Kind {
	var appErr *appError
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// PublicMessage возвращает текст, который можно показать клиенту
func PublicMessage(err error) (string, bool) {
	var appErr *appError
	if errors.As(err, &appErr) {
		return appErr.msg, true
	}
	return "", false
}

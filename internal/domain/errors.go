package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio. Es una enumeración cerrada: el
// mapeo a status HTTP se resuelve con StatusOf y el switch debe cubrir
// todos los valores.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInsufficientStock
)

// StatusOf devuelve el status HTTP asociado a cada Kind.
func StatusOf(k Kind) int {
	switch k {
	case KindValidation:
		return 400
	case KindUnauthorized:
		return 401
	case KindForbidden:
		return 403
	case KindNotFound:
		return 404
	case KindConflict:
		return 409
	case KindInsufficientStock:
		return 409
	default:
		return 500
	}
}

// Error es el error de dominio: lleva el Kind, un código estable para el
// cliente y un mensaje legible. El mensaje de KindInternal nunca expone
// detalle interno al caller.
type Error struct {
	Kind    Kind
	Code    string // código estable, ej. ITEMS_REQUIRED, INSUFFICIENT_STOCK
	Message string
}

func (e *Error) Error() string { return e.Message }

// KindOf devuelve el Kind de un error de dominio; errores ajenos son KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// CodeOf devuelve el código estable de un error de dominio ("INTERNAL" si no lo es).
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Code != "" {
		return de.Code
	}
	return "INTERNAL"
}

// Constructores por Kind.

func Validation(code, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

func Forbidden(code, message string) *Error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

func NotFound(code, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func InsufficientStock(productID string) *Error {
	return &Error{
		Kind:    KindInsufficientStock,
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("stock insuficiente para el producto %s", productID),
	}
}

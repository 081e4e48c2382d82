// Package apperr mendefinisikan taksonomi error aplikasi beserta
// pemetaannya ke status HTTP.
package apperr

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind mengelompokkan error berdasarkan penyebabnya.
type Kind int

const (
	KindService Kind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

// Error adalah error aplikasi dengan Kind dan pesan yang aman
// untuk ditampilkan ke klien.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap mengembalikan error penyebab, bila ada.
func (e *Error) Unwrap() error { return e.cause }

// Status memetakan Kind ke kode status HTTP.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation membuat error 400 untuk input yang hilang atau tidak valid.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Auth membuat error 401 untuk kredensial yang salah.
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Forbidden membuat error 403 untuk akun terblokir atau role yang salah.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound membuat error 404 untuk dokumen yang tidak ditemukan.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict membuat error 409, misalnya email yang sudah terdaftar.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Service membungkus error tak terduga dari store sebagai error 500.
// Pesan cause tidak pernah bocor ke klien.
func Service(message string, cause error) *Error {
	return &Error{Kind: KindService, Message: message, cause: errors.WithStack(cause)}
}

// From mengembalikan *Error dari err; error lain dianggap KindService
// dengan pesan generik.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: KindService, Message: "Internal server error", cause: err}
}

package release_hold

import "errors"

var (
	// ErrHoldNotFound возвращается, когда hold не найден или уже истёк.
	// Для вызывающей стороны это не фатально: повторный release идемпотентен.
	ErrHoldNotFound = errors.New("release_hold: hold not found")

	// ErrForbidden возвращается, когда hold принадлежит другому владельцу
	ErrForbidden = errors.New("release_hold: hold belongs to another owner")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_hold: invalid input data")
)

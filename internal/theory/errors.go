package theory

import "errors"

// Input errors. All are caller mistakes, never transient.
var (
	ErrInvalidKey         = errors.New("invalid key")
	ErrInvalidChordSymbol = errors.New("invalid chord symbol")
	ErrInvalidNote        = errors.New("invalid note")
	ErrUnvoiceableNote    = errors.New("unvoiceable note")
)

// IsInputError reports whether err was caused by invalid caller input
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidKey) ||
		errors.Is(err, ErrInvalidChordSymbol) ||
		errors.Is(err, ErrInvalidNote) ||
		errors.Is(err, ErrUnvoiceableNote)
}

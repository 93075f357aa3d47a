package domain

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the services. NotFound deliberately covers
// "missing", "someone else's" and "soft-deleted" alike, so callers can
// not probe for records across owners.
var (
	ErrNotFound       = errors.New("registro não encontrado")
	ErrDuplicateCpf   = errors.New("CPF já cadastrado no sistema")
	ErrNotImplemented = errors.New("não implementado")
)

// ValidationError aggregates every field rule an input violated.
// Resubmitting corrected input is always possible.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }

// AsValidation unwraps err into a *ValidationError, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

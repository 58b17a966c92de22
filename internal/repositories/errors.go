package repositories

import "errors"

// ErrAlreadyConverted is returned when converting a devis that already
// produced an expedition.
var ErrAlreadyConverted = errors.New("devis déjà converti")

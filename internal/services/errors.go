package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"transport-backend/pkg/utils"
)

var (
	ErrNotFound        = errors.New("introuvable")
	ErrDuplicateNumber = errors.New("numéro déjà utilisé")
	ErrInvalidAmount   = errors.New("montant invalide")
	ErrCategoryInUse   = errors.New("catégorie référencée par des frais")
	ErrInvalidLogin    = errors.New("identifiants invalides")
	ErrAccountDisabled = errors.New("compte désactivé")
	ErrUsernameTaken   = errors.New("nom d'utilisateur déjà pris")
	ErrNotConvertible  = errors.New("devis déjà converti")
)

// ValidationError carries per-field messages back to the handler layer.
type ValidationError struct {
	Fields []utils.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation échouée (%d champs)", len(e.Fields))
}

func newValidationError(fields []utils.FieldError) error {
	return &ValidationError{Fields: fields}
}

// AsValidation extracts a ValidationError if err is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// mapDBError translates low level pgx errors into service errors. A
// unique violation means a document number collision, a foreign key
// violation means the referenced row does not exist.
func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateNumber
		case "23503":
			return ErrNotFound
		case "23514":
			return ErrInvalidAmount
		}
	}
	return err
}

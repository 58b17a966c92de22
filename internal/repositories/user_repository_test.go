package repositories

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"transport-backend/internal/models"
)

// stubRow plays back a fixed column list through the Scan interface.
type stubRow struct{ vals []any }

func (r stubRow) Scan(dest ...any) error {
	for i, d := range dest {
		v := reflect.ValueOf(r.vals[i])
		reflect.ValueOf(d).Elem().Set(v)
	}
	return nil
}

func TestScanUserReadsProfileColumns(t *testing.T) {
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := time.Date(2025, 11, 20, 8, 30, 0, 0, time.UTC)

	u, err := scanUser(stubRow{vals: []any{
		4, "aziz", "hash", "Aziz Bennani", "aziz@gargaa.ma",
		models.RoleOperateur, true, &last, created,
	}})
	require.NoError(t, err)

	assert.Equal(t, "aziz@gargaa.ma", u.Email)
	assert.Equal(t, models.RoleOperateur, u.Role)
	require.NotNil(t, u.DerniereConnexion)
	assert.Equal(t, last, *u.DerniereConnexion)
}

func TestScanUserBeforeFirstLogin(t *testing.T) {
	u, err := scanUser(stubRow{vals: []any{
		9, "sara", "hash", "Sara El Amrani", "",
		models.RoleAdmin, true, (*time.Time)(nil), time.Now(),
	}})
	require.NoError(t, err)
	assert.Nil(t, u.DerniereConnexion)
}

func TestUserColumnsMatchScanOrder(t *testing.T) {
	cols := strings.Split(userColumns, ", ")
	assert.Len(t, cols, 9)
	assert.Contains(t, cols, "email")
	assert.Contains(t, cols, "derniere_connexion")
}

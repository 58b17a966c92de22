package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrenchWords(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{9, "neuf"},
		{10, "dix"},
		{16, "seize"},
		{17, "dix-sept"},
		{20, "vingt"},
		{21, "vingt-un"},
		{30, "trente"},
		{45, "quarante-cinq"},
		{60, "soixante"},
		{70, "soixante-dix"},
		{71, "soixante-onze"},
		{77, "soixante-dix-sept"},
		{80, "quatre-vingt"},
		{81, "quatre-vingt-un"},
		{90, "quatre-vingt-dix"},
		{91, "quatre-vingt-onze"},
		{99, "quatre-vingt-dix-neuf"},
		{100, "cent"},
		{101, "cent un"},
		{200, "deux cent"},
		{271, "deux cent soixante-onze"},
		{999, "neuf cent quatre-vingt-dix-neuf"},
		{1000, "mille"},
		{1100, "mille cent"},
		{2000, "deux mille"},
		{2026, "deux mille vingt-six"},
		{15300, "quinze mille trois cent"},
		{999999, "neuf cent quatre-vingt-dix-neuf mille neuf cent quatre-vingt-dix-neuf"},
		{1000000, "un million"},
		{2500000, "deux millions cinq cent mille"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FrenchWords(c.n), "n=%d", c.n)
	}
}

func TestFrenchWordsCapitalized(t *testing.T) {
	assert.Equal(t, "Mille cent", FrenchWordsCapitalized(1100))
	assert.Equal(t, "Zéro", FrenchWordsCapitalized(0))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(45, 2, 20)
	assert.Equal(t, 45, p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(40, 1, 20)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPagination(0, 1, 20)
	assert.Equal(t, 0, p.TotalPages)

	// zero limit falls back to the default page size
	p = NewPagination(10, 1, 0)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 1, p.TotalPages)
}

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMontant(t *testing.T) {
	tests := []struct {
		montant float64
		want    string
	}{
		{0, "0 FCFA"},
		{500, "500 FCFA"},
		{850000, "850 000 FCFA"},
		{999999, "999 999 FCFA"},
		{1000000, "1 M FCFA"},
		{1500000, "1,5 M FCFA"},
		{250000000, "250 M FCFA"},
		{2000000000, "2 Md FCFA"},
		{2500000000, "2,5 Md FCFA"},
		{-850000, "-850 000 FCFA"},
		{-1500000, "-1,5 M FCFA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Montant(tt.montant), "montant=%v", tt.montant)
	}
}

func TestDateCourt(t *testing.T) {
	assert.Equal(t, "-", DateCourt(""))
	assert.Equal(t, "15/07/2024", DateCourt("2024-07-15"))
	assert.Equal(t, "15/07/2024", DateCourt("2024-07-15T10:30:00Z"))
	assert.Equal(t, "pas une date", DateCourt("pas une date"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-15")
	assert.NoError(t, err)
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15/07/2024")
	assert.Error(t, err)
}

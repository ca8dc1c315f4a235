package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_MinorUnits(t *testing.T) {
	tests := []struct {
		price Price
		want  int64
	}{
		{price: "19.99", want: 1999},
		{price: "0", want: 0},
		{price: "0.5", want: 50},
		{price: "100", want: 10000},
		{price: "7.07", want: 707},
		// Values float64 cannot represent exactly still convert exactly.
		{price: "0.29", want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.price.String(), func(t *testing.T) {
			got, err := tt.price.MinorUnits()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice_MinorUnits_Invalid(t *testing.T) {
	invalid := []Price{"abc", "", "-1.50", "19.999", "1,99"}

	for _, price := range invalid {
		t.Run(price.String(), func(t *testing.T) {
			_, err := price.MinorUnits()
			assert.ErrorIs(t, err, ErrInvalidPrice)
		})
	}
}

func TestPrice_Validate(t *testing.T) {
	assert.NoError(t, Price("12.34").Validate())
	assert.ErrorIs(t, Price("twelve").Validate(), ErrInvalidPrice)
}

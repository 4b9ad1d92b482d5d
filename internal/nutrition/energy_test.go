package nutrition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crag/internal/models"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name string
		sex  models.Sex
		want int
	}{
		// 68.04 kg, 172.72 cm, 30 years
		{"male", models.SexMale, 1615},
		{"female", models.SexFemale, 1449},
		{"default sex is male", "", 1615},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMR(150, 68, 30, tt.sex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBMRRejectsInvalidInput(t *testing.T) {
	for _, args := range [][3]float64{{0, 68, 30}, {150, -1, 30}, {150, 68, 0}} {
		_, err := BMR(args[0], args[1], int(args[2]), models.SexMale)
		assert.True(t, errors.Is(err, ErrInvalidInput), "args %v", args)
	}

	_, err := BMR(150, 68, 30, "other")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestTDEE(t *testing.T) {
	want := map[models.ActivityLevel]int{
		models.ActivitySedentary:  1938,
		models.ActivityLight:      2221,
		models.ActivityModerate:   2503,
		models.ActivityActive:     2786,
		models.ActivityVeryActive: 3069,
	}
	for level, kcal := range want {
		got, err := TDEE(1615, level)
		require.NoError(t, err)
		assert.Equal(t, kcal, got, level)
	}

	_, err := TDEE(1615, "couch")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

// ABOUTME: Basal and total daily energy expenditure.
// ABOUTME: Mifflin-St Jeor BMR on imperial inputs and activity multipliers.
package nutrition

import (
	"errors"
	"fmt"
	"math"

	"github.com/harperreed/crag/internal/models"
)

// ErrInvalidInput marks arguments the formulas cannot use.
var ErrInvalidInput = errors.New("invalid nutrition input")

const (
	kgPerLb = 0.453592
	cmPerIn = 2.54
)

// ActivityMultipliers scales BMR to TDEE.
var ActivityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,   // little to no exercise
	models.ActivityLight:      1.375, // 1-3 days per week
	models.ActivityModerate:   1.55,  // 3-5 days per week
	models.ActivityActive:     1.725, // 6-7 days per week
	models.ActivityVeryActive: 1.9,   // training twice a day
}

// BMR estimates basal metabolic rate in kcal using Mifflin-St Jeor.
func BMR(weightLb, heightIn float64, age int, sex models.Sex) (int, error) {
	if weightLb <= 0 || heightIn <= 0 || age <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive", ErrInvalidInput)
	}
	sex, err := models.ParseSex(string(sex))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	bmr := 10*weightLb*kgPerLb + 6.25*heightIn*cmPerIn - 5*float64(age)
	if sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr)), nil
}

// TDEE scales BMR by the activity multiplier.
func TDEE(bmr int, level models.ActivityLevel) (int, error) {
	mult, ok := ActivityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, level)
	}
	if bmr < 0 {
		return 0, fmt.Errorf("%w: bmr must not be negative", ErrInvalidInput)
	}
	return int(math.Round(float64(bmr) * mult)), nil
}

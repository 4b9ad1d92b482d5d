// ABOUTME: Nutrition profile model with activity level, goal, and sex enums.
// ABOUTME: Validate reports every invalid field at once using multierr.
package models

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalid marks input that violates a model constraint.
var ErrInvalid = errors.New("invalid input")

// ActivityLevel describes weekly training volume outside the gym.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

// AllActivityLevels is ordered from least to most active.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// ParseActivityLevel validates an activity level string.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	for _, a := range AllActivityLevels {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalid, s)
}

// Goal is the body composition goal driving calorie and protein targets.
type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalCut      Goal = "cut"
	GoalBulk     Goal = "bulk"
	GoalRecomp   Goal = "recomp"
)

// AllGoals returns all valid goals.
var AllGoals = []Goal{GoalMaintain, GoalCut, GoalBulk, GoalRecomp}

// ParseGoal validates a goal string.
func ParseGoal(s string) (Goal, error) {
	for _, g := range AllGoals {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: unknown goal %q", ErrInvalid, s)
}

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex validates a sex string. Empty defaults to male.
func ParseSex(s string) (Sex, error) {
	switch s {
	case "", string(SexMale):
		return SexMale, nil
	case string(SexFemale):
		return SexFemale, nil
	}
	return "", fmt.Errorf("%w: unknown sex %q", ErrInvalid, s)
}

// Profile holds the physical and goal parameters used for nutrition targets.
type Profile struct {
	WeightLb            float64       `json:"weight_lb" yaml:"weight_lb"`
	TargetWeightLb      float64       `json:"target_weight_lb,omitempty" yaml:"target_weight_lb,omitempty"`
	HeightIn            float64       `json:"height_in" yaml:"height_in"`
	Age                 int           `json:"age" yaml:"age"`
	Sex                 Sex           `json:"sex" yaml:"sex"`
	ActivityLevel       ActivityLevel `json:"activity_level" yaml:"activity_level"`
	Goal                Goal          `json:"goal" yaml:"goal"`
	DietaryRestrictions []string      `json:"dietary_restrictions,omitempty" yaml:"dietary_restrictions,omitempty"`
}

// Validate returns every violated constraint combined into one error.
func (p *Profile) Validate() error {
	var err error
	if p.WeightLb <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: weight must be positive", ErrInvalid))
	}
	if p.TargetWeightLb < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: target weight must not be negative", ErrInvalid))
	}
	if p.HeightIn <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: height must be positive", ErrInvalid))
	}
	if p.Age <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: age must be positive", ErrInvalid))
	}
	if _, perr := ParseSex(string(p.Sex)); perr != nil {
		err = multierr.Append(err, perr)
	}
	if _, perr := ParseActivityLevel(string(p.ActivityLevel)); perr != nil {
		err = multierr.Append(err, perr)
	}
	if _, perr := ParseGoal(string(p.Goal)); perr != nil {
		err = multierr.Append(err, perr)
	}
	return err
}

// HasRestriction reports whether the profile lists the dietary restriction.
func (p *Profile) HasRestriction(r string) bool {
	for _, d := range p.DietaryRestrictions {
		if d == r {
			return true
		}
	}
	return false
}

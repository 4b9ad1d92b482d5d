// ABOUTME: Single-row nutrition profile storage.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/crag/internal/models"
)

// ErrNoProfile is returned by GetProfile before a profile has been saved.
var ErrNoProfile = errors.New("no profile saved - run 'crag profile set'")

// GetProfile returns the saved nutrition profile.
func (d *DB) GetProfile() (*models.Profile, error) {
	var p models.Profile
	var sex, level, goal, restrictions string

	err := d.db.QueryRow(`
		SELECT weight_lb, target_weight_lb, height_in, age, sex, activity_level, goal, dietary_restrictions
		FROM profile WHERE id = 1
	`).Scan(&p.WeightLb, &p.TargetWeightLb, &p.HeightIn, &p.Age, &sex, &level, &goal, &restrictions)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Sex = models.Sex(sex)
	p.ActivityLevel = models.ActivityLevel(level)
	p.Goal = models.Goal(goal)
	if err := json.Unmarshal([]byte(restrictions), &p.DietaryRestrictions); err != nil {
		return nil, fmt.Errorf("decode dietary restrictions: %w", err)
	}
	if len(p.DietaryRestrictions) == 0 {
		p.DietaryRestrictions = nil
	}
	return &p, nil
}

// SaveProfile validates and replaces the stored profile.
func (d *DB) SaveProfile(p *models.Profile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	restrictions := p.DietaryRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	data, err := json.Marshal(restrictions)
	if err != nil {
		return fmt.Errorf("encode dietary restrictions: %w", err)
	}

	sex := p.Sex
	if sex == "" {
		sex = models.SexMale
	}

	_, err = d.db.Exec(`
		INSERT INTO profile (id, weight_lb, target_weight_lb, height_in, age, sex, activity_level, goal, dietary_restrictions, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			weight_lb = excluded.weight_lb,
			target_weight_lb = excluded.target_weight_lb,
			height_in = excluded.height_in,
			age = excluded.age,
			sex = excluded.sex,
			activity_level = excluded.activity_level,
			goal = excluded.goal,
			dietary_restrictions = excluded.dietary_restrictions,
			updated_at = CURRENT_TIMESTAMP
	`, p.WeightLb, p.TargetWeightLb, p.HeightIn, p.Age, string(sex), string(p.ActivityLevel), string(p.Goal), string(data))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

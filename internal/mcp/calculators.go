// ABOUTME: MCP tools that run the coaching calculators over the stored log.
// ABOUTME: Training load, grade progress, and nutrition targets and insights.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/crag/internal/coach"
	"github.com/harperreed/crag/internal/nutrition"
	"github.com/harperreed/crag/internal/progress"
	"github.com/harperreed/crag/internal/storage"
	"github.com/harperreed/crag/internal/training"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrNoTarget is returned by the progress tool when no target grade is known.
var ErrNoTarget = errors.New("no target grade given and none configured")

func (s *Server) registerCalculatorTools() {
	// training_load
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "training_load",
		Description: "Compute volume, intensity, density, and a 0-100 load score from recent sessions",
	}, s.handleTrainingLoad)

	// progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "progress",
		Description: "Measure progress toward a target grade with per-style stats and training advice",
	}, s.handleProgress)

	// nutrition_targets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "nutrition_targets",
		Description: "Daily calorie, macro, and hydration targets for the saved profile",
	}, s.handleNutritionTargets)

	// nutrition_insights
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "nutrition_insights",
		Description: "Compare intake against targets and suggest supplements; defaults to the last week of meal logs",
	}, s.handleNutritionInsights)
}

type trainingLoadInput struct {
	Weeks int `json:"weeks,omitempty" jsonschema:"Window in weeks (default 4)"`
}

type trainingLoadOutput struct {
	Volume      int     `json:"volume"`
	Intensity   float64 `json:"intensity"`
	Density     float64 `json:"density"`
	Load        int     `json:"load"`
	Weeks       int     `json:"weeks"`
	SuccessRate int     `json:"success_rate"`
}

type progressInput struct {
	CurrentGrade string `json:"current_grade,omitempty" jsonschema:"Current grade; defaults to the hardest logged send"`
	TargetGrade  string `json:"target_grade,omitempty" jsonschema:"Target grade; defaults to the configured target"`
}

type progressOutput struct {
	CurrentGrade    string                 `json:"current_grade"`
	TargetGrade     string                 `json:"target_grade"`
	Metrics         progress.Metrics       `json:"metrics"`
	Styles          progress.StyleAnalysis `json:"styles"`
	Recommendations []string               `json:"recommendations"`
}

type nutritionTargetsInput struct{}

type nutritionTargetsOutput struct {
	BMR          int                    `json:"bmr"`
	TDEE         int                    `json:"tdee"`
	Targets      nutrition.Targets      `json:"targets"`
	Distribution nutrition.Distribution `json:"distribution"`
}

type nutritionInsightsInput struct {
	Calories float64 `json:"calories,omitempty" jsonschema:"Daily calories eaten; omit to use logged averages"`
	ProteinG float64 `json:"protein_g,omitempty" jsonschema:"Daily protein in grams"`
	CarbsG   float64 `json:"carbs_g,omitempty" jsonschema:"Daily carbohydrates in grams"`
	FatG     float64 `json:"fat_g,omitempty" jsonschema:"Daily fat in grams"`
}

type nutritionInsightsOutput struct {
	Intake      nutrition.Intake       `json:"intake"`
	Source      string                 `json:"source"`
	Insights    []string               `json:"insights"`
	Supplements []nutrition.Supplement `json:"supplements"`
	Efficiency  string                 `json:"protein_efficiency"`
}

func (s *Server) handleTrainingLoad(ctx context.Context, req *mcp.CallToolRequest, input trainingLoadInput) (*mcp.CallToolResult, trainingLoadOutput, error) {
	weeks := input.Weeks
	if weeks == 0 {
		weeks = s.opts.LoadWeeks
	}

	sessions, err := s.repo.ListSessions(nil, 0)
	if err != nil {
		return nil, trainingLoadOutput{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := time.Now()
	load, err := training.CalculateLoad(sessions, weeks, now)
	if err != nil {
		return nil, trainingLoadOutput{}, err
	}
	rate, err := training.SuccessRate(sessions, training.DefaultSuccessDays, now)
	if err != nil {
		return nil, trainingLoadOutput{}, err
	}

	return nil, trainingLoadOutput{
		Volume:      load.Volume,
		Intensity:   load.Intensity,
		Density:     load.Density,
		Load:        load.Load,
		Weeks:       weeks,
		SuccessRate: rate,
	}, nil
}

func (s *Server) handleProgress(ctx context.Context, req *mcp.CallToolRequest, input progressInput) (*mcp.CallToolResult, progressOutput, error) {
	target := input.TargetGrade
	if target == "" {
		target = s.opts.TargetGrade
	}
	if target == "" {
		return nil, progressOutput{}, ErrNoTarget
	}

	r, err := coach.Build(s.repo, coach.Options{
		CurrentGrade: input.CurrentGrade,
		TargetGrade:  target,
		LoadWeeks:    s.opts.LoadWeeks,
	})
	if err != nil {
		return nil, progressOutput{}, err
	}

	recs := r.Recommendations
	if recs == nil {
		recs = []string{}
	}

	return nil, progressOutput{
		CurrentGrade:    r.CurrentGrade,
		TargetGrade:     r.TargetGrade,
		Metrics:         *r.Progress,
		Styles:          r.Styles,
		Recommendations: recs,
	}, nil
}

func (s *Server) handleNutritionTargets(ctx context.Context, req *mcp.CallToolRequest, input nutritionTargetsInput) (*mcp.CallToolResult, nutritionTargetsOutput, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, nutritionTargetsOutput{}, err
	}

	bmr, err := nutrition.BMR(p.WeightLb, p.HeightIn, p.Age, p.Sex)
	if err != nil {
		return nil, nutritionTargetsOutput{}, err
	}
	tdee, err := nutrition.TDEE(bmr, p.ActivityLevel)
	if err != nil {
		return nil, nutritionTargetsOutput{}, err
	}
	targets, err := nutrition.CalculateTargets(p)
	if err != nil {
		return nil, nutritionTargetsOutput{}, err
	}

	return nil, nutritionTargetsOutput{
		BMR:          bmr,
		TDEE:         tdee,
		Targets:      targets,
		Distribution: nutrition.MacroDistribution(targets),
	}, nil
}

func (s *Server) handleNutritionInsights(ctx context.Context, req *mcp.CallToolRequest, input nutritionInsightsInput) (*mcp.CallToolResult, nutritionInsightsOutput, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, nutritionInsightsOutput{}, err
	}
	targets, err := nutrition.CalculateTargets(p)
	if err != nil {
		return nil, nutritionInsightsOutput{}, err
	}

	out := nutritionInsightsOutput{
		Intake: nutrition.Intake{Calories: input.Calories, ProteinG: input.ProteinG, CarbsG: input.CarbsG, FatG: input.FatG},
		Source: "provided",
	}
	if input.Calories == 0 && input.ProteinG == 0 {
		since := time.Now().AddDate(0, 0, -7)
		logs, err := s.repo.ListMealLogs(&since, 0)
		if err != nil {
			return nil, nutritionInsightsOutput{}, fmt.Errorf("failed to list meal logs: %w", err)
		}
		avg := nutrition.WeeklyAverages(logs)
		if avg.Days == 0 {
			return nil, nutritionInsightsOutput{}, errors.New("no intake given and no meals logged in the last 7 days")
		}
		out.Intake = avg.AsIntake()
		out.Source = fmt.Sprintf("average of %d logged days", avg.Days)
	}

	out.Insights = nutrition.Insights(out.Intake, targets, p)
	if out.Insights == nil {
		out.Insights = []string{}
	}
	out.Supplements = nutrition.SupplementPriorities(p, out.Intake, targets)
	if out.Supplements == nil {
		out.Supplements = []nutrition.Supplement{}
	}
	out.Efficiency = nutrition.ProteinEfficiency(out.Intake.ProteinG, out.Intake.Calories).Tier().Label
	return nil, out, nil
}

// isNoProfile reports whether err means no profile has been saved yet.
func isNoProfile(err error) bool {
	return errors.Is(err, storage.ErrNoProfile)
}

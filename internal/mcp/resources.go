// ABOUTME: MCP resource implementations for the climbing coach.
// ABOUTME: Provides crag://report, crag://sends/recent, and crag://profile resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/crag/internal/coach"
	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/nutrition"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	reportURI      = "crag://report"
	recentSendsURI = "crag://sends/recent"
	profileURI     = "crag://profile"
)

func (s *Server) registerResources() {
	// crag://report - full coaching report as Markdown
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         reportURI,
		Name:        "Coaching Report",
		Description: "Progress, training load, style breakdown, recommendations, and nutrition",
		MIMEType:    "text/markdown",
	}, s.handleReportResource)

	// crag://sends/recent - last 10 sends
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentSendsURI,
		Name:        "Recent Sends",
		Description: "The 10 most recent benchmark sends",
		MIMEType:    "application/json",
	}, s.handleRecentSendsResource)

	// crag://profile - nutrition profile with its targets
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         profileURI,
		Name:        "Nutrition Profile",
		Description: "Saved nutrition profile and the daily targets derived from it",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// Resource handlers

func (s *Server) handleReportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	r, err := coach.Build(s.repo, coach.Options{
		TargetGrade: s.opts.TargetGrade,
		LoadWeeks:   s.opts.LoadWeeks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      reportURI,
			MIMEType: "text/markdown",
			Text:     r.Markdown(),
		}},
	}, nil
}

func (s *Server) handleRecentSendsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sends, err := s.repo.ListSends(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list sends: %w", err)
	}

	items := make([]sendItem, 0, len(sends))
	for _, send := range sends {
		items = append(items, toSendItem(send))
	}

	return jsonResource(recentSendsURI, map[string]interface{}{
		"sends": items,
		"count": len(items),
	})
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.repo.GetProfile()
	if isNoProfile(err) {
		return jsonResource(profileURI, map[string]interface{}{
			"profile": nil,
			"message": err.Error(),
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	targets, err := nutrition.CalculateTargets(p)
	if err != nil {
		return nil, err
	}

	return jsonResource(profileURI, struct {
		Profile      *models.Profile        `json:"profile"`
		Targets      nutrition.Targets      `json:"targets"`
		Distribution nutrition.Distribution `json:"distribution"`
	}{p, targets, nutrition.MacroDistribution(targets)})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// ABOUTME: MCP tool implementations for the climbing log.
// ABOUTME: Grade parsing, send and session logging, and listing.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// parse_grade
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "parse_grade",
		Description: "Parse a bouldering (V0-V17) or YDS (5.10a) grade and show its numeric value and conversions",
	}, s.handleParseGrade)

	// convert_grade
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "convert_grade",
		Description: "Convert a grade between V-scale and YDS",
	}, s.handleConvertGrade)

	// add_send
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_send",
		Description: "Record a benchmark send (a completed problem or route)",
	}, s.handleAddSend)

	// list_sends
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sends",
		Description: "List recent sends, optionally filtered by wall style",
	}, s.handleListSends)

	// log_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Log a climbing session with the grades attempted and completed",
	}, s.handleLogSession)

	s.registerCalculatorTools()
}

// Tool input/output types

type parseGradeInput struct {
	Grade string `json:"grade" jsonschema:"Grade to parse, e.g. V5 or 5.11c"`
}

type parseGradeOutput struct {
	Grade       string           `json:"grade"`
	Value       int              `json:"grade_numeric"`
	System      string           `json:"grade_type"`
	Recognized  bool             `json:"recognized"`
	Conversions grade.Conversion `json:"conversions"`
}

type convertGradeInput struct {
	Grade        string `json:"grade" jsonschema:"Grade to convert"`
	TargetSystem string `json:"target_system" jsonschema:"Target system: v-scale or yds"`
}

type convertGradeOutput struct {
	Grade        string `json:"grade"`
	TargetSystem string `json:"target_system"`
	Result       string `json:"result,omitempty"`
	Found        bool   `json:"found"`
	Message      string `json:"message"`
}

type addSendInput struct {
	Grade        string `json:"grade" jsonschema:"Grade sent, e.g. V5 or 5.11c"`
	Style        string `json:"style" jsonschema:"Wall style: slab, vertical, overhang, or roof"`
	Significance string `json:"significance,omitempty" jsonschema:"milestone, breakthrough, consistency (default), or project"`
	Date         string `json:"date,omitempty" jsonschema:"Send date (ISO 8601 or YYYY-MM-DD), defaults to now"`
	Notes        string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type sendOutput struct {
	ID      string `json:"id"`
	Grade   string `json:"grade"`
	Style   string `json:"style"`
	Message string `json:"message"`
}

type listSendsInput struct {
	Style string `json:"style,omitempty" jsonschema:"Filter by wall style"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type sendItem struct {
	ID           string `json:"id"`
	Grade        string `json:"grade"`
	Style        string `json:"style"`
	Significance string `json:"significance"`
	Date         string `json:"date"`
	Notes        string `json:"notes,omitempty"`
}

type listSendsOutput struct {
	Sends   []sendItem `json:"sends"`
	Count   int        `json:"count"`
	Message string     `json:"message,omitempty"`
}

type logSessionInput struct {
	SessionType     string   `json:"session_type" jsonschema:"gym, outdoor, training, or rest"`
	DurationMinutes int      `json:"duration_minutes,omitempty" jsonschema:"Session length in minutes"`
	Attempted       []string `json:"attempted,omitempty" jsonschema:"Grades attempted, one entry per attempt"`
	Completed       []string `json:"completed,omitempty" jsonschema:"Grades completed, one entry per send"`
	Date            string   `json:"date,omitempty" jsonschema:"Session date (ISO 8601 or YYYY-MM-DD), defaults to now"`
	Notes           string   `json:"notes,omitempty" jsonschema:"Journal notes"`
}

type sessionOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleParseGrade(ctx context.Context, req *mcp.CallToolRequest, input parseGradeInput) (*mcp.CallToolResult, parseGradeOutput, error) {
	g := grade.Parse(input.Grade)
	return nil, parseGradeOutput{
		Grade:       g.Display,
		Value:       g.Value,
		System:      string(g.System),
		Recognized:  g.Parsed,
		Conversions: grade.Conversions(input.Grade),
	}, nil
}

func (s *Server) handleConvertGrade(ctx context.Context, req *mcp.CallToolRequest, input convertGradeInput) (*mcp.CallToolResult, convertGradeOutput, error) {
	system, err := grade.ParseSystem(input.TargetSystem)
	if err != nil {
		return nil, convertGradeOutput{}, err
	}

	out := convertGradeOutput{Grade: input.Grade, TargetSystem: string(system)}
	result, ok := grade.Convert(input.Grade, system)
	if !ok {
		out.Message = fmt.Sprintf("No %s equivalent for %s", system, input.Grade)
		return nil, out, nil
	}

	out.Result = result
	out.Found = true
	out.Message = fmt.Sprintf("%s ≈ %s", input.Grade, result)
	return nil, out, nil
}

func (s *Server) handleAddSend(ctx context.Context, req *mcp.CallToolRequest, input addSendInput) (*mcp.CallToolResult, sendOutput, error) {
	g, err := grade.ParseStrict(input.Grade)
	if err != nil {
		return nil, sendOutput{}, err
	}
	style, err := models.ParseStyle(input.Style)
	if err != nil {
		return nil, sendOutput{}, err
	}

	send := models.NewSend(g.Display, style)
	if input.Significance != "" {
		sig, err := models.ParseSignificance(input.Significance)
		if err != nil {
			return nil, sendOutput{}, err
		}
		send.WithSignificance(sig)
	}
	if input.Date != "" {
		t, err := parseTimestamp(input.Date)
		if err != nil {
			return nil, sendOutput{}, err
		}
		send.WithDate(t)
	}
	if input.Notes != "" {
		send.WithNotes(input.Notes)
	}

	if err := s.repo.CreateSend(send); err != nil {
		return nil, sendOutput{}, fmt.Errorf("failed to create send: %w", err)
	}
	s.logger.Debug("send recorded", "id", send.ID.String()[:8], "grade", send.Grade)

	return nil, sendOutput{
		ID:      send.ID.String()[:8],
		Grade:   send.Grade,
		Style:   string(send.Style),
		Message: fmt.Sprintf("Logged %s %s send (ID: %s)", send.Grade, send.Style, send.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListSends(ctx context.Context, req *mcp.CallToolRequest, input listSendsInput) (*mcp.CallToolResult, listSendsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var style *models.Style
	if input.Style != "" {
		st, err := models.ParseStyle(input.Style)
		if err != nil {
			return nil, listSendsOutput{}, err
		}
		style = &st
	}

	sends, err := s.repo.ListSends(style, input.Limit)
	if err != nil {
		return nil, listSendsOutput{}, fmt.Errorf("failed to list sends: %w", err)
	}

	out := listSendsOutput{Sends: make([]sendItem, 0, len(sends)), Count: len(sends)}
	for _, send := range sends {
		out.Sends = append(out.Sends, toSendItem(send))
	}
	if len(sends) == 0 {
		out.Message = "No sends found."
	}
	return nil, out, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	st, err := models.ParseSessionType(input.SessionType)
	if err != nil {
		return nil, sessionOutput{}, err
	}

	attempted, err := grade.Normalize(input.Attempted)
	if err != nil {
		return nil, sessionOutput{}, err
	}
	completed, err := grade.Normalize(input.Completed)
	if err != nil {
		return nil, sessionOutput{}, err
	}

	session := models.NewSession(st, input.DurationMinutes).
		WithAttempted(attempted...).
		WithCompleted(completed...)
	if input.Date != "" {
		t, err := parseTimestamp(input.Date)
		if err != nil {
			return nil, sessionOutput{}, err
		}
		session.WithDate(t)
	}
	if input.Notes != "" {
		session.WithNotes(input.Notes)
	}
	if err := session.Validate(); err != nil {
		return nil, sessionOutput{}, err
	}

	if err := s.repo.CreateSession(session); err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Debug("session logged", "id", session.ID.String()[:8], "type", st)

	return nil, sessionOutput{
		ID: session.ID.String()[:8],
		Message: fmt.Sprintf("Logged %d min %s session: %d/%d completed (ID: %s)",
			session.DurationMinutes, st, len(session.GradesCompleted), len(session.GradesAttempted), session.ID.String()[:8]),
	}, nil
}

func toSendItem(s *models.Send) sendItem {
	item := sendItem{
		ID:           s.ID.String()[:8],
		Grade:        s.Grade,
		Style:        string(s.Style),
		Significance: string(s.Significance),
		Date:         s.Date.Format(time.RFC3339),
	}
	if s.Notes != nil {
		item.Notes = *s.Notes
	}
	return item
}

// parseTimestamp accepts RFC 3339, "2006-01-02 15:04", or a bare date.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC 3339)", s)
}

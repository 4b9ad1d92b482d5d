// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, confirmation handling, and embedded content.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSkillInstallWritesFile verifies that installSkill creates the nested
// directory and writes the embedded content.
func TestSkillInstallWritesFile(t *testing.T) {
	tmpHome := t.TempDir()
	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	var out bytes.Buffer
	if err := installSkill(tmpHome, strings.NewReader(""), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(tmpHome, ".claude", "skills", "crag", "SKILL.md")
	written, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	if !bytes.Equal(written, content) {
		t.Error("Installed skill does not match embedded content")
	}
	if !strings.Contains(out.String(), "Installed crag skill") {
		t.Errorf("Expected success message, got:\n%s", out.String())
	}
}

// TestSkillInstallOverwritesExistingFile verifies that a stale skill file is replaced.
func TestSkillInstallOverwritesExistingFile(t *testing.T) {
	tmpHome := t.TempDir()
	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	skillPath := skillPathFor(tmpHome)
	if err := os.MkdirAll(filepath.Dir(skillPath), 0755); err != nil {
		t.Fatalf("Failed to create skill directory: %v", err)
	}
	if err := os.WriteFile(skillPath, []byte("# Old Skill\nstale content"), 0644); err != nil {
		t.Fatalf("Failed to write old skill file: %v", err)
	}

	var out bytes.Buffer
	if err := installSkill(tmpHome, strings.NewReader(""), &out); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	if !strings.Contains(out.String(), "already exists") {
		t.Error("Expected overwrite notice")
	}

	newData, err := os.ReadFile(skillPath)
	if err != nil {
		t.Fatalf("Failed to read new skill file: %v", err)
	}
	if strings.Contains(string(newData), "stale content") {
		t.Error("Old content should have been replaced")
	}
}

// TestSkillInstallConfirmation verifies the prompt answer decides whether
// anything is written.
func TestSkillInstallConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		installed bool
	}{
		{"yes", "y\n", true},
		{"full yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpHome := t.TempDir()
			skillSkipConfirm = false

			var out bytes.Buffer
			if err := installSkill(tmpHome, strings.NewReader(tt.answer), &out); err != nil {
				t.Fatalf("installSkill failed: %v", err)
			}

			_, err := os.Stat(skillPathFor(tmpHome))
			if installed := err == nil; installed != tt.installed {
				t.Errorf("answer %q: installed = %v, want %v", tt.answer, installed, tt.installed)
			}
			if !tt.installed && !strings.Contains(out.String(), "Installation canceled.") {
				t.Error("Expected cancel message")
			}
		})
	}
}

// TestSkillFSReadEmbeddedContent verifies the embedded SKILL.md has frontmatter.
func TestSkillFSReadEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	contentStr := string(content)
	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}
	if !strings.Contains(contentStr, "name: crag") {
		t.Error("Expected frontmatter to contain 'name: crag'")
	}
	if !strings.Contains(contentStr, "description:") {
		t.Error("Expected frontmatter to contain 'description:'")
	}
}

// TestSkillSkipConfirmFlag verifies the flag exists and has correct defaults.
func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}

// TestSkillDocumentsEveryTool verifies the skill references each MCP tool.
func TestSkillDocumentsEveryTool(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	expectedTools := []string{
		"mcp__crag__parse_grade",
		"mcp__crag__convert_grade",
		"mcp__crag__add_send",
		"mcp__crag__list_sends",
		"mcp__crag__log_session",
		"mcp__crag__training_load",
		"mcp__crag__progress",
		"mcp__crag__nutrition_targets",
		"mcp__crag__nutrition_insights",
	}

	contentStr := string(content)
	for _, tool := range expectedTools {
		if !strings.Contains(contentStr, tool) {
			t.Errorf("Expected embedded SKILL.md to reference %q", tool)
		}
	}

	for _, style := range []string{"slab", "vertical", "overhang", "roof"} {
		if !strings.Contains(contentStr, style) {
			t.Errorf("Expected embedded SKILL.md to document style %q", style)
		}
	}
}

// ABOUTME: Climbing grade parsing, formatting, and ordering.
// ABOUTME: Handles V-scale boulder grades and YDS route grades.
package grade

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnrecognizedGrade is returned by ParseStrict for input matching no grading system.
var ErrUnrecognizedGrade = errors.New("unrecognized grade")

// System identifies a grading scale.
type System string

const (
	VScale System = "v-scale"
	YDS    System = "yds"
)

// ParseSystem validates a grading system name.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v", "v-scale", "vscale":
		return VScale, nil
	case "yds", "5":
		return YDS, nil
	}
	return "", fmt.Errorf("unknown grading system %q (use v-scale or yds)", s)
}

// CrossSystemOffset is added to V-scale values when ranking them against YDS
// values. V5 ranks with 5.10a. It is an approximation, not an equivalence.
var CrossSystemOffset = 95

// Grade is a parsed climbing difficulty.
type Grade struct {
	Display string `json:"grade"`
	Value   int    `json:"grade_numeric"`
	System  System `json:"grade_type"`
	// Parsed is false when the input matched no system. Such grades carry
	// Value 0 and would otherwise be indistinguishable from V0.
	Parsed bool `json:"parsed"`
}

var (
	vScalePattern = regexp.MustCompile(`^V(\d+)`)
	ydsPattern    = regexp.MustCompile(`^5\.(\d+)([A-D]?)`)
)

// Parse reads a grade string case-insensitively. Unrecognized input yields
// a V-scale grade with Value 0, the original text, and Parsed false.
func Parse(input string) Grade {
	clean := strings.ToUpper(strings.TrimSpace(input))

	if m := vScalePattern.FindStringSubmatch(clean); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return Grade{Display: fmt.Sprintf("V%d", n), Value: n, System: VScale, Parsed: true}
		}
	}

	if m := ydsPattern.FindStringSubmatch(clean); m != nil {
		base, err := strconv.Atoi(m[1])
		if err == nil {
			value := base * 10
			display := fmt.Sprintf("5.%d", base)
			if letter := m[2]; letter != "" {
				value += int(letter[0] - 'A')
				display += strings.ToLower(letter)
			}
			return Grade{Display: display, Value: value, System: YDS, Parsed: true}
		}
	}

	return Grade{Display: input, Value: 0, System: VScale}
}

// ParseStrict is Parse that fails instead of falling back.
func ParseStrict(input string) (Grade, error) {
	g := Parse(input)
	if !g.Parsed {
		return g, fmt.Errorf("%w: %q", ErrUnrecognizedGrade, input)
	}
	return g, nil
}

// Normalize checks every grade with ParseStrict and returns their display
// forms. Blank entries are dropped.
func Normalize(grades []string) ([]string, error) {
	var out []string
	for _, raw := range grades {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		g, err := ParseStrict(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, g.Display)
	}
	return out, nil
}

// NumericToGrade formats a numeric value in the given system.
func NumericToGrade(value int, system System) string {
	if system == VScale {
		return fmt.Sprintf("V%d", value)
	}
	base := value / 10
	if letter := value % 10; letter > 0 {
		return fmt.Sprintf("5.%d%c", base, rune('a'+letter))
	}
	return fmt.Sprintf("5.%d", base)
}

// rankValue places a grade on a shared scale for cross-system comparison.
func rankValue(g Grade) int {
	if g.System == VScale {
		return g.Value + CrossSystemOffset
	}
	return g.Value
}

// Compare orders grades hardest first: it is negative when a is harder than b.
func Compare(a, b Grade) int {
	if a.System != b.System {
		return rankValue(b) - rankValue(a)
	}
	return b.Value - a.Value
}

// Option is one entry of a grade picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options lists every grade offered for a system, easiest first.
func Options(system System) []Option {
	var opts []Option
	if system == VScale {
		for i := 0; i <= 17; i++ {
			g := fmt.Sprintf("V%d", i)
			opts = append(opts, Option{Value: g, Label: g})
		}
		return opts
	}

	for base := 1; base <= 15; base++ {
		if base <= 9 {
			g := fmt.Sprintf("5.%d", base)
			opts = append(opts, Option{Value: g, Label: g})
			continue
		}
		for _, letter := range []string{"a", "b", "c", "d"} {
			g := fmt.Sprintf("5.%d%s", base, letter)
			opts = append(opts, Option{Value: g, Label: g})
		}
	}
	return opts
}

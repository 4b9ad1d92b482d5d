// ABOUTME: Conversion between V-scale, YDS, and French grades.
// ABOUTME: Lookup tables cover V0-V17 and 5.10a-5.14d only.
package grade

import "fmt"

var vScaleToYDS = map[int]string{
	0: "5.10a", 1: "5.10b", 2: "5.10c", 3: "5.10d",
	4: "5.11a", 5: "5.11b", 6: "5.11c", 7: "5.11d",
	8: "5.12a", 9: "5.12b", 10: "5.12c", 11: "5.12d",
	12: "5.13a", 13: "5.13b", 14: "5.13c", 15: "5.13d",
	16: "5.14a", 17: "5.14b",
}

var ydsToVScale = map[string]int{
	"5.10a": 0, "5.10b": 1, "5.10c": 2, "5.10d": 3,
	"5.11a": 4, "5.11b": 5, "5.11c": 6, "5.11d": 7,
	"5.12a": 8, "5.12b": 9, "5.12c": 10, "5.12d": 11,
	"5.13a": 12, "5.13b": 13, "5.13c": 14, "5.13d": 15,
	"5.14a": 16, "5.14b": 17, "5.14c": 18, "5.14d": 19,
}

// frenchByVScale is a simplified French boulder scale indexed by V grade.
var frenchByVScale = []string{
	"4", "4+", "5", "5+", "6A", "6A+", "6B", "6B+", "6C",
	"6C+", "7A", "7A+", "7B", "7B+", "7C", "7C+", "8A", "8A+",
}

// Convert translates a grade string into the target system. The second
// result is false when the tables hold no mapping.
func Convert(input string, target System) (string, bool) {
	g := Parse(input)
	if g.System == target {
		return g.Display, true
	}

	switch {
	case g.System == VScale && target == YDS:
		yds, ok := vScaleToYDS[g.Value]
		return yds, ok
	case g.System == YDS && target == VScale:
		v, ok := ydsToVScale[g.Display]
		if !ok {
			return "", false
		}
		return fmt.Sprintf("V%d", v), true
	}
	return "", false
}

// VScaleLevel returns the V-scale number for any grade string, converting
// YDS through the lookup table.
func VScaleLevel(input string) (int, bool) {
	g := Parse(input)
	if g.System == VScale {
		return g.Value, true
	}
	v, ok := ydsToVScale[g.Display]
	return v, ok
}

// Conversion holds a grade expressed in every known system.
type Conversion struct {
	VScale *int    `json:"v_scale"`
	YDS    *string `json:"yds"`
	French *string `json:"french"`
	Value  int     `json:"numeric_value"`
}

// Conversions expresses a grade in V-scale, YDS, and French where mappings exist.
func Conversions(input string) Conversion {
	g := Parse(input)
	c := Conversion{Value: g.Value}

	if g.System == VScale {
		v := g.Value
		c.VScale = &v
		if yds, ok := Convert(input, YDS); ok {
			c.YDS = &yds
		}
	} else {
		yds := g.Display
		c.YDS = &yds
		if v, ok := ydsToVScale[g.Display]; ok {
			c.VScale = &v
		}
	}

	if c.VScale != nil && *c.VScale >= 0 && *c.VScale < len(frenchByVScale) {
		f := frenchByVScale[*c.VScale]
		c.French = &f
	}
	return c
}

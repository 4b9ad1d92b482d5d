package grade

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVScale(t *testing.T) {
	for n := 0; n <= 17; n++ {
		for _, s := range []string{fmt.Sprintf("V%d", n), fmt.Sprintf("v%d", n), fmt.Sprintf("  V%d ", n)} {
			g := Parse(s)
			assert.Equal(t, n, g.Value, s)
			assert.Equal(t, VScale, g.System, s)
			assert.Equal(t, fmt.Sprintf("V%d", n), g.Display, s)
			assert.True(t, g.Parsed, s)
		}
	}
}

func TestParseYDS(t *testing.T) {
	tests := []struct {
		input   string
		display string
		value   int
	}{
		{"5.10a", "5.10a", 100},
		{"5.10B", "5.10b", 101},
		{"5.10c", "5.10c", 102},
		{"5.10d", "5.10d", 103},
		{"5.9", "5.9", 90},
		{"5.12A", "5.12a", 120},
		{"5.14d", "5.14d", 143},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g := Parse(tt.input)
			assert.Equal(t, Grade{Display: tt.display, Value: tt.value, System: YDS, Parsed: true}, g)
		})
	}
}

func TestParseUnrecognizedFallsBack(t *testing.T) {
	g := Parse("font 7a")
	assert.Equal(t, "font 7a", g.Display)
	assert.Equal(t, 0, g.Value)
	assert.Equal(t, VScale, g.System)
	assert.False(t, g.Parsed)

	v0 := Parse("V0")
	assert.Equal(t, g.Value, v0.Value)
	assert.True(t, v0.Parsed, "a genuine V0 must be distinguishable from a failed parse")
}

func TestParseStrict(t *testing.T) {
	_, err := ParseStrict("easy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedGrade))

	g, err := ParseStrict("v4")
	require.NoError(t, err)
	assert.Equal(t, "V4", g.Display)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]string{" v4", "5.11C", "", "V10 "})
	require.NoError(t, err)
	assert.Equal(t, []string{"V4", "5.11c", "V10"}, got)

	_, err = Normalize([]string{"V4", "hard"})
	assert.ErrorIs(t, err, ErrUnrecognizedGrade)

	got, err = Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestYDSRoundTrip(t *testing.T) {
	for _, opt := range Options(YDS) {
		g := Parse(opt.Value)
		assert.Equal(t, opt.Value, NumericToGrade(g.Value, YDS))
	}
	assert.Equal(t, "5.10a", NumericToGrade(Parse("5.10A").Value, YDS))
}

func TestNumericToGradeVScale(t *testing.T) {
	assert.Equal(t, "V7", NumericToGrade(7, VScale))
}

func TestCompareSameSystem(t *testing.T) {
	grades := []Grade{Parse("V3"), Parse("V10"), Parse("V0"), Parse("V6")}
	sort.Slice(grades, func(i, j int) bool { return Compare(grades[i], grades[j]) < 0 })

	var got []string
	for _, g := range grades {
		got = append(got, g.Display)
	}
	assert.Equal(t, []string{"V10", "V6", "V3", "V0"}, got)
}

func TestCompareIsAntisymmetricAndTransitive(t *testing.T) {
	var grades []Grade
	for _, opt := range Options(YDS) {
		grades = append(grades, Parse(opt.Value))
	}

	for _, a := range grades {
		for _, b := range grades {
			assert.Equal(t, Compare(a, b), -Compare(b, a))
			for _, c := range grades {
				if Compare(a, b) < 0 && Compare(b, c) < 0 {
					assert.Less(t, Compare(a, c), 0)
				}
			}
		}
	}
}

func TestCompareCrossSystem(t *testing.T) {
	// V5 ranks as 100, the same as 5.10a.
	assert.Equal(t, 0, Compare(Parse("V5"), Parse("5.10a")))
	assert.Less(t, Compare(Parse("V8"), Parse("5.10a")), 0)

	old := CrossSystemOffset
	CrossSystemOffset = 0
	t.Cleanup(func() { CrossSystemOffset = old })
	assert.Greater(t, Compare(Parse("V8"), Parse("5.10a")), 0)
}

func TestOptions(t *testing.T) {
	v := Options(VScale)
	require.Len(t, v, 18)
	assert.Equal(t, Option{Value: "V0", Label: "V0"}, v[0])
	assert.Equal(t, "V17", v[17].Value)

	yds := Options(YDS)
	require.Len(t, yds, 9+6*4)
	assert.Equal(t, "5.1", yds[0].Value)
	assert.Equal(t, "5.9", yds[8].Value)
	assert.Equal(t, "5.10a", yds[9].Value)
	assert.Equal(t, "5.15d", yds[len(yds)-1].Value)
}

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem("YDS")
	require.NoError(t, err)
	assert.Equal(t, YDS, s)

	s, err = ParseSystem("v-scale")
	require.NoError(t, err)
	assert.Equal(t, VScale, s)

	_, err = ParseSystem("font")
	assert.Error(t, err)
}

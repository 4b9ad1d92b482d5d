package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/training"
)

func TestRecommendationsStyleGap(t *testing.T) {
	styles := StyleAnalysis{
		models.StyleSlab:     {AverageGrade: 3, Count: 4, BestGrade: "V4"},
		models.StyleOverhang: {AverageGrade: 5.5, Count: 6, BestGrade: "V6"},
		models.StyleVertical: {BestGrade: NoGrade},
		models.StyleRoof:     {BestGrade: NoGrade},
	}
	load := training.Load{Load: 50, Intensity: 5}

	recs := Recommendations("V6", styles, load)
	assert.Equal(t, []string{"Focus on slab climbing - it's 2.5 grades behind your overhang"}, recs)
}

func TestRecommendationsLoad(t *testing.T) {
	empty := AnalyzeStyles(nil)

	low := Recommendations("V2", empty, training.Load{Load: 10, Intensity: 2})
	assert.Equal(t, []string{"Consider increasing training frequency or session length"}, low)

	high := Recommendations("V2", empty, training.Load{Load: 90, Intensity: 2})
	assert.Equal(t, []string{"High training load detected - ensure adequate recovery"}, high)

	assert.Empty(t, Recommendations("V2", empty, training.Load{Load: 50, Intensity: 2}))
}

func TestRecommendationsIntensityAndAdvanced(t *testing.T) {
	recs := Recommendations("V8", AnalyzeStyles(nil), training.Load{Load: 50, Intensity: 4})

	assert.Equal(t, []string{
		"Gradually increase the difficulty of problems you attempt",
		"Focus on power development - campus board and limit bouldering",
		"Core tension work is crucial for V7+ overhangs",
		"Practice reading complex sequences before attempting",
	}, recs)
}

func TestRecommendationsIntensityUsesVScaleLevel(t *testing.T) {
	empty := AnalyzeStyles(nil)
	warning := "Gradually increase the difficulty of problems you attempt"

	// 5.12a sits at V8, so V7 work is close enough.
	assert.NotContains(t, Recommendations("5.12a", empty, training.Load{Load: 50, Intensity: 7}), warning)
	assert.Contains(t, Recommendations("5.12a", empty, training.Load{Load: 50, Intensity: 4}), warning)

	assert.NotContains(t, Recommendations("5.10a", empty, training.Load{Load: 50, Intensity: 0}), warning)
}

func TestRecommendationsDeterministic(t *testing.T) {
	styles := StyleAnalysis{
		models.StyleSlab:     {AverageGrade: 2, Count: 1},
		models.StyleVertical: {AverageGrade: 2, Count: 1},
		models.StyleOverhang: {AverageGrade: 6, Count: 1},
		models.StyleRoof:     {AverageGrade: 6, Count: 1},
	}
	first := Recommendations("V5", styles, training.Load{Load: 50, Intensity: 5})
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Recommendations("V5", styles, training.Load{Load: 50, Intensity: 5}))
	}
	assert.Equal(t, "Focus on slab climbing - it's 4.0 grades behind your roof", first[0])
}

package insights

import "github.com/moodcraft/moodcraft/internal/core"

// labelScores maps the closed label set to chart scores. Free-form
// moods are not in this table; score falls back to the entry's own
// intensity for those.
var labelScores = map[core.Label]float64{
	core.LabelHappy:   9,
	core.LabelCalm:    7,
	core.LabelNeutral: 5,
	core.LabelAnxious: 3,
	core.LabelSad:     2,
	core.LabelAngry:   1,
}

// score maps an entry to its numeric mood score. Unrecognized labels
// use the entry's recorded intensity.
func score(entry core.MoodEntry) float64 {
	if label, ok := core.ParseLabel(entry.Mood); ok {
		return labelScores[label]
	}
	return float64(entry.Intensity)
}

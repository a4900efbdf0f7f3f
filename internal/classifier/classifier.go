// Package classifier derives a mood from free text.
//
// Classification is a pure function: the same text always yields the
// same mood, intensity and recommendation bundle. Anything display-only
// and non-deterministic (the narrative response) lives elsewhere.
package classifier

import (
	"math"
	"strings"

	"github.com/moodcraft/moodcraft/internal/core"
)

// Result is the output of classification
type Result struct {
	Mood                 core.Label `json:"mood"`
	Intensity            int        `json:"intensity"`
	SuggestedActions     []string   `json:"suggested_actions"`
	MusicRecommendations []string   `json:"music_recommendations"`
	Summary              string     `json:"summary"`
}

// keywords per category. Matching is substring containment against the
// lower-cased text, so "sad" also matches inside "sadly". That looseness
// is kept on purpose: it matches what users of the original app saw.
var keywords = map[core.Label][]string{
	core.LabelHappy:   {"happy", "joy", "excited", "great", "wonderful", "amazing", "fantastic", "delighted", "cheerful", "glad", "grateful", "love"},
	core.LabelSad:     {"sad", "down", "unhappy", "depressed", "miserable", "lonely", "gloomy", "heartbroken", "cry", "tears", "hopeless"},
	core.LabelAngry:   {"angry", "mad", "furious", "annoyed", "frustrated", "irritated", "rage", "hate", "resent"},
	core.LabelAnxious: {"anxious", "worried", "nervous", "stress", "afraid", "scared", "overwhelmed", "panic", "uneasy", "tense", "dread"},
	core.LabelCalm:    {"calm", "relaxed", "peaceful", "serene", "content", "tranquil", "rested", "chill", "at ease"},
}

// scanOrder fixes tie-breaking: the first category to reach the maximum
// count wins.
var scanOrder = []core.Label{core.LabelHappy, core.LabelSad, core.LabelAngry, core.LabelAnxious, core.LabelCalm}

// Classify maps non-blank free text to a mood, an intensity in [0,10]
// and the static recommendation bundle for that mood. Callers must
// reject blank input before calling; Classify itself cannot fail.
func Classify(text string) Result {
	lower := strings.ToLower(text)

	counts := make(map[core.Label]int, len(scanOrder))
	total := 0
	for label, words := range keywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				counts[label]++
			}
		}
		total += counts[label]
	}

	// No keyword hit anywhere: fall back to shape-of-text heuristics.
	if total == 0 {
		if strings.Count(text, "!") > 1 {
			counts[core.LabelHappy]++
		}
		if strings.Count(text, "?") > 1 {
			counts[core.LabelAnxious]++
		}
		words := len(strings.Fields(text))
		if words > 50 {
			counts[core.LabelAnxious]++
		}
		if words < 5 {
			counts[core.LabelSad]++
		}
	}

	mood := core.LabelNeutral
	max := 0
	for _, label := range scanOrder {
		if counts[label] > max {
			max = counts[label]
			mood = label
		}
	}

	intensity := int(math.Round(float64(max+1)*1.5 + float64(len(text))/100))
	if intensity > 10 {
		intensity = 10
	}

	p := profiles[mood]
	return Result{
		Mood:                 mood,
		Intensity:            intensity,
		SuggestedActions:     append([]string(nil), p.Actions...),
		MusicRecommendations: append([]string(nil), p.Music...),
		Summary:              p.Summary,
	}
}

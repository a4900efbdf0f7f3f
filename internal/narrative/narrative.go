// Package narrative picks the user-facing response sentence shown after
// a mood submission. Selection is intentionally random and the chosen
// sentence is never persisted, so the deterministic classifier can be
// tested independently of display text.
package narrative

import (
	"math/rand"

	"github.com/moodcraft/moodcraft/internal/core"
)

var pools = map[core.Label][]string{
	core.LabelHappy: {
		"That's wonderful to hear. Hold on to what made today feel this way.",
		"Your energy comes through clearly. Enjoy the momentum.",
		"Days like this are worth remembering. Thanks for sharing it.",
	},
	core.LabelSad: {
		"I understand you're feeling that way. Remember to take care of yourself today.",
		"Thank you for sharing how you feel. Would you like to explore some self-care activities?",
		"Your emotions are valid. Let's think about some ways to support your well-being today.",
	},
	core.LabelAngry: {
		"That frustration sounds real. A short pause might take some of its edge off.",
		"I appreciate your honesty about your feelings. What might help you cool down right now?",
		"Strong feelings like this usually point at something that matters to you.",
	},
	core.LabelAnxious: {
		"It sounds like you're experiencing some complex emotions. That's completely normal.",
		"Worry has a way of growing in the dark. Naming it, like you just did, helps.",
		"One small, concrete step is usually enough to loosen anxiety's grip a little.",
	},
	core.LabelCalm: {
		"It sounds like you've found some real peace today. That's worth protecting.",
		"A settled mind is a good foundation for whatever comes next.",
		"Thank you for sharing. Moments like this are good ones to remember on harder days.",
	},
	core.LabelNeutral: {
		"Thank you for checking in. Even ordinary days are worth noting.",
		"I appreciate your honesty about your feelings. What might help you feel better right now?",
		"Noted. Sometimes a flat day is just a flat day, and that's fine.",
	},
}

// Pick returns one canned response sentence for the mood, chosen at
// random. Unknown labels draw from the neutral pool.
func Pick(mood core.Label) string {
	pool, ok := pools[mood]
	if !ok {
		pool = pools[core.LabelNeutral]
	}
	return pool[rand.Intn(len(pool))]
}

package classifier

import "github.com/moodcraft/moodcraft/internal/core"

// profile is the static recommendation bundle for one mood. This is
// configuration data, not derived state.
type profile struct {
	Actions []string
	Music   []string
	Summary string
}

var profiles = map[core.Label]profile{
	core.LabelHappy: {
		Actions: []string{
			"Share your good mood with someone you care about",
			"Capture what made today good in a journal",
			"Channel the energy into a creative hobby",
		},
		Music:   []string{"Feel-good playlist", "Upbeat classics", "Motivational playlist"},
		Summary: "You sound upbeat and energized today.",
	},
	core.LabelSad: {
		Actions: []string{
			"Take some time for self-care",
			"Talk to someone you trust about your feelings",
			"Be gentle with yourself today",
		},
		Music:   []string{"Gentle piano", "Acoustic ballads", "Melancholy symphonies"},
		Summary: "It sounds like things feel heavy right now.",
	},
	core.LabelAngry: {
		Actions: []string{
			"Step away from the situation for a few minutes",
			"Try a short burst of physical exercise",
			"Write down what triggered the feeling",
		},
		Music:   []string{"Soothing ambient", "Classical symphonies", "Gentle piano"},
		Summary: "There is a lot of frustration in what you shared.",
	},
	core.LabelAnxious: {
		Actions: []string{
			"Try a slow breathing exercise",
			"List the things that are within your control",
			"Reduce stimulation for the next hour",
		},
		Music:   []string{"Soothing ambient", "Sleep sounds", "Gentle piano"},
		Summary: "You seem to be carrying some worry at the moment.",
	},
	core.LabelCalm: {
		Actions: []string{
			"Enjoy some reading time",
			"Take a relaxed walk outside",
			"Note what helped you reach this state",
		},
		Music:   []string{"Gentle piano", "Soothing ambient", "Acoustic ballads"},
		Summary: "You sound settled and at ease.",
	},
	core.LabelNeutral: {
		Actions: []string{
			"Check in with yourself again later today",
			"Do one small thing you have been postponing",
			"Drink some water and stretch",
		},
		Music:   []string{"Lo-fi beats", "Acoustic ballads", "Soothing ambient"},
		Summary: "Nothing stands out strongly in what you shared.",
	},
}

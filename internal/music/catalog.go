// Package music holds the playlist catalog and the boundary to the
// audio player. The core only ever hands category tags and opaque
// track references across this boundary; playback itself is an
// external collaborator.
package music

import "github.com/moodcraft/moodcraft/internal/core"

// Track is one playable item in a playlist
type Track struct {
	Name   string `json:"name"`
	Length string `json:"length"`
	URL    string `json:"url"`
}

// Playlist is a curated set of tracks for one category
type Playlist struct {
	Category    core.MusicCategory `json:"category"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tracks      []Track            `json:"tracks"`
}

// catalog is static configuration: one playlist per music category.
var catalog = map[core.MusicCategory]Playlist{
	core.MusicHappy: {
		Category:    core.MusicHappy,
		Name:        "Feel-Good Classics",
		Description: "Upbeat songs to keep a good mood rolling.",
		Tracks: []Track{
			{Name: "Sunset Drive", Length: "4:45", URL: "https://cdn.freesound.org/previews/583/583545_7616568-lq.mp3"},
			{Name: "Starry Night", Length: "3:50", URL: "https://cdn.freesound.org/previews/612/612117_5674468-lq.mp3"},
			{Name: "Mountain Road", Length: "4:12", URL: "https://cdn.freesound.org/previews/635/635586_14159485-lq.mp3"},
		},
	},
	core.MusicCalm: {
		Category:    core.MusicCalm,
		Name:        "Gentle Piano",
		Description: "Soothing piano melodies to calm your mind and relax your body.",
		Tracks: []Track{
			{Name: "Peaceful Morning", Length: "3:45", URL: "https://cdn.freesound.org/previews/612/612095_5674468-lq.mp3"},
			{Name: "Rainy Day Reflections", Length: "4:20", URL: "https://cdn.freesound.org/previews/651/651713_5674468-lq.mp3"},
			{Name: "Moonlight Sonata", Length: "5:10", URL: "https://cdn.freesound.org/previews/368/368332_1676145-lq.mp3"},
		},
	},
	core.MusicFocus: {
		Category:    core.MusicFocus,
		Name:        "Soothing Ambient",
		Description: "Ambient sounds to create a steady atmosphere for deep work.",
		Tracks: []Track{
			{Name: "Ocean Waves", Length: "6:12", URL: "https://cdn.freesound.org/previews/517/517407_11019257-lq.mp3"},
			{Name: "Forest Dreams", Length: "5:30", URL: "https://cdn.freesound.org/previews/398/398715_7552264-lq.mp3"},
			{Name: "Gentle Rain", Length: "7:45", URL: "https://cdn.freesound.org/previews/419/419827_230356-lq.mp3"},
		},
	},
	core.MusicLofi: {
		Category:    core.MusicLofi,
		Name:        "Melancholy Symphonies",
		Description: "Embrace your emotions with these quiet, understated compositions.",
		Tracks: []Track{
			{Name: "Winter's Tale", Length: "5:23", URL: "https://cdn.freesound.org/previews/612/612092_5674468-lq.mp3"},
			{Name: "Rainy Memories", Length: "4:15", URL: "https://cdn.freesound.org/previews/344/344430_1676145-lq.mp3"},
			{Name: "Quiet Reflection", Length: "6:05", URL: "https://cdn.freesound.org/previews/368/368326_1676145-lq.mp3"},
		},
	},
}

// PlaylistFor returns the playlist for a category
func PlaylistFor(category core.MusicCategory) (Playlist, bool) {
	p, ok := catalog[category]
	return p, ok
}

// Playlists returns the full catalog in a stable order
func Playlists() []Playlist {
	out := make([]Playlist, 0, len(catalog))
	for _, c := range core.MusicCategories {
		out = append(out, catalog[c])
	}
	return out
}

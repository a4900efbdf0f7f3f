package music

// Player is the audio playback collaborator. The core never drives
// decoding or streaming; it loads tracks by reference and reacts to
// load failures by advancing, which is the caller's policy to apply.
type Player interface {
	// Load prepares a track for playback. A load failure is an
	// ordinary outcome: callers typically advance to the next track.
	Load(track Track) error
	Play()
	Pause()
	// SetVolume takes a level in [0.0, 1.0].
	SetVolume(level float64)
	// OnTrackEnded registers a callback fired when the current track
	// finishes on its own.
	OnTrackEnded(fn func())
}

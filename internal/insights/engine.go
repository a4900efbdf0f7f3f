// Package insights derives chart-ready aggregates from the mood
// history. Everything here is deterministic: identical history and
// window always produce identical output, including the synthetic
// gap fill.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/moodcraft/moodcraft/internal/core"
)

// Point is one slot of a mood series. Synthetic marks placeholder
// values inserted where the slot had no real entries, so charts have
// no gaps; consumers that care must not mistake them for data.
type Point struct {
	Slot      string  `json:"slot"`
	Score     float64 `json:"score"`
	Entries   int     `json:"entries"`
	Synthetic bool    `json:"synthetic"`
}

// Count is one bucket of the emotion distribution, keyed by the raw
// mood string with no normalization.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// fallbackDistribution is returned when the filtered history is
// empty. Counts sum to 100 so percentage charts render unchanged.
var fallbackDistribution = []Count{
	{Label: "Happy", Count: 30},
	{Label: "Calm", Count: 25},
	{Label: "Neutral", Count: 20},
	{Label: "Anxious", Count: 15},
	{Label: "Sad", Count: 10},
}

// Filter returns the entries whose creation time falls inside the
// window ending at now. The span matches exactly what the slot
// builders bucket, so every filtered entry lands in a slot and the
// filtered count agrees with the summed slot counts.
func Filter(entries []core.MoodEntry, window core.Window, now time.Time) []core.MoodEntry {
	cutoff := windowCutoff(window, now)

	filtered := []core.MoodEntry{}
	for _, e := range entries {
		if e.CreatedAt.After(cutoff) && !e.CreatedAt.After(now) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// windowCutoff is the exclusive lower bound of the window: the instant
// just before the oldest slot begins. Week and year slots are calendar
// buckets, so their bound sits at midnight of the day 6 days back and
// at the first of the month 11 months back; the month window's four
// week slots roll back exactly 28 days from now.
func windowCutoff(window core.Window, now time.Time) time.Time {
	switch window {
	case core.WindowMonth:
		return now.AddDate(0, 0, -28)
	case core.WindowYear:
		m := now.AddDate(0, -11, 0)
		return time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, m.Location()).Add(-time.Nanosecond)
	default:
		d := now.AddDate(0, 0, -6)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).Add(-time.Nanosecond)
	}
}

// DailyMoodSeries buckets the windowed history into fixed slots and
// averages the mood score per slot. The current period is always the
// last slot. Week yields exactly 7 day slots, month 4 week slots,
// year 12 month slots; empty slots carry a synthetic placeholder.
func DailyMoodSeries(entries []core.MoodEntry, window core.Window, now time.Time) []Point {
	filtered := Filter(entries, window, now)

	switch window {
	case core.WindowMonth:
		return weekSlots(filtered, now)
	case core.WindowYear:
		return monthSlots(filtered, now)
	default:
		return daySlots(filtered, now)
	}
}

// daySlots produces 7 day-of-week slots with today last.
func daySlots(entries []core.MoodEntry, now time.Time) []Point {
	points := make([]Point, 0, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		sum, n := 0.0, 0
		for _, e := range entries {
			if sameDay(e.CreatedAt, day) {
				sum += score(e)
				n++
			}
		}
		points = append(points, makePoint(day.Weekday().String()[:3], sum, n, i))
	}
	return points
}

// weekSlots produces 4 seven-day slots covering the month window,
// most recent last.
func weekSlots(entries []core.MoodEntry, now time.Time) []Point {
	points := make([]Point, 0, 4)
	for i := 0; i < 4; i++ {
		end := now.AddDate(0, 0, -7*(3-i))
		start := end.AddDate(0, 0, -7)
		sum, n := 0.0, 0
		for _, e := range entries {
			if e.CreatedAt.After(start) && !e.CreatedAt.After(end) {
				sum += score(e)
				n++
			}
		}
		points = append(points, makePoint(fmt.Sprintf("Week %d", i+1), sum, n, i))
	}
	return points
}

// monthSlots produces 12 calendar-month slots ending with the current
// month.
func monthSlots(entries []core.MoodEntry, now time.Time) []Point {
	points := make([]Point, 0, 12)
	for i := 0; i < 12; i++ {
		month := now.AddDate(0, i-11, 0)
		sum, n := 0.0, 0
		for _, e := range entries {
			if e.CreatedAt.Year() == month.Year() && e.CreatedAt.Month() == month.Month() {
				sum += score(e)
				n++
			}
		}
		points = append(points, makePoint(month.Month().String()[:3], sum, n, i))
	}
	return points
}

func makePoint(slot string, sum float64, n, idx int) Point {
	if n == 0 {
		return Point{Slot: slot, Score: syntheticFill(idx), Synthetic: true}
	}
	return Point{Slot: slot, Score: round1(sum / float64(n)), Entries: n}
}

// syntheticFill is the placeholder for slots with no real data: a
// smooth wave around the neutral score, a pure function of the slot
// index.
func syntheticFill(idx int) float64 {
	return round1(5 + 1.5*math.Sin(0.9*float64(idx)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// EmotionDistribution groups the windowed history by raw mood string
// and counts occurrences. An empty filtered set yields the fixed
// fallback distribution, never an empty result.
func EmotionDistribution(entries []core.MoodEntry, window core.Window, now time.Time) []Count {
	filtered := Filter(entries, window, now)
	if len(filtered) == 0 {
		return append([]Count{}, fallbackDistribution...)
	}

	byLabel := make(map[string]int)
	for _, e := range filtered {
		byLabel[e.Mood]++
	}

	counts := make([]Count, 0, len(byLabel))
	for label, n := range byLabel {
		counts = append(counts, Count{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})

	return counts
}

// Insight classifies the average of the last 3 daily scores into one
// of four canned sentences.
func Insight(series []Point) string {
	if len(series) == 0 {
		return "Not enough data yet. Keep logging how you feel."
	}

	start := len(series) - 3
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, p := range series[start:] {
		sum += p.Score
	}
	avg := sum / float64(len(series)-start)

	switch {
	case avg > 7:
		return "Your mood has been consistently bright lately. Whatever you're doing, it's working."
	case avg > 5:
		return "Your mood has been improving. Keep up the routines that got you here."
	case avg > 3:
		return "Your mood has been steady but low-key. A small change of pace might help."
	default:
		return "The last few days look rough. Consider reaching out to someone you trust."
	}
}

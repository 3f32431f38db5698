package model

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

const DefaultEpisodeDuration = "N/A"

type Episode struct {
	ID           string `json:"id" yaml:"id"`
	Number       int    `json:"number" yaml:"number"`
	Season       int    `json:"season" yaml:"season"`
	Title        string `json:"title" yaml:"title"`
	Duration     string `json:"duration" yaml:"duration"`
	TelegramCode string `json:"telegramCode" yaml:"telegramCode"`
}

// EpisodeDraft is the "new episode" row of the series form.
type EpisodeDraft struct {
	Season       string
	Title        string
	Duration     string
	TelegramCode string
}

func (d EpisodeDraft) IsComplete() bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.TelegramCode) != ""
}

func (d EpisodeDraft) season() int {
	s, err := strconv.Atoi(strings.TrimSpace(d.Season))
	if err != nil || s <= 0 {
		return 1
	}
	return s
}

// AddEpisode appends the draft as the next episode of its season and
// returns a new list ordered by season and number. An incomplete draft
// leaves the list unchanged (the second result is false).
func AddEpisode(episodes []Episode, d EpisodeDraft, now time.Time) ([]Episode, bool) {
	if !d.IsComplete() {
		return episodes, false
	}

	season := d.season()
	number := 1
	for _, e := range episodes {
		if e.Season == season {
			number++
		}
	}

	duration := strings.TrimSpace(d.Duration)
	if duration == "" {
		duration = DefaultEpisodeDuration
	}

	ep := Episode{
		ID:           nextEpisodeID(episodes, now),
		Number:       number,
		Season:       season,
		Title:        strings.TrimSpace(d.Title),
		Duration:     duration,
		TelegramCode: strings.TrimSpace(d.TelegramCode),
	}

	out := make([]Episode, 0, len(episodes)+1)
	out = append(out, episodes...)
	out = append(out, ep)
	return SortEpisodes(out), true
}

// RemoveEpisode returns the list without the episode with the given id.
func RemoveEpisode(episodes []Episode, id string) []Episode {
	out := make([]Episode, 0, len(episodes))
	for _, e := range episodes {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func SortEpisodes(episodes []Episode) []Episode {
	out := slices.Clone(episodes)
	slices.SortStableFunc(out, func(a, b Episode) int {
		if a.Season != b.Season {
			return a.Season - b.Season
		}
		return a.Number - b.Number
	})
	return out
}

// Ids are millisecond timestamps; a clash inside the same list is bumped.
func nextEpisodeID(episodes []Episode, now time.Time) string {
	id := now.UnixMilli()
	for {
		candidate := strconv.FormatInt(id, 10)
		if !slices.ContainsFunc(episodes, func(e Episode) bool { return e.ID == candidate }) {
			return candidate
		}
		id++
	}
}

package models

import (
	"time"
)

// TrackDB represents a track row in the database
type TrackDB struct {
	ID             int64     `json:"id" db:"id"`                           // Primary key
	ReleaseID      int64     `json:"release_id" db:"release_id"`           // Parent release
	Title          string    `json:"title" db:"title"`                     // Track title
	AudioURL       *string   `json:"audio_url" db:"audio_url"`             // Audio file reference
	TiktokMoment   *string   `json:"tiktok_moment" db:"tiktok_moment"`     // Short-form video cue point
	MusicAuthor    *string   `json:"music_author" db:"music_author"`       // Music author
	LyricsAuthor   *string   `json:"lyrics_author" db:"lyrics_author"`     // Lyrics author
	HasExplicit    bool      `json:"has_explicit" db:"has_explicit"`       // Explicit content flag
	Performers     *string   `json:"performers" db:"performers"`           // Performer list
	Producers      *string   `json:"producers" db:"producers"`             // Producer list
	ISRC           *string   `json:"isrc" db:"isrc"`                       // ISRC code
	Language       *string   `json:"language" db:"language"`               // Track language
	TrackOrder     int       `json:"track_order" db:"track_order"`         // 1-based position within the release
	Lyrics         *string   `json:"lyrics" db:"lyrics"`                   // Lyrics text
	IsInstrumental bool      `json:"is_instrumental" db:"is_instrumental"` // Instrumental flag
	CreatedAt      time.Time `json:"-" db:"created_at"`                    // Timestamp when the track was created
}

// Track is the serialized track nested under a release
type Track struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	AudioURL       *string `json:"audio_url"`
	TiktokMoment   *string `json:"tiktok_moment"`
	MusicAuthor    *string `json:"music_author"`
	LyricsAuthor   *string `json:"lyrics_author"`
	HasExplicit    bool    `json:"has_explicit"`
	Performers     *string `json:"performers"`
	Producers      *string `json:"producers"`
	ISRC           *string `json:"isrc"`
	Language       *string `json:"language"`
	TrackOrder     int     `json:"track_order"`
	Lyrics         *string `json:"lyrics"`
	IsInstrumental bool    `json:"is_instrumental"`
}

// Serialized returns the nested-track view of a stored row.
func (t *TrackDB) Serialized() Track {
	return Track{
		ID:             t.ID,
		Title:          t.Title,
		AudioURL:       t.AudioURL,
		TiktokMoment:   t.TiktokMoment,
		MusicAuthor:    t.MusicAuthor,
		LyricsAuthor:   t.LyricsAuthor,
		HasExplicit:    t.HasExplicit,
		Performers:     t.Performers,
		Producers:      t.Producers,
		ISRC:           t.ISRC,
		Language:       t.Language,
		TrackOrder:     t.TrackOrder,
		Lyrics:         t.Lyrics,
		IsInstrumental: t.IsInstrumental,
	}
}

// TrackInput carries a submitted track; its position in the submitted
// list determines track_order
type TrackInput struct {
	Title          string  `json:"title"`
	AudioURL       *string `json:"audio_url"`
	TiktokMoment   *string `json:"tiktok_moment"`
	MusicAuthor    *string `json:"music_author"`
	LyricsAuthor   *string `json:"lyrics_author"`
	HasExplicit    bool    `json:"has_explicit"`
	Performers     *string `json:"performers"`
	Producers      *string `json:"producers"`
	ISRC           *string `json:"isrc"`
	Language       *string `json:"language"`
	Lyrics         *string `json:"lyrics"`
	IsInstrumental bool    `json:"is_instrumental"`
}

package models

import (
	"time"
)

// Release lifecycle statuses
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ReleaseDB represents a release row in the database
type ReleaseDB struct {
	ID              int64      `json:"id" db:"id"`                             // Primary key
	UserID          int64      `json:"user_id" db:"user_id"`                   // Owner
	Title           string     `json:"title" db:"title"`                       // Release title
	UPC             *string    `json:"upc" db:"upc"`                           // UPC code
	Genre           *string    `json:"genre" db:"genre"`                       // Genre
	CoverURL        *string    `json:"cover_url" db:"cover_url"`               // Cover artwork reference
	OldReleaseDate  *time.Time `json:"old_release_date" db:"old_release_date"` // Original release date
	NewReleaseDate  *time.Time `json:"new_release_date" db:"new_release_date"` // Scheduled release date
	Status          string     `json:"status" db:"status"`                     // Lifecycle status
	RejectionReason *string    `json:"-" db:"rejection_reason"`                // Moderator's rejection reason, null unless rejected
	TrashStatus     *time.Time `json:"trash_status" db:"trash_status"`         // Trash timestamp, null while active
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`             // Timestamp when the release was created
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`             // Timestamp of the last update
}

// Release is the serialized release with its ordered track list
type Release struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	Title           string     `json:"title"`
	UPC             *string    `json:"upc"`
	Genre           *string    `json:"genre"`
	CoverURL        *string    `json:"cover_url"`
	OldReleaseDate  *time.Time `json:"old_release_date"`
	NewReleaseDate  *time.Time `json:"new_release_date"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason"` // Empty string when the release was never rejected
	TrashStatus     *time.Time `json:"trash_status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Tracks          []Track    `json:"tracks"` // Ordered by track_order, empty slice when none
}

// WithTracks builds the serialized release from a row and its tracks.
// A null rejection reason flattens to "" and a nil track list to [].
func (r *ReleaseDB) WithTracks(tracks []Track) Release {
	reason := ""
	if r.RejectionReason != nil {
		reason = *r.RejectionReason
	}
	if tracks == nil {
		tracks = []Track{}
	}
	return Release{
		ID:              r.ID,
		UserID:          r.UserID,
		Title:           r.Title,
		UPC:             r.UPC,
		Genre:           r.Genre,
		CoverURL:        r.CoverURL,
		OldReleaseDate:  r.OldReleaseDate,
		NewReleaseDate:  r.NewReleaseDate,
		Status:          r.Status,
		RejectionReason: reason,
		TrashStatus:     r.TrashStatus,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Tracks:          tracks,
	}
}

// ReleaseInput carries the mutable release fields submitted by the owner
type ReleaseInput struct {
	Title           string       `json:"title"`
	UPC             *string      `json:"upc"`
	Genre           *string      `json:"genre"`
	CoverURL        *string      `json:"cover_url"`
	OldReleaseDate  *string      `json:"old_release_date"` // ISO date string, e.g. 2024-06-01
	NewReleaseDate  *string      `json:"new_release_date"`
	Status          string       `json:"status"`
	RejectionReason *string      `json:"rejection_reason"` // Carried through on owner updates
	Tracks          []TrackInput `json:"tracks"`
}

package model

import "time"

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// MediaItem is one gallery entry on a candidate microsite.
type MediaItem struct {
	ID          int64     `json:"id" db:"id"`
	CandidateID int64     `json:"candidate_id" db:"candidate_id"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	FileType    string    `json:"fileType" db:"file_type"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

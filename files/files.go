package files

import (
	"context"
	"time"
)

// Category determines which entity screen displays an uploaded file.
type Category string

const (
	CategoryAgency    Category = "agency"
	CategoryCar       Category = "car"
	CategoryPromotion Category = "promotion"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
)

// MediaFile is an uploaded image or document associated with an agency, a
// car or a promotion.
type MediaFile struct {
	ID         string    `json:"id"`
	AgencyID   string    `json:"agency_id"`
	Filename   string    `json:"filename"`
	FileURL    string    `json:"file_url"`
	FileType   FileType  `json:"file_type"`
	FileSize   int64     `json:"file_size,omitempty"`
	Category   Category  `json:"category"`
	RelatedID  string    `json:"related_id,omitempty"`
	UploadedAt time.Time `json:"uploaded_at,omitzero"`
}

type API interface {
	ListFiles(ctx context.Context, agencyID string) ([]MediaFile, error)
	DeleteFile(ctx context.Context, id string) error
}

package entity

import (
	"time"

	"github.com/posterscan/posterscan/constants"
)

// Extraction is one processed poster: the recognized text, the extracted
// record, and bookkeeping for storage and the API.
type Extraction struct {
	ID         string
	SourcePath string
	Text       string
	Record     PosterRecord
	Confidence float32
	Status     constants.ExtractionStatus
	// ErrorMessage is set only when Status is FAILED.
	ErrorMessage string
	CreatedAt    time.Time
}

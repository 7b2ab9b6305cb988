package constants

// ExtractionStatus is the canonical status for stored extraction rows.
type ExtractionStatus string

// Stable values (store these exact strings in the DB).
const (
	StatusOK     ExtractionStatus = "OK"     // OCR + extraction completed
	StatusFailed ExtractionStatus = "FAILED" // input acquisition or OCR failure
)

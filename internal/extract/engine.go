package extract

import (
	"log/slog"

	"github.com/posterscan/posterscan/internal/entity"
)

// Engine runs every field extractor over one piece of recognized text and
// assembles the poster record. Extractors are pure functions over the
// normalized text, so one Engine is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Extract normalizes the text and runs all extractors independently. Fields
// that cannot be recovered render as their absence sentinels rather than
// erroring; absence is data here.
func (e *Engine) Extract(text string) entity.PosterRecord {
	normalized := NormalizeText(text)

	rec := entity.PosterRecord{
		EventName: ExtractTitle(normalized).Display(),
		Date:      ExtractDate(normalized).Display(),
		Time:      ExtractTime(normalized).Display(),
		Venue:     ExtractVenue(normalized).Display(),
		Audience:  ExtractAudience(normalized).Display(),
		EventType: ExtractEventType(normalized).Display(),
		Phone:     ExtractPhones(normalized).Display(),
		Email:     ExtractEmails(normalized).Display(),
		Social:    ExtractSocial(normalized).Display(),
		Price:     ExtractPrice(normalized).Display(),
	}

	e.logger.Debug("extraction complete",
		"event_name", rec.EventName,
		"date", rec.Date,
		"event_type", rec.EventType)
	return rec
}

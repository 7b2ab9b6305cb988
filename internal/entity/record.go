// Package entity defines the domain types shared across the extraction
// pipeline, storage, and transport layers.
package entity

import "github.com/posterscan/posterscan/constants"

// PosterRecord is the assembled extraction output: one display string per
// poster field, already rendered with the "Not found" / "Not specified"
// sentinels. Immutable once built.
type PosterRecord struct {
	EventName string `json:"Event Name"`
	Date      string `json:"Date"`
	Time      string `json:"Time"`
	Venue     string `json:"Venue"`
	Audience  string `json:"Profession/Target Audience"`
	EventType string `json:"Event Type"`
	Phone     string `json:"Contact Number"`
	Email     string `json:"Email"`
	Social    string `json:"Social Media"`
	Price     string `json:"Price"`
}

// EmptyRecord returns the record used when no text could be obtained:
// every field holds its absence sentinel.
func EmptyRecord() PosterRecord {
	return PosterRecord{
		EventName: constants.NotFound,
		Date:      constants.NotFound,
		Time:      constants.NotFound,
		Venue:     constants.NotFound,
		Audience:  constants.NotSpecified,
		EventType: constants.NotSpecified,
		Phone:     constants.NotFound,
		Email:     constants.NotFound,
		Social:    constants.NotFound,
		Price:     constants.NotFound,
	}
}

// Fields returns the record as ordered (name, value) pairs matching
// constants.FieldOrder. Tabular writers depend on this ordering.
func (r PosterRecord) Fields() []Field {
	return []Field{
		{constants.FieldEventName, r.EventName},
		{constants.FieldDate, r.Date},
		{constants.FieldTime, r.Time},
		{constants.FieldVenue, r.Venue},
		{constants.FieldAudience, r.Audience},
		{constants.FieldEventType, r.EventType},
		{constants.FieldPhone, r.Phone},
		{constants.FieldEmail, r.Email},
		{constants.FieldSocial, r.Social},
		{constants.FieldPrice, r.Price},
	}
}

// Field is one (name, value) pair of a PosterRecord.
type Field struct {
	Name  constants.FieldName
	Value string
}

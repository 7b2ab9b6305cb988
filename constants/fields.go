package constants

// FieldName is the canonical key for one extracted poster field.
// These exact strings appear as JSON keys and CSV headers.
type FieldName string

const (
	FieldEventName FieldName = "Event Name"
	FieldDate      FieldName = "Date"
	FieldTime      FieldName = "Time"
	FieldVenue     FieldName = "Venue"
	FieldAudience  FieldName = "Profession/Target Audience"
	FieldEventType FieldName = "Event Type"
	FieldPhone     FieldName = "Contact Number"
	FieldEmail     FieldName = "Email"
	FieldSocial    FieldName = "Social Media"
	FieldPrice     FieldName = "Price"
)

// FieldOrder is the fixed rendering order for records. JSON objects, CSV
// columns and XLSX columns all follow it.
var FieldOrder = []FieldName{
	FieldEventName,
	FieldDate,
	FieldTime,
	FieldVenue,
	FieldAudience,
	FieldEventType,
	FieldPhone,
	FieldEmail,
	FieldSocial,
	FieldPrice,
}

// Display sentinels for absent fields (stored and rendered verbatim).
const (
	NotFound     = "Not found"
	NotSpecified = "Not specified"
)

package extract

import "regexp"

const (
	EventTypeOnline  = "Online"
	EventTypeOffline = "Offline"
)

// reOnline matches any online-modality keyword or product name.
var reOnline = regexp.MustCompile(`(?i)\b(?:online|virtual|zoom|webinar|web\s+conference|livestream|live\s+stream|google\s+meet|microsoft\s+teams|webex)\b`)

// ExtractEventType classifies the event modality. Online keywords win
// outright; otherwise any recovered venue is taken as evidence of an
// in-person event, even though a venue can legitimately accompany a hybrid
// one.
func ExtractEventType(text string) FieldValue {
	if reOnline.MatchString(text) {
		return Found(EventTypeOnline)
	}
	if ExtractVenue(text).IsFound() {
		return Found(EventTypeOffline)
	}
	return NotSpecified()
}

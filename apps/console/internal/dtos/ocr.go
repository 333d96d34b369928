package dtos

type OcrParseDto struct {
	Text string `json:"text"`
}

func (dto *OcrParseDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Text == "" {
		errs["text"] = "text is required"
	}

	return len(errs) == 0, errs
}

// DraftEditDto is a single field edit from one of the editing surfaces. The
// reconciliation rules run on every edit, so edits arrive one field at a
// time.
type DraftEditDto struct {
	Field       string `json:"field"`
	Value       string `json:"value"`
	SlugTouched bool   `json:"slugTouched"`
}

//nolint:gochecknoglobals //lookup table
var editableDraftFields = map[string]bool{
	"name":       true,
	"slug":       true,
	"startDate":  true,
	"endDate":    true,
	"startTime":  true,
	"endTime":    true,
	"allDay":     true,
	"location":   true,
	"websiteUrl": true,
	"recurrence": true,
	"status":     true,
	"sortOrder":  true,
}

func (dto *DraftEditDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if !editableDraftFields[dto.Field] {
		errs["field"] = "unknown draft field"
	}

	return len(errs) == 0, errs
}

type DraftNavigateDto struct {
	Direction string `json:"direction"`
}

func (dto *DraftNavigateDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Direction != "next" && dto.Direction != "previous" {
		errs["direction"] = "direction must be next or previous"
	}

	return len(errs) == 0, errs
}

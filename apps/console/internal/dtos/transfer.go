package dtos

// ImportDto carries a pasted or uploaded CSV table.
type ImportDto struct {
	Text string `json:"text"`
}

func (dto *ImportDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Text == "" {
		errs["text"] = "text is required"
	}

	return len(errs) == 0, errs
}

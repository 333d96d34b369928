package dtos

type RouteDto struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	SortOrder   int     `json:"sortOrder"`
}

func (dto *RouteDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Name == "" {
		errs["name"] = "name is required"
	}

	if dto.Slug == "" {
		errs["slug"] = "slug is required"
	}

	if dto.Duration < 0 {
		errs["duration"] = "duration must not be negative"
	}

	return len(errs) == 0, errs
}

package dtos

type LocationDto struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Address     string `json:"address"`
	WebsiteURL  string `json:"websiteUrl"`
	SortOrder   int    `json:"sortOrder"`
}

func (dto *LocationDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Name == "" {
		errs["name"] = "name is required"
	}

	if dto.Slug == "" {
		errs["slug"] = "slug is required"
	}

	return len(errs) == 0, errs
}

type LocationPrefillDto struct {
	WebsiteURL string `json:"websiteUrl"`
}

func (dto *LocationPrefillDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.WebsiteURL == "" {
		errs["websiteUrl"] = "websiteUrl is required"
	}

	return len(errs) == 0, errs
}

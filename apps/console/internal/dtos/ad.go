package dtos

type AdDto struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Vendor     string `json:"vendor"`
	WebsiteURL string `json:"websiteUrl"`
	ImageURL   string `json:"imageUrl"`
	Active     bool   `json:"active"`
	SortOrder  int    `json:"sortOrder"`
}

func (dto *AdDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Name == "" {
		errs["name"] = "name is required"
	}

	if dto.Slug == "" {
		errs["slug"] = "slug is required"
	}

	return len(errs) == 0, errs
}

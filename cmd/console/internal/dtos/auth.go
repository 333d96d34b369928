package dtos

type MagicLinkDto struct {
	Email string `schema:"email"`
}

func (dto *MagicLinkDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Email == "" {
		errs["email"] = "email is required"
	}

	return len(errs) == 0, errs
}

package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"admin.townguide.app/apps/console/internal/models"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "harbor-market", models.Slugify("Harbor Market"))
	assert.Equal(t, "oreillys-pub", models.Slugify("O'Reilly's Pub"))
	assert.Equal(t, "fish-chips", models.Slugify("Fish & Chips!"))
	assert.Equal(t, "caf-42", models.Slugify("  Café?? 42  "))
	assert.Equal(t, "backtick", models.Slugify("back`tick"))
	assert.Equal(t, "", models.Slugify("!!!"))
}

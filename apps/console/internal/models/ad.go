package models

import "time"

// Ad is a vendor placement. Ads are plain CRUD; they have no CSV surface.
type Ad struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Vendor     string    `json:"vendor"`
	WebsiteURL string    `json:"websiteUrl"`
	ImageURL   string    `json:"imageUrl"`
	Active     bool      `json:"active"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

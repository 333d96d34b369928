package webmeta

import (
	"log/slog"
	"strings"

	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"
)

type client struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) Client {
	return client{
		logger: logger,
	}
}

// GetPageMeta fetches a page once and pulls its title and description, used
// to prefill a record from a vendor or venue website.
func (client client) GetPageMeta(pageURL string) (*PageMeta, error) {
	c := colly.NewCollector()

	//nolint:exhaustruct //fields are filled from the page
	meta := PageMeta{}

	c.OnHTML("title", func(h *colly.HTMLElement) {
		if meta.Title == "" {
			meta.Title = strings.TrimSpace(h.Text)
		}
	})

	c.OnHTML("head", func(h *colly.HTMLElement) {
		for _, node := range h.DOM.Children().Nodes {
			if description := descriptionFromMeta(node); description != "" {
				meta.Description = description
			}
		}
	})

	err := c.Visit(pageURL)
	if err != nil {
		return nil, err
	}

	return &meta, nil
}

// descriptionFromMeta reads <meta name="description"> and
// <meta property="og:description"> tags; the og variant wins when both are
// present because it appears later in most heads.
func descriptionFromMeta(node *html.Node) string {
	if node.Type != html.ElementNode || node.Data != "meta" {
		return ""
	}

	var name, content string
	for _, attr := range node.Attr {
		switch attr.Key {
		case "name", "property":
			name = attr.Val
		case "content":
			content = attr.Val
		}
	}

	if name == "description" || name == "og:description" {
		return strings.TrimSpace(content)
	}

	return ""
}

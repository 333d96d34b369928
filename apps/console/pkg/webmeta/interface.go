package webmeta

type Client interface {
	GetPageMeta(pageURL string) (*PageMeta, error)
}

type PageMeta struct {
	Title       string
	Description string
}

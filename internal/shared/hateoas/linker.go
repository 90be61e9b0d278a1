package hateoas

import (
	"fmt"
	"strings"
)

// Linker produces links for one resource collection, e.g. /api/book/v1.
// It is a pure value: identical inputs always yield identical hrefs.
type Linker struct {
	base string
}

// NewLinker joins an optional absolute base URL with the collection path.
func NewLinker(baseURL, basePath string) Linker {
	return Linker{base: strings.TrimRight(baseURL, "/") + "/" + strings.Trim(basePath, "/")}
}

// Base returns the collection URL.
func (l Linker) Base() string {
	return l.base
}

// Self returns the self link of a single resource.
func (l Linker) Self(id int64) Link {
	return Link{Rel: RelSelf, Href: fmt.Sprintf("%s/%d", l.base, id)}
}

// SelfLinks returns a freshly allocated link set holding only the self link.
func (l Linker) SelfLinks(id int64) Links {
	return Links{l.Self(id)}
}

// PageHref renders the collection URL for page number of req.
func (l Linker) PageHref(req PageRequest, page int) string {
	return fmt.Sprintf("%s?page=%d&size=%d&sort=%s,%s", l.base, page, req.Size, req.Sort, req.Direction)
}

// Collection returns first, self, next and last links for a page.
// next is omitted on or past the last page and last is omitted when there is at most one page.
func (l Linker) Collection(req PageRequest, page PageMetadata) Links {
	links := Links{
		{Rel: RelFirst, Href: l.PageHref(req, 0)},
		{Rel: RelSelf, Href: l.PageHref(req, req.Page)},
	}
	if req.Page < page.TotalPages-1 {
		links = append(links, Link{Rel: RelNext, Href: l.PageHref(req, req.Page+1)})
	}
	if page.TotalPages > 1 {
		links = append(links, Link{Rel: RelLast, Href: l.PageHref(req, page.TotalPages-1)})
	}
	return links
}

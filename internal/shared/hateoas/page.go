package hateoas

import (
	"encoding/xml"
	"math"
	"strings"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// Direction is a sort direction as it appears in query strings.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" in any case; anything else is Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// PageRequest is the caller-supplied slice of a collection.
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction Direction
}

// Normalize clamps the request into a valid range and fills defaults.
func (p PageRequest) Normalize(defaultSort string) PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	// Page*Size must not overflow Offset.
	if maxPage := math.MaxInt / p.Size; p.Page > maxPage {
		p.Page = maxPage
	}
	if p.Sort == "" {
		p.Sort = defaultSort
	}
	if p.Direction != Desc {
		p.Direction = Asc
	}
	return p
}

// Offset is the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PageMetadata describes where a page sits inside the full collection.
type PageMetadata struct {
	Size          int   `json:"size" xml:"size" yaml:"size"`
	TotalElements int64 `json:"totalElements" xml:"totalElements" yaml:"totalElements"`
	TotalPages    int   `json:"totalPages" xml:"totalPages" yaml:"totalPages"`
	Number        int   `json:"number" xml:"number" yaml:"number"`
}

// NewPageMetadata computes the total page count for a page of the given size.
func NewPageMetadata(size int, totalElements int64, number int) PageMetadata {
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	return PageMetadata{
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Number:        number,
	}
}

// PagedModel is the collection envelope: items, navigation links and page metadata.
type PagedModel[T any] struct {
	XMLName xml.Name     `json:"-" xml:"pagedModel" yaml:"-"`
	Content []T          `json:"content" xml:",any" yaml:"content"`
	Links   Links        `json:"links" xml:"links>link" yaml:"links"`
	Page    PageMetadata `json:"page" xml:"page" yaml:"page"`
}

// NewPagedModel wraps content; a nil slice is rendered as an empty list.
func NewPagedModel[T any](content []T, links Links, page PageMetadata) *PagedModel[T] {
	if content == nil {
		content = make([]T, 0)
	}
	return &PagedModel[T]{
		Content: content,
		Links:   links,
		Page:    page,
	}
}

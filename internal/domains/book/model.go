package book

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is the stored record behind /api/book/v1.
type Book struct {
	ID         int64
	Title      string
	Author     string
	Price      decimal.Decimal
	LaunchDate time.Time
}

const (
	BasePath    = "/api/book/v1"
	DefaultSort = "title"
)

var sortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"author":     "author",
	"price":      "price",
	"launchDate": "launch_date",
}

// SortColumn resolves a query-string sort field to its column.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

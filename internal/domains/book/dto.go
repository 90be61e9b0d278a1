package book

import (
	"encoding/xml"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"library-backend/internal/shared/hateoas"
)

func init() {
	// prices are rendered as numbers, e.g. 199.9, in JSON and YAML alike
	decimal.MarshalJSONWithoutQuotes = true
	yaml.RegisterCustomMarshaler(func(d decimal.Decimal) ([]byte, error) {
		return []byte(d.String()), nil
	})
}

// BookDTO is the wire representation of a Book in JSON, XML and YAML.
type BookDTO struct {
	XMLName    xml.Name        `json:"-" xml:"book" yaml:"-"`
	ID         int64           `json:"id" xml:"id" yaml:"id"`
	Author     string          `json:"author" xml:"author" yaml:"author"`
	LaunchDate time.Time       `json:"launchDate" xml:"launchDate" yaml:"launchDate"`
	Price      decimal.Decimal `json:"price" xml:"price" yaml:"price"`
	Title      string          `json:"title" xml:"title" yaml:"title"`
	Links      hateoas.Links   `json:"links,omitempty" xml:"links>link,omitempty" yaml:"links,omitempty"`
}

func (d BookDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Author, validation.Required),
		validation.Field(&d.Price, validation.By(nonNegative)),
	)
}

func nonNegative(value interface{}) error {
	price, _ := value.(decimal.Decimal)
	if price.IsNegative() {
		return validation.NewError("validation_price_negative", "must not be negative")
	}
	return nil
}

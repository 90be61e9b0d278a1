package person

import (
	"encoding/xml"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/hateoas"
)

// PersonDTO is the wire representation of a Person in JSON, XML and YAML.
type PersonDTO struct {
	XMLName   xml.Name      `json:"-" xml:"person" yaml:"-"`
	ID        int64         `json:"id" xml:"id" yaml:"id"`
	FirstName string        `json:"firstName" xml:"firstName" yaml:"firstName"`
	LastName  string        `json:"lastName" xml:"lastName" yaml:"lastName"`
	Address   string        `json:"address" xml:"address" yaml:"address"`
	Gender    string        `json:"gender" xml:"gender" yaml:"gender"`
	Enabled   bool          `json:"enabled" xml:"enabled" yaml:"enabled"`
	Links     hateoas.Links `json:"links,omitempty" xml:"links>link,omitempty" yaml:"links,omitempty"`
}

// Validate checks the fields a client must send on create and update.
func (d PersonDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FirstName, validation.Required, validation.Length(1, 80)),
		validation.Field(&d.LastName, validation.Required, validation.Length(1, 80)),
		validation.Field(&d.Address, validation.Length(0, 100)),
		validation.Field(&d.Gender, validation.Length(0, 6)),
	)
}

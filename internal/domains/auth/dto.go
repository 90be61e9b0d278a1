package auth

import (
	"encoding/xml"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AccountCredentialsDTO is the sign-in payload.
type AccountCredentialsDTO struct {
	XMLName  xml.Name `json:"-" xml:"accountCredentials" yaml:"-"`
	Username string   `json:"username" xml:"username" yaml:"username"`
	Password string   `json:"password" xml:"password" yaml:"password"`
}

func (d AccountCredentialsDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.Password, validation.Required),
	)
}

// TokenDTO is returned by sign-in and refresh.
type TokenDTO struct {
	XMLName       xml.Name  `json:"-" xml:"token" yaml:"-"`
	Username      string    `json:"username" xml:"username" yaml:"username"`
	Authenticated bool      `json:"authenticated" xml:"authenticated" yaml:"authenticated"`
	Created       time.Time `json:"created" xml:"created" yaml:"created"`
	Expiration    time.Time `json:"expiration" xml:"expiration" yaml:"expiration"`
	AccessToken   string    `json:"accessToken" xml:"accessToken" yaml:"accessToken"`
	RefreshToken  string    `json:"refreshToken" xml:"refreshToken" yaml:"refreshToken"`
}

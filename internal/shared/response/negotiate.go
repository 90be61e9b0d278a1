package response

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"library-backend/internal/shared/apperror"
)

// YAML media types. application/x-yaml is what existing clients send.
const (
	MIMEYAML    = "application/x-yaml"
	MIMEYAMLStd = "application/yaml"
)

var offered = []string{
	binding.MIMEJSON,
	binding.MIMEXML,
	binding.MIMEXML2,
	MIMEYAML,
	MIMEYAMLStd,
}

// Render writes data as JSON, XML or YAML according to the Accept header.
// JSON is used when the header is absent or names nothing we offer.
func Render(c *gin.Context, status int, data any) {
	switch c.NegotiateFormat(offered...) {
	case binding.MIMEXML, binding.MIMEXML2:
		c.XML(status, data)
	case MIMEYAML, MIMEYAMLStd:
		c.YAML(status, data)
	default:
		c.JSON(status, data)
	}
}

// Bind decodes the request body using the codec named by Content-Type.
// An empty body or a literal null decodes to (nil, nil) so services can
// reject the missing payload themselves.
func Bind[T any](c *gin.Context) (*T, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, apperror.InvalidInput("Unable to read request body")
	}

	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) || bytes.Equal(body, []byte("~")) {
		return nil, nil
	}

	var b binding.BindingBody
	switch c.ContentType() {
	case binding.MIMEXML, binding.MIMEXML2:
		b = binding.XML
	case MIMEYAML, MIMEYAMLStd:
		b = binding.YAML
	default:
		b = binding.JSON
	}

	var dst T
	if err := b.BindBody(body, &dst); err != nil {
		return nil, apperror.InvalidInput("Malformed request body")
	}
	return &dst, nil
}

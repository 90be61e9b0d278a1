// Package hateoas builds the hypermedia links and page envelopes attached to
// every resource response.
package hateoas

// Link relation names.
const (
	RelSelf  = "self"
	RelFirst = "first"
	RelNext  = "next"
	RelLast  = "last"
)

// Link is a single hypermedia reference.
type Link struct {
	Rel  string `json:"rel" xml:"rel" yaml:"rel"`
	Href string `json:"href" xml:"href" yaml:"href"`
}

// Links is an ordered link set.
type Links []Link

// Find returns the first link with the given relation.
func (l Links) Find(rel string) (Link, bool) {
	for _, link := range l {
		if link.Rel == rel {
			return link, true
		}
	}
	return Link{}, false
}

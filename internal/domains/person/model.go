package person

// Person is the stored record behind /api/person/v1.
type Person struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	Gender    string
	Enabled   bool
}

const (
	BasePath    = "/api/person/v1"
	DefaultSort = "firstName"
)

// sortColumns maps the sort names accepted in query strings to table columns.
var sortColumns = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"address":   "address",
	"gender":    "gender",
	"enabled":   "enabled",
}

// SortColumn resolves a query-string sort field to its column.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

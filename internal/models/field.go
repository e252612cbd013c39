package models

import (
	"strings"

	"fjacquet/proposal-search/internal/searcherror"
)

// Field names a column of the proposal table.
type Field string

const (
	FieldCategory  Field = "category"
	FieldWho       Field = "who"
	FieldResult    Field = "result"
	FieldFullName  Field = "full_name"
	FieldTimePlace Field = "time_place"
	FieldCost      Field = "cost"
	FieldContent   Field = "content"
)

// SchemaFields lists every column in table order.
var SchemaFields = []Field{
	FieldCategory,
	FieldWho,
	FieldResult,
	FieldFullName,
	FieldTimePlace,
	FieldCost,
	FieldContent,
}

// ParseField resolves a column name. Names are matched after trimming and
// lower-casing; unknown names yield a *searcherror.MissingFieldError.
func ParseField(name string) (Field, error) {
	normalized := Field(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range SchemaFields {
		if f == normalized {
			return f, nil
		}
	}
	return "", &searcherror.MissingFieldError{Field: name}
}

// IsText reports whether the column holds free text. Cost is numeric.
func (f Field) IsText() bool {
	switch f {
	case FieldCategory, FieldWho, FieldResult, FieldFullName, FieldTimePlace, FieldContent:
		return true
	default:
		return false
	}
}

func (f Field) String() string {
	return string(f)
}

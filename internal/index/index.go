// Package index provides filtering and keyword search over an immutable
// proposal table.
package index

import (
	"sort"
	"strings"

	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/searcherror"

	"golang.org/x/text/cases"
)

// Index holds a read-only copy of the proposal table. All methods are safe
// for concurrent use.
type Index struct {
	records []models.Proposal
	logger  logging.Logger
}

// UniqueValues holds the distinct values of each filterable column.
type UniqueValues struct {
	Categories []string `json:"categories"`
	Proposers  []string `json:"proposers"`
	Results    []string `json:"results"`
	FullNames  []string `json:"full_names"`
}

// Filters constrains SearchProposals. Empty fields are not constraints.
type Filters struct {
	Category string `json:"category,omitempty"`
	Proposer string `json:"proposer,omitempty"`
	Result   string `json:"result,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Filter keys accepted by ParseFilters.
const (
	FilterCategory = "category"
	FilterProposer = "proposer"
	FilterResult   = "result"
	FilterFullName = "full_name"
)

// FilterKeys lists the recognized structured filter keys.
var FilterKeys = []string{FilterCategory, FilterProposer, FilterResult, FilterFullName}

// ParseFilters builds Filters from key/value pairs. Unknown keys are rejected
// with a *searcherror.UnknownFilterError.
func ParseFilters(pairs map[string]string) (Filters, error) {
	var f Filters
	for key, value := range pairs {
		switch key {
		case FilterCategory:
			f.Category = value
		case FilterProposer:
			f.Proposer = value
		case FilterResult:
			f.Result = value
		case FilterFullName:
			f.FullName = value
		default:
			return Filters{}, &searcherror.UnknownFilterError{Key: key, Allowed: FilterKeys}
		}
	}
	return f, nil
}

// IsEmpty reports whether no constraint is set.
func (f Filters) IsEmpty() bool {
	return f == Filters{}
}

// DefaultKeywordFields is searched when no fields are given.
var DefaultKeywordFields = []models.Field{models.FieldContent}

// AllTextFields returns the field set used for an "all fields" keyword search.
func AllTextFields() []models.Field {
	return []models.Field{
		models.FieldContent,
		models.FieldWho,
		models.FieldFullName,
		models.FieldCategory,
		models.FieldResult,
	}
}

// New builds an Index over a copy of records.
func New(records []models.Proposal, logger logging.Logger) *Index {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	copied := make([]models.Proposal, len(records))
	copy(copied, records)
	return &Index{records: copied, logger: logger}
}

// Len returns the number of records in the table.
func (idx *Index) Len() int {
	return len(idx.records)
}

// All returns a copy of the full table in order.
func (idx *Index) All() []models.Proposal {
	out := make([]models.Proposal, len(idx.records))
	copy(out, idx.records)
	return out
}

// UniqueValues returns the sorted distinct present values of category,
// proposer, result and department.
func (idx *Index) UniqueValues() UniqueValues {
	return UniqueValues{
		Categories: idx.distinct(models.FieldCategory),
		Proposers:  idx.distinct(models.FieldWho),
		Results:    idx.distinct(models.FieldResult),
		FullNames:  idx.distinct(models.FieldFullName),
	}
}

func (idx *Index) distinct(field models.Field) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, rec := range idx.records {
		text, _ := rec.TextField(field)
		value, ok := text.Get()
		if !ok || value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

// SearchProposals returns the records matching every set filter, in table
// order. Category, result and department match exactly; proposer matches as a
// case-sensitive substring. With no filters the whole table is returned.
func (idx *Index) SearchProposals(f Filters) []models.Proposal {
	out := make([]models.Proposal, 0, len(idx.records))
	for _, rec := range idx.records {
		if f.Category != "" && !rec.Category.Equals(f.Category) {
			continue
		}
		if f.Proposer != "" && !rec.Who.Contains(f.Proposer) {
			continue
		}
		if f.Result != "" && !rec.Result.Equals(f.Result) {
			continue
		}
		if f.FullName != "" && !rec.FullName.Equals(f.FullName) {
			continue
		}
		out = append(out, rec)
	}

	idx.logger.Debug("Structured search completed",
		logging.F(logging.FieldFilters, f),
		logging.F(logging.FieldMatches, len(out)))
	return out
}

// SearchByKeyword returns the records where any of fields contains keyword,
// ignoring case. Fields default to content. Unknown or non-text fields are
// skipped. An empty keyword matches nothing.
func (idx *Index) SearchByKeyword(keyword string, fields ...models.Field) []models.Proposal {
	out := []models.Proposal{}
	if keyword == "" {
		return out
	}
	if len(fields) == 0 {
		fields = DefaultKeywordFields
	}

	searchable := make([]models.Field, 0, len(fields))
	for _, f := range fields {
		if !f.IsText() {
			idx.logger.Debug("Skipping field not searchable by keyword",
				logging.F(logging.FieldField, string(f)))
			continue
		}
		searchable = append(searchable, f)
	}
	if len(searchable) == 0 {
		return out
	}

	// Casers carry state, so each call gets its own.
	folder := cases.Fold()
	needle := folder.String(keyword)

	for _, rec := range idx.records {
		for _, f := range searchable {
			text, _ := rec.TextField(f)
			value, ok := text.Get()
			if ok && strings.Contains(folder.String(value), needle) {
				out = append(out, rec)
				break
			}
		}
	}

	idx.logger.Debug("Keyword search completed",
		logging.F(logging.FieldKeyword, keyword),
		logging.F(logging.FieldMatches, len(out)))
	return out
}

// SearchByKeywordNames is SearchByKeyword with field names as strings, as
// received from a command line or menu. Unknown names are skipped.
func (idx *Index) SearchByKeywordNames(keyword string, names []string) []models.Proposal {
	if len(names) == 0 {
		return idx.SearchByKeyword(keyword)
	}
	fields := make([]models.Field, 0, len(names))
	for _, name := range names {
		f, err := models.ParseField(name)
		if err != nil {
			idx.logger.WithError(err).Debug("Ignoring unknown keyword field")
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return []models.Proposal{}
	}
	return idx.SearchByKeyword(keyword, fields...)
}

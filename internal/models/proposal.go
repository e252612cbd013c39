package models

// Proposal is one row of the budget proposal table.
type Proposal struct {
	// Row is the 1-based position of the record in the source table.
	Row       int  `csv:"-" json:"row"`
	Category  Text `csv:"category" json:"category"`
	Who       Text `csv:"who" json:"who"`
	Result    Text `csv:"result" json:"result"`
	FullName  Text `csv:"full_name" json:"full_name"`
	TimePlace Text `csv:"time_place" json:"time_place"`
	Cost      Cost `csv:"cost" json:"cost"`
	Content   Text `csv:"content" json:"content"`
}

// TextField returns the text cell for f. It reports false for fields that
// are not text columns.
func (p Proposal) TextField(f Field) (Text, bool) {
	switch f {
	case FieldCategory:
		return p.Category, true
	case FieldWho:
		return p.Who, true
	case FieldResult:
		return p.Result, true
	case FieldFullName:
		return p.FullName, true
	case FieldTimePlace:
		return p.TimePlace, true
	case FieldContent:
		return p.Content, true
	default:
		return Text{}, false
	}
}

// Package render writes proposals, unique values and the category mapping
// to the console as styled text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/taxonomy"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NoResultsMessage is printed when a query matches nothing.
const NoResultsMessage = "No matching proposals found"

// Renderer writes query results in one output format.
type Renderer struct {
	w      io.Writer
	format string
}

// New returns a renderer writing to w. Unknown formats fall back to text.
func New(w io.Writer, format string) *Renderer {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != FormatJSON {
		format = FormatText
	}
	return &Renderer{w: w, format: format}
}

// Format returns the effective output format.
func (r *Renderer) Format() string {
	return r.format
}

// Proposals writes every proposal in full.
func (r *Renderer) Proposals(proposals []models.Proposal) error {
	if r.format == FormatJSON {
		if proposals == nil {
			proposals = []models.Proposal{}
		}
		return r.writeJSON(proposals)
	}

	if len(proposals) == 0 {
		_, err := fmt.Fprintf(r.w, "\n%s\n", styleWarn.Render(NoResultsMessage))
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nFound %d proposal(s):\n", len(proposals))
	for _, p := range proposals {
		b.WriteString("\n")
		b.WriteString(ProposalBlock(p))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// ProposalBlock renders a single proposal as a text block. Cost is only
// shown when the cell was present.
func ProposalBlock(p models.Proposal) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Proposal %d", p.Row)))
	b.WriteString("\n")
	b.WriteString(labeled("Category", p.Category.String()) + "\n")
	b.WriteString(labeled("Department", p.FullName.String()) + "\n")
	b.WriteString(labeled("Proposer", p.Who.String()) + "\n")
	b.WriteString(labeled("Result", p.Result.String()) + "\n")
	b.WriteString(labeled("Time/Place", p.TimePlace.String()) + "\n")
	if p.Cost.Present() {
		b.WriteString(labeled("Cost", p.Cost.String()) + "\n")
	}
	b.WriteString("\n" + styleLabel.Render("Full content:") + "\n")
	b.WriteString(p.Content.String() + "\n")
	return b.String()
}

// UniqueValues writes the selectable values of every filterable column.
func (r *Renderer) UniqueValues(values index.UniqueValues) error {
	if r.format == FormatJSON {
		return r.writeJSON(values)
	}

	var b strings.Builder
	writeList(&b, "Categories", values.Categories)
	writeList(&b, "Proposers", values.Proposers)
	writeList(&b, "Results", values.Results)
	writeList(&b, "Departments", values.FullNames)
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Taxonomy writes the category keys with their member values.
func (r *Renderer) Taxonomy(mapping taxonomy.Mapping) error {
	keys := mapping.Keys()
	if r.format == FormatJSON {
		grouped := make(map[string][]string, len(keys))
		for _, key := range keys {
			grouped[key] = mapping.Members(key)
		}
		return r.writeJSON(grouped)
	}

	var b strings.Builder
	for _, key := range keys {
		writeList(&b, key, mapping.Members(key))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Lookup writes the category key a single member value maps to.
func (r *Renderer) Lookup(value, key string, found bool) error {
	if r.format == FormatJSON {
		out := struct {
			Value    string  `json:"value"`
			Category *string `json:"category"`
		}{Value: value}
		if found {
			out.Category = &key
		}
		return r.writeJSON(out)
	}

	if !found {
		_, err := fmt.Fprintf(r.w, "%s\n", styleWarn.Render(fmt.Sprintf("%q is not in any category", value)))
		return err
	}
	_, err := fmt.Fprintf(r.w, "%s\n", labeled(value, key))
	return err
}

func writeList(b *strings.Builder, title string, items []string) {
	b.WriteString("\n" + Header(title) + "\n")
	if len(items) == 0 {
		b.WriteString(styleDim.Render("(none)") + "\n")
		return
	}
	for i, item := range items {
		fmt.Fprintf(b, "%s %s\n", styleDim.Render(fmt.Sprintf("%d.", i+1)), item)
	}
}

func (r *Renderer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON output: %w", err)
	}
	return nil
}

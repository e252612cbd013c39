package menu

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter replays answers in order and records the prompts seen.
type scriptedPrompter struct {
	answers []string
	titles  []string
	options map[string][]Option
}

func (p *scriptedPrompter) next(title string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.answers) == 0 {
		return "", ErrAborted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Choose(_ context.Context, title string, options []Option) (string, error) {
	if p.options == nil {
		p.options = make(map[string][]Option)
	}
	p.options[title] = options
	return p.next(title)
}

func (p *scriptedPrompter) Ask(_ context.Context, title string) (string, error) {
	return p.next(title)
}

func newTestMenu(t *testing.T, answers ...string) (*Menu, *scriptedPrompter, *bytes.Buffer) {
	t.Helper()
	records := []models.Proposal{
		{Row: 1, Category: models.NewText("Roads"), Who: models.NewText("Alice Smith"), Result: models.NewText("Approved"), FullName: models.NewText("Works"), Content: models.NewText("Fix potholes")},
		{Row: 2, Category: models.NewText("Parks"), Who: models.NewText("Bob"), Result: models.NewText("Rejected"), FullName: models.NewText("Leisure"), Content: models.NewText("New benches")},
		{Row: 3, Category: models.NewText("Roads"), Who: models.NewText("Carol"), Result: models.NewText("Rejected"), FullName: models.NewText("Works"), Content: models.NewText("Repaint lines by Smith")},
	}
	logger := logging.NewMockLogger()
	prompter := &scriptedPrompter{answers: answers}
	var out bytes.Buffer
	m := New(index.New(records, logger), prompter, render.New(&out, render.FormatText), logger)
	return m, prompter, &out
}

func TestMenu_ExitStopsLoop(t *testing.T) {
	m, prompter, out := newTestMenu(t, ActionExit)
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, []string{"Proposal search"}, prompter.titles)
	assert.Empty(t, out.String())
}

func TestMenu_AbortEndsLoopCleanly(t *testing.T) {
	m, _, _ := newTestMenu(t)
	assert.NoError(t, m.Run(context.Background()))
}

func TestMenu_CancelledContext(t *testing.T) {
	m, _, _ := newTestMenu(t, ActionExit)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestMenu_CategorySearch(t *testing.T) {
	m, prompter, out := newTestMenu(t, ActionCategory, "Roads", ActionExit)
	require.NoError(t, m.Run(context.Background()))

	assert.Equal(t, []Option{
		{Label: "(skip)", Value: ""},
		{Label: "1. Parks", Value: "Parks"},
		{Label: "2. Roads", Value: "Roads"},
	}, prompter.options["Category"])
	assert.Contains(t, out.String(), "Found 2 proposal(s)")
	assert.Contains(t, out.String(), "Proposal 1")
	assert.Contains(t, out.String(), "Proposal 3")
}

func TestMenu_SkippedFilterReturnsAll(t *testing.T) {
	m, _, out := newTestMenu(t, ActionDepartment, "", ActionExit)
	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, out.String(), "Found 3 proposal(s)")
}

func TestMenu_MultiCriteria(t *testing.T) {
	// category, proposer, result, department
	m, prompter, out := newTestMenu(t, ActionMulti, "Roads", "Car", "Rejected", "", ActionExit)
	require.NoError(t, m.Run(context.Background()))

	assert.Equal(t, []string{"Proposal search", "Category", "Proposer name", "Result", "Department", "Proposal search"}, prompter.titles)
	assert.Contains(t, out.String(), "Found 1 proposal(s)")
	assert.Contains(t, out.String(), "Proposal 3")
}

func TestMenu_ProposerNoMatch(t *testing.T) {
	m, _, out := newTestMenu(t, ActionProposer, "Zed", ActionExit)
	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, out.String(), render.NoResultsMessage)
}

func TestMenu_KeywordScopes(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"content only", ScopeContent, "Found 1 proposal(s)"},
		{"all fields", ScopeAll, "Found 2 proposal(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, out := newTestMenu(t, ActionKeyword, tt.scope, "smith", ActionExit)
			require.NoError(t, m.Run(context.Background()))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestMenu_EmptyKeywordPrintsNothing(t *testing.T) {
	m, _, out := newTestMenu(t, ActionKeyword, ScopeAll, "", ActionExit)
	require.NoError(t, m.Run(context.Background()))
	assert.Empty(t, out.String())
}

func TestMenu_UnknownAction(t *testing.T) {
	m, _, _ := newTestMenu(t, "bogus")
	_, err := m.Step(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAborted))
	assert.Contains(t, err.Error(), "bogus")
}

func TestKeywordFields(t *testing.T) {
	assert.Equal(t, []models.Field{models.FieldContent}, KeywordFields(ScopeContent))
	assert.Equal(t, index.AllTextFields(), KeywordFields(ScopeAll))
}

func TestMenu_ProposerAnswerUsedVerbatim(t *testing.T) {
	m, _, out := newTestMenu(t, ActionProposer, "Bob ", ActionExit)
	require.NoError(t, m.Run(context.Background()))
	assert.Contains(t, out.String(), render.NoResultsMessage)
}

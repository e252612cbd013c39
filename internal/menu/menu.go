// Package menu implements the interactive search menu.
package menu

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/render"
)

// Menu actions.
const (
	ActionCategory   = "category"
	ActionProposer   = "proposer"
	ActionResult     = "result"
	ActionDepartment = "department"
	ActionMulti      = "multi"
	ActionKeyword    = "keyword"
	ActionExit       = "exit"
)

// Keyword search scopes.
const (
	ScopeContent = "content"
	ScopeAll     = "all"
)

// MainOptions are the entries of the main menu, in display order.
var MainOptions = []Option{
	{Label: "1. Search by category", Value: ActionCategory},
	{Label: "2. Search by proposer", Value: ActionProposer},
	{Label: "3. Search by result", Value: ActionResult},
	{Label: "4. Search by department", Value: ActionDepartment},
	{Label: "5. Multi-criteria search", Value: ActionMulti},
	{Label: "6. Keyword search", Value: ActionKeyword},
	{Label: "7. Exit", Value: ActionExit},
}

var scopeOptions = []Option{
	{Label: "1. Content only", Value: ScopeContent},
	{Label: "2. All fields", Value: ScopeAll},
}

// Menu drives the search loop against a loaded index.
type Menu struct {
	idx      *index.Index
	prompter Prompter
	renderer *render.Renderer
	logger   logging.Logger
	values   index.UniqueValues
}

// New creates a menu. The selectable values are computed once.
func New(idx *index.Index, prompter Prompter, renderer *render.Renderer, logger logging.Logger) *Menu {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Menu{
		idx:      idx,
		prompter: prompter,
		renderer: renderer,
		logger:   logger,
		values:   idx.UniqueValues(),
	}
}

// Run loops until the operator exits, aborts a prompt, or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := m.Step(ctx)
		if errors.Is(err, ErrAborted) {
			m.logger.Debug("Menu aborted by operator")
			return nil
		}
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Step runs one menu round and reports whether the loop should continue.
func (m *Menu) Step(ctx context.Context) (bool, error) {
	action, err := m.prompter.Choose(ctx, "Proposal search", MainOptions)
	if err != nil {
		return false, err
	}
	m.logger.Debug("Menu action selected", logging.F(logging.FieldOperation, action))

	switch action {
	case ActionExit:
		return false, nil
	case ActionKeyword:
		return true, m.keywordSearch(ctx)
	case ActionCategory, ActionProposer, ActionResult, ActionDepartment, ActionMulti:
		filters, err := m.collectFilters(ctx, action)
		if err != nil {
			return false, err
		}
		return true, m.renderer.Proposals(m.idx.SearchProposals(filters))
	default:
		return false, fmt.Errorf("unknown menu action %q", action)
	}
}

func (m *Menu) collectFilters(ctx context.Context, action string) (index.Filters, error) {
	var (
		f   index.Filters
		err error
	)
	multi := action == ActionMulti

	if multi || action == ActionCategory {
		if f.Category, err = m.choose(ctx, "Category", m.values.Categories); err != nil {
			return f, err
		}
	}
	if multi || action == ActionProposer {
		answer, err := m.prompter.Ask(ctx, "Proposer name")
		if err != nil {
			return f, err
		}
		f.Proposer = answer
	}
	if multi || action == ActionResult {
		if f.Result, err = m.choose(ctx, "Result", m.values.Results); err != nil {
			return f, err
		}
	}
	if multi || action == ActionDepartment {
		if f.FullName, err = m.choose(ctx, "Department", m.values.FullNames); err != nil {
			return f, err
		}
	}
	return f, nil
}

// choose offers values plus a leading skip entry.
func (m *Menu) choose(ctx context.Context, title string, values []string) (string, error) {
	options := make([]Option, 0, len(values)+1)
	options = append(options, Option{Label: "(skip)", Value: ""})
	for i, v := range values {
		options = append(options, Option{Label: fmt.Sprintf("%d. %s", i+1, v), Value: v})
	}
	return m.prompter.Choose(ctx, title, options)
}

func (m *Menu) keywordSearch(ctx context.Context) error {
	scope, err := m.prompter.Choose(ctx, "Keyword search", scopeOptions)
	if err != nil {
		return err
	}
	keyword, err := m.prompter.Ask(ctx, "Keyword")
	if err != nil {
		return err
	}
	if keyword == "" {
		return nil
	}

	return m.renderer.Proposals(m.idx.SearchByKeyword(keyword, KeywordFields(scope)...))
}

// KeywordFields maps a scope to the fields it searches.
func KeywordFields(scope string) []models.Field {
	if scope == ScopeAll {
		return index.AllTextFields()
	}
	return index.DefaultKeywordFields
}

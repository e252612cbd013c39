package menu

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"fjacquet/proposal-search/internal/render"
)

// ErrAborted is returned by a Prompter when the operator cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// Option is a selectable menu entry. An empty Value means "skip".
type Option struct {
	Label string
	Value string
}

// Prompter asks the operator for input.
type Prompter interface {
	Choose(ctx context.Context, title string, options []Option) (string, error)
	Ask(ctx context.Context, title string) (string, error)
}

// HuhPrompter prompts on the terminal with huh forms.
type HuhPrompter struct {
	theme *huh.Theme
}

// NewHuhPrompter returns a terminal prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{theme: menuTheme()}
}

// Choose shows a select list and returns the chosen option's value.
func (p *HuhPrompter) Choose(ctx context.Context, title string, options []Option) (string, error) {
	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		huhOptions = append(huhOptions, huh.NewOption(o.Label, o.Value))
	}

	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&value),
		),
	).WithTheme(p.theme).WithShowHelp(false)

	if err := p.run(ctx, form); err != nil {
		return "", err
	}
	return value, nil
}

// Ask reads a free-text answer. A blank answer is returned as "".
func (p *HuhPrompter) Ask(ctx context.Context, title string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("press Enter to skip").
				Value(&value),
		),
	).WithTheme(p.theme).WithShowHelp(false)

	if err := p.run(ctx, form); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, form *huh.Form) error {
	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

func menuTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(render.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(render.ColorLabel)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(render.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(render.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(render.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(render.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(render.ColorDim)

	return t
}

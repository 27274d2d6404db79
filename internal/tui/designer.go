// Package tui provides the interactive pattern designer. Every keystroke in
// a slot input re-runs classification over the whole corpus, so the preview
// and summary always reflect the configuration as typed.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/streamlens/streamlens/internal/cli"
	"github.com/streamlens/streamlens/internal/model"
	"github.com/streamlens/streamlens/internal/service"
)

// previewLimit caps how many corpus rows are rendered; classification still
// runs over the full corpus for the summary.
const previewLimit = 10

// slotOrder maps focus indexes to slots; the builtin-filter toggle sits one
// past the last slot input.
var slotOrder = model.AllSlotNames()

// Designer is the bubbletea model for the interactive pattern designer.
type Designer struct {
	ctx     context.Context
	session *service.Session
	inputs  []textinput.Model
	summary model.CorpusSummary
	status  string
	focus   int
	width   int
}

// NewDesigner creates a designer over an editing session. The session's
// working configuration seeds the slot inputs.
func NewDesigner(ctx context.Context, session *service.Session) *Designer {
	cfg := session.Config()

	inputs := make([]textinput.Model, len(slotOrder))
	for i, name := range slotOrder {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "(none)"
		ti.CharLimit = 512
		ti.SetValue(cfg.Slot(name).Pattern)
		inputs[i] = ti
	}
	inputs[0].Focus()

	d := &Designer{
		ctx:     ctx,
		session: session,
		inputs:  inputs,
	}
	d.summary = session.Preview()
	return d
}

// Init implements tea.Model.
func (d *Designer) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (d *Designer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		for i := range d.inputs {
			d.inputs[i].Width = msg.Width - 12
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Discard local edits; the store was only touched by ctrl+s.
			d.session.Discard()
			return d, tea.Quit

		case "ctrl+s":
			if err := d.session.Apply(d.ctx); err != nil {
				d.status = cli.ErrorStyle.Render(fmt.Sprintf("apply failed: %v", err))
				return d, nil
			}
			d.status = cli.SuccessStyle.Render("configuration applied")
			return d, nil

		case "tab", "down":
			d.setFocus(d.focus + 1)
			return d, nil

		case "shift+tab", "up":
			d.setFocus(d.focus - 1)
			return d, nil

		case " ":
			if d.onToggleRow() {
				d.session.SetSkipBuiltinFilter(!d.session.Config().SkipBuiltinFilter)
				d.refresh()
				return d, nil
			}
		}
	}

	if d.onToggleRow() {
		return d, nil
	}

	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)

	// Push the edited text into the session and re-evaluate eagerly.
	_ = d.session.SetSlotPattern(slotOrder[d.focus], d.inputs[d.focus].Value())
	d.refresh()
	return d, cmd
}

// View implements tea.Model.
func (d *Designer) View() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(fmt.Sprintf("Pattern designer · group %q", d.session.Group())))
	b.WriteString("\n\n")

	for i, name := range slotOrder {
		label := fmt.Sprintf("%-8s", name)
		if i == d.focus {
			label = cli.TitleStyle.Render("> " + label)
		} else {
			label = cli.SubtleStyle.Render("  " + label)
		}
		b.WriteString(label + d.inputs[i].View() + "\n")
	}

	toggle := "  "
	if d.onToggleRow() {
		toggle = cli.TitleStyle.Render("> ")
	}
	check := "[ ]"
	if d.session.Config().SkipBuiltinFilter {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s%s skip builtin filter (space to toggle)\n\n", toggle, check))

	b.WriteString(d.renderPreview())
	b.WriteString("\n")
	b.WriteString(d.renderSummary())
	b.WriteString("\n\n")

	if d.status != "" {
		b.WriteString(d.status + "\n")
	}
	b.WriteString(cli.SubtleStyle.Render("tab/shift+tab move · ctrl+s apply · esc discard and quit"))
	return b.String()
}

func (d *Designer) renderPreview() string {
	var b strings.Builder
	streams := d.session.Streams()
	limit := len(streams)
	if limit > previewLimit {
		limit = previewLimit
	}

	for _, name := range streams[:limit] {
		res := d.session.Classify(name)
		glyph := cli.TagStyle(res.Tag).Render(tagGlyph(res.Tag))
		b.WriteString(fmt.Sprintf(" %s %s\n", glyph, cli.RenderHighlights(name, res.Ranges)))
	}
	if len(streams) > limit {
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf(" … %d more\n", len(streams)-limit)))
	}
	return b.String()
}

func (d *Designer) renderSummary() string {
	parts := []string{
		cli.SuccessStyle.Render(fmt.Sprintf("%d included", d.summary.Included)),
		cli.ErrorStyle.Render(fmt.Sprintf("%d excluded", d.summary.Excluded)),
		cli.WarningStyle.Render(fmt.Sprintf("%d filtered", d.summary.BuiltinFiltered)),
		fmt.Sprintf("%d with fields", d.summary.WithExtractions),
	}
	return lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%d streams: %s", d.summary.Total, strings.Join(parts, " · ")))
}

// refresh re-runs classification over the full corpus. Corpora in the low
// tens of thousands stay well within an input tick.
func (d *Designer) refresh() {
	d.summary = d.session.Preview()
}

func (d *Designer) onToggleRow() bool {
	return d.focus == len(d.inputs)
}

func (d *Designer) setFocus(focus int) {
	rows := len(d.inputs) + 1
	d.focus = ((focus % rows) + rows) % rows

	for i := range d.inputs {
		if i == d.focus {
			d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
}

func tagGlyph(tag model.ClassificationTag) string {
	switch tag {
	case model.TagIncluded:
		return "✓"
	case model.TagExcluded:
		return "✗"
	case model.TagBuiltinFiltered:
		return "~"
	}
	return "?"
}

// Run starts the designer and blocks until the operator quits.
func Run(ctx context.Context, session *service.Session) error {
	p := tea.NewProgram(NewDesigner(ctx, session), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("designer failed: %w", err)
	}
	return nil
}

// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/streamlens/streamlens/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7AA2F7")
	// SuccessColor indicates included streams.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates builtin-filtered streams.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates excluded streams.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats included stream names.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats builtin-filtered stream names.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats excluded stream names.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// fieldStyles colors extraction highlights per field or slot label.
var fieldStyles = map[string]lipgloss.Style{
	string(model.FieldTeam1):  lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")).Bold(true),
	string(model.FieldTeam2):  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9E64")).Bold(true),
	string(model.SlotTeams):   lipgloss.NewStyle().Foreground(lipgloss.Color("#E0AF68")),
	string(model.FieldDate):   lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A")).Bold(true),
	string(model.FieldTime):   lipgloss.NewStyle().Foreground(lipgloss.Color("#7DCFFF")).Bold(true),
	string(model.FieldLeague): lipgloss.NewStyle().Foreground(lipgloss.Color("#BB9AF7")).Bold(true),
}

// FieldStyle returns the highlight style for a field or slot label,
// falling back to the title style for labels it does not know.
func FieldStyle(label string) lipgloss.Style {
	if style, ok := fieldStyles[label]; ok {
		return style
	}
	return TitleStyle
}

// TagStyle returns the style for a classification tag.
func TagStyle(tag model.ClassificationTag) lipgloss.Style {
	switch tag {
	case model.TagIncluded:
		return SuccessStyle
	case model.TagExcluded:
		return ErrorStyle
	case model.TagBuiltinFiltered:
		return WarningStyle
	}
	return SubtleStyle
}

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#60A5FA") // Blue
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Badge styles for active/inactive status columns
	BadgeActive = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	BadgeInactive = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Step indicator styles for the wizard header
	StepCurrent = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	StepDone = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Padding(0, 1)

	StepPending = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	// PriceBadge renders the live total in the wizard header
	PriceBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SecondaryColor).
			Padding(0, 1)

	// Selected/unselected rows in checkbox lists
	RowSelected = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	RowCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Notice styles for the status line
	NoticeError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	NoticeInfo = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Panel draws a bordered box around forms and summaries
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	// HelpBar renders the key hints at the bottom of each screen
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)
)

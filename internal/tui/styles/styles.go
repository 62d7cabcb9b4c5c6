package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Blue       = lipgloss.Color("#3B82F6")
	Purple     = lipgloss.Color("#9333EA")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Amber      = lipgloss.Color("#F59E0B")

	// Accent is the highlight colour; overridden from config via ApplyAccent
	Accent = Blue
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	SectionStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	StarStyle = lipgloss.NewStyle().
			Foreground(Amber)

	NotifyStyle = lipgloss.NewStyle().
			Foreground(Red)
)

// Accent-dependent styles, rebuilt by ApplyAccent
var (
	AccentStyle         lipgloss.Style
	HeaderStyle         lipgloss.Style
	NavActiveStyle      lipgloss.Style
	NavInactiveStyle    lipgloss.Style
	ChipActiveStyle     lipgloss.Style
	ChipInactiveStyle   lipgloss.Style
	SubTabActiveStyle   lipgloss.Style
	SubTabInactiveStyle lipgloss.Style
	BannerStyle         lipgloss.Style
	StatBoxStyle        lipgloss.Style
	MatchHighlightStyle lipgloss.Style
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SlateLight).
			Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Blue)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

func init() {
	ApplyAccent(string(Blue))
}

// ApplyAccent sets the accent colour and rebuilds the styles that use it.
// An empty value keeps the default blue.
func ApplyAccent(hex string) {
	if hex == "" {
		hex = string(Blue)
	}
	Accent = lipgloss.Color(hex)

	AccentStyle = lipgloss.NewStyle().
		Foreground(Accent)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(White).
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(SlateLight)

	NavActiveStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	NavInactiveStyle = lipgloss.NewStyle().
		Foreground(DimGray)

	ChipActiveStyle = lipgloss.NewStyle().
		Foreground(White).
		Background(Accent).
		Padding(0, 1)

	ChipInactiveStyle = lipgloss.NewStyle().
		Foreground(LightGray).
		Background(SlateLight).
		Padding(0, 1)

	SubTabActiveStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Background(SlateDark).
		Bold(true).
		Padding(0, 2)

	SubTabInactiveStyle = lipgloss.NewStyle().
		Foreground(LightGray).
		Padding(0, 2)

	BannerStyle = lipgloss.NewStyle().
		Foreground(White).
		Background(Accent).
		Padding(1, 2)

	StatBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Align(lipgloss.Center).
		Padding(0, 1)

	MatchHighlightStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(Accent)
}

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Highlight renders text with the runes at positions styled as matches
func Highlight(text string, positions []int, base lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}

	matchSet := make(map[int]bool, len(positions))
	for _, p := range positions {
		matchSet[p] = true
	}

	// Batch consecutive runes with the same match state
	var out string
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]
		start := i
		for i < len(runes) && matchSet[i] == isMatch {
			i++
		}
		chunk := string(runes[start:i])
		if isMatch {
			out += MatchHighlightStyle.Render(chunk)
		} else {
			out += base.Render(chunk)
		}
	}
	return out
}

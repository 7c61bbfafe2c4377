package ui

import lipgloss "charm.land/lipgloss/v2"

type Theme struct {
	Header       lipgloss.Style
	Status       lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelBorder  lipgloss.Style
	PanelBody    lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Accent       lipgloss.Style
	Active       lipgloss.Style
	Dormant      lipgloss.Style
	Muted        lipgloss.Style
	Info         lipgloss.Style
}

func DefaultTheme() Theme {
	return ThemeForVariant("midnight")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "high_contrast":
		return highContrastTheme()
	case "retro_terminal":
		return retroTerminalTheme()
	default:
		return midnightTheme()
	}
}

func midnightTheme() Theme {
	mint := lipgloss.Color("#67F0A8")
	brick := lipgloss.Color("#FF6F91")
	ink := lipgloss.Color("#0E1420")
	slate := lipgloss.Color("#1B2740")
	powder := lipgloss.Color("#EAF2FF")
	blue := lipgloss.Color("#5EEBFF")
	border := lipgloss.Color("#4B5F8A")

	return Theme{
		Header: lipgloss.NewStyle().
			Background(ink).
			Foreground(powder).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Background(slate).
			Foreground(powder).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		PanelBorder: lipgloss.NewStyle().
			Foreground(border),
		PanelBody: lipgloss.NewStyle().
			Foreground(powder),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(blue).
			Background(ink).
			Foreground(powder).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(mint).
			Bold(true),
		Dormant: lipgloss.NewStyle().
			Foreground(brick),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CAAC6")),
		Info: lipgloss.NewStyle().
			Foreground(blue),
	}
}

// highContrastTheme maximizes figure-ground separation for low-vision
// players: pure white on black, no mid-tone grays.
func highContrastTheme() Theme {
	black := lipgloss.Color("#000000")
	white := lipgloss.Color("#FFFFFF")
	yellow := lipgloss.Color("#FFFF00")
	green := lipgloss.Color("#00FF00")
	red := lipgloss.Color("#FF4040")

	return Theme{
		Header:      lipgloss.NewStyle().Background(black).Foreground(white).Padding(0, 1).Bold(true),
		Status:      lipgloss.NewStyle().Background(black).Foreground(yellow).Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Foreground(yellow).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(white),
		PanelBody:   lipgloss.NewStyle().Foreground(white),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(yellow).
			Background(black).
			Foreground(white).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(yellow).Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(yellow).Bold(true),
		Active:       lipgloss.NewStyle().Foreground(green).Bold(true),
		Dormant:      lipgloss.NewStyle().Foreground(red).Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(white),
		Info:         lipgloss.NewStyle().Foreground(yellow),
	}
}

func retroTerminalTheme() Theme {
	lime := lipgloss.Color("#9CF5A2")
	amber := lipgloss.Color("#E5D47A")
	red := lipgloss.Color("#FF6B6B")
	deep := lipgloss.Color("#07150A")
	forest := lipgloss.Color("#12301A")
	glow := lipgloss.Color("#C5F7C4")

	return Theme{
		Header:      lipgloss.NewStyle().Background(deep).Foreground(glow).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(forest).Foreground(glow).Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Foreground(amber).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(forest),
		PanelBody:   lipgloss.NewStyle().Foreground(glow),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(amber).
			Background(deep).
			Foreground(glow).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Foreground(amber).Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(lime).Bold(true),
		Active:       lipgloss.NewStyle().Foreground(lime).Bold(true),
		Dormant:      lipgloss.NewStyle().Foreground(red).Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
		Info:         lipgloss.NewStyle().Foreground(lime),
	}
}

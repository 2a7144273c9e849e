package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	BorderFg    tcell.Color
	TitleFg     tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	ErrorFg     tcell.Color
	TraceFg     tcell.Color
	HintFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		BorderFg:    tcell.ColorDefault,
		TitleFg:     tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		ErrorFg:     tcell.ColorRed,
		TraceFg:     tcell.ColorLightSlateGray,
		HintFg:      tcell.ColorLightSlateGray,
	}
}

package tmages

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TitleColor tcell.Color
	HintColor  tcell.Color

	// HotkeyColor is a tview color tag name, not a tcell value, because it
	// is spliced into tagged strings.
	HotkeyColor string

	DirColor    tcell.Color
	ParentColor tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TitleColor: tcell.ColorWhiteSmoke,
	HintColor:  tcell.ColorSlateGray,

	HotkeyColor: "white",

	DirColor:    tcell.ColorCornflowerBlue,
	ParentColor: tcell.ColorWhite,
}

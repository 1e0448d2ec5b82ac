package tmages

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/manish-ach/Tmages/pkg/browse"
	"github.com/rivo/tview"
)

// entriesPanel draws the visible window of the current listing and owns the
// keyboard: navigation, activation, type-to-search and quitting all happen
// here. It is the only focusable primitive while the browser is on screen.
type entriesPanel struct {
	*tview.Box
	browser       *Browser
	searchPattern string
	pageHeight    int
}

func newEntriesPanel(browser *Browser) *entriesPanel {
	p := &entriesPanel{
		Box:     tview.NewBox(),
		browser: browser,
	}
	p.SetBorder(true)
	p.SetInputCapture(p.inputCapture)
	p.SetFocusFunc(func() {
		p.SetBorderColor(Style.FocusedBorderColor)
	})
	p.SetBlurFunc(func() {
		p.SetBorderColor(Style.BlurBorderColor)
	})
	p.SetBorderColor(Style.FocusedBorderColor)
	return p
}

func (p *entriesPanel) Draw(screen tcell.Screen) {
	p.Box.DrawForSubclass(screen, p)
	x, y, width, height := p.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	p.pageHeight = height

	window := p.browser.state.View(height)
	for i, entry := range window.Entries {
		name := string(entry)
		color := entryColor(entry)
		if window.Scroll+i == window.Selected {
			style := tcell.StyleDefault.Foreground(color).Reverse(true)
			for cx := 0; cx < width; cx++ {
				screen.SetContent(x+cx, y+i, ' ', nil, style)
			}
			tview.Print(screen, "[::r]"+tview.Escape(name), x, y+i, width, tview.AlignLeft, color)
			continue
		}
		text := tview.Escape(name)
		if p.searchPattern != "" {
			text = highlightSearchMatch(name, p.searchPattern)
		}
		tview.Print(screen, text, x, y+i, width, tview.AlignLeft, color)
	}
}

func entryColor(entry browse.Entry) tcell.Color {
	switch {
	case entry.IsParent():
		return Style.ParentColor
	case entry.IsDir():
		return Style.DirColor
	default:
		return GetColorByFileExt(entry.Name())
	}
}

// highlightSearchMatch wraps the first occurrence of pattern in name with
// inverse-green tags. pattern is lowercase; when lowercasing shifts byte
// offsets the name is printed unhighlighted rather than sliced mid-rune.
func highlightSearchMatch(name, pattern string) string {
	lower := strings.ToLower(name)
	if len(lower) != len(name) {
		return tview.Escape(name)
	}
	i := strings.Index(lower, pattern)
	if i < 0 {
		return tview.Escape(name)
	}
	end := i + len(pattern)
	return tview.Escape(name[:i]) +
		"[black:lightgreen]" + tview.Escape(name[i:end]) + "[-:-]" +
		tview.Escape(name[end:])
}

func (p *entriesPanel) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		p.browser.moveSelection(-1)
		return nil
	case tcell.KeyDown:
		p.browser.moveSelection(1)
		return nil
	case tcell.KeyPgUp:
		p.browser.moveSelection(-p.page())
		return nil
	case tcell.KeyPgDn:
		p.browser.moveSelection(p.page())
		return nil
	case tcell.KeyHome:
		p.browser.selectIndex(0)
		return nil
	case tcell.KeyEnd:
		p.browser.selectIndex(len(p.browser.state.Entries()) - 1)
		return nil
	case tcell.KeyEnter:
		p.browser.activate()
		return nil
	case tcell.KeyF1:
		showHelpModal(p.browser)
		return nil
	case tcell.KeyEscape:
		p.SetSearch("")
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.searchPattern != "" {
			p.SetSearch(trimLastRune(p.searchPattern))
		}
		return nil
	case tcell.KeyCtrlC:
		p.browser.quit()
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		if p.searchPattern == "" {
			// Plain command keys; once a search is active they feed the
			// pattern instead.
			switch r {
			case 'q', 'Q':
				p.browser.quit()
				return nil
			case 'j':
				p.browser.moveSelection(1)
				return nil
			case 'k':
				p.browser.moveSelection(-1)
				return nil
			case ' ':
				return event
			}
		}
		p.SetSearch(p.searchPattern + strings.ToLower(string(r)))
		return nil
	default:
		return event
	}
}

func (p *entriesPanel) page() int {
	if p.pageHeight < 1 {
		return 1
	}
	return p.pageHeight
}

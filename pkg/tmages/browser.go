package tmages

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/manish-ach/Tmages/pkg/browse"
	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/manish-ach/Tmages/pkg/fsutils"
	"github.com/manish-ach/Tmages/pkg/kitty"
	"github.com/manish-ach/Tmages/pkg/tmages/tmstate"
	"github.com/rivo/tview"
)

// Persisted state writes go through seams so tests do not touch ~/.tmages.
var saveCurrentDir = tmstate.SaveCurrentDir
var saveCurrentDirEntry = tmstate.SaveCurrentDirEntry
var getSavedState = tmstate.GetState

// Browser is the root primitive: a directory header, the entries and
// preview panes side by side, and a key hint line. Every mutation runs on
// the tview event loop, one key event at a time, and is followed by a full
// redraw that queries the browse state for the visible window.
type Browser struct {
	*tview.Flex
	app     *tview.Application
	ctx     context.Context
	state   *browse.State
	header  *tview.TextView
	entries *entriesPanel
	preview *previewerPanel
	hints   *tview.TextView
}

func NewBrowser(ctx context.Context, app *tview.Application, state *browse.State, renderer *kitty.Renderer, syntaxStyle string, textPreviewMax int) *Browser {
	b := &Browser{
		Flex:  tview.NewFlex(),
		app:   app,
		ctx:   ctx,
		state: state,
	}
	b.SetDirection(tview.FlexRow)

	b.header = tview.NewTextView()
	b.header.SetTextColor(Style.TitleColor)

	b.entries = newEntriesPanel(b)
	b.preview = newPreviewerPanel(renderer, syntaxStyle, textPreviewMax)

	panes := tview.NewFlex()
	panes.AddItem(b.entries, 0, 1, true)
	panes.AddItem(b.preview, 0, 2, false)

	b.hints = tview.NewTextView()
	b.hints.SetDynamicColors(true)
	b.hints.SetTextColor(Style.HintColor)
	b.hints.SetText(keyHints())

	b.AddItem(b.header, 1, 0, false)
	b.AddItem(panes, 0, 1, true)
	b.AddItem(b.hints, 1, 0, false)

	b.applyTitles()
	b.restoreSavedEntry()
	b.previewSelected()
	return b
}

func keyHints() string {
	const separator = "┊"
	items := []string{
		"F1 Help",
		"↑↓ Move",
		"Enter Open",
		"Type to find",
		"q Quit",
	}
	for i, item := range items {
		key, rest, _ := strings.Cut(item, " ")
		items[i] = fmt.Sprintf("[%s]%s[-] %s", Style.HotkeyColor, key, rest)
	}
	return " " + strings.Join(items, separator)
}

// applyTitles refreshes the directory header and the entries panel title
// after a navigation.
func (b *Browser) applyTitles() {
	b.header.SetText(" " + b.state.Dir())
	b.applyEntriesTitle()
}

func (b *Browser) applyEntriesTitle() {
	dir := b.state.Dir()
	title := filepath.Base(dir)
	if dir == fsutils.HomeDir() {
		title = "~"
	}
	b.entries.SetTitle(title)
}

// restoreSavedEntry re-selects the entry the previous session ended on, when
// the browser reopened the same directory it was in.
func (b *Browser) restoreSavedEntry() {
	saved, err := getSavedState()
	if err != nil || saved.CurrentDir != b.state.Dir() || saved.CurrentDirEntry == "" {
		return
	}
	for i, entry := range b.state.Entries() {
		if entry.Name() == saved.CurrentDirEntry {
			b.state.Select(i)
			return
		}
	}
}

func (b *Browser) moveSelection(delta int) {
	b.state.MoveSelection(delta)
	b.afterSelectionChange()
}

func (b *Browser) selectIndex(index int) {
	b.state.Select(index)
	b.afterSelectionChange()
}

// activate opens the selected directory. A rejected navigation, or a file
// row, changes nothing and keeps the screen as it is.
func (b *Browser) activate() {
	before := b.state.Dir()
	b.state.Activate(b.ctx)
	if b.state.Dir() == before {
		return
	}
	b.afterNavigate()
}

func (b *Browser) afterNavigate() {
	b.entries.SetSearch("")
	b.applyTitles()
	saveCurrentDir(b.state.Dir())
	b.afterSelectionChange()
}

func (b *Browser) afterSelectionChange() {
	b.previewSelected()
	saveCurrentDirEntry(b.state.SelectedEntry().Name())
}

func (b *Browser) previewSelected() {
	entry := b.state.SelectedEntry()
	if entry.IsParent() {
		// The marker row describes the directory it ascends to. At the root
		// that is the root itself.
		b.preview.PreviewDir(filepath.Dir(b.state.Dir()))
		return
	}
	withPath := files.NewEntryWithDirPath(files.NewDirEntry(entry.Name(), entry.IsDir()), b.state.Dir())
	b.preview.PreviewEntry(*withPath)
}

// quit ends the session: the state stops mutating, the terminal image is
// deleted while the terminal is still in raw mode, then tview tears down.
func (b *Browser) quit() {
	b.preview.clearImage()
	b.state.RequestExit()
	b.app.Stop()
}

func (b *Browser) setAppRoot(p tview.Primitive, fullscreen bool) {
	b.app.SetRoot(p, fullscreen)
}

func (b *Browser) setAppFocus(p tview.Primitive) {
	b.app.SetFocus(p)
}

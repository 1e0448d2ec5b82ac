package tmages

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func showHelpModal(browser *Browser) {
	modal, _, _ := createHelpModal(browser, browser)
	// An image blit would float over the modal.
	browser.preview.clearImage()
	browser.setAppRoot(modal, true)
}

func createHelpModal(browser *Browser, root tview.Primitive) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	const helpText = `F1 - Help
↑ / k - Move up
↓ / j - Move down
PgUp/PgDn - Move by page
Enter - Open directory
Type - Find by name
Esc - Clear find
q - Quit`

	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText).
		SetTextAlign(tview.AlignCenter)

	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		browser.setAppRoot(root, true)
		browser.setAppFocus(browser.entries)
	}

	helpView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	})

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	})

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)

	helpFlex.SetBorder(true).
		SetTitle(" Tmages - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	// A Grid centers the help box over the browser.
	modal = tview.NewGrid().
		SetColumns(0, 40, 0).
		SetRows(0, 13, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}

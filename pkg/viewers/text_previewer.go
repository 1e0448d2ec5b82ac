package viewers

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
	"github.com/manish-ach/Tmages/pkg/chroma2tcell"
	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/manish-ach/Tmages/pkg/fsutils"
	"github.com/rivo/tview"
)

var _ Previewer = (*TextPreviewer)(nil)

// TextPreviewer shows the head of a file, syntax colored when a chroma lexer
// matches the file name.
type TextPreviewer struct {
	*tview.TextView
	styleName string
	maxBytes  int
}

func NewTextPreviewer(styleName string, maxBytes int) *TextPreviewer {
	return &TextPreviewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetRegions(true).
			SetScrollable(true),
		styleName: styleName,
		maxBytes:  maxBytes,
	}
}

func (p *TextPreviewer) Preview(entry files.EntryWithDirPath) {
	data, err := p.readFile(entry, p.maxBytes)
	if err != nil && !errors.Is(err, io.EOF) {
		return // readFile already put the error on screen
	}
	p.SetTextColor(tview.Styles.PrimaryTextColor)
	name := entry.Name()
	lexer := lexers.Match(name)
	if lexer == nil {
		p.SetDynamicColors(false)
		p.SetText(string(data))
		return
	}
	colorized, err := chroma2tcell.Colorize(string(data), p.styleName, lexer)
	if err != nil {
		p.showError("Failed to format file: " + err.Error())
		return
	}
	p.Clear()
	p.SetDynamicColors(true)
	p.SetText(colorized)
	p.SetWrap(true)
}

func (p *TextPreviewer) Main() tview.Primitive {
	return p.TextView
}

func (p *TextPreviewer) readFile(entry files.EntryWithDirPath, max int) (data []byte, err error) {
	fullName := entry.FullName()
	data, err = fsutils.ReadFileData(fullName, max)
	if err != nil && !errors.Is(err, io.EOF) {
		errText := fmt.Sprintf("Failed to read file %s: %s", fullName, err.Error())
		p.showError(errText)
		return
	}
	return
}

func (p *TextPreviewer) showError(text string) {
	p.SetDynamicColors(false)
	p.SetText(text)
	p.SetTextColor(tcell.ColorRed)
}

package tmages

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/manish-ach/Tmages/pkg/fsutils"
	"github.com/manish-ach/Tmages/pkg/kitty"
	"github.com/manish-ach/Tmages/pkg/viewers"
	"github.com/rivo/tview"
)

var osStat = os.Stat

// previewerPanel is the right pane. It shows size and modification time for
// the selected row, then hands the rest of the pane to a previewer: meta
// rows for directories and images, colored text for everything else. Images
// are additionally blitted over the pane by the kitty renderer during draw.
type previewerPanel struct {
	*tview.Flex
	renderer     *kitty.Renderer
	fsAttrs      *tview.Table
	sizeCell     *tview.TableCell
	modCell      *tview.TableCell
	separator    *tview.TextView
	previewer    viewers.Previewer
	dirPreviewer *viewers.DirPreviewer

	syntaxStyle    string
	textPreviewMax int

	imagePath  string
	imageShown bool
}

func newPreviewerPanel(renderer *kitty.Renderer, syntaxStyle string, textPreviewMax int) *previewerPanel {
	separator := tview.NewTextView()
	separator.SetText(strings.Repeat("─", 20))
	separator.SetTextColor(tcell.ColorGray)

	p := &previewerPanel{
		Flex:           tview.NewFlex(),
		renderer:       renderer,
		dirPreviewer:   viewers.NewDirPreviewer(),
		separator:      separator,
		syntaxStyle:    syntaxStyle,
		textPreviewMax: textPreviewMax,
	}
	p.SetDirection(tview.FlexRow)
	p.SetBorder(true)
	p.SetBorderColor(Style.BlurBorderColor)

	p.fsAttrs = p.createAttrsTable()
	p.AddItem(p.fsAttrs, 2, 0, false)
	p.AddItem(p.separator, 1, 0, false)

	return p
}

func (p *previewerPanel) createAttrsTable() *tview.Table {
	t := tview.NewTable()
	sizeLabelCell := tview.NewTableCell("Size")
	sizeLabelCell.SetAlign(tview.AlignRight)
	sizeLabelCell.SetTextColor(Style.TitleColor)
	sizeLabelCell.SetSelectable(false)
	t.SetCell(0, 0, sizeLabelCell)
	p.sizeCell = tview.NewTableCell("")
	t.SetCell(0, 1, p.sizeCell)
	modLabelCell := tview.NewTableCell("Modified")
	modLabelCell.SetAlign(tview.AlignRight)
	modLabelCell.SetTextColor(Style.TitleColor)
	modLabelCell.SetSelectable(false)
	t.SetCell(1, 0, modLabelCell)
	p.modCell = tview.NewTableCell("")
	p.modCell.SetAlign(tview.AlignRight)
	t.SetCell(1, 1, p.modCell)
	return t
}

// PreviewEntry previews a listed row. Directories get the directory
// summary, image files get meta rows plus a pending blit, anything else a
// text preview.
func (p *previewerPanel) PreviewEntry(entry files.EntryWithDirPath) {
	name := entry.Name()
	fullName := entry.FullName()
	p.SetTitle(name)

	p.sizeCell.SetText("")
	p.modCell.SetText("")
	if info, err := osStat(fullName); err == nil && !info.IsDir() {
		p.sizeCell.SetText(fsutils.GetSizeShortText(info.Size()))
		p.modCell.SetText(fsutils.FormatModTime(info.ModTime(), time.Now()))
	}

	var previewer viewers.Previewer
	if entry.IsDir() {
		previewer = p.dirPreviewer
	} else {
		previewer = p.getFilePreviewer(name)
	}

	if _, isImage := previewer.(*viewers.ImagePreviewer); isImage {
		p.imagePath = fullName
	} else {
		p.clearImage()
	}

	p.setPreviewer(previewer)
	p.previewer.Preview(entry)
}

// PreviewDir previews the directory at path directly. The parent marker row
// has no entry of its own, only the directory it ascends to.
func (p *previewerPanel) PreviewDir(path string) {
	p.SetTitle(filepath.Base(path))
	p.sizeCell.SetText("")
	p.modCell.SetText("")
	p.clearImage()
	p.setPreviewer(p.dirPreviewer)
	p.dirPreviewer.PreviewPath(path)
}

func (p *previewerPanel) getFilePreviewer(name string) viewers.Previewer {
	if kitty.IsImageFile(name) {
		if imagePreviewer, ok := p.previewer.(*viewers.ImagePreviewer); ok {
			return imagePreviewer
		}
		return viewers.NewImagePreviewer()
	}
	if textPreviewer, ok := p.previewer.(*viewers.TextPreviewer); ok {
		return textPreviewer
	}
	return viewers.NewTextPreviewer(p.syntaxStyle, p.textPreviewMax)
}

func (p *previewerPanel) setPreviewer(previewer viewers.Previewer) {
	if p.previewer == previewer {
		return
	}
	if p.previewer != nil {
		if main := p.previewer.Main(); main != nil {
			p.RemoveItem(main)
		}
	}
	p.previewer = previewer
	if previewer != nil {
		if main := previewer.Main(); main != nil {
			p.AddItem(main, 0, 1, false)
		}
	}
}

// clearImage forgets any pending blit and deletes what the terminal still
// shows. Without the delete the previous image keeps floating over whatever
// the pane draws next.
func (p *previewerPanel) clearImage() {
	p.imagePath = ""
	if !p.imageShown {
		return
	}
	p.imageShown = false
	_ = p.renderer.Clear()
}

// Draw renders the pane normally, then blits the pending image over it with
// the pane's screen rectangle. A failed blit skips the image for this frame
// and leaves the meta rows visible.
func (p *previewerPanel) Draw(screen tcell.Screen) {
	p.Flex.Draw(screen)
	if p.imagePath == "" {
		return
	}
	x, y, width, height := p.GetRect()
	if err := p.renderer.Render(p.imagePath, x, y, width, height); err != nil {
		return
	}
	p.imageShown = true
}

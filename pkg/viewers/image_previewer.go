package viewers

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/rivo/tview"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/riff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var _ Previewer = (*ImagePreviewer)(nil)

// ImagePreviewer fills the preview pane's text cells with image metadata.
// The pixels themselves are blitted over those cells by the kitty renderer
// during draw; the meta rows show through wherever the image does not cover.
type ImagePreviewer struct {
	metaTable *MetaTable
}

func NewImagePreviewer() *ImagePreviewer {
	previewer := &ImagePreviewer{
		metaTable: NewMetaTable(),
	}
	previewer.metaTable.SetSelectable(true, true)
	return previewer
}

func (p *ImagePreviewer) Preview(entry files.EntryWithDirPath) {
	p.metaTable.SetMeta(p.GetMeta(entry.FullName()))
}

func (p *ImagePreviewer) Main() tview.Primitive {
	return p.metaTable
}

// GetMeta decodes just the image header. Unreadable or undecodable files
// yield nil.
func (p *ImagePreviewer) GetMeta(path string) *Meta {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil
	}
	main := MetaGroup{
		ID:    "main",
		Title: "Format: " + strings.ToUpper(format),
	}
	main.Records = append(main.Records,
		&MetaRecord{
			ID:         "width",
			Title:      "Width",
			Value:      strconv.Itoa(cfg.Width),
			ValueAlign: AlignRight,
		},
		&MetaRecord{
			ID:         "height",
			Title:      "Height",
			Value:      strconv.Itoa(cfg.Height),
			ValueAlign: AlignRight,
		},
	)
	return &Meta{
		Groups: []*MetaGroup{&main},
	}
}

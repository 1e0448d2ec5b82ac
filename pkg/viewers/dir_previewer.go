package viewers

import (
	"os"
	"strconv"
	"time"

	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/manish-ach/Tmages/pkg/fsutils"
	"github.com/rivo/tview"
)

var _ Previewer = (*DirPreviewer)(nil)

// DirPreviewer summarises a directory without entering it: how many folders
// and files it holds, their combined size, and when the directory itself
// last changed.
type DirPreviewer struct {
	metaTable *MetaTable
}

func NewDirPreviewer() *DirPreviewer {
	return &DirPreviewer{
		metaTable: NewMetaTable(),
	}
}

func (p *DirPreviewer) Preview(entry files.EntryWithDirPath) {
	p.PreviewPath(entry.FullName())
}

// PreviewPath previews the directory at path directly. Rows like the parent
// marker have no dir entry of their own, only a target path.
func (p *DirPreviewer) PreviewPath(path string) {
	p.metaTable.SetMeta(p.GetMeta(path))
}

func (p *DirPreviewer) Main() tview.Primitive {
	return p.metaTable
}

// GetMeta reads the directory once. Unreadable directories yield nil.
func (p *DirPreviewer) GetMeta(path string) *Meta {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var folders, regular int
	var totalSize int64
	for _, child := range children {
		if child.IsDir() {
			folders++
			continue
		}
		regular++
		if info, infoErr := child.Info(); infoErr == nil {
			totalSize += info.Size()
		}
	}
	main := MetaGroup{
		ID:    "main",
		Title: "Directory",
	}
	main.Records = append(main.Records,
		&MetaRecord{
			ID:         "folders",
			Title:      "Folders",
			Value:      strconv.Itoa(folders),
			ValueAlign: AlignRight,
		},
		&MetaRecord{
			ID:         "files",
			Title:      "Files",
			Value:      strconv.Itoa(regular),
			ValueAlign: AlignRight,
		},
		&MetaRecord{
			ID:         "size",
			Title:      "Files size",
			Value:      fsutils.GetSizeShortText(totalSize),
			ValueAlign: AlignRight,
		},
	)
	if info, statErr := os.Stat(path); statErr == nil {
		main.Records = append(main.Records, &MetaRecord{
			ID:    "modified",
			Title: "Modified",
			Value: fsutils.FormatModTime(info.ModTime(), time.Now()),
		})
	}
	return &Meta{
		Groups: []*MetaGroup{&main},
	}
}

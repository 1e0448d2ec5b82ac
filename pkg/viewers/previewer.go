package viewers

import (
	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/rivo/tview"
)

// Previewer renders the selected entry into a tview primitive. Previews run
// on the event-loop thread, one per navigation event; there is no background
// work, so by the time the screen redraws the primitive is current.
type Previewer interface {
	Preview(entry files.EntryWithDirPath)
	Main() tview.Primitive
}

// Meta describes a file as grouped title/value rows.
type Meta struct {
	Groups []*MetaGroup
}

type MetaGroup struct {
	ID      string
	Title   string
	Records []*MetaRecord
}

type MetaRecord struct {
	ID         string
	Title      string
	Value      string
	ValueAlign Align
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

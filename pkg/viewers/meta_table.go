package viewers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MetaTable renders a Meta as a two-column table: one bold row per group
// title, one indented row per record.
type MetaTable struct {
	*tview.Table
}

func NewMetaTable() *MetaTable {
	return &MetaTable{Table: tview.NewTable()}
}

// SetMeta replaces the table contents. A nil meta clears the table.
func (t *MetaTable) SetMeta(meta *Meta) {
	t.Clear()
	if meta == nil {
		return
	}
	row := 0
	for _, group := range meta.Groups {
		t.SetCell(row, 0, tview.NewTableCell(group.Title).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
		row++
		for _, record := range group.Records {
			t.SetCell(row, 0, tview.NewTableCell("  "+record.Title))
			valueCell := tview.NewTableCell(record.Value)
			if record.ValueAlign == AlignRight {
				valueCell.SetAlign(tview.AlignRight)
			}
			t.SetCell(row, 1, valueCell)
			row++
		}
	}
}

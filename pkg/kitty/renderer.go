// Package kitty emits Kitty graphics protocol sequences to display raster
// images inside a rectangle of the terminal's character grid.
//
// Protocol reference: https://sw.kovidgoyal.net/kitty/graphics-protocol/
package kitty

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var osReadFile = os.ReadFile

// deleteSeq removes every image currently placed on the screen.
const deleteSeq = "\x1b_Ga=d\x1b\\"

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// IsImageFile reports whether name carries one of the raster extensions the
// preview understands, case-insensitive. Render itself transmits whatever
// bytes the file holds, so gating on this check is the caller's job.
func IsImageFile(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Renderer writes Kitty graphics sequences to a single output stream,
// os.Stdout in production. Keeping every raw escape byte behind this one
// writer is what lets the rest of the draw pipeline stay backend-agnostic.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

type flusher interface {
	Flush() error
}

// Render transmits the image file at path and places it inside the cell
// rectangle (x, y, width, height). The placement is inset by 2 cells on each
// axis: 1 for the protocol's 1-based origin plus 1 for the border the caller
// draws around the region; the extent shrinks by the same 2 cells, floored
// at zero. A prior image is deleted in the same payload, and the whole
// payload goes out in one write so the image lands atomically with the next
// text frame. A read failure returns before anything is written.
func (r *Renderer) Render(path string, x, y, width, height int) error {
	data, err := osReadFile(path)
	if err != nil {
		return err
	}
	payload := base64.StdEncoding.EncodeToString(data)

	col := x + 2
	row := y + 2
	cols := width - 2
	if cols < 0 {
		cols = 0
	}
	rows := height - 2
	if rows < 0 {
		rows = 0
	}

	var b strings.Builder
	b.Grow(len(deleteSeq) + len(payload) + 64)
	b.WriteString(deleteSeq)
	fmt.Fprintf(&b, "\x1b_Gf=100,a=T,C=1,q=2,X=%d,Y=%d,c=%d,r=%d;%s\x1b\\",
		col, row, cols, rows, payload)
	if _, err = io.WriteString(r.out, b.String()); err != nil {
		return err
	}
	return r.flush()
}

// Clear deletes whatever image is on screen. The preview panel calls it when
// the selection moves off an image file, so stale pixels never outlive the
// selection.
func (r *Renderer) Clear() error {
	if _, err := io.WriteString(r.out, deleteSeq); err != nil {
		return err
	}
	return r.flush()
}

func (r *Renderer) flush() error {
	if f, ok := r.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

package tmages

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"strings"
	"testing"

	"github.com/manish-ach/Tmages/pkg/files"
	"github.com/manish-ach/Tmages/pkg/kitty"
	"github.com/manish-ach/Tmages/pkg/viewers"
	"github.com/stretchr/testify/assert"
)

func newTestPanel(t *testing.T) (*previewerPanel, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return newPreviewerPanel(kitty.NewRenderer(out), "dracula", 64*1024), out
}

func entryFor(dir, name string, isDir bool) files.EntryWithDirPath {
	return *files.NewEntryWithDirPath(files.NewDirEntry(name, isDir), dir)
}

func TestPreviewerPanel_PreviewEntry(t *testing.T) {
	t.Run("image_file_sets_pending_blit", func(t *testing.T) {
		dir := makeTestDir(t, map[string]string{"cat.png": "fake-png"})
		p, _ := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "cat.png", false))

		assert.Equal(t, "cat.png", p.GetTitle())
		assert.Equal(t, filepath.Join(dir, "cat.png"), p.imagePath)
		assert.NotEqual(t, "", p.sizeCell.Text)
		assert.NotEqual(t, "", p.modCell.Text)
		_, isImage := p.previewer.(*viewers.ImagePreviewer)
		assert.True(t, isImage)
	})

	t.Run("text_file_previews_content", func(t *testing.T) {
		dir := makeTestDir(t, map[string]string{"notes.txt": "hello world"})
		p, _ := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "notes.txt", false))

		assert.Equal(t, "", p.imagePath)
		textPreviewer, isText := p.previewer.(*viewers.TextPreviewer)
		if assert.True(t, isText) {
			assert.Contains(t, textPreviewer.GetText(true), "hello world")
		}
	})

	t.Run("directory_uses_dir_previewer", func(t *testing.T) {
		dir := makeTestDir(t, map[string]string{"sub/": ""})
		p, _ := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "sub", true))

		assert.Equal(t, "", p.imagePath)
		assert.Same(t, p.dirPreviewer, p.previewer)
	})

	t.Run("missing_file_leaves_cells_blank", func(t *testing.T) {
		dir := t.TempDir()
		p, _ := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "ghost.txt", false))

		assert.Equal(t, "", p.sizeCell.Text)
		assert.Equal(t, "", p.modCell.Text)
		textPreviewer, isText := p.previewer.(*viewers.TextPreviewer)
		if assert.True(t, isText) {
			assert.Contains(t, textPreviewer.GetText(true), "Failed to read file")
		}
	})

	t.Run("reuses_text_previewer_between_files", func(t *testing.T) {
		dir := makeTestDir(t, map[string]string{"notes.txt": "one", "read.me": "two"})
		p, _ := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "notes.txt", false))
		first := p.previewer
		p.PreviewEntry(entryFor(dir, "read.me", false))

		assert.Same(t, first, p.previewer)
		assert.Equal(t, 3, p.GetItemCount())
	})

	t.Run("reuses_image_previewer_between_files", func(t *testing.T) {
		dir := makeTestDir(t, map[string]string{"cat.png": "fake", "dog.jpg": "fake"})
		p, _ := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "cat.png", false))
		first := p.previewer
		p.PreviewEntry(entryFor(dir, "dog.jpg", false))

		assert.Same(t, first, p.previewer)
		assert.Equal(t, filepath.Join(dir, "dog.jpg"), p.imagePath)
	})

	t.Run("leaving_image_clears_it", func(t *testing.T) {
		dir := makeTestDir(t, map[string]string{"cat.png": "fake", "notes.txt": "text"})
		p, out := newTestPanel(t)

		p.PreviewEntry(entryFor(dir, "cat.png", false))
		p.imageShown = true
		p.PreviewEntry(entryFor(dir, "notes.txt", false))

		assert.Equal(t, "", p.imagePath)
		assert.False(t, p.imageShown)
		assert.True(t, strings.HasSuffix(out.String(), "\x1b_Ga=d\x1b\\"))
	})
}

func TestPreviewerPanel_PreviewDir(t *testing.T) {
	dir := makeTestDir(t, map[string]string{"a.txt": "alpha", "sub/": ""})
	p, _ := newTestPanel(t)
	p.imagePath = "/pending/cat.png"

	p.PreviewDir(dir)

	assert.Equal(t, filepath.Base(dir), p.GetTitle())
	assert.Equal(t, "", p.imagePath)
	assert.Equal(t, "", p.sizeCell.Text)
	assert.Equal(t, "", p.modCell.Text)
	assert.Same(t, p.dirPreviewer, p.previewer)
}

func TestPreviewerPanel_Draw(t *testing.T) {
	t.Run("blits_pending_image", func(t *testing.T) {
		raw := "fake-png"
		dir := makeTestDir(t, map[string]string{"cat.png": raw})
		p, out := newTestPanel(t)
		p.PreviewEntry(entryFor(dir, "cat.png", false))

		screen := newSimScreen(t, 50, 25)
		p.SetRect(0, 0, 40, 20)
		p.Draw(screen)

		assert.True(t, p.imageShown)
		assert.Contains(t, out.String(), "\x1b_Ga=d\x1b\\")
		assert.Contains(t, out.String(),
			"X=2,Y=2,c=38,r=18;"+base64.StdEncoding.EncodeToString([]byte(raw)))
	})

	t.Run("skips_frame_when_blit_fails", func(t *testing.T) {
		dir := t.TempDir()
		p, out := newTestPanel(t)
		p.PreviewEntry(entryFor(dir, "missing.png", false))
		assert.Equal(t, filepath.Join(dir, "missing.png"), p.imagePath)

		screen := newSimScreen(t, 50, 25)
		p.SetRect(0, 0, 40, 20)
		p.Draw(screen)

		assert.False(t, p.imageShown)
		assert.Equal(t, 0, out.Len())
	})

	t.Run("no_image_writes_nothing", func(t *testing.T) {
		p, out := newTestPanel(t)

		screen := newSimScreen(t, 50, 25)
		p.SetRect(0, 0, 40, 20)
		p.Draw(screen)

		assert.Equal(t, 0, out.Len())
	})
}

func TestPreviewerPanel_ClearImageIsIdempotent(t *testing.T) {
	dir := makeTestDir(t, map[string]string{"cat.png": "fake"})
	p, out := newTestPanel(t)
	p.PreviewEntry(entryFor(dir, "cat.png", false))
	p.imageShown = true

	p.clearImage()
	written := out.Len()
	assert.NotZero(t, written)

	p.clearImage()
	assert.Equal(t, written, out.Len())
}

package tmages

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/manish-ach/Tmages/pkg/browse"
	"github.com/manish-ach/Tmages/pkg/files/osfile"
	"github.com/manish-ach/Tmages/pkg/kitty"
	"github.com/manish-ach/Tmages/pkg/tmages/tmstate"
	"github.com/rivo/tview"
)

// stateRecorder captures persisted-state traffic so tests never touch
// ~/.tmages.
type stateRecorder struct {
	savedDir     string
	savedEntries []string
	saved        *tmstate.State
}

func (r *stateRecorder) lastSavedEntry() string {
	if len(r.savedEntries) == 0 {
		return ""
	}
	return r.savedEntries[len(r.savedEntries)-1]
}

func stubStateSeams(t *testing.T) *stateRecorder {
	t.Helper()
	rec := &stateRecorder{}
	origSaveDir := saveCurrentDir
	origSaveEntry := saveCurrentDirEntry
	origGetState := getSavedState
	t.Cleanup(func() {
		saveCurrentDir = origSaveDir
		saveCurrentDirEntry = origSaveEntry
		getSavedState = origGetState
	})
	saveCurrentDir = func(dir string) { rec.savedDir = dir }
	saveCurrentDirEntry = func(name string) { rec.savedEntries = append(rec.savedEntries, name) }
	getSavedState = func() (*tmstate.State, error) {
		if rec.saved != nil {
			return rec.saved, nil
		}
		return &tmstate.State{}, nil
	}
	return rec
}

// makeTestDir builds a directory tree under a fresh temp dir: names ending
// in "/" become subdirectories, everything else a file with the given
// content.
func makeTestDir(t *testing.T, entries map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range entries {
		full := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// buildBrowser assumes the state seams are already stubbed.
func buildBrowser(t *testing.T, dir string) (*Browser, *bytes.Buffer) {
	t.Helper()
	state, err := browse.NewState(context.Background(), osfile.NewStore("/"), dir)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	browser := NewBrowser(context.Background(), tview.NewApplication(), state, kitty.NewRenderer(out), "dracula", 64*1024)
	return browser, out
}

func newTestBrowser(t *testing.T, dir string) (*Browser, *stateRecorder, *bytes.Buffer) {
	t.Helper()
	rec := stubStateSeams(t)
	browser, out := buildBrowser(t, dir)
	return browser, rec, out
}

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	return screen
}

func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		primary, combining, _, _ := screen.GetContent(x, y)
		if primary == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(primary)
		for _, r := range combining {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keyEvent(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

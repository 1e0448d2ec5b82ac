package tmages

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/manish-ach/Tmages/pkg/browse"
	"github.com/manish-ach/Tmages/pkg/files/osfile"
	"github.com/manish-ach/Tmages/pkg/fsutils"
	"github.com/manish-ach/Tmages/pkg/kitty"
	"github.com/manish-ach/Tmages/pkg/tmages/tmsettings"
	"github.com/manish-ach/Tmages/pkg/tmages/tmstate"
	"github.com/rivo/tview"
)

var loadSettings = tmsettings.Load
var getSavedCurrentDir = tmstate.GetCurrentDir

type options struct {
	startDir string
	settings *tmsettings.Settings
	out      io.Writer
}

type Option func(*options)

// WithStartDir opens the browser in dir instead of the restored or
// configured directory.
func WithStartDir(dir string) Option {
	return func(o *options) { o.startDir = dir }
}

// WithSettings bypasses the config file.
func WithSettings(settings *tmsettings.Settings) Option {
	return func(o *options) { o.settings = settings }
}

// WithOutput redirects the terminal graphics escapes, which normally go
// straight to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

func Main() {
	app := tview.NewApplication()
	if err := SetupApp(app); err != nil {
		fmt.Print(err)
		return
	}
	if err := app.Run(); err != nil {
		fmt.Print(err)
	}
}

// SetupApp wires the browser into app: resolves settings, lists the first
// directory the start chain yields, and sets the root primitive. An error
// means no directory in the chain could be listed.
func SetupApp(app *tview.Application, o ...Option) error {
	opts := options{out: os.Stdout}
	for _, option := range o {
		option(&opts)
	}

	settings := opts.settings
	if settings == nil {
		var err error
		if settings, err = loadSettings(); err != nil {
			settings = tmsettings.Default()
		}
	}

	ctx := context.Background()
	store := osfile.NewStore("/")
	renderer := kitty.NewRenderer(opts.out)

	var state *browse.State
	var err error
	for _, dir := range startDirs(opts.startDir, settings) {
		if dir == "" {
			continue
		}
		absDir, absErr := filepath.Abs(dir)
		if absErr != nil {
			err = absErr
			continue
		}
		if state, err = browse.NewState(ctx, store, absDir); err == nil {
			break
		}
	}
	if state == nil {
		return fmt.Errorf("no start directory could be listed: %w", err)
	}

	browser := NewBrowser(ctx, app, state, renderer, settings.SyntaxStyle, settings.TextPreviewMax)
	app.EnableMouse(false)
	app.SetRoot(browser, true)
	app.SetFocus(browser.entries)
	return nil
}

// startDirs is the fallback chain for the first listing: the explicit -dir
// flag, the directory persisted by the previous session, the configured
// start_dir, home, the process working directory.
func startDirs(flagDir string, settings *tmsettings.Settings) []string {
	return []string{
		flagDir,
		getSavedCurrentDir(),
		fsutils.ExpandHome(settings.StartDir),
		fsutils.HomeDir(),
		".",
	}
}

// Package theme loads the secondary theme script once rendering has run.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/foodee/internal/dom"
)

// DefaultScript is the theme behaviour script, relative to the site root.
const DefaultScript = "js/main.js"

// LoadedFlag is the body data flag set once the script has been added.
const LoadedFlag = "theme-loaded"

// ErrThemeLoad marks a theme script that could not be loaded.
var ErrThemeLoad = errors.New("theme script could not be loaded")

// LoadError describes a failed theme load.
type LoadError struct {
	Script string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading theme script %s: %v", e.Script, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports LoadError as an ErrThemeLoad.
func (e *LoadError) Is(target error) bool { return target == ErrThemeLoad }

// Loader adds the theme script to a page.
type Loader struct {
	script  string
	checker AssetChecker
	logger  *slog.Logger
}

// NewLoader creates a Loader for script. A nil checker treats the script as
// always available.
func NewLoader(script string, checker AssetChecker, logger *slog.Logger) *Loader {
	if script == "" {
		script = DefaultScript
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{script: script, checker: checker, logger: logger}
}

// Script returns the script path the loader adds.
func (l *Loader) Script() string { return l.script }

// Load appends <script src=...> to the body and sets the loaded flag. A page
// that already carries the flag is left alone. When the script is not
// available a *LoadError is returned and the page is not modified.
func (l *Loader) Load(ctx context.Context, page *dom.Page) error {
	if page.BodyFlag(LoadedFlag) {
		l.logger.Debug("theme already loaded", "script", l.script)
		return nil
	}
	if l.checker != nil {
		if err := l.checker.Check(ctx, l.script); err != nil {
			return &LoadError{Script: l.script, Err: err}
		}
	}

	body := page.Body()
	if body.Length() == 0 {
		return &LoadError{Script: l.script, Err: errors.New("page has no body")}
	}
	body.AppendNodes(&html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "src", Val: l.script}},
	})
	page.SetBodyFlag(LoadedFlag)
	return nil
}

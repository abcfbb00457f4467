// Package goquery replays saved viewer pages from disk. It implements the
// browser interface over static HTML so extraction rules can be tried
// offline against a snapshot.
package goquery

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/drivetext"
)

// Ensure types implement the browser interfaces at compile time.
var (
	_ drivetext.BrowserLauncher = (*Launcher)(nil)
	_ drivetext.Browser         = (*Browser)(nil)
)

// Launcher opens snapshot browsers.
type Launcher struct{}

// NewLauncher creates a new Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Launch returns an empty snapshot browser.
func (l *Launcher) Launch(ctx context.Context) (drivetext.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Browser{}, nil
}

// Browser serves documents parsed from local HTML files. Frames are entered
// through their srcdoc attribute or a src relative to the snapshot file.
// A snapshot never changes, so SendAdvance only counts.
type Browser struct {
	dir     string
	top     *goquery.Document
	current *goquery.Document

	advances int
	closed   bool
}

type element struct {
	sel      *goquery.Selection
	selector string
}

func (e *element) Selector() string {
	return e.selector
}

// Navigate loads the snapshot at location, a file path or file:// URL.
func (b *Browser) Navigate(ctx context.Context, location string) error {
	if err := b.check(ctx); err != nil {
		return err
	}

	path, err := snapshotPath(location)
	if err != nil {
		return err
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	b.dir = filepath.Dir(path)
	b.top = doc
	b.current = doc
	return nil
}

// FindElement returns the first match of selector in the current document.
// The document is static so the timeout is never waited on.
func (b *Browser) FindElement(ctx context.Context, selector string, _ time.Duration) (drivetext.Element, bool, error) {
	if err := b.check(ctx); err != nil {
		return nil, false, err
	}
	if b.current == nil {
		return nil, false, drivetext.Errorf(drivetext.EINVALID, "no document loaded")
	}

	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, false, drivetext.Errorf(drivetext.EINVALID, "invalid selector %q: %v", selector, err)
	}

	sel := b.current.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil, false, nil
	}
	return &element{sel: sel, selector: selector}, true, nil
}

// SwitchToFrame parses the document of the iframe el.
func (b *Browser) SwitchToFrame(ctx context.Context, el drivetext.Element) error {
	if err := b.check(ctx); err != nil {
		return err
	}

	e, ok := el.(*element)
	if !ok {
		return drivetext.Errorf(drivetext.EINVALID, "element %q does not belong to this browser", el.Selector())
	}

	if srcdoc, ok := e.sel.Attr("srcdoc"); ok {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(srcdoc))
		if err != nil {
			return drivetext.Errorf(drivetext.EINVALID, "parsing frame srcdoc: %v", err)
		}
		b.current = doc
		return nil
	}

	src, _ := e.sel.Attr("src")
	path, err := b.framePath(src)
	if err != nil {
		return err
	}
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	b.current = doc
	return nil
}

// SwitchToTopLevel returns to the snapshot's own document.
func (b *Browser) SwitchToTopLevel(ctx context.Context) error {
	if err := b.check(ctx); err != nil {
		return err
	}
	b.current = b.top
	return nil
}

// SendAdvance records the signal.
func (b *Browser) SendAdvance(ctx context.Context) error {
	if err := b.check(ctx); err != nil {
		return err
	}
	b.advances++
	return nil
}

// Advances reports how many advance signals were received.
func (b *Browser) Advances() int {
	return b.advances
}

// BodyText returns the text content of the current document's body.
func (b *Browser) BodyText(ctx context.Context) (string, error) {
	if err := b.check(ctx); err != nil {
		return "", err
	}
	if b.current == nil {
		return "", drivetext.Errorf(drivetext.EINVALID, "no document loaded")
	}
	return b.current.Find("body").Text(), nil
}

// Close releases the parsed documents. Close is safe to call multiple times.
func (b *Browser) Close() error {
	b.closed = true
	b.top = nil
	b.current = nil
	return nil
}

func (b *Browser) check(ctx context.Context) error {
	if b.closed {
		return drivetext.Errorf(drivetext.EINVALID, "browser is closed")
	}
	return ctx.Err()
}

// framePath resolves a frame src against the snapshot directory. Remote
// frames are not part of a snapshot.
func (b *Browser) framePath(src string) (string, error) {
	if src == "" {
		return "", drivetext.Errorf(drivetext.ENOTFOUND, "frame has no document")
	}
	u, err := url.Parse(src)
	if err != nil {
		return "", drivetext.Errorf(drivetext.EINVALID, "invalid frame src %q", src)
	}
	switch u.Scheme {
	case "":
		return filepath.Join(b.dir, filepath.FromSlash(u.Path)), nil
	case "file":
		return filepath.FromSlash(u.Path), nil
	default:
		return "", drivetext.Errorf(drivetext.ENOTFOUND, "frame %q is not in the snapshot", src)
	}
}

func snapshotPath(location string) (string, error) {
	if location == "" {
		return "", drivetext.Errorf(drivetext.EINVALID, "snapshot path required")
	}
	if strings.HasPrefix(location, "file://") {
		u, err := url.Parse(location)
		if err != nil {
			return "", drivetext.Errorf(drivetext.EINVALID, "invalid snapshot URL %q", location)
		}
		return filepath.FromSlash(u.Path), nil
	}
	return location, nil
}

func readDocument(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, drivetext.Errorf(drivetext.ENOTFOUND, "snapshot %q not found", path)
		}
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, drivetext.Errorf(drivetext.EINVALID, "parsing %s: %v", path, err)
	}
	return doc, nil
}

// Package fs exports meetings as Markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/fwojciec/meetparse"
	"golang.org/x/text/unicode/norm"
)

// Slug turns a meeting title into a file name stem: accents are dropped,
// letters lower-cased and every other run of characters becomes "-".
// Returns "meeting" when nothing is left.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(title) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "meeting"
	}
	return b.String()
}

// FileName returns the Markdown file name for m, prefixed by its date
// when known so exported meetings sort chronologically.
func FileName(m *meetparse.Meeting) string {
	if m.Date != nil {
		return m.Date.Format(meetparse.DateLayout) + "-" + Slug(m.Title) + ".md"
	}
	return Slug(m.Title) + ".md"
}

// FormatMeeting formats a meeting with YAML frontmatter followed by its
// details in Markdown. Unknown fields are left out of the frontmatter.
func FormatMeeting(m *meetparse.Meeting, details string) string {
	var b strings.Builder
	b.WriteString("---\n")
	field(&b, "title", m.Title)
	if m.Date != nil {
		field(&b, "date", m.Date.Format(meetparse.DateLayout))
	}
	field(&b, "time", m.Time)
	field(&b, "venue", m.Venue)
	field(&b, "video", m.VideoURL)
	field(&b, "map", m.MapURL)
	field(&b, "source", m.SourceURL)
	b.WriteString("---\n")
	if details != "" {
		b.WriteString("\n")
		b.WriteString(details)
		b.WriteString("\n")
	}
	return b.String()
}

func field(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %q\n", key, value)
}

// Ensure Writer implements meetparse.MeetingWriter at compile time.
var _ meetparse.MeetingWriter = (*Writer)(nil)

// Writer writes meetings as Markdown files to a directory.
// It is safe for concurrent use.
type Writer struct {
	baseDir string
	conv    meetparse.Converter

	mu    sync.Mutex
	taken map[string]bool
}

// NewWriter creates a new Writer that writes to baseDir, converting
// details with conv.
func NewWriter(baseDir string, conv meetparse.Converter) *Writer {
	return &Writer{baseDir: baseDir, conv: conv, taken: make(map[string]bool)}
}

// CreateMeeting writes m to disk. Meetings that would share a file name
// get a numeric suffix.
func (w *Writer) CreateMeeting(ctx context.Context, m *meetparse.Meeting) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	details, err := w.conv.Convert(m.Details)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(w.baseDir, w.claim(FileName(m)))
	return os.WriteFile(path, []byte(FormatMeeting(m, details)), 0644)
}

// claim reserves name, or the first free "-2", "-3", ... variant of it.
func (w *Writer) claim(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	base := strings.TrimSuffix(name, ".md")
	for n := 2; w.taken[name]; n++ {
		name = fmt.Sprintf("%s-%d.md", base, n)
	}
	w.taken[name] = true
	return name
}

package section

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/virtualboard/sectionscan/internal/config"
	"github.com/virtualboard/sectionscan/internal/util"
)

type phase int

const (
	// phaseIdle: no section is open.
	phaseIdle phase = iota
	// phaseOpen: a wrapper marker was seen; waiting for the title and content markers.
	phaseOpen
	// phaseContent: the content marker was seen; counting closing markers.
	phaseContent
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseOpen:
		return "open"
	case phaseContent:
		return "content"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Scanner finds collapsible sections in a line-oriented document. A Scanner is not safe for
// concurrent use but may be reused for several inputs.
type Scanner struct {
	settings config.ScanSettings
	log      *logrus.Entry

	phase   phase
	current Record
	result  Result
}

// NewScanner creates a scanner using the markers and thresholds from opts.
func NewScanner(opts *config.Options) *Scanner {
	return &Scanner{
		settings: opts.Scan,
		log:      opts.Logger().WithField("component", "section-scanner"),
	}
}

// ScanFile reads the whole file into memory and scans it. Open and read failures are returned unchanged
// apart from wrapping, so errors.Is(err, fs.ErrNotExist) holds for a missing file.
func (s *Scanner) ScanFile(path string) (Result, error) {
	lines, err := util.ReadLines(path)
	if err != nil {
		return Result{}, err
	}
	res := s.ScanLines(lines)
	res.Path = path
	return res, nil
}

// Scan reads r to EOF and scans its lines.
func (s *Scanner) Scan(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input: %w", err)
	}
	return s.ScanLines(util.SplitLines(string(data))), nil
}

// ScanLines runs a single forward pass over lines, numbered from 1.
func (s *Scanner) ScanLines(lines []string) Result {
	s.phase = phaseIdle
	s.current = Record{}
	s.result = Result{Lines: len(lines), Records: []Record{}, Discarded: []Discarded{}}

	for i, line := range lines {
		s.step(i+1, line)
	}
	if s.phase != phaseIdle {
		s.discard(len(lines), ReasonUnclosed)
	}

	s.log.WithFields(logrus.Fields{
		"lines":     len(lines),
		"records":   len(s.result.Records),
		"discarded": len(s.result.Discarded),
	}).Debug("scan complete")

	res := s.result
	s.result = Result{}
	return res
}

func (s *Scanner) step(n int, line string) {
	if strings.Contains(line, s.settings.Markers.Wrapper) {
		s.open(n)
		return
	}
	switch s.phase {
	case phaseOpen:
		s.stepOpen(n, line)
	case phaseContent:
		s.stepContent(n, line)
	}
}

func (s *Scanner) open(n int) {
	if s.phase != phaseIdle {
		s.discard(n, ReasonReopened)
	}
	s.current = Record{Start: n}
	s.phase = phaseOpen
}

func (s *Scanner) stepOpen(n int, line string) {
	if s.takeTitle(line) {
		return
	}
	if strings.Contains(line, s.settings.Markers.Content) {
		s.current.ContentStart = n
		s.phase = phaseContent
	}
}

// stepContent keeps title and content markers ahead of closing markers, so a repeated content
// marker moves ContentStart without touching ContentEnd.
func (s *Scanner) stepContent(n int, line string) {
	if s.takeTitle(line) {
		return
	}
	if strings.Contains(line, s.settings.Markers.Content) {
		s.current.ContentStart = n
		return
	}
	if !s.isClosing(line) {
		return
	}
	if s.current.ContentEnd == 0 {
		s.current.ContentEnd = n
		return
	}

	s.current.End = n
	s.result.Records = append(s.result.Records, s.current)
	s.log.WithFields(logrus.Fields{
		"start": s.current.Start,
		"end":   n,
		"name":  s.current.Name,
	}).Debug("section closed")
	s.current = Record{}
	s.phase = phaseIdle
}

func (s *Scanner) takeTitle(line string) bool {
	marker := s.settings.Markers.Title
	idx := strings.Index(line, marker)
	if idx < 0 {
		return false
	}
	s.current.Name = extractTitle(line[idx+len(marker):], s.settings.Markers.TitleEnd)
	s.current.HasName = true
	return true
}

// isClosing reports whether line is a bare closing marker shallow enough to close a section block.
func (s *Scanner) isClosing(line string) bool {
	m := s.settings.Markers
	return strings.TrimSpace(line) == m.Closing &&
		!strings.Contains(line, m.Content) &&
		Indent(line) <= s.settings.MaxIndent
}

func (s *Scanner) discard(n int, reason DiscardReason) {
	s.result.Discarded = append(s.result.Discarded, Discarded{
		Start:  s.current.Start,
		Name:   s.current.Name,
		Line:   n,
		Reason: reason,
	})
	s.log.WithFields(logrus.Fields{
		"start":  s.current.Start,
		"line":   n,
		"phase":  s.phase.String(),
		"reason": reason,
	}).Info("discarding unfinished section")
}

// extractTitle returns the trimmed text before end, or the whole remainder when end is absent.
func extractTitle(rest, end string) string {
	if i := strings.Index(rest, end); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

// Indent counts the leading whitespace characters of line, as classified by unicode.IsSpace.
// The \x1c-\x1f separators are not whitespace here, unlike Python's str.lstrip; that difference is kept.
func Indent(line string) int {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(trimmed)])
}

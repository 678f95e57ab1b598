package section

// Record is one collapsible section whose content block and wrapper were both closed.
// Line numbers are 1-indexed; zero means the marker was not seen.
type Record struct {
	Start        int    `json:"start"`
	Name         string `json:"name"`
	HasName      bool   `json:"has_name"`
	ContentStart int    `json:"content_start"`
	ContentEnd   int    `json:"content_end"`
	End          int    `json:"end"`
}

// ContentLines is the raw difference between the content closing and opening lines.
// It is not an inclusive line count.
func (r Record) ContentLines() int {
	return r.ContentEnd - r.ContentStart
}

// DisplayName returns the title, or placeholder when no title marker was found.
func (r Record) DisplayName(placeholder string) string {
	if !r.HasName {
		return placeholder
	}
	return r.Name
}

// DiscardReason explains why an in-progress section never became a Record.
type DiscardReason string

const (
	// ReasonReopened means another wrapper marker started before the section closed.
	ReasonReopened DiscardReason = "reopened"
	// ReasonUnclosed means the input ended before the section closed.
	ReasonUnclosed DiscardReason = "unclosed"
)

// Discarded describes a section that was dropped from the output.
type Discarded struct {
	Start  int           `json:"start"`
	Name   string        `json:"name,omitempty"`
	Line   int           `json:"line"`
	Reason DiscardReason `json:"reason"`
}

// Result is the outcome of scanning one input.
type Result struct {
	Path      string      `json:"path,omitempty"`
	Lines     int         `json:"lines"`
	Records   []Record    `json:"records"`
	Discarded []Discarded `json:"discarded"`
}

package section

import "fmt"

// Severity classifies a check finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem reported by Check.
type Finding struct {
	Severity Severity `json:"severity"`
	Line     int      `json:"line"`
	Section  string   `json:"section"`
	Message  string   `json:"message"`
}

// CheckReport aggregates the findings for one scan.
type CheckReport struct {
	Sections int       `json:"sections"`
	Errors   int       `json:"errors"`
	Warnings int       `json:"warnings"`
	Findings []Finding `json:"findings"`
}

// Failed reports whether the check should fail; strict mode also fails on warnings.
func (c CheckReport) Failed(strict bool) bool {
	return c.Errors > 0 || (strict && c.Warnings > 0)
}

// Check verifies start <= content_start <= content_end <= end for every record and turns
// untitled and discarded sections into warnings.
func Check(res Result, placeholder string) CheckReport {
	report := CheckReport{Sections: len(res.Records), Findings: []Finding{}}

	add := func(sev Severity, line int, name, msg string) {
		report.Findings = append(report.Findings, Finding{Severity: sev, Line: line, Section: name, Message: msg})
		if sev == SeverityError {
			report.Errors++
		} else {
			report.Warnings++
		}
	}

	for _, rec := range res.Records {
		name := rec.DisplayName(placeholder)
		bounds := []struct {
			label string
			line  int
		}{
			{"start", rec.Start},
			{"content_start", rec.ContentStart},
			{"content_end", rec.ContentEnd},
			{"end", rec.End},
		}
		for i := 1; i < len(bounds); i++ {
			prev, cur := bounds[i-1], bounds[i]
			if prev.line > cur.line {
				add(SeverityError, rec.Start, name,
					fmt.Sprintf("%s (line %d) is after %s (line %d)", prev.label, prev.line, cur.label, cur.line))
			}
		}
		if !rec.HasName {
			add(SeverityWarning, rec.Start, name, "section has no title")
		}
	}

	for _, d := range res.Discarded {
		name := d.Name
		if name == "" {
			name = placeholder
		}
		switch d.Reason {
		case ReasonReopened:
			add(SeverityWarning, d.Start, name, fmt.Sprintf("section re-opened at line %d before it closed", d.Line))
		default:
			add(SeverityWarning, d.Start, name, "section never closed before end of file")
		}
	}

	return report
}

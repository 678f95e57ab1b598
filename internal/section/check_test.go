package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanResult(t *testing.T) {
	res := Result{Records: []Record{
		{Start: 1, Name: "Foo", HasName: true, ContentStart: 3, ContentEnd: 8, End: 10},
	}}

	report := Check(res, "None")
	assert.Equal(t, 1, report.Sections)
	assert.Zero(t, report.Errors)
	assert.Zero(t, report.Warnings)
	assert.Empty(t, report.Findings)
	assert.False(t, report.Failed(true))
}

func TestCheckOrderingViolation(t *testing.T) {
	res := Result{Records: []Record{
		{Start: 1, Name: "Swapped", HasName: true, ContentStart: 4, ContentEnd: 3, End: 5},
	}}

	report := Check(res, "None")
	require.Len(t, report.Findings, 1)
	assert.Equal(t, 1, report.Errors)
	assert.Equal(t, SeverityError, report.Findings[0].Severity)
	assert.Equal(t, "Swapped", report.Findings[0].Section)
	assert.Equal(t, "content_start (line 4) is after content_end (line 3)", report.Findings[0].Message)
	assert.True(t, report.Failed(false))
}

func TestCheckWarnings(t *testing.T) {
	res := Result{
		Records: []Record{{Start: 6, ContentStart: 7, ContentEnd: 8, End: 9}},
		Discarded: []Discarded{
			{Start: 1, Name: "First", Line: 6, Reason: ReasonReopened},
			{Start: 10, Line: 12, Reason: ReasonUnclosed},
		},
	}

	report := Check(res, "None")
	assert.Zero(t, report.Errors)
	assert.Equal(t, 3, report.Warnings)
	require.Len(t, report.Findings, 3)

	assert.Equal(t, "section has no title", report.Findings[0].Message)
	assert.Equal(t, "None", report.Findings[0].Section)
	assert.Equal(t, "section re-opened at line 6 before it closed", report.Findings[1].Message)
	assert.Equal(t, "First", report.Findings[1].Section)
	assert.Equal(t, "section never closed before end of file", report.Findings[2].Message)
	assert.Equal(t, 10, report.Findings[2].Line)

	assert.False(t, report.Failed(false))
	assert.True(t, report.Failed(true))
}

package section

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Supported report formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// WriteText prints one block per record: a blank line, the name, the wrapper range, the content range and
// the raw content line difference.
func WriteText(w io.Writer, records []Record, placeholder string) error {
	for _, rec := range records {
		_, err := fmt.Fprintf(w, "\n%s\n  Section: lines %d-%d\n  Content: lines %d-%d\n  Lines in content: %d\n",
			rec.DisplayName(placeholder), rec.Start, rec.End, rec.ContentStart, rec.ContentEnd, rec.ContentLines())
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders the records as a table with one row per section.
func WriteTable(w io.Writer, records []Record, placeholder string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Section", "Lines", "Content", "Content Lines")
	for _, rec := range records {
		row := []string{
			rec.DisplayName(placeholder),
			lineRange(rec.Start, rec.End),
			lineRange(rec.ContentStart, rec.ContentEnd),
			strconv.Itoa(rec.ContentLines()),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}
	return table.Render()
}

func lineRange(from, to int) string {
	return fmt.Sprintf("%d-%d", from, to)
}

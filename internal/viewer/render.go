package viewer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgHiWhite, color.BgBlue, color.Bold)
	loadingColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Render writes the snapshot as a text screen.
func Render(w io.Writer, s Snapshot) error {
	if s.Status == StatusLoading {
		loadingColor.Fprintln(w, "Loading...")
	}
	if s.Err != nil {
		errorColor.Fprintf(w, "Error: %v\n", s.Err)
	}
	fmt.Fprintf(w, "Search by name: %q  Search by location: %q\n\n", s.Filter.Name, s.Filter.Location)

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	headers := make([]string, len(Columns))
	for i, col := range Columns {
		headers[i] = col.Header
		if col.Key == s.SortKey {
			if s.SortDesc {
				headers[i] += " ▼"
			} else {
				headers[i] += " ▲"
			}
		}
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range s.Page {
		cells := make([]string, len(Columns))
		for i, col := range Columns {
			cells[i] = col.Value(row)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// colour after alignment so escape codes do not skew column widths
	header, body, _ := strings.Cut(buf.String(), "\n")
	headerColor.Fprintln(w, header)
	io.WriteString(w, body)

	_, err := fmt.Fprintf(w, "\n<< < > >>  Page %d of %d  (%d records)\n", s.PageIndex+1, s.PageCount, s.Total)
	return err
}

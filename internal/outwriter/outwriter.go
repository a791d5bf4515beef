// Package outwriter has the grid rendering logic for activity tables.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/gad/internal/contract"
	"github.com/huangsam/gad/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// OutWriter renders activity matrices as bordered terminal tables.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteActivity lays out the given matrices as one bordered table and
// writes it to w, preceded by a styled title line. All matrices share one
// intensity scale so block colors stay comparable across subjects.
func (ow *OutWriter) WriteActivity(w io.Writer, title string, matrices []schema.ActivityMatrix, rc *contract.RenderConfig) error {
	scale := schema.NewLevelScale(matrices...)

	data, err := buildTableData(matrices, scale, rc, maxLabelWidth(rc))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, contract.ColorizeSubject(title)); err != nil {
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(borderSymbols(rc.Border)),
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenRows:    tw.On,
					BetweenColumns: tw.On,
				},
			},
		})),
	)
	table.Configure(func(c *tablewriter.Config) {
		c.Header.Formatting.AutoFormat = tw.Off
		if rc.Display == schema.NumericDisplay {
			c.Row.Alignment.Global = tw.AlignRight
		} else {
			c.Row.Alignment.Global = tw.AlignCenter
		}
	})
	table.Header(data.headers)

	if err := table.Bulk(data.rows); err != nil {
		return &contract.RenderError{Msg: err.Error()}
	}
	if err := table.Render(); err != nil {
		return &contract.RenderError{Msg: err.Error()}
	}

	_, err = fmt.Fprintln(w)
	return err
}

// borderSymbols maps a border style to its tablewriter symbol set.
func borderSymbols(style schema.BorderStyle) tw.BorderStyle {
	switch style {
	case schema.SingleBorder:
		return tw.StyleLight
	case schema.DoubleBorder:
		return tw.StyleDouble
	default:
		return tw.StyleASCII
	}
}

// maxLabelWidth calculates the maximum width for subject labels based on
// terminal width and grid configuration. Labels keep at least their
// leading characters so subjects stay distinguishable.
func maxLabelWidth(rc *contract.RenderConfig) int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		// Conservative default for narrow terminals and CI
		termWidth = 80
	}

	// Reserve space for the grid cells, their borders and the totals column.
	gridCols := schema.DaysPerWeek
	if rc.Orientation == schema.HorizontalOrientation && rc.Width > 0 {
		gridCols = rc.Width
	}
	reserved := gridCols*6 + 20

	available := termWidth - reserved
	if available < 10 {
		return 10
	}
	if available > 40 {
		return 40
	}
	return available
}

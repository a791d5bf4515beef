package outwriter

import (
	"strconv"
	"strings"

	"github.com/huangsam/gad/internal/contract"
	"github.com/huangsam/gad/schema"
)

// tableData is the border-free layout of one activity table: a header row
// plus data rows, ready to hand to tablewriter.
type tableData struct {
	headers []string
	rows    [][]string
}

// buildTableData lays out the matrices according to the render config.
//
// Vertical orientation places weeks as rows and days-of-week as columns;
// horizontal transposes this. When the configured width is smaller than
// the natural number of grid columns, the grid is truncated to the most
// recent columns; truncation is deterministic and favors recent activity.
func buildTableData(matrices []schema.ActivityMatrix, scale schema.LevelScale, rc *contract.RenderConfig, labelWidth int) (*tableData, error) {
	if len(matrices) == 0 {
		return nil, &contract.RenderError{Msg: "no subjects to lay out"}
	}

	numWeeks := matrices[0].NumWeeks()
	if numWeeks == 0 {
		return nil, &contract.RenderError{Msg: "empty activity window"}
	}

	switch rc.Orientation {
	case schema.VerticalOrientation:
		return buildVertical(matrices, scale, rc, labelWidth, numWeeks), nil
	case schema.HorizontalOrientation:
		return buildHorizontal(matrices, scale, rc, labelWidth, numWeeks), nil
	default:
		return nil, &contract.RenderError{Msg: "unknown orientation " + string(rc.Orientation)}
	}
}

// buildVertical lays out weeks as table rows with 7 weekday columns. The
// width bound trims leading weekday columns, keeping the most recent days
// of each week stride.
func buildVertical(matrices []schema.ActivityMatrix, scale schema.LevelScale, rc *contract.RenderConfig, labelWidth, numWeeks int) *tableData {
	dayCols := schema.DaysPerWeek
	if rc.Width > 0 && rc.Width < dayCols {
		dayCols = rc.Width
	}
	dayOff := schema.DaysPerWeek - dayCols

	headers := []string{"Author", "Week"}
	for j := range dayCols {
		headers = append(headers, matrices[0].Days[dayOff+j].Date.Weekday().String()[:3])
	}
	if rc.Totals {
		headers = append(headers, "Total")
	}

	var rows [][]string
	for i := range matrices {
		m := &matrices[i]
		for w := range numWeeks {
			week := m.Week(w)
			row := make([]string, 0, len(headers))
			row = append(row, blockLabel(m, w == 0, labelWidth))
			row = append(row, week[0].Date.Format("Jan 02"))
			for j := range dayCols {
				row = append(row, renderCell(week[dayOff+j].Count, scale, rc.Display))
			}
			if rc.Totals {
				if w == 0 {
					row = append(row, strconv.Itoa(m.Total))
				} else {
					row = append(row, "")
				}
			}
			rows = append(rows, row)
		}
	}

	if rc.Legend {
		rows = append(rows, legendRow(scale, rc, len(headers), 2, dayCols))
	}

	return &tableData{headers: headers, rows: rows}
}

// buildHorizontal lays out days-of-week as table rows with one column per
// week. The width bound trims the oldest weeks. Totals render as one
// extra row per subject with the sum under the most recent week.
func buildHorizontal(matrices []schema.ActivityMatrix, scale schema.LevelScale, rc *contract.RenderConfig, labelWidth, numWeeks int) *tableData {
	weekCols := numWeeks
	if rc.Width > 0 && rc.Width < weekCols {
		weekCols = rc.Width
	}
	weekOff := numWeeks - weekCols

	headers := []string{"Author", "Day"}
	for w := range weekCols {
		headers = append(headers, matrices[0].Week(weekOff+w)[0].Date.Format("Jan 02"))
	}

	var rows [][]string
	for i := range matrices {
		m := &matrices[i]
		for j := range schema.DaysPerWeek {
			row := make([]string, 0, len(headers))
			row = append(row, blockLabel(m, j == 0, labelWidth))
			row = append(row, m.Days[j].Date.Weekday().String()[:3])
			for w := range weekCols {
				row = append(row, renderCell(m.Week(weekOff+w)[j].Count, scale, rc.Display))
			}
			rows = append(rows, row)
		}
		if rc.Totals {
			row := make([]string, len(headers))
			row[1] = "Total"
			row[len(row)-1] = strconv.Itoa(m.Total)
			rows = append(rows, row)
		}
	}

	if rc.Legend {
		rows = append(rows, legendRow(scale, rc, len(headers), 2, weekCols))
	}

	return &tableData{headers: headers, rows: rows}
}

// blockLabel renders the subject label cell for a row: the truncated
// subject name on the first row of its block, empty otherwise.
func blockLabel(m *schema.ActivityMatrix, first bool, labelWidth int) string {
	if !first {
		return ""
	}
	return contract.ColorizeSubject(contract.TruncateLabel(m.Subject, labelWidth))
}

// renderCell draws one day bucket either as its literal count or as a
// colored block glyph picked from the bucket's intensity level.
func renderCell(count int, scale schema.LevelScale, display schema.DisplayType) string {
	if display == schema.BlockDisplay {
		return contract.ColorizeBlock(scale.Level(count))
	}
	if count > 999 {
		return "999+"
	}
	return strconv.Itoa(count)
}

// legendRow builds the synthetic legend subject row. Each intensity level
// gets its own grid column when they fit; narrower grids fold the whole
// legend into the first grid column.
func legendRow(scale schema.LevelScale, rc *contract.RenderConfig, rowLen, gridStart, gridCols int) []string {
	entries := make([]string, schema.NumLevels)
	for level := range schema.NumLevels {
		entries[level] = legendEntry(level, scale, rc.Display)
	}

	row := make([]string, rowLen)
	row[0] = contract.ColorizeSubject(schema.LegendSubject)
	if gridCols >= len(entries) {
		copy(row[gridStart:], entries)
	} else {
		row[gridStart] = strings.Join(entries, "  ")
	}
	return row
}

// legendEntry renders one legend cell: the level's glyph plus the count
// range it covers.
func legendEntry(level int, scale schema.LevelScale, display schema.DisplayType) string {
	rangeText := "0"
	if level > 0 {
		lo, hi := scale.Bounds(level)
		switch {
		case lo > hi:
			rangeText = "-"
		case lo == hi:
			rangeText = strconv.Itoa(lo)
		default:
			rangeText = strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
		}
	}
	if display == schema.BlockDisplay {
		return contract.ColorizeBlock(level) + " " + rangeText
	}
	return rangeText
}

package contract

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/gad/schema"
)

// BlockGlyph is the fixed-width glyph used for block display cells.
const BlockGlyph = "◼"

// levelColors maps each intensity level to its block color. Level 0 is a
// faint placeholder so empty days stay visible in the grid.
var levelColors = [schema.NumLevels]*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.FgYellow),
	color.New(color.FgHiRed, color.Bold),
}

// subjectColor styles author and repository labels.
var subjectColor = color.New(color.FgHiWhite, color.Bold)

// ColorizeBlock returns the block glyph colored for the given level.
// Levels outside the valid range clamp to the nearest edge.
func ColorizeBlock(level int) string {
	if level < 0 {
		level = 0
	}
	if level > schema.MaxLevel {
		level = schema.MaxLevel
	}
	return levelColors[level].Sprint(BlockGlyph)
}

// ColorizeSubject returns a styled subject label for table output.
func ColorizeSubject(label string) string {
	return subjectColor.Sprint(label)
}

// TruncateLabel shortens a subject label to maxLen runes, keeping the
// leading characters so labels stay distinguishable by their prefix.
func TruncateLabel(label string, maxLen int) string {
	if maxLen <= 0 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= maxLen {
		return label
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

// SetupLogging installs the process-wide slog handler. Verbosity 0 shows
// warnings only; 1 adds info; 2 and above adds debug.
func SetupLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning to stderr.
func LogWarn(msg string, err error) {
	fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

package lite

import "context"

type optionKey string

const linesOptionKey optionKey = "lines_options"

type linesOptions struct {
	Lines int
}

// WithLines stores the default worker line count used by Run when it is
// called with lines <= 0.
func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, linesOptionKey, linesOptions{Lines: lines})
}

// LinesFrom returns the line count stored by WithLines, or defaultLines.
func LinesFrom(ctx context.Context, defaultLines int) int {
	options, ok := ctx.Value(linesOptionKey).(linesOptions)
	if ok && options.Lines > 0 {
		return options.Lines
	}
	return defaultLines
}

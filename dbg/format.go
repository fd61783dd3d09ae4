package dbg

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/robust/advanced"
	"github.com/osuushi/robust/expansion"
)

// Formatter renders predicate results for humans. Colors are only useful on a
// terminal, so they can be switched off.
type Formatter struct {
	au aurora.Aurora
}

func NewFormatter(colors bool) Formatter {
	return Formatter{au: aurora.NewAurora(colors)}
}

func (f Formatter) Orientation(o advanced.Orientation) string {
	switch o {
	case advanced.Counterclockwise:
		return f.au.Cyan(o.String()).String()
	case advanced.Clockwise:
		return f.au.Magenta(o.String()).String()
	}
	return f.au.Yellow(o.String()).String()
}

// Path shows exact evaluations in red, since they are the interesting ones.
func (f Formatter) Path(p advanced.Path) string {
	if p == advanced.ExactPath {
		return f.au.Red(p.String()).String()
	}
	return f.au.Green(p.String()).String()
}

// Result is a one line summary of a predicate evaluation.
func (f Formatter) Result(det float64, p advanced.Path) string {
	return strings.Join([]string{
		formatFloat(det),
		f.Orientation(advanced.Classify(det)),
		f.Path(p),
	}, " ")
}

// Expansion lists the components from least to most significant. The most
// significant component decides the sign, so it is printed in bold.
func (f Formatter) Expansion(e expansion.Expansion) string {
	parts := make([]string, len(e))
	for i, c := range e {
		parts[i] = formatFloat(c)
	}
	if len(parts) > 0 {
		last := len(parts) - 1
		parts[last] = f.au.Bold(parts[last]).String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Shortest representation that reads back to the same float64
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

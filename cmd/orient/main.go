package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/osuushi/robust"
	"github.com/osuushi/robust/advanced"
	"github.com/osuushi/robust/dbg"
	"github.com/osuushi/robust/internal/oracle"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the predicates. Input on stdin is one query per
// line, numbers separated by spaces or commas. For example, this asks whether
// (0, 1) is left of the line from (0, 0) to (1, 0):
//
//	echo "0 0  1 0  0 1" | orient eval
var (
	app     = kingpin.New("orient", "Evaluate robust orientation predicates.")
	verbose = app.Flag("verbose", "Log every evaluation.").Short('v').Envar("ORIENT_VERBOSE").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Envar("ORIENT_NO_COLOR").Bool()

	evalCmd   = app.Command("eval", "Evaluate one predicate per input line: 6 numbers for 2D, 12 for 3D.")
	evalDim   = evalCmd.Flag("dim", "Dimension of the predicate.").Default("2").Envar("ORIENT_DIM").Enum("2", "3")
	evalCheck = evalCmd.Flag("check", "Cross-check every result against exact arbitrary precision arithmetic.").Envar("ORIENT_CHECK").Bool()

	turnsCmd = app.Command("turns", "Classify the turn at every interior vertex of line strings. One point per line, blank line between line strings.")

	signmapCmd   = app.Command("signmap", "Render naive and robust signs around a nearly degenerate line as a PNG.")
	signmapOut   = signmapCmd.Flag("out", "PNG file to write. Defaults to a randomly named file in the temp directory.").Envar("ORIENT_SIGNMAP_OUT").String()
	signmapUlps  = signmapCmd.Flag("ulps", "Query points along each axis, one ulp apart.").Default("64").Envar("ORIENT_SIGNMAP_ULPS").Int()
	signmapScale = signmapCmd.Flag("scale", "Pixels per query point.").Default("4").Envar("ORIENT_SIGNMAP_SCALE").Int()
	signmapShow  = signmapCmd.Flag("show", "Print the image in the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	app.FatalIfError(err, "setting up logging")
	format := dbg.NewFormatter(!*noColor)

	switch command {
	case evalCmd.FullCommand():
		app.FatalIfError(runEval(logger, format, os.Stdin, os.Stdout, *evalDim == "3", *evalCheck), "eval")
	case turnsCmd.FullCommand():
		app.FatalIfError(runTurns(logger, format, os.Stdin, os.Stdout), "turns")
	case signmapCmd.FullCommand():
		app.FatalIfError(runSignMap(logger, *signmapOut, *signmapUlps, *signmapScale, *signmapShow), "signmap")
	}
}

func newLogger(verbose bool) (logr.Logger, error) {
	var z *zap.Logger
	var err error
	if verbose {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return logr.Discard(), errors.Wrap(err, "creating zap logger")
	}
	return zapr.NewLogger(z), nil
}

func runEval(logger logr.Logger, format dbg.Formatter, in io.Reader, out io.Writer, threeD bool, check bool) error {
	records, err := readRecords(in)
	if err != nil {
		return err
	}

	want := 6
	if threeD {
		want = 12
	}
	mismatches := 0
	for _, r := range records {
		if len(r.values) == 0 {
			continue
		}
		if len(r.values) != want {
			return errors.Errorf("line %d: expected %d numbers, got %d", r.line, want, len(r.values))
		}

		var det float64
		var path advanced.Path
		var exactSign int
		v := r.values
		if threeD {
			a, b, c, d := advanced.Point3{v[0], v[1], v[2]}, advanced.Point3{v[3], v[4], v[5]},
				advanced.Point3{v[6], v[7], v[8]}, advanced.Point3{v[9], v[10], v[11]}
			det, path = advanced.Orient3DPath(a, b, c, d)
			if check {
				exactSign = oracle.Sign3(a, b, c, d)
			}
		} else {
			a, b, c := advanced.Point2{v[0], v[1]}, advanced.Point2{v[2], v[3]}, advanced.Point2{v[4], v[5]}
			det, path = advanced.Orient2DPath(a, b, c)
			if check {
				exactSign = oracle.Sign2(a, b, c)
			}
		}
		logger.V(1).Info("evaluated", "line", r.line, "coordinates", v, "result", det, "path", path.String())

		fmt.Fprintf(out, "%d: %s\n", r.line, format.Result(det, path))
		if check && int(robust.Classify(det)) != exactSign {
			mismatches++
			logger.Error(nil, "sign disagrees with exact arithmetic", "line", r.line, "result", det, "exactSign", exactSign)
		}
	}
	if mismatches > 0 {
		return errors.Errorf("%d results disagree with exact arithmetic", mismatches)
	}
	return nil
}

func runTurns(logger logr.Logger, format dbg.Formatter, in io.Reader, out io.Writer) error {
	lineStrings, err := readLineStrings(in)
	if err != nil {
		return err
	}
	for i, ls := range lineStrings {
		turns, err := robust.Turns(ls)
		if err != nil {
			return errors.Wrapf(err, "line string %d", i)
		}
		logger.V(1).Info("line string", "index", i, "vertices", ls.NumCoords(), "stride", ls.Stride())
		fmt.Fprintf(out, "line string %d:\n", i)
		for j, turn := range turns {
			fmt.Fprintf(out, "  vertex %d: %s\n", j+1, format.Orientation(robust.Classify(turn)))
		}
	}
	return nil
}

func runSignMap(logger logr.Logger, path string, ulps, scale int, show bool) error {
	if path == "" {
		path = dbg.ReadableFileName(os.TempDir(), "signmap", ".png")
	}
	// Shewchuk's example: the line through (12, 12) and (24, 24), probed just
	// next to (0.5, 0.5), which lies on it.
	m := dbg.SignMap{
		A:      advanced.Point2{12, 12},
		B:      advanced.Point2{24, 24},
		Origin: advanced.Point2{0.5, 0.5},
		Size:   ulps,
		Scale:  scale,
	}
	if err := m.SavePNG(path); err != nil {
		return err
	}
	fast, exact, disagreements := m.Evaluate().Count()
	logger.Info("wrote sign map", "path", path, "fast", fast, "exact", exact, "naiveDisagreements", disagreements)
	if show {
		dbg.Show(path)
	}
	return nil
}

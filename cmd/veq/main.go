package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/veqgo/veq"
	"github.com/veqgo/veq/graph"
)

var intervalRE = regexp.MustCompile(`^\[(-?\d+\.?\d*),\s*(-?\d+\.?\d*)\]$`)

func main() {
	var (
		domain, rnge  string
		step          float64
		noaxis, debug bool
		prec          int
		width, height int
		tval          float64
		workers       int
	)
	flag.StringVar(&domain, "d", "[-1, 1]", "initial domain as [lo, hi]")
	flag.StringVar(&rnge, "r", "[-1, 1]", "initial range as [lo, hi]")
	flag.Float64Var(&step, "s", 0, "enable gridlines with step n")
	flag.BoolVar(&noaxis, "noaxis", false, "disable axis")
	flag.IntVar(&prec, "p", 2, "number precision for text formatting")
	flag.IntVar(&width, "width", 80, "plot width in columns")
	flag.IntVar(&height, "height", 24, "plot height in rows")
	flag.Float64Var(&tval, "t", 0, "value of t to evaluate at")
	flag.IntVar(&workers, "workers", 1, "parallel sampling goroutines")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: veq [flags] equation")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if prec < 0 {
		log.Fatal().Int("precision", prec).Msg("minimum precision is zero")
	}
	if width < 1 || height < 1 {
		log.Fatal().Int("width", width).Int("height", height).Msg("plot size must be positive")
	}

	src := strings.ToLower(flag.Arg(0))
	e, err := veq.Parse(src)
	if err != nil {
		log.Fatal().Err(err).Str("equation", src).Msg("cannot parse equation")
	}
	log.Debug().Strs("vars", e.Vars()).Stringer("tree", e).Msg("parsed equation")

	v := graph.Viewport{
		Domain: parseInterval(domain, "-d"),
		Range:  parseInterval(rnge, "-r"),
	}
	os.Stdout.WriteString(render(e, v, width, height, tval, step, !noaxis, workers))
	fmt.Printf("f(x, t) = %s\n", src)
	fmt.Printf("domain: [%.*f, %.*f]  range: [%.*f, %.*f]  t = %.*f\n",
		prec, v.Domain[0], prec, v.Domain[1],
		prec, v.Range[0], prec, v.Range[1],
		prec, tval)
}

func parseInterval(s, name string) [2]float64 {
	m := intervalRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		log.Fatal().Str("flag", name).Str("value", s).Msg("invalid interval, want [lo, hi]")
	}
	lo, _ := strconv.ParseFloat(m[1], 64)
	hi, _ := strconv.ParseFloat(m[2], 64)
	if lo >= hi {
		log.Fatal().Str("flag", name).Str("value", s).Msg("interval is empty")
	}
	return [2]float64{lo, hi}
}

// render draws the grid, axes, and curve into a cell buffer and returns it
// as lines of text, top row first.
func render(e *veq.Expr, v graph.Viewport, width, height int, tval, step float64, axis bool, workers int) string {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = make([]rune, width)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}

	if step > 0 {
		drawGrid(cells, v, step)
	}
	if axis {
		drawAxis(cells, v)
	}

	for _, line := range (graph.Sampler{Workers: workers}).Sample(e, v, width, tval) {
		for _, p := range line {
			col := int(math.Round(v.Col(p.X, width)))
			row := int(math.Round(v.Row(p.Y, height)))
			if col < 0 || col >= width || row < 0 || row >= height {
				continue
			}
			cells[row][col] = '*'
		}
	}

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func drawGrid(cells [][]rune, v graph.Viewport, step float64) {
	height, width := len(cells), len(cells[0])
	for gx := math.Ceil(v.Domain[0]/step) * step; gx <= v.Domain[1]; gx += step {
		col := int(math.Round(v.Col(gx, width)))
		if col < 0 || col >= width {
			continue
		}
		for row := 0; row < height; row++ {
			cells[row][col] = '.'
		}
	}
	for gy := math.Ceil(v.Range[0]/step) * step; gy <= v.Range[1]; gy += step {
		row := int(math.Round(v.Row(gy, height)))
		if row < 0 || row >= height {
			continue
		}
		for col := 0; col < width; col++ {
			cells[row][col] = '.'
		}
	}
}

func drawAxis(cells [][]rune, v graph.Viewport) {
	height, width := len(cells), len(cells[0])
	ycol := int(math.Round(v.Col(0, width)))
	xrow := int(math.Round(v.Row(0, height)))
	if ycol >= 0 && ycol < width {
		for row := 0; row < height; row++ {
			cells[row][ycol] = '|'
		}
	}
	if xrow >= 0 && xrow < height {
		for col := 0; col < width; col++ {
			cells[xrow][col] = '-'
		}
	}
	if ycol >= 0 && ycol < width && xrow >= 0 && xrow < height {
		cells[xrow][ycol] = '+'
	}
}

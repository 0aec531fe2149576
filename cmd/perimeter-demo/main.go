// perimeter-demo renders a single compass frame to stdout and checks
// that every marker lies on the rounded border.
//
// Run: GOWORK=off go run ./cmd/perimeter-demo/ --heading 30 --rays
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/wesen/sanpo/internal/compassui"
	"github.com/wesen/sanpo/internal/heading"
	"github.com/wesen/sanpo/internal/logging"
	"github.com/wesen/sanpo/internal/overlay"
	"github.com/wesen/sanpo/pkg/cellbuf"
	"github.com/wesen/sanpo/pkg/drawutil"
	"github.com/wesen/sanpo/pkg/perimeter"
)

const boundaryEps = 1e-6

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("perimeter-demo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	hdg := fs.Float64("heading", 0, "heading in degrees")
	width := fs.Int("width", 40, "canvas width in cells")
	height := fs.Int("height", 12, "canvas height in cells")
	radius := fs.Float64("radius", 12, "corner radius in dots")
	padding := fs.Float64("padding", 0, "inset from the canvas edge in dots")
	outline := fs.Bool("outline", true, "draw the border")
	rays := fs.Bool("rays", false, "draw dashed rays from the center to each marker")
	plain := fs.Bool("plain", false, "print without colors")
	verbose := fs.BoolP("verbose", "v", false, "log geometry details to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("canvas must be at least 1x1 cells, got %dx%d", *width, *height)
	}

	lg := logging.Console(stderr).Level(zerolog.InfoLevel)
	if *verbose {
		lg = lg.Level(zerolog.DebugLevel)
	}
	spec := compassui.CanvasSpec(*width, *height, compassui.Options{
		CornerRadius: *radius,
		Padding:      *padding,
	})
	rect, r := spec.Effective()
	lg.Debug().Interface("rect", rect).Float64("radius", r).Msg("effective border")

	now := time.Now()
	ov := overlay.New(spec, overlay.WithDuration(0))
	ov.SetHeading(*hdg, now)

	var extra []func(*cellbuf.Canvas, cellbuf.StyleKey)
	if *rays {
		extra = append(extra, func(c *cellbuf.Canvas, style cellbuf.StyleKey) {
			ctr := rect.Center()
			for _, mk := range ov.Markers() {
				drawutil.DashedDotLine(c,
					int(math.Floor(ctr.X)), int(math.Floor(ctr.Y)),
					int(math.Floor(mk.Current.X)), int(math.Floor(mk.Current.Y)),
					style)
			}
		})
	}
	buf := compassui.RenderCanvas(ov, *width, *height, *outline, now, extra...)
	buf.CenterString(*height/2, fmt.Sprintf("%.0f° %s", perimeter.Normalize(*hdg), heading.ShortCompass(*hdg)), 0)

	if *plain {
		fmt.Fprintln(stdout, buf.Plain())
	} else {
		fmt.Fprintln(stdout, buf.Render(compassui.Styles(ov)))
	}
	fmt.Fprintln(stdout)

	label := lipgloss.NewStyle().Bold(true)
	var bad []string
	for _, mk := range ov.Markers() {
		on := perimeter.OnBoundary(spec, mk.Current, boundaryEps)
		status := "ok"
		if !on {
			status = "OFF BORDER"
			bad = append(bad, mk.ID.Label())
			lg.Error().Str("marker", mk.ID.Label()).Float64("x", mk.Current.X).Float64("y", mk.Current.Y).Msg("marker is off the border")
		}
		cx, cy := cellbuf.CellOf(mk.Current.X, mk.Current.Y)
		line := fmt.Sprintf("%s  angle=%6.1f°  dot=(%7.2f,%7.2f)  cell=(%d,%d)  %s",
			mk.ID.Label(), mk.Angle, mk.Current.X, mk.Current.Y, cx, cy, status)
		if !*plain {
			line = label.Foreground(mk.Color).Render(mk.ID.Label()) + line[len(mk.ID.Label()):]
		}
		fmt.Fprintln(stdout, line)
	}
	if len(bad) > 0 {
		return fmt.Errorf("%d marker(s) off the border: %v", len(bad), bad)
	}
	return nil
}

// Command pointsdemo rotates a wireframe cube, projects it onto a
// terminal-sized canvas and prints the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/siiir/points"
	"github.com/siiir/points/logger"
	"github.com/siiir/points/plot"
	"github.com/siiir/points/scalar"
)

func main() {
	var (
		cols    = flag.Int("cols", 72, "canvas width in cells")
		rows    = flag.Int("rows", 36, "canvas height in cells")
		ax      = flag.Float64("ax", 0.5, "rotation about the x axis, radians")
		ay      = flag.Float64("ay", 0.8, "rotation about the y axis, radians")
		az      = flag.Float64("az", 0.0, "rotation about the z axis, radians")
		zoff    = flag.Float64("zoff", 3.0, "camera distance")
		samples = flag.Int("samples", 12, "points sampled per cube edge")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := logger.InfoLevel
	if *verbose {
		level = logger.DebugLevel
	}
	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  level,
		Format: logger.FormatText,
	})

	cube := cubePoints(*samples)
	log.Debug("built cube", "points", len(cube))

	rotated := plot.Rotate(cube, *ax, *ay, *az)
	projected := plot.Project(rotated, *cols, *rows, *zoff)

	canvas := plot.NewCanvas(*cols, *rows)
	marked := canvas.MarkAll(projected, '*')
	fmt.Println(canvas.String())

	var xs, ys []float64
	var far float64
	for _, p := range projected {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	for _, p := range rotated {
		d, err := p.HypotSq()
		if err != nil {
			log.Error("distance overflow", "point", p.String(), "err", err)
			continue
		}
		far = scalar.Max(far, d)
	}

	pr := message.NewPrinter(language.English)
	pr.Printf("marked %d of %d projected points (%d sampled)\n",
		marked, len(projected), len(cube))
	pr.Printf("x range [%.2f, %.2f], y range [%.2f, %.2f], max |p|^2 %.2f\n",
		scalar.Min(xs...), scalar.Max(xs...),
		scalar.Min(ys...), scalar.Max(ys...), far)
	log.Info("done", "marked", marked, "dropped", len(cube)-len(projected))
}

// cubePoints samples the 12 edges of the unit cube centered at the
// origin, n points per edge.
func cubePoints(n int) []points.Point3D[float64] {
	if n < 2 {
		n = 2
	}
	corners := make([]points.Point3D[float64], 0, 8)
	for i := 0; i < 8; i++ {
		x, y, z := -1.0, -1.0, -1.0
		if i&1 != 0 {
			x = 1
		}
		if i&2 != 0 {
			y = 1
		}
		if i&4 != 0 {
			z = 1
		}
		corners = append(corners, points.NewPoint3D(x, y, z))
	}
	seen := make(map[uint64]bool)
	var out []points.Point3D[float64]
	for i, a := range corners {
		for j, b := range corners {
			if i >= j {
				continue
			}
			// Edges connect corners differing in exactly one axis.
			d := b.Sub(a)
			if d.X != 0 && (d.Y != 0 || d.Z != 0) || d.Y != 0 && d.Z != 0 {
				continue
			}
			for s := 0; s < n; s++ {
				t := float64(s) / float64(n-1)
				p := a.Add(points.NewPoint3D(d.X*t, d.Y*t, d.Z*t))
				if h := p.Hash(); !seen[h] {
					seen[h] = true
					out = append(out, p)
				}
			}
		}
	}
	return out
}

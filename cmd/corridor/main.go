// Command corridor composites a corridor band over an image file.
//
// The path is given as a comma-separated list of x:y pairs:
//
//	corridor -in map.png -out masked.png -path 10:10,90:90 -radius 5
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/corridorlab/corridor"
)

func main() {
	var (
		in       = flag.String("in", "", "input image (png, jpeg, webp, tiff)")
		out      = flag.String("out", "corridor.png", "output PNG file")
		pathSpec = flag.String("path", "", "path points as x:y,x:y,...")
		radius   = flag.Int("radius", 20, "corridor radius in pixels")
		fade     = flag.Float64("fade", corridor.DefaultOutsideFade, "outside fade fraction (0..1)")
		alpha    = flag.Float64("alpha", corridor.DefaultMarkerAlpha, "marker opacity (0..1)")
		scale    = flag.Int("scale", corridor.DefaultScale, "supersampling factor")
	)
	flag.Parse()

	if *in == "" || *pathSpec == "" {
		flag.Usage()
		os.Exit(2)
	}

	path, err := parsePath(*pathSpec)
	if err != nil {
		log.Fatalf("bad -path: %v", err)
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer f.Close()

	comp := corridor.NewCompositor(corridor.WithScale(*scale))
	png, err := comp.CompositePNG(f, path, corridor.Style{
		CorridorRadius: *radius,
		OutsideFade:    *fade,
		MarkerAlpha:    *alpha,
	})
	if err != nil {
		log.Fatalf("composite: %v", err)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(png))
}

// parsePath parses "x:y,x:y,..." into points.
func parsePath(spec string) ([]corridor.Point, error) {
	var path []corridor.Point
	for _, pair := range strings.Split(spec, ",") {
		xy := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("expected x:y, got %q", pair)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x in %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y in %q: %w", pair, err)
		}
		path = append(path, corridor.Pt(x, y))
	}
	return path, nil
}

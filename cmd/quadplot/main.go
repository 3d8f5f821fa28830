// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command quadplot renders the nodes and weights of a quadrature rule
// to a PNG image. Each node becomes a stem on the [-1, 1] axis whose
// height is proportional to its weight.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/quad"
)

func main() {
	var (
		family  = flag.String("family", "gauss", "rule family: gauss, lobatto, simpson, simpson38")
		n       = flag.Int("n", 7, "number of evaluation points")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "rule.png", "output file")
		verbose = flag.Bool("v", false, "log construction diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		quad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := buildRule(*family, *n)
	if err != nil {
		log.Fatalf("Failed to build rule: %v", err)
	}

	img := plotRule(r, fmt.Sprintf("%s n=%d", *family, *n), *width, *height)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("Failed to encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *output, err)
	}

	log.Printf("Rule plot saved to %s (%dx%d)\n", *output, *width, *height)
}

func buildRule(family string, n int) (quad.Rule[float64], error) {
	switch family {
	case "gauss":
		return quad.GaussLegendre[float64](n)
	case "lobatto":
		return quad.GaussLobatto[float64](n)
	case "simpson":
		return quad.CompositeSimpson[float64](n)
	case "simpson38":
		return quad.CompositeSimpson38[float64](n)
	}
	return quad.Rule[float64]{}, fmt.Errorf("unknown family %q (want gauss, lobatto, simpson, or simpson38)", family)
}

func plotRule(r quad.Rule[float64], title string, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	const margin = 48
	axisY := h - margin
	plotW := w - 2*margin
	plotH := h - 2*margin

	axisGray := color.RGBA{R: 160, G: 160, B: 160, A: 255}
	stemBlue := color.RGBA{R: 30, G: 80, B: 200, A: 255}

	// Axis with ticks at -1, 0, and 1.
	for x := margin; x <= w-margin; x++ {
		img.Set(x, axisY, axisGray)
	}
	for _, tick := range []float64{-1, 0, 1} {
		px := xToPixel(tick, margin, plotW)
		for y := axisY; y <= axisY+4; y++ {
			img.Set(px, y, axisGray)
		}
	}

	maxWeight := 0.0
	for _, wt := range r.Weights {
		maxWeight = math.Max(maxWeight, wt)
	}

	// One stem per node, scaled so the largest weight spans the plot
	// height.
	for i, x := range r.Nodes {
		px := xToPixel(x, margin, plotW)
		stem := int(math.Round(r.Weights[i] / maxWeight * float64(plotH)))
		for y := axisY - stem; y <= axisY; y++ {
			img.Set(px, y, stemBlue)
		}
		img.Set(px-1, axisY-stem, stemBlue)
		img.Set(px+1, axisY-stem, stemBlue)

		// Per-stem weight labels get unreadable past a dozen nodes.
		if len(r.Nodes) <= 12 {
			label := fmt.Sprintf("%.3f", r.Weights[i])
			drawLabel(img, label, px-len(label)*7/2, axisY-stem-6)
		}
	}

	drawLabel(img, title, margin, margin/2)
	drawLabel(img, "-1", xToPixel(-1, margin, plotW)-7, axisY+18)
	drawLabel(img, "0", xToPixel(0, margin, plotW)-3, axisY+18)
	drawLabel(img, "1", xToPixel(1, margin, plotW)-3, axisY+18)

	return img
}

// xToPixel maps a coordinate in [-1, 1] onto the horizontal plot range.
func xToPixel(x float64, margin, plotW int) int {
	return margin + int(math.Round((x+1)/2*float64(plotW)))
}

func drawLabel(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

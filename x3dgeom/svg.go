package x3dgeom

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
)

// WriteSVG writes the outlines of the Geometry2D elements of the scene
// as an SVG document, for inspection. Coordinates are multiplied by `scale`,
// and the Y axis is flipped so that the shapes are seen from +Z.
func (s *Scene) WriteSVG(w io.Writer, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("invalid scale %g", scale)
	}
	b, ok := s.Bounds()
	if !ok {
		b = Bounds{W: 1, H: 1}
	}
	margin := 0.05 * max(b.W, b.H, 1)
	b = Bounds{X: b.X - margin, Y: b.Y - margin, W: b.W + 2*margin, H: b.H + 2*margin}
	for _, f := range [...]float64{b.X, b.Y, b.X + b.W, b.Y + b.H} {
		if !fitsFixed(f * scale) {
			return fmt.Errorf("scene extent %v does not fit in 26.6 fixed point at scale %g", b, scale)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		b.X*scale, -(b.Y+b.H)*scale, b.W*scale, b.H*scale)
	fmt.Fprintln(bw, `<g transform="scale(1,-1)" fill="none" stroke="black" stroke-linecap="round">`)
	for _, e := range s.Geometry() {
		fmt.Fprintf(bw, "<path d=%q><title>", e.Outline(scale).ToSVGPath())
		title := e.Kind.String()
		if e.ID != "" {
			title += " " + e.ID
		}
		if err := xml.EscapeText(bw, []byte(title)); err != nil {
			return err
		}
		fmt.Fprintln(bw, "</title></path>")
	}
	fmt.Fprintln(bw, "</g>")
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

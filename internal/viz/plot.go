package viz

// PhasePlot maps phase-space data coordinates onto a braille canvas
// with fixed axis bounds. The bounds never rescale to the data, so
// repeated re-renders keep a stable viewport; points outside the bounds
// simply clip.
type PhasePlot struct {
	canvas     *Canvas
	xMax, yMax float64
}

func NewPhasePlot(w, h int, xMax, yMax float64) *PhasePlot {
	return &PhasePlot{
		canvas: NewCanvas(w, h),
		xMax:   xMax,
		yMax:   yMax,
	}
}

func (p *PhasePlot) Clear() { p.canvas.Clear() }

func (p *PhasePlot) Bounds() (xMax, yMax float64) { return p.xMax, p.yMax }

// pixel converts data coordinates to sub-pixel coordinates, with the
// y-axis flipped so the origin sits at the bottom-left.
func (p *PhasePlot) pixel(x, y float64) (int, int) {
	cw := p.canvas.Width * 2
	ch := p.canvas.Height * 4
	px := int(x / p.xMax * float64(cw-1))
	py := ch - 1 - int(y/p.yMax*float64(ch-1))
	return px, py
}

func (p *PhasePlot) Point(x, y float64) {
	px, py := p.pixel(x, y)
	p.canvas.Set(px, py)
}

func (p *PhasePlot) Line(x0, y0, x1, y1 float64) {
	px0, py0 := p.pixel(x0, y0)
	px1, py1 := p.pixel(x1, y1)
	p.canvas.DrawLine(px0, py0, px1, py1)
}

// Marker highlights a single data point, used for the initial condition.
func (p *PhasePlot) Marker(x, y float64) {
	px, py := p.pixel(x, y)
	p.canvas.DrawMarker(px, py)
}

// Crosshair draws a small plus shape, used for the click cursor.
func (p *PhasePlot) Crosshair(x, y float64) {
	px, py := p.pixel(x, y)
	for d := -3; d <= 3; d++ {
		p.canvas.Set(px+d, py)
		p.canvas.Set(px, py+d)
	}
}

func (p *PhasePlot) String() string { return p.canvas.String() }

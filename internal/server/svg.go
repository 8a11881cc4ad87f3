package server

import (
	"fmt"
	"strings"

	"github.com/san-kum/lotkaviz/internal/config"
	"github.com/san-kum/lotkaviz/internal/session"
)

// trajectorySVG renders a frame as an SVG phase plot. The viewBox is
// fixed to the configured display bounds, never autoscaled to the data,
// so successive renders keep a stable viewport.
func trajectorySVG(frame *session.Frame, d config.DisplayConfig, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	toPx := func(x, y float64) (float64, float64) {
		px := x / d.PreyMax * float64(width)
		py := float64(height) - y/d.PredatorMax*float64(height)
		return px, py
	}

	// Faint reference grid every tenth of each axis.
	sb.WriteString(`<g stroke="#222222" stroke-width="1">` + "\n")
	for i := 1; i < 10; i++ {
		gx := float64(i) / 10 * float64(width)
		gy := float64(i) / 10 * float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d"/>
`, gx, gx, height))
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f"/>
`, gy, width, gy))
	}
	sb.WriteString("</g>\n")

	if frame != nil && len(frame.Trajectory) > 1 {
		sb.WriteString(`<path fill="none" stroke="#4499ff" stroke-width="1.5" d="M`)
		for i, st := range frame.Trajectory {
			px, py := toPx(st[0], st[1])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")

		mx, my := toPx(frame.InitialCondition[0], frame.InitialCondition[1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="#ff4444"/>
`, mx, my))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

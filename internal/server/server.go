// Package server is the HTTP host shell: one page serving the phase
// plot with slider and click round-trips. It owns exactly one
// simulation session; requests are serialized at this boundary so the
// core stays single-owner.
package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/san-kum/lotkaviz/internal/config"
	"github.com/san-kum/lotkaviz/internal/session"
	"github.com/san-kum/lotkaviz/internal/volterra"
)

// PortEnv overrides the configured listen port when set.
const PortEnv = "LOTKAVIZ_PORT"

type Server struct {
	cfg  *config.Config
	log  *log.Logger
	tmpl *template.Template

	mu   sync.Mutex
	sess *session.Session
}

func New(cfg *config.Config) *Server {
	return &Server{
		cfg:  cfg,
		log:  log.New(os.Stdout, "lotkaviz: ", log.LstdFlags),
		tmpl: template.Must(template.New("index").Parse(indexTemplate)),
		sess: session.New(cfg.ToParams(), cfg.ToInitial(), cfg.ToGrid()),
	}
}

// Port resolves the listen port: environment override first, then
// config.
func Port(cfg *config.Config) int {
	if v := os.Getenv(PortEnv); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
	}
	return cfg.Port
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", Port(s.cfg))
	s.log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

type pageData struct {
	Params      volterra.Params
	Prey        float64
	Predators   float64
	PreyMax     float64
	PredatorMax float64
	SVG         template.HTML
	Error       string
}

// handleIndex maps one request to one session cycle. Slider values
// arrive with every submit; click coordinates only when the plot was
// actually clicked. Missing or unparseable click fields fall back to
// the stored initial condition.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	in := session.Input{
		Alpha: parseFloat(q.Get("alpha")),
		Beta:  parseFloat(q.Get("beta")),
		Gamma: parseFloat(q.Get("gamma")),
		Delta: parseFloat(q.Get("delta")),
	}
	if cx, cy := parseFloat(q.Get("cx")), parseFloat(q.Get("cy")); cx != nil && cy != nil {
		in.Click = &session.Click{X: *cx, Y: *cy}
	}

	s.mu.Lock()
	frame, err := s.sess.Step(in)
	if err != nil {
		frame = s.sess.Last()
	}
	params := s.sess.Params()
	initial := s.sess.InitialCondition()
	s.mu.Unlock()

	data := pageData{
		Params:      params,
		Prey:        initial[0],
		Predators:   initial[1],
		PreyMax:     s.cfg.Display.PreyMax,
		PredatorMax: s.cfg.Display.PredatorMax,
		SVG:         template.HTML(trajectorySVG(frame, s.cfg.Display, 600, 600)),
	}
	if err != nil {
		s.log.Printf("integration failed: %v", err)
		data.Error = "integration failed for these inputs; showing previous result"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Printf("render: %v", err)
	}
}

func parseFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Lotka-Volterra Phase Space</title>
<style>
body { background: #111; color: #ddd; font-family: monospace; margin: 2em; }
.error { color: #f55; margin: 1em 0; }
label { display: inline-block; width: 14em; }
#plot svg { cursor: crosshair; }
</style>
</head>
<body>
<h1>Lotka-Volterra Phase Space</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<div id="plot">{{.SVG}}</div>
<p>initial condition: ({{printf "%.1f" .Prey}}, {{printf "%.1f" .Predators}}), click the plot to re-seed</p>
<form id="f" method="get">
<p><label>&alpha; (prey growth rate)</label>
<input type="range" name="alpha" min="0.1" max="2.0" step="0.1" value="{{.Params.Alpha}}" onchange="f.submit()"> {{.Params.Alpha}}</p>
<p><label>&beta; (predation rate)</label>
<input type="range" name="beta" min="0.01" max="0.5" step="0.01" value="{{.Params.Beta}}" onchange="f.submit()"> {{.Params.Beta}}</p>
<p><label>&gamma; (predator death rate)</label>
<input type="range" name="gamma" min="0.1" max="2.0" step="0.1" value="{{.Params.Gamma}}" onchange="f.submit()"> {{.Params.Gamma}}</p>
<p><label>&delta; (predator growth rate)</label>
<input type="range" name="delta" min="0.01" max="0.2" step="0.01" value="{{.Params.Delta}}" onchange="f.submit()"> {{.Params.Delta}}</p>
<input type="hidden" name="cx" id="cx">
<input type="hidden" name="cy" id="cy">
</form>
<script>
document.querySelector('#plot svg').addEventListener('click', function (e) {
  var r = this.getBoundingClientRect();
  var x = (e.clientX - r.left) / r.width * {{.PreyMax}};
  var y = (1 - (e.clientY - r.top) / r.height) * {{.PredatorMax}};
  document.getElementById('cx').value = x.toFixed(2);
  document.getElementById('cy').value = y.toFixed(2);
  document.getElementById('f').submit();
});
</script>
</body>
</html>
`

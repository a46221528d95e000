package web

import (
	"math"
	"net/http"

	"github.com/rusenback/zephyria/internal/chart"
	"github.com/rusenback/zephyria/internal/content"
	"github.com/rusenback/zephyria/internal/logger"
	"github.com/rusenback/zephyria/internal/model"
	"github.com/rusenback/zephyria/internal/scene"
)

// sceneSize is the hero box edge in px; the outermost ring spans it
const sceneSize = 160.0

type chartView struct {
	Frame  chart.Frame
	Width  float64
	Height float64
}

type ringView struct {
	Tilt   float64
	Size   float64
	Offset float64
	Static bool
}

type coreView struct {
	Rings  []ringView
	Size   float64
	Offset float64
	Bob    float64
	Cycle  scene.Periods
}

type pageView struct {
	Brand, BrandMark, NavAction string
	Nav                         []string

	HeroBadge, HeroTitle, HeroAccent, HeroSubline string
	PrimaryAction, SecondaryAction                string

	GridTitle, GridSubtitle string
	Features                []model.Feature

	PerfTitle, PerfAccent string
	Pillars               []model.Feature
	Highlights            []model.Highlight

	ChartTitle, ChartSource, ChartStatus string
	Chart                                *chartView
	Preset                               string

	CTATitle, CTABody        string
	CTAPrimary, CTASecondary string
	FooterTagline            string
	Footer                   []model.LinkGroup
	Legal                    []string
	Copyright                string

	Core coreView
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view := pageView{
		Brand:           content.Brand,
		BrandMark:       content.BrandMark,
		NavAction:       content.NavAction,
		Nav:             content.Nav,
		HeroBadge:       content.HeroBadge,
		HeroTitle:       content.HeroTitle,
		HeroAccent:      content.HeroAccent,
		HeroSubline:     content.HeroSubline,
		PrimaryAction:   content.PrimaryAction,
		SecondaryAction: content.SecondaryAction,
		GridTitle:       content.GridTitle,
		GridSubtitle:    content.GridSubtitle,
		Features:        content.Features,
		PerfTitle:       content.PerfTitle,
		PerfAccent:      content.PerfAccent,
		Pillars:         content.Pillars,
		Highlights:      content.Highlights,
		ChartTitle:      content.ChartTitle,
		ChartSource:     content.ChartSource,
		ChartStatus:     content.ChartStatus,
		CTATitle:        content.CTATitle,
		CTABody:         content.CTABody,
		CTAPrimary:      content.CTAPrimary,
		CTASecondary:    content.CTASecondary,
		FooterTagline:   content.FooterTagline,
		Footer:          content.Footer,
		Legal:           content.Legal,
		Copyright:       content.Copyright,
		Preset:          s.presetName(r),
	}

	view.Core = newCoreView(scene.NewCore())

	// Without a chart mount point the page renders and the stream is never opened
	if s.cfg.Web.Chart {
		_, panel, err := s.mount(r, nil)
		if err != nil {
			writeError(w, err)
			return
		}
		opts := panel.Options()
		view.Chart = &chartView{Frame: panel.Frame(), Width: opts.Width, Height: opts.Height}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, view); err != nil {
		logger.Debug("render page", "error", err)
	}
}

// newCoreView scales the scene layout into the hero box. Motion is left to
// CSS animations running at the scene's periods.
func newCoreView(c *scene.Core) coreView {
	unit := sceneSize / (2 * c.Extent())
	v := coreView{
		Size: round1(2 * scene.CoreRadius * unit),
		Bob:  round1(scene.FloatRange * unit),
	}
	p := scene.Cycle()
	v.Cycle = scene.Periods{
		CoreY:  round1(p.CoreY),
		CoreZ:  round1(p.CoreZ),
		OrbitX: round1(p.OrbitX),
		OrbitY: round1(p.OrbitY),
		Float:  round1(p.Float),
	}
	v.Offset = round1((sceneSize - v.Size) / 2)
	for _, r := range c.Rings {
		size := round1(2 * r.Radius * unit)
		v.Rings = append(v.Rings, ringView{
			Tilt:   round1(r.Tilt * 180 / math.Pi),
			Size:   size,
			Offset: round1((sceneSize - size) / 2),
			Static: r.Static,
		})
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 {{.Width}} {{.Height}}" preserveAspectRatio="none">
  <defs>
    <linearGradient id="chart-fill" x1="0" y1="0" x2="0" y2="1">
      <stop offset="0%" stop-color="#22d3ee" stop-opacity="0.35"/>
      <stop offset="100%" stop-color="#22d3ee" stop-opacity="0"/>
    </linearGradient>
  </defs>
  <path id="chart-area" d="{{.Frame.Area}}" fill="url(#chart-fill)"/>
  <path id="chart-line" d="{{.Frame.Line}}" fill="none" stroke="#22d3ee" stroke-width="2"/>
</svg>
`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Brand}} | {{.HeroTitle}} {{.HeroAccent}}</title>
<style>
  body { margin: 0; background: #0b0f19; color: #e2e8f0; font-family: system-ui, sans-serif; }
  nav, section, footer { max-width: 1100px; margin: 0 auto; padding: 24px; }
  nav { display: flex; align-items: center; justify-content: space-between; }
  nav ul { display: flex; gap: 24px; list-style: none; margin: 0; padding: 0; color: #94a3b8; }
  .mark { background: #22d3ee; color: #0b0f19; font-weight: 700; padding: 2px 8px; border-radius: 6px; }
  .badge { display: inline-block; border: 1px solid #22d3ee; color: #22d3ee; border-radius: 999px; padding: 4px 12px; }
  .accent { color: #22d3ee; }
  .muted { color: #94a3b8; }
  .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 16px; }
  .card { border: 1px solid #1e293b; border-radius: 12px; padding: 16px; }
  .stats { color: #22d3ee; font-family: monospace; }
  .core { position: relative; width: 160px; height: 160px; margin: 24px auto; perspective: 600px; }
  .core .orbit { position: absolute; inset: 0; transform-style: preserve-3d; animation: linear infinite; }
  .core .orbit.x { animation-name: tumble-x; }
  .core .orbit.y { animation-name: tumble-y; }
  .core .ring { position: absolute; border: 1px solid #38bdf8; border-radius: 50%; box-shadow: 0 0 6px #0ea5e9; }
  .core .ring.static { border-color: #1e293b80; box-shadow: none; }
  .core .float { position: absolute; inset: 0; animation: bob ease-in-out infinite; }
  .core .heart { position: absolute; border-radius: 50%; background: radial-gradient(circle at 35% 35%, #7dd3fc, #0ea5e9); animation: spin linear infinite; }
  @keyframes tumble-x { to { transform: rotateX(360deg); } }
  @keyframes tumble-y { to { transform: rotateY(360deg); } }
  @keyframes spin { to { transform: rotateY(360deg); } }
  @keyframes bob { 25% { transform: translateY(calc(-1px * var(--bob))); } 75% { transform: translateY(calc(1px * var(--bob))); } }
  .chart { border: 1px solid #1e293b; border-radius: 12px; padding: 16px; }
  .chart svg { width: 100%; height: 250px; }
  .chart header { display: flex; justify-content: space-between; }
  .legal { display: flex; gap: 16px; list-style: none; padding: 0; font-size: 0.8rem; color: #64748b; }
  .readout { font-size: 2rem; font-weight: 700; color: #22d3ee; }
</style>
</head>
<body>
<nav>
  <div><span class="mark">{{.BrandMark}}</span> <strong>{{.Brand}}</strong></div>
  <ul>{{range .Nav}}<li>{{.}}</li>{{end}}</ul>
  <a class="badge" href="#build">{{.NavAction}}</a>
</nav>

<section id="hero">
  <span class="badge">{{.HeroBadge}}</span>
  <h1>{{.HeroTitle}} <span class="accent">{{.HeroAccent}}</span></h1>
  <p class="muted">{{.HeroSubline}}</p>
  <p><a class="badge" href="#explorer">{{.PrimaryAction}}</a> <a href="#whitepaper">{{.SecondaryAction}}</a></p>
  {{with .Core}}<div class="core">
    <div class="float" style="--bob: {{.Bob}}; animation-duration: {{.Cycle.Float}}s;">
      <div class="heart" style="top: {{.Offset}}px; left: {{.Offset}}px; width: {{.Size}}px; height: {{.Size}}px; animation-duration: {{.Cycle.CoreY}}s;"></div>
    </div>
    <div class="orbit x" style="animation-duration: {{.Cycle.OrbitX}}s;"><div class="orbit y" style="animation-duration: {{.Cycle.OrbitY}}s;">
      {{range .Rings}}{{if not .Static}}<div class="ring" style="top: {{.Offset}}px; left: {{.Offset}}px; width: {{.Size}}px; height: {{.Size}}px; transform: rotateX({{.Tilt}}deg);"></div>{{end}}{{end}}
    </div></div>
    {{range .Rings}}{{if .Static}}<div class="ring static" style="top: {{.Offset}}px; left: {{.Offset}}px; width: {{.Size}}px; height: {{.Size}}px; transform: rotateX({{.Tilt}}deg);"></div>{{end}}{{end}}
  </div>{{end}}
</section>

<section id="technology">
  <h2>{{.GridTitle}}</h2>
  <p class="muted">{{.GridSubtitle}}</p>
  <div class="grid">
    {{range .Features}}<article class="card" id="{{.ID}}">
      <h3>{{.Title}}</h3>
      <p class="muted">{{.Description}}</p>
      <span class="stats">{{.Stats}}</span>
    </article>{{end}}
  </div>
</section>

<section id="network">
  <h2>{{.PerfTitle}} <span class="accent">{{.PerfAccent}}</span></h2>
  {{range .Pillars}}<h3>{{.Title}}</h3><p class="muted">{{.Description}}</p>{{end}}
  <p>{{range .Highlights}}<span class="readout">{{.Value}}</span> <span class="muted">{{.Label}}</span> {{end}}</p>
  {{with .Chart}}
  <div class="chart">
    <header><strong>{{$.ChartTitle}}</strong><span class="accent">&#9679; {{$.ChartStatus}}</span></header>
    <p class="muted">{{$.ChartSource}}</p>
    <svg viewBox="0 0 {{.Width}} {{.Height}}" preserveAspectRatio="none">
      <path id="chart-area" d="{{.Frame.Area}}" fill="#22d3ee22"/>
      <path id="chart-line" d="{{.Frame.Line}}" fill="none" stroke="#22d3ee" stroke-width="2"/>
    </svg>
    <span id="live-tps" class="readout">{{.Frame.Readout}}</span>
  </div>
  {{end}}
</section>

<section id="build">
  <h2>{{.CTATitle}}</h2>
  <p class="muted">{{.CTABody}}</p>
  <p><a class="badge" href="#docs">{{.CTAPrimary}}</a> <a href="#github">{{.CTASecondary}}</a></p>
</section>

<footer>
  <p class="muted">{{.FooterTagline}}</p>
  {{range .Footer}}<div><strong>{{.Title}}</strong><ul>{{range .Links}}<li>{{.}}</li>{{end}}</ul></div>{{end}}
  <p class="muted">{{.Copyright}}</p>
  <ul class="legal">{{range .Legal}}<li>{{.}}</li>{{end}}</ul>
</footer>

<script>
(function () {
  const line = document.getElementById("chart-line");
  const area = document.getElementById("chart-area");
  const readout = document.getElementById("live-tps");
  if (!line || !area || !readout || !window.EventSource) {
    return;
  }
  const params = new URLSearchParams({ preset: {{.Preset}} });
  const source = new EventSource("/api/metrics/stream?" + params.toString());
  source.addEventListener("frame", function (e) {
    const f = JSON.parse(e.data);
    line.setAttribute("d", f.line);
    area.setAttribute("d", f.area);
    readout.textContent = f.readout;
  });
  window.addEventListener("beforeunload", function () { source.close(); });
})();
</script>
</body>
</html>
`

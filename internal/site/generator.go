// Package site builds the static portfolio: the synthesized page with its
// initial interactive state baked in, the stylesheet and client script, and
// the copied assets.
package site

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/assets"
	"github.com/asif-cs/portfolio/internal/config"
	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/interact"
	"github.com/asif-cs/portfolio/internal/prefs"
	"github.com/asif-cs/portfolio/internal/progress"
	"github.com/asif-cs/portfolio/internal/synth"
)

// Output file names, relative to the output directory.
const (
	IndexFile   = "index.html"
	StyleFile   = "style.css"
	ScriptFile  = "script.js"
	ContentFile = "portfolio.json"
)

var generatedFiles = map[string]bool{
	IndexFile:   true,
	StyleFile:   true,
	ScriptFile:  true,
	ContentFile: true,
}

// Generator writes a portfolio into OutputDir.
type Generator struct {
	OutputDir    string
	AssetsDir    string
	Exclude      []string
	DefaultTheme interact.ThemePreference

	// Now is the render clock. Zero means time.Now.
	Now      time.Time
	Log      *zap.Logger
	Reporter progress.Reporter
}

// NewGenerator creates a Generator from the configuration. A nil logger or
// reporter discards output.
func NewGenerator(cfg *config.Config, log *zap.Logger, rep progress.Reporter) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if rep == nil {
		rep = progress.Nop{}
	}
	return &Generator{
		OutputDir:    cfg.OutputDir,
		AssetsDir:    cfg.AssetsDir,
		Exclude:      cfg.Exclude,
		DefaultTheme: interact.ParseTheme(string(cfg.DefaultTheme)),
		Log:          log,
		Reporter:     rep,
	}
}

// Result summarizes a build.
type Result struct {
	Files        []string // generated files, relative to the output directory
	AssetsCopied int
	AssetsTotal  int
	// MissingMedia lists local media references with no matching asset.
	MissingMedia []string
}

type buildStep struct {
	name string
	run  func(*build) error
}

type build struct {
	ctx   context.Context
	graph *content.Graph
	page  *synth.Page
	html  []byte
	files []assets.File
	res   *Result
}

// Generate builds the site for graph.
func (g *Generator) Generate(ctx context.Context, graph *content.Graph) (*Result, error) {
	if g.Log == nil {
		g.Log = zap.NewNop()
	}
	if g.Reporter == nil {
		g.Reporter = progress.Nop{}
	}

	steps := []buildStep{
		{"Synthesizing page", g.synthesize},
		{"Settling initial state", g.settle},
		{"Writing page files", g.writePage},
		{"Copying assets", g.copyAssets},
		{"Writing content snapshot", g.writeContent},
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	b := &build{ctx: ctx, graph: graph, res: &Result{}}
	g.Reporter.Start(len(steps))
	defer g.Reporter.Finish()

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.Reporter.Update(i+1, step.name)
		start := time.Now()
		if err := step.run(b); err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(step.name), err)
		}
		g.Log.Debug("build step done", zap.String("step", step.name), zap.Duration("took", time.Since(start)))
	}

	g.Log.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("assets_copied", b.res.AssetsCopied),
		zap.Int("assets_total", b.res.AssetsTotal),
	)
	return b.res, nil
}

func (g *Generator) synthesize(b *build) error {
	b.page = synth.Synthesize(b.graph, synth.Options{
		Now:        g.Now,
		Stylesheet: StyleFile,
		Script:     ScriptFile,
	})
	return nil
}

// settle attaches an engine with a manual clock, lets every deferred task
// run, and renders the result. Nothing is persisted across builds.
func (g *Generator) settle(b *build) error {
	sched := interact.NewManualScheduler()
	theme := g.DefaultTheme
	e := interact.Attach(b.page, b.graph, interact.Deps{
		Context:   b.ctx,
		Prefs:     prefs.NewMemoryStore(),
		Ambient:   func() interact.ThemePreference { return theme },
		Scheduler: sched,
		Logger:    g.Log,
	})
	defer e.Close()

	sched.Advance(interact.SettleDelay)

	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return err
	}
	b.html = buf.Bytes()
	return nil
}

func (g *Generator) writePage(b *build) error {
	for _, f := range []struct {
		name string
		data []byte
	}{
		{IndexFile, b.html},
		{StyleFile, []byte(cssContent)},
		{ScriptFile, []byte(Script())},
	} {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return err
		}
		b.res.Files = append(b.res.Files, f.name)
	}
	return nil
}

// copyAssets mirrors the assets directory into the output root and checks
// that every local media reference resolves.
func (g *Generator) copyAssets(b *build) error {
	if g.AssetsDir != "" {
		files, err := assets.Walk(g.AssetsDir, g.Exclude)
		if err != nil {
			return err
		}
		for _, f := range files {
			if generatedFiles[f.RelPath] {
				g.Log.Warn("asset shadowed by generated file", zap.String("asset", f.RelPath))
				continue
			}
			b.files = append(b.files, f)
		}
		n, err := assets.Copy(b.files, g.OutputDir)
		if err != nil {
			return err
		}
		b.res.AssetsCopied = n
		b.res.AssetsTotal = len(b.files)
	}

	have := make(map[string]bool, len(b.files))
	for _, f := range b.files {
		have[f.RelPath] = true
	}
	for _, ref := range LocalMediaRefs(b.graph) {
		if !have[ref] {
			g.Log.Warn("media reference has no matching asset", zap.String("src", ref))
			b.res.MissingMedia = append(b.res.MissingMedia, ref)
		}
	}
	return nil
}

func (g *Generator) writeContent(b *build) error {
	if err := content.Save(filepath.Join(g.OutputDir, ContentFile), b.graph); err != nil {
		return err
	}
	b.res.Files = append(b.res.Files, ContentFile)
	return nil
}

// LocalMediaRefs returns every site-relative image or video path the graph
// links to, deduplicated, in first-seen order. Absolute URLs are skipped.
func LocalMediaRefs(g *content.Graph) []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(src string) {
		ref, ok := localPath(src)
		if ok && !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	add(g.PersonalInfo.ImageURL)
	for _, list := range g.MediaLists() {
		for _, m := range list {
			add(m.Src)
			add(m.Thumb)
		}
	}
	return refs
}

func localPath(src string) (string, bool) {
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(src, "#") {
		return "", false
	}
	u, err := url.Parse(src)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	p := path.Clean(strings.TrimPrefix(u.Path, "/"))
	if p == "." || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}

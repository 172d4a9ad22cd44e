package interact

import (
	"context"

	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/icons"
	"github.com/asif-cs/portfolio/internal/prefs"
	"github.com/asif-cs/portfolio/internal/view"
)

// ThemePreference is the colour scheme.
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// ParseTheme maps s to a preference, defaulting to light.
func ParseTheme(s string) ThemePreference {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// AmbientTheme reports the platform's preferred scheme.
type AmbientTheme func() ThemePreference

// Theme applies and persists the colour scheme.
type Theme struct {
	body    *view.Node
	toggle  *view.Node
	store   prefs.Store
	ambient AmbientTheme
	ctx     context.Context
	log     *zap.Logger
	current ThemePreference
}

func newTheme(body, toggle *view.Node, store prefs.Store, ambient AmbientTheme, ctx context.Context, log *zap.Logger) *Theme {
	return &Theme{body: body, toggle: toggle, store: store, ambient: ambient, ctx: ctx, log: log}
}

// Init applies the persisted preference, or the ambient one when nothing
// is stored.
func (t *Theme) Init() {
	v, ok, err := t.store.Get(t.ctx, prefs.ThemeKey)
	if err != nil {
		t.log.Warn("reading theme preference", zap.Error(err))
	}
	if ok && (v == string(ThemeLight) || v == string(ThemeDark)) {
		t.apply(ThemePreference(v))
		return
	}
	pref := ThemeLight
	if t.ambient != nil {
		pref = t.ambient()
	}
	t.apply(pref)
}

// Toggle flips the scheme.
func (t *Theme) Toggle() {
	if t.current == ThemeDark {
		t.apply(ThemeLight)
	} else {
		t.apply(ThemeDark)
	}
}

// Current is the applied scheme.
func (t *Theme) Current() ThemePreference { return t.current }

func (t *Theme) apply(p ThemePreference) {
	t.current = p
	t.body.SetAttr("data-theme", string(p))

	glyph := icons.Moon
	if p == ThemeDark {
		glyph = icons.Sun
	}
	t.toggle.Clear()
	t.toggle.Append(strokeIcon(glyph))

	if err := t.store.Set(t.ctx, prefs.ThemeKey, string(p)); err != nil {
		t.log.Warn("persisting theme preference", zap.Error(err))
	}
}

func strokeIcon(d string) *view.Node {
	return view.El("svg", view.El("path").WithAttr("d", d)).
		WithAttr("viewBox", "0 0 24 24").
		WithAttr("fill", "none").
		WithAttr("stroke", "currentColor").
		WithAttr("stroke-width", "2").
		WithAttr("stroke-linecap", "round").
		WithAttr("stroke-linejoin", "round")
}

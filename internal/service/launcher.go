package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/patrickmn/go-cache"

	"github.com/wandertools/wandertools/internal/database"
	"github.com/wandertools/wandertools/internal/database/repository"
)

const (
	ThemeDark   = "dark"
	ThemeLight  = "light"
	ThemeSystem = "system"

	themeKey = "theme"

	// maxSearchDistance is the largest edit distance still treated as a match.
	maxSearchDistance = 2
)

// Launcher serves the catalog and launcher preferences to the TUI.
type Launcher struct {
	Apps         *repository.AppRepo
	Settings     *repository.SettingRepo
	DefaultTheme string
	// Cache holds search results; nil disables caching.
	Cache *cache.Cache
}

func (l *Launcher) List(ctx context.Context) ([]repository.App, error) {
	return l.Apps.List(ctx)
}

// Search matches query against app names, tolerating small typos.
func (l *Launcher) Search(ctx context.Context, query string) ([]repository.App, error) {
	cacheKey := "search:" + strings.ToLower(strings.TrimSpace(query))
	if l.Cache != nil {
		if data, found := l.Cache.Get(cacheKey); found {
			return data.([]repository.App), nil
		}
	}
	apps, err := l.Apps.List(ctx)
	if err != nil {
		return nil, err
	}
	ranked := RankApps(apps, query)
	if l.Cache != nil {
		l.Cache.Set(cacheKey, ranked, cache.DefaultExpiration)
	}
	return ranked, nil
}

// ResolveTheme turns a configured theme into dark or light. ThemeSystem and
// unknown values follow the terminal background.
func ResolveTheme(pref string, darkBackground bool) string {
	switch pref {
	case ThemeDark, ThemeLight:
		return pref
	}
	if darkBackground {
		return ThemeDark
	}
	return ThemeLight
}

// Theme returns the stored theme, falling back to DefaultTheme.
func (l *Launcher) Theme(ctx context.Context) (string, error) {
	v, ok, err := l.Settings.Get(ctx, themeKey)
	if err != nil {
		return "", err
	}
	if !ok || (v != ThemeDark && v != ThemeLight) {
		if l.DefaultTheme == ThemeLight {
			return ThemeLight, nil
		}
		return ThemeDark, nil
	}
	return v, nil
}

func (l *Launcher) ToggleTheme(ctx context.Context) (string, error) {
	cur, err := l.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeLight
	if cur == ThemeLight {
		next = ThemeDark
	}
	if err := l.Settings.Set(ctx, themeKey, next, database.Now()); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}

// RankApps keeps apps whose name contains query, or is within
// maxSearchDistance edits of it. Prefix matches come first, then substring
// matches, then typos; ties keep catalog order. An empty query returns apps.
func RankApps(apps []repository.App, query string) []repository.App {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return apps
	}
	type scored struct {
		app   repository.App
		score int
	}
	var hits []scored
	for _, a := range apps {
		if s, ok := matchScore(strings.ToLower(a.Name), q); ok {
			hits = append(hits, scored{a, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })
	out := make([]repository.App, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.app)
	}
	return out
}

func matchScore(name, q string) (int, bool) {
	if strings.HasPrefix(name, q) {
		return 0, true
	}
	if strings.Contains(name, q) {
		return 1, true
	}
	d := levenshtein.ComputeDistance(name, q)
	if d > maxSearchDistance {
		return 0, false
	}
	return 1 + d, true
}

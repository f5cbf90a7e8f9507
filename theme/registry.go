package theme

import (
	"log"
	"sort"
)

// Registry owns the theme set and the current selection. Registration
// happens at startup; after that the registry is read-mostly and a theme
// switch replaces the current pointer wholesale.
type Registry struct {
	themes  map[string]*Theme
	order   []string
	current *Theme
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Register adds a theme. The first registered theme becomes current.
// Re-registering a name replaces the stored theme.
func (r *Registry) Register(t *Theme) {
	if t == nil || t.Name == "" {
		return
	}
	if _, exists := r.themes[t.Name]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.themes[t.Name] = t
	if r.current == nil {
		r.current = t
	}
}

// SetTheme switches to the named theme. Unknown names log a warning and
// leave the current theme unchanged.
func (r *Registry) SetTheme(name string) {
	t, ok := r.themes[name]
	if !ok {
		log.Printf("theme: unknown theme %q, keeping %q", name, r.CurrentName())
		return
	}
	r.current = t
}

// Current returns the active theme. Never nil once a theme is registered.
func (r *Registry) Current() *Theme { return r.current }

// CurrentName returns the active theme name, empty when none is registered.
func (r *Registry) CurrentName() string {
	if r.current == nil {
		return ""
	}
	return r.current.Name
}

// Names lists registered themes in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// NamesSorted lists registered themes alphabetically, for help output.
func (r *Registry) NamesSorted() []string {
	out := r.Names()
	sort.Strings(out)
	return out
}

// Cycle advances the current theme to the next one in registration order.
func (r *Registry) Cycle() {
	if r.current == nil || len(r.order) < 2 {
		return
	}
	for i, name := range r.order {
		if name == r.current.Name {
			r.current = r.themes[r.order[(i+1)%len(r.order)]]
			return
		}
	}
}

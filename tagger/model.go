package tagger

import "sync"

// Model is a statistical part of speech tagger. Tag returns one tag per
// token, in token order. Implementations are not required to be safe for
// concurrent use.
type Model interface {
	Tag(tokens []string) ([]string, error)
}

// Func adapts a plain function to a Model.
type Func func(tokens []string) ([]string, error)

func (f Func) Tag(tokens []string) ([]string, error) {
	return f(tokens)
}

// Guard owns a Model and lets at most one goroutine call it at a time.
type Guard struct {
	mu    sync.Mutex
	model Model
}

// NewGuard wraps m. m must not be used directly afterwards.
func NewGuard(m Model) *Guard {
	if g, ok := m.(*Guard); ok {
		return g
	}
	return &Guard{model: m}
}

func (g *Guard) Tag(tokens []string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.model.Tag(tokens)
}

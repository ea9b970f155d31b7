package knowledge

import (
	"sync"

	"sahayak/backend/internal/seed"
	"golang.org/x/sync/singleflight"
)

// Service owns the process's knowledge graph. The graph is built lazily on
// first access and cached; Rebuild constructs a fresh graph from the loader
// and swaps it in atomically, so readers never observe a half-built graph.
type Service struct {
	loader func() (*seed.Data, error)

	mu    sync.RWMutex
	graph *Graph

	build singleflight.Group
}

// NewService creates a knowledge graph service over a seed data loader. The
// loader is invoked on first access and again on every Rebuild.
func NewService(loader func() (*seed.Data, error)) *Service {
	return &Service{loader: loader}
}

// Graph returns the cached graph, building it on first call. Concurrent
// first accesses are collapsed into a single build.
func (s *Service) Graph() (*Graph, error) {
	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()
	if g != nil {
		return g, nil
	}

	v, err, _ := s.build.Do("build", func() (interface{}, error) {
		s.mu.RLock()
		cached := s.graph
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		return s.rebuild()
	})
	if err != nil {
		return nil, err
	}
	return v.(*Graph), nil
}

// Rebuild discards the cached graph and reconstructs it from the loader.
// In-flight readers keep the graph they already hold.
func (s *Service) Rebuild() (*Graph, error) {
	return s.rebuild()
}

func (s *Service) rebuild() (*Graph, error) {
	data, err := s.loader()
	if err != nil {
		return nil, err
	}
	g := Build(data)

	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
	return g, nil
}

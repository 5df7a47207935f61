package tagger

import (
	"sync"
	"sync/atomic"
)

// Provider builds an Engine on first use. Callers arriving while the build
// runs wait for it and then share its result.
type Provider struct {
	build func() (*Engine, error)
	once  sync.Once
	ready atomic.Bool

	engine *Engine
	err    error
}

// NewProvider returns a provider that calls build at most once.
func NewProvider(build func() (*Engine, error)) *Provider {
	return &Provider{build: build}
}

// Engine returns the engine, building it on the first call.
func (p *Provider) Engine() (*Engine, error) {
	p.once.Do(func() {
		p.engine, p.err = p.build()
		if p.err == nil {
			p.ready.Store(true)
		}
	})
	return p.engine, p.err
}

// Ready reports whether a successful build has completed.
func (p *Provider) Ready() bool {
	return p.ready.Load()
}

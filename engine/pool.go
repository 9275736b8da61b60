package engine

import "sync"

// TransitionPool recycles transition buffers between generations
type TransitionPool struct {
	pool sync.Pool
}

func NewTransitionPool() *TransitionPool {
	return &TransitionPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Transition{}
			},
		},
	}
}

// Get retrieves an empty transition from the pool
func (p *TransitionPool) Get() *Transition {
	t := p.pool.Get().(*Transition)
	t.reset()
	return t
}

// Put returns a transition to the pool
func (p *TransitionPool) Put(t *Transition) {
	if t == nil {
		return
	}
	p.pool.Put(t)
}

// getTransition takes a transition from the pool, or allocates one when pooling is off
func getTransition(pool *TransitionPool) *Transition {
	if pool == nil {
		return &Transition{}
	}
	return pool.Get()
}

// TransitionToPool returns a transition to the pool for reuse
func TransitionToPool(t *Transition, pool *TransitionPool) {
	if pool == nil {
		return
	}
	pool.Put(t)
}

package store

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrNoDialer is returned by a Gateway without a Dial function.
var ErrNoDialer = errors.New("store: gateway has no dialer")

// DialFunc opens and prepares a Store.
type DialFunc func(ctx context.Context) (Store, error)

// Gateway owns the process' single database handle. The first successful
// Connect dials and memoizes the Store; concurrent callers during that first
// dial wait on the same attempt. A failed dial is not memoized.
type Gateway struct {
	Dial DialFunc

	// OnDial, when set, observes every dial attempt.
	OnDial func(err error)

	mu    sync.RWMutex
	st    Store
	group singleflight.Group
}

// NewGateway returns a Gateway using dial.
func NewGateway(dial DialFunc) *Gateway {
	return &Gateway{Dial: dial}
}

// Connect returns the memoized Store, dialing it on first use.
func (g *Gateway) Connect(ctx context.Context) (Store, error) {
	if st := g.current(); st != nil {
		return st, nil
	}
	if g.Dial == nil {
		return nil, ErrNoDialer
	}

	// The dial outlives the request that triggered it, other callers share it.
	dialCtx := context.WithoutCancel(ctx)

	ch := g.group.DoChan("connect", func() (any, error) {
		if st := g.current(); st != nil {
			return st, nil
		}

		st, err := g.Dial(dialCtx)
		if g.OnDial != nil {
			g.OnDial(err)
		}
		if err != nil {
			return nil, err
		}

		g.mu.Lock()
		g.st = st
		g.mu.Unlock()
		return st, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Store), nil
	}
}

// Ping checks the memoized Store, dialing it first if needed.
func (g *Gateway) Ping(ctx context.Context) error {
	st, err := g.Connect(ctx)
	if err != nil {
		return err
	}
	return st.Ping(ctx)
}

// Close releases the memoized Store. The Gateway may dial again afterwards.
func (g *Gateway) Close() error {
	g.mu.Lock()
	st := g.st
	g.st = nil
	g.mu.Unlock()

	if st == nil {
		return nil
	}
	return st.Close()
}

func (g *Gateway) current() Store {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.st
}

package umldiagram

import (
	"context"
	"fmt"
	"sync"

	"cdr.dev/slog"

	"oss.terrastruct.com/uml/lib/log"
	"oss.terrastruct.com/uml/umlelement"
	"oss.terrastruct.com/uml/umlrelationship"
)

// Store owns a diagram and the membership of its containers.
//
// Actions are applied strictly in dispatch order. A mutex serializes concurrent
// Dispatch calls, but elements handed to subscribers are shared and callers must not
// render them from two goroutines at once.
type Store struct {
	mu     sync.Mutex
	router *Router

	relationships umlelement.Table

	subsMu  sync.Mutex
	subs    map[int]func(*Diagram)
	nextSub int
}

type Option func(*Store)

// WithRelationshipCheck makes Dispatch reject an Append carrying a relationship whose
// kind its source does not support. Elements are resolved in table.
func WithRelationshipCheck(table umlelement.Table) Option {
	return func(s *Store) {
		s.relationships = table
	}
}

func NewStore(d *Diagram, opts ...Option) *Store {
	s := &Store{
		router: NewRouter(d),
		subs:   make(map[int]func(*Diagram)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current diagram.
func (s *Store) State() *Diagram {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.Diagram()
}

// Members returns a copy of the membership of owner.
func (s *Store) Members(owner string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, _ := s.router.Members(owner)
	return append([]string{}, ids...)
}

// Register makes the container owner addressable by actions.
func (s *Store) Register(owner string, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.Register(owner, ids)
}

func (s *Store) Unregister(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.router.Unregister(owner)
}

// Subscribe calls fn with the new diagram after every Dispatch that replaced it.
func (s *Store) Subscribe(fn func(*Diagram)) (unsubscribe func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch applies actions in order. When a relationship check is configured and any
// action fails it, none of the actions are applied.
func (s *Store) Dispatch(ctx context.Context, actions ...Action) error {
	s.mu.Lock()
	if err := s.check(actions); err != nil {
		s.mu.Unlock()
		return err
	}

	prev := s.router.Diagram()
	for _, a := range actions {
		changed := s.router.Route(a)
		o, _ := owner(a)
		log.Debug(ctx, "dispatched action",
			slog.F("type", a.Type()),
			slog.F("owner", o),
			slog.F("changed", changed),
		)
	}
	next := s.router.Diagram()
	s.mu.Unlock()

	if next != prev {
		s.notify(next)
	}
	return nil
}

func (s *Store) notify(d *Diagram) {
	s.subsMu.Lock()
	fns := make([]func(*Diagram), 0, len(s.subs))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(d)
	}
}

func (s *Store) check(actions []Action) error {
	if s.relationships == nil {
		return nil
	}
	for _, a := range actions {
		var ids []string
		switch a := a.(type) {
		case Append:
			ids = a.IDs
		case *Append:
			ids = a.IDs
		default:
			continue
		}
		for _, id := range ids {
			el, ok := s.relationships.Get(id)
			if !ok || el.Relationship == nil {
				continue
			}
			source, ok := s.relationships.Get(el.Relationship.Source.Element)
			if !ok {
				continue
			}
			if !umlrelationship.IsSupported(source.Kind, el.Kind) {
				return fmt.Errorf("failed to append %q: %w", id,
					&umlrelationship.UnsupportedError{Source: source.Kind, Relationship: el.Kind})
			}
		}
	}
	return nil
}

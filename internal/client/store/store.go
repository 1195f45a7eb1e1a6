package store

import "sync"

// Reducer computes the next state. It must not mutate its input.
type Reducer[S, A any] func(state S, action A) S

// Store is a mutex-guarded state container.
type Store[S, A any] struct {
	mu      sync.RWMutex
	state   S
	reduce  Reducer[S, A]
	nextID  int
	subs    map[int]func(S)
	subsOrd []int
}

func New[S, A any](initial S, reduce Reducer[S, A]) *Store[S, A] {
	return &Store[S, A]{state: initial, reduce: reduce, subs: map[int]func(S){}}
}

// State returns a snapshot of the current state.
func (s *Store[S, A]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and notifies subscribers. It returns the new state.
func (s *Store[S, A]) Dispatch(action A) S {
	s.mu.Lock()
	s.state = s.reduce(s.state, action)
	next := s.state
	subs := make([]func(S), 0, len(s.subsOrd))
	for _, id := range s.subsOrd {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn for every future dispatch. The returned func removes it.
func (s *Store[S, A]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsOrd = append(s.subsOrd, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.subsOrd {
				if v == id {
					s.subsOrd = append(s.subsOrd[:i:i], s.subsOrd[i+1:]...)
					break
				}
			}
		})
	}
}

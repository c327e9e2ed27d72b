package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownMutation is returned by Commit for an undeclared mutation.
	ErrUnknownMutation = errors.New("unknown mutation")
	// ErrUnknownAction is returned by Dispatch for an undeclared action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownModule is returned for a module path that is not registered.
	ErrUnknownModule = errors.New("unknown module")
	// ErrModuleExists is returned when registering a module name twice.
	ErrModuleExists = errors.New("module already registered")
)

// State is the mutable state of a store or module.
type State map[string]any

// Mutation changes state synchronously. It runs while the store is locked and
// must not call back into the store.
type Mutation func(state State, payload any) error

// Action performs asynchronous work and commits its results.
type Action func(ctx context.Context, ac ActionContext, payload any) error

// Options declares the four regions of a store.
type Options struct {
	State     State
	Mutations map[string]Mutation
	Actions   map[string]Action
	Modules   map[string]Options
}

// ActionContext is the view of the store an action works against. Names are
// local to the module the action belongs to.
type ActionContext struct {
	store  *Store
	module *module
}

// Commit runs a mutation of the action's module.
func (ac ActionContext) Commit(name string, payload any) error {
	return ac.store.commit(ac.module, name, payload)
}

// Dispatch runs another action of the action's module.
func (ac ActionContext) Dispatch(ctx context.Context, name string, payload any) error {
	return ac.store.dispatch(ctx, ac.module, name, payload)
}

// State returns a snapshot of the action's module state.
func (ac ActionContext) State() State {
	ac.store.mu.RLock()
	defer ac.store.mu.RUnlock()
	return ac.module.snapshot()
}

// MutationRecord describes a committed mutation.
type MutationRecord struct {
	// Type is the namespaced mutation name, e.g. "datasets/select".
	Type    string
	Payload any
}

// Subscriber observes committed mutations with the resulting root state.
type Subscriber func(record MutationRecord, state State)

// Store is a centralized state container with controlled write paths.
type Store struct {
	mu   sync.RWMutex
	root *module

	subMu  sync.Mutex
	subs   map[int]Subscriber
	nextID int
}

type module struct {
	path      string
	state     State
	mutations map[string]Mutation
	actions   map[string]Action
	modules   map[string]*module
}

// New builds a store from its options. The options' maps are copied.
func New(opts Options) *Store {
	return &Store{
		root: newModule("", opts),
		subs: make(map[int]Subscriber),
	}
}

func newModule(path string, opts Options) *module {
	m := &module{
		path:      path,
		state:     State{},
		mutations: make(map[string]Mutation, len(opts.Mutations)),
		actions:   make(map[string]Action, len(opts.Actions)),
		modules:   make(map[string]*module, len(opts.Modules)),
	}
	maps.Copy(m.state, opts.State)
	maps.Copy(m.mutations, opts.Mutations)
	maps.Copy(m.actions, opts.Actions)
	for name, sub := range opts.Modules {
		m.modules[name] = newModule(joinPath(path, name), sub)
	}
	return m
}

// State returns a snapshot of the root state with each module's state nested
// under its name.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root.snapshot()
}

// Get returns one root state value.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.root.state[key]
	return v, ok
}

// Commit runs a mutation synchronously. "a/b/name" addresses module a/b.
func (s *Store) Commit(name string, payload any) error {
	m, local, err := s.locate(name)
	if err != nil {
		return err
	}
	return s.commit(m, local, payload)
}

// Dispatch runs an action. The action runs on the caller's goroutine and must
// honour ctx; use a goroutine to dispatch without waiting.
func (s *Store) Dispatch(ctx context.Context, name string, payload any) error {
	m, local, err := s.locate(name)
	if err != nil {
		return err
	}
	return s.dispatch(ctx, m, local, payload)
}

// RegisterModule adds a module at runtime. Nested paths ("a/b") require the parent.
func (s *Store) RegisterModule(path string, opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, name, err := s.parentOf(path)
	if err != nil {
		return err
	}
	if _, exists := parent.modules[name]; exists {
		return fmt.Errorf("%w: %s", ErrModuleExists, path)
	}
	parent.modules[name] = newModule(joinPath(parent.path, name), opts)
	return nil
}

// UnregisterModule removes a module and its state.
func (s *Store) UnregisterModule(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, name, err := s.parentOf(path)
	if err != nil {
		return err
	}
	if _, exists := parent.modules[name]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownModule, path)
	}
	delete(parent.modules, name)
	return nil
}

// Modules returns the paths of all registered modules, sorted.
func (s *Store) Modules() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var paths []string
	var walk func(m *module)
	walk = func(m *module) {
		for _, sub := range m.modules {
			paths = append(paths, sub.path)
			walk(sub)
		}
	}
	walk(s.root)
	sort.Strings(paths)
	return paths
}

// Subscribe registers fn for every committed mutation and returns a function
// that removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) commit(m *module, name string, payload any) error {
	s.mu.Lock()
	mutation, ok := m.mutations[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownMutation, joinPath(m.path, name))
	}
	if err := mutation(m.state, payload); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("mutation %s: %w", joinPath(m.path, name), err)
	}
	snapshot := s.root.snapshot()
	s.mu.Unlock()

	record := MutationRecord{Type: joinPath(m.path, name), Payload: payload}
	for _, fn := range s.subscribers() {
		fn(record, snapshot)
	}
	return nil
}

func (s *Store) dispatch(ctx context.Context, m *module, name string, payload any) error {
	s.mu.RLock()
	action, ok := m.actions[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, joinPath(m.path, name))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return action(ctx, ActionContext{store: s, module: m}, payload)
}

func (s *Store) subscribers() []Subscriber {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Subscriber, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	return fns
}

// locate splits "a/b/name" into module a/b and the local name.
func (s *Store) locate(name string) (*module, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parts := strings.Split(name, "/")
	m := s.root
	for _, part := range parts[:len(parts)-1] {
		sub, ok := m.modules[part]
		if !ok {
			return nil, "", fmt.Errorf("%w: %s", ErrUnknownModule, joinPath(m.path, part))
		}
		m = sub
	}
	return m, parts[len(parts)-1], nil
}

// parentOf must be called with s.mu held.
func (s *Store) parentOf(path string) (*module, string, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	name := parts[len(parts)-1]
	if name == "" {
		return nil, "", fmt.Errorf("module name is required")
	}
	m := s.root
	for _, part := range parts[:len(parts)-1] {
		sub, ok := m.modules[part]
		if !ok {
			return nil, "", fmt.Errorf("%w: %s", ErrUnknownModule, joinPath(m.path, part))
		}
		m = sub
	}
	return m, name, nil
}

func (m *module) snapshot() State {
	out := make(State, len(m.state)+len(m.modules))
	maps.Copy(out, m.state)
	for name, sub := range m.modules {
		out[name] = sub.snapshot()
	}
	return out
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

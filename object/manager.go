// MIT License
//
// Copyright (c) 2024-2026 EdgeLite Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package object

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"

	gerrors "github.com/edgelite/durable/errors"
	"github.com/edgelite/durable/internal/syncmap"
	"github.com/edgelite/durable/log"
	"github.com/edgelite/durable/storage"
)

// generation is the configuration epoch installed by one successful reload:
// the full constructor registry and the bindings context. It is built in
// isolation and swapped in as a single atomic assignment, so in-flight
// readers never observe a partially built registry.
type generation struct {
	constructors map[string]Constructor
	bindings     Bindings
}

// Manager owns the durable object instances of the simulator.
//
// For a given identifier it returns the single live instance, creating it
// exactly once per generation through a memoized asynchronous construction
// that (1) waits on the reload gate, (2) acquires storage, (3) resolves the
// registered constructor and (4) instantiates the user object with the
// current bindings. Concurrent calls for the same identifier all resolve to
// the same instance; calls for different identifiers proceed independently.
type Manager struct {
	objects []ProcessedObject
	kinds   mapset.Set[string]
	gate    *reloadGate
	table   *syncmap.Map[string, *inflight]
	current atomic.Pointer[generation]

	disposed atomic.Bool
	persist  bool
	logger   log.Logger
}

// NewManager creates a Manager for the given processed object list. The gate
// starts closed: every GetInstance call suspends until the first successful
// Reload.
func NewManager(objects []ProcessedObject, opts ...Option) *Manager {
	kinds := mapset.NewSet[string]()
	for _, object := range objects {
		kinds.Add(object.Name)
	}

	manager := &Manager{
		objects: objects,
		kinds:   kinds,
		gate:    newReloadGate(),
		table:   syncmap.New[string, *inflight](),
		logger:  log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(manager)
	}
	return manager
}

// errReloadRaced completes an in-flight cell whose registration lost a race
// against a reload. It never escapes GetInstance: every caller that receives
// it re-enters the gate and retries in the new generation.
var errReloadRaced = errors.New("reload raced instance construction")

// GetInstance returns the single live instance for the given identifier,
// creating it when no construction for it exists in the current generation.
//
// The call suspends while the reload gate is closed and while another caller
// is constructing the same instance. Exactly one storage handle and one user
// object are ever created per (identifier, generation) pair, regardless of
// call concurrency. A caller that abandons the wait through its context does
// not affect the shared construction.
func (m *Manager) GetInstance(ctx context.Context, factory storage.Factory, id *ID) (*Instance, error) {
	if id == nil {
		return nil, gerrors.NewErrInvalidObjectID(errors.New("identifier is nil"))
	}
	if err := id.Validate(); err != nil {
		return nil, gerrors.NewErrInvalidObjectID(err)
	}

	// The cache key is kind-qualified so separate object kinds stay disjoint
	// even when raw tokens collide.
	key := id.String()
	for {
		epoch, err := m.gate.await(ctx)
		if err != nil {
			return nil, err
		}

		cell := newInflight()
		existing, loaded := m.table.GetOrSet(key, cell)
		if loaded {
			instance, err := existing.await(ctx)
			if errors.Is(err, errReloadRaced) {
				continue
			}
			return instance, err
		}

		// The pending cell is registered before any asynchronous work starts;
		// from here on every concurrent caller shares this construction.
		//
		// A reload may have cleared the table between the gate check and the
		// insert, which would smuggle this cell into the next generation's
		// table. The generation snapshot is taken first, then the epoch is
		// re-checked: an unchanged epoch proves no close intervened, so both
		// the snapshot and the registration belong to the epoch that was
		// awaited. Otherwise the cell is withdrawn and the call starts over
		// behind the gate.
		gen := m.current.Load()
		if !m.gate.sameEpoch(epoch) {
			m.table.CompareAndDelete(key, cell)
			cell.fail(errReloadRaced)
			continue
		}

		instance, err := m.construct(ctx, factory, id, key, gen)
		if err != nil {
			// Evict so a later call can retry, but only our own cell: the
			// table may already belong to a newer generation.
			m.table.CompareAndDelete(key, cell)
			cell.fail(err)
			return nil, err
		}

		cell.succeed(instance)
		return instance, nil
	}
}

// construct runs the construction path for one identifier against the given
// generation snapshot.
func (m *Manager) construct(ctx context.Context, factory storage.Factory, id *ID, key string, gen *generation) (*Instance, error) {
	if gen == nil {
		// The gate only opens after a generation is installed.
		err := gerrors.NewInternalError(gerrors.NewErrConstructorNotRegistered(id.Kind()))
		m.logger.Errorf("no generation installed while the gate is open: %v", err)
		return nil, err
	}

	handle, err := factory.Storage(ctx, key, m.persist)
	if err != nil {
		return nil, err
	}

	constructor, ok := gen.constructors[id.Kind()]
	if !ok {
		// Reload validated every configured kind, so the registry and the
		// processed object list disagree.
		err := gerrors.NewInternalError(gerrors.NewErrConstructorNotRegistered(id.Kind()))
		m.logger.Errorf("constructor registry is inconsistent: %v", err)
		return nil, err
	}

	state := newObjectState(id, handle)
	object, err := constructor(state, gen.bindings)
	if err != nil {
		return nil, err
	}

	m.logger.Debugf("created object instance (%s)", key)
	return &Instance{state: state, object: object}, nil
}

// Namespace returns the façade bound to one configured object kind. It is
// pure and side-effect free; an unknown kind is rejected.
func (m *Manager) Namespace(factory storage.Factory, kind string) (*Namespace, error) {
	if !m.kinds.Contains(kind) {
		return nil, gerrors.NewErrKindNotConfigured(kind)
	}
	return &Namespace{
		manager: m,
		factory: factory,
		kind:    kind,
	}, nil
}

// BeforeReload starts a new generation: it closes the gate and drops every
// instance (completed or still constructing) from the table, so no instance
// is created from the soon-to-be-stale constructors or bindings. Safe to call
// even if no instance was ever created, and safe to call repeatedly.
func (m *Manager) BeforeReload() {
	// The gate must close before the table resets: the epoch advance makes a
	// caller between gate check and table insert withdraw its cell instead of
	// smuggling it into the cleared table.
	m.gate.close()
	m.table.Reset()
	m.logger.Debugf("reload gate closed, instance table cleared")
}

// Reload re-resolves every configured object kind against the freshly built
// module set, then installs the new constructor registry and bindings as one
// atomic swap and opens the gate.
//
// On any failure nothing is committed: the previous generation stays in
// place and the gate stays closed, so instance creation keeps suspending
// until a later reload succeeds.
func (m *Manager) Reload(exports Exports, bindings Bindings, mainScriptPath string) error {
	if m.disposed.Load() {
		m.logger.Warnf("reload requested after dispose")
	}

	constructors := make(map[string]Constructor, len(m.objects))
	for _, object := range m.objects {
		path := object.ScriptPath
		if path == "" {
			path = mainScriptPath
		}

		members, ok := exports.Get(path)
		if !ok {
			return gerrors.NewErrScriptNotFound(object.Name, path)
		}

		constructor, ok := members[object.ClassName]
		if !ok {
			return gerrors.NewErrClassNotFound(object.Name, object.ClassName)
		}
		constructors[object.Name] = constructor
	}

	m.current.Store(&generation{constructors: constructors, bindings: bindings})
	m.gate.open()
	m.logger.Infof("object constructors reloaded (%d kind(s))", len(m.objects))
	return nil
}

// Dispose closes the gate and drops all instances, exactly like BeforeReload.
// It represents final teardown: no further Reload is expected, though one is
// tolerated. Callers suspended on the gate stay suspended until their own
// context releases them.
func (m *Manager) Dispose() {
	m.disposed.Store(true)
	m.gate.close()
	m.table.Reset()
	m.logger.Debugf("object manager disposed")
}

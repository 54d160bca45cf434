package state

import (
	"context"
	"log/slog"
	"sync"

	clientapi "github.com/iudanet/servermanager/internal/client/api"
	"github.com/iudanet/servermanager/internal/models"
	"github.com/iudanet/servermanager/pkg/api"
)

// DefaultFormStatus is the status preselected after the creation form resets.
const DefaultFormStatus = api.StatusDown

// Projector owns the server snapshot and the emitted UI state.
//
// Every public action follows the same shape: take a generation token, emit
// the initial state, call the gateway without holding the lock, then apply
// the merge rule and emit the final state. A result is applied only if its
// token is still the latest one; older results are dropped.
type Projector struct {
	gateway  clientapi.ClientAPI
	notifier Notifier
	logger   *slog.Logger

	snapshot    *api.Response
	subscribers map[int]chan models.AppState
	state       models.AppState
	generation  uint64
	nextSubID   int
	pending     int // save/delete calls in flight
	mu          sync.Mutex
}

// NewProjector creates a projector in the LOADING state.
func NewProjector(gateway clientapi.ClientAPI, notifier Notifier, logger *slog.Logger) *Projector {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Projector{
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
		state:       models.Loading(),
		subscribers: make(map[int]chan models.AppState),
	}
}

// State returns the currently emitted state.
func (p *Projector) State() models.AppState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Snapshot returns a copy of the last known-good collection, or nil.
func (p *Projector) Snapshot() *api.Response {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot.Clone()
}

// IsLoading reports whether a save or delete is in flight.
func (p *Projector) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending > 0
}

// Restore installs a previously persisted snapshot and emits it as LOADED.
// Results of actions started before Restore are dropped.
func (p *Projector) Restore(snapshot *api.Response) {
	if snapshot == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.snapshot = snapshot.Clone()
	p.emit(models.Loaded(p.snapshot))
}

// Subscribe returns a channel receiving every emitted state, starting with
// the current one. When the consumer lags, the oldest buffered state is
// dropped in favour of the newest. The returned func unsubscribes.
func (p *Projector) Subscribe(buffer int) (<-chan models.AppState, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan models.AppState, buffer)

	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = ch
	ch <- p.state
	p.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, id)
			p.mu.Unlock()
			close(ch)
		})
	}
}

// LoadServers fetches the whole collection. The first load shows LOADING,
// later loads keep the current snapshot visible until the response arrives.
func (p *Projector) LoadServers(ctx context.Context) models.AppState {
	token, _ := p.begin(false)

	resp, err := p.gateway.ListServers(ctx)

	st, _ := p.complete(token, "list", err, func(_ *api.Response) (*api.Response, *api.Response, error) {
		next := mergeList(resp)
		return next, next, nil
	})
	return st
}

// PingServer refreshes the status of the server with ipAddress.
func (p *Projector) PingServer(ctx context.Context, ipAddress string) models.AppState {
	token, snapshot := p.begin(true)
	if snapshot == nil {
		st, _ := p.complete(token, "ping", ErrNoSnapshot, nil)
		return st
	}

	resp, err := p.gateway.Ping(ctx, ipAddress)

	st, _ := p.complete(token, "ping", err, func(current *api.Response) (*api.Response, *api.Response, error) {
		next, err := mergePing(current, resp)
		if err != nil {
			return nil, nil, err
		}
		return next, next, nil
	})
	return st
}

// FilterServers emits the filtered view. The snapshot itself is not changed,
// so the next action works on the full collection again.
func (p *Projector) FilterServers(ctx context.Context, filter models.Filter) models.AppState {
	token, snapshot := p.begin(true)
	if snapshot == nil {
		st, _ := p.complete(token, "filter", ErrNoSnapshot, nil)
		return st
	}

	resp, err := p.gateway.Filter(ctx, filter, snapshot)

	st, _ := p.complete(token, "filter", err, func(current *api.Response) (*api.Response, *api.Response, error) {
		return current, resp, nil
	})
	return st
}

// SaveServer creates a server and appends it to the snapshot. On success the
// creation dialog is dismissed and the form reset; the progress indicator is
// cleared either way.
func (p *Projector) SaveServer(ctx context.Context, input api.ServerInput) models.AppState {
	token, snapshot := p.begin(true)
	if snapshot == nil {
		st, _ := p.complete(token, "save", ErrNoSnapshot, nil)
		return st
	}
	p.startProgress()

	resp, err := p.gateway.Save(ctx, input)

	st, _ := p.complete(token, "save", err, func(current *api.Response) (*api.Response, *api.Response, error) {
		next, err := mergeSave(current, resp)
		if err != nil {
			return nil, nil, err
		}
		return next, next, nil
	})

	// Запись уже создана на backend, даже если результат устарел
	if err == nil {
		p.notifier.DismissDialog()
		p.notifier.ResetForm(DefaultFormStatus)
	}
	p.stopProgress()
	return st
}

// DeleteServer removes the server with serverID from the backend and the
// snapshot. Deleting an id the snapshot does not hold leaves the list as is.
func (p *Projector) DeleteServer(ctx context.Context, serverID int64) models.AppState {
	token, snapshot := p.begin(true)
	if snapshot == nil {
		st, _ := p.complete(token, "delete", ErrNoSnapshot, nil)
		return st
	}
	p.startProgress()

	resp, err := p.gateway.Delete(ctx, serverID)

	st, _ := p.complete(token, "delete", err, func(current *api.Response) (*api.Response, *api.Response, error) {
		next := mergeDelete(current, resp, serverID)
		return next, next, nil
	})

	p.stopProgress()
	return st
}

// begin issues a new token and emits the initial state. requireSnapshot
// actions keep the current snapshot on screen; a load without snapshot
// shows LOADING.
func (p *Projector) begin(requireSnapshot bool) (uint64, *api.Response) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	switch {
	case p.snapshot != nil:
		p.emit(models.Loaded(p.snapshot))
	case !requireSnapshot:
		p.emit(models.Loading())
	}
	return p.generation, p.snapshot.Clone()
}

// mergeFunc returns the new snapshot and the payload to render.
type mergeFunc func(snapshot *api.Response) (next, payload *api.Response, err error)

// complete applies the outcome of an action if token is still current.
// It reports whether the outcome was applied.
func (p *Projector) complete(token uint64, action string, callErr error, merge mergeFunc) (models.AppState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token != p.generation {
		p.logger.Debug("discarding stale result",
			"action", action,
			"token", token,
			"latest", p.generation)
		return p.state, false
	}

	if callErr != nil {
		return p.fail(action, callErr), true
	}

	next, payload, err := merge(p.snapshot)
	if err != nil {
		return p.fail(action, err), true
	}

	p.snapshot = next
	st := models.Loaded(payload)
	p.emit(st)

	p.logger.Info("action completed",
		"action", action,
		"servers", len(payload.Data.Servers),
		"message", payload.Message)

	return st, true
}

// fail emits ERROR. The snapshot is kept for the next action.
func (p *Projector) fail(action string, err error) models.AppState {
	p.logger.Warn("action failed", "action", action, "error", err)
	st := models.Failed(err)
	p.emit(st)
	return st
}

// emit must be called with p.mu held.
func (p *Projector) emit(st models.AppState) {
	p.state = st
	for _, ch := range p.subscribers {
		select {
		case ch <- st:
		default:
			// Отбрасываем самое старое состояние, последнее важнее
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

func (p *Projector) startProgress() {
	p.mu.Lock()
	p.pending++
	p.mu.Unlock()
}

func (p *Projector) stopProgress() {
	p.mu.Lock()
	p.pending--
	done := p.pending == 0
	p.mu.Unlock()

	if done {
		p.notifier.ClearProgress()
	}
}

// Package app runs the engine: it owns the frame queue, the layer stack and the render
// surface, and drives them through the frame loop until a WindowClose event arrives.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"simulacra/internal/engineconfig"
	"simulacra/internal/event"
	"simulacra/internal/layer"
	"simulacra/internal/logger"
	"simulacra/internal/metrics"
	"simulacra/internal/window"
)

var (
	// ErrNotInitialized is returned by Run when Init has not completed.
	ErrNotInitialized = errors.New("app: you must initialize the application first")
	// ErrAlreadyInitialized is returned by a second Init.
	ErrAlreadyInitialized = errors.New("app: already initialized")
	// ErrStopped is returned once the application has terminated; it cannot be restarted.
	ErrStopped = errors.New("app: stopped")
	// ErrRunning is returned by Run when called from inside the running loop.
	ErrRunning = errors.New("app: already running")
)

// State is the application's lifecycle stage. It only ever moves forward.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures an Application at construction.
type Option func(*Application)

// WithLogger makes the application log through l and skips global logger setup in Init.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Application) {
		a.log = l
		a.ownLogger = true
	}
}

// WithMetrics records frame, event and layer metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Application) {
		a.metrics = m
	}
}

// WithLayerRecovery overrides cfg.RecoverLayerPanics.
func WithLayerRecovery(on bool) Option {
	return func(a *Application) {
		a.recoverLayers = on
	}
}

// Application owns the event queue, the layer stack and the surface. It is single-threaded:
// every method must be called from the goroutine (and OS thread) that runs the loop.
type Application struct {
	cfg       engineconfig.Config
	surface   window.Surface
	log       zerolog.Logger
	ownLogger bool
	metrics   *metrics.Metrics

	recoverLayers bool
	state         State
	running       bool
	tornDown      bool
	pendingDown   bool // Shutdown was requested from inside the loop

	queue  event.Queue
	layers *layer.Stack
}

// New returns an uninitialized application drawing to surface.
func New(cfg engineconfig.Config, surface window.Surface, opts ...Option) *Application {
	a := &Application{
		cfg:           cfg,
		surface:       surface,
		log:           logger.WithComponent("app"),
		recoverLayers: cfg.RecoverLayerPanics,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.layers = layer.NewStack(a.log)
	a.layers.OnRecover = func(layer.ID, any) {
		a.metrics.LayerPanic()
		a.metrics.SetLayers(a.layers.Len())
	}
	return a
}

// Init sets up logging, initializes the surface and marks the application running.
// It fails if called twice or if the surface cannot be initialized; in the latter case the
// application stays uninitialized.
func (a *Application) Init() error {
	switch a.state {
	case StateUninitialized:
	case StateStopped:
		return ErrStopped
	default:
		return ErrAlreadyInitialized
	}

	if !a.ownLogger {
		logger.Configure(logger.Config{Level: a.cfg.LogLevel, File: a.cfg.LogFile})
		a.log = logger.WithComponent("app")
		a.layers.SetLogger(a.log)
	}
	a.log.Info().Str("title", a.surface.Title()).Int("width", a.surface.Width()).Int("height", a.surface.Height()).
		Msg("App Starting")

	if err := a.surface.Init(); err != nil {
		return fmt.Errorf("app: init surface: %w", err)
	}
	a.layers.SetRecover(a.recoverLayers)

	a.state = StateInitialized
	a.running = true
	return nil
}

// Run drives the frame loop until a WindowClose event is seen, then returns nil.
// Layers are not detached when the loop ends; call Shutdown for teardown, unless Shutdown
// was called during the loop, in which case Run performs it and returns its error.
func (a *Application) Run() error {
	switch a.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateRunning:
		return ErrRunning
	case StateStopped:
		return ErrStopped
	}

	a.state = StateRunning
	for a.running {
		a.frame()
	}
	a.state = StateStopped
	if a.pendingDown {
		return a.Shutdown()
	}
	return nil
}

// frame runs one loop iteration. Layers are dispatched before the surface collects this
// frame's input, so they only see events queued earlier (e.g. through PushEvent); the
// surface's events reach the close check and are then cleared without being dispatched.
func (a *Application) frame() {
	start := time.Now()

	a.surface.Present()
	a.layers.Dispatch(&a.queue)
	a.surface.OnUpdate(&a.queue)
	a.handleEvents()

	a.metrics.ObserveFrame(time.Since(start), &a.queue)
	a.queue.Clear()
}

// handleEvents is the application's own pass over the queue. A WindowClose stops the loop
// whether or not a layer consumed it; more than one is the same as one.
func (a *Application) handleEvents() {
	if a.running && a.queue.Contains(event.TypeWindowClose) {
		a.log.Info().Msg("App Stopping")
		a.running = false
	}
}

// PushLayer attaches l on top of the stack.
func (a *Application) PushLayer(l layer.Layer) layer.ID {
	id := a.layers.Push(l)
	a.metrics.SetLayers(a.layers.Len())
	return id
}

// PopLayer detaches the layer with the given ID.
func (a *Application) PopLayer(id layer.ID) bool {
	ok := a.layers.Pop(id)
	a.metrics.SetLayers(a.layers.Len())
	return ok
}

// PushEvent queues e for the next layer dispatch. Called from a layer during dispatch, the
// event is visible to the layers below it in the same pass.
func (a *Application) PushEvent(e event.Event) {
	a.queue.Push(e)
}

// Shutdown detaches every layer, most recent first, then closes the surface if it was
// initialized. It leaves the application stopped. Safe to call more than once.
// Called while Run is looping (e.g. from a layer), it only stops the loop; the teardown
// happens after the current frame, before Run returns.
func (a *Application) Shutdown() error {
	if a.tornDown {
		return nil
	}
	if a.state == StateRunning {
		a.running = false
		a.pendingDown = true
		return nil
	}
	a.tornDown = true
	a.running = false

	a.layers.DetachAll()
	a.metrics.SetLayers(0)

	var err error
	if a.state != StateUninitialized {
		if cerr := a.surface.Close(); cerr != nil {
			err = fmt.Errorf("app: close surface: %w", cerr)
		}
	}
	a.state = StateStopped
	a.log.Info().Msg("App shut down")
	return err
}

// IsRunning reports whether the loop should keep going. It becomes true in Init and false
// only when a WindowClose is handled (or on Shutdown).
func (a *Application) IsRunning() bool {
	return a.running
}

// State returns the lifecycle stage.
func (a *Application) State() State {
	return a.state
}

// Surface returns the render surface.
func (a *Application) Surface() window.Surface {
	return a.surface
}

// Layers returns the number of attached layers.
func (a *Application) Layers() int {
	return a.layers.Len()
}

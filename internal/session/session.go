package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/swipeplayer/internal/anim"
	"github.com/ytget/swipeplayer/internal/dispatch"
	"github.com/ytget/swipeplayer/internal/engine"
	"github.com/ytget/swipeplayer/internal/gesture"
	"github.com/ytget/swipeplayer/internal/library"
	"github.com/ytget/swipeplayer/internal/model"
	"github.com/ytget/swipeplayer/internal/player"
)

// DefaultTickInterval is the period of the progress clock
const DefaultTickInterval = time.Second

// Options configures a Session
type Options struct {
	Player          player.Options
	Gesture         gesture.Config
	ExpandedOffset  float64
	CollapsedOffset float64
	TickInterval    time.Duration
	// WatchDir, when set, is watched for audio file changes that trigger a reload
	WatchDir string
}

// DefaultOptions returns the reference configuration
func DefaultOptions() Options {
	return Options{
		Player:          player.DefaultOptions(),
		Gesture:         gesture.DefaultConfig(),
		ExpandedOffset:  gesture.DefaultExpandedOffset,
		CollapsedOffset: gesture.DefaultCollapsedOffset,
		TickInterval:    DefaultTickInterval,
	}
}

// Session is one running player
type Session struct {
	queue      *dispatch.Queue
	machine    *player.Machine
	mapper     *gesture.Mapper
	reconciler *anim.Reconciler
	driver     *anim.Driver
	velocity   gesture.VelocityTracker

	engine engine.Engine
	store  *library.Store
	source library.Source

	clock        chan player.ClockState
	tickInterval time.Duration
	watchDir     string
	reloadMu     sync.Mutex
	reloads      chan struct{}

	cbMu       sync.RWMutex
	onSnapshot func(model.Snapshot)
	onStatus   func(model.LibraryStatus)

	log *logrus.Entry
}

// New creates a session playing through eng and reading tracks from source into store
func New(eng engine.Engine, store *library.Store, source library.Source, opts Options) *Session {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	s := &Session{
		queue:        dispatch.New(),
		engine:       eng,
		store:        store,
		source:       source,
		clock:        make(chan player.ClockState, 1),
		reloads:      make(chan struct{}, 1),
		tickInterval: opts.TickInterval,
		watchDir:     opts.WatchDir,
		log:          logrus.WithField("component", "session"),
	}

	s.machine = player.NewMachine(eng, opts.Player)
	s.mapper = gesture.NewMapper(opts.ExpandedOffset, opts.CollapsedOffset, opts.Gesture)
	s.reconciler = anim.NewReconciler(false, func(expanded bool) {
		s.queue.Post(func() { s.machine.SetExpanded(expanded) })
	})
	s.driver = anim.NewDriver(s.mapper, s.reconciler, nil)

	s.machine.SetUpdateCallback(s.publish)
	s.machine.SetPulseCallback(s.driver.Trigger)
	s.machine.SetClockCallback(s.setClock)
	s.machine.SetExpandRequestCallback(s.Expand)

	eng.SetCallbacks(
		func(h engine.Handle) {
			s.queue.Post(func() { s.machine.TrackFinished(h) })
		},
		func(h engine.Handle, err error) {
			s.queue.Post(func() { s.machine.PlaybackFailed(h, err) })
		},
	)

	store.Subscribe(func(tracks []model.Track) {
		liked := store.Liked()
		s.queue.Post(func() { s.machine.SetTracks(tracks, liked) })
	})
	store.SubscribeStatus(func(status model.LibraryStatus) {
		s.cbMu.RLock()
		callback := s.onStatus
		s.cbMu.RUnlock()
		if callback != nil {
			callback(status)
		}
	})

	return s
}

// SetSnapshotCallback sets the function receiving player state after every change.
// It runs on the logical thread and must not block.
func (s *Session) SetSnapshotCallback(callback func(model.Snapshot)) {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()
	s.onSnapshot = callback
}

// SetFrameCallback sets the function receiving every animation frame
func (s *Session) SetFrameCallback(callback func(anim.Frame)) {
	s.driver.SetFrameCallback(callback)
}

// SetStatusCallback sets the function receiving library status changes
func (s *Session) SetStatusCallback(callback func(model.LibraryStatus)) {
	s.cbMu.Lock()
	defer s.cbMu.Unlock()
	s.onStatus = callback
}

// Store returns the track store
func (s *Session) Store() *library.Store {
	return s.store
}

// CatalogName returns the name of the loaded catalog
func (s *Session) CatalogName() string {
	return s.store.Name()
}

// Run starts every worker and blocks until ctx is cancelled or one of them fails.
// The engine is closed on return.
func (s *Session) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.queue.Run(ctx) })
	g.Go(func() error { return s.driver.Run(ctx) })
	g.Go(func() error { return s.runClock(ctx) })
	g.Go(func() error { return s.runReloads(ctx) })
	s.requestReload()

	if s.watchDir != "" {
		w, err := library.NewWatcher(s.watchDir, s.requestReload)
		if err != nil {
			s.log.WithError(err).Warn("library watcher disabled")
		} else {
			g.Go(func() error { return w.Run(ctx) })
		}
	}

	s.mapper.Enter()
	s.log.Info("session started")

	err := g.Wait()
	s.queue.Close()
	if cerr := s.engine.Close(); cerr != nil {
		s.log.WithError(cerr).Debug("engine close")
	}
	s.log.Info("session stopped")
	return err
}

// Reload reads the library source into the store
func (s *Session) Reload() {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if err := s.store.Refresh(s.source); err != nil {
		s.log.WithError(err).Warn("library reload failed")
	}
}

// Retry reloads the library in the background, e.g. after access was denied.
// The reload runs on the session's reload worker once Run is active.
func (s *Session) Retry() {
	s.requestReload()
}

// requestReload schedules a reload. Requests made while one is pending coalesce.
func (s *Session) requestReload() {
	select {
	case s.reloads <- struct{}{}:
	default:
	}
}

// runReloads performs requested reloads until ctx is done
func (s *Session) runReloads(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.reloads:
			s.Reload()
		}
	}
}

// TogglePlayPause flips between playing and paused
func (s *Session) TogglePlayPause() {
	s.queue.Post(s.machine.TogglePlayPause)
}

// SelectTrack plays the track at index, or expands if it is already current
func (s *Session) SelectTrack(index int) {
	s.queue.Post(func() { s.machine.SelectTrack(index) })
}

// AdvanceTrack moves to the next or previous track
func (s *Session) AdvanceTrack(direction model.Direction) {
	s.queue.Post(func() { s.machine.AdvanceTrack(direction) })
}

// ToggleLike likes or unlikes a track
func (s *Session) ToggleLike(trackID int) {
	s.queue.Post(func() { s.machine.ToggleLike(trackID) })
}

// DragStart begins a drag of the player surface
func (s *Session) DragStart(now time.Time) {
	s.mapper.Start()
	s.velocity.Reset()
	s.velocity.Add(now, s.mapper.Y())
}

// DragUpdate moves the surface by the translation accumulated since DragStart
func (s *Session) DragUpdate(now time.Time, translation float64) {
	s.mapper.Update(translation)
	s.velocity.Add(now, s.mapper.Y())
}

// DragEnd releases the surface and returns the bound it commits to
func (s *Session) DragEnd(now time.Time) gesture.Target {
	return s.mapper.End(s.velocity.Velocity(now))
}

// Expand animates the surface to the expanded bound
func (s *Session) Expand() {
	s.mapper.Commit(gesture.TargetExpanded)
}

// Collapse animates the surface to the collapsed bound
func (s *Session) Collapse() {
	s.mapper.Commit(gesture.TargetCollapsed)
}

// SetBounds updates the surface bounds after a resize
func (s *Session) SetBounds(expandedOffset, collapsedOffset float64) {
	s.mapper.SetBounds(expandedOffset, collapsedOffset)
}

// Bounds returns the surface bounds
func (s *Session) Bounds() (float64, float64) {
	return s.mapper.Bounds()
}

func (s *Session) publish(snapshot model.Snapshot) {
	s.driver.SetPlaying(snapshot.IsPlaying)

	s.cbMu.RLock()
	callback := s.onSnapshot
	s.cbMu.RUnlock()
	if callback != nil {
		callback(snapshot)
	}
}

// setClock hands the latest clock state to runClock, replacing an unread one
func (s *Session) setClock(state player.ClockState) {
	for {
		select {
		case s.clock <- state:
			return
		default:
		}
		select {
		case <-s.clock:
		default:
		}
	}
}

func (s *Session) runClock(ctx context.Context) error {
	var (
		ticker *time.Ticker
		ticks  <-chan time.Time
		gen    uint64
	)
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
		ticks = nil
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case state := <-s.clock:
			stop()
			gen = state.Gen
			if state.Running {
				ticker = time.NewTicker(s.tickInterval)
				ticks = ticker.C
			}
		case <-ticks:
			tickGen := gen
			s.queue.Post(func() { s.machine.Tick(tickGen) })
		}
	}
}

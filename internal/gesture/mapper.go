package gesture

import (
	"math"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ytget/swipeplayer/internal/anim"
)

// Default gesture tuning
const (
	DefaultExpandedOffset  = 44.0
	DefaultCollapsedOffset = 700.0
	DefaultFlickVelocity   = 500.0
	DefaultCommitFraction  = 0.4
	DefaultCommitDuration  = 400 * time.Millisecond
	DefaultEnterDuration   = 500 * time.Millisecond
	DefaultEnterDistance   = 180.0
)

// Target is the bound a released drag settles on
type Target int

const (
	TargetExpanded Target = iota
	TargetCollapsed
)

// String returns the string representation of Target
func (t Target) String() string {
	switch t {
	case TargetExpanded:
		return "expanded"
	case TargetCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// Config holds the release classification and commit timing
type Config struct {
	FlickVelocity  float64
	CommitFraction float64
	CommitDuration time.Duration
	EnterDuration  time.Duration
	EnterDistance  float64
}

// DefaultConfig returns the stock gesture tuning
func DefaultConfig() Config {
	return Config{
		FlickVelocity:  DefaultFlickVelocity,
		CommitFraction: DefaultCommitFraction,
		CommitDuration: DefaultCommitDuration,
		EnterDuration:  DefaultEnterDuration,
		EnterDistance:  DefaultEnterDistance,
	}
}

// Classify decides where a drag released at y with velocity v settles.
// A flick of at least FlickVelocity wins over position in either direction;
// otherwise the surface collapses only when it was released past the commit
// fraction. A release exactly on the commit threshold resolves toward expanded.
func Classify(y, velocity, expandedOffset, collapsedOffset float64, cfg Config) Target {
	switch {
	case velocity <= -cfg.FlickVelocity:
		return TargetExpanded
	case velocity >= cfg.FlickVelocity:
		return TargetCollapsed
	}

	threshold := expandedOffset + cfg.CommitFraction*(collapsedOffset-expandedOffset)
	if y > threshold {
		return TargetCollapsed
	}
	return TargetExpanded
}

// Mapper owns the surface position y. Drag updates write y directly; releases,
// taps and expand requests all go through Commit. Safe for concurrent use.
type Mapper struct {
	mu        sync.Mutex
	cfg       Config
	y         *anim.Scalar
	expanded  float64
	collapsed float64
	startY    float64
	dragging  bool
	tween     *anim.Tween
	now       func() time.Time
	log       *logrus.Entry
}

// NewMapper creates a mapper resting at the collapsed bound
func NewMapper(expandedOffset, collapsedOffset float64, cfg Config) *Mapper {
	if collapsedOffset <= expandedOffset {
		collapsedOffset = expandedOffset + 1
	}
	return &Mapper{
		cfg:       cfg,
		y:         anim.NewScalar(collapsedOffset),
		expanded:  expandedOffset,
		collapsed: collapsedOffset,
		now:       time.Now,
		log:       logrus.WithField("component", "gesture"),
	}
}

// Position returns the shared cell holding y
func (m *Mapper) Position() *anim.Scalar {
	return m.y
}

// Y returns the current position
func (m *Mapper) Y() float64 {
	return m.y.Load()
}

// Bounds returns the expanded and collapsed offsets
func (m *Mapper) Bounds() (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expanded, m.collapsed
}

// Dragging reports whether a drag is in progress
func (m *Mapper) Dragging() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dragging
}

// Start begins a drag from the current position, cancelling any commit in flight
func (m *Mapper) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startLocked()
}

func (m *Mapper) startLocked() {
	if m.tween != nil {
		v, _ := m.tween.At(m.now())
		m.y.Store(v)
		m.tween = nil
	}
	m.startY = m.y.Load()
	m.dragging = true
}

// Update moves y to the drag start plus the accumulated translation
func (m *Mapper) Update(translation float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dragging {
		m.startLocked()
	}
	m.y.Store(lo.Clamp(m.startY+translation, m.expanded, m.collapsed))
}

// End classifies the release and commits to the chosen bound
func (m *Mapper) End(velocity float64) Target {
	m.mu.Lock()
	m.dragging = false
	target := Classify(m.y.Load(), velocity, m.expanded, m.collapsed, m.cfg)
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"y":        m.y.Load(),
		"velocity": velocity,
		"target":   target,
	}).Debug("drag released")

	m.Commit(target)
	return target
}

// Commit animates y to the bound for target
func (m *Mapper) Commit(target Target) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dragging = false
	to := m.boundLocked(target)
	from := m.currentLocked()
	if math.Abs(from-to) < anim.BoundEpsilon {
		m.y.Store(to)
		m.tween = nil
		return
	}

	tw := anim.NewTween(from, to, m.now(), m.cfg.CommitDuration)
	m.tween = &tw
}

// Enter slides the surface in from below the collapsed bound
func (m *Mapper) Enter() {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.collapsed + m.cfg.EnterDistance
	m.y.Store(from)
	tw := anim.NewTween(from, m.collapsed, m.now(), m.cfg.EnterDuration)
	m.tween = &tw
}

// SetBounds changes the bounds after a resize, keeping y at the same relative place
func (m *Mapper) SetBounds(expandedOffset, collapsedOffset float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if collapsedOffset <= expandedOffset {
		m.log.Warnf("ignoring invalid bounds [%v, %v]", expandedOffset, collapsedOffset)
		return
	}
	if expandedOffset == m.expanded && collapsedOffset == m.collapsed {
		return
	}

	remap := func(v float64) float64 {
		frac := (v - m.expanded) / (m.collapsed - m.expanded)
		return expandedOffset + frac*(collapsedOffset-expandedOffset)
	}
	m.y.Store(remap(m.y.Load()))
	m.startY = remap(m.startY)
	if m.tween != nil {
		m.tween.From = remap(m.tween.From)
		m.tween.To = remap(m.tween.To)
	}
	m.expanded = expandedOffset
	m.collapsed = collapsedOffset
}

// Advance moves an in-flight commit to now and returns y
func (m *Mapper) Advance(now time.Time) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tween != nil {
		v, done := m.tween.At(now)
		m.y.Store(v)
		if done {
			m.tween = nil
		}
	}
	return m.y.Load()
}

// Animating reports whether a commit or entrance is in flight
func (m *Mapper) Animating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tween != nil
}

func (m *Mapper) boundLocked(target Target) float64 {
	if target == TargetCollapsed {
		return m.collapsed
	}
	return m.expanded
}

func (m *Mapper) currentLocked() float64 {
	if m.tween != nil {
		v, _ := m.tween.At(m.now())
		m.y.Store(v)
		return v
	}
	return m.y.Load()
}

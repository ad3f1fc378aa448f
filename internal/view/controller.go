package view

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-widget/internal/weather"
)

// Fetcher resolves a free-text location into a snapshot. weather.Service implements it.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (weather.Snapshot, error)
}

// State is the controller's render cycle state.
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateRendering State = "rendering"
)

const backgroundKey = "background"

// Options tunes the controller. Zero values fall back to the defaults below.
type Options struct {
	TextFadeDelay  time.Duration
	VideoFadeDelay time.Duration
	VideoBasePath  string // directory holding <key>.mp4 files
	Scheduler      Scheduler
}

const (
	DefaultTextFadeDelay  = 150 * time.Millisecond
	DefaultVideoFadeDelay = 300 * time.Millisecond
	DefaultVideoBasePath  = "/videos"
)

// Controller drives the widget: it reacts to location submissions and unit
// changes and renders snapshots into its Bindings.
type Controller struct {
	fetcher Fetcher
	b       Bindings
	anim    *Animator
	opts    Options

	// events serializes event handlers; mu guards the display state below.
	events sync.Mutex
	mu     sync.RWMutex

	state       State
	unit        weather.Unit
	current     *weather.Snapshot
	shown       map[Field]string
	video       weather.VideoKey
	lastQuery   string
	lastFailure error
	renderID    string
}

// NewController binds the controller to its elements. Every binding must be set.
func NewController(fetcher Fetcher, b Bindings, opts Options) (*Controller, error) {
	if fetcher == nil {
		return nil, errors.New("view: fetcher is required")
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if opts.TextFadeDelay <= 0 {
		opts.TextFadeDelay = DefaultTextFadeDelay
	}
	if opts.VideoFadeDelay <= 0 {
		opts.VideoFadeDelay = DefaultVideoFadeDelay
	}
	if opts.VideoBasePath == "" {
		opts.VideoBasePath = DefaultVideoBasePath
	}

	shown := make(map[Field]string, len(Fields))
	for _, f := range Fields {
		shown[f] = b.Text(f).Text()
	}

	return &Controller{
		fetcher: fetcher,
		b:       b,
		anim:    NewAnimator(opts.Scheduler),
		opts:    opts,
		state:   StateIdle,
		unit:    weather.UnitCelsius,
		shown:   shown,
	}, nil
}

// SubmitLocation types location into the input and submits it.
func (c *Controller) SubmitLocation(ctx context.Context, location string) error {
	c.events.Lock()
	defer c.events.Unlock()

	c.b.Input.SetValue(location)
	return c.submit(ctx, c.b.Input.Value(), true)
}

// OnLocationSubmitted handles a submission of whatever the input currently holds.
func (c *Controller) OnLocationSubmitted(ctx context.Context) error {
	c.events.Lock()
	defer c.events.Unlock()

	return c.submit(ctx, c.b.Input.Value(), true)
}

// Refresh re-fetches the last successfully rendered query without touching the input.
func (c *Controller) Refresh(ctx context.Context) error {
	c.events.Lock()
	defer c.events.Unlock()

	c.mu.RLock()
	query := c.lastQuery
	c.mu.RUnlock()
	if query == "" {
		log.Println("INFO: refresh skipped; nothing rendered yet")
		return nil
	}
	return c.submit(ctx, query, false)
}

func (c *Controller) submit(ctx context.Context, query string, clearInput bool) error {
	c.setState(StateLoading)
	c.b.Loading.Show()

	snap, err := c.fetcher.Fetch(ctx, query)
	if clearInput {
		c.b.Input.Clear()
	}
	if err != nil {
		log.Printf("ERROR: weather fetch failed, display left unchanged: %v", err)
		c.mu.Lock()
		c.lastFailure = err
		c.state = StateIdle
		c.mu.Unlock()
		c.b.Loading.Hide()
		return err
	}

	if err := c.render(&snap); err != nil {
		c.mu.Lock()
		c.lastFailure = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.lastQuery = snap.Query
	if c.lastQuery == "" {
		c.lastQuery = query
	}
	c.lastFailure = nil
	c.mu.Unlock()
	return nil
}

// Render displays snap in the active unit. Malformed snapshots are rejected
// before any element is touched.
func (c *Controller) Render(snap *weather.Snapshot) error {
	c.events.Lock()
	defer c.events.Unlock()

	return c.render(snap)
}

func (c *Controller) render(snap *weather.Snapshot) error {
	if err := snap.Validate(); err != nil {
		log.Printf("ERROR: refusing to render: %v", err)
		c.setState(StateIdle)
		c.b.Loading.Hide()
		return err
	}
	s := *snap
	id := uuid.NewString()

	c.setState(StateLoading)
	c.b.Loading.Show()

	key := weather.SelectVideoKey(s.Conditions)

	c.setState(StateRendering)
	c.transitionVideo(key)

	c.mu.RLock()
	unit := c.unit
	c.mu.RUnlock()
	changed := c.renderFields(&s, unit)

	// Fades are still running; they are not waited for.
	c.b.Loading.Hide()

	c.mu.Lock()
	c.current = &s
	c.renderID = id
	c.state = StateIdle
	c.mu.Unlock()

	log.Printf("INFO: render %s: %q %s, %d field(s) updated, video %s", id, s.Location, s.Conditions, changed, key)
	return nil
}

func (c *Controller) transitionVideo(key weather.VideoKey) {
	c.mu.Lock()
	if c.video == key {
		c.mu.Unlock()
		return
	}
	c.video = key
	c.mu.Unlock()

	src := c.videoSource(key)
	bg := c.b.Background
	c.anim.Fade(backgroundKey, c.opts.VideoFadeDelay,
		func() { bg.SetVisible(false) },
		func() {
			bg.SetSource(src)
			if err := bg.Play(); err != nil {
				log.Printf("WARN: background video %s did not start: %v", src, err)
			}
			bg.SetVisible(true)
		},
	)
}

func (c *Controller) videoSource(key weather.VideoKey) string {
	return path.Join(c.opts.VideoBasePath, string(key)+".mp4")
}

// renderFields schedules a fade for every field whose text changes and
// returns how many were scheduled.
func (c *Controller) renderFields(s *weather.Snapshot, unit weather.Unit) int {
	texts := map[Field]string{
		FieldLocation:    s.Location,
		FieldConditions:  s.Conditions,
		FieldTemperature: weather.FormatTemperature(s.Temperature, unit),
		FieldFeelsLike:   weather.FormatTemperature(s.FeelsLike, unit),
		FieldWind:        weather.FormatWindSpeed(s.WindSpeed),
		FieldHumidity:    weather.FormatHumidity(s.Humidity),
	}

	changed := 0
	for _, f := range Fields {
		text := texts[f]

		c.mu.Lock()
		if c.shown[f] == text {
			c.mu.Unlock()
			continue
		}
		c.shown[f] = text
		c.mu.Unlock()

		el := c.b.Text(f)
		c.anim.Fade(string(f), c.opts.TextFadeDelay,
			func() { el.SetVisible(false) },
			func() {
				el.SetText(text)
				el.SetVisible(true)
			},
		)
		changed++
	}
	return changed
}

// SetUnit switches the display unit and re-renders the held snapshot, if any,
// without fetching.
func (c *Controller) SetUnit(u weather.Unit) error {
	if u != weather.UnitCelsius && u != weather.UnitFahrenheit {
		return fmt.Errorf("view: unsupported unit %q", u)
	}

	c.events.Lock()
	defer c.events.Unlock()

	c.applyUnit(u)
	return nil
}

// ToggleUnit flips between Celsius and Fahrenheit and returns the new unit.
func (c *Controller) ToggleUnit() weather.Unit {
	c.events.Lock()
	defer c.events.Unlock()

	c.mu.RLock()
	u := c.unit.Toggle()
	c.mu.RUnlock()

	c.applyUnit(u)
	return u
}

func (c *Controller) applyUnit(u weather.Unit) {
	c.mu.Lock()
	if c.unit == u {
		c.mu.Unlock()
		return
	}
	c.unit = u
	snap := c.current
	c.mu.Unlock()

	if snap == nil {
		return
	}
	changed := c.renderFields(snap, u)
	log.Printf("INFO: unit switched to %s, %d field(s) updated", u, changed)
}

// Unit returns the active display unit.
func (c *Controller) Unit() weather.Unit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unit
}

// Current returns a copy of the held snapshot.
func (c *Controller) Current() (weather.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return weather.Snapshot{}, false
	}
	return *c.current, true
}

// State returns the current render cycle state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Close cancels pending fades.
func (c *Controller) Close() {
	c.anim.Stop()
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

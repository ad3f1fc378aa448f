package view

import "sync"

// MemoryText is an in-memory TextElement. Writes counts SetText calls.
type MemoryText struct {
	mu      sync.RWMutex
	text    string
	visible bool
	writes  int
}

func NewMemoryText() *MemoryText {
	return &MemoryText{visible: true}
}

func (m *MemoryText) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

func (m *MemoryText) SetText(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	m.writes++
}

func (m *MemoryText) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

func (m *MemoryText) SetVisible(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = v
}

func (m *MemoryText) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// MemoryVideo is an in-memory VideoElement.
type MemoryVideo struct {
	mu      sync.RWMutex
	source  string
	visible bool
	plays   int
	playErr error
}

func NewMemoryVideo() *MemoryVideo {
	return &MemoryVideo{visible: true}
}

func (m *MemoryVideo) Source() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

func (m *MemoryVideo) SetSource(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.source = s
}

func (m *MemoryVideo) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

func (m *MemoryVideo) SetVisible(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = v
}

// Play counts the attempt and returns the error set with SetPlayError.
func (m *MemoryVideo) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plays++
	return m.playErr
}

func (m *MemoryVideo) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *MemoryVideo) Plays() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.plays
}

// MemoryIndicator is an in-memory Indicator.
type MemoryIndicator struct {
	mu      sync.RWMutex
	visible bool
	shows   int
}

func (m *MemoryIndicator) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

func (m *MemoryIndicator) Show() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = true
	m.shows++
}

func (m *MemoryIndicator) Hide() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = false
}

func (m *MemoryIndicator) Shows() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shows
}

// MemoryInput is an in-memory InputElement.
type MemoryInput struct {
	mu    sync.RWMutex
	value string
}

func (m *MemoryInput) Value() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

func (m *MemoryInput) SetValue(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = s
}

func (m *MemoryInput) Clear() { m.SetValue("") }

// NewMemoryBindings returns Bindings backed entirely by in-memory elements.
func NewMemoryBindings() Bindings {
	return Bindings{
		Location:    NewMemoryText(),
		Conditions:  NewMemoryText(),
		Temperature: NewMemoryText(),
		FeelsLike:   NewMemoryText(),
		Wind:        NewMemoryText(),
		Humidity:    NewMemoryText(),
		Background:  NewMemoryVideo(),
		Loading:     &MemoryIndicator{},
		Input:       &MemoryInput{},
	}
}

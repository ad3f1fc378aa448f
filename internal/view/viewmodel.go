package view

import "github.com/i474232898/weather-widget/internal/weather"

// FieldView is what one text element currently shows.
type FieldView struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// ViewModel is a serializable picture of the display surface and controller state.
type ViewModel struct {
	State        State               `json:"state"`
	Unit         weather.Unit        `json:"unit"`
	Video        weather.VideoKey    `json:"video,omitempty"`
	VideoSource  string              `json:"videoSource,omitempty"`
	VideoVisible bool                `json:"videoVisible"`
	Loading      bool                `json:"loading"`
	Input        string              `json:"input"`
	Fields       map[Field]FieldView `json:"fields"`
	Animating    int                 `json:"animating"`
	Current      *weather.Snapshot   `json:"current,omitempty"`
	RenderID     string              `json:"renderId,omitempty"`
	LastError    string              `json:"lastError,omitempty"`
}

// View reads the bindings and display state. It never waits on an in-flight fetch.
func (c *Controller) View() ViewModel {
	vm := ViewModel{
		VideoSource:  c.b.Background.Source(),
		VideoVisible: c.b.Background.Visible(),
		Loading:      c.b.Loading.Visible(),
		Input:        c.b.Input.Value(),
		Fields:       make(map[Field]FieldView, len(Fields)),
		Animating:    c.anim.Pending(),
	}
	for _, f := range Fields {
		el := c.b.Text(f)
		vm.Fields[f] = FieldView{Text: el.Text(), Visible: el.Visible()}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	vm.State = c.state
	vm.Unit = c.unit
	vm.Video = c.video
	vm.RenderID = c.renderID
	if c.current != nil {
		snap := *c.current
		vm.Current = &snap
	}
	if c.lastFailure != nil {
		vm.LastError = c.lastFailure.Error()
	}
	return vm
}

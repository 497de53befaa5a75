package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Option is one entry of a Select.
type Option struct {
	Value string
	Label string
}

// ValueSource is any control a criterion can be read from.
type ValueSource interface {
	Value() string
}

// OptionList is a select whose options can be rebuilt.
type OptionList interface {
	ValueSource
	Reset(o Option)
	Append(o Option)
	SetDisabled(disabled bool)
}

// HTMLSink receives rendered markup.
type HTMLSink interface {
	SetHTML(html string)
}

// Toggle is a show/hide indicator.
type Toggle interface {
	Show()
	Hide()
}

// Select is an in-memory <select> control.
type Select struct {
	id       string
	value    string
	options  []Option
	disabled bool
}

func NewSelect(id, value string, options ...Option) *Select {
	return &Select{id: id, value: value, options: options}
}

func (s *Select) ID() string { return s.id }
func (s *Select) Value() string { return s.value }
func (s *Select) Disabled() bool { return s.disabled }

func (s *Select) SetValue(value string) { s.value = value }
func (s *Select) SetDisabled(disabled bool) { s.disabled = disabled }

// Options returns a copy of the current options in display order.
func (s *Select) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Reset replaces every option with o and selects it.
func (s *Select) Reset(o Option) {
	s.options = []Option{o}
	s.value = o.Value
}

func (s *Select) Append(o Option) {
	s.options = append(s.options, o)
}

// Node renders the control. extra is appended to the element's attributes.
func (s *Select) Node(extra ...g.Node) g.Node {
	return h.Select(
		h.ID(s.id),
		h.Name(s.id),
		g.If(s.disabled, h.Disabled()),
		g.Group(extra),
		g.Group(g.Map(s.options, func(o Option) g.Node {
			return h.Option(h.Value(o.Value), g.If(o.Value == s.value, h.Selected()), g.Text(o.Label))
		})),
	)
}

// Input is an in-memory text input.
type Input struct {
	id    string
	value string
}

func NewInput(id, value string) *Input {
	return &Input{id: id, value: value}
}

func (i *Input) ID() string { return i.id }
func (i *Input) Value() string { return i.value }
func (i *Input) SetValue(value string) { i.value = value }

func (i *Input) Node(extra ...g.Node) g.Node {
	return h.Input(
		h.Type("text"),
		h.ID(i.id),
		h.Name(i.id),
		g.If(i.value != "", h.Value(i.value)),
		g.Group(extra),
	)
}

// Region is a container whose inner HTML is replaced wholesale.
type Region struct {
	id   string
	html string
}

func NewRegion(id string) *Region {
	return &Region{id: id}
}

func (r *Region) ID() string { return r.id }
func (r *Region) HTML() string { return r.html }
func (r *Region) SetHTML(html string) { r.html = html }

func (r *Region) Node(extra ...g.Node) g.Node {
	return h.Div(h.ID(r.id), g.Group(extra), g.Raw(r.html))
}

// Indicator is a field-level error marker, hidden until shown.
type Indicator struct {
	id      string
	text    string
	visible bool
}

func NewIndicator(id, text string) *Indicator {
	return &Indicator{id: id, text: text}
}

func (i *Indicator) ID() string { return i.id }
func (i *Indicator) Visible() bool { return i.visible }
func (i *Indicator) Show() { i.visible = true }
func (i *Indicator) Hide() { i.visible = false }

func (i *Indicator) Node(extra ...g.Node) g.Node {
	display := "display: none"
	if i.visible {
		display = "display: block"
	}
	return h.Div(
		h.ID(i.id),
		h.Class("error-message"),
		h.Style(display),
		g.Group(extra),
		g.Text(i.text),
	)
}

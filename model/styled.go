package model

// Default nature of styled objects.
const NatureBody = "body"

// Common natures used by the format adapters.
const (
	NatureHeader = "header"
	NatureFooter = "footer"
)

// Styled carries user-defined styles and a nature tag. It is embedded by
// Cell, Table, RowView and ColView.
//
// Styles are key-value pairs, typically HTML-like properties (border-style,
// background-color, vertical-align...), but any vocabulary works. Every
// styled object owns its style map exclusively: SetStyles always copies, so
// two objects never alias the same map.
//
// The nature distinguishes header, body and footer cells. The default is
// "body"; "header", "footer" or any other tag is accepted. When cells are
// merged, the nature of the top-left cell wins.
type Styled struct {
	styles map[string]string
	nature string
}

// NewStyled builds a Styled with a copy of the given styles. An empty
// nature defaults to "body".
func NewStyled(styles map[string]string, nature string) Styled {
	if nature == "" {
		nature = NatureBody
	}
	s := Styled{nature: nature}
	s.SetStyles(styles)
	return s
}

// Styles returns the style map. The map is owned by this object; use
// SetStyles to replace it wholesale.
func (s *Styled) Styles() map[string]string {
	if s.styles == nil {
		s.styles = make(map[string]string)
	}
	return s.styles
}

// SetStyles replaces the style map with a copy of the given one.
func (s *Styled) SetStyles(styles map[string]string) {
	s.styles = make(map[string]string, len(styles))
	for k, v := range styles {
		s.styles[k] = v
	}
}

// Style returns the value of one style, or "" if unset.
func (s *Styled) Style(name string) string {
	return s.styles[name]
}

// SetStyle sets the value of one style.
func (s *Styled) SetStyle(name, value string) {
	if s.styles == nil {
		s.styles = make(map[string]string)
	}
	s.styles[name] = value
}

// MergeStyles copies the given styles into this object's map. On conflict
// the incoming value wins.
func (s *Styled) MergeStyles(styles map[string]string) {
	if s.styles == nil {
		s.styles = make(map[string]string, len(styles))
	}
	for k, v := range styles {
		s.styles[k] = v
	}
}

// Nature returns the nature tag ("body", "header", "footer", ...).
func (s *Styled) Nature() string {
	if s.nature == "" {
		return NatureBody
	}
	return s.nature
}

// SetNature changes the nature tag.
func (s *Styled) SetNature(nature string) {
	s.nature = nature
}

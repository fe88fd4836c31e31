package model

import "fmt"

// Content is the payload of a cell. It is a closed variant: the concrete
// kinds are Text (plain text) and Fragment (raw markup); a nil Content is an
// empty cell. Format adapters pick the kind that matches their dialect.
type Content interface {
	// PlainText extracts the text of the content, for rendering and for
	// the cell's String form.
	PlainText() string

	isContent()
}

// Text is plain-text cell content.
type Text string

func (t Text) PlainText() string { return string(t) }
func (Text) isContent()          {}

// Fragment is raw markup cell content, kept verbatim (inner XML or HTML of
// a source cell). Adapters re-emit it unchanged.
type Fragment string

func (f Fragment) PlainText() string { return string(f) }
func (Fragment) isContent()          {}

// ContentAppender combines the contents of two cells being merged, left to
// right. The default is AppendContent.
type ContentAppender func(a, b Content) (Content, error)

// AppendContent is the default content combiner: it concatenates two
// contents of the same kind. A nil content is the neutral value. Mixing
// kinds fails; callers merging heterogeneous contents must supply their own
// ContentAppender.
func AppendContent(a, b Content) (Content, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	switch left := a.(type) {
	case Text:
		if right, ok := b.(Text); ok {
			return left + right, nil
		}
	case Fragment:
		if right, ok := b.(Fragment); ok {
			return left + right, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot append %T to %T", ErrContentMismatch, b, a)
}

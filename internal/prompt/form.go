package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Form renders a question batch as a single huh form, one group per question.
type Form struct {
	accessible bool
}

// NewForm creates a Form. Accessible mode replaces the TUI with plain line
// prompts for screen readers and dumb terminals.
func NewForm(accessible bool) *Form {
	return &Form{accessible: accessible}
}

// Ask runs the batch. Cancelling with ctrl+c returns ErrCancelled.
func (f *Form) Ask(ctx context.Context, questions []Question) (Answers, error) {
	if len(questions) == 0 {
		return Answers{}, nil
	}

	bindings := make([]*binding, 0, len(questions))
	groups := make([]*huh.Group, 0, len(questions))

	for i := range questions {
		b := newBinding(&questions[i])
		bindings = append(bindings, b)
		groups = append(groups, huh.NewGroup(b.field()))
	}

	form := huh.NewForm(groups...).WithAccessible(f.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return nil, ErrCancelled
		}

		return nil, fmt.Errorf("running prompts: %w", err)
	}

	answers := make(Answers, len(bindings))
	for _, b := range bindings {
		answers[b.q.ID] = b.value()
	}

	return answers, nil
}

// binding owns the storage a huh field writes its value into.
type binding struct {
	q       *Question
	text    string
	confirm bool
	multi   []string
}

func newBinding(q *Question) *binding {
	b := &binding{q: q}

	switch q.Kind {
	case Text, Select:
		if s, ok := q.Default.(string); ok {
			b.text = s
		}
	case Confirm:
		if v, ok := q.Default.(bool); ok {
			b.confirm = v
		}
	case MultiSelect:
		for _, o := range q.Options {
			if o.Selected {
				b.multi = append(b.multi, o.Value)
			}
		}
	}

	return b
}

func (b *binding) field() huh.Field {
	switch b.q.Kind {
	case Select:
		return huh.NewSelect[string]().
			Title(b.q.Title).
			Options(huhOptions(b.q.Options)...).
			Value(&b.text)
	case Confirm:
		return huh.NewConfirm().
			Title(b.q.Title).
			Affirmative("Yes").
			Negative("No").
			Value(&b.confirm)
	case MultiSelect:
		return huh.NewMultiSelect[string]().
			Title(b.q.Title).
			Options(huhOptions(b.q.Options)...).
			Value(&b.multi)
	default:
		return huh.NewInput().
			Title(b.q.Title).
			Value(&b.text)
	}
}

func (b *binding) value() any {
	switch b.q.Kind {
	case Confirm:
		return b.confirm
	case MultiSelect:
		if b.multi == nil {
			return []string{}
		}

		return b.multi
	default:
		return b.text
	}
}

func huhOptions(opts []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))

	for i, o := range opts {
		key := o.Label
		if o.Description != "" {
			key = o.Label + " - " + o.Description
		}

		out[i] = huh.NewOption(key, o.Value).Selected(o.Selected)
	}

	return out
}

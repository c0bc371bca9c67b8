// Package prompt is the boundary to the interactive question engine. The
// resolver describes what it needs as a batch of Questions and receives
// Answers keyed by question ID.
package prompt

import (
	"context"
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user aborts the prompt batch.
var ErrCancelled = errors.New("prompt cancelled")

// Kind selects how a question is rendered and what type its answer has.
type Kind int

const (
	// Text asks for free-form input. Answer type: string.
	Text Kind = iota
	// Select asks for one of Options. Answer type: string.
	Select
	// Confirm asks a yes/no question. Answer type: bool.
	Confirm
	// MultiSelect asks for any subset of Options. Answer type: []string.
	MultiSelect
)

// Option is one choice of a Select or MultiSelect question.
type Option struct {
	Label       string
	Value       string
	Description string
	Selected    bool
}

// Question describes a single prompt.
type Question struct {
	ID      string
	Kind    Kind
	Title   string
	Options []Option

	// Default is the initial value: a string for Text and Select, a bool
	// for Confirm. MultiSelect uses Option.Selected instead.
	Default any
}

// Answers maps question IDs to answer values.
type Answers map[string]any

// String returns the string answer for id.
func (a Answers) String(id string) (string, bool) {
	v, ok := a[id].(string)

	return v, ok
}

// Bool returns the boolean answer for id.
func (a Answers) Bool(id string) (bool, bool) {
	v, ok := a[id].(bool)

	return v, ok
}

// Strings returns the multi-select answer for id.
func (a Answers) Strings(id string) ([]string, bool) {
	v, ok := a[id].([]string)

	return v, ok
}

// Asker runs a batch of questions and returns the answers. Implementations
// return ErrCancelled when the user aborts.
type Asker interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// AskFunc adapts a function to the Asker interface.
type AskFunc func(ctx context.Context, questions []Question) (Answers, error)

// Ask calls f.
func (f AskFunc) Ask(ctx context.Context, questions []Question) (Answers, error) {
	return f(ctx, questions)
}

// Validate checks that an answer set covers the batch with correctly typed values.
func Validate(questions []Question, answers Answers) error {
	for i := range questions {
		q := &questions[i]

		v, ok := answers[q.ID]
		if !ok {
			return fmt.Errorf("missing answer for %q", q.ID)
		}

		var typeOK bool

		switch q.Kind {
		case Text, Select:
			_, typeOK = v.(string)
		case Confirm:
			_, typeOK = v.(bool)
		case MultiSelect:
			_, typeOK = v.([]string)
		}

		if !typeOK {
			return fmt.Errorf("answer for %q has unexpected type %T", q.ID, v)
		}
	}

	return nil
}

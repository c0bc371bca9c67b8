package prompt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/prompt"
)

func TestAnswers_Accessors(t *testing.T) {
	t.Parallel()

	a := prompt.Answers{
		"name":    "demo",
		"eslint":  false,
		"plugins": []string{"forms"},
	}

	name, ok := a.String("name")
	assert.True(t, ok)
	assert.Equal(t, "demo", name)

	eslint, ok := a.Bool("eslint")
	assert.True(t, ok)
	assert.False(t, eslint)

	plugins, ok := a.Strings("plugins")
	assert.True(t, ok)
	assert.Equal(t, []string{"forms"}, plugins)

	_, ok = a.String("eslint")
	assert.False(t, ok, "wrong type is reported as absent")

	_, ok = a.Bool("missing")
	assert.False(t, ok)
}

func TestAskFunc(t *testing.T) {
	t.Parallel()

	var seen []string

	asker := prompt.AskFunc(func(_ context.Context, qs []prompt.Question) (prompt.Answers, error) {
		for _, q := range qs {
			seen = append(seen, q.ID)
		}

		return prompt.Answers{"name": "x"}, nil
	})

	answers, err := asker.Ask(t.Context(), []prompt.Question{{ID: "name", Kind: prompt.Text}})
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, seen)
	assert.Equal(t, "x", answers["name"])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	qs := []prompt.Question{
		{ID: "name", Kind: prompt.Text},
		{ID: "types", Kind: prompt.Select},
		{ID: "eslint", Kind: prompt.Confirm},
		{ID: "plugins", Kind: prompt.MultiSelect},
	}

	good := prompt.Answers{"name": "a", "types": "none", "eslint": true, "plugins": []string{}}
	require.NoError(t, prompt.Validate(qs, good))

	missing := prompt.Answers{"name": "a", "types": "none", "eslint": true}
	err := prompt.Validate(qs, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing answer for "plugins"`)

	wrongType := prompt.Answers{"name": "a", "types": "none", "eslint": "yes", "plugins": []string{}}
	err = prompt.Validate(qs, wrongType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected type")
}

func TestForm_EmptyBatch(t *testing.T) {
	t.Parallel()

	answers, err := prompt.NewForm(true).Ask(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

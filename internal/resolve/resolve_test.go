package resolve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
	"github.com/donaldgifford/create-skeleton-app/internal/prompt"
	"github.com/donaldgifford/create-skeleton-app/internal/resolve"
)

// failingAsker fails the test if any prompt is shown.
func failingAsker(t *testing.T) prompt.Asker {
	t.Helper()

	return prompt.AskFunc(func(context.Context, []prompt.Question) (prompt.Answers, error) {
		t.Fatal("asker must not be called")

		return nil, nil
	})
}

// recordingAsker records the batch and answers from a fixed set. Questions
// without a canned answer get their default.
type recordingAsker struct {
	asked   []prompt.Question
	answers prompt.Answers
}

func (r *recordingAsker) Ask(_ context.Context, qs []prompt.Question) (prompt.Answers, error) {
	r.asked = qs
	out := prompt.Answers{}

	for _, q := range qs {
		if v, ok := r.answers[q.ID]; ok {
			out[q.ID] = v

			continue
		}

		switch q.Kind {
		case prompt.MultiSelect:
			out[q.ID] = []string{}
		default:
			out[q.ID] = q.Default
		}
	}

	return out, nil
}

func (r *recordingAsker) ids() []string {
	ids := make([]string, 0, len(r.asked))
	for _, q := range r.asked {
		ids = append(ids, q.ID)
	}

	return ids
}

func noEnv(string) string { return "" }

func TestResolve_QuietNameOnly(t *testing.T) {
	t.Parallel()

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Flags:  &options.Overlay{Quiet: options.Ptr(true), Name: options.Ptr("My App")},
		Asker:  failingAsker(t),
		Getenv: func(string) string { return "pnpm/8.6.0 npm/? node/v18.16.0 linux x64" },
	})
	require.NoError(t, err)

	want := options.Defaults()
	want.Name = "My App"
	want.Quiet = true
	want.PackageManager = "pnpm"

	assert.Equal(t, &want, got)
}

func TestResolve_QuietKeepsExplicitFalse(t *testing.T) {
	t.Parallel()

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Flags: &options.Overlay{
			Quiet:    options.Ptr(true),
			Prettier: options.Ptr(false),
			Forms:    options.Ptr(true),
			Theme:    options.Ptr("rocket"),
		},
		Asker:  failingAsker(t),
		Getenv: noEnv,
	})
	require.NoError(t, err)

	assert.False(t, got.Prettier)
	assert.True(t, got.ESLint)
	assert.True(t, got.Forms)
	assert.Equal(t, "rocket", got.Theme)
	assert.Equal(t, options.DefaultName, got.Name)
	assert.Equal(t, "npm", got.PackageManager)
}

func TestResolve_NeverAsksForPresentFields(t *testing.T) {
	t.Parallel()

	asker := &recordingAsker{}

	_, err := resolve.Resolve(context.Background(), resolve.Opts{
		Flags: &options.Overlay{
			Name:       options.Ptr("x"),
			ESLint:     options.Ptr(false),
			Playwright: options.Ptr(false),
			Forms:      options.Ptr(false),
			Theme:      options.Ptr("skeleton"),
			Popups:     options.Ptr(false),
		},
		Asker:     asker,
		Templates: catalog.Builtin(),
		Getenv:    noEnv,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		resolve.QTypes,
		resolve.QPrettier,
		resolve.QVitest,
		resolve.QInspector,
		resolve.QPlugins,
		resolve.QTemplate,
		resolve.QFeatures,
	}, asker.ids())

	for _, q := range asker.asked {
		switch q.ID {
		case resolve.QPlugins:
			assert.Len(t, q.Options, 2)
			assert.NotEqual(t, options.PluginForms, q.Options[0].Value)
		case resolve.QFeatures:
			require.Len(t, q.Options, 1)
			assert.Equal(t, options.FeatureCodeBlocks, q.Options[0].Value)
		}
	}
}

func TestResolve_AnswersMerged(t *testing.T) {
	t.Parallel()

	asker := &recordingAsker{answers: prompt.Answers{
		resolve.QName:     "Hello World",
		resolve.QTypes:    string(options.CheckJS),
		resolve.QESLint:   false,
		resolve.QPlugins:  []string{options.PluginTypography, options.PluginLineClamp},
		resolve.QTheme:    "vintage",
		resolve.QTemplate: "welcome",
		resolve.QFeatures: []string{options.FeaturePopups},
	}}

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Flags:     &options.Overlay{Vitest: options.Ptr(true)},
		Asker:     asker,
		Templates: catalog.Builtin(),
		Getenv:    noEnv,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello World", got.Name)
	assert.Equal(t, options.CheckJS, got.Types)
	assert.False(t, got.ESLint)
	assert.True(t, got.Vitest)
	assert.True(t, got.Typography)
	assert.True(t, got.LineClamp)
	assert.False(t, got.Forms)
	assert.Equal(t, "vintage", got.Theme)
	assert.Equal(t, "welcome", got.Template)
	assert.True(t, got.Popups)
	assert.False(t, got.CodeBlocks)
}

func TestResolve_EmptyNameAnswerUsesDefault(t *testing.T) {
	t.Parallel()

	asker := &recordingAsker{answers: prompt.Answers{resolve.QName: "  "}}

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Asker:     asker,
		Templates: catalog.Builtin(),
		Getenv:    noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, options.DefaultName, got.Name)
}

func TestResolve_Cancelled(t *testing.T) {
	t.Parallel()

	asker := prompt.AskFunc(func(context.Context, []prompt.Question) (prompt.Answers, error) {
		return nil, prompt.ErrCancelled
	})

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Asker:     asker,
		Templates: catalog.Builtin(),
		Getenv:    noEnv,
	})
	require.ErrorIs(t, err, prompt.ErrCancelled)
	assert.Nil(t, got)
}

func TestResolve_PositionalName(t *testing.T) {
	t.Parallel()

	quiet := &options.Overlay{Quiet: options.Ptr(true)}

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Flags:  quiet,
		Args:   []string{"from-args", "extra"},
		Asker:  failingAsker(t),
		Getenv: noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, "from-args", got.Name)
	assert.Nil(t, quiet.Name, "caller's overlay is not modified")

	got, err = resolve.Resolve(context.Background(), resolve.Opts{
		Flags:  &options.Overlay{Quiet: options.Ptr(true), Name: options.Ptr("flag")},
		Args:   []string{"from-args"},
		Asker:  failingAsker(t),
		Getenv: noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, "flag", got.Name)
}

func TestResolve_CustomDefaults(t *testing.T) {
	t.Parallel()

	defaults := options.Defaults()
	defaults.Theme = "seafoam"

	got, err := resolve.Resolve(context.Background(), resolve.Opts{
		Defaults: &defaults,
		Flags:    &options.Overlay{Quiet: options.Ptr(true)},
		Asker:    failingAsker(t),
		Getenv:   noEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, "seafoam", got.Theme)
}

func TestResolve_NoAskerForMissingFields(t *testing.T) {
	t.Parallel()

	_, err := resolve.Resolve(context.Background(), resolve.Opts{
		Templates: catalog.Builtin(),
		Getenv:    noEnv,
	})
	require.Error(t, err)
}

func TestNameFromArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
		ok   bool
	}{
		{nil, "", false},
		{[]string{""}, "", false},
		{[]string{"false"}, "", false},
		{[]string{"true", "app"}, "", false},
		{[]string{"0"}, "", false},
		{[]string{"my-app", "other"}, "my-app", true},
	}

	for _, tt := range tests {
		got, ok := resolve.NameFromArgs(tt.args)
		assert.Equal(t, tt.want, got, tt.args)
		assert.Equal(t, tt.ok, ok, tt.args)
	}
}

func TestQuestions_TemplateDefaultsToFirstEnabled(t *testing.T) {
	t.Parallel()

	current := options.Defaults()
	current.Template = "missing"

	qs, err := resolve.Questions(&options.Overlay{}, &current, catalog.Builtin())
	require.NoError(t, err)

	for _, q := range qs {
		if q.ID == resolve.QTemplate {
			assert.Equal(t, "bare", q.Default)
			assert.Len(t, q.Options, 2)

			return
		}
	}

	t.Fatal("template question not asked")
}

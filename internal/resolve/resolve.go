// Package resolve merges built-in defaults, command-line flags and
// interactive answers into one project configuration.
package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
	"github.com/donaldgifford/create-skeleton-app/internal/pkgmgr"
	"github.com/donaldgifford/create-skeleton-app/internal/prompt"
)

// Question IDs.
const (
	QName       = "name"
	QTypes      = "types"
	QESLint     = "eslint"
	QPrettier   = "prettier"
	QPlaywright = "playwright"
	QVitest     = "vitest"
	QInspector  = "inspector"
	QPlugins    = "twplugins"
	QTheme      = "skeletontheme"
	QTemplate   = "skeletontemplate"
	QFeatures   = "features"
)

// TemplateLister supplies the templates offered for selection.
type TemplateLister interface {
	Enabled() ([]catalog.Template, error)
}

// Opts configures a resolution.
type Opts struct {
	// Defaults is the base layer. The zero value means options.Defaults().
	Defaults *options.Options

	// Flags holds the fields given on the command line.
	Flags *options.Overlay

	// Args are the leftover positional arguments.
	Args []string

	// Asker runs the interactive batch. It is never called in quiet mode.
	Asker prompt.Asker

	// Templates lists the selectable templates. Only consulted when the
	// template question is asked.
	Templates TemplateLister

	// Getenv reads the environment for package manager detection. Nil
	// means os.Getenv.
	Getenv func(string) string

	Logger *slog.Logger
}

// Resolve returns the final configuration. It returns prompt.ErrCancelled
// when the user aborts the prompt batch.
func Resolve(ctx context.Context, opts Opts) (*options.Options, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	o := options.Defaults()
	if opts.Defaults != nil {
		o = *opts.Defaults
	}

	flags := options.Overlay{}
	if opts.Flags != nil {
		flags = *opts.Flags
	}

	if flags.Name == nil {
		if name, ok := NameFromArgs(opts.Args); ok {
			flags.Name = &name
		} else if len(opts.Args) > 0 {
			logger.Warn("ignoring positional argument", "arg", opts.Args[0])
		}
	}

	flags.Apply(&o)

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	o.PackageManager = pkgmgr.Detect(getenv)
	logger.Debug("detected package manager", "name", o.PackageManager)

	if flags.IsQuiet() {
		logger.Debug("quiet mode, skipping prompts")

		return &o, nil
	}

	questions, err := Questions(&flags, &o, opts.Templates)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return &o, nil
	}

	if opts.Asker == nil {
		return nil, fmt.Errorf("%d options need answers but no prompt is available", len(questions))
	}

	answers, err := opts.Asker.Ask(ctx, questions)
	if err != nil {
		return nil, err
	}

	if err := prompt.Validate(questions, answers); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}

	answered, err := FromAnswers(questions, answers)
	if err != nil {
		return nil, err
	}

	answered.Apply(&o)

	return &o, nil
}

// NameFromArgs returns the first positional argument as the project name.
// A token that parses as a boolean is a value that missed its flag and is
// not taken as a name.
func NameFromArgs(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}

	first := strings.TrimSpace(args[0])
	if first == "" {
		return "", false
	}

	if _, err := strconv.ParseBool(first); err == nil {
		return "", false
	}

	return first, true
}

// Questions builds one question per field absent from flags. Plugins and
// component features share a multi-select each. current supplies the
// initial values shown.
func Questions(flags *options.Overlay, current *options.Options, templates TemplateLister) ([]prompt.Question, error) {
	var qs []prompt.Question

	if flags.Name == nil {
		qs = append(qs, prompt.Question{
			ID: QName, Kind: prompt.Text, Title: "Name for your new project:", Default: current.Name,
		})
	}

	if flags.Types == nil {
		qs = append(qs, prompt.Question{
			ID:    QTypes,
			Kind:  prompt.Select,
			Title: "Add type checking with TypeScript?",
			Options: []prompt.Option{
				{Label: "Yes, using JavaScript with JSDoc comments", Value: string(options.CheckJS)},
				{Label: "Yes, using TypeScript syntax", Value: string(options.TypeScript)},
				{Label: "No", Value: string(options.NoTypes)},
			},
			Default: string(current.Types),
		})
	}

	toggles := []struct {
		id    string
		title string
		set   *bool
		value bool
	}{
		{QESLint, "Add ESLint for code linting?", flags.ESLint, current.ESLint},
		{QPrettier, "Add Prettier for code formatting?", flags.Prettier, current.Prettier},
		{QPlaywright, "Add Playwright for browser testing?", flags.Playwright, current.Playwright},
		{QVitest, "Add Vitest for unit testing?", flags.Vitest, current.Vitest},
		{QInspector, "Activate the experimental inspector?", flags.Inspector, current.Inspector},
	}

	for _, t := range toggles {
		if t.set == nil {
			qs = append(qs, prompt.Question{ID: t.id, Kind: prompt.Confirm, Title: t.title, Default: t.value})
		}
	}

	if plugins := pluginOptions(flags, current); len(plugins) > 0 {
		qs = append(qs, prompt.Question{
			ID: QPlugins, Kind: prompt.MultiSelect, Title: "Pick tailwind plugins to add:", Options: plugins,
		})
	}

	if flags.Theme == nil {
		themes := make([]prompt.Option, 0, len(options.Themes))
		for _, th := range options.Themes {
			themes = append(themes, prompt.Option{Label: th.Title, Value: th.Name})
		}

		qs = append(qs, prompt.Question{
			ID: QTheme, Kind: prompt.Select, Title: "Select a theme:", Options: themes, Default: current.Theme,
		})
	}

	if flags.Template == nil {
		q, err := templateQuestion(templates, current.Template)
		if err != nil {
			return nil, err
		}

		qs = append(qs, q)
	}

	if features := featureOptions(flags, current); len(features) > 0 {
		qs = append(qs, prompt.Question{
			ID: QFeatures, Kind: prompt.MultiSelect, Title: "Add optional component features:", Options: features,
		})
	}

	return qs, nil
}

func pluginOptions(flags *options.Overlay, current *options.Options) []prompt.Option {
	var opts []prompt.Option

	if flags.Forms == nil {
		opts = append(opts, prompt.Option{Label: "forms", Value: options.PluginForms, Selected: current.Forms})
	}

	if flags.Typography == nil {
		opts = append(opts, prompt.Option{Label: "typography", Value: options.PluginTypography, Selected: current.Typography})
	}

	if flags.LineClamp == nil {
		opts = append(opts, prompt.Option{Label: "line-clamp", Value: options.PluginLineClamp, Selected: current.LineClamp})
	}

	return opts
}

func featureOptions(flags *options.Overlay, current *options.Options) []prompt.Option {
	var opts []prompt.Option

	if flags.CodeBlocks == nil {
		opts = append(opts, prompt.Option{
			Label:       "code blocks",
			Value:       options.FeatureCodeBlocks,
			Description: "syntax highlighting with highlight.js",
			Selected:    current.CodeBlocks,
		})
	}

	if flags.Popups == nil {
		opts = append(opts, prompt.Option{
			Label:       "popups",
			Value:       options.FeaturePopups,
			Description: "positioning with Floating UI",
			Selected:    current.Popups,
		})
	}

	return opts
}

func templateQuestion(templates TemplateLister, current string) (prompt.Question, error) {
	if templates == nil {
		templates = catalog.Builtin()
	}

	enabled, err := templates.Enabled()
	if err != nil {
		return prompt.Question{}, fmt.Errorf("listing templates: %w", err)
	}

	if len(enabled) == 0 {
		return prompt.Question{}, fmt.Errorf("no enabled templates: %w", catalog.ErrTemplateNotFound)
	}

	choices := make([]prompt.Option, 0, len(enabled))
	def := enabled[0].ID

	for _, t := range enabled {
		choices = append(choices, prompt.Option{Label: t.Title, Value: t.ID, Description: t.Description})

		if t.ID == current {
			def = current
		}
	}

	return prompt.Question{
		ID: QTemplate, Kind: prompt.Select, Title: "Which Skeleton app template?", Options: choices, Default: def,
	}, nil
}

// FromAnswers converts prompt answers to an overlay. Multi-select answers
// become one boolean per offered option: selected options are true and
// offered but unselected options are false.
func FromAnswers(questions []prompt.Question, answers prompt.Answers) (*options.Overlay, error) {
	ov := &options.Overlay{}

	for i := range questions {
		q := &questions[i]

		switch q.ID {
		case QName:
			name, _ := answers.String(q.ID)
			if strings.TrimSpace(name) == "" {
				name = options.DefaultName
			}

			ov.Name = &name
		case QTypes:
			s, _ := answers.String(q.ID)

			mode, err := options.ParseTypeMode(s)
			if err != nil {
				return nil, err
			}

			ov.Types = &mode
		case QESLint:
			ov.ESLint = boolAnswer(answers, q.ID)
		case QPrettier:
			ov.Prettier = boolAnswer(answers, q.ID)
		case QPlaywright:
			ov.Playwright = boolAnswer(answers, q.ID)
		case QVitest:
			ov.Vitest = boolAnswer(answers, q.ID)
		case QInspector:
			ov.Inspector = boolAnswer(answers, q.ID)
		case QTheme:
			s, _ := answers.String(q.ID)
			ov.Theme = &s
		case QTemplate:
			s, _ := answers.String(q.ID)
			ov.Template = &s
		case QPlugins, QFeatures:
			selected, _ := answers.Strings(q.ID)
			for _, opt := range q.Options {
				setSelection(ov, opt.Value, slices.Contains(selected, opt.Value))
			}
		}
	}

	return ov, nil
}

func boolAnswer(answers prompt.Answers, id string) *bool {
	v, _ := answers.Bool(id)

	return &v
}

func setSelection(ov *options.Overlay, value string, on bool) {
	switch value {
	case options.PluginForms:
		ov.Forms = &on
	case options.PluginTypography:
		ov.Typography = &on
	case options.PluginLineClamp:
		ov.LineClamp = &on
	case options.FeatureCodeBlocks:
		ov.CodeBlocks = &on
	case options.FeaturePopups:
		ov.Popups = &on
	}
}

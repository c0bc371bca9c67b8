package options

// Overlay holds a partial configuration. A nil field is absent; a non-nil
// field was supplied explicitly, even when it points at a zero value.
type Overlay struct {
	Name *string
	Path *string

	Types      *TypeMode
	ESLint     *bool
	Prettier   *bool
	Playwright *bool
	Vitest     *bool
	Inspector  *bool

	Quiet   *bool
	Verbose *bool

	Forms      *bool
	Typography *bool
	LineClamp  *bool

	Theme       *string
	Template    *string
	TemplateDir *string

	CodeBlocks *bool
	Popups     *bool

	Monorepo *bool
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Apply copies every present field of the overlay onto o.
func (ov *Overlay) Apply(o *Options) {
	set(&o.Name, ov.Name)
	set(&o.Path, ov.Path)
	set(&o.Types, ov.Types)
	set(&o.ESLint, ov.ESLint)
	set(&o.Prettier, ov.Prettier)
	set(&o.Playwright, ov.Playwright)
	set(&o.Vitest, ov.Vitest)
	set(&o.Inspector, ov.Inspector)
	set(&o.Quiet, ov.Quiet)
	set(&o.Verbose, ov.Verbose)
	set(&o.Forms, ov.Forms)
	set(&o.Typography, ov.Typography)
	set(&o.LineClamp, ov.LineClamp)
	set(&o.Theme, ov.Theme)
	set(&o.Template, ov.Template)
	set(&o.TemplateDir, ov.TemplateDir)
	set(&o.CodeBlocks, ov.CodeBlocks)
	set(&o.Popups, ov.Popups)
	set(&o.Monorepo, ov.Monorepo)
}

// IsQuiet reports whether quiet mode was requested.
func (ov *Overlay) IsQuiet() bool {
	return ov.Quiet != nil && *ov.Quiet
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

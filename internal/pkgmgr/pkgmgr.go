// Package pkgmgr detects the package manager that launched the tool, builds
// the dependency list for a project and installs it.
package pkgmgr

import (
	"slices"
	"strings"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

// Default is used when the invoking package manager cannot be detected.
const Default = "npm"

// UserAgentEnv is set by npm, yarn, pnpm and bun for scripts they launch.
const UserAgentEnv = "npm_config_user_agent"

var supported = []string{"npm", "yarn", "pnpm", "bun"}

// Detect returns the package manager named in the user agent variable, or
// Default. getenv is usually os.Getenv.
func Detect(getenv func(string) string) string {
	ua := strings.TrimSpace(getenv(UserAgentEnv))
	if ua == "" {
		return Default
	}

	first, _, _ := strings.Cut(ua, " ")
	name, _, _ := strings.Cut(first, "/")

	if slices.Contains(supported, name) {
		return name
	}

	return Default
}

// DevCommand returns the command that starts the dev server.
func DevCommand(pm string) string {
	if pm == "npm" {
		return "npm run dev"
	}

	return pm + " dev"
}

// Package names.
const (
	pkgPostCSS          = "postcss"
	pkgAutoprefixer     = "autoprefixer"
	pkgTailwind         = "tailwindcss"
	pkgSveltePreprocess = "svelte-preprocess"
	pkgSkeleton         = "@skeletonlabs/skeleton"
	pkgPrettierTailwind = "prettier-plugin-tailwindcss"
	pkgTypography       = "@tailwindcss/typography"
	pkgForms            = "@tailwindcss/forms"
	pkgLineClamp        = "@tailwindcss/line-clamp"
	pkgHighlightJS      = "highlight.js"
	pkgFloatingUI       = "@floating-ui/dom"
)

var pluginPackages = map[string]string{
	options.PluginTypography: pkgTypography,
	options.PluginForms:      pkgForms,
	options.PluginLineClamp:  pkgLineClamp,
}

// Dependencies returns the dev dependencies to add, in install order. Some
// package managers resolve peers order-sensitively, so the base list always
// comes first.
func Dependencies(o *options.Options) []string {
	deps := []string{
		pkgPostCSS,
		pkgAutoprefixer,
		pkgTailwind,
		pkgSveltePreprocess,
		pkgSkeleton,
	}

	if o.Prettier {
		deps = append(deps, pkgPrettierTailwind)
	}

	for _, p := range o.Plugins() {
		deps = append(deps, pluginPackages[p])
	}

	if o.CodeBlocks {
		deps = append(deps, pkgHighlightJS)
	}

	if o.Popups {
		deps = append(deps, pkgFloatingUI)
	}

	return deps
}

package ui

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Disclaimer is shown under the banner on interactive runs.
const Disclaimer = `Welcome to Skeleton! A UI toolkit for Svelte + Tailwind.

This is BETA software; expect bugs and missing features.

Problems? Open an issue on https://github.com/skeletonlabs/skeleton/issues if none exists already.`

// Banner prints the tool version and the disclaimer.
func (w *Writer) Banner(version string) {
	w.Println(w.Dim(fmt.Sprintf("\ncreate-skeleton-app version %s", version)))
	w.Println(Disclaimer)
	w.Println("")
}

// NextSteps prints the instructions shown after a successful run. dir is
// the project directory and cwd the directory the tool was started from.
// The cd line is omitted when they are the same.
func (w *Writer) NextSteps(dir, cwd, devCommand string) {
	var b strings.Builder

	b.WriteString(w.Heading("Done! You can now:"))
	b.WriteString("\n\n")

	if rel := relDir(cwd, dir); rel != "." {
		fmt.Fprintf(&b, "  %s\n", w.Bold("cd "+quoteIfSpaced(rel)))
	}

	fmt.Fprintf(&b, "  %s\n\n", w.Bold(devCommand))
	b.WriteString("Need some help or found an issue? Visit us on Discord https://discord.gg/EXqV7W8MtY")

	w.Println(b.String())
}

func relDir(cwd, dir string) string {
	if cwd == "" {
		return dir
	}

	rel, err := filepath.Rel(cwd, dir)
	if err != nil {
		return dir
	}

	return rel
}

func quoteIfSpaced(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}

	return s
}

// Package list renders the template and theme catalogs.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/donaldgifford/create-skeleton-app/internal/catalog"
	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Opts configures a listing.
type Opts struct {
	// OutputFormat is "table" or "json".
	OutputFormat string
	// All includes disabled templates.
	All bool
	// Writer is the output destination.
	Writer io.Writer
}

// ThemeInfo represents a theme in list output.
type ThemeInfo struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	FontFamily string `json:"font_family,omitempty"`
	FontFile   string `json:"font_file,omitempty"`
}

// Templates lists the catalog's templates in position order.
func Templates(cat *catalog.Catalog, opts *Opts) error {
	var (
		templates []catalog.Template
		err       error
	)

	if opts.All {
		templates, err = cat.All()
	} else {
		templates, err = cat.Enabled()
	}

	if err != nil {
		return fmt.Errorf("loading templates from %s: %w", cat.Source(), err)
	}

	if opts.OutputFormat == FormatJSON {
		if templates == nil {
			templates = []catalog.Template{}
		}

		return renderJSON(opts.Writer, templates)
	}

	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{t.ID, t.Title, t.Description, strconv.FormatBool(t.Enabled)})
	}

	return renderTable(opts.Writer, []string{"ID", "TITLE", "DESCRIPTION", "ENABLED"}, rows)
}

// Themes lists the theme catalog with each theme's bundled font.
func Themes(opts *Opts) error {
	infos := make([]ThemeInfo, 0, len(options.Themes))

	for _, th := range options.Themes {
		info := ThemeInfo{Name: th.Name, Title: th.Title}

		if f, ok := options.FontFor(th.Name); ok {
			info.FontFamily = f.Family
			info.FontFile = f.File
		}

		infos = append(infos, info)
	}

	if opts.OutputFormat == FormatJSON {
		return renderJSON(opts.Writer, infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, i := range infos {
		rows = append(rows, []string{i.Name, i.Title, i.FontFamily})
	}

	return renderTable(opts.Writer, []string{"NAME", "TITLE", "FONT"}, rows)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	header := lipgloss.NewStyle().Bold(true)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, tbl.String())

	return err
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

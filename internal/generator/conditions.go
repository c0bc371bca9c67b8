package generator

import (
	"path"
	"strings"

	tmpl "github.com/donaldgifford/create-skeleton-app/internal/template"
)

// evaluateConditions removes the files excluded by every active condition.
func evaluateConditions(renderer *tmpl.Renderer, conditions []condition, vars map[string]any, set *fileSet) error {
	for i := range conditions {
		cond := &conditions[i]

		result, err := renderer.RenderString(cond.When, vars)
		if err != nil {
			return err
		}

		if strings.TrimSpace(result) != "true" {
			continue
		}

		for _, p := range set.Entries() {
			if matchesAnyPattern(p, cond.Exclude) {
				set.remove(p)
			}
		}
	}

	return nil
}

// matchesAnyPattern reports whether relPath matches a glob or sits under a
// directory pattern such as "tests/*".
func matchesAnyPattern(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := path.Match(pattern, relPath); err == nil && matched {
			return true
		}

		dir := strings.TrimSuffix(strings.TrimSuffix(pattern, "*"), "/")
		if dir != "" && dir != pattern && strings.HasPrefix(relPath, dir+"/") {
			return true
		}
	}

	return false
}

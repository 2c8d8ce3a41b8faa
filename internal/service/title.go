package service

import (
	"regexp"
	"strings"

	"github.com/curava/icp-finder/api/internal/entity"
)

// Result titles harvested from web search usually carry the site suffix, e.g.
// "Jane Doe - VP Marketing at Acme | LinkedIn".
var linkedinSuffix = regexp.MustCompile(`(?i)\s*[|·]\s*linkedin\s*$`)

// ParseTitle splits a raw result title into a name and a role. The " - "
// separator wins over " | " when both occur; a title without separators is all
// name and the role stays empty.
func ParseTitle(title string) entity.NameRole {
	cleaned := strings.TrimSpace(linkedinSuffix.ReplaceAllString(title, ""))

	for _, sep := range []string{" - ", " | "} {
		if idx := strings.Index(cleaned, sep); idx >= 0 {
			return entity.NameRole{
				Name: strings.TrimSpace(cleaned[:idx]),
				Role: strings.TrimSpace(cleaned[idx+len(sep):]),
			}
		}
	}

	return entity.NameRole{Name: cleaned, Role: ""}
}

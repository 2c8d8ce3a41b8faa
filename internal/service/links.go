package service

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/curava/icp-finder/api/internal/entity"
)

var companySlugPattern = regexp.MustCompile(`linkedin\.com/company/([^/?]+)`)

// IsLinkedInCompany reports whether the URL points at a LinkedIn company page.
func IsLinkedInCompany(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "linkedin.com/company/")
}

// IsLinkedInProfile reports whether the URL points at a LinkedIn member profile.
func IsLinkedInProfile(raw string) bool {
	return strings.Contains(strings.ToLower(raw), "linkedin.com/in/")
}

// CanonicalURL strips the query string and trailing slash so the same page
// with different tracking parameters compares equal.
func CanonicalURL(raw string) string {
	if idx := strings.Index(raw, "?"); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimRight(raw, "/")
}

// UnwrapRedirect resolves search-engine redirect links (DuckDuckGo, Bing ad
// clicks) to the destination URL. Anything else passes through untouched.
func UnwrapRedirect(raw string) string {
	if !strings.Contains(raw, "duckduckgo.com/l/") && !strings.Contains(raw, "bing.com/aclick") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := u.Query()
	for _, key := range []string{"u", "uddg", "r"} {
		if target := query.Get(key); target != "" {
			if decoded, err := url.QueryUnescape(target); err == nil {
				return decoded
			}
			return target
		}
	}
	return raw
}

// DedupeByURL drops results whose canonical URL was already seen, preserving
// order.
func DedupeByURL(results []entity.SearchResult) []entity.SearchResult {
	seen := make(map[string]struct{}, len(results))
	deduped := make([]entity.SearchResult, 0, len(results))
	for _, result := range results {
		key := CanonicalURL(result.URL)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, result)
	}
	return deduped
}

// CompanyFromURL derives a display name from a LinkedIn company slug,
// e.g. "acme-growth" becomes "Acme Growth". Returns "" for non-company URLs.
func CompanyFromURL(raw string) string {
	match := companySlugPattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return titleCase(strings.ReplaceAll(match[1], "-", " "))
}

// PrepareBucket cleans one result bucket: redirect links are unwrapped,
// company pages without a display name get one derived from their slug, and
// duplicate URLs are dropped. Buckets are independent; de-duplication never
// spans them.
func PrepareBucket(results []entity.SearchResult) []entity.SearchResult {
	prepared := make([]entity.SearchResult, 0, len(results))
	for _, result := range results {
		result.URL = UnwrapRedirect(result.URL)
		if result.Company == "" && IsLinkedInCompany(result.URL) {
			result.Company = CompanyFromURL(result.URL)
		}
		prepared = append(prepared, result)
	}
	return DedupeByURL(prepared)
}

func titleCase(value string) string {
	parts := strings.Fields(strings.TrimSpace(value))
	for i, p := range parts {
		lower := strings.ToLower(p)
		if len(lower) == 0 {
			continue
		}
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

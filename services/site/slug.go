package site

import (
	"fmt"
	"strings"
)

const maxSlugLength = 48

// slugify lowercases the name and collapses everything outside [a-z0-9]
// into single hyphens.
func slugify(name string) string {
	var b strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	if slug == "" {
		slug = "tutor"
	}
	return slug
}

// uniqueSlug appends a numeric suffix until the slug is free.
func (s *DefaultSiteService) uniqueSlug(base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := s.Repo.SlugExists(slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

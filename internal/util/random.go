package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

// GenerateRandomSlug builds a URL-safe reference from a display name,
// suffixed with a short random id to keep it unique.
func GenerateRandomSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}

// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9/-]+`)
	dashRuns     = regexp.MustCompile(`-{2,}`)
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// GenerateSlug lowercases, trims and dash-joins a title. Embedded "/" survives
// so nested page paths keep their segments.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-/")
	return s
}

// IsUUID reports whether a path parameter is the canonical hyphenated UUID
// form. Anything else is routed as a slug lookup.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(strings.TrimSpace(s))
}

// ParseIDOrSlug splits a :idOrSlug path value into one of the two.
func ParseIDOrSlug(s string) (uuid.UUID, string) {
	s = strings.TrimSpace(s)
	if IsUUID(s) {
		if id, err := uuid.Parse(s); err == nil {
			return id, ""
		}
	}
	return uuid.Nil, s
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free within the given
// scope. scopeWhere receives the base query and adds tenant predicates.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string, scopeWhere func(*gorm.DB) *gorm.DB) (string, error) {
	slug := base
	for i := 1; ; i++ {
		var cnt int64
		q := db.Table(table).Where(column+" = ?", slug)
		if scopeWhere != nil {
			q = scopeWhere(q)
		}
		if err := q.Count(&cnt).Error; err != nil {
			return "", err
		}
		if cnt == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i+1)
	}
}

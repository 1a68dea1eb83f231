package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength leaves room for a numeric suffix in a 255 wide column.
const MaxSlugLength = 200

// maxSlugAttempts bounds the suffix search.
const maxSlugAttempts = 1000

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "",
	'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// SlugExistsFunc reports whether candidate is taken. Implementations scope
// the check (globally or per parent) and exclude the record being saved.
type SlugExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Slugify turns text into a lowercase ASCII token made of [a-z0-9] runs
// joined by single dashes. Cyrillic is transliterated and accents are
// dropped. fallback is used when nothing survives.
func Slugify(text, fallback string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	var translit strings.Builder
	for _, r := range lowered {
		if latin, ok := cyrillic[r]; ok {
			translit.WriteString(latin)
			continue
		}
		translit.WriteRune(r)
	}

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, translit.String())
	if err != nil {
		plain = translit.String()
	}

	var b strings.Builder
	dash := false
	for _, r := range plain {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}

	slug := b.String()
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	if slug == "" {
		return fallback
	}
	return slug
}

// AssignSlug returns the first free candidate among base, base-1, base-2, ...
func AssignSlug(ctx context.Context, base string, exists SlugExistsFunc) (string, error) {
	for n := 0; n < maxSlugAttempts; n++ {
		candidate := base
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}

package common

// AssetURLResolver turns a stored logo or banner reference into a public URL.
type AssetURLResolver interface {
	URL(ref string) string
}

// ResolveURL tolerates a nil resolver and empty references.
func ResolveURL(r AssetURLResolver, ref string) string {
	if r == nil || ref == "" {
		return ref
	}
	return r.URL(ref)
}

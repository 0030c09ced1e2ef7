package manifest

import (
	"strings"
)

// SnakeCase converts a medial-capital key to snake_case. Every ASCII
// uppercase letter becomes an underscore plus its lowercase form, so
// "instanceSizeSlug" becomes "instance_size_slug". Runs of capitals expand
// one underscore per letter: "imageURL" becomes "image_u_r_l", not
// "image_url". Non-ASCII characters pass through untouched.
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// RenameKeys returns a copy of tree with every map key converted by
// SnakeCase. Values are never touched; only keys change.
func RenameKeys(tree interface{}) interface{} {
	switch t := tree.(type) {
	case *Map:
		out := NewMap()
		for _, item := range t.items {
			out.Set(SnakeCase(item.Key), RenameKeys(item.Value))
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = RenameKeys(item)
		}
		return out
	default:
		return tree
	}
}

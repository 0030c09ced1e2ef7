package manifest

// Prune returns a copy of tree with empty branches removed:
//
//   - nil values are dropped
//   - a list is dropped once every entry has been dropped
//   - a map is dropped once every value has been dropped
//
// Scalars survive regardless of content, so 0, false and "" are kept. A map
// at the root is always returned as a Map, possibly empty.
func Prune(tree interface{}) interface{} {
	v, ok := pruneValue(tree)
	if !ok {
		if _, isMap := tree.(*Map); isMap {
			return NewMap()
		}
		return nil
	}
	return v
}

// pruneValue prunes v, reporting whether anything survived.
func pruneValue(v interface{}) (interface{}, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case *Map:
		out := NewMap()
		for _, item := range t.items {
			if pv, ok := pruneValue(item.Value); ok {
				out.Set(item.Key, pv)
			}
		}
		if out.Len() == 0 {
			return nil, false
		}
		return out, true
	case []interface{}:
		out := make([]interface{}, 0, len(t))
		for _, item := range t {
			if pv, ok := pruneValue(item); ok {
				out = append(out, pv)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return v, true
	}
}

package models

// Keyed is implemented by every record stored in a collection.
type Keyed interface {
	Key() string
}

// OneOf reports whether v is one of the allowed options.
func OneOf[T comparable](v T, options []T) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

package models

// Ptr returns a pointer to v. Handy for the nullable columns.
func Ptr[T any](v T) *T {
	return &v
}

// StringOrEmpty dereferences s, returning "" for nil.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

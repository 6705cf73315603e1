package mapper

// MapSlice applies fn to each element. A nil input yields an empty, non-nil
// slice so JSON renders [] instead of null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

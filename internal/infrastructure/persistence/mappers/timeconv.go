package mappers

import "time"

// DBTime normalises t to the stored column precision: UTC, milliseconds.
// Query arguments compared against time columns go through it too.
func DBTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func dbTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := DBTime(*t)
	return &v
}

func fromDBTime(t time.Time) time.Time {
	return t.UTC()
}

func fromDBTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := fromDBTime(*t)
	return &v
}

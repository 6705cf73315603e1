package shared

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripline/tripline/internal/shared/errors"
)

func TestNormalizeText_ComposesAndTrims(t *testing.T) {
	decomposed := "  Cafe\u0301 Tour "
	assert.Equal(t, "Caf\u00e9 Tour", NormalizeText(decomposed))
}

func TestRequireText(t *testing.T) {
	got, err := RequireText("title", "  Jeju  ", 10)
	require.NoError(t, err)
	assert.Equal(t, "Jeju", got)

	_, err = RequireText("title", "   ", 10)
	assert.True(t, errors.IsValidationError(err))

	_, err = RequireText("title", strings.Repeat("가", 11), 10)
	assert.True(t, errors.IsValidationError(err))

	// rune count, not byte count
	_, err = RequireText("title", strings.Repeat("가", 10), 10)
	assert.NoError(t, err)
}

func TestOptionalText(t *testing.T) {
	got, err := OptionalText("description", "", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = OptionalText("description", "abcdef", 5)
	assert.Error(t, err)
}

func TestSchedulingHorizon(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2036, 1, 15, 8, 0, 0, 0, time.UTC), SchedulingHorizon(now))
}

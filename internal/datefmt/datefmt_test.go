package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func TestDate(t *testing.T) {
	loc := paris(t)
	assert.Equal(t, "01/02/2024", Date("2024-02-01", loc))
	assert.Equal(t, "12/01/2024", Date("2024-01-12T10:30:00", loc))
	assert.Equal(t, "", Date("", loc))
	assert.Equal(t, "next week", Date("next week", loc))
}

func TestDateTime(t *testing.T) {
	loc := paris(t)
	assert.Equal(t, "12/01/2024 10:30:00", DateTime("2024-01-12T10:30:00", loc))
	assert.Equal(t, "15/01/2024 10:00:00", DateTime("2024-01-15T10:00", loc))
	// 09:00 UTC is 10:00 in Paris in winter.
	assert.Equal(t, "12/01/2024 10:00:00", DateTime("2024-01-12T09:00:00Z", loc))
}

func TestParseNilLocationIsUTC(t *testing.T) {
	got, ok := Parse("2024-03-05", nil)
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2024-02-01", ISODate(time.Date(2024, 2, 1, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "01/02/2024", FormatDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}

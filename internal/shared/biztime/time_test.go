package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowUTC_Frozen(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.FixedZone("X", 3600))
	restore := FreezeForTest(fixed)
	defer restore()

	got := NowUTC()
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 11, got.Hour())
	assert.Equal(t, 123456000, got.Nanosecond())
}

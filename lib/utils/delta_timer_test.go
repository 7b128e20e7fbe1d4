package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next(), "first call has no reference point")

	d.Set(time.Now().Add(-50 * time.Millisecond))
	dt := d.Next()
	assert.GreaterOrEqual(t, dt, 50*time.Millisecond)
	assert.False(t, d.IsZero())
}

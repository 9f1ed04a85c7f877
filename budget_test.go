package satcmp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudgetExpiry(t *testing.T) {
	assert.False(t, NewBudget(time.Minute).Expired())
	assert.True(t, NewBudget(0).Expired())
	assert.True(t, NewBudget(-time.Second).Expired())
}

func TestBudgetRemaining(t *testing.T) {
	b := NewBudget(time.Minute)
	r := b.Remaining()
	assert.Greater(t, r, 50*time.Second)
	assert.LessOrEqual(t, r, time.Minute)

	assert.Equal(t, time.Duration(0), NewBudget(-time.Second).Remaining())
}

func TestBudgetElapsed(t *testing.T) {
	b := NewBudget(time.Minute)
	time.Sleep(time.Millisecond)
	assert.Greater(t, b.Elapsed(), time.Duration(0))
}

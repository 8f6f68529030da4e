package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 3, Min(5, 3))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 5, Max(5, 3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 0, Clamp(0, 0, 10))
	assert.Equal(t, 10, Clamp(10, 0, 10))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sign(5))
	assert.Equal(t, -1, Sign(-5))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, -1, Sign(-2.5))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, int32(7), Abs(int32(-7)))
}

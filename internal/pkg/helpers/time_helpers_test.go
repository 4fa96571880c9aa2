package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Second))
	assert.Equal(t, time.Second, ParseDuration("", time.Second))
	assert.Equal(t, time.Second, ParseDuration("soon", time.Second))
	assert.Equal(t, time.Second, ParseDuration("-2s", time.Second))
}

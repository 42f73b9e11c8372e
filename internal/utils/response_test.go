package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	resp := SuccessResponse("Booking cancelled and refunded", map[string]string{"id": "b1"})

	assert.True(t, resp.Success)
	assert.Equal(t, "Booking cancelled and refunded", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.False(t, resp.Timestamp.IsZero())
}

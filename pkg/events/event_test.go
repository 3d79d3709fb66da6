package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityChanged(t *testing.T) {
	e := EntityChanged("Role Permission", ActionUpdated, 7)

	assert.Equal(t, "ROLE_PERMISSION_UPDATED", e.EventType())
	assert.Equal(t, 7, e.Payload()["key"])
	assert.Equal(t, "UPDATED", e.Payload()["action"])
	assert.False(t, e.Timestamp().IsZero())
}

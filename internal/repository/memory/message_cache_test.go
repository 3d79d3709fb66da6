package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMessageCache(t *testing.T) {
	ctx := context.Background()
	c := NewMessageCache(time.Minute)

	_, found := c.Get(ctx, "en:Common.Success0001")
	assert.False(t, found)

	c.Set(ctx, "en:Common.Success0001", "Success", 0)
	c.Set(ctx, "vi:Common.Success0001", "Thành công", time.Minute)
	text, found := c.Get(ctx, "vi:Common.Success0001")
	assert.True(t, found)
	assert.Equal(t, "Thành công", text)

	c.Delete(ctx, "en:Common.Success0001", "vi:Common.Success0001")
	_, found = c.Get(ctx, "en:Common.Success0001")
	assert.False(t, found)

	c.Set(ctx, "en:Common.Success0002", "Created", 0)
	c.Flush()
	_, found = c.Get(ctx, "en:Common.Success0002")
	assert.False(t, found)
}

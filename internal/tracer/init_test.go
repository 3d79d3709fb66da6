package tracer

import (
	"context"
	"testing"

	"elibrary-be/internal/config"
	"elibrary-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestInitDisabled(t *testing.T) {
	shutdown := Init(config.TracingConfig{Enabled: false}, logger.NewNopLogger())
	assert.NoError(t, shutdown(context.Background()))
}

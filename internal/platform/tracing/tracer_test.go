package tracing_test

import (
	"context"
	"testing"

	"github.com/srgjo27/movie_booking/internal/platform/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracerProvider_Disabled(t *testing.T) {
	shutdown, err := tracing.InitTracerProvider("booking-service", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

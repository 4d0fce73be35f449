package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	shutdown := Setup(context.Background(), Options{ServiceName: "test"}, logger)

	assert.NoError(t, shutdown(context.Background()))
}

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unipact/internal/config/configs"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.Telemetry{ServiceName: "unipact"}, "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

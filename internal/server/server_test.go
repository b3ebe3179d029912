package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatvault/internal/config"
	"chatvault/internal/logger"
)

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(http.NewServeMux(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	}

	srv, err := NewServer(http.NewServeMux(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

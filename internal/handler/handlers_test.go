package handler

import (
	"testing"

	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	t.Run("http address configured", func(t *testing.T) {
		h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

		require.NoError(t, err)
		require.NotNil(t, h)
		assert.NotNil(t, h.HTTP)
	})

	t.Run("no address", func(t *testing.T) {
		h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

		require.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, h)
	})

	t.Run("independent instances", func(t *testing.T) {
		cfg := config.Server{HTTPAddress: ":8080"}

		h1, err1 := NewHandlers(&service.Services{}, cfg, logger.Nop())
		h2, err2 := NewHandlers(&service.Services{}, cfg, logger.Nop())

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotSame(t, h1.HTTP, h2.HTTP)
	})
}

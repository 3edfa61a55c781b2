package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tareas-pro/pkg/config"
)

// unsetJWTSecret quita JWT_SECRET del entorno y lo restaura al terminar el test.
func unsetJWTSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "") // registra la restauración del valor original
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
}

func TestLoad_DesarrolloSinSecret_UsaDefault(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	unsetJWTSecret(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.IsProduction())
	assert.NotEmpty(t, cfg.JWT.Secret, "sin JWT_SECRET el servicio de desarrollo debe arrancar igual")
}

func TestLoad_ProduccionSinSecret_Falla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	unsetJWTSecret(t)

	_, err := config.Load()
	require.Error(t, err, "en producción el secret es obligatorio")
}

func TestLoad_ProduccionConSecret_OK(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "un-secret-real")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "un-secret-real", cfg.JWT.Secret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.JWT.AccessMinutes)
	assert.Equal(t, 168, cfg.JWT.RefreshHours)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "tareas_pro", cfg.DB.DBName)
}

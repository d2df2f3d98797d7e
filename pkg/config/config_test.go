package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24*60, cfg.JWT.Expiration)
	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, StoragePostgres, cfg.App.Storage)
	assert.Equal(t, "postgres://postgres:@localhost:5432/crm_ventas?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("HTTP_PORT", "8081")
	v.Set("DB_AUTO_MIGRATE", "false")
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg := fromViper(v)

	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	require.NoError(t, cfg.Validate())
}

func TestValidate_SinSecret(t *testing.T) {
	cfg := fromViper(viper.New())
	assert.Error(t, cfg.Validate())
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/word", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@h:5432/d?sslmode=disable", c.DSN())
}

func TestValidate_StorageDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE", "Memory")
	cfg := fromViper(v)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StorageMemory, cfg.App.Storage)

	v.Set("STORAGE", "redis")
	assert.Error(t, fromViper(v).Validate())
}

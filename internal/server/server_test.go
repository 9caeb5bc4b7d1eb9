package server

import (
	"testing"

	"github.com/Conceptual-Machines/magda-voicer/internal/config"
	"github.com/Conceptual-Machines/magda-voicer/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestFilterSensitiveHeaders(t *testing.T) {
	filtered := filterSensitiveHeaders(map[string]string{
		"Authorization": "Bearer abc",
		"cookie":        "session=1",
		"X-Api-Key":     "k",
		"Content-Type":  "application/json",
	})

	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["cookie"])
	assert.Equal(t, "[REDACTED]", filtered["X-Api-Key"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}

func TestOpenDatabaseDisabled(t *testing.T) {
	db, err := OpenDatabase(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestInitSentryWithoutDSN(t *testing.T) {
	flush := InitSentry(&config.Config{}, "test")
	require.NotNil(t, flush)
	flush()
}

func TestMigrateOrCloseReleasesPool(t *testing.T) {
	// Nothing listens on port 1, so the migration fails on its first query
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=voicer dbname=voicer sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Discard,
	})
	require.NoError(t, err)

	err = migrateOrClose(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}

func TestValidateDefaults(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		top     string
		wantErr error
	}{
		{name: "valid", key: "Am", top: "B4"},
		{name: "bad key", key: "H", top: "B4", wantErr: theory.ErrInvalidKey},
		{name: "empty key", key: "", top: "B4", wantErr: theory.ErrInvalidKey},
		{name: "bad top note", key: "C", top: "B", wantErr: theory.ErrInvalidNote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDefaults(&config.Config{DefaultKey: tt.key, DefaultTopNote: tt.top})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunFailsFastOnBadDefaults(t *testing.T) {
	err := Run(&config.Config{DefaultKey: "X#", DefaultTopNote: "B4", Port: "0"}, "test")
	assert.ErrorIs(t, err, theory.ErrInvalidKey)
}

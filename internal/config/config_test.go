package config_test

import (
	"os"
	"testing"
	"time"

	"bhavesh/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Set env vars
	os.Setenv("ENQUIRY_ADDR", ":9999")
	os.Setenv("ENQUIRY_DB_PATH", "/tmp/enquiries/app.db")
	os.Setenv("ENQUIRY_LOG_LEVEL", "debug")
	os.Setenv("ENQUIRY_FORM_LIMIT", "7")
	defer func() {
		os.Unsetenv("ENQUIRY_ADDR")
		os.Unsetenv("ENQUIRY_DB_PATH")
		os.Unsetenv("ENQUIRY_LOG_LEVEL")
		os.Unsetenv("ENQUIRY_FORM_LIMIT")
	}()

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/enquiries/app.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 7, cfg.FormLimit.MaxRequests)
	require.Equal(t, time.Minute, cfg.FormLimit.Window)
}

func TestLoad_Defaults(t *testing.T) {
	// Clear env vars
	os.Unsetenv("ENQUIRY_ADDR")
	os.Unsetenv("ENQUIRY_DB_PATH")
	os.Unsetenv("ENQUIRY_LOG_LEVEL")
	os.Unsetenv("ENQUIRY_FORM_LIMIT")
	os.Unsetenv("ENQUIRY_UPLOAD_LIMIT")
	os.Unsetenv("ENQUIRY_AUTH_LIMIT")
	os.Unsetenv("ENQUIRY_API_LIMIT")

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Contains(t, cfg.DBPath, "enquiries.db")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 5, cfg.FormLimit.MaxRequests)
	require.Equal(t, 10, cfg.UploadLimit.MaxRequests)
	require.Equal(t, 5, cfg.AuthLimit.MaxRequests)
	require.Equal(t, 100, cfg.APILimit.MaxRequests)
	require.Equal(t, "enquiry-files", cfg.StorageBucket)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	os.Setenv("ENQUIRY_UPLOAD_LIMIT", "not-a-number")
	defer os.Unsetenv("ENQUIRY_UPLOAD_LIMIT")

	cfg := config.Load()
	require.Equal(t, 10, cfg.UploadLimit.MaxRequests)
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RateLimit is a per-client quota for one operation class.
type RateLimit struct {
	MaxRequests int
	Window      time.Duration
}

type Config struct {
	Addr      string
	DBPath    string
	StaticDir string
	LogLevel  string
	JWTSecret string
	TokenTTL  time.Duration

	AdminEmail    string
	AdminPassword string

	// Attachment object storage (S3-compatible).
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageSecure    bool
	// Base URL for public attachment links; empty means derive from the endpoint.
	StoragePublicURL string

	// Per-client request quotas by operation class.
	FormLimit   RateLimit
	UploadLimit RateLimit
	AuthLimit   RateLimit
	APILimit    RateLimit
}

func Load() Config {
	window := time.Minute

	return Config{
		Addr:      getenv("ENQUIRY_ADDR", ":8080"),
		DBPath:    filepath.Clean(getenv("ENQUIRY_DB_PATH", "./data/enquiries.db")),
		StaticDir: os.Getenv("ENQUIRY_STATIC_DIR"),
		LogLevel:  getenv("ENQUIRY_LOG_LEVEL", "info"),
		JWTSecret: os.Getenv("ENQUIRY_JWT_SECRET"),
		TokenTTL:  time.Duration(intEnv("ENQUIRY_TOKEN_TTL_SECONDS", 30*24*60*60)) * time.Second,

		AdminEmail:    os.Getenv("ENQUIRY_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ENQUIRY_ADMIN_PASSWORD"),

		StorageEndpoint:  getenv("ENQUIRY_STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: os.Getenv("ENQUIRY_STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("ENQUIRY_STORAGE_SECRET_KEY"),
		StorageBucket:    getenv("ENQUIRY_STORAGE_BUCKET", "enquiry-files"),
		StorageSecure:    boolEnv("ENQUIRY_STORAGE_SECURE", false),
		StoragePublicURL: os.Getenv("ENQUIRY_STORAGE_PUBLIC_URL"),

		FormLimit:   RateLimit{MaxRequests: intEnv("ENQUIRY_FORM_LIMIT", 5), Window: window},
		UploadLimit: RateLimit{MaxRequests: intEnv("ENQUIRY_UPLOAD_LIMIT", 10), Window: window},
		AuthLimit:   RateLimit{MaxRequests: intEnv("ENQUIRY_AUTH_LIMIT", 5), Window: window},
		APILimit:    RateLimit{MaxRequests: intEnv("ENQUIRY_API_LIMIT", 100), Window: window},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

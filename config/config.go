package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	util "Employee-Attendance-Portal/pkg/utils"
)

type AppConfig struct {
	Port     string
	AppEnv   string
	Timezone string

	DataDir       string
	PhotosDir     string
	BlogImagesDir string

	// StoreDriver selects the table backend: csv, mongo or mysql.
	StoreDriver string
	TableCache  bool
	MONGOSTRING string
	MongoDB     string
	MySQLDSN    string

	PASETO_SECRET string
	SessionTTL    time.Duration

	IPRestrictionEnabled bool
	IPConfigPath         string
	AdminOverrideCode    string
	CloudDeployment      bool

	IPServerEnabled     bool
	IPServerPort        string
	IPReportedPath      string
	IPReportingEndpoint string
	IPReportOnStart     bool

	SeedAdminCode     string
	SeedAdminName     string
	SeedAdminPassword string

	AllowedOrigins []string
}

// LoadConfig loads configuration from .env file and the environment.
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	cfg := FromEnv()
	if _, err := util.DecodeKey(cfg.PASETO_SECRET); err != nil {
		log.Fatalf("PASETO_SECRET is invalid: %v", err)
	}
	return cfg
}

// FromEnv builds the config from environment variables only.
func FromEnv() *AppConfig {
	dataDir := getEnv("DATA_DIR", "data")
	return &AppConfig{
		Port:     getEnv("PORT", "3000"),
		AppEnv:   getEnv("APP_ENV", "production"),
		Timezone: getEnv("APP_TIMEZONE", "Local"),

		DataDir:       dataDir,
		PhotosDir:     getEnv("PHOTOS_DIR", filepath.Join("uploads", "photos")),
		BlogImagesDir: getEnv("BLOG_IMAGES_DIR", filepath.Join("uploads", "blog_images")),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "csv")),
		TableCache:  getEnvBool("TABLE_CACHE", true),
		MONGOSTRING: getEnv("MONGOSTRING", ""),
		MongoDB:     getEnv("MONGO_DB", "attendance-portal"),
		MySQLDSN:    getEnv("MYSQL_DSN", ""),

		PASETO_SECRET: getEnv("PASETO_SECRET", "ZGVmYXVsdF9wYXNldG9fc2VjcmV0X211c3RiZTMyYnk="),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,

		IPRestrictionEnabled: getEnvBool("IP_RESTRICTION_ENABLED", true),
		IPConfigPath:         getEnv("IP_CONFIG_PATH", filepath.Join(dataDir, "ip_config.yaml")),
		AdminOverrideCode:    getEnv("ADMIN_OVERRIDE_CODE", ""),
		CloudDeployment:      getEnvBool("CLOUD_DEPLOYMENT", false),

		IPServerEnabled:     getEnvBool("IP_SERVER_ENABLED", false),
		IPServerPort:        getEnv("IP_SERVER_PORT", "5000"),
		IPReportedPath:      getEnv("IP_REPORTED_PATH", filepath.Join(dataDir, "reported_ips.json")),
		IPReportingEndpoint: getEnv("IP_REPORTING_ENDPOINT", ""),
		IPReportOnStart:     getEnvBool("IP_REPORT_ON_START", false),

		SeedAdminCode:     getEnv("SEED_ADMIN_CODE", "hr001"),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "HR Admin"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
	}
}

// Location resolves Timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown APP_TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// ForceOverridePath is the marker file that arms a one-shot gate override.
func (c *AppConfig) ForceOverridePath() string {
	return filepath.Join(filepath.Dir(c.IPConfigPath), ".force_override")
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	log.Printf("Warning: %s=%q is not a boolean, using %v", key, value, defaultValue)
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		log.Printf("Warning: %s=%q is not a positive integer, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

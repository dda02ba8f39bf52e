package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Discord
	BotToken string
	GuildID  string

	// Channels
	VerifyChannelID        string
	WelcomeChannelID       string
	AnnouncementsChannelID string

	// Roles
	UnverifiedRoleID string
	VerifiedRoleID   string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Application
	AppEnv   string
	LogLevel string

	// Caching / catalog view
	CacheRefreshMinutes int
	LoadoutsPerPage     int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", ""),
		GuildID:  getEnv("GUILD_ID", ""),

		VerifyChannelID:        getEnv("VERIFY_CHANNEL_ID", ""),
		WelcomeChannelID:       getEnv("WELCOME_CHANNEL_ID", ""),
		AnnouncementsChannelID: getEnv("ANNOUNCEMENTS_CHANNEL_ID", ""),

		UnverifiedRoleID: getEnv("UNVERIFIED_ROLE_ID", ""),
		VerifiedRoleID:   getEnv("VERIFIED_ROLE_ID", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "clanbot"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "clanbot_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CacheRefreshMinutes: getEnvInt("CACHE_REFRESH_MINUTES", 60),
		LoadoutsPerPage:     getEnvInt("LOADOUTS_PER_PAGE", 5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.GuildID == "" {
		return fmt.Errorf("GUILD_ID is required")
	}
	if c.VerifyChannelID == "" {
		return fmt.Errorf("VERIFY_CHANNEL_ID is required")
	}
	if c.WelcomeChannelID == "" {
		return fmt.Errorf("WELCOME_CHANNEL_ID is required")
	}
	if c.AnnouncementsChannelID == "" {
		return fmt.Errorf("ANNOUNCEMENTS_CHANNEL_ID is required")
	}
	if c.UnverifiedRoleID == "" {
		return fmt.Errorf("UNVERIFIED_ROLE_ID is required")
	}
	if c.VerifiedRoleID == "" {
		return fmt.Errorf("VERIFIED_ROLE_ID is required")
	}
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.CacheRefreshMinutes <= 0 {
		return fmt.Errorf("CACHE_REFRESH_MINUTES must be positive")
	}
	if c.LoadoutsPerPage <= 0 {
		return fmt.Errorf("LOADOUTS_PER_PAGE must be positive")
	}
	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) GetCacheRefreshInterval() time.Duration {
	return time.Duration(c.CacheRefreshMinutes) * time.Minute
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

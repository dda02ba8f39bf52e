package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv() {
	os.Setenv("BOT_TOKEN", "test_bot_token")
	os.Setenv("GUILD_ID", "111")
	os.Setenv("VERIFY_CHANNEL_ID", "222")
	os.Setenv("WELCOME_CHANNEL_ID", "333")
	os.Setenv("ANNOUNCEMENTS_CHANNEL_ID", "444")
	os.Setenv("UNVERIFIED_ROLE_ID", "555")
	os.Setenv("VERIFIED_ROLE_ID", "666")
	os.Setenv("DB_PASSWORD", "test_password")
}

func TestLoadConfig(t *testing.T) {
	os.Clearenv()
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BotToken != "test_bot_token" {
		t.Errorf("BotToken = %q, want %q", cfg.BotToken, "test_bot_token")
	}

	if cfg.DBPassword != "test_password" {
		t.Errorf("DBPassword = %q, want %q", cfg.DBPassword, "test_password")
	}

	// Defaults
	if cfg.CacheRefreshMinutes != 60 {
		t.Errorf("CacheRefreshMinutes = %d, want 60", cfg.CacheRefreshMinutes)
	}
	if cfg.LoadoutsPerPage != 5 {
		t.Errorf("LoadoutsPerPage = %d, want 5", cfg.LoadoutsPerPage)
	}
	if cfg.DBPort != "5432" {
		t.Errorf("DBPort = %q, want %q", cfg.DBPort, "5432")
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	required := []string{
		"BOT_TOKEN",
		"GUILD_ID",
		"VERIFY_CHANNEL_ID",
		"WELCOME_CHANNEL_ID",
		"ANNOUNCEMENTS_CHANNEL_ID",
		"UNVERIFIED_ROLE_ID",
		"VERIFIED_ROLE_ID",
		"DB_PASSWORD",
	}

	for _, missing := range required {
		t.Run("Missing "+missing, func(t *testing.T) {
			os.Clearenv()
			setRequiredEnv()
			os.Unsetenv(missing)

			_, err := LoadConfig()
			if err == nil {
				t.Errorf("LoadConfig() expected error when %s is missing, got nil", missing)
			}
		})
	}

	os.Clearenv()
}

func TestValidate_NonPositiveSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "Zero refresh interval",
			mutate: func(c *Config) { c.CacheRefreshMinutes = 0 },
		},
		{
			name:   "Negative page size",
			mutate: func(c *Config) { c.LoadoutsPerPage = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				BotToken:               "token",
				GuildID:                "111",
				VerifyChannelID:        "222",
				WelcomeChannelID:       "333",
				AnnouncementsChannelID: "444",
				UnverifiedRoleID:       "555",
				VerifiedRoleID:         "666",
				DBPassword:             "password",
				CacheRefreshMinutes:    60,
				LoadoutsPerPage:        5,
			}
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("Validate() expected error, got nil")
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	dsn := cfg.GetDSN()

	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}

func TestGetCacheRefreshInterval(t *testing.T) {
	cfg := &Config{
		CacheRefreshMinutes: 60,
	}

	if got := cfg.GetCacheRefreshInterval(); got != time.Hour {
		t.Errorf("GetCacheRefreshInterval() = %v, want %v", got, time.Hour)
	}
}

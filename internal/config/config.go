package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Europe/Paris must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBPath       string
	AppName      string
	ManagerEmail string
	Location     *time.Location
	Seed         bool
	SeedFile     string
	LogLevel     string
	LogFormat    string
}

func Default() Config {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		loc = time.UTC
	}
	return Config{
		Addr:         ":8080",
		DBPath:       "./dashboard.db",
		AppName:      "Direction_Etudes_Management",
		ManagerEmail: "manager@monequipe.com",
		Location:     loc,
		Seed:         true,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads the given .env files (".env" when none is given) and then the
// environment. Missing files are fine; variables already set win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("DASHBOARD_ADDR", &cfg.Addr)
	str("DASHBOARD_DB_PATH", &cfg.DBPath)
	str("DASHBOARD_APP_NAME", &cfg.AppName)
	str("DASHBOARD_MANAGER_EMAIL", &cfg.ManagerEmail)
	str("DASHBOARD_LOG_LEVEL", &cfg.LogLevel)
	str("DASHBOARD_LOG_FORMAT", &cfg.LogFormat)
	str("DASHBOARD_SEED_FILE", &cfg.SeedFile)

	if v, ok := lookup("DASHBOARD_TIMEZONE"); ok && v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return Config{}, fmt.Errorf("DASHBOARD_TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	if v, ok := lookup("DASHBOARD_SEED"); ok && v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("DASHBOARD_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

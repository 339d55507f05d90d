package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort         string
	CredentialsFile string

	// Scheduler
	ScanInterval time.Duration
	SendTimeout  time.Duration
	ScanLocation *time.Location

	// Optional tick-overlap lease
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment. Missing credentials are
// fatal: the scheduler must fail closed rather than run without store or
// push access.
func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile == "" {
		log.Fatal("environment variable GOOGLE_APPLICATION_CREDENTIALS is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	scanInterval := 60 * time.Second
	if v := os.Getenv("SCAN_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			scanInterval = time.Duration(n) * time.Second
		}
	}

	sendTimeout := 10 * time.Second
	if v := os.Getenv("SEND_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sendTimeout = time.Duration(n) * time.Second
		}
	}

	// Task dates and times are compared against this location. There is no
	// per-user timezone field in the task schema, so a single process-wide
	// location is the best available; see DESIGN.md.
	loc := time.UTC
	if v := os.Getenv("SCAN_TIMEZONE"); v != "" {
		parsed, err := time.LoadLocation(v)
		if err != nil {
			log.Fatalf("invalid SCAN_TIMEZONE %q: %v", v, err)
		}
		loc = parsed
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			redisDB = n
		}
	}

	return &Config{
		AppPort:         port,
		CredentialsFile: credentialsFile,
		ScanInterval:    scanInterval,
		SendTimeout:     sendTimeout,
		ScanLocation:    loc,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
	}
}

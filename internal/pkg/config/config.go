package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		StatusPollInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Analytics struct {
		BaseURL string
		Timeout time.Duration
	}

	Identity struct {
		BaseURL    string
		AnonKey    string
		ServiceKey string
		Timeout    time.Duration
	}

	Session struct {
		InitTimeout    time.Duration
		InitAttempts   int
		InitDelay      time.Duration
		ProfileTimeout time.Duration
		TriggerWait    time.Duration
		TokenStorePath string
	}

	Ingest struct {
		StatusDelay     time.Duration
		DependentsDelay time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Analytics Analytics
		Identity  Identity
		Session   Session
		Ingest    Ingest
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statusPollInterval, err := osGetEnvDuration("BACKGROUND_STATUS_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	analyticsTimeout, err := osGetEnvDuration("ANALYTICS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	identityTimeout, err := osGetEnvDuration("IDENTITY_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionInitTimeout, err := osGetEnvDuration("SESSION_INIT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionInitAttempts, err := osGetInt("SESSION_INIT_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionInitDelay, err := osGetEnvDuration("SESSION_INIT_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionProfileTimeout, err := osGetEnvDuration("SESSION_PROFILE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTriggerWait, err := osGetEnvDuration("SESSION_TRIGGER_WAIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ingestStatusDelay, err := osGetEnvDuration("INGEST_STATUS_INVALIDATE_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	ingestDependentsDelay, err := osGetEnvDuration("INGEST_DEPENDENTS_INVALIDATE_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			StatusPollInterval: statusPollInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Analytics: Analytics{
			BaseURL: os.Getenv("ANALYTICS_BASE_URL"),
			Timeout: analyticsTimeout,
		},
		Identity: Identity{
			BaseURL:    os.Getenv("IDENTITY_BASE_URL"),
			AnonKey:    os.Getenv("IDENTITY_ANON_KEY"),
			ServiceKey: os.Getenv("IDENTITY_SERVICE_KEY"),
			Timeout:    identityTimeout,
		},
		Session: Session{
			InitTimeout:    sessionInitTimeout,
			InitAttempts:   sessionInitAttempts,
			InitDelay:      sessionInitDelay,
			ProfileTimeout: sessionProfileTimeout,
			TriggerWait:    sessionTriggerWait,
			TokenStorePath: os.Getenv("SESSION_TOKEN_STORE_PATH"),
		},
		Ingest: Ingest{
			StatusDelay:     ingestStatusDelay,
			DependentsDelay: ingestDependentsDelay,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Analytics.BaseURL == "" {
		return errors.New("ANALYTICS_BASE_URL is required")
	}

	if cfg.Identity.BaseURL == "" {
		return errors.New("IDENTITY_BASE_URL is required")
	}
	if cfg.Identity.AnonKey == "" {
		return errors.New("IDENTITY_ANON_KEY is required")
	}
	if cfg.Identity.ServiceKey == "" {
		return errors.New("IDENTITY_SERVICE_KEY is required")
	}

	if cfg.Session.TokenStorePath == "" {
		return errors.New("SESSION_TOKEN_STORE_PATH is required")
	}

	if cfg.Tasks.StatusPollInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATUS_POLL_INTERVAL is required")
	}

	// Пустые таймауты и паузы допустимы: у сервисов есть свои значения
	// по умолчанию.
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

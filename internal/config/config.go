package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile             = ".env"
	defaultPort                = "8080"
	defaultEnvironment         = "local"
	defaultReadHeaderTimeout   = 10 * time.Second
	defaultReadTimeout         = 15 * time.Second
	defaultWriteTimeout        = 30 * time.Second
	defaultIdleTimeout         = 60 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultRequestTimeout      = 30 * time.Second
	defaultCMSTimeout          = 5 * time.Second
	defaultContentCacheTTL     = 5 * time.Minute
	defaultSubmitTimeout       = 10 * time.Second
	defaultFirestoreCollection = "leads"
	localCSRFKey               = "local-development-csrf-key"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Site        SiteConfig
	Content     ContentConfig
	Forms       FormsConfig
	Security    SecurityConfig
	Analytics   AnalyticsConfig
	GCP         GCPConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	RequestTimeout    time.Duration
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// SiteConfig holds the public identity of the site.
type SiteConfig struct {
	// BaseURL is the absolute origin used for canonical links and the sitemap.
	BaseURL string
}

// ContentConfig controls where copy and blog posts come from.
type ContentConfig struct {
	CMSBaseURL string
	CMSTimeout time.Duration
	CacheTTL   time.Duration
	Dir        string
	PostsDir   string
}

// FormsConfig controls where lead forms are submitted.
type FormsConfig struct {
	// SubmitBaseURL defaults to the server's own loopback origin.
	SubmitBaseURL string
	SubmitTimeout time.Duration
}

// SecurityConfig groups request-forgery settings.
type SecurityConfig struct {
	CSRFKey    string
	CookieHost string
	Secure     bool
}

// AnalyticsConfig holds client instrumentation IDs surfaced to the layout.
type AnalyticsConfig struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

// GCPConfig enables the Firestore lead store and Pub/Sub notifier when ProjectID is set.
type GCPConfig struct {
	ProjectID           string
	CredentialsFile     string
	FirestoreCollection string
	PubSubTopic         string
}

// Enabled reports whether GCP-backed lead handling is configured.
func (g GCPConfig) Enabled() bool { return g.ProjectID != "" }

// IsLocal reports whether the service runs in a local development environment.
func (c Config) IsLocal() bool { return c.Environment == defaultEnvironment }

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.LookupEnv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration by combining defaults, .env overrides and environment
// variables. Precedence: explicit map > OS env > .env file.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	// Cloud Run injects PORT; the prefixed key still wins.
	port := stringWithDefault(lookup, "PORT", defaultPort)

	cfg := Config{
		Environment: strings.ToLower(stringWithDefault(lookup, "ECETA_WEB_ENV", defaultEnvironment)),
		LogLevel:    strings.ToLower(stringWithDefault(lookup, "ECETA_WEB_LOG_LEVEL", stringWithDefault(lookup, "LOG_LEVEL", "info"))),
		Server: ServerConfig{
			Port:              stringWithDefault(lookup, "ECETA_WEB_PORT", port),
			ReadHeaderTimeout: durationWithDefault(lookup, "ECETA_WEB_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
			ReadTimeout:       durationWithDefault(lookup, "ECETA_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "ECETA_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "ECETA_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout:   durationWithDefault(lookup, "ECETA_WEB_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
			RequestTimeout:    durationWithDefault(lookup, "ECETA_WEB_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Content: ContentConfig{
			CMSBaseURL: strings.TrimRight(stringWithDefault(lookup, "ECETA_WEB_CMS_BASE_URL", ""), "/"),
			CMSTimeout: durationWithDefault(lookup, "ECETA_WEB_CMS_TIMEOUT", defaultCMSTimeout),
			CacheTTL:   durationWithDefault(lookup, "ECETA_WEB_CONTENT_CACHE_TTL", defaultContentCacheTTL),
			Dir:        stringWithDefault(lookup, "ECETA_WEB_CONTENT_DIR", ""),
			PostsDir:   stringWithDefault(lookup, "ECETA_WEB_POSTS_DIR", ""),
		},
		Forms: FormsConfig{
			SubmitBaseURL: strings.TrimRight(stringWithDefault(lookup, "ECETA_WEB_SUBMIT_BASE_URL", ""), "/"),
			SubmitTimeout: durationWithDefault(lookup, "ECETA_WEB_SUBMIT_TIMEOUT", defaultSubmitTimeout),
		},
		Security: SecurityConfig{
			CSRFKey:    stringWithDefault(lookup, "ECETA_WEB_CSRF_KEY", ""),
			CookieHost: stringWithDefault(lookup, "ECETA_WEB_COOKIE_DOMAIN", ""),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "ECETA_WEB_GA_MEASUREMENT_ID", ""),
			GTMContainerID:   stringWithDefault(lookup, "ECETA_WEB_GTM_CONTAINER_ID", ""),
			Debug:            boolWithDefault(lookup, "ECETA_WEB_ANALYTICS_DEBUG", false),
		},
		GCP: GCPConfig{
			ProjectID:           stringWithDefault(lookup, "ECETA_WEB_GCP_PROJECT_ID", stringWithDefault(lookup, "GOOGLE_CLOUD_PROJECT", "")),
			CredentialsFile:     stringWithDefault(lookup, "ECETA_WEB_GCP_CREDENTIALS_FILE", ""),
			FirestoreCollection: stringWithDefault(lookup, "ECETA_WEB_FIRESTORE_COLLECTION", defaultFirestoreCollection),
			PubSubTopic:         stringWithDefault(lookup, "ECETA_WEB_PUBSUB_TOPIC", ""),
		},
	}

	cfg.Site.BaseURL = strings.TrimRight(stringWithDefault(lookup, "ECETA_WEB_BASE_URL", "http://localhost:"+cfg.Server.Port), "/")
	if cfg.Forms.SubmitBaseURL == "" {
		cfg.Forms.SubmitBaseURL = "http://127.0.0.1:" + cfg.Server.Port
	}
	cfg.Security.Secure = strings.HasPrefix(cfg.Site.BaseURL, "https://")
	if cfg.Security.CSRFKey == "" && cfg.IsLocal() {
		cfg.Security.CSRFKey = localCSRFKey
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "Server.Port")
	} else if _, err := strconv.Atoi(cfg.Server.Port); err != nil {
		missing = append(missing, "Server.Port")
	}
	if !isAbsoluteURL(cfg.Site.BaseURL) {
		missing = append(missing, "Site.BaseURL")
	}
	if cfg.Content.CMSBaseURL != "" && !isAbsoluteURL(cfg.Content.CMSBaseURL) {
		missing = append(missing, "Content.CMSBaseURL")
	}
	if cfg.Content.CacheTTL < 0 {
		missing = append(missing, "Content.CacheTTL")
	}
	if !isAbsoluteURL(cfg.Forms.SubmitBaseURL) {
		missing = append(missing, "Forms.SubmitBaseURL")
	}
	if cfg.Forms.SubmitTimeout <= 0 {
		missing = append(missing, "Forms.SubmitTimeout")
	}
	if strings.TrimSpace(cfg.Security.CSRFKey) == "" {
		missing = append(missing, "Security.CSRFKey")
	}
	if cfg.GCP.Enabled() && strings.TrimSpace(cfg.GCP.FirestoreCollection) == "" {
		missing = append(missing, "GCP.FirestoreCollection")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

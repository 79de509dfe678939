package config

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ConfigPrefix = "PG"

type StoreBackend string

const (
	StoreMemory StoreBackend = "memory"
	StoreSQLite StoreBackend = "sqlite"

	DefaultListen      = "0.0.0.0:8080"
	DefaultLocalListen = "127.0.0.1:8080"

	listen          = "listen"
	shutdownTimeout = "shutdown-timeout"

	store        = "store"
	databasePath = "database-path"

	tokenSecret = "token-secret"
	tokenTTL    = "token-ttl"

	defaultRequestLimit   = "default-request-limit"
	defaultConcurrencyCap = "default-concurrency-cap"

	adminEmails           = "admin-emails"
	adminEndpoints        = "admin-endpoints"
	allowIdentityFallback = "allow-identity-fallback"

	modelsURI       = "models-uri"
	upstreamURL     = "upstream-url"
	upstreamAPIKey  = "upstream-api-key"
	connectTimeout  = "connect-timeout"
	generateTimeout = "generate-timeout"

	defaultConfigPath = "config/"
	defaultModelsURI  = defaultConfigPath + "models.yaml"

	DefaultUpstreamURL = "https://generativelanguage.googleapis.com/v1beta"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	validStores     = []StoreBackend{StoreMemory, StoreSQLite}
	validStoresHelp = quoteStrings(validStores)

	genLineage = uuid.NewString
)

type (
	ServerConfig interface {
		Listen() string
		ShutdownTimeout() time.Duration
	}

	StoreConfig interface {
		Store() StoreBackend
		DatabasePath() string
		DefaultRequestLimit() int64
		DefaultConcurrencyCap() int64
	}

	TokenConfig interface {
		TokenSecret() string
		TokenTTL() time.Duration
	}

	AdminConfig interface {
		AdminEmails() []string
		AdminEndpoints() bool
		AllowIdentityFallback() bool
	}

	UpstreamConfig interface {
		UpstreamURL() string
		UpstreamAPIKey() string
		ConnectTimeout() time.Duration
		GenerateTimeout() time.Duration
	}

	CatalogConfig interface {
		ModelsURI() string
	}

	Config interface {
		ServerConfig
		StoreConfig
		TokenConfig
		AdminConfig
		UpstreamConfig
		CatalogConfig
		Lineage() string
	}

	ConfigViper struct {
		v       *viper.Viper
		store   StoreBackend
		admins  []string
		lineage string
	}
)

func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}

	st := StoreBackend(strings.ToLower(v.GetString(store)))
	if !slices.Contains(validStores, st) {
		return nil, errors.Errorf("invalid store parameter specified (%s), valid options are: %s", st, validStoresHelp)
	}
	if st == StoreSQLite && v.GetString(databasePath) == "" {
		return nil, errors.Errorf("--%s is required when --%s is %q", databasePath, store, StoreSQLite)
	}
	if v.GetString(tokenSecret) == "" {
		return nil, errors.Errorf("--%s is required (or set %s_TOKEN_SECRET)", tokenSecret, ConfigPrefix)
	}

	admins := make([]string, 0, len(v.GetStringSlice(adminEmails)))
	for _, a := range v.GetStringSlice(adminEmails) {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			admins = append(admins, a)
		}
	}

	return &ConfigViper{
		v:       v,
		store:   st,
		admins:  admins,
		lineage: genLineage(),
	}, nil
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) ShutdownTimeout() time.Duration {
	return c.v.GetDuration(shutdownTimeout)
}

func (c *ConfigViper) Store() StoreBackend {
	return c.store
}

func (c *ConfigViper) DatabasePath() string {
	return c.v.GetString(databasePath)
}

func (c *ConfigViper) DefaultRequestLimit() int64 {
	return c.v.GetInt64(defaultRequestLimit)
}

func (c *ConfigViper) DefaultConcurrencyCap() int64 {
	return c.v.GetInt64(defaultConcurrencyCap)
}

func (c *ConfigViper) TokenSecret() string {
	return c.v.GetString(tokenSecret)
}

func (c *ConfigViper) TokenTTL() time.Duration {
	return c.v.GetDuration(tokenTTL)
}

func (c *ConfigViper) AdminEmails() []string {
	return c.admins
}

func (c *ConfigViper) AdminEndpoints() bool {
	return c.v.GetBool(adminEndpoints)
}

func (c *ConfigViper) AllowIdentityFallback() bool {
	return c.v.GetBool(allowIdentityFallback)
}

func (c *ConfigViper) ModelsURI() string {
	return c.v.GetString(modelsURI)
}

func (c *ConfigViper) UpstreamURL() string {
	return c.v.GetString(upstreamURL)
}

func (c *ConfigViper) UpstreamAPIKey() string {
	return c.v.GetString(upstreamAPIKey)
}

func (c *ConfigViper) ConnectTimeout() time.Duration {
	return c.v.GetDuration(connectTimeout)
}

func (c *ConfigViper) GenerateTimeout() time.Duration {
	return c.v.GetDuration(generateTimeout)
}

func (c *ConfigViper) Lineage() string {
	return c.lineage
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// GOOGLE_API_KEY also works along with PG_UPSTREAM_API_KEY, so the same
	// environment serves both this gateway and the gcloud tooling
	return v.BindEnv(upstreamAPIKey, "GOOGLE_API_KEY")
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}

package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	hc "github.com/promptgate/promptgate/internal/common/client"
	"github.com/promptgate/promptgate/internal/services/admission"
	"github.com/promptgate/promptgate/internal/services/chat"
	"github.com/promptgate/promptgate/internal/services/token"
	"github.com/promptgate/promptgate/internal/services/users"
	"github.com/promptgate/promptgate/pkg/catalog"
	"github.com/promptgate/promptgate/pkg/config"
	"github.com/promptgate/promptgate/pkg/event"
	"github.com/promptgate/promptgate/pkg/generate"
	"github.com/promptgate/promptgate/pkg/generate/gemini"
	"github.com/promptgate/promptgate/pkg/log"
	"github.com/promptgate/promptgate/pkg/quota"
	qmemory "github.com/promptgate/promptgate/pkg/quota/memory"
	qsqlite "github.com/promptgate/promptgate/pkg/quota/sqlite"
	"github.com/promptgate/promptgate/pkg/signal"
)

var InitLog *zap.SugaredLogger

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() config.Config {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitSignalHandlerFunc(cfg config.Config) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(cfg.ShutdownTimeout(), l)
}

func InitHTTPClientFunc(cfg config.Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout()}
	//nolint:errcheck // not going to fail
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          http.DefaultTransport.(*http.Transport).MaxIdleConns,
		IdleConnTimeout:       http.DefaultTransport.(*http.Transport).IdleConnTimeout,
		TLSHandshakeTimeout:   http.DefaultTransport.(*http.Transport).TLSHandshakeTimeout,
		ExpectContinueTimeout: http.DefaultTransport.(*http.Transport).ExpectContinueTimeout,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.GenerateTimeout(),
	}
}

func InitQuotaStoreFunc(cfg config.Config, sig *signal.Handler) quota.Store {
	defaults := quota.Defaults{
		RequestLimit:   cfg.DefaultRequestLimit(),
		ConcurrencyCap: cfg.DefaultConcurrencyCap(),
	}
	l := log.GetLogger().Named("store")

	if cfg.Store() == config.StoreMemory {
		InitLog.Warn("using in-memory quota store, all counters reset on restart")
		return qmemory.NewStore(defaults, time.Now, l)
	}

	s, err := qsqlite.Open(cfg.DatabasePath(), defaults, time.Now, l)
	if err != nil {
		InitLog.Fatalw("failed to open quota database",
			zap.String("path", cfg.DatabasePath()), zap.Error(err))
	}
	sig.RegisterShutdownHook(s, s.Shutdown)
	return s
}

func loadModelsConfig(cfg config.Config, httpClient hc.HTTPClient) []byte {
	httpPattern := regexp.MustCompile(`(?i)^https?://.+`)
	uri := cfg.ModelsURI()

	var (
		data []byte
		err  error
	)
	if httpPattern.MatchString(uri) {
		data, err = downloadModelsConfig(httpClient, uri)
	} else {
		data, err = os.ReadFile(uri)
	}
	if err != nil {
		InitLog.Fatalw("failed to load models config", zap.String("uri", uri), zap.Error(err))
	}
	return data
}

func downloadModelsConfig(httpClient hc.HTTPClient, uri string) ([]byte, error) {
	InitLog.Infow("downloading models config from remote URL", zap.String("url", uri))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, errors.Errorf("request %s failed with code %d", uri, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func InitModelCatalogFunc(_ config.Config, modelsConfig []byte) catalog.ModelCatalog {
	cat, err := catalog.NewYamlModelCatalog(modelsConfig)
	if err != nil {
		InitLog.Fatalw("failed to initialize model catalog", zap.Error(err))
	}

	return cat
}

func InitEventBrokerFunc(_ config.Config, sig *signal.Handler) event.EventBroker {
	const defaultEventBufferSize = 100
	l := log.GetLogger().Named("event")
	eb := event.NewEventBrokerImpl(defaultEventBufferSize, l)
	sig.RegisterShutdownHook(eb, eb.ShutDown)
	return eb
}

func InitTokenServiceFunc(cfg config.Config) token.TokenService {
	l := log.GetLogger().Named("token")
	return token.NewJWTTokenService(cfg.TokenSecret(), cfg.TokenTTL(), time.Now, l)
}

func InitGeneratorFunc(cfg config.Config, httpClient hc.HTTPClient) generate.Generator {
	l := log.GetLogger().Named("gemini")
	return gemini.NewClient(httpClient, cfg.UpstreamURL(), cfg.UpstreamAPIKey(), l)
}

func initAdmissionService(store quota.Store) admission.AdmissionService {
	l := log.GetLogger().Named("admission")
	return admission.NewAdmissionService(store, l)
}

func initChatService(cat catalog.ModelCatalog, adm admission.AdmissionService, gen generate.Generator) chat.ChatService {
	l := log.GetLogger().Named("chat")
	return chat.NewChatService(cat, adm, gen, l)
}

func initUserService(store quota.Store) users.UserService {
	l := log.GetLogger().Named("users")
	return users.NewUserService(store, l)
}

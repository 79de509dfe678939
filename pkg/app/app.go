package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	hc "github.com/promptgate/promptgate/internal/common/client"
	"github.com/promptgate/promptgate/internal/services/token"
	"github.com/promptgate/promptgate/pkg/catalog"
	"github.com/promptgate/promptgate/pkg/config"
	"github.com/promptgate/promptgate/pkg/event"
	"github.com/promptgate/promptgate/pkg/generate"
	"github.com/promptgate/promptgate/pkg/quota"
	"github.com/promptgate/promptgate/pkg/signal"
)

var (
	InitLogger        func() *zap.Logger                                     = InitLoggerFunc
	InitConfig        func() config.Config                                   = InitConfigFunc
	InitSignalHandler func(config.Config) *signal.Handler                    = InitSignalHandlerFunc
	InitHTTPClient    func(config.Config) *http.Client                       = InitHTTPClientFunc
	InitQuotaStore    func(config.Config, *signal.Handler) quota.Store       = InitQuotaStoreFunc
	InitModelCatalog  func(config.Config, []byte) catalog.ModelCatalog       = InitModelCatalogFunc
	InitEventBroker   func(config.Config, *signal.Handler) event.EventBroker = InitEventBrokerFunc
	InitGenerator     func(config.Config, hc.HTTPClient) generate.Generator  = InitGeneratorFunc
	InitTokenService  func(config.Config) token.TokenService                 = InitTokenServiceFunc
	InitMiddleware    func(config.Config, *echo.Echo, *zap.Logger)           = InitMiddlewareFunc
	InitAPI           func(
		config.Config,
		*echo.Echo,
		InfoController,
		CatalogController,
		TokenController,
		UsersController,
		ChatController,
		AdminGate,
	) = InitAPIFunc
)

func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)

	InitLog.With(zap.String("lineage", cfg.Lineage())).
		Infof("initializing %s quota store", cfg.Store())
	store := InitQuotaStore(cfg, sig)

	client := InitHTTPClient(cfg)

	modelsConfig := loadModelsConfig(cfg, client)
	cat := InitModelCatalog(cfg, modelsConfig)

	gen := InitGenerator(cfg, client)

	eb := InitEventBroker(cfg, sig)

	tokens := InitTokenService(cfg)
	adm := initAdmissionService(store)
	chatSvc := initChatService(cat, adm, gen)
	userSvc := initUserService(store)

	cLog := l.Named("controller")
	infoController := initInfoController(appName, gitRef, gitSha)
	catalogController := initCatalogController(cat)
	tokenController := initTokenController(store, tokens, cLog)
	usersController := initUsersController(userSvc)
	chatController := initChatController(chatSvc, tokens, cfg, eb, cLog)
	gate := initAdminGate(tokens, cfg, cLog)

	srvLog := l.Named("server")
	e := initEcho(cfg, srvLog)
	// Routes
	InitAPI(
		cfg,
		e,
		infoController,
		catalogController,
		tokenController,
		usersController,
		chatController,
		gate,
	)

	// Start server
	go func() {
		lstn := cfg.Listen()
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", lstn)
		if err := e.Start(lstn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook(nil, e.Shutdown)
	os.Exit(sig.Start())
}

package app

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/promptgate/promptgate/internal/controllers"
	"github.com/promptgate/promptgate/internal/router"
	"github.com/promptgate/promptgate/internal/services/chat"
	"github.com/promptgate/promptgate/internal/services/token"
	"github.com/promptgate/promptgate/internal/services/users"
	"github.com/promptgate/promptgate/pkg/catalog"
	"github.com/promptgate/promptgate/pkg/config"
	"github.com/promptgate/promptgate/pkg/event"
	"github.com/promptgate/promptgate/pkg/quota"
)

type (
	InfoController interface {
		Info(c echo.Context) error
		Health(c echo.Context) error
	}

	CatalogController interface {
		Models(c echo.Context) error
	}

	TokenController interface {
		IssueToken(c echo.Context) error
	}

	UsersController interface {
		Register(c echo.Context) error
		GetUser(c echo.Context) error
		DeleteUser(c echo.Context) error
	}

	ChatController interface {
		Chat(c echo.Context) error
	}

	AdminGate interface {
		Require(next echo.HandlerFunc) echo.HandlerFunc
	}
)

func initEcho(cfg config.Config, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.Config, e *echo.Echo, srvLogger *zap.Logger) {
	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:   true,
			LogRemoteIP:  true,
			LogMethod:    true,
			LogURI:       true,
			LogRequestID: true,
			LogUserAgent: true,
			LogStatus:    true,
			LogError:     true,
			HandleError:  true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.Config,
	e *echo.Echo,
	infoController InfoController,
	catalogController CatalogController,
	tokenController TokenController,
	usersController UsersController,
	chatController ChatController,
	gate AdminGate,
) {
	e.GET(router.HealthPath, infoController.Health)
	e.GET(router.InfoPath, infoController.Info)
	e.GET(router.ModelsPath, catalogController.Models)

	e.POST(router.TokenPath, tokenController.IssueToken)
	e.POST(router.ChatPath, chatController.Chat)

	e.POST(router.RegisterPath, usersController.Register, gate.Require)
	user := e.Group(router.UserPath, gate.Require)
	user.GET(router.EmailRoute("/:%s"), usersController.GetUser)
	user.DELETE(router.EmailRoute("/:%s"), usersController.DeleteUser)
}

func initTokenController(store quota.Store, tokens token.TokenService, cLog *zap.Logger) *controllers.TokenController {
	return controllers.NewTokenController(store, tokens, cLog.Named("token"))
}

func initUsersController(srv users.UserService) *controllers.UsersController {
	return controllers.NewUsersController(srv)
}

func initCatalogController(cat catalog.ModelCatalog) *controllers.CatalogController {
	return controllers.NewCatalogController(cat)
}

func initInfoController(appName, gitRef, gitSha string) *controllers.InfoController {
	return controllers.NewInfoController(appName, gitRef, gitSha)
}

func initChatController(
	srv chat.ChatService,
	tokens token.TokenService,
	cfg config.Config,
	eb event.EventBroker,
	cLog *zap.Logger,
) *controllers.ChatController {
	return controllers.NewChatController(srv, tokens, cfg, eb, time.Now, cLog.Named("chat"))
}

func initAdminGate(tokens token.TokenService, cfg config.Config, cLog *zap.Logger) *controllers.AdminGate {
	return controllers.NewAdminGate(tokens, cfg, cLog.Named("admin"))
}

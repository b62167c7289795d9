package main

import (
	"context"
	"fmt"
	"log"

	common_api "homestock/internal/common/api"
	"homestock/internal/common/apperror"
	"homestock/internal/config"
	"homestock/internal/database"
	"homestock/internal/features/categoria"
	"homestock/internal/features/grupo"
	"homestock/internal/features/listacompra"
	"homestock/internal/features/lugar"
	"homestock/internal/features/notificacion"
	"homestock/internal/features/producto"
	"homestock/internal/features/system"
	"homestock/internal/features/user"
	"homestock/internal/logger"
	"homestock/internal/middleware"
	"homestock/pkg/utils"

	_ "homestock/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperror.StatusCode(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// @title           HomeStock API
// @version         1.0
// @description     Household inventory backend using Fiber, Uber Fx and MongoDB.

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			user.NewUserRepository,
			grupo.NewGrupoRepository,
			lugar.NewLugarRepository,
			producto.NewProductoRepository,
			categoria.NewCategoriaRepository,
			listacompra.NewListaCompraRepository,
			notificacion.NewNotificacionRepository,

			user.NewUserService,
			grupo.NewGrupoService,
			lugar.NewLugarService,
			producto.NewProductoService,
			categoria.NewCategoriaService,
			listacompra.NewListaCompraService,
			notificacion.NewNotificacionService,

			notificacion.NewHub,
			notificacion.NewSweeper,

			// Initialize Controller
			user.NewUserController,
			grupo.NewGrupoController,
			lugar.NewLugarController,
			producto.NewProductoController,
			categoria.NewCategoriaController,
			listacompra.NewListaCompraController,
			notificacion.NewNotificacionController,

			// Initialize API Routes
			AsRoute(user.NewUserApi),
			AsRoute(grupo.NewGrupoApi),
			AsRoute(lugar.NewLugarApi),
			AsRoute(producto.NewProductoApi),
			AsRoute(categoria.NewCategoriaApi),
			AsRoute(listacompra.NewListaCompraApi),
			AsRoute(notificacion.NewNotificacionApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,

			// Schedule the stock sweep
			func(lc fx.Lifecycle, sweeper *notificacion.Sweeper) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return sweeper.Start()
					},
					OnStop: func(ctx context.Context) error {
						sweeper.Stop()
						return nil
					},
				})
			},
		),
	)

	app.Run()
}

// @title           Lot Allocation BFF
// @version         1.0
// @description     BFF de gestión de lotes y asignación (引当) sobre el backend REST de inventario.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/lot-allocation-bff/docs"
	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/backend"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/memory"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/metrics"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/lot-allocation-bff/internal/infrastructure/pdf"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/lot-allocation-bff/internal/interfaces/http"
	"github.com/jhoicas/lot-allocation-bff/pkg/config"
	"github.com/jhoicas/lot-allocation-bff/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Preferencias de UI: PostgreSQL si está configurado, si no en memoria.
	var prefs repository.PreferenceStore = memory.NewPreferenceStore()
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgStore := postgres.NewPreferenceStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema ui_preferences")
		}
		prefs = pgStore
	} else {
		log.Warn().Msg("sin base de datos: preferencias en memoria")
	}

	m := metrics.New()
	notifier := notify.NewLogNotifier(log)

	client := backend.NewClient(cfg.Backend, cfg.Breaker, log,
		backend.WithStateObserver(m.BreakerObserver("backend")),
	)
	lotRepo := backend.NewLotRepository(client)
	orderRepo := backend.NewOrderRepository(client)
	allocRepo := backend.NewAllocationRepository(client)

	queryCache := cache.New(
		cache.WithStaleTime(cfg.Cache.StaleTime),
		cache.WithNotifier(notifier),
	)
	unsubscribe := queryCache.Subscribe(m.RecordInvalidation)
	defer unsubscribe()

	tag, err := language.Parse(cfg.App.Locale)
	if err != nil {
		log.Warn().Err(err).Str("locale", cfg.App.Locale).Msg("locale inválido, se usa ja")
		tag = language.Japanese
	}

	lotUC := usecase.NewLotUseCase(lotRepo, queryCache, inventory.NewLotGrouper(tag))
	orderUC := usecase.NewOrderUseCase(orderRepo, queryCache, infrapdf.NewSlipGenerator())
	filterUC := usecase.NewFilterUseCase(lotUC, prefs)
	planningUC := usecase.NewPlanningUseCase(backend.NewPlanningRepository(client), queryCache)
	sapUC := usecase.NewSAPUseCase(backend.NewSAPRepository(client), queryCache, notifier)
	masterUC := usecase.NewMasterUseCase(backend.NewMasterRepository(client), queryCache)

	sessions := allocation.NewSessionStore(allocation.StoreConfig{
		Deps: allocation.Deps{
			Repo:       allocRepo,
			Cache:      queryCache,
			Notifier:   notifier,
			Guard:      allocation.NewLineGuard(),
			OnMutation: m.ObserveMutation,
		},
		ToastTTL: cfg.Session.ToastTTL,
		IdleTTL:  cfg.Session.IdleTTL,
	})
	go sessions.Run(ctx, time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(httpRouter.MetricsMiddleware(m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lot Allocation BFF",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"backend": client.State().String(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LotUC:       lotUC,
		OrderUC:     orderUC,
		FilterUC:    filterUC,
		PlanningUC:  planningUC,
		SAPUC:       sapUC,
		MasterUC:    masterUC,
		Sessions:    sessions,
		Metrics:     m,
		JWTSecret:   cfg.JWT.Secret,
		MasterRoles: cfg.JWT.MasterRoles,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

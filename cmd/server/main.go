package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/inventario-server/internal/application/auth"
	"github.com/jhoicas/inventario-server/internal/application/usecase"
	"github.com/jhoicas/inventario-server/internal/audit"
	"github.com/jhoicas/inventario-server/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-server/internal/interfaces/http"
	"github.com/jhoicas/inventario-server/pkg/config"
	"github.com/jhoicas/inventario-server/pkg/logger"
)

// Ciclo de vida: STOPPED -> INITIALIZING (config, pool, esquema) ->
// LISTENING (servicios publicados) -> SHUTTING_DOWN (despublicar, drenar
// pool) -> STOPPED. Las fallas de arranque (puerto ocupado, script de
// esquema ausente) terminan el proceso con código distinto de cero.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("config_source", cfg.Source).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		// Secret efímero: las sesiones no sobreviven un reinicio del proceso.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal().Err(err).Msg("generar secret JWT")
		}
		cfg.JWT.Secret = hex.EncodeToString(buf)
		log.Warn().Msg("JWT_SECRET no definido, usando secret efímero")
	}

	auditLog, err := audit.New(cfg.Audit.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir rastro de auditoría")
	}
	defer auditLog.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Pool)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}

	if err := postgres.NewInitializer(pool, cfg.Init, log).Run(ctx); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("inicialización de la base de datos")
	}

	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo, auditLog)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, auditLog)
	authUC := auth.NewAuthUseCase(employeeRepo, auditLog, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		EmployeeUC: employeeUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servicios publicados, servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		// Puerto ocupado u otra falla del listener: arranque abortado.
		pool.Close()
		log.Fatal().Err(err).Msg("el servidor no pudo escuchar")
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Despublicar servicios y drenar el pool: ambos pasos se intentan
	// aunque el primero falle.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
	pool.Close()

	log.Info().Msg("aplicación detenida")
}

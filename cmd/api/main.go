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

	appanalytics "github.com/AmbientalSC/licencas/internal/application/analytics"
	"github.com/AmbientalSC/licencas/internal/application/auth"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	infrapdf "github.com/AmbientalSC/licencas/internal/infrastructure/pdf"
	"github.com/AmbientalSC/licencas/internal/infrastructure/postgres"
	httpRouter "github.com/AmbientalSC/licencas/internal/interfaces/http"
	"github.com/AmbientalSC/licencas/pkg/config"
	"github.com/AmbientalSC/licencas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	filialRepo := postgres.NewFilialRepository(pool)
	tipoRepo := postgres.NewTipoLicencaRepository(pool)
	laoRepo := postgres.NewLaoRepository(pool)
	condRepo := postgres.NewCondicionanteRepository(pool)
	vistRepo := postgres.NewVistoriaRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	filialUC := usecase.NewFilialUseCase(filialRepo)
	tipoUC := usecase.NewTipoLicencaUseCase(tipoRepo)
	laoUC := usecase.NewLaoUseCase(laoRepo)
	condUC := usecase.NewCondicionanteUseCase(condRepo, laoRepo)
	vistUC := usecase.NewVistoriaUseCase(vistRepo, condRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(laoRepo, condRepo, tipoRepo)

	importWriter := postgres.NewImportWriter(pool)
	importUC := usecase.NewImportUseCase(filialRepo, laoRepo, condRepo, vistRepo, importWriter, log)
	importPDF := infrapdf.NewImportReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Licenças LAO API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FilialUC:        filialUC,
		TipoLicencaUC:   tipoUC,
		LaoUC:           laoUC,
		CondicionanteUC: condUC,
		VistoriaUC:      vistUC,
		ImportUC:        importUC,
		ImportPDF:       importPDF,
		DashboardUC:     dashboardUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

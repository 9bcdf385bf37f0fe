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

	appfinance "github.com/gestorpro/gestor-api/internal/application/finance"
	appinventory "github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/application/usecase"
	"github.com/gestorpro/gestor-api/internal/infrastructure/notify"
	"github.com/gestorpro/gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorpro/gestor-api/internal/interfaces/http"
	"github.com/gestorpro/gestor-api/pkg/config"
	"github.com/gestorpro/gestor-api/pkg/logger"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	recordRepo := postgres.NewInventoryRecordRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	accountRepo := postgres.NewFinancialAccountRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	bankAccountRepo := postgres.NewBankAccountRepository(pool)
	bankTxRepo := postgres.NewBankTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Engine.LockTimeout)

	notifier := notify.NewLogNotifier(log.Zerolog())

	recordMovementUC := appinventory.NewRecordMovementUseCase(txRunner, warehouseRepo, notifier)
	inventoryQueryUC := appinventory.NewQueryUseCase(recordRepo, movementRepo)
	recordPaymentUC := appfinance.NewRecordPaymentUseCase(txRunner, notifier)
	accountUC := appfinance.NewAccountUseCase(txRunner, accountRepo, paymentRepo)
	reconciler := appfinance.NewStatusReconciler(accountRepo, notifier, log.Zerolog())
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	bankAccountUC := usecase.NewBankAccountUseCase(bankAccountRepo, bankTxRepo)

	// Reconciliador em segundo plano: contas pendentes viram atrasadas quando
	// o vencimento passa, sem depender de tráfego na API.
	go reconciler.Start(ctx, cfg.Engine.ReconcileInterval)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GestorPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC:    warehouseUC,
		BankAccountUC:  bankAccountUC,
		RecordMovement: recordMovementUC,
		InventoryQuery: inventoryQueryUC,
		RecordPayment:  recordPaymentUC,
		AccountUC:      accountUC,
		Reconciler:     reconciler,
		JWTSecret:      cfg.JWT.Secret,
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/finance"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	WarehouseUC    *usecase.WarehouseUseCase
	BankAccountUC  *usecase.BankAccountUseCase
	RecordMovement *inventory.RecordMovementUseCase
	InventoryQuery *inventory.QueryUseCase
	RecordPayment  *finance.RecordPaymentUseCase
	AccountUC      *finance.AccountUseCase
	Reconciler     *finance.StatusReconciler
	JWTSecret      string
}

// Router registra as rotas da API. Tudo sob /api exige Bearer Token; o ator
// do token assina cada lançamento gravado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Inventory ledger (protegido)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.InventoryQuery)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/stock/:productID/:warehouseID", inventoryHandler.GetStock)
	invGroup.Get("/stock/:productID/:warehouseID/verify", inventoryHandler.VerifyBalance)

	// Financial ledger (protegido)
	finGroup := api.Group("/finance")
	financeHandler := NewFinanceHandler(deps.RecordPayment, deps.AccountUC, deps.Reconciler)
	finGroup.Post("/accounts", financeHandler.CreateAccount)
	finGroup.Get("/accounts", financeHandler.ListAccounts)
	finGroup.Get("/accounts/:id", financeHandler.GetAccount)
	finGroup.Post("/accounts/:id/cancel", financeHandler.CancelAccount)
	finGroup.Get("/accounts/:id/payments", financeHandler.ListPayments)
	finGroup.Post("/payments", financeHandler.RecordPayment)
	finGroup.Post("/reconcile", financeHandler.Reconcile)

	// Bank accounts (protegido)
	banks := api.Group("/bank-accounts")
	bankHandler := NewBankAccountHandler(deps.BankAccountUC)
	banks.Post("/", bankHandler.Create)
	banks.Get("/", bankHandler.List)
	banks.Get("/:id", bankHandler.GetByID)
	banks.Get("/:id/transactions", bankHandler.ListTransactions)
}

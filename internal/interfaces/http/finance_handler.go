package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/finance"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// FinanceHandler trata as requisições HTTP do ledger financeiro (protegido).
type FinanceHandler struct {
	payments   *finance.RecordPaymentUseCase
	accounts   *finance.AccountUseCase
	reconciler *finance.StatusReconciler
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(payments *finance.RecordPaymentUseCase, accounts *finance.AccountUseCase, reconciler *finance.StatusReconciler) *FinanceHandler {
	return &FinanceHandler{payments: payments, accounts: accounts, reconciler: reconciler}
}

// CreateAccount godoc
// @Summary      Reconhecer conta a pagar/receber
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "kind, origin, valor_total, data_emissao, data_vencimento"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/accounts [post]
func (h *FinanceHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	account, err := h.accounts.CreateAccount(c.Context(), finance.CreateAccountInput{
		Kind:           in.Kind,
		CounterpartyID: in.CounterpartyID,
		Origin:         in.Origin,
		Description:    in.Description,
		ValorTotal:     in.ValorTotal,
		DataEmissao:    in.DataEmissao,
		DataVencimento: in.DataVencimento,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAccountResponse(account))
}

// GetAccount godoc
// @Summary      Consultar conta financeira
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id} [get]
func (h *FinanceHandler) GetAccount(c *fiber.Ctx) error {
	account, err := h.accounts.GetAccount(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toAccountResponse(account))
}

// ListAccounts godoc
// @Summary      Listar contas financeiras
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "pagar | receber"
// @Param        status  query  string  false  "pendente | parcialmente_pago | pago | atrasado | cancelado"
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/finance/accounts [get]
func (h *FinanceHandler) ListAccounts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.accounts.ListAccounts(c.Context(), c.Query("kind"), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return c.JSON(items)
}

// CancelAccount godoc
// @Summary      Cancelar conta financeira sem pagamentos
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/finance/accounts/{id}/cancel [post]
func (h *FinanceHandler) CancelAccount(c *fiber.Ctx) error {
	if err := h.accounts.CancelAccount(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPayments godoc
// @Summary      Pagamentos de uma conta financeira
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/finance/accounts/{id}/payments [get]
func (h *FinanceHandler) ListPayments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.accounts.ListPayments(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.PaymentResponse{
			ID:             p.ID,
			AccountID:      p.AccountID,
			BankAccountID:  p.BankAccountID,
			Valor:          p.Valor,
			DataPagamento:  p.DataPagamento,
			FormaPagamento: p.FormaPagamento,
			CreatedBy:      p.CreatedBy,
			CreatedAt:      p.CreatedAt,
		})
	}
	return c.JSON(items)
}

// RecordPayment godoc
// @Summary      Registrar pagamento
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPaymentRequest  true  "account_id, bank_account_id, valor, data_pagamento, forma_pagamento"
// @Success      201   {object}  dto.RecordPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/finance/payments [post]
func (h *FinanceHandler) RecordPayment(c *fiber.Ctx) error {
	actor := GetActorID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	paymentID, err := h.payments.RecordPayment(c.Context(), finance.PaymentInput{
		AccountID:      in.AccountID,
		BankAccountID:  in.BankAccountID,
		Valor:          in.Valor,
		DataPagamento:  in.DataPagamento,
		FormaPagamento: in.FormaPagamento,
		Actor:          actor,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordPaymentResponse{PaymentID: paymentID})
}

// Reconcile godoc
// @Summary      Disparar reconciliação de status
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconcileResponse
// @Router       /api/finance/reconcile [post]
func (h *FinanceHandler) Reconcile(c *fiber.Ctx) error {
	changed, err := h.reconciler.Run(c.Context(), time.Now())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.ReconcileResponse{Changed: changed})
}

func toAccountResponse(a *entity.FinancialAccount) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:             a.ID,
		Kind:           a.Kind,
		CounterpartyID: a.CounterpartyID,
		Origin:         a.Origin,
		Description:    a.Description,
		ValorTotal:     a.ValorTotal,
		ValorPago:      a.ValorPago,
		Outstanding:    a.Outstanding(),
		DataEmissao:    a.DataEmissao,
		DataVencimento: a.DataVencimento,
		Status:         a.Status,
	}
}

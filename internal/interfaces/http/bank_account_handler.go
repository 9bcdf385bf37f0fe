package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/usecase"
)

// BankAccountHandler trata as requisições HTTP de contas bancárias
// (protegido).
type BankAccountHandler struct {
	useCase *usecase.BankAccountUseCase
}

// NewBankAccountHandler constrói o handler.
func NewBankAccountHandler(uc *usecase.BankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{useCase: uc}
}

// Create godoc
// @Summary      Criar conta bancária
// @Tags         bank-accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBankAccountRequest  true  "name, saldo_inicial"
// @Success      201   {object}  dto.BankAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bank-accounts [post]
func (h *BankAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.useCase.Create(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consultar conta bancária
// @Tags         bank-accounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta bancária"
// @Success      200  {object}  dto.BankAccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bank-accounts/{id} [get]
func (h *BankAccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.useCase.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conta bancária não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contas bancárias
// @Tags         bank-accounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BankAccountResponse
// @Router       /api/bank-accounts [get]
func (h *BankAccountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	out, err := h.useCase.List(page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListTransactions godoc
// @Summary      Extrato de uma conta bancária
// @Tags         bank-accounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta bancária"
// @Success      200  {array}  dto.BankTransactionResponse
// @Router       /api/bank-accounts/{id}/transactions [get]
func (h *BankAccountHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.useCase.ListTransactions(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	items := make([]dto.BankTransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, dto.BankTransactionResponse{
			ID:            tx.ID,
			BankAccountID: tx.BankAccountID,
			Tipo:          tx.Tipo,
			Valor:         tx.Valor,
			PaymentID:     tx.PaymentID,
			AccountID:     tx.AccountID,
			Description:   tx.Description,
			CreatedAt:     tx.CreatedAt,
		})
	}
	return c.JSON(items)
}

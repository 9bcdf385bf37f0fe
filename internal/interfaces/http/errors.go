package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/domain"
)

// mapDomainError traduz erros de domínio para HTTP. Rejeições de validação
// levam na mensagem o saldo disponível/em aberto; Busy é 503 e seguro de
// repetir.
func mapDomainError(c *fiber.Ctx, err error) error {
	var insufficientStock *domain.InsufficientStockError
	var exceedsBalance *domain.PaymentExceedsBalanceError

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NON_POSITIVE_AMOUNT", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingBankAccount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_BANK_ACCOUNT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransfer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSFER", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.As(err, &insufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficientStock.Error()})
	case errors.As(err, &exceedsBalance):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PAYMENT_EXCEEDS_BALANCE", Message: exceedsBalance.Error()})
	case errors.Is(err, domain.ErrAccountClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrAccountHasPayments):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_HAS_PAYMENTS", Message: err.Error()})
	case errors.Is(err, domain.ErrWarehouseInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WAREHOUSE_IN_USE", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicatePosting):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_POSTING", Message: err.Error()})
	case errors.Is(err, domain.ErrBusy):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BUSY", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

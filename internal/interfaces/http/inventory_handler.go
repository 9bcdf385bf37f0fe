package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/dto"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

// InventoryHandler trata as requisições HTTP do ledger de inventário
// (protegido).
type InventoryHandler struct {
	record  *inventory.RecordMovementUseCase
	queries *inventory.QueryUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(record *inventory.RecordMovementUseCase, queries *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{record: record, queries: queries}
}

// RecordMovement godoc
// @Summary      Registrar movimentação de estoque
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, warehouse_id (ou from/to para transferencia), type, quantity"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	actor := GetActorID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	txID, err := h.record.RecordMovement(c.Context(), inventory.MovementInput{
		ProductID:       in.ProductID,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		Description:     in.Description,
		Actor:           actor,
		IdempotencyKey:  in.IdempotencyKey,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{TransactionID: txID})
}

// GetStock godoc
// @Summary      Saldo atual de um produto em um armazém
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productID    path  string  true  "ID do produto"
// @Param        warehouseID  path  string  true  "ID do armazém"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/inventory/stock/{productID}/{warehouseID} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	record, err := h.queries.GetStock(c.Params("productID"), c.Params("warehouseID"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.StockResponse{
		ProductID:   record.ProductID,
		WarehouseID: record.WarehouseID,
		Quantity:    record.Quantity,
		UpdatedAt:   record.UpdatedAt,
	})
}

// ListMovements godoc
// @Summary      Histórico de movimentações
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por armazém"
// @Param        product_id    query  string  false  "Filtrar por produto"
// @Param        from          query  string  false  "Data inicial (RFC3339)"
// @Param        to            query  string  false  "Data final (RFC3339)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}

	var list []*entity.StockMovement
	switch {
	case c.Query("warehouse_id") != "":
		list, err = h.queries.ListByWarehouse(c.Query("warehouse_id"), from, to, page.Limit, page.Offset)
	case c.Query("product_id") != "":
		list, err = h.queries.ListByProduct(c.Query("product_id"), from, to, page.Limit, page.Offset)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id ou product_id é obrigatório"})
	}
	if err != nil {
		return mapDomainError(c, err)
	}

	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			WarehouseID:   m.WarehouseID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Description:   m.Description,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return c.JSON(items)
}

// VerifyBalance godoc
// @Summary      Confere o saldo materializado contra o histórico
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productID    path  string  true  "ID do produto"
// @Param        warehouseID  path  string  true  "ID do armazém"
// @Success      200  {object}  dto.BalanceCheckResponse
// @Router       /api/inventory/stock/{productID}/{warehouseID}/verify [get]
func (h *InventoryHandler) VerifyBalance(c *fiber.Ctx) error {
	check, err := h.queries.VerifyBalance(c.Params("productID"), c.Params("warehouseID"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.BalanceCheckResponse{
		ProductID:    check.ProductID,
		WarehouseID:  check.WarehouseID,
		Materialized: check.Materialized,
		Recomputed:   check.Recomputed,
		Consistent:   check.Consistent,
	})
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

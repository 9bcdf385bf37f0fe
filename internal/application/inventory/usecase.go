package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	domaininv "github.com/gestorpro/gestor-api/internal/domain/inventory"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimentações de estoque de forma
// transacional (entrada, saida, ajuste, transferencia) com bloqueio de linha
// (SELECT FOR UPDATE) mantido da validação até o commit. É isso que fecha a
// corrida check-then-act: duas saídas concorrentes sobre a mesma chave são
// serializadas pelo lock e a segunda valida contra o saldo já debitado.
type RecordMovementUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	notifier      Notifier
}

// NewRecordMovementUseCase constrói o caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository, notifier Notifier) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo, notifier: notifier}
}

// MovementInput entrada para registrar uma movimentação.
// Para entrada/saida/ajuste: ProductID, WarehouseID, Type, Quantity
// (ajuste aceita quantidade negativa). Para transferencia: ProductID,
// FromWarehouseID, ToWarehouseID, Quantity positiva.
type MovementInput struct {
	ProductID       string
	WarehouseID     string
	FromWarehouseID string
	ToWarehouseID   string
	Type            string
	Quantity        decimal.Decimal
	Description     string
	Actor           string
	IdempotencyKey  string
}

// RecordMovement valida os campos, confere os armazéns e aplica a
// movimentação dentro de uma transação. Devolve o TransactionID do
// lançamento (compartilhado pelas duas linhas de uma transferência).
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (string, error) {
	switch input.Type {
	case entity.MovementTypeEntrada, entity.MovementTypeSaida:
		if input.ProductID == "" || input.WarehouseID == "" {
			return "", domain.ErrInvalidInput
		}
		if !input.Quantity.IsPositive() || !input.Quantity.IsInteger() {
			return "", domain.ErrInvalidInput
		}
	case entity.MovementTypeAjuste:
		if input.ProductID == "" || input.WarehouseID == "" {
			return "", domain.ErrInvalidInput
		}
		if input.Quantity.IsZero() || !input.Quantity.IsInteger() {
			return "", domain.ErrInvalidInput
		}
	case entity.MovementTypeTransferencia:
		if input.ProductID == "" || input.FromWarehouseID == "" || input.ToWarehouseID == "" {
			return "", domain.ErrInvalidInput
		}
		if input.FromWarehouseID == input.ToWarehouseID {
			return "", domain.ErrInvalidTransfer
		}
		if !input.Quantity.IsPositive() || !input.Quantity.IsInteger() {
			return "", domain.ErrInvalidInput
		}
	default:
		return "", domain.ErrInvalidInput
	}

	// Armazéns precisam existir antes de abrir a transação; um id digitado
	// errado falha aqui e não cria registro de estoque fantasma.
	if input.Type == entity.MovementTypeTransferencia {
		if err := uc.requireWarehouse(input.FromWarehouseID); err != nil {
			return "", err
		}
		if err := uc.requireWarehouse(input.ToWarehouseID); err != nil {
			return "", err
		}
	} else {
		if err := uc.requireWarehouse(input.WarehouseID); err != nil {
			return "", err
		}
	}

	now := time.Now()
	txID := uuid.New().String()
	var recorded []*entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		recordRepo repository.InventoryRecordRepository,
		movRepo repository.StockMovementRepository,
	) error {
		var err error
		switch input.Type {
		case entity.MovementTypeEntrada:
			recorded, err = uc.doEntrada(recordRepo, movRepo, input, now, txID)
		case entity.MovementTypeSaida:
			recorded, err = uc.doSaida(recordRepo, movRepo, input, now, txID)
		case entity.MovementTypeAjuste:
			recorded, err = uc.doAjuste(recordRepo, movRepo, input, now, txID)
		case entity.MovementTypeTransferencia:
			recorded, err = uc.doTransferencia(recordRepo, movRepo, input, now, txID)
		}
		return err
	})
	if err != nil {
		return "", err
	}

	// Pós-commit, fire-and-forget.
	if uc.notifier != nil {
		for _, mov := range recorded {
			uc.notifier.MovementRecorded(ctx, mov)
		}
	}
	return txID, nil
}

func (uc *RecordMovementUseCase) requireWarehouse(id string) error {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	return nil
}

// doEntrada: bloqueia a linha do saldo, soma a quantidade e grava a
// movimentação. O registro é criado com saldo zero na primeira entrada.
func (uc *RecordMovementUseCase) doEntrada(
	recordRepo repository.InventoryRecordRepository,
	movRepo repository.StockMovementRepository,
	input MovementInput,
	now time.Time, txID string,
) ([]*entity.StockMovement, error) {
	record, err := recordRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if err := domaininv.ValidateEntrada(input.Quantity); err != nil {
		return nil, err
	}
	record.Quantity = record.Quantity.Add(input.Quantity)
	record.UpdatedAt = now
	if err := recordRepo.Upsert(record); err != nil {
		return nil, err
	}
	mov := uc.buildMovement(input, input.WarehouseID, input.Quantity, now, txID)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return []*entity.StockMovement{mov}, nil
}

// doSaida: bloqueia a linha, valida contra o saldo bloqueado e debita.
// Chave sem registro conta como saldo zero e é rejeitada.
func (uc *RecordMovementUseCase) doSaida(
	recordRepo repository.InventoryRecordRepository,
	movRepo repository.StockMovementRepository,
	input MovementInput,
	now time.Time, txID string,
) ([]*entity.StockMovement, error) {
	record, err := recordRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if err := domaininv.ValidateSaida(input.Quantity, record.Quantity); err != nil {
		return nil, err
	}
	record.Quantity = record.Quantity.Sub(input.Quantity)
	record.UpdatedAt = now
	if err := recordRepo.Upsert(record); err != nil {
		return nil, err
	}
	mov := uc.buildMovement(input, input.WarehouseID, input.Quantity.Neg(), now, txID)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return []*entity.StockMovement{mov}, nil
}

// doAjuste: quantidade com sinal; ajuste negativo passa pela mesma checagem
// de saldo de uma saída.
func (uc *RecordMovementUseCase) doAjuste(
	recordRepo repository.InventoryRecordRepository,
	movRepo repository.StockMovementRepository,
	input MovementInput,
	now time.Time, txID string,
) ([]*entity.StockMovement, error) {
	record, err := recordRepo.GetForUpdate(input.ProductID, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if err := domaininv.ValidateAjuste(input.Quantity, record.Quantity); err != nil {
		return nil, err
	}
	record.Quantity = record.Quantity.Add(input.Quantity)
	record.UpdatedAt = now
	if err := recordRepo.Upsert(record); err != nil {
		return nil, err
	}
	mov := uc.buildMovement(input, input.WarehouseID, input.Quantity, now, txID)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return []*entity.StockMovement{mov}, nil
}

// doTransferencia: debita a origem e credita o destino na mesma transação,
// com as duas linhas de saldo bloqueadas em ordem determinística de id de
// armazém (evita deadlock entre transferências cruzadas A->B e B->A).
// Grava duas movimentações com o mesmo TransactionID.
func (uc *RecordMovementUseCase) doTransferencia(
	recordRepo repository.InventoryRecordRepository,
	movRepo repository.StockMovementRepository,
	input MovementInput,
	now time.Time, txID string,
) ([]*entity.StockMovement, error) {
	first, second := input.FromWarehouseID, input.ToWarehouseID
	if second < first {
		first, second = second, first
	}
	locked := map[string]*entity.InventoryRecord{}
	for _, whID := range []string{first, second} {
		record, err := recordRepo.GetForUpdate(input.ProductID, whID)
		if err != nil {
			return nil, err
		}
		locked[whID] = record
	}
	origem := locked[input.FromWarehouseID]
	destino := locked[input.ToWarehouseID]

	if err := domaininv.ValidateTransferencia(input.FromWarehouseID, input.ToWarehouseID, input.Quantity, origem.Quantity); err != nil {
		return nil, err
	}

	origem.Quantity = origem.Quantity.Sub(input.Quantity)
	destino.Quantity = destino.Quantity.Add(input.Quantity)
	origem.UpdatedAt = now
	destino.UpdatedAt = now
	if err := recordRepo.Upsert(origem); err != nil {
		return nil, err
	}
	if err := recordRepo.Upsert(destino); err != nil {
		return nil, err
	}

	outMov := uc.buildMovement(input, input.FromWarehouseID, input.Quantity.Neg(), now, txID)
	if err := movRepo.Create(outMov); err != nil {
		return nil, err
	}
	inMov := uc.buildMovement(input, input.ToWarehouseID, input.Quantity, now, txID)
	// Só a primeira linha do lançamento carrega a chave de idempotência;
	// o índice único é por lançamento, não por linha.
	inMov.IdempotencyKey = ""
	if err := movRepo.Create(inMov); err != nil {
		return nil, err
	}
	return []*entity.StockMovement{outMov, inMov}, nil
}

func (uc *RecordMovementUseCase) buildMovement(input MovementInput, warehouseID string, signedQty decimal.Decimal, now time.Time, txID string) *entity.StockMovement {
	return &entity.StockMovement{
		ID:             uuid.New().String(),
		TransactionID:  txID,
		ProductID:      input.ProductID,
		WarehouseID:    warehouseID,
		Type:           input.Type,
		Quantity:       signedQty,
		Description:    input.Description,
		CreatedBy:      input.Actor,
		CreatedAt:      now,
		IdempotencyKey: input.IdempotencyKey,
	}
}

package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
//
// O memStore simula o comportamento transacional do PostgreSQL com locks POR
// LINHA: cada chave (produto, armazém) tem seu próprio mutex, adquirido pelo
// GetForUpdate e mantido até o fim da transação, como um SELECT FOR UPDATE.
// O fakeTx registra as pré-imagens das linhas tocadas e desfaz tudo no
// rollback. Como no adaptador de verdade, GetForUpdate materializa a linha
// com saldo zero antes de bloquear, para que a criação preguiçosa também
// seja serializada.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProduct    = "prod-1"
	testWarehouseA = "wh-a"
	testWarehouseB = "wh-b"
	testActor      = "user-1"
)

type memStore struct {
	// mu protege os mapas; não modela lock de linha.
	mu        sync.Mutex
	rowLocks  map[string]*sync.Mutex
	records   map[string]*entity.InventoryRecord
	movements []*entity.StockMovement
	idemKeys  map[string]bool

	// failMovementCreate força falha na gravação da trilha para testar que o
	// saldo não fica atualizado sem a movimentação correspondente.
	failMovementCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		rowLocks: map[string]*sync.Mutex{},
		records:  map[string]*entity.InventoryRecord{},
		idemKeys: map[string]bool{},
	}
}

func recordKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

func (s *memStore) rowLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rowLocks[key]; !ok {
		s.rowLocks[key] = &sync.Mutex{}
	}
	return s.rowLocks[key]
}

// fakeTx acumula o estado de uma transação: as linhas bloqueadas e o que
// desfazer num rollback (pré-imagens de saldo, movimentações e chaves de
// idempotência gravadas por ela).
type fakeTx struct {
	store    *memStore
	held     []string
	heldSet  map[string]bool
	prevRows map[string]*entity.InventoryRecord // nil = linha não existia
	movIDs   []string
	newKeys  []string
}

func newFakeTx(store *memStore) *fakeTx {
	return &fakeTx{
		store:    store,
		heldSet:  map[string]bool{},
		prevRows: map[string]*entity.InventoryRecord{},
	}
}

func (tx *fakeTx) lockRow(key string) {
	if tx.heldSet[key] {
		return
	}
	tx.store.rowLock(key).Lock()
	tx.heldSet[key] = true
	tx.held = append(tx.held, key)
}

// noteRow guarda a pré-imagem da linha na primeira vez que a transação a toca.
func (tx *fakeTx) noteRow(key string) {
	if _, noted := tx.prevRows[key]; noted {
		return
	}
	if rec, ok := tx.store.records[key]; ok {
		copied := *rec
		tx.prevRows[key] = &copied
	} else {
		tx.prevRows[key] = nil
	}
}

func (tx *fakeTx) rollback() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	for key, prev := range tx.prevRows {
		if prev == nil {
			delete(tx.store.records, key)
		} else {
			copied := *prev
			tx.store.records[key] = &copied
		}
	}
	if len(tx.movIDs) > 0 {
		mine := map[string]bool{}
		for _, id := range tx.movIDs {
			mine[id] = true
		}
		kept := tx.store.movements[:0]
		for _, m := range tx.store.movements {
			if !mine[m.ID] {
				kept = append(kept, m)
			}
		}
		tx.store.movements = kept
	}
	for _, k := range tx.newKeys {
		delete(tx.store.idemKeys, k)
	}
}

func (tx *fakeTx) release() {
	for i := len(tx.held) - 1; i >= 0; i-- {
		tx.store.rowLock(tx.held[i]).Unlock()
	}
}

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	recordRepo repository.InventoryRecordRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx := newFakeTx(r.store)
	defer tx.release()

	err := fn(&fakeRecordRepo{store: r.store, tx: tx}, &fakeMovementRepo{store: r.store, tx: tx})
	if err != nil {
		tx.rollback()
	}
	return err
}

type fakeRecordRepo struct {
	store *memStore
	tx    *fakeTx
}

func (r *fakeRecordRepo) Get(productID, warehouseID string) (*entity.InventoryRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if rec, ok := r.store.records[recordKey(productID, warehouseID)]; ok {
		copied := *rec
		return &copied, nil
	}
	return &entity.InventoryRecord{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
}

func (r *fakeRecordRepo) GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error) {
	key := recordKey(productID, warehouseID)
	r.tx.lockRow(key)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.tx.noteRow(key)
	if _, ok := r.store.records[key]; !ok {
		r.store.records[key] = &entity.InventoryRecord{
			ProductID:   productID,
			WarehouseID: warehouseID,
			Quantity:    decimal.Zero,
			UpdatedAt:   time.Now(),
		}
	}
	copied := *r.store.records[key]
	return &copied, nil
}

func (r *fakeRecordRepo) Upsert(record *entity.InventoryRecord) error {
	key := recordKey(record.ProductID, record.WarehouseID)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.tx != nil {
		r.tx.noteRow(key)
	}
	copied := *record
	r.store.records[key] = &copied
	return nil
}

type fakeMovementRepo struct {
	store *memStore
	tx    *fakeTx
}

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failMovementCreate {
		return errors.New("insert falhou")
	}
	if movement.IdempotencyKey != "" {
		if r.store.idemKeys[movement.IdempotencyKey] {
			return domain.ErrDuplicatePosting
		}
		r.store.idemKeys[movement.IdempotencyKey] = true
		if r.tx != nil {
			r.tx.newKeys = append(r.tx.newKeys, movement.IdempotencyKey)
		}
	}
	copied := *movement
	r.store.movements = append(r.store.movements, &copied)
	if r.tx != nil {
		r.tx.movIDs = append(r.tx.movIDs, movement.ID)
	}
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.WarehouseID == warehouseID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			list = append(list, m)
		}
	}
	return list, nil
}

func (r *fakeMovementRepo) SumByKey(productID, warehouseID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.store.movements {
		if m.ProductID == productID && m.WarehouseID == warehouseID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) Delete(id string) error { delete(r.warehouses, id); return nil }

type fakeNotifier struct {
	mu     sync.Mutex
	events []*entity.StockMovement
}

func (n *fakeNotifier) MovementRecorded(ctx context.Context, movement *entity.StockMovement) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, movement)
}

// buildUseCase monta o caso de uso com os dois armazéns de teste cadastrados.
func buildUseCase(store *memStore) (*appinv.RecordMovementUseCase, *fakeNotifier) {
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		testWarehouseA: {ID: testWarehouseA, Name: "Depósito A", Status: entity.WarehouseStatusAtivo},
		testWarehouseB: {ID: testWarehouseB, Name: "Depósito B", Status: entity.WarehouseStatusAtivo},
	}}
	notifier := &fakeNotifier{}
	uc := appinv.NewRecordMovementUseCase(&fakeTxRunner{store: store}, warehouses, notifier)
	return uc, notifier
}

func stockOf(t *testing.T, store *memStore, productID, warehouseID string) decimal.Decimal {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	if rec, ok := store.records[recordKey(productID, warehouseID)]; ok {
		return rec.Quantity
	}
	return decimal.Zero
}

func entrada(qty int64) appinv.MovementInput {
	return appinv.MovementInput{
		ProductID:   testProduct,
		WarehouseID: testWarehouseA,
		Type:        entity.MovementTypeEntrada,
		Quantity:    decimal.NewFromInt(qty),
		Actor:       testActor,
	}
}

func saida(qty int64) appinv.MovementInput {
	in := entrada(qty)
	in.Type = entity.MovementTypeSaida
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada / saída
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaCriaRegistroPreguicosamente(t *testing.T) {
	store := newMemStore()
	uc, notifier := buildUseCase(store)

	txID, err := uc.RecordMovement(context.Background(), entrada(10))
	require.NoError(t, err)
	require.NotEmpty(t, txID)

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(10)),
		"a primeira entrada deve criar o registro com o saldo da movimentação")
	require.Len(t, store.movements, 1)
	assert.Equal(t, txID, store.movements[0].TransactionID)
	assert.True(t, store.movements[0].Quantity.Equal(decimal.NewFromInt(10)),
		"entrada grava quantidade positiva na trilha")
	assert.Equal(t, testActor, store.movements[0].CreatedBy)
	assert.Len(t, notifier.events, 1, "o evento pós-commit deve ser emitido")
}

func TestRecordMovement_SaidaDebitaSaldo(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(15))
	require.NoError(t, err)
	_, err = uc.RecordMovement(context.Background(), saida(10))
	require.NoError(t, err)

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(5)))
	require.Len(t, store.movements, 2)
	assert.True(t, store.movements[1].Quantity.Equal(decimal.NewFromInt(-10)),
		"saída grava quantidade negativa na trilha")
}

func TestRecordMovement_SaidaSemSaldo_RejeitadaComDisponivel(t *testing.T) {
	store := newMemStore()
	uc, notifier := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(15))
	require.NoError(t, err)

	_, err = uc.RecordMovement(context.Background(), saida(20))
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(15)),
		"a rejeição carrega o saldo disponível")

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(15)),
		"lançamento rejeitado não altera o saldo")
	assert.Len(t, store.movements, 1, "lançamento rejeitado não deixa movimentação na trilha")
	assert.Len(t, notifier.events, 1, "lançamento rejeitado não emite evento")
}

func TestRecordMovement_SaidaDeChaveNuncaMovimentada_Rejeitada(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), saida(1))
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient),
		"chave sem registro conta como saldo zero")
	assert.True(t, insufficient.Available.IsZero())
}

func TestRecordMovement_ArmazemInexistente_NotFound(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	in := entrada(10)
	in.WarehouseID = "wh-fantasma"
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movements, "armazém inexistente não cria registro fantasma")
}

func TestRecordMovement_QuantidadeFracionaria_Rejeitada(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	in := entrada(0)
	in.Quantity = decimal.NewFromFloat(2.5)
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste — quantidade com sinal
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_AjustePositivoSoma(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	in := entrada(7)
	in.Type = entity.MovementTypeAjuste
	_, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(7)))
}

func TestRecordMovement_AjusteNegativoSubtrai(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(10))
	require.NoError(t, err)

	in := appinv.MovementInput{
		ProductID:   testProduct,
		WarehouseID: testWarehouseA,
		Type:        entity.MovementTypeAjuste,
		Quantity:    decimal.NewFromInt(-4),
		Actor:       testActor,
	}
	_, err = uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(6)))
	assert.True(t, store.movements[1].Quantity.Equal(decimal.NewFromInt(-4)),
		"ajuste grava a quantidade com o sinal informado")
}

func TestRecordMovement_AjusteNegativoAbaixoDeZero_Rejeitado(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(3))
	require.NoError(t, err)

	in := appinv.MovementInput{
		ProductID:   testProduct,
		WarehouseID: testWarehouseA,
		Type:        entity.MovementTypeAjuste,
		Quantity:    decimal.NewFromInt(-5),
		Actor:       testActor,
	}
	_, err = uc.RecordMovement(context.Background(), in)
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient),
		"ajuste negativo passa pela mesma checagem de saldo de uma saída")
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(3)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferência — atômica entre dois armazéns
// ──────────────────────────────────────────────────────────────────────────────

func transferencia(qty int64) appinv.MovementInput {
	return appinv.MovementInput{
		ProductID:       testProduct,
		FromWarehouseID: testWarehouseA,
		ToWarehouseID:   testWarehouseB,
		Type:            entity.MovementTypeTransferencia,
		Quantity:        decimal.NewFromInt(qty),
		Actor:           testActor,
	}
}

func TestRecordMovement_TransferenciaDebitaECredita(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(10))
	require.NoError(t, err)

	txID, err := uc.RecordMovement(context.Background(), transferencia(4))
	require.NoError(t, err)

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(6)))
	assert.True(t, stockOf(t, store, testProduct, testWarehouseB).Equal(decimal.NewFromInt(4)),
		"o destino é criado preguiçosamente pela transferência")

	// Duas linhas na trilha, mesmo TransactionID, sinais opostos.
	require.Len(t, store.movements, 3)
	out, in := store.movements[1], store.movements[2]
	assert.Equal(t, txID, out.TransactionID)
	assert.Equal(t, txID, in.TransactionID)
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(-4)))
	assert.True(t, in.Quantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, testWarehouseA, out.WarehouseID)
	assert.Equal(t, testWarehouseB, in.WarehouseID)
}

func TestRecordMovement_TransferenciaMesmoArmazem_Rejeitada(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	in := transferencia(4)
	in.ToWarehouseID = testWarehouseA
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer)
}

func TestRecordMovement_TransferenciaSemSaldoNaOrigem_NadaMuda(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(3))
	require.NoError(t, err)

	_, err = uc.RecordMovement(context.Background(), transferencia(5))
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(3)),
		"transferência rejeitada não debita a origem")
	assert.True(t, stockOf(t, store, testProduct, testWarehouseB).IsZero(),
		"transferência rejeitada não credita o destino")
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidade — falha no meio do lançamento desfaz tudo
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_FalhaNaTrilha_DesfazSaldo(t *testing.T) {
	store := newMemStore()
	uc, notifier := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(10))
	require.NoError(t, err)

	store.failMovementCreate = true
	_, err = uc.RecordMovement(context.Background(), saida(5))
	require.Error(t, err)

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(10)),
		"falha ao gravar a movimentação desfaz a atualização do saldo")
	assert.Len(t, store.movements, 1)
	assert.Len(t, notifier.events, 1, "lançamento desfeito não emite evento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotência — repetir a chave não duplica o lançamento
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_ChaveIdempotenciaRepetida_Rejeitada(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	in := entrada(10)
	in.IdempotencyKey = "retry-abc"
	_, err := uc.RecordMovement(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicatePosting,
		"replay da mesma chave deve ser rejeitado sem aplicar o efeito de novo")

	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(10)),
		"o saldo reflete o lançamento uma única vez")
	assert.Len(t, store.movements, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concorrência — duas saídas disputando o mesmo saldo
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_SaidasConcorrentes_ApenasUmaPassa(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(15))
	require.NoError(t, err)

	// Duas saídas de 10 sobre saldo 15: o lock serializa e a segunda valida
	// contra o saldo já debitado (5), nunca contra o snapshot antigo (15).
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.RecordMovement(context.Background(), saida(10))
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var insufficient *domain.InsufficientStockError
		require.True(t, errors.As(err, &insufficient),
			"a saída perdedora deve falhar com InsufficientStockError")
		assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(5)),
			"a rejeição reporta o saldo pós-débito da vencedora")
		rejections++
	}
	assert.Equal(t, 1, successes, "exatamente uma saída deve passar")
	assert.Equal(t, 1, rejections, "exatamente uma saída deve ser rejeitada")
	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(5)),
		"o saldo final nunca fica negativo")
}

// trailSum soma as quantidades com sinal da trilha para uma chave.
func trailSum(t *testing.T, store *memStore, productID, warehouseID string) decimal.Decimal {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	sum := decimal.Zero
	for _, m := range store.movements {
		if m.ProductID == productID && m.WarehouseID == warehouseID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum
}

func TestRecordMovement_PrimeirasEntradasConcorrentes_NaoPerdemIncremento(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	// Duas primeiras entradas sobre uma chave nunca movimentada: a criação
	// preguiçosa do registro também precisa ser serializada. Sem materializar
	// a linha antes do lock, as duas leem saldo zero, gravam valor absoluto e
	// um dos incrementos se perde (saldo 20 com trilha somando 30).
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, qty := range []int64{10, 20} {
		wg.Add(1)
		go func(i int, qty int64) {
			defer wg.Done()
			_, results[i] = uc.RecordMovement(context.Background(), entrada(qty))
		}(i, qty)
	}
	wg.Wait()

	for _, err := range results {
		require.NoError(t, err)
	}
	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(30)),
		"o saldo final soma as duas entradas")
	assert.True(t, trailSum(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(30)),
		"o saldo materializado conserva a soma da trilha")
}

func TestRecordMovement_EntradaConcorrenteComDestinoDeTransferencia(t *testing.T) {
	store := newMemStore()
	uc, _ := buildUseCase(store)

	_, err := uc.RecordMovement(context.Background(), entrada(10))
	require.NoError(t, err)

	// Entrada direta no armazém B disputando com o crédito da transferência
	// A->B; os dois lados criam o destino preguiçosamente e nenhum incremento
	// pode se perder.
	var wg sync.WaitGroup
	results := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		in := entrada(5)
		in.WarehouseID = testWarehouseB
		_, results[0] = uc.RecordMovement(context.Background(), in)
	}()
	go func() {
		defer wg.Done()
		_, results[1] = uc.RecordMovement(context.Background(), transferencia(4))
	}()
	wg.Wait()

	for _, err := range results {
		require.NoError(t, err)
	}
	assert.True(t, stockOf(t, store, testProduct, testWarehouseA).Equal(decimal.NewFromInt(6)))
	assert.True(t, stockOf(t, store, testProduct, testWarehouseB).Equal(decimal.NewFromInt(9)),
		"o destino soma a entrada direta e o crédito da transferência")
	assert.True(t, trailSum(t, store, testProduct, testWarehouseB).Equal(decimal.NewFromInt(9)))
}

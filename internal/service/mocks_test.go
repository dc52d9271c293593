package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/events"
	"github.com/mnishanth02/navodhai-ecom-sub000/internal/repository"
)

// memoryUserRepo is an in-memory UserRepository for service tests.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*domain.User{}}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	user.Email = strings.ToLower(user.Email)
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) CreateTx(ctx context.Context, tx pgx.Tx, user *domain.User) error {
	return r.Create(ctx, user)
}

func (r *memoryUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(email)
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// memoryTokenRepo is an in-memory VerificationTokenRepository.
type memoryTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.VerificationToken
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: map[string]*domain.VerificationToken{}}
}

func (r *memoryTokenRepo) Create(ctx context.Context, token *domain.VerificationToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *memoryTokenRepo) CreateTx(ctx context.Context, tx pgx.Tx, token *domain.VerificationToken) error {
	return r.Create(ctx, token)
}

func (r *memoryTokenRepo) GetByToken(ctx context.Context, tokenStr string) (*domain.VerificationToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *token
	return &copied, nil
}

func (r *memoryTokenRepo) DeleteByToken(ctx context.Context, tokenStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenStr)
	return nil
}

func (r *memoryTokenRepo) DeleteByIdentifier(ctx context.Context, identifier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	identifier = strings.ToLower(identifier)
	for key, token := range r.tokens {
		if token.Identifier == identifier {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *memoryTokenRepo) forIdentifier(identifier string) []*domain.VerificationToken {
	r.mu.Lock()
	defer r.mu.Unlock()
	identifier = strings.ToLower(identifier)
	var result []*domain.VerificationToken
	for _, token := range r.tokens {
		if token.Identifier == identifier {
			copied := *token
			result = append(result, &copied)
		}
	}
	return result
}

func (r *memoryTokenRepo) put(token *domain.VerificationToken) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *token
	r.tokens[token.Token] = &copied
}

// memoryAccountRepo is an in-memory AccountRepository.
type memoryAccountRepo struct {
	mu       sync.Mutex
	accounts []domain.Account
}

func (r *memoryAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = uuid.NewString()
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *memoryAccountRepo) GetByProvider(ctx context.Context, provider, providerAccountID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Provider == provider && account.ProviderAccountID == providerAccountID {
			copied := account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryAccountRepo) ListByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Account
	for _, account := range r.accounts {
		if account.UserID == userID {
			result = append(result, account)
		}
	}
	return result, nil
}

// memoryThrottleBackend stands in for the redis commands the signin throttle
// issues, so lockout behavior is observable in service tests.
type memoryThrottleBackend struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newMemoryThrottleBackend() *memoryThrottleBackend {
	return &memoryThrottleBackend{counts: map[string]int64{}}
}

func (b *memoryThrottleBackend) Get(ctx context.Context, key string) *redis.StringCmd {
	b.mu.Lock()
	defer b.mu.Unlock()
	count, ok := b.counts[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(count, 10), nil)
}

func (b *memoryThrottleBackend) Incr(ctx context.Context, key string) *redis.IntCmd {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[key]++
	return redis.NewIntResult(b.counts[key], nil)
}

func (b *memoryThrottleBackend) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	return redis.NewBoolResult(true, nil)
}

func (b *memoryThrottleBackend) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, key := range keys {
		delete(b.counts, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (b *memoryThrottleBackend) count(key string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[key]
}

// fakeTxRunner runs the callback without a real transaction.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) ofType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []events.Event
	for _, event := range d.events {
		if event.Type == eventType {
			result = append(result, event)
		}
	}
	return result
}

// mockStoreRepo is a func-field StoreRepository mock.
type mockStoreRepo struct {
	createFn     func(ctx context.Context, store *domain.Store) error
	updateFn     func(ctx context.Context, store *domain.Store) error
	getByIDFn    func(ctx context.Context, id string) (*domain.Store, error)
	getOwnedFn   func(ctx context.Context, id, userID string) (*domain.Store, error)
	listByUserFn func(ctx context.Context, userID string) ([]domain.Store, error)
	softDeleteFn func(ctx context.Context, id string) error
}

func (m *mockStoreRepo) Create(ctx context.Context, store *domain.Store) error {
	return m.createFn(ctx, store)
}

func (m *mockStoreRepo) Update(ctx context.Context, store *domain.Store) error {
	return m.updateFn(ctx, store)
}

func (m *mockStoreRepo) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStoreRepo) GetOwned(ctx context.Context, id, userID string) (*domain.Store, error) {
	return m.getOwnedFn(ctx, id, userID)
}

func (m *mockStoreRepo) ListByUser(ctx context.Context, userID string) ([]domain.Store, error) {
	return m.listByUserFn(ctx, userID)
}

func (m *mockStoreRepo) SoftDelete(ctx context.Context, id string) error {
	return m.softDeleteFn(ctx, id)
}

// mockProductRepo is a func-field ProductRepository mock.
type mockProductRepo struct {
	createFn  func(ctx context.Context, product *domain.Product) error
	updateFn  func(ctx context.Context, product *domain.Product) error
	getByIDFn func(ctx context.Context, id string) (*domain.Product, error)
	listFn    func(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return m.createFn(ctx, product)
}

func (m *mockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	return m.updateFn(ctx, product)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockProductRepo) ListWithFilter(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return m.listFn(ctx, filter)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockOrderRepo is a func-field OrderRepository mock.
type mockOrderRepo struct {
	createFn      func(ctx context.Context, order *domain.Order) error
	getByIDFn     func(ctx context.Context, id string) (*domain.Order, error)
	listByStoreFn func(ctx context.Context, storeID string, limit, offset int) ([]domain.Order, error)
	markPaidFn    func(ctx context.Context, id string) error
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	return m.createFn(ctx, order)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockOrderRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]domain.Order, error) {
	return m.listByStoreFn(ctx, storeID, limit, offset)
}

func (m *mockOrderRepo) MarkPaid(ctx context.Context, id string) error {
	return m.markPaidFn(ctx, id)
}

// mockBillboardRepo is a func-field BillboardRepository mock.
type mockBillboardRepo struct {
	createFn  func(ctx context.Context, billboard *domain.Billboard) error
	updateFn  func(ctx context.Context, billboard *domain.Billboard) error
	getByIDFn func(ctx context.Context, id string) (*domain.Billboard, error)
	listFn    func(ctx context.Context, storeID string) ([]domain.Billboard, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockBillboardRepo) Create(ctx context.Context, billboard *domain.Billboard) error {
	return m.createFn(ctx, billboard)
}

func (m *mockBillboardRepo) Update(ctx context.Context, billboard *domain.Billboard) error {
	return m.updateFn(ctx, billboard)
}

func (m *mockBillboardRepo) GetByID(ctx context.Context, id string) (*domain.Billboard, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBillboardRepo) ListByStore(ctx context.Context, storeID string) ([]domain.Billboard, error) {
	return m.listFn(ctx, storeID)
}

func (m *mockBillboardRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockCategoryRepo is a func-field CategoryRepository mock.
type mockCategoryRepo struct {
	createFn  func(ctx context.Context, category *domain.Category) error
	updateFn  func(ctx context.Context, category *domain.Category) error
	getByIDFn func(ctx context.Context, id string) (*domain.Category, error)
	listFn    func(ctx context.Context, storeID string) ([]domain.Category, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return m.createFn(ctx, category)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	return m.updateFn(ctx, category)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCategoryRepo) ListByStore(ctx context.Context, storeID string) ([]domain.Category, error) {
	return m.listFn(ctx, storeID)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockSizeRepo is a func-field SizeRepository mock.
type mockSizeRepo struct {
	createFn  func(ctx context.Context, size *domain.Size) error
	updateFn  func(ctx context.Context, size *domain.Size) error
	getByIDFn func(ctx context.Context, id string) (*domain.Size, error)
	listFn    func(ctx context.Context, storeID string) ([]domain.Size, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockSizeRepo) Create(ctx context.Context, size *domain.Size) error {
	return m.createFn(ctx, size)
}

func (m *mockSizeRepo) Update(ctx context.Context, size *domain.Size) error {
	return m.updateFn(ctx, size)
}

func (m *mockSizeRepo) GetByID(ctx context.Context, id string) (*domain.Size, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSizeRepo) ListByStore(ctx context.Context, storeID string) ([]domain.Size, error) {
	return m.listFn(ctx, storeID)
}

func (m *mockSizeRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockColorRepo is a func-field ColorRepository mock.
type mockColorRepo struct {
	createFn  func(ctx context.Context, color *domain.Color) error
	updateFn  func(ctx context.Context, color *domain.Color) error
	getByIDFn func(ctx context.Context, id string) (*domain.Color, error)
	listFn    func(ctx context.Context, storeID string) ([]domain.Color, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockColorRepo) Create(ctx context.Context, color *domain.Color) error {
	return m.createFn(ctx, color)
}

func (m *mockColorRepo) Update(ctx context.Context, color *domain.Color) error {
	return m.updateFn(ctx, color)
}

func (m *mockColorRepo) GetByID(ctx context.Context, id string) (*domain.Color, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockColorRepo) ListByStore(ctx context.Context, storeID string) ([]domain.Color, error) {
	return m.listFn(ctx, storeID)
}

func (m *mockColorRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// AccountRepository persists OAuth provider links.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByProvider(ctx context.Context, provider, providerAccountID string) (*domain.Account, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository constructs repository.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (user_id, provider, provider_account_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		account.UserID,
		account.Provider,
		account.ProviderAccountID,
	).Scan(&account.ID, &account.CreatedAt)
}

func (r *accountRepository) GetByProvider(ctx context.Context, provider, providerAccountID string) (*domain.Account, error) {
	const query = `
        SELECT id, user_id, provider, provider_account_id, created_at
        FROM accounts WHERE provider=$1 AND provider_account_id=$2`
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, provider, providerAccountID).Scan(
		&account.ID,
		&account.UserID,
		&account.Provider,
		&account.ProviderAccountID,
		&account.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	const query = `
        SELECT id, user_id, provider, provider_account_id, created_at
        FROM accounts WHERE user_id=$1`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.UserID,
			&account.Provider,
			&account.ProviderAccountID,
			&account.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, account)
	}
	return result, rows.Err()
}

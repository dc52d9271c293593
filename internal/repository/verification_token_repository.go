package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/domain"
)

// VerificationTokenRepository manages verification token persistence.
type VerificationTokenRepository interface {
	Create(ctx context.Context, token *domain.VerificationToken) error
	CreateTx(ctx context.Context, tx pgx.Tx, token *domain.VerificationToken) error
	GetByToken(ctx context.Context, token string) (*domain.VerificationToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByIdentifier(ctx context.Context, identifier string) error
}

type verificationTokenRepository struct {
	pool *pgxpool.Pool
}

// NewVerificationTokenRepository constructs repository.
func NewVerificationTokenRepository(pool *pgxpool.Pool) VerificationTokenRepository {
	return &verificationTokenRepository{pool: pool}
}

const tokenInsertQuery = `
        INSERT INTO verification_tokens (identifier, token, purpose, expires_at)
        VALUES (LOWER($1), $2, $3, $4)
        RETURNING created_at`

func (r *verificationTokenRepository) Create(ctx context.Context, token *domain.VerificationToken) error {
	return r.pool.QueryRow(ctx, tokenInsertQuery,
		token.Identifier,
		token.Token,
		token.Purpose,
		token.ExpiresAt,
	).Scan(&token.CreatedAt)
}

func (r *verificationTokenRepository) CreateTx(ctx context.Context, tx pgx.Tx, token *domain.VerificationToken) error {
	return tx.QueryRow(ctx, tokenInsertQuery,
		token.Identifier,
		token.Token,
		token.Purpose,
		token.ExpiresAt,
	).Scan(&token.CreatedAt)
}

func (r *verificationTokenRepository) GetByToken(ctx context.Context, tokenStr string) (*domain.VerificationToken, error) {
	const query = `
        SELECT identifier, token, purpose, expires_at, created_at
        FROM verification_tokens WHERE token=$1`
	var token domain.VerificationToken
	if err := r.pool.QueryRow(ctx, query, tokenStr).Scan(
		&token.Identifier,
		&token.Token,
		&token.Purpose,
		&token.ExpiresAt,
		&token.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *verificationTokenRepository) DeleteByToken(ctx context.Context, tokenStr string) error {
	const query = `DELETE FROM verification_tokens WHERE token=$1`
	_, err := r.pool.Exec(ctx, query, tokenStr)
	return err
}

func (r *verificationTokenRepository) DeleteByIdentifier(ctx context.Context, identifier string) error {
	const query = `DELETE FROM verification_tokens WHERE identifier=LOWER($1)`
	_, err := r.pool.Exec(ctx, query, identifier)
	return err
}

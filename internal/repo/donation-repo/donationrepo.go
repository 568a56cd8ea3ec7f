package donationrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const donationColumns = `id, campaign_id, amount, currency, transaction_id, method, card_last4,
	donor_name, donor_email, date, created_at, updated_at`

const (
	createQuery = `
		INSERT INTO donations (id, campaign_id, amount, currency, transaction_id, method, card_last4,
			donor_name, donor_email, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	listRecentQuery = `
		SELECT ` + donationColumns + `
		FROM donations
		ORDER BY created_at DESC
		LIMIT $1
	`
	findByTransactionIDQuery = `SELECT ` + donationColumns + ` FROM donations WHERE transaction_id = $1`
	listByCampaignQuery      = `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE campaign_id = $1
		ORDER BY created_at DESC
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDonation(row scanner) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(
		&d.ID, &d.CampaignID, &d.Amount, &d.Currency, &d.TransactionID, &d.Method, &d.CardLast4,
		&d.DonorName, &d.DonorEmail, &d.Date, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	err := r.db.QueryRow(ctx, createQuery,
		d.ID, d.CampaignID, d.Amount, d.Currency, d.TransactionID, d.Method, d.CardLast4,
		d.DonorName, d.DonorEmail, d.Date,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		if pg.IsDataViolation(err) {
			return nil, domain.NewValidationError("amount must be between 1 and 999999999999.99")
		}
		return nil, err
	}
	return d, nil
}

func (r *Repository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error) {
	d, err := scanDonation(r.db.QueryRow(ctx, findByTransactionIDQuery, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	return r.list(ctx, listRecentQuery, limit)
}

func (r *Repository) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	return r.list(ctx, listByCampaignQuery, campaignID)
}

func (r *Repository) list(ctx context.Context, query string, arg any) ([]domain.Donation, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't list donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, *d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

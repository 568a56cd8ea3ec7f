package campaignrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const campaignColumns = `id, title, description, goal, collected, currency, deadline, urgency,
	beneficiary_info, wallet_options, phone_number, status, created_by, created_by_email, created_at, updated_at`

const (
	createQuery = `
		INSERT INTO campaigns (id, title, description, goal, collected, currency, deadline, urgency,
			beneficiary_info, wallet_options, phone_number, status, created_by, created_by_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`
	findByIDQuery = `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	listQuery     = `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`
	// the status guard makes concurrent transitions race-free: only one caller
	// sees the pending row.
	updateStatusQuery = `
		UPDATE campaigns
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING ` + campaignColumns
	incrementCollectedQuery = `
		UPDATE campaigns
		SET collected = collected + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + campaignColumns
	deleteQuery = `DELETE FROM campaigns WHERE id = $1`
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

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Goal, &c.Collected, &c.Currency, &c.Deadline, &c.Urgency,
		&c.BeneficiaryInfo, &c.WalletOptions, &c.PhoneNumber, &c.Status, &c.CreatedBy, &c.CreatedByEmail,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.WalletOptions == nil {
		c.WalletOptions = []string{}
	}
	return &c, nil
}

// one runs a single-row statement and maps "no rows" to a nil campaign.
func (r *Repository) one(ctx context.Context, op, query string, args ...any) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't "+op+" campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	wallets := c.WalletOptions
	if wallets == nil {
		wallets = []string{}
	}
	err := r.db.QueryRow(ctx, createQuery,
		c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
		c.BeneficiaryInfo, wallets, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		if pg.IsDataViolation(err) {
			return nil, domain.NewValidationError("campaign has values out of the allowed range")
		}
		return nil, err
	}
	c.WalletOptions = wallets
	return c, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return r.one(ctx, "find", findByIDQuery, id)
}

// List returns campaigns newest first. An empty status means all of them.
func (r *Repository) List(ctx context.Context, status string) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, listQuery, status)
	if err != nil {
		zap.L().Error("can't list campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

// UpdateStatus moves a campaign from one status to another. It returns nil
// when the campaign doesn't exist or is no longer in the from status.
func (r *Repository) UpdateStatus(ctx context.Context, id, from, to string) (*domain.Campaign, error) {
	return r.one(ctx, "update status of", updateStatusQuery, id, to, from)
}

// IncrementCollected adds amount to collected in a single statement, so
// concurrent donations never lose an update.
func (r *Repository) IncrementCollected(ctx context.Context, id string, amount float64) (*domain.Campaign, error) {
	c, err := r.one(ctx, "increment", incrementCollectedQuery, id, amount)
	if pg.IsDataViolation(err) {
		return nil, domain.NewValidationError("amount would take collected past 999999999999.99")
	}
	return c, err
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		zap.L().Error("can't delete campaign", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

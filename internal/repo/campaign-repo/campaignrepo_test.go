package campaignrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var (
	createdAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	deadline  = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func sampleCampaign(id, status string, collected float64) *domain.Campaign {
	return &domain.Campaign{
		ID:              id,
		Title:           "Flood relief",
		Description:     "Emergency supplies",
		Goal:            1000,
		Collected:       collected,
		Currency:        domain.CurrencyPKR,
		Deadline:        deadline,
		Urgency:         domain.UrgencyHigh,
		BeneficiaryInfo: "Village council",
		WalletOptions:   []string{"JazzCash", "Easypaisa"},
		PhoneNumber:     "03001234567",
		Status:          status,
		CreatedBy:       "u-1",
		CreatedByEmail:  "ayesha@example.com",
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func campaignRows(campaigns ...*domain.Campaign) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "title", "description", "goal", "collected", "currency", "deadline", "urgency",
		"beneficiary_info", "wallet_options", "phone_number", "status", "created_by", "created_by_email",
		"created_at", "updated_at",
	})
	for _, c := range campaigns {
		rows.AddRow(c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
			c.BeneficiaryInfo, c.WalletOptions, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail,
			c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		campaign  *domain.Campaign
		mockSetup func(c *domain.Campaign)
		expectErr bool
		wantValid bool
	}{
		{
			name:     "Saved",
			campaign: sampleCampaign("c-1", domain.StatusPending, 0),
			mockSetup: func(c *domain.Campaign) {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
						c.BeneficiaryInfo, c.WalletOptions, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail).
					WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))
			},
		},
		{
			name: "Nil wallet options stored as empty list",
			campaign: func() *domain.Campaign {
				c := sampleCampaign("c-2", domain.StatusPending, 0)
				c.WalletOptions = nil
				return c
			}(),
			mockSetup: func(c *domain.Campaign) {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
						c.BeneficiaryInfo, []string{}, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail).
					WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))
			},
		},
		{
			name:     "Check constraint violation",
			campaign: sampleCampaign("c-3", domain.StatusPending, 0),
			mockSetup: func(c *domain.Campaign) {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
						c.BeneficiaryInfo, c.WalletOptions, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail).
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: true,
		},
		{
			name: "Goal too large for the column",
			campaign: func() *domain.Campaign {
				c := sampleCampaign("c-4", domain.StatusPending, 0)
				c.Goal = 1e13
				return c
			}(),
			mockSetup: func(c *domain.Campaign) {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
						c.BeneficiaryInfo, c.WalletOptions, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail).
					WillReturnError(&pgconn.PgError{Code: "22003", Message: "numeric field overflow"})
			},
			expectErr: true,
			wantValid: true,
		},
		{
			name:     "Check constraint violation",
			campaign: sampleCampaign("c-5", domain.StatusPending, 0),
			mockSetup: func(c *domain.Campaign) {
				mock.ExpectQuery(regexp.QuoteMeta(createQuery)).
					WithArgs(c.ID, c.Title, c.Description, c.Goal, c.Collected, c.Currency, c.Deadline, c.Urgency,
						c.BeneficiaryInfo, c.WalletOptions, c.PhoneNumber, c.Status, c.CreatedBy, c.CreatedByEmail).
					WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "campaigns_goal_check"})
			},
			expectErr: true,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.campaign)
			result, err := repo.Create(context.Background(), tt.campaign)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				var verr *domain.ValidationError
				assert.Equal(t, tt.wantValid, errors.As(err, &verr))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, createdAt, result.CreatedAt)
				assert.NotNil(t, result.WalletOptions)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	stored := sampleCampaign("c-1", domain.StatusApproved, 250)

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Campaign
	}{
		{
			name: "Found",
			id:   "c-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByIDQuery)).
					WithArgs("c-1").
					WillReturnRows(campaignRows(stored))
			},
			result: stored,
		},
		{
			name: "Not found",
			id:   "c-404",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByIDQuery)).
					WithArgs("c-404").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   "c-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(findByIDQuery)).
					WithArgs("c-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	newer := sampleCampaign("c-2", domain.StatusApproved, 0)
	older := sampleCampaign("c-1", domain.StatusApproved, 100)

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
		result    []domain.Campaign
	}{
		{
			name:   "Filtered by status",
			status: domain.StatusApproved,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs(domain.StatusApproved).
					WillReturnRows(campaignRows(newer, older))
			},
			result: []domain.Campaign{*newer, *older},
		},
		{
			name:   "Empty table",
			status: "",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs("").
					WillReturnRows(campaignRows())
			},
			result: []domain.Campaign{},
		},
		{
			name:   "Query error",
			status: "",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs("").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.status)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	approved := sampleCampaign("c-1", domain.StatusApproved, 0)

	mock.ExpectQuery(regexp.QuoteMeta(updateStatusQuery)).
		WithArgs("c-1", domain.StatusApproved, domain.StatusPending).
		WillReturnRows(campaignRows(approved))

	result, err := repo.UpdateStatus(context.Background(), "c-1", domain.StatusPending, domain.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, result.Status)

	// a second admin loses the race: the row is no longer pending
	mock.ExpectQuery(regexp.QuoteMeta(updateStatusQuery)).
		WithArgs("c-1", domain.StatusRejected, domain.StatusPending).
		WillReturnError(pgx.ErrNoRows)

	result, err = repo.UpdateStatus(context.Background(), "c-1", domain.StatusPending, domain.StatusRejected)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementCollected(t *testing.T) {
	repo, mock := NewMock(t)
	after := sampleCampaign("c-1", domain.StatusApproved, 250)

	mock.ExpectQuery(regexp.QuoteMeta(incrementCollectedQuery)).
		WithArgs("c-1", 250.0).
		WillReturnRows(campaignRows(after))

	result, err := repo.IncrementCollected(context.Background(), "c-1", 250)
	assert.NoError(t, err)
	assert.Equal(t, 250.0, result.Collected)

	mock.ExpectQuery(regexp.QuoteMeta(incrementCollectedQuery)).
		WithArgs("c-gone", 10.0).
		WillReturnError(pgx.ErrNoRows)

	result, err = repo.IncrementCollected(context.Background(), "c-gone", 10)
	assert.NoError(t, err)
	assert.Nil(t, result)

	mock.ExpectQuery(regexp.QuoteMeta(incrementCollectedQuery)).
		WithArgs("c-1", 5e11).
		WillReturnError(&pgconn.PgError{Code: "22003", Message: "numeric field overflow"})

	result, err = repo.IncrementCollected(context.Background(), "c-1", 5e11)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "collected")
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The increment must happen inside the UPDATE statement.
func TestIncrementCollectedQuery_IsAtomic(t *testing.T) {
	assert.Regexp(t, `SET collected = collected \+ \$2`, incrementCollectedQuery)
	assert.NotContains(t, incrementCollectedQuery, "SELECT")
	assert.Contains(t, incrementCollectedQuery, "WHERE id = $1")
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs("c-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs("c-404").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	found, err := repo.Delete(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(context.Background(), "c-404")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

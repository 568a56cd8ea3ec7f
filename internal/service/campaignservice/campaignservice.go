package campaignservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=campaignservice.go -destination=mock_campaignservice.go -package=campaignservice

var (
	ErrNotFound          = errors.New("campaign not found")
	ErrForbidden         = errors.New("not authorized as an admin")
	ErrInvalidTransition = errors.New("campaign is no longer pending")
)

var deadlineLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type Repo interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	FindByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, status string) ([]domain.Campaign, error)
	UpdateStatus(ctx context.Context, id, from, to string) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type CreateInput struct {
	Title           string
	Description     string
	Goal            *float64
	Currency        string
	Deadline        string
	Urgency         string
	BeneficiaryInfo string
	WalletOptions   []string
	PhoneNumber     string
}

type Service struct {
	campaignRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		campaignRepo: repo,
	}
}

func parseDeadline(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validateCreate(in CreateInput) (time.Time, error) {
	v := &domain.ValidationError{}
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		v.Add("description is required")
	}
	switch {
	case in.Goal == nil || *in.Goal <= 0:
		v.Add("goal is required and must be a positive number")
	case *in.Goal > domain.MaxMoney:
		v.Add("goal must be at most 999999999999.99")
	}
	if strings.TrimSpace(in.Currency) == "" {
		v.Add("currency is required")
	}
	deadline, ok := parseDeadline(in.Deadline)
	if !ok {
		v.Add("deadline is required and must be a valid date")
	}
	if strings.TrimSpace(in.Urgency) == "" {
		v.Add("urgency is required")
	}
	if strings.TrimSpace(in.BeneficiaryInfo) == "" {
		v.Add("beneficiaryInfo is required")
	}
	if !validate.IsPhone(strings.TrimSpace(in.PhoneNumber)) {
		v.Add("phoneNumber is required and must be 11 digits.")
	}
	return deadline, v.OrNil()
}

// Create stores a new campaign on behalf of principal. Unsupported currency
// and urgency values are coerced to PKR and medium; the status is always pending.
func (s *Service) Create(ctx context.Context, principal *auth.Principal, in CreateInput) (*domain.Campaign, error) {
	if principal == nil {
		return nil, ErrForbidden
	}
	deadline, err := validateCreate(in)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if !domain.IsSupportedCurrency(currency) {
		currency = domain.CurrencyPKR
	}
	urgency := strings.ToLower(strings.TrimSpace(in.Urgency))
	if !domain.IsSupportedUrgency(urgency) {
		urgency = domain.UrgencyMedium
	}
	wallets := make([]string, 0, len(in.WalletOptions))
	for _, w := range in.WalletOptions {
		if w = strings.TrimSpace(w); w != "" {
			wallets = append(wallets, w)
		}
	}

	campaign := &domain.Campaign{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Goal:            *in.Goal,
		Collected:       0,
		Currency:        currency,
		Deadline:        deadline,
		Urgency:         urgency,
		BeneficiaryInfo: strings.TrimSpace(in.BeneficiaryInfo),
		WalletOptions:   wallets,
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		Status:          domain.StatusPending,
		CreatedBy:       principal.UserID,
		CreatedByEmail:  principal.Email,
	}

	created, err := s.campaignRepo.Create(ctx, campaign)
	if err != nil {
		zap.L().Error("can't create campaign", zap.Error(err))
		return nil, err
	}
	zap.L().Info("campaign submitted",
		zap.String("campaign_id", created.ID),
		zap.String("created_by", created.CreatedBy),
	)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get campaign", zap.String("campaign_id", id), zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}
	return campaign, nil
}

// List returns campaigns newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]domain.Campaign, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !domain.IsSupportedStatus(status) {
		return nil, domain.NewValidationError("status must be one of pending, approved, rejected")
	}
	campaigns, err := s.campaignRepo.List(ctx, status)
	if err != nil {
		zap.L().Error("can't list campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

func (s *Service) Approve(ctx context.Context, principal *auth.Principal, id string) (*domain.Campaign, error) {
	return s.transition(ctx, principal, id, domain.StatusApproved)
}

func (s *Service) Reject(ctx context.Context, principal *auth.Principal, id string) (*domain.Campaign, error) {
	return s.transition(ctx, principal, id, domain.StatusRejected)
}

func (s *Service) transition(ctx context.Context, principal *auth.Principal, id, to string) (*domain.Campaign, error) {
	if principal == nil || !principal.IsAdmin {
		return nil, ErrForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	updated, err := s.campaignRepo.UpdateStatus(ctx, id, domain.StatusPending, to)
	if err != nil {
		zap.L().Error("can't change campaign status", zap.String("campaign_id", id), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		// either the campaign is gone or it already left pending
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	zap.L().Info("campaign status changed",
		zap.String("campaign_id", id),
		zap.String("status", to),
		zap.String("admin_id", principal.UserID),
	)
	return updated, nil
}

// Delete removes a campaign. Its donations are kept.
func (s *Service) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	if principal == nil || !principal.IsAdmin {
		return ErrForbidden
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	found, err := s.campaignRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete campaign", zap.String("campaign_id", id), zap.Error(err))
		return err
	}
	if !found {
		return ErrNotFound
	}
	zap.L().Info("campaign deleted", zap.String("campaign_id", id), zap.String("admin_id", principal.UserID))
	return nil
}

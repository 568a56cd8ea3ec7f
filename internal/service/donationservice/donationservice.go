package donationservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/random"
	"github.com/GlebRadaev/globalfund/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=donationservice.go -destination=mock_donationservice.go -package=donationservice

const (
	RecentLimit   = 100
	MethodUnknown = "unknown"
	MethodCard    = "card"
)

var (
	ErrInvalidAmount        = errors.New("invalid donation amount")
	ErrNotFound             = errors.New("campaign not found")
	ErrDonationNotFound     = errors.New("donation not found")
	ErrCurrencyMismatch     = errors.New("donation currency must match the campaign currency")
	ErrDuplicateTransaction = errors.New("transaction id already recorded")
)

type CampaignRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Campaign, error)
	IncrementCollected(ctx context.Context, id string, amount float64) (*domain.Campaign, error)
}

type DonationRepo interface {
	Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Donation, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error)
}

type Metrics interface {
	ObserveDonation(currency string, amount float64)
}

// DonateInput is a donation request. A nil Amount means it was missing or
// not a number.
type DonateInput struct {
	Amount        *float64
	Currency      string
	TransactionID string
	PaymentMethod string
	Method        string
	DonorName     string
	DonorEmail    string
	CardNumber    string
}

type Service struct {
	campaignRepo CampaignRepo
	donationRepo DonationRepo
	txManager    pg.TXManager
	metrics      Metrics

	now           func() time.Time
	transactionID func() (string, error)
}

func New(campaignRepo CampaignRepo, donationRepo DonationRepo, txManager pg.TXManager, metrics Metrics) *Service {
	return &Service{
		campaignRepo:  campaignRepo,
		donationRepo:  donationRepo,
		txManager:     txManager,
		metrics:       metrics,
		now:           time.Now,
		transactionID: random.TransactionID,
	}
}

// Progress renders collected/goal as a percentage with two decimals.
// A zero goal reports 0.00%.
func Progress(collected, goal float64) string {
	if goal <= 0 {
		return "0.00%"
	}
	pct := decimal.NewFromFloat(collected).
		Div(decimal.NewFromFloat(goal)).
		Mul(decimal.NewFromInt(100))
	return pct.StringFixed(2) + "%"
}

func (s *Service) Donate(ctx context.Context, principal *auth.Principal, campaignID string, in DonateInput) (*domain.DonationReceipt, error) {
	if in.Amount == nil || *in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	amount := decimal.NewFromFloat(*in.Amount).Round(2)
	if amount.LessThan(decimal.NewFromInt(1)) {
		return nil, domain.NewValidationError("amount must be at least 1")
	}
	if amount.GreaterThan(decimal.NewFromFloat(domain.MaxMoney)) {
		return nil, domain.NewValidationError("amount must be at most 999999999999.99")
	}
	if _, err := uuid.Parse(campaignID); err != nil {
		return nil, ErrNotFound
	}

	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		zap.L().Error("can't find campaign", zap.String("campaign_id", campaignID), zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = campaign.Currency
	}
	if currency != campaign.Currency {
		return nil, ErrCurrencyMismatch
	}

	method := firstNonEmpty(in.PaymentMethod, in.Method, MethodUnknown)
	var cardLast4 string
	if strings.EqualFold(method, MethodCard) && strings.TrimSpace(in.CardNumber) != "" {
		if !validate.IsLuhn(in.CardNumber) {
			return nil, domain.NewValidationError("cardNumber is not a valid card number")
		}
		cardLast4 = validate.CardLast4(in.CardNumber)
	}

	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" {
		if txID, err = s.transactionID(); err != nil {
			zap.L().Error("can't generate transaction id", zap.Error(err))
			return nil, err
		}
	}

	donation := &domain.Donation{
		ID:            uuid.NewString(),
		CampaignID:    campaign.ID,
		Amount:        amount.InexactFloat64(),
		Currency:      currency,
		TransactionID: txID,
		Method:        method,
		CardLast4:     cardLast4,
		Date:          s.now(),
	}
	if principal != nil {
		donation.DonorName = firstNonEmpty(in.DonorName, principal.Name)
		donation.DonorEmail = firstNonEmpty(in.DonorEmail, principal.Email)
	} else {
		donation.DonorName = strings.TrimSpace(in.DonorName)
		donation.DonorEmail = strings.TrimSpace(in.DonorEmail)
	}

	var updated *domain.Campaign
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.donationRepo.Create(ctx, donation); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrDuplicateTransaction
			}
			return err
		}
		updated, err = s.campaignRepo.IncrementCollected(ctx, campaign.ID, donation.Amount)
		if err != nil {
			return err
		}
		if updated == nil {
			// deleted after the lookup; roll the donation back
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrDuplicateTransaction) && !errors.Is(err, ErrNotFound) {
			zap.L().Error("can't record donation", zap.String("campaign_id", campaign.ID), zap.Error(err))
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveDonation(donation.Currency, donation.Amount)
	}
	zap.L().Info("donation recorded",
		zap.String("campaign_id", campaign.ID),
		zap.String("transaction_id", donation.TransactionID),
		zap.Float64("amount", donation.Amount),
		zap.String("currency", donation.Currency),
	)

	return &domain.DonationReceipt{
		Donation: donation,
		Campaign: updated,
		Progress: Progress(updated.Collected, updated.Goal),
	}, nil
}

func (s *Service) ListRecent(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.donationRepo.ListRecent(ctx, RecentLimit)
	if err != nil {
		zap.L().Error("can't list donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

func (s *Service) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindByTransactionID(ctx, strings.TrimSpace(transactionID))
	if err != nil {
		zap.L().Error("can't find donation", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

// ListForCampaign loads a campaign and its donations concurrently.
func (s *Service) ListForCampaign(ctx context.Context, campaignID string) (*domain.CampaignDonations, error) {
	if _, err := uuid.Parse(campaignID); err != nil {
		return nil, ErrNotFound
	}

	var (
		campaign  *domain.Campaign
		donations []domain.Donation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaign, err = s.campaignRepo.FindByID(gctx, campaignID)
		return err
	})
	g.Go(func() error {
		var err error
		donations, err = s.donationRepo.ListByCampaign(gctx, campaignID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load campaign donations", zap.String("campaign_id", campaignID), zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}

	return &domain.CampaignDonations{Campaign: campaign, Donations: donations}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

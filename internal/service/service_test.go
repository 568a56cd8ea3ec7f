package service

import (
	"context"
	"testing"
	"time"

	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/internal/repo"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/internal/service/donationservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type campaignRepo struct {
	*donationservice.MockCampaignRepo
}

func (campaignRepo) Create(context.Context, *domain.Campaign) (*domain.Campaign, error) {
	return nil, nil
}

func (campaignRepo) List(context.Context, string) ([]domain.Campaign, error) {
	return nil, nil
}

func (campaignRepo) UpdateStatus(context.Context, string, string, string) (*domain.Campaign, error) {
	return nil, nil
}

func (campaignRepo) Delete(context.Context, string) (bool, error) {
	return false, nil
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		UserRepo:     authservice.NewMockRepo(ctrl),
		CampaignRepo: campaignRepo{donationservice.NewMockCampaignRepo(ctrl)},
		DonationRepo: donationservice.NewMockDonationRepo(ctrl),
	}
	cfg := &config.Config{JWTSecret: "secret", JWTIssuer: "globalfund", JWTTTL: time.Hour, OTPTTL: 10 * time.Minute}

	services := New(cfg, repos, Deps{
		TXManager: pg.NewMockTXManager(ctrl),
		Mailer:    authservice.NewMockMailer(ctrl),
		Metrics:   donationservice.NewMockMetrics(ctrl),
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CampaignService)
	assert.NotNil(t, services.DonationService)
	require.NotNil(t, services.JWTService)

	token, err := services.AuthService.GenerateToken(&domain.User{ID: "u-1", IsAdmin: true})
	require.NoError(t, err)
	claims, err := services.JWTService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.True(t, claims.IsAdmin)
}

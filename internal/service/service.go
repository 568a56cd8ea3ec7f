package service

import (
	"github.com/GlebRadaev/globalfund/internal/config"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/internal/repo"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/internal/service/campaignservice"
	"github.com/GlebRadaev/globalfund/internal/service/donationservice"
	"github.com/GlebRadaev/globalfund/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	CampaignService *campaignservice.Service
	DonationService *donationservice.Service
	JWTService      auth.JWTServiceInterface
}

// Deps are the collaborators that live outside the repositories.
type Deps struct {
	TXManager pg.TXManager
	Mailer    authservice.Mailer
	Metrics   donationservice.Metrics
}

func New(cfg *config.Config, repo *repo.Repositories, deps Deps) *Services {
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	authService := authservice.New(repo.UserRepo, &auth.HashService{}, jwtService, deps.Mailer, cfg.JWTTTL, cfg.OTPTTL)
	campaignService := campaignservice.New(repo.CampaignRepo)
	donationService := donationservice.New(repo.CampaignRepo, repo.DonationRepo, deps.TXManager, deps.Metrics)

	return &Services{
		AuthService:     authService,
		CampaignService: campaignService,
		DonationService: donationService,
		JWTService:      jwtService,
	}
}

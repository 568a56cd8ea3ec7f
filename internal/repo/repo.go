package repo

import (
	"github.com/GlebRadaev/globalfund/internal/pg"
	campaignrepo "github.com/GlebRadaev/globalfund/internal/repo/campaign-repo"
	donationrepo "github.com/GlebRadaev/globalfund/internal/repo/donation-repo"
	userrepo "github.com/GlebRadaev/globalfund/internal/repo/user-repo"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/internal/service/campaignservice"
	"github.com/GlebRadaev/globalfund/internal/service/donationservice"
)

// CampaignRepo serves both the campaign ledger and the donation recorder.
type CampaignRepo interface {
	campaignservice.Repo
	donationservice.CampaignRepo
}

type Repositories struct {
	UserRepo     authservice.Repo
	CampaignRepo CampaignRepo
	DonationRepo donationservice.DonationRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		CampaignRepo: campaignrepo.New(conn),
		DonationRepo: donationrepo.New(conn),
	}
}

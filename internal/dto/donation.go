package dto

import (
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
)

type DonateRequestDTO struct {
	Amount        Number `json:"amount" swaggertype:"number" example:"500"`
	Currency      string `json:"currency,omitempty" example:"PKR"`
	TransactionID string `json:"transactionId,omitempty" example:"TX7Q2M9K1A"`
	PaymentMethod string `json:"paymentMethod,omitempty" example:"JazzCash"`
	Method        string `json:"method,omitempty" example:"Card"`
	DonorName     string `json:"donorName,omitempty" example:"Ayesha Khan"`
	DonorEmail    string `json:"donorEmail,omitempty" example:"ayesha@example.com"`
	CardNumber    string `json:"cardNumber,omitempty" example:"4539148803436467"`
}

type DonationResponseDTO struct {
	ID            string    `json:"_id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	CampaignID    string    `json:"campaignId" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Amount        float64   `json:"amount" example:"500"`
	Currency      string    `json:"currency" example:"PKR"`
	TransactionID string    `json:"transactionId" example:"TX7Q2M9K1A"`
	Method        string    `json:"method" example:"JazzCash"`
	CardLast4     string    `json:"cardLast4,omitempty" example:"6467"`
	DonorName     string    `json:"donorName" example:"Ayesha Khan"`
	DonorEmail    string    `json:"donorEmail" example:"ayesha@example.com"`
	Date          time.Time `json:"date" example:"2024-05-01T12:00:00Z"`
	CreatedAt     time.Time `json:"createdAt" example:"2024-05-01T12:00:00Z"`
	UpdatedAt     time.Time `json:"updatedAt" example:"2024-05-01T12:00:00Z"`
}

func NewDonationResponse(d *domain.Donation) DonationResponseDTO {
	return DonationResponseDTO{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		TransactionID: d.TransactionID,
		Method:        d.Method,
		CardLast4:     d.CardLast4,
		DonorName:     d.DonorName,
		DonorEmail:    d.DonorEmail,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func NewDonationListResponse(donations []domain.Donation) []DonationResponseDTO {
	res := make([]DonationResponseDTO, 0, len(donations))
	for i := range donations {
		res = append(res, NewDonationResponse(&donations[i]))
	}
	return res
}

type DonateResponseDTO struct {
	Message         string              `json:"message" example:"Donation recorded"`
	Donation        DonationResponseDTO `json:"donation"`
	UpdatedCampaign CampaignResponseDTO `json:"updatedCampaign"`
	Progress        string              `json:"progress" example:"25.00%"`
}

func NewDonateResponse(r *domain.DonationReceipt) DonateResponseDTO {
	return DonateResponseDTO{
		Message:         "Donation recorded",
		Donation:        NewDonationResponse(r.Donation),
		UpdatedCampaign: NewCampaignResponse(r.Campaign),
		Progress:        r.Progress,
	}
}

type CampaignDonationsResponseDTO struct {
	Campaign  CampaignResponseDTO   `json:"campaign"`
	Donations []DonationResponseDTO `json:"donations"`
}

func NewCampaignDonationsResponse(cd *domain.CampaignDonations) CampaignDonationsResponseDTO {
	return CampaignDonationsResponseDTO{
		Campaign:  NewCampaignResponse(cd.Campaign),
		Donations: NewDonationListResponse(cd.Donations),
	}
}

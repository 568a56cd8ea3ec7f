package dto

import (
	"time"

	"github.com/GlebRadaev/globalfund/internal/domain"
)

type CreateCampaignRequestDTO struct {
	Title           string     `json:"title" example:"Flood relief for Sindh"`
	Description     string     `json:"description" example:"Emergency food and shelter"`
	Goal            Number     `json:"goal" swaggertype:"number" example:"50000"`
	Currency        string     `json:"currency" example:"PKR"`
	Deadline        string     `json:"deadline" example:"2024-12-31"`
	Urgency         string     `json:"urgency" example:"high"`
	BeneficiaryInfo string     `json:"beneficiaryInfo" example:"Village council of Dadu"`
	WalletOptions   StringList `json:"walletOptions,omitempty" swaggertype:"array,string" example:"JazzCash"`
	PhoneNumber     string     `json:"phoneNumber" example:"03001234567"`
}

type CampaignResponseDTO struct {
	ID              string    `json:"_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Title           string    `json:"title" example:"Flood relief for Sindh"`
	Description     string    `json:"description" example:"Emergency food and shelter"`
	Goal            float64   `json:"goal" example:"50000"`
	Collected       float64   `json:"collected" example:"12500"`
	Currency        string    `json:"currency" example:"PKR"`
	Deadline        time.Time `json:"deadline" example:"2024-12-31T00:00:00Z"`
	Urgency         string    `json:"urgency" example:"high"`
	BeneficiaryInfo string    `json:"beneficiaryInfo" example:"Village council of Dadu"`
	WalletOptions   []string  `json:"walletOptions"`
	PhoneNumber     string    `json:"phoneNumber" example:"03001234567"`
	Status          string    `json:"status" example:"pending"`
	CreatedBy       string    `json:"createdBy" example:"4b6f1c9e-3a34-4c7e-9d0e-2f5c1b0a9e11"`
	CreatedByEmail  string    `json:"createdByEmail" example:"ayesha@example.com"`
	CreatedAt       time.Time `json:"createdAt" example:"2024-05-01T12:00:00Z"`
	UpdatedAt       time.Time `json:"updatedAt" example:"2024-05-01T12:00:00Z"`
}

func NewCampaignResponse(c *domain.Campaign) CampaignResponseDTO {
	wallets := c.WalletOptions
	if wallets == nil {
		wallets = []string{}
	}
	return CampaignResponseDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Goal:            c.Goal,
		Collected:       c.Collected,
		Currency:        c.Currency,
		Deadline:        c.Deadline,
		Urgency:         c.Urgency,
		BeneficiaryInfo: c.BeneficiaryInfo,
		WalletOptions:   wallets,
		PhoneNumber:     c.PhoneNumber,
		Status:          c.Status,
		CreatedBy:       c.CreatedBy,
		CreatedByEmail:  c.CreatedByEmail,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func NewCampaignListResponse(campaigns []domain.Campaign) []CampaignResponseDTO {
	res := make([]CampaignResponseDTO, 0, len(campaigns))
	for i := range campaigns {
		res = append(res, NewCampaignResponse(&campaigns[i]))
	}
	return res
}

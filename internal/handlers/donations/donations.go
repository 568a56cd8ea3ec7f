package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/dto"
	"github.com/GlebRadaev/globalfund/internal/service/donationservice"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=donations.go -destination=mock_donations.go -package=donations

type Service interface {
	Donate(ctx context.Context, principal *auth.Principal, campaignID string, in donationservice.DonateInput) (*domain.DonationReceipt, error)
	ListRecent(ctx context.Context) ([]domain.Donation, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error)
	ListForCampaign(ctx context.Context, campaignID string) (*domain.CampaignDonations, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Donate godoc
//
//	@Summary		Donate to a campaign
//	@Description	Records the donation and adds it to the campaign total in one transaction.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Campaign ID"
//	@Param			request	body		dto.DonateRequestDTO	true	"Donation"
//	@Success		201		{object}	dto.DonateResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid donation amount or currency"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		409		{object}	utils.Response	"Transaction ID already recorded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/donate [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())

	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	receipt, err := h.donationService.Donate(r.Context(), principal, chi.URLParam(r, "id"), donationservice.DonateInput{
		Amount:        req.Amount.Float(),
		Currency:      req.Currency,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
		Method:        req.Method,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		CardNumber:    req.CardNumber,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDonateResponse(receipt))
}

// ListRecent godoc
//
//	@Summary		Latest donations
//	@Description	Up to 100 donations, newest first
//	@Tags			Donations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.DonationResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [get]
func (h *DonationHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.ListRecent(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationListResponse(donations))
}

// GetByTransactionID godoc
//
//	@Summary		Track a payment
//	@Tags			Donations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			transactionId	path		string	true	"Transaction ID"
//	@Success		200				{object}	dto.DonationResponseDTO
//	@Failure		401				{object}	utils.Response	"Not authorized"
//	@Failure		404				{object}	utils.Response	"Donation not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/{transactionId} [get]
func (h *DonationHandler) GetByTransactionID(w http.ResponseWriter, r *http.Request) {
	donation, err := h.donationService.GetByTransactionID(r.Context(), chi.URLParam(r, "transactionId"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDonationResponse(donation))
}

// ListForCampaign godoc
//
//	@Summary		Campaign with its donations
//	@Tags			Donations
//	@Produce		json
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignDonationsResponseDTO
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/donations [get]
func (h *DonationHandler) ListForCampaign(w http.ResponseWriter, r *http.Request) {
	res, err := h.donationService.ListForCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignDonationsResponse(res))
}

func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, donationservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid donation amount")
	case errors.Is(err, donationservice.ErrCurrencyMismatch):
		utils.RespondWithError(w, http.StatusBadRequest, "Donation currency must match the campaign currency")
	case errors.Is(err, donationservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, donationservice.ErrDonationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
	case errors.Is(err, donationservice.ErrDuplicateTransaction):
		utils.RespondWithError(w, http.StatusConflict, "Transaction ID already recorded")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
	}
}

package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/dto"
	"github.com/GlebRadaev/globalfund/internal/service/campaignservice"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=campaigns.go -destination=mock_campaigns.go -package=campaigns

type Service interface {
	Create(ctx context.Context, principal *auth.Principal, in campaignservice.CreateInput) (*domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, status string) ([]domain.Campaign, error)
	Approve(ctx context.Context, principal *auth.Principal, id string) (*domain.Campaign, error)
	Reject(ctx context.Context, principal *auth.Principal, id string) (*domain.Campaign, error)
	Delete(ctx context.Context, principal *auth.Principal, id string) error
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// List godoc
//
//	@Summary		List campaigns
//	@Description	Newest first, optionally filtered by status
//	@Tags			Campaigns
//	@Produce		json
//	@Param			status	query		string	false	"pending, approved or rejected"
//	@Success		200		{array}		dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignListResponse(campaigns))
}

// Get godoc
//
//	@Summary		Get a campaign
//	@Tags			Campaigns
//	@Produce		json
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignResponseDTO
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaignService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignResponse(campaign))
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Description	Any signed-in user may create a campaign. It starts pending until an admin approves it.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign"
//	@Success		201		{object}	dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing or malformed fields"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized to create campaigns. Please log in.")
		return
	}

	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	campaign, err := h.campaignService.Create(r.Context(), principal, campaignservice.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		Goal:            req.Goal.Float(),
		Currency:        req.Currency,
		Deadline:        req.Deadline,
		Urgency:         req.Urgency,
		BeneficiaryInfo: req.BeneficiaryInfo,
		WalletOptions:   req.WalletOptions,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCampaignResponse(campaign))
}

// Approve godoc
//
//	@Summary		Approve a pending campaign
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		409	{object}	utils.Response	"Campaign is no longer pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/approve [patch]
func (h *CampaignHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaignService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a pending campaign
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	dto.CampaignResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		409	{object}	utils.Response	"Campaign is no longer pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/reject [patch]
func (h *CampaignHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaignService.Reject)
}

type transitionFn func(ctx context.Context, principal *auth.Principal, id string) (*domain.Campaign, error)

func (h *CampaignHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	campaign, err := fn(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignResponse(campaign))
}

// Delete godoc
//
//	@Summary		Delete a campaign
//	@Description	Donations already recorded against the campaign are kept.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Campaign ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		403	{object}	utils.Response	"Not an admin"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	if err := h.campaignService.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Campaign removed successfully"})
}

func respondError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, campaignservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, campaignservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized as an admin")
	case errors.Is(err, campaignservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, "Campaign is no longer pending")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/dto"
	"github.com/GlebRadaev/globalfund/internal/service/donationservice"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const campaignID = "0f8fad5b-d9cb-469f-a165-70867728950e"

var donor = &auth.Principal{UserID: "4b6f1c9e-3a34-4c7e-9d0e-2f5c1b0a9e11", Name: "Ayesha", Email: "ayesha@example.com"}

func NewMock(t *testing.T) (*DonationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body, key, value string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithPrincipal(ctx, donor))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestDonate(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Recorded",
			body: `{"amount":500,"paymentMethod":"JazzCash"}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *auth.Principal, _ string, in donationservice.DonateInput) (*domain.DonationReceipt, error) {
						require.NotNil(t, in.Amount)
						assert.Equal(t, 500.0, *in.Amount)
						assert.Equal(t, "JazzCash", in.PaymentMethod)
						return &domain.DonationReceipt{
							Donation: &domain.Donation{ID: "d-1", CampaignID: campaignID, Amount: 500, TransactionID: "TX1"},
							Campaign: &domain.Campaign{ID: campaignID, Goal: 1000, Collected: 500},
							Progress: "50.00%",
						}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Non-numeric amount",
			body: `{"amount":"lots"}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, donationservice.DonateInput{}).
					Return(nil, donationservice.ErrInvalidAmount)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid donation amount",
		},
		{
			name: "Unknown campaign",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).Return(nil, donationservice.ErrNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Campaign not found",
		},
		{
			name: "Currency mismatch",
			body: `{"amount":10,"currency":"USD"}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).Return(nil, donationservice.ErrCurrencyMismatch)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Donation currency must match the campaign currency",
		},
		{
			name: "Duplicate transaction",
			body: `{"amount":10,"transactionId":"TX1"}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).Return(nil, donationservice.ErrDuplicateTransaction)
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: "Transaction ID already recorded",
		},
		{
			name: "Amount below minimum",
			body: `{"amount":0.5}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).
					Return(nil, domain.NewValidationError("amount must be at least 1"))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "amount must be at least 1",
		},
		{
			name: "Amount beyond storage range",
			body: `{"amount":10000000000000}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).
					Return(nil, domain.NewValidationError("amount must be at most 999999999999.99"))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "amount must be at most 999999999999.99",
		},
		{
			name:            "Invalid request body",
			body:            `{"amount":`,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "Store failure",
			body: `{"amount":10}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), donor, campaignID, gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			rr := httptest.NewRecorder()
			handler.Donate(rr, newRequest(http.MethodPost, "/api/campaigns/"+campaignID+"/donate", tt.body, "id", campaignID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp dto.DonateResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Donation recorded", resp.Message)
				assert.Equal(t, "50.00%", resp.Progress)
				assert.Equal(t, 500.0, resp.UpdatedCampaign.Collected)
				assert.Equal(t, "TX1", resp.Donation.TransactionID)
				return
			}
			assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
		})
	}
}

func TestListRecent(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListRecent(gomock.Any()).Return([]domain.Donation{{ID: "d-2"}, {ID: "d-1"}}, nil)
	rr := httptest.NewRecorder()
	handler.ListRecent(rr, httptest.NewRequest(http.MethodGet, "/api/donations", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.DonationResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "d-2", resp[0].ID)

	service.EXPECT().ListRecent(gomock.Any()).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	handler.ListRecent(rr, httptest.NewRequest(http.MethodGet, "/api/donations", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetByTransactionID(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetByTransactionID(gomock.Any(), "TX1").Return(&domain.Donation{ID: "d-1", TransactionID: "TX1", CardLast4: "6467"}, nil)
	rr := httptest.NewRecorder()
	handler.GetByTransactionID(rr, newRequest(http.MethodGet, "/api/donations/TX1", "", "transactionId", "TX1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"cardLast4":"6467"`)

	service.EXPECT().GetByTransactionID(gomock.Any(), "TX404").Return(nil, donationservice.ErrDonationNotFound)
	rr = httptest.NewRecorder()
	handler.GetByTransactionID(rr, newRequest(http.MethodGet, "/api/donations/TX404", "", "transactionId", "TX404"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Donation not found", decodeMessage(t, rr))
}

func TestListForCampaign(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListForCampaign(gomock.Any(), campaignID).Return(&domain.CampaignDonations{
		Campaign:  &domain.Campaign{ID: campaignID},
		Donations: []domain.Donation{{ID: "d-1"}},
	}, nil)
	rr := httptest.NewRecorder()
	handler.ListForCampaign(rr, newRequest(http.MethodGet, "/api/campaigns/"+campaignID+"/donations", "", "id", campaignID))
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.CampaignDonationsResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, campaignID, resp.Campaign.ID)
	assert.Len(t, resp.Donations, 1)

	service.EXPECT().ListForCampaign(gomock.Any(), campaignID).Return(nil, donationservice.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.ListForCampaign(rr, newRequest(http.MethodGet, "/api/campaigns/"+campaignID+"/donations", "", "id", campaignID))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/mocks"
)

func newTestDonation(t *testing.T, campaignID uuid.UUID, donor string, amount int64) *domain.Donation {
	t.Helper()
	donation, err := domain.NewDonation(campaignID, donor, amount)
	require.NoError(t, err)
	return donation
}

func TestDonationCreate(t *testing.T) {
	t.Parallel()

	t.Run("records donation for the session email", func(t *testing.T) {
		t.Parallel()
		donations := mocks.NewMockDonationStore()
		handler := NewDonationHandler(donations, nil)

		body := fmt.Sprintf(`{"campaign_id":%q,"amount":25}`, uuid.New())
		req := withSession(httptest.NewRequest(http.MethodPost, "/donations",
			strings.NewReader(body)), "donor@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		created := donations.Donations[resp.InsertedID]
		require.NotNil(t, created)
		assert.Equal(t, "donor@example.com", created.DonorEmail)
		assert.Equal(t, int64(25), created.Amount)
	})

	t.Run("missing campaign_id rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewDonationHandler(mocks.NewMockDonationStore(), nil)

		req := withSession(httptest.NewRequest(http.MethodPost, "/donations",
			strings.NewReader(`{"amount":25}`)), "donor@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDonationListMine(t *testing.T) {
	t.Parallel()

	donations := mocks.NewMockDonationStore()
	campaignID := uuid.New()
	mine := newTestDonation(t, campaignID, "donor@example.com", 25)
	donations.AddDonation(mine)
	donations.AddDonation(newTestDonation(t, campaignID, "other@example.com", 40))
	handler := NewDonationHandler(donations, nil)

	req := withEmailParam(httptest.NewRequest(http.MethodGet, "/donations/x", nil),
		"donor@example.com")
	rec := httptest.NewRecorder()

	handler.ListMine(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*domain.Donation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, mine.ID, resp[0].ID)
}

func TestDonationListByCampaign(t *testing.T) {
	t.Parallel()

	donations := mocks.NewMockDonationStore()
	campaignID := uuid.New()
	donations.AddDonation(newTestDonation(t, campaignID, "donor@example.com", 25))
	donations.AddDonation(newTestDonation(t, uuid.New(), "donor@example.com", 40))
	handler := NewDonationHandler(donations, nil)

	req := withIDParam(httptest.NewRequest(http.MethodGet, "/donationCampaign/x", nil),
		campaignID.String())
	rec := httptest.NewRecorder()

	handler.ListByCampaign(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*domain.Donation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, campaignID, resp[0].CampaignID)
}

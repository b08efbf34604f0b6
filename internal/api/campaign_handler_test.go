package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/mocks"
)

func newTestCampaign(t *testing.T, maxDonation, currentDonation int64) *domain.Campaign {
	t.Helper()
	campaign, err := domain.NewCampaign("Surgery for Biscuit", "", "",
		"owner@example.com", maxDonation, time.Now().Add(30*24*time.Hour))
	require.NoError(t, err)
	campaign.CurrentDonation = currentDonation
	return campaign
}

func TestCampaignApplyDonation(t *testing.T) {
	t.Parallel()

	t.Run("donation within capacity is applied", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		campaign := newTestCampaign(t, 100, 90)
		campaigns.AddCampaign(campaign)
		handler := NewCampaignHandler(campaigns)

		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/donated-camp/x",
			strings.NewReader(`{"amount":10}`)), campaign.ID.String())
		rec := httptest.NewRecorder()

		handler.ApplyDonation(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(100), campaign.CurrentDonation)
		assert.Equal(t, int64(1), campaign.Donors)
	})

	t.Run("donation past capacity is rejected with 400", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		campaign := newTestCampaign(t, 100, 90)
		campaigns.AddCampaign(campaign)
		handler := NewCampaignHandler(campaigns)

		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/donated-camp/x",
			strings.NewReader(`{"amount":11}`)), campaign.ID.String())
		rec := httptest.NewRecorder()

		handler.ApplyDonation(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int64(90), campaign.CurrentDonation, "accumulator must be untouched")
		assert.Zero(t, campaign.Donors)
	})

	t.Run("unknown campaign returns 404", func(t *testing.T) {
		t.Parallel()
		handler := NewCampaignHandler(mocks.NewMockCampaignStore())

		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/donated-camp/x",
			strings.NewReader(`{"amount":10}`)), uuid.New().String())
		rec := httptest.NewRecorder()

		handler.ApplyDonation(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewCampaignHandler(mocks.NewMockCampaignStore())

		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/donated-camp/x",
			strings.NewReader(`{"amount":0}`)), uuid.New().String())
		rec := httptest.NewRecorder()

		handler.ApplyDonation(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCampaignTogglePaused(t *testing.T) {
	t.Parallel()

	campaigns := mocks.NewMockCampaignStore()
	campaign := newTestCampaign(t, 100, 0)
	campaigns.AddCampaign(campaign)
	handler := NewCampaignHandler(campaigns)

	req := withIDParam(httptest.NewRequest(http.MethodPatch, "/donation-campaigns/x", nil),
		campaign.ID.String())
	rec := httptest.NewRecorder()

	handler.TogglePaused(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ToggleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Value)
	assert.True(t, campaign.IsPaused)
}

func TestCampaignCreate(t *testing.T) {
	t.Parallel()

	t.Run("authenticated create succeeds", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		handler := NewCampaignHandler(campaigns)

		body := `{"title":"Surgery for Biscuit","max_donation":500,"last_date":"2026-12-31T00:00:00Z"}`
		req := withSession(httptest.NewRequest(http.MethodPost, "/donation-campaigns",
			strings.NewReader(body)), "owner@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		created := campaigns.Campaigns[resp.InsertedID]
		require.NotNil(t, created)
		assert.Equal(t, "owner@example.com", created.AddedBy)
		assert.Zero(t, created.CurrentDonation)
	})

	t.Run("missing max_donation rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewCampaignHandler(mocks.NewMockCampaignStore())

		body := `{"title":"Surgery for Biscuit","last_date":"2026-12-31T00:00:00Z"}`
		req := withSession(httptest.NewRequest(http.MethodPost, "/donation-campaigns",
			strings.NewReader(body)), "owner@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
	"campaign-desk/internal/core/port/mocks"
	"campaign-desk/internal/core/readiness"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readyCampaign(brandID uuid.UUID) *domain.Campaign {
	c := domain.NewDraft(brandID)
	start := domain.NewDate(2026, time.June, 1)
	end := domain.NewDate(2026, time.June, 30)
	c.Overview = domain.Overview{
		Title:       ptr("Summer Drop"),
		Description: ptr("Promote our new line"),
		Objective:   domain.ObjectiveAwareness,
		Platforms:   []domain.Platform{domain.PlatformTikTok},
		Category:    "fashion",
	}
	c.Budget = domain.Budget{
		TotalBudget:        ptr(1000.0),
		RateType:           domain.RateFixedFee,
		RateAmount:         ptr(150.0),
		StartDate:          &start,
		EndDate:            &end,
		SubmissionDeadline: &end,
	}
	c.Content.Deliverables = &domain.DeliverableQuantity{Images: ptr(5)}
	c.Audience = domain.AudienceTargeting{
		Geography: []string{"US", "CA"},
		Languages: []string{"en"},
		AgeRange:  &domain.AgeRange{Min: ptr(18), Max: ptr(30)},
	}
	c.Compliance = domain.Compliance{
		UsageRights: domain.UsageOrganicOnly,
		LegalConfirmations: &domain.LegalConfirmations{
			PlatformCompliant:  ptr(true),
			NoUnlicensedAssets: ptr(true),
		},
	}
	return &c
}

// TestCreateDraft ensures a new campaign starts as an empty draft.
func TestCreateDraft(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	got, err := svc.CreateDraft(context.Background(), brandID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, got.Campaign.Status)
	assert.Equal(t, brandID, got.Campaign.BrandID)
	assert.NotEqual(t, uuid.Nil, got.Campaign.ID)
	assert.Equal(t, readiness.CompletionCount{Completed: 0, Total: 5}, got.Readiness.CompletionCount)
}

func TestCreateDraftWithOverview(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	got, err := svc.CreateDraft(context.Background(), uuid.New(), &readyCampaign(uuid.Nil).Overview)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Readiness.CompletionCount.Completed)
}

// TestGetCampaignOtherBrand ensures campaigns never leak across brands.
func TestGetCampaignOtherBrand(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := readyCampaign(uuid.New())
	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	_, err := svc.GetCampaign(context.Background(), uuid.New(), c.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestGetCampaignMissing(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(nil, nil)

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	_, err := svc.GetCampaign(context.Background(), uuid.New(), id)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

// TestSaveSection ensures only the saved section changes and readiness is
// recomputed from the result.
func TestSaveSection(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	brandID := uuid.New()
	stored := domain.NewDraft(brandID)
	stored.Budget.TotalBudget = ptr(900.0)

	repo.EXPECT().Get(mock.Anything, stored.ID).Return(&stored, nil)
	repo.EXPECT().
		UpdateSection(mock.Anything, mock.AnythingOfType("*domain.Campaign"), domain.SectionOverview).
		Run(func(_ context.Context, c *domain.Campaign, _ domain.SectionID) {
			assert.Equal(t, "Summer Drop", *c.Overview.Title)
			assert.Equal(t, 900.0, *c.Budget.TotalBudget)
		}).
		Return(nil)

	draft := *readyCampaign(brandID)
	draft.Budget = domain.Budget{}

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	got, err := svc.SaveSection(context.Background(), brandID, stored.ID, domain.SectionOverview, draft)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Readiness.CompletionCount.Completed)
	assert.Equal(t, 900.0, *got.Campaign.Budget.TotalBudget)
}

func TestSaveSectionRejectsUnknownSection(t *testing.T) {
	svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), nil, discardLogger())
	_, err := svc.SaveSection(context.Background(), uuid.New(), uuid.New(), "payments", domain.Campaign{})
	assert.ErrorIs(t, err, port.ErrUnknownSection)
}

func TestSaveSectionNotEditable(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)
	c.Status = domain.StatusPendingApproval
	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	_, err := svc.SaveSection(context.Background(), brandID, c.ID, domain.SectionBudget, domain.Campaign{})
	assert.ErrorIs(t, err, port.ErrNotEditable)
}

// TestPublish ensures a complete campaign with a payment method moves to
// pending approval.
func TestPublish(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().HasActivePaymentMethod(mock.Anything, brandID).Return(true, nil)

	published := *c
	published.Status = domain.StatusPendingApproval
	repo.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.StatusDraft, domain.StatusPendingApproval).
		Return(&published, nil)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	got, err := svc.Publish(context.Background(), brandID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingApproval, got.Status)
}

func TestPublishBlockedByPayment(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().HasActivePaymentMethod(mock.Anything, brandID).Return(false, nil)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	_, err := svc.Publish(context.Background(), brandID, c.ID)

	var blocked *port.PublishBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, readiness.BlockerPaymentSetup, blocked.Check.Blocker())
	assert.True(t, blocked.Check.MissingPaymentSetup)
	assert.Empty(t, blocked.Check.ValidationErrors)
}

func TestPublishBlockedByFields(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)
	c.Audience.Languages = nil

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().HasActivePaymentMethod(mock.Anything, brandID).Return(false, nil)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	_, err := svc.Publish(context.Background(), brandID, c.ID)

	var blocked *port.PublishBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, readiness.BlockerValidation, blocked.Check.Blocker())
	require.Len(t, blocked.Check.ValidationErrors, 1)
	assert.Equal(t, "target_languages", blocked.Check.ValidationErrors[0].Field)
}

// TestPublishBillingFailure ensures a failing billing lookup keeps the
// campaign in draft.
func TestPublishBillingFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().
		HasActivePaymentMethod(mock.Anything, brandID).
		Return(false, errors.New("billing timeout"))

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	_, err := svc.Publish(context.Background(), brandID, c.ID)

	var blocked *port.PublishBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.False(t, blocked.Check.HasPaymentMethod)
}

func TestPublishNotDraft(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)
	c.Status = domain.StatusActive
	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)

	svc := NewCampaignUseCase(repo, mocks.NewMockBillingGateway(t), discardLogger())
	_, err := svc.Publish(context.Background(), brandID, c.ID)
	assert.ErrorIs(t, err, port.ErrInvalidTransition)
}

func TestPublishStatusConflict(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().HasActivePaymentMethod(mock.Anything, brandID).Return(true, nil)
	repo.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.StatusDraft, domain.StatusPendingApproval).
		Return(nil, port.ErrStatusConflict)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	_, err := svc.Publish(context.Background(), brandID, c.ID)
	assert.ErrorIs(t, err, port.ErrStatusConflict)
}

func TestPublishCommitFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)
	commitErr := errors.New("commit: connection reset")

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().HasActivePaymentMethod(mock.Anything, brandID).Return(true, nil)
	repo.EXPECT().
		UpdateStatus(mock.Anything, c.ID, domain.StatusDraft, domain.StatusPendingApproval).
		Return(nil, commitErr)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	published, err := svc.Publish(context.Background(), brandID, c.ID)
	assert.ErrorIs(t, err, commitErr)
	assert.Nil(t, published)
	assert.Equal(t, domain.StatusDraft, c.Status)
}

func TestPublishingCheck(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	billing := mocks.NewMockBillingGateway(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)
	c.Compliance.LegalConfirmations.NoUnlicensedAssets = ptr(false)

	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	billing.EXPECT().HasActivePaymentMethod(mock.Anything, brandID).Return(true, nil)

	svc := NewCampaignUseCase(repo, billing, discardLogger())
	check, err := svc.PublishingCheck(context.Background(), brandID, c.ID)
	require.NoError(t, err)
	assert.False(t, check.CanPublish)
	assert.True(t, check.HasPaymentMethod)
	require.Len(t, check.ValidationErrors, 1)
	assert.Equal(t, domain.SectionCompliance, check.ValidationErrors[0].Section)
}

func TestTransition(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	brandID := uuid.New()
	c := readyCampaign(brandID)
	c.Status = domain.StatusActive

	paused := *c
	paused.Status = domain.StatusPaused
	repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, c.ID, domain.StatusActive, domain.StatusPaused).Return(&paused, nil)

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	got, err := svc.Transition(context.Background(), brandID, c.ID, domain.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, got.Status)
}

func TestTransitionRejected(t *testing.T) {
	tests := []struct {
		name string
		from domain.Status
		to   domain.Status
	}{
		{"approve own campaign", domain.StatusPendingApproval, domain.StatusApproved},
		{"publish through transition", domain.StatusDraft, domain.StatusPendingApproval},
		{"draft to active", domain.StatusDraft, domain.StatusActive},
		{"unknown status", domain.StatusActive, "archived"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			brandID := uuid.New()
			c := readyCampaign(brandID)
			c.Status = tt.from
			repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil).Maybe()

			svc := NewCampaignUseCase(repo, nil, discardLogger())
			_, err := svc.Transition(context.Background(), brandID, c.ID, tt.to)
			assert.ErrorIs(t, err, port.ErrInvalidTransition)
		})
	}
}

func TestDeleteCampaign(t *testing.T) {
	tests := []struct {
		from domain.Status
		want domain.Status
	}{
		{domain.StatusDraft, domain.StatusDeleted},
		{domain.StatusActive, domain.StatusCancelled},
		{domain.StatusPendingApproval, domain.StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			brandID := uuid.New()
			c := readyCampaign(brandID)
			c.Status = tt.from

			removed := *c
			removed.Status = tt.want
			repo.EXPECT().Get(mock.Anything, c.ID).Return(c, nil)
			repo.EXPECT().UpdateStatus(mock.Anything, c.ID, tt.from, tt.want).Return(&removed, nil)

			svc := NewCampaignUseCase(repo, nil, discardLogger())
			got, err := svc.DeleteCampaign(context.Background(), brandID, c.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestListCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	brandID := uuid.New()
	ready := readyCampaign(brandID)
	empty := domain.NewDraft(brandID)

	repo.EXPECT().
		List(mock.Anything, port.CampaignFilter{BrandID: brandID, Limit: 50}).
		Return([]domain.Campaign{*ready, empty}, nil)

	svc := NewCampaignUseCase(repo, nil, discardLogger())
	got, err := svc.ListCampaigns(context.Background(), port.ListReq{BrandID: brandID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Summer Drop", got[0].Title)
	assert.Equal(t, 5, got[0].CompletionCount.Completed)
	assert.Equal(t, 0, got[1].CompletionCount.Completed)
}

func TestListCampaignsUnknownStatus(t *testing.T) {
	svc := NewCampaignUseCase(mocks.NewMockCampaignRepository(t), nil, discardLogger())
	_, err := svc.ListCampaigns(context.Background(), port.ListReq{BrandID: uuid.New(), Status: "archived"})
	assert.ErrorIs(t, err, port.ErrInvalidStatus)
}

// TestEvaluateDraftIdempotent ensures repeated evaluation of an unchanged
// draft yields identical output.
func TestEvaluateDraftIdempotent(t *testing.T) {
	svc := NewCampaignUseCase(nil, nil, discardLogger())
	draft := *readyCampaign(uuid.New())
	draft.Content = domain.ContentRequirements{}
	first := svc.EvaluateDraft(draft)
	assert.Equal(t, first, svc.EvaluateDraft(draft))
	assert.Equal(t, 4, first.CompletionCount.Completed)
}

package readiness

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/core/domain"
)

type paymentFunc func(ctx context.Context, brandID uuid.UUID) (bool, error)

func (f paymentFunc) HasActivePaymentMethod(ctx context.Context, brandID uuid.UUID) (bool, error) {
	return f(ctx, brandID)
}

func hasPayment(v bool) PaymentChecker {
	return paymentFunc(func(context.Context, uuid.UUID) (bool, error) { return v, nil })
}

func newTestGate() *Gate {
	return NewGate(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGateCompleteWithPayment(t *testing.T) {
	check, err := newTestGate().Check(context.Background(), completeCampaign(), hasPayment(true))
	require.NoError(t, err)
	assert.True(t, check.CanPublish)
	assert.True(t, check.HasPaymentMethod)
	assert.False(t, check.MissingPaymentSetup)
	assert.Empty(t, check.ValidationErrors)
	assert.NotNil(t, check.ValidationErrors)
	assert.Equal(t, BlockerNone, check.Blocker())
}

func TestGateMissingPaymentOnly(t *testing.T) {
	check, err := newTestGate().Check(context.Background(), completeCampaign(), hasPayment(false))
	require.NoError(t, err)
	assert.False(t, check.CanPublish)
	assert.True(t, check.MissingPaymentSetup)
	assert.Empty(t, check.ValidationErrors)
	assert.Equal(t, BlockerPaymentSetup, check.Blocker())
}

func TestGateFieldErrorsTakePrecedence(t *testing.T) {
	c := completeCampaign()
	c.Overview.Title = nil
	check, err := newTestGate().Check(context.Background(), c, hasPayment(false))
	require.NoError(t, err)
	assert.False(t, check.CanPublish)
	assert.True(t, check.MissingPaymentSetup)
	assert.Equal(t, BlockerValidation, check.Blocker())
}

func TestGateSingleMissingConfirmation(t *testing.T) {
	c := completeCampaign()
	c.Compliance.LegalConfirmations.NoUnlicensedAssets = ptr(false)

	for _, paid := range []bool{true, false} {
		check, err := newTestGate().Check(context.Background(), c, hasPayment(paid))
		require.NoError(t, err)
		assert.False(t, check.CanPublish)
		require.Len(t, check.ValidationErrors, 1)
		ve := check.ValidationErrors[0]
		assert.Equal(t, domain.SectionCompliance, ve.Section)
		assert.Equal(t, "Compliance", ve.SectionName)
		assert.Equal(t, "legal_confirmations.no_unlicensed_assets", ve.Field)
	}
}

func TestGateEachMissingFieldAppearsOnce(t *testing.T) {
	c := completeCampaign()
	c.Budget.StartDate = nil
	c.Audience.Geography = []string{" "}

	check, err := newTestGate().Check(context.Background(), c, hasPayment(true))
	require.NoError(t, err)
	require.Len(t, check.ValidationErrors, 2)
	assert.Equal(t, "start_date", check.ValidationErrors[0].Field)
	assert.Equal(t, "target_geography", check.ValidationErrors[1].Field)
}

func TestGateErrorOrder(t *testing.T) {
	check, err := newTestGate().Check(context.Background(), &domain.Campaign{}, hasPayment(true))
	require.NoError(t, err)

	var sections []domain.SectionID
	for _, g := range check.Grouped() {
		sections = append(sections, g.Section)
	}
	assert.Equal(t, domain.Sections, sections)
	assert.Equal(t, "title", check.ValidationErrors[0].Field)
	assert.Equal(t, "legal_confirmations.no_unlicensed_assets", check.ValidationErrors[len(check.ValidationErrors)-1].Field)
	assert.Len(t, check.ValidationErrors, 5+6+1+4+3)
}

func TestGateFailsClosedOnLookupError(t *testing.T) {
	failing := paymentFunc(func(context.Context, uuid.UUID) (bool, error) {
		return true, errors.New("billing unavailable")
	})
	check, err := newTestGate().Check(context.Background(), completeCampaign(), failing)
	require.NoError(t, err)
	assert.False(t, check.HasPaymentMethod)
	assert.True(t, check.MissingPaymentSetup)
	assert.False(t, check.CanPublish)
}

func TestGateFailsClosedOnLookupPanic(t *testing.T) {
	panicking := paymentFunc(func(context.Context, uuid.UUID) (bool, error) {
		panic("nil client")
	})
	check, err := newTestGate().Check(context.Background(), completeCampaign(), panicking)
	require.NoError(t, err)
	assert.False(t, check.HasPaymentMethod)
	assert.False(t, check.CanPublish)
}

func TestGateNilChecker(t *testing.T) {
	check, err := newTestGate().Check(context.Background(), completeCampaign(), nil)
	require.NoError(t, err)
	assert.False(t, check.HasPaymentMethod)
	assert.False(t, check.CanPublish)
}

func TestGateDiscardsResultOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)

	slow := paymentFunc(func(context.Context, uuid.UUID) (bool, error) {
		<-release
		return true, nil
	})

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	check, err := newTestGate().Check(ctx, completeCampaign(), slow)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, PublishingCheck{}, check)
}

func TestGateLateLookupResultIsDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	finished := make(chan struct{})

	ignoresCtx := paymentFunc(func(context.Context, uuid.UUID) (bool, error) {
		defer close(finished)
		<-release
		return true, nil
	})

	cancel()
	check, err := newTestGate().Check(ctx, completeCampaign(), ignoresCtx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, check.CanPublish)

	close(release)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("lookup goroutine did not finish after the checker returned")
	}
}

func TestGatePassesBrandID(t *testing.T) {
	c := completeCampaign()
	var seen uuid.UUID
	checker := paymentFunc(func(_ context.Context, brandID uuid.UUID) (bool, error) {
		seen = brandID
		return true, nil
	})
	_, err := newTestGate().Check(context.Background(), c, checker)
	require.NoError(t, err)
	assert.Equal(t, c.BrandID, seen)
}

func TestPublishingCheckGrouped(t *testing.T) {
	check := PublishingCheck{ValidationErrors: []ValidationError{
		{Section: domain.SectionOverview, SectionName: "Overview", Field: "title"},
		{Section: domain.SectionOverview, SectionName: "Overview", Field: "category"},
		{Section: domain.SectionAudience, SectionName: "Audience Targeting", Field: "target_languages"},
	}}
	groups := check.Grouped()
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Errors, 2)
	assert.Equal(t, "Audience Targeting", groups[1].SectionName)
	assert.Empty(t, PublishingCheck{}.Grouped())
}

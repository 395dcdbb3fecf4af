package db

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/readiness"
)

type memStore struct {
	campaigns []domain.Campaign
	payments  map[uuid.UUID]string
	createErr error
}

func (m *memStore) Create(_ context.Context, c *domain.Campaign) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.campaigns = append(m.campaigns, *c)
	return nil
}

func (m *memStore) AddPaymentMethod(_ context.Context, brandID uuid.UUID, provider string) (uuid.UUID, error) {
	if m.payments == nil {
		m.payments = map[uuid.UUID]string{}
	}
	m.payments[brandID] = provider
	return uuid.New(), nil
}

func TestDemoCampaignCompletion(t *testing.T) {
	agg := readiness.NewAggregator()
	r := rand.New(rand.NewSource(42))
	for filled := 0; filled <= len(domain.Sections); filled++ {
		c := DemoCampaign(uuid.New(), filled, r)
		res := agg.Aggregate(&c)
		assert.Equal(t, filled, res.CompletionCount.Completed, "filled=%d", filled)
		assert.Empty(t, res.Warnings, "filled=%d", filled)
	}
}

func TestSeed(t *testing.T) {
	store := &memStore{}
	res, err := Seed(context.Background(), store, store)
	require.NoError(t, err)

	assert.Len(t, res.CampaignIDs, len(domain.Sections)+1)
	assert.Len(t, store.campaigns, len(domain.Sections)+1)
	assert.Equal(t, "card", store.payments[res.BrandID])
	for _, c := range store.campaigns {
		assert.Equal(t, res.BrandID, c.BrandID)
		assert.Equal(t, domain.StatusDraft, c.Status)
	}
}

func TestSeedCreateError(t *testing.T) {
	store := &memStore{createErr: assert.AnError}
	_, err := Seed(context.Background(), store, store)
	assert.ErrorIs(t, err, assert.AnError)
}

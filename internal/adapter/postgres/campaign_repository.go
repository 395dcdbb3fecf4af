package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

const campaignColumns = `id, brand_id, status, overview, budget, content_requirements,
            audience_targeting, compliance, created_at, updated_at, submitted_at`

// sectionColumns maps each section to the JSONB column holding it.
var sectionColumns = map[domain.SectionID]string{
	domain.SectionOverview:   "overview",
	domain.SectionBudget:     "budget",
	domain.SectionContent:    "content_requirements",
	domain.SectionAudience:   "audience_targeting",
	domain.SectionCompliance: "compliance",
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Each section is stored in its own JSONB column.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	sections, err := marshalSections(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, brand_id, status, overview, budget, content_requirements, audience_targeting, compliance, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.BrandID, c.Status,
		sections[domain.SectionOverview],
		sections[domain.SectionBudget],
		sections[domain.SectionContent],
		sections[domain.SectionAudience],
		sections[domain.SectionCompliance],
		c.CreatedAt, c.UpdatedAt)
	return err
}

// Get returns a campaign by id, or nil when none exists.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the brand's campaigns, newest first.
func (r *CampaignRepository) List(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	args := []interface{}{filter.BrandID, filter.Limit, filter.Offset}
	whereStatus := "AND status NOT IN ('deleted')"
	if filter.Status != "" {
		whereStatus = "AND status = $4"
		args = append(args, filter.Status)
	}
	query := fmt.Sprintf(`SELECT %s FROM campaigns
        WHERE brand_id = $1 %s
        ORDER BY updated_at DESC
        LIMIT $2 OFFSET $3`, campaignColumns, whereStatus)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// UpdateSection writes one section of c.
func (r *CampaignRepository) UpdateSection(ctx context.Context, c *domain.Campaign, section domain.SectionID) error {
	column, ok := sectionColumns[section]
	if !ok {
		return port.ErrUnknownSection
	}
	value, _ := c.SectionValue(section)
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE campaigns SET %s = $1, updated_at = $2 WHERE id = $3`, column),
		data, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// UpdateStatus moves a campaign from one status to another inside a
// transaction. The row is locked so concurrent transitions serialise. The
// campaign is returned only once the transaction has committed.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		// lock campaign
		var current domain.Status
		err := tx.QueryRow(ctx, `SELECT status FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrNotFound
		}
		if err != nil {
			return err
		}
		if current != from {
			return port.ErrStatusConflict
		}
		now := time.Now().UTC()
		row := tx.QueryRow(ctx, `UPDATE campaigns
        SET status = $1,
            updated_at = $2,
            submitted_at = CASE WHEN $1 = 'pending_approval' THEN $2 ELSE submitted_at END
        WHERE id = $3
        RETURNING `+campaignColumns, to, now, id)
		c, err = scanCampaign(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// txBeginner is satisfied by *pgxpool.Pool.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// inTx runs fn in a read-committed transaction. It rolls back when fn fails
// and reports a failed commit as the call's error.
func inTx(ctx context.Context, db txBeginner, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// scanCampaign scans one campaign row selected with campaignColumns.
func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                                               domain.Campaign
		overview, budget, content, audience, compliance []byte
	)
	err := row.Scan(
		&c.ID,
		&c.BrandID,
		&c.Status,
		&overview,
		&budget,
		&content,
		&audience,
		&compliance,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	targets := []struct {
		raw []byte
		dst any
	}{
		{overview, &c.Overview},
		{budget, &c.Budget},
		{content, &c.Content},
		{audience, &c.Audience},
		{compliance, &c.Compliance},
	}
	for _, t := range targets {
		if len(t.raw) == 0 {
			continue
		}
		// fields that fail to decode stay empty and show up as missing
		_ = json.Unmarshal(t.raw, t.dst)
	}
	return &c, nil
}

func marshalSections(c *domain.Campaign) (map[domain.SectionID][]byte, error) {
	out := make(map[domain.SectionID][]byte, len(domain.Sections))
	for _, id := range domain.Sections {
		value, _ := c.SectionValue(id)
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", id, err)
		}
		out[id] = data
	}
	return out, nil
}

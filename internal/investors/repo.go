package investors

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mkravtsov/investra-backend/pkg/db"
	"github.com/mkravtsov/investra-backend/pkg/db/models"
	pkgerrors "github.com/mkravtsov/investra-backend/pkg/errors"
)

// Repository manages persistence for investors and their ledger entries.
//
// Snapshot is the only read path the valuation engine consumes: it returns the
// investor and every one of its entries from a single transaction, so a
// concurrent append can never produce a torn view.
type Repository interface {
	CreateInvestor(ctx context.Context, investor *models.Investor) error
	GetInvestor(ctx context.Context, id uuid.UUID) (models.Investor, error)
	ListInvestors(ctx context.Context) ([]models.Investor, error)
	UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error
	UpdateInvestedAmount(ctx context.Context, id uuid.UUID, amountCents int64) error
	DeleteInvestor(ctx context.Context, id uuid.UUID) error
	CreateEntry(ctx context.Context, entry *models.LedgerEntry) error
	Snapshot(ctx context.Context, id uuid.UUID) (models.Investor, []models.LedgerEntry, error)
}

type repository struct {
	client *db.Client
}

// NewRepository returns an investor repository bound to the provided client.
func NewRepository(client *db.Client) Repository {
	return &repository{client: client}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return r.client.DB().WithContext(ctx)
}

func (r *repository) CreateInvestor(ctx context.Context, investor *models.Investor) error {
	err := r.conn(ctx).Create(investor).Error
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "investor already exists")
	}
	return err
}

func (r *repository) GetInvestor(ctx context.Context, id uuid.UUID) (models.Investor, error) {
	var investor models.Investor
	err := r.conn(ctx).First(&investor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Investor{}, pkgerrors.New(pkgerrors.CodeNotFound, "investor not found")
	}
	return investor, err
}

func (r *repository) ListInvestors(ctx context.Context) ([]models.Investor, error) {
	var investors []models.Investor
	if err := r.conn(ctx).
		Order("created_at ASC").
		Find(&investors).Error; err != nil {
		return nil, err
	}
	return investors, nil
}

func (r *repository) UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error {
	return r.updateColumn(ctx, id, "full_name", fullName)
}

func (r *repository) UpdateInvestedAmount(ctx context.Context, id uuid.UUID, amountCents int64) error {
	return r.updateColumn(ctx, id, "invested_amount_cents", amountCents)
}

func (r *repository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	res := r.conn(ctx).
		Model(&models.Investor{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "investor not found")
	}
	return nil
}

// DeleteInvestor removes the investor and all its ledger entries in one
// transaction. The explicit entry delete keeps the cascade working on
// SQLite setups where the foreign key pragma is off.
func (r *repository) DeleteInvestor(ctx context.Context, id uuid.UUID) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("investor_id = ?", id).Delete(&models.LedgerEntry{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Investor{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "investor not found")
		}
		return nil
	})
}

// CreateEntry appends one ledger entry. A foreign key violation means the
// investor vanished between the service existence check and the insert, so it
// surfaces the same way a failed existence check does.
func (r *repository) CreateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	err := r.conn(ctx).Create(entry).Error
	if db.IsForeignKeyViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown investor")
	}
	return err
}

func (r *repository) Snapshot(ctx context.Context, id uuid.UUID) (models.Investor, []models.LedgerEntry, error) {
	var investor models.Investor
	var entries []models.LedgerEntry

	err := r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&investor, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "investor not found")
			}
			return err
		}
		return tx.
			Where("investor_id = ?", id).
			Order("period_month ASC, id ASC").
			Find(&entries).Error
	})
	if err != nil {
		return models.Investor{}, nil, err
	}
	return investor, entries, nil
}

package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"roam/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	// ConsumeGeneration decrements usage_count by one only when it is positive.
	// ok is false when no row qualified (missing account or no remaining quota).
	ConsumeGeneration(ctx context.Context, id string) (remaining int, ok bool, err error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// ConsumeGeneration issues a single conditional UPDATE ... RETURNING so two
// concurrent generations cannot both spend the last unit.
func (a *accountRepository) ConsumeGeneration(ctx context.Context, id string) (int, bool, error) {
	var updated []db_models.Account
	res := a.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "usage_count"}}}).
		Where("id = ? AND usage_count > 0", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count - ?", 1))
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 || len(updated) == 0 {
		return 0, false, nil
	}

	return updated[0].UsageCount, true, nil
}

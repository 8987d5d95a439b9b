package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chemstock/models"
	"chemstock/stock"
)

func (r *Repo) GetChemical(ctx context.Context, name string) (*models.Chemical, error) {
	var c models.Chemical
	q := r.DB.WithContext(ctx)
	if r.inTx {
		// Hold the row until the enclosing transaction commits
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&c, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stock.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) SaveChemical(ctx context.Context, c *models.Chemical) error {
	return r.DB.WithContext(ctx).Model(&models.Chemical{}).
		Where("name = ?", c.Name).
		Updates(map[string]interface{}{
			"remaining": c.Remaining,
			"issued":    c.Issued,
		}).Error
}

func (r *Repo) ListChemicals(ctx context.Context) ([]models.Chemical, error) {
	var rows []models.Chemical
	err := r.DB.WithContext(ctx).Order("serial_no, name").Find(&rows).Error
	return rows, err
}

// ReplaceChemicals is the wholesale delete-then-insert behind a master-list
// upload. Upsert on name keeps a late duplicate authoritative.
func (r *Repo) ReplaceChemicals(ctx context.Context, rows []models.Chemical) error {
	return r.Atomic(ctx, func(tx stock.Store) error {
		repo := tx.(*Repo)
		if err := repo.DB.Exec("DELETE FROM " + models.ChemicalTable).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := repo.DB.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				UpdateAll: true,
			}).Create(&rows[i]).Error; err != nil {
				return fmt.Errorf("insert chemical %q: %w", rows[i].Name, err)
			}
		}
		return nil
	})
}

func (r *Repo) DeleteAllChemicals(ctx context.Context) error {
	return r.DB.WithContext(ctx).Exec("DELETE FROM " + models.ChemicalTable).Error
}

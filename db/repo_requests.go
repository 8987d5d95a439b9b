package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chemstock/models"
	"chemstock/stock"
)

func (r *Repo) GetRequest(ctx context.Context, id uint) (*models.Request, error) {
	var req models.Request
	q := r.DB.WithContext(ctx)
	if r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stock.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *Repo) CreateRequest(ctx context.Context, req *models.Request) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

func (r *Repo) SaveRequest(ctx context.Context, req *models.Request) error {
	return r.DB.WithContext(ctx).Save(req).Error
}

func (r *Repo) ListRequests(ctx context.Context, f stock.RequestFilter) ([]models.Request, error) {
	q := r.DB.WithContext(ctx).Model(&models.Request{}).Order("created_at DESC")
	if f.Username != "" {
		q = q.Where("username = ?", f.Username)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var rows []models.Request
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) AppendIssuance(ctx context.Context, rec *models.Issuance) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

func (r *Repo) ListIssuances(ctx context.Context, username string) ([]models.Issuance, error) {
	q := r.DB.WithContext(ctx).Model(&models.Issuance{}).Order("issued_at DESC")
	if username != "" {
		q = q.Where("username = ?", username)
	}
	var rows []models.Issuance
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

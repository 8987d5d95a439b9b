package db

import (
	"context"

	"chemstock/models"
)

func (r *Repo) AppendNotification(ctx context.Context, n *models.Notification) error {
	return r.DB.WithContext(ctx).Create(n).Error
}

func (r *Repo) ListUnseenNotifications(ctx context.Context, recipients []string) ([]models.Notification, error) {
	if len(recipients) == 0 {
		return nil, nil
	}
	var rows []models.Notification
	err := r.DB.WithContext(ctx).
		Where("recipient IN ? AND seen = FALSE", recipients).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) MarkNotificationsSeen(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id IN ?", ids).
		Update("seen", true).Error
}

package stock

import (
	"context"

	"chemstock/models"
)

// RequestFilter narrows ListRequests. Zero values mean "any".
type RequestFilter struct {
	Username string
	Status   models.Status
}

// Store is the persistence port for the bookkeeping core.
//
// Atomic runs fn against a Store bound to one transaction. Inside that
// transaction GetChemical must lock the row for the duration, so the
// read-check-write sequences in AdjustStock and the Issued transition cannot
// interleave with another mutation of the same chemical. Plain reads outside
// Atomic tolerate stale snapshots.
//
// Implementations return ErrNotFound for absent single rows; list methods
// yield empty slices instead of errors.
type Store interface {
	Atomic(ctx context.Context, fn func(tx Store) error) error

	GetChemical(ctx context.Context, name string) (*models.Chemical, error)
	SaveChemical(ctx context.Context, c *models.Chemical) error
	ListChemicals(ctx context.Context) ([]models.Chemical, error)
	ReplaceChemicals(ctx context.Context, rows []models.Chemical) error
	DeleteAllChemicals(ctx context.Context) error

	GetRequest(ctx context.Context, id uint) (*models.Request, error)
	CreateRequest(ctx context.Context, r *models.Request) error
	SaveRequest(ctx context.Context, r *models.Request) error
	ListRequests(ctx context.Context, f RequestFilter) ([]models.Request, error)

	AppendIssuance(ctx context.Context, rec *models.Issuance) error
	ListIssuances(ctx context.Context, username string) ([]models.Issuance, error)

	AppendNotification(ctx context.Context, n *models.Notification) error
	ListUnseenNotifications(ctx context.Context, recipients []string) ([]models.Notification, error)
	MarkNotificationsSeen(ctx context.Context, ids []uint) error
}

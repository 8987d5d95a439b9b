package stock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"chemstock/models"
	"chemstock/spreadsheet"
)

// Service is the request/stock bookkeeping core: stock ledger, request
// lifecycle and notification fan-out, over an injected Store.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// applyDelta mutates one ledger row in place. Negative delta dispenses stock
// (remaining down, issued up); positive delta restocks remaining only.
func applyDelta(c *models.Chemical, delta float64) error {
	newRemaining := c.Remaining + delta
	if newRemaining < 0 {
		return ErrInsufficientStock
	}
	if delta < 0 {
		c.Issued += -delta
	}
	c.Remaining = newRemaining
	return nil
}

// AdjustStock applies delta to one chemical's ledger row and returns the new
// remaining amount. The whole read-check-write runs in one transaction with
// the row locked.
func (s *Service) AdjustStock(ctx context.Context, chemical string, delta float64) (float64, error) {
	var remaining float64
	err := s.store.Atomic(ctx, func(tx Store) error {
		c, err := tx.GetChemical(ctx, chemical)
		if err != nil {
			return err
		}
		if err := applyDelta(c, delta); err != nil {
			return err
		}
		if err := tx.SaveChemical(ctx, c); err != nil {
			return err
		}
		remaining = c.Remaining
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("stock adjusted",
		zap.String("chemical", chemical),
		zap.Float64("delta", delta),
		zap.Float64("remaining", remaining))
	return remaining, nil
}

// CreateRequest validates against the ledger only when the chemical already
// has a master-list row; requests may name chemicals not yet in the list and
// are then checked at issue time instead.
func (s *Service) CreateRequest(ctx context.Context, username, chemical string, amount float64, note string) (*models.Request, error) {
	c, err := s.store.GetChemical(ctx, chemical)
	switch {
	case err == nil:
		if amount > c.Remaining {
			return nil, fmt.Errorf("%w: requested %g of %q, remaining %g", ErrExceedsStock, amount, chemical, c.Remaining)
		}
	case errors.Is(err, ErrNotFound):
		// Unknown chemical: allowed at creation.
	default:
		return nil, err
	}

	now := time.Now().UTC()
	r := &models.Request{
		Username:  username,
		Chemical:  chemical,
		Amount:    amount,
		Note:      note,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateRequest(ctx, r); err != nil {
		return nil, err
	}
	s.Notify(ctx, models.ChannelSupervisor,
		fmt.Sprintf("New request #%d: %s asks for %g %s", r.ID, username, amount, chemical))
	s.log.Info("request created",
		zap.Uint("id", r.ID),
		zap.String("username", username),
		zap.String("chemical", chemical),
		zap.Float64("amount", amount))
	return r, nil
}

// SetStatus drives a request through the lifecycle. Approved and Rejected
// require Pending and record the actor as supervisor; Issued requires
// Approved, deducts stock and records the actor as lab incharge. Any pair
// outside the transition table fails with ErrUnsupportedTransition.
func (s *Service) SetStatus(ctx context.Context, id uint, target models.Status, actor string) (*models.Request, error) {
	var out *models.Request
	err := s.store.Atomic(ctx, func(tx Store) error {
		r, err := tx.GetRequest(ctx, id)
		if err != nil {
			return err
		}
		if !r.Status.CanTransition(target) {
			return fmt.Errorf("%w: %s -> %s", ErrUnsupportedTransition, r.Status, target)
		}

		now := time.Now().UTC()
		switch target {
		case models.StatusApproved, models.StatusRejected:
			r.Supervisor = &actor

		case models.StatusIssued:
			// Issuance needs a real stock line, unlike creation.
			c, err := tx.GetChemical(ctx, r.Chemical)
			if err != nil {
				return err
			}
			if err := applyDelta(c, -r.Amount); err != nil {
				return err
			}
			if err := tx.SaveChemical(ctx, c); err != nil {
				return err
			}
			r.LabIncharge = &actor
			rec := &models.Issuance{
				Username: r.Username,
				Chemical: r.Chemical,
				Amount:   r.Amount,
				IssuedBy: actor,
				IssuedAt: now,
			}
			if err := tx.AppendIssuance(ctx, rec); err != nil {
				return err
			}
		}

		r.Status = target
		r.UpdatedAt = now
		if err := tx.SaveRequest(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch target {
	case models.StatusApproved:
		s.Notify(ctx, out.Username,
			fmt.Sprintf("Your request #%d for %g %s was approved by %s", out.ID, out.Amount, out.Chemical, actor))
		s.Notify(ctx, models.ChannelLab,
			fmt.Sprintf("Request #%d (%s, %g %s) approved, ready to issue", out.ID, out.Username, out.Amount, out.Chemical))
	case models.StatusRejected:
		s.Notify(ctx, out.Username,
			fmt.Sprintf("Your request #%d for %g %s was rejected by %s", out.ID, out.Amount, out.Chemical, actor))
	case models.StatusIssued:
		s.Notify(ctx, out.Username,
			fmt.Sprintf("Request #%d issued: %g %s handed over by %s", out.ID, out.Amount, out.Chemical, actor))
	}
	s.log.Info("request transitioned",
		zap.Uint("id", id),
		zap.String("target", string(target)),
		zap.String("actor", actor))
	return out, nil
}

// ImportMasterList parses a spreadsheet and replaces the whole master list.
// A schema failure happens before any write, so existing rows stay untouched.
func (s *Service) ImportMasterList(ctx context.Context, r io.Reader) (int, error) {
	rows, err := spreadsheet.ParseMasterList(r)
	if err != nil {
		return 0, err
	}
	if err := s.store.ReplaceChemicals(ctx, rows); err != nil {
		return 0, err
	}
	s.log.Info("master list replaced", zap.Int("rows", len(rows)))
	return len(rows), nil
}

// DeleteMasterList truncates the ledger. Irreversible.
func (s *Service) DeleteMasterList(ctx context.Context) error {
	if err := s.store.DeleteAllChemicals(ctx); err != nil {
		return err
	}
	s.log.Warn("master list deleted")
	return nil
}

// Notify appends an unseen notification. Duplicates are legal; failures are
// logged and swallowed so a lost message never rolls back a transition.
func (s *Service) Notify(ctx context.Context, recipient, message string) {
	n := &models.Notification{
		Recipient: recipient,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AppendNotification(ctx, n); err != nil {
		s.log.Error("notification append failed",
			zap.String("recipient", recipient), zap.Error(err))
	}
}

// FetchUnseen returns unseen notifications for the recipients, newest first.
func (s *Service) FetchUnseen(ctx context.Context, recipients ...string) ([]models.Notification, error) {
	return s.store.ListUnseenNotifications(ctx, recipients)
}

// MarkSeen flips the seen flag for the given ids. Empty input is a no-op.
func (s *Service) MarkSeen(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.store.MarkNotificationsSeen(ctx, ids)
}

func (s *Service) ListChemicals(ctx context.Context) ([]models.Chemical, error) {
	return s.store.ListChemicals(ctx)
}

func (s *Service) ListRequests(ctx context.Context, f RequestFilter) ([]models.Request, error) {
	return s.store.ListRequests(ctx, f)
}

func (s *Service) ListIssuances(ctx context.Context, username string) ([]models.Issuance, error) {
	return s.store.ListIssuances(ctx, username)
}

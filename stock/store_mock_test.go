package stock

import (
	"context"
	"sort"
	"sync"

	"chemstock/models"
)

// In-memory Store for service tests. Atomic serializes whole blocks with one
// mutex, mirroring the per-row transaction the real implementation takes.
type memStore struct {
	atomicMu sync.Mutex
	mu       sync.Mutex

	chemicals     map[string]models.Chemical
	requests      map[uint]models.Request
	nextRequestID uint
	issuances     []models.Issuance
	notifications []models.Notification
	nextNotifID   uint
}

func newMemStore() *memStore {
	return &memStore{
		chemicals: map[string]models.Chemical{},
		requests:  map[uint]models.Request{},
	}
}

func (m *memStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	m.atomicMu.Lock()
	defer m.atomicMu.Unlock()
	return fn(m)
}

func (m *memStore) GetChemical(ctx context.Context, name string) (*models.Chemical, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.chemicals[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (m *memStore) SaveChemical(ctx context.Context, c *models.Chemical) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chemicals[c.Name] = *c
	return nil
}

func (m *memStore) ListChemicals(ctx context.Context) ([]models.Chemical, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Chemical, 0, len(m.chemicals))
	for _, c := range m.chemicals {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) ReplaceChemicals(ctx context.Context, rows []models.Chemical) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chemicals = map[string]models.Chemical{}
	for _, c := range rows {
		m.chemicals[c.Name] = c
	}
	return nil
}

func (m *memStore) DeleteAllChemicals(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chemicals = map[string]models.Chemical{}
	return nil
}

func (m *memStore) GetRequest(ctx context.Context, id uint) (*models.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := r
	return &cp, nil
}

func (m *memStore) CreateRequest(ctx context.Context, r *models.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRequestID++
	r.ID = m.nextRequestID
	m.requests[r.ID] = *r
	return nil
}

func (m *memStore) SaveRequest(ctx context.Context, r *models.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[r.ID] = *r
	return nil
}

func (m *memStore) ListRequests(ctx context.Context, f RequestFilter) ([]models.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Request
	for _, r := range m.requests {
		if f.Username != "" && r.Username != f.Username {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) AppendIssuance(ctx context.Context, rec *models.Issuance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uint(len(m.issuances) + 1)
	m.issuances = append(m.issuances, *rec)
	return nil
}

func (m *memStore) ListIssuances(ctx context.Context, username string) ([]models.Issuance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Issuance
	for _, rec := range m.issuances {
		if username != "" && rec.Username != username {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *memStore) AppendNotification(ctx context.Context, n *models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextNotifID++
	n.ID = m.nextNotifID
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *memStore) ListUnseenNotifications(ctx context.Context, recipients []string) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := map[string]bool{}
	for _, r := range recipients {
		want[r] = true
	}
	var out []models.Notification
	for _, n := range m.notifications {
		if n.Seen || !want[n.Recipient] {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *memStore) MarkNotificationsSeen(ctx context.Context, ids []uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := map[uint]bool{}
	for _, id := range ids {
		want[id] = true
	}
	for i := range m.notifications {
		if want[m.notifications[i].ID] {
			m.notifications[i].Seen = true
		}
	}
	return nil
}

// unseenFor is a test helper reading the mock directly.
func (m *memStore) unseenFor(recipient string) []models.Notification {
	out, _ := m.ListUnseenNotifications(context.Background(), []string{recipient})
	return out
}

package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/cursor"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// memActivities evaluates the catalog contract over an in-memory table.
type memActivities struct {
	mu          sync.Mutex
	seq         int64
	rows        map[int64]*model.Activity
	incremented [][]int64
	searchErr   error
}

func newMemActivities() *memActivities {
	return &memActivities{rows: make(map[int64]*model.Activity)}
}

func overlaps(column, selection []string, universal bool) bool {
	if len(selection) == 0 {
		return true
	}
	if universal {
		selection = append(append([]string{}, selection...), constant.UniversalTag)
	}
	return len(lo.Intersect(column, selection)) > 0
}

func matchesTerm(a *model.Activity, term string, withTags bool) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	if strings.Contains(strings.ToLower(a.Title), lower) || strings.Contains(strings.ToLower(a.Description), lower) {
		return true
	}
	return withTags && lo.Contains(a.Tags, lower)
}

func (m *memActivities) SearchApproved(_ context.Context, q *types.CatalogQuery) ([]*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	var out []*model.Activity
	for _, a := range m.sorted() {
		if a.Status != constant.StatusApproved ||
			!overlaps(a.AgeGroup, q.Ages, true) ||
			!overlaps(a.Category, q.Categories, false) ||
			!overlaps(a.GroupSize, q.GroupSizes, true) ||
			(q.Materials != "" && q.Materials != constant.UniversalTag && a.Materials != q.Materials) ||
			!matchesTerm(a, q.Term, true) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memActivities) GetActivityByID(_ context.Context, id int64) (*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return a, nil
}

func (m *memActivities) GetApprovedActivityByID(ctx context.Context, id int64) (*model.Activity, error) {
	a, err := m.GetActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsApproved() {
		return nil, apierr.ErrNotFound
	}
	return a, nil
}

func (m *memActivities) CreateActivity(_ context.Context, a *model.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	a.ActivityID = m.seq
	a.CreatedAt = epoch.Add(time.Duration(m.seq) * time.Minute)
	m.rows[a.ActivityID] = a
	return nil
}

// sorted returns the rows newest first.
func (m *memActivities) sorted() []*model.Activity {
	rows := lo.Values(m.rows)
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ActivityID > rows[j].ActivityID
	})
	return rows
}

func (m *memActivities) ListActivitiesPage(_ context.Context, status string, after *cursor.Cursor, limit int, term string) ([]*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Activity, 0, limit)
	for _, a := range m.sorted() {
		if status != "" && a.Status != status {
			continue
		}
		if !matchesTerm(a, term, false) {
			continue
		}
		if after != nil {
			older := a.CreatedAt.Before(after.CreatedAt) ||
				(a.CreatedAt.Equal(after.CreatedAt) && a.ActivityID < after.ID)
			if !older {
				continue
			}
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memActivities) UpdateActivityStatus(_ context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return apierr.ErrNotFound
	}
	a.Status = status
	return nil
}

func (m *memActivities) PatchActivity(_ context.Context, id int64, patch *types.ActivityPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return apierr.ErrNotFound
	}
	if patch.Title.Valid {
		a.Title = patch.Title.String
	}
	if patch.Description.Valid {
		a.Description = patch.Description.String
	}
	if patch.MakeItEasier.Valid {
		a.MakeItEasier = patch.MakeItEasier
	}
	if patch.MakeItHarder.Valid {
		a.MakeItHarder = patch.MakeItHarder
	}
	return nil
}

func (m *memActivities) DeleteActivity(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apierr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memActivities) IncrementPopularity(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incremented = append(m.incremented, ids)
	for _, id := range ids {
		if a, ok := m.rows[id]; ok {
			a.Popularity++
		}
	}
	return nil
}

type favoriteKey struct {
	accountId  int64
	activityId int64
}

// memFavorites enforces the composite primary key and the activity foreign key, and lists only approved rows.
type memFavorites struct {
	mu         sync.Mutex
	activities *memActivities
	rows       map[favoriteKey]time.Time
	tick       int
}

func newMemFavorites(activities *memActivities) *memFavorites {
	return &memFavorites{activities: activities, rows: make(map[favoriteKey]time.Time)}
}

func (m *memFavorites) CreateFavorite(ctx context.Context, f *model.Favorite) error {
	if _, err := m.activities.GetActivityByID(ctx, f.ActivityID); err != nil {
		return apierr.ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := favoriteKey{f.AccountID, f.ActivityID}
	if _, ok := m.rows[key]; ok {
		return apierr.ErrConflict
	}
	m.tick++
	m.rows[key] = epoch.Add(time.Duration(m.tick) * time.Second)
	return nil
}

func (m *memFavorites) DeleteFavorite(_ context.Context, accountId, activityId int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, favoriteKey{accountId, activityId})
	return nil
}

func (m *memFavorites) GetFavoriteActivities(ctx context.Context, accountId int64) ([]*model.Activity, error) {
	m.mu.Lock()
	keys := lo.Filter(lo.Keys(m.rows), func(k favoriteKey, _ int) bool { return k.accountId == accountId })
	sort.Slice(keys, func(i, j int) bool { return m.rows[keys[i]].After(m.rows[keys[j]]) })
	m.mu.Unlock()

	var out []*model.Activity
	for _, k := range keys {
		a, err := m.activities.GetApprovedActivityByID(ctx, k.activityId)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memFavorites) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memAccounts struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]*model.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: make(map[int64]*model.Account)}
}

func (m *memAccounts) CreateAccount(_ context.Context, a *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Email == a.Email {
			return apierr.ErrConflict
		}
	}
	m.seq++
	a.AccountID = m.seq
	a.CreatedAt = epoch
	m.rows[a.AccountID] = a
	return nil
}

func (m *memAccounts) GetAccountByID(_ context.Context, id int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (m *memAccounts) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apierr.ErrNotFound
}

func (m *memAccounts) UpdateAccountRole(_ context.Context, email, role string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows {
		if a.Email == email {
			a.Role = role
			copied := *a
			return &copied, nil
		}
	}
	return nil, apierr.ErrNotFound
}

// uncachedAccounts is the account service minus the redis cache in front of account lookups.
type uncachedAccounts struct {
	*Account
}

func (u uncachedAccounts) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	return u.AccountStore.GetAccountByID(ctx, id)
}

type memSessions struct {
	mu   sync.Mutex
	rows map[string]model.Session
}

func newMemSessions() *memSessions {
	return &memSessions{rows: make(map[string]model.Session)}
}

func (m *memSessions) SaveSession(_ context.Context, token string, s *model.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[token] = *s
	return nil
}

func (m *memSessions) GetSession(_ context.Context, token string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[token]
	if !ok {
		return nil, apierr.ErrNotFound
	}
	return &s, nil
}

func (m *memSessions) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, token)
	return nil
}

type published struct {
	subject string
	payload any
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []published
	err      error
}

func (p *fakePublisher) Publish(subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, published{subject: subject, payload: payload})
	return nil
}

func (p *fakePublisher) on(subject string) []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return lo.Filter(p.messages, func(m published, _ int) bool { return m.subject == subject })
}

var (
	contributor = &model.Identity{AccountID: 11, Email: "c@example.org", Role: constant.RoleContributor}
	moderator   = &model.Identity{AccountID: 12, Email: "m@example.org", Role: constant.RoleModerator}
	admin       = &model.Identity{AccountID: 13, Email: "a@example.org", Role: constant.RoleAdmin}
)

func seed(store *memActivities, status string, title string, category, ages, sizes []string) *model.Activity {
	a := &model.Activity{
		Title:       title,
		Description: title + " description",
		Category:    category,
		AgeGroup:    ages,
		GroupSize:   sizes,
		Tags:        []string{},
		Materials:   constant.MaterialsLowPrep,
		Status:      status,
	}
	_ = store.CreateActivity(context.Background(), a)
	return a
}

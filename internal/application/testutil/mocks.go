// Package testutil provides in-memory repositories for testing the
// application layer without a database.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/shared/query"
)

// TxRunner runs fn inline and counts invocations.
type TxRunner struct {
	Calls int
	Err   error
}

func (r *TxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.Calls++
	if r.Err != nil {
		return r.Err
	}
	return fn(ctx)
}

// MockPlanRepository is an in-memory plan.Repository.
type MockPlanRepository struct {
	mu     sync.RWMutex
	plans  map[uint]*plan.Plan
	nextID uint

	// Error injection for testing
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	Locked []uint
}

func NewMockPlanRepository() *MockPlanRepository {
	return &MockPlanRepository{plans: make(map[uint]*plan.Plan)}
}

func (m *MockPlanRepository) Create(_ context.Context, p *plan.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := p.SetID(m.nextID); err != nil {
		return err
	}
	c := *p
	m.plans[p.ID()] = &c
	return nil
}

func (m *MockPlanRepository) Update(_ context.Context, p *plan.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.plans[p.ID()]; !ok {
		return plan.ErrPlanNotFound
	}
	c := *p
	m.plans[p.ID()] = &c
	return nil
}

func (m *MockPlanRepository) Delete(_ context.Context, planID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.plans, planID)
	return nil
}

func (m *MockPlanRepository) GetByID(_ context.Context, planID uint) (*plan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.plans[planID]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (m *MockPlanRepository) GetByIDForUpdate(ctx context.Context, planID uint) (*plan.Plan, error) {
	m.mu.Lock()
	m.Locked = append(m.Locked, planID)
	m.mu.Unlock()
	return m.GetByID(ctx, planID)
}

func (m *MockPlanRepository) GetByIDs(ctx context.Context, planIDs []uint) ([]*plan.Plan, error) {
	out := make([]*plan.Plan, 0, len(planIDs))
	for _, id := range planIDs {
		p, err := m.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPlanRepository) ListByOwner(_ context.Context, ownerID uint) ([]*plan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	out := make([]*plan.Plan, 0)
	for _, p := range m.plans {
		if p.OwnerID() == ownerID {
			c := *p
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out, nil
}

func (m *MockPlanRepository) GetByOwnerAndStart(_ context.Context, ownerID uint, startDate time.Time) (*plan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, p := range m.plans {
		if p.OwnerID() == ownerID && p.StartsOn(startDate) {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored plans.
func (m *MockPlanRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plans)
}

// MockMemberRepository is an in-memory plan.MemberRepository enforcing one
// row per (plan, member).
type MockMemberRepository struct {
	mu      sync.RWMutex
	members map[uint]*plan.PlanMember
	nextID  uint

	GetErr    error
	CreateErr error
	DeleteErr error
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{members: make(map[uint]*plan.PlanMember)}
}

func (m *MockMemberRepository) Create(_ context.Context, pm *plan.PlanMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, existing := range m.members {
		if existing.PlanID() == pm.PlanID() && existing.MemberID() == pm.MemberID() {
			return plan.ErrAlreadyInvited
		}
	}
	m.nextID++
	if err := pm.SetID(m.nextID); err != nil {
		return err
	}
	c := *pm
	m.members[pm.ID()] = &c
	return nil
}

func (m *MockMemberRepository) Update(_ context.Context, pm *plan.PlanMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.members[pm.ID()]; !ok {
		return plan.ErrMembershipNotFound
	}
	c := *pm
	m.members[pm.ID()] = &c
	return nil
}

func (m *MockMemberRepository) GetByPlanAndMember(_ context.Context, planID, memberID uint) (*plan.PlanMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, pm := range m.members {
		if pm.PlanID() == planID && pm.MemberID() == memberID {
			c := *pm
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockMemberRepository) list(match func(*plan.PlanMember) bool) []*plan.PlanMember {
	out := make([]*plan.PlanMember, 0)
	for _, pm := range m.members {
		if match(pm) {
			c := *pm
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (m *MockMemberRepository) ListByMember(_ context.Context, memberID uint) ([]*plan.PlanMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.list(func(pm *plan.PlanMember) bool { return pm.MemberID() == memberID }), nil
}

func (m *MockMemberRepository) ListByPlan(_ context.Context, planID uint) ([]*plan.PlanMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.list(func(pm *plan.PlanMember) bool { return pm.PlanID() == planID }), nil
}

func (m *MockMemberRepository) ExistsAccepted(ctx context.Context, planID, memberID uint) (bool, error) {
	pm, err := m.GetByPlanAndMember(ctx, planID, memberID)
	if err != nil {
		return false, err
	}
	return pm != nil && pm.Status() == vo.StatusAccepted, nil
}

func (m *MockMemberRepository) DeleteByPlan(_ context.Context, planID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for id, pm := range m.members {
		if pm.PlanID() == planID {
			delete(m.members, id)
		}
	}
	return nil
}

// Seed stores a membership in the given status and returns it.
func (m *MockMemberRepository) Seed(planID, memberID uint, status vo.InvitationStatus) *plan.PlanMember {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pm, err := plan.ReconstructPlanMember(m.nextID, planID, memberID, status, now, now)
	if err != nil {
		panic(err)
	}
	m.members[pm.ID()] = pm
	c := *pm
	return &c
}

// MockEntryRepository is an in-memory itinerary.Repository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[uint]*itinerary.Entry
	nextID  uint

	GetErr    error
	CreateErr error
	DeleteErr error

	// Calls records repository method names in call order.
	Calls []string
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{entries: make(map[uint]*itinerary.Entry)}
}

func (m *MockEntryRepository) record(name string) {
	m.Calls = append(m.Calls, name)
}

func (m *MockEntryRepository) Create(_ context.Context, e *itinerary.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Create")
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.nextID++
	if err := e.SetID(m.nextID); err != nil {
		return err
	}
	c := *e
	m.entries[e.ID()] = &c
	return nil
}

func (m *MockEntryRepository) Update(_ context.Context, e *itinerary.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Update")
	if _, ok := m.entries[e.ID()]; !ok {
		return itinerary.ErrEntryNotFound
	}
	c := *e
	m.entries[e.ID()] = &c
	return nil
}

func (m *MockEntryRepository) Delete(_ context.Context, entryID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Delete")
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.entries[entryID]; !ok {
		return itinerary.ErrEntryNotFound
	}
	delete(m.entries, entryID)
	return nil
}

func (m *MockEntryRepository) GetByID(_ context.Context, entryID uint) (*itinerary.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	e, ok := m.entries[entryID]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (m *MockEntryRepository) ListByPlan(_ context.Context, planID uint) ([]*itinerary.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	out := make([]*itinerary.Entry, 0)
	for _, e := range m.entries {
		if e.PlanID() == planID {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime().Before(out[j].StartTime()) })
	return out, nil
}

func (m *MockEntryRepository) ExistsOverlapping(_ context.Context, planID uint, start, end time.Time, excludeID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ExistsOverlapping")
	if m.GetErr != nil {
		return false, m.GetErr
	}
	for _, e := range m.entries {
		if e.PlanID() == planID && e.ID() != excludeID && e.Intersects(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockEntryRepository) ExistsOutside(_ context.Context, planID uint, start, end time.Time) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return false, m.GetErr
	}
	for _, e := range m.entries {
		if e.PlanID() == planID && (e.StartTime().Before(start) || e.EndTime().After(end)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockEntryRepository) DeleteByPlan(_ context.Context, planID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteByPlan")
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for id, e := range m.entries {
		if e.PlanID() == planID {
			delete(m.entries, id)
		}
	}
	return nil
}

// Count returns the number of stored entries.
func (m *MockEntryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// MockBookmarkRepository is an in-memory bookmark.Repository.
type MockBookmarkRepository struct {
	mu        sync.RWMutex
	bookmarks map[uint]*bookmark.Bookmark
	nextID    uint

	GetErr error
}

func NewMockBookmarkRepository() *MockBookmarkRepository {
	return &MockBookmarkRepository{bookmarks: make(map[uint]*bookmark.Bookmark)}
}

func (m *MockBookmarkRepository) Create(_ context.Context, b *bookmark.Bookmark) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.bookmarks {
		if existing.MemberID() == b.MemberID() && existing.PlaceID() == b.PlaceID() {
			return bookmark.ErrBookmarkExists
		}
	}
	m.nextID++
	if err := b.SetID(m.nextID); err != nil {
		return err
	}
	c := *b
	m.bookmarks[b.ID()] = &c
	return nil
}

func (m *MockBookmarkRepository) Update(_ context.Context, b *bookmark.Bookmark) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookmarks[b.ID()]; !ok {
		return bookmark.ErrBookmarkNotFound
	}
	c := *b
	m.bookmarks[b.ID()] = &c
	return nil
}

func (m *MockBookmarkRepository) GetByID(_ context.Context, bookmarkID uint) (*bookmark.Bookmark, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	b, ok := m.bookmarks[bookmarkID]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (m *MockBookmarkRepository) GetByMemberAndPlace(_ context.Context, memberID, placeID uint) (*bookmark.Bookmark, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, b := range m.bookmarks {
		if b.MemberID() == memberID && b.PlaceID() == placeID {
			c := *b
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockBookmarkRepository) ListActiveByMember(_ context.Context, memberID uint, page query.PageFilter) ([]*bookmark.Bookmark, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return nil, 0, m.GetErr
	}
	active := make([]*bookmark.Bookmark, 0)
	for _, b := range m.bookmarks {
		if b.MemberID() == memberID && b.IsActive() {
			c := *b
			active = append(active, &c)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].CreatedAt().Equal(active[j].CreatedAt()) {
			return active[i].ID() > active[j].ID()
		}
		return active[i].CreatedAt().After(active[j].CreatedAt())
	})
	total := int64(len(active))
	page = page.Normalize()
	from := page.Offset()
	if from > len(active) {
		from = len(active)
	}
	to := from + page.Limit()
	if to > len(active) {
		to = len(active)
	}
	return active[from:to], total, nil
}

// MockPlaceLookup serves places from a map.
type MockPlaceLookup struct {
	Places map[uint]*place.Place
	Err    error
	Hits   int
}

func NewMockPlaceLookup(places ...*place.Place) *MockPlaceLookup {
	m := &MockPlaceLookup{Places: make(map[uint]*place.Place)}
	for _, p := range places {
		m.Places[p.ID] = p
	}
	return m
}

func (m *MockPlaceLookup) GetByID(_ context.Context, placeID uint) (*place.Place, error) {
	m.Hits++
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Places[placeID]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

// Package testutil provides in-memory implementations of the repositories and
// collaborators used by the application layer tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"jirant/internal/domain/permission/value_objects"
	"jirant/internal/domain/relationship"
	"jirant/internal/domain/ticket"
	vo "jirant/internal/domain/ticket/valueobjects"
	"jirant/internal/domain/tickettemplate"
	apperrors "jirant/internal/shared/errors"
)

// MockTicketRepository keeps tickets in memory keyed by SID.
type MockTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*ticket.Ticket
	nextID  uint

	createError error
	updateError error
	getError    error
	countError  error
	creates     int
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{tickets: make(map[string]*ticket.Ticket)}
}

func (m *MockTicketRepository) SetCreateError(err error) { m.createError = err }
func (m *MockTicketRepository) SetUpdateError(err error) { m.updateError = err }
func (m *MockTicketRepository) SetGetError(err error)    { m.getError = err }
func (m *MockTicketRepository) SetCountError(err error)  { m.countError = err }

// CreateCount is the number of successful Create calls.
func (m *MockTicketRepository) CreateCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creates
}

// Len is the number of stored tickets.
func (m *MockTicketRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tickets)
}

// Seed stores t as if it had been created earlier.
func (m *MockTicketRepository) Seed(t *ticket.Ticket) *ticket.Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID() == 0 {
		m.nextID++
		_ = t.SetID(m.nextID)
	} else if t.ID() > m.nextID {
		m.nextID = t.ID()
	}
	m.tickets[t.SID()] = t
	return t
}

func (m *MockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.createError != nil {
		return m.createError
	}
	m.Seed(t)
	m.mu.Lock()
	m.creates++
	m.mu.Unlock()
	return nil
}

func (m *MockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tickets[t.SID()]; !ok {
		return apperrors.NewNotFoundError("ticket not found", t.SID())
	}
	m.tickets[t.SID()] = t
	return nil
}

func (m *MockTicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tickets[sid]
	if !ok {
		return nil, apperrors.NewNotFoundError("ticket not found", sid)
	}
	return t, nil
}

func (m *MockTicketRepository) GetBySIDs(ctx context.Context, sids []string) (map[string]*ticket.Ticket, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*ticket.Ticket, len(sids))
	for _, sid := range sids {
		if t, ok := m.tickets[sid]; ok {
			out[sid] = t
		}
	}
	return out, nil
}

func (m *MockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*ticket.Ticket
	for _, t := range m.tickets {
		if filter.CreatedBy != "" && t.CreatedBy() != filter.CreatedBy {
			continue
		}
		if filter.Status != nil {
			if t.Status() != *filter.Status {
				continue
			}
		} else if t.IsDeleted() {
			continue
		}
		if filter.TicketType != "" && t.TicketType() != filter.TicketType {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID() > matched[j].ID() })
	total := int64(len(matched))

	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start < 0 {
			start = 0
		}
		if start >= len(matched) {
			return []*ticket.Ticket{}, total, nil
		}
		end := start + filter.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (m *MockTicketRepository) CountByType(ctx context.Context, name string, ownerID string, templateSID string, excludeDeleted bool) (int64, error) {
	if m.countError != nil {
		return 0, m.countError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, t := range m.tickets {
		byName := t.TicketType() == name && (ownerID == "" || t.CreatedBy() == ownerID)
		bySID := templateSID != "" && t.TemplateSID() == templateSID
		if !byName && !bySID {
			continue
		}
		if excludeDeleted && t.Status() == vo.StatusDeleted {
			continue
		}
		n++
	}
	return n, nil
}

// MockTemplateRepository keeps templates in memory and enforces the
// (owner scope, folded name) uniqueness like the real index.
type MockTemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]*tickettemplate.TicketTemplate
	nextID    uint

	createError error
	deleteError error
	deletes     int
}

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{templates: make(map[string]*tickettemplate.TicketTemplate)}
}

func (m *MockTemplateRepository) SetCreateError(err error) { m.createError = err }
func (m *MockTemplateRepository) SetDeleteError(err error) { m.deleteError = err }

func (m *MockTemplateRepository) DeleteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deletes
}

func (m *MockTemplateRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.templates)
}

func (m *MockTemplateRepository) conflicts(t *tickettemplate.TicketTemplate) bool {
	for sid, existing := range m.templates {
		if sid != t.SID() && existing.OwnerScope() == t.OwnerScope() && existing.NameKey() == t.NameKey() {
			return true
		}
	}
	return false
}

func (m *MockTemplateRepository) Create(ctx context.Context, t *tickettemplate.TicketTemplate) error {
	if m.createError != nil {
		return m.createError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conflicts(t) {
		return apperrors.NewDuplicateError("a ticket type with this name already exists", t.Name()).
			WithReason(apperrors.ReasonDuplicateName)
	}
	if t.ID() == 0 {
		m.nextID++
		_ = t.SetID(m.nextID)
	}
	m.templates[t.SID()] = t
	return nil
}

func (m *MockTemplateRepository) Update(ctx context.Context, t *tickettemplate.TicketTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[t.SID()]; !ok {
		return apperrors.NewNotFoundError("ticket type not found", t.SID())
	}
	if m.conflicts(t) {
		return apperrors.NewDuplicateError("a ticket type with this name already exists", t.Name()).
			WithReason(apperrors.ReasonDuplicateName)
	}
	m.templates[t.SID()] = t
	return nil
}

func (m *MockTemplateRepository) Delete(ctx context.Context, sid string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.templates[sid]; !ok {
		return apperrors.NewNotFoundError("ticket type not found", sid)
	}
	delete(m.templates, sid)
	m.deletes++
	return nil
}

func (m *MockTemplateRepository) GetBySID(ctx context.Context, sid string) (*tickettemplate.TicketTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.templates[sid]
	if !ok {
		return nil, apperrors.NewNotFoundError("ticket type not found", sid)
	}
	return t, nil
}

func (m *MockTemplateRepository) List(ctx context.Context, filter tickettemplate.TemplateFilter) ([]*tickettemplate.TicketTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*tickettemplate.TicketTemplate
	for _, t := range m.templates {
		switch {
		case t.IsSystem() && (filter.IncludeSystem || filter.OwnerID == ""):
			out = append(out, t)
		case filter.OwnerID != "" && t.IsOwnedBy(filter.OwnerID):
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier() != out[j].Tier() {
			return out[i].Tier() < out[j].Tier()
		}
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (m *MockTemplateRepository) ExistsByName(ctx context.Context, ownerScope, nameKey, excludeSID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for sid, t := range m.templates {
		if sid != excludeSID && t.OwnerScope() == ownerScope && t.NameKey() == nameKey {
			return true, nil
		}
	}
	return false, nil
}

// MockRelationshipRepository enforces one edge per normalized pair under a
// lock, standing in for the unique pair index.
type MockRelationshipRepository struct {
	mu     sync.Mutex
	byPair map[relationship.Pair]*relationship.Relationship
	nextID uint

	createErrorFor map[string]error
	findError      error
}

func NewMockRelationshipRepository() *MockRelationshipRepository {
	return &MockRelationshipRepository{
		byPair:         make(map[relationship.Pair]*relationship.Relationship),
		createErrorFor: make(map[string]error),
	}
}

// FailCreateTouching makes Create fail with err for any edge touching sid.
func (m *MockRelationshipRepository) FailCreateTouching(sid string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErrorFor[sid] = err
}

func (m *MockRelationshipRepository) SetFindError(err error) { m.findError = err }

func (m *MockRelationshipRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byPair)
}

func (m *MockRelationshipRepository) Create(ctx context.Context, rel *relationship.Relationship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for sid, err := range m.createErrorFor {
		if rel.Pair().Contains(sid) {
			return err
		}
	}
	if _, exists := m.byPair[rel.Pair()]; exists {
		return apperrors.NewDuplicateEdgeError(rel.Pair().Low, rel.Pair().High)
	}
	m.nextID++
	if err := rel.SetID(m.nextID); err != nil {
		return err
	}
	m.byPair[rel.Pair()] = rel
	return nil
}

func (m *MockRelationshipRepository) FindBetween(ctx context.Context, pair relationship.Pair) (*relationship.Relationship, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byPair[pair], nil
}

func (m *MockRelationshipRepository) FindByTicket(ctx context.Context, sid string) ([]*relationship.Relationship, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*relationship.Relationship
	for pair, rel := range m.byPair {
		if pair.Contains(sid) {
			out = append(out, rel)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *MockRelationshipRepository) Delete(ctx context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for pair, rel := range m.byPair {
		if rel.SID() == sid {
			delete(m.byPair, pair)
			return nil
		}
	}
	return apperrors.NewNotFoundError("relationship not found", sid)
}

// MockTextGenerator records every request and answers through CompleteFunc.
type MockTextGenerator struct {
	mu           sync.Mutex
	Requests     []ticket.CompletionRequest
	CompleteFunc func(ctx context.Context, req ticket.CompletionRequest) (string, error)
}

func (m *MockTextGenerator) Complete(ctx context.Context, req ticket.CompletionRequest) (string, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "", nil
}

// MockPermissionChecker grants "role resource action" triples added with Allow.
type MockPermissionChecker struct {
	granted map[string]bool
	err     error
}

func NewMockPermissionChecker() *MockPermissionChecker {
	return &MockPermissionChecker{granted: make(map[string]bool)}
}

func (m *MockPermissionChecker) Allow(role string, resource value_objects.Resource, action value_objects.Action) *MockPermissionChecker {
	m.granted[strings.Join([]string{role, resource.String(), action.String()}, " ")] = true
	return m
}

func (m *MockPermissionChecker) SetError(err error) { m.err = err }

func (m *MockPermissionChecker) Can(role string, resource value_objects.Resource, action value_objects.Action) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.granted[strings.Join([]string{role, resource.String(), action.String()}, " ")], nil
}

// AdminChecker grants the default admin capabilities.
func AdminChecker() *MockPermissionChecker {
	return NewMockPermissionChecker().
		Allow("admin", value_objects.ResourceSystemTemplate, value_objects.ActionWrite).
		Allow("admin", value_objects.ResourceTicketTypeUsage, value_objects.ActionReadAll).
		Allow("admin", value_objects.ResourceTicket, value_objects.ActionManageAll).
		Allow("admin", value_objects.ResourceTicketType, value_objects.ActionManageAll).
		Allow("admin", value_objects.ResourceRelationship, value_objects.ActionManageAll)
}

// InlineTx runs the unit of work directly and counts how often it was used.
type InlineTx struct {
	mu    sync.Mutex
	Calls int
}

func (t *InlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.Calls++
	t.mu.Unlock()
	return fn(ctx)
}

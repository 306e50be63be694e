package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

// Store is an in-memory implementation of every repository port. A single
// mutex serialises writes, which gives AwardApplication the same
// all-or-nothing behaviour the Postgres transaction has. It backs tests and
// the memory store backend.
type Store struct {
	mu sync.RWMutex

	campaigns    map[uuid.UUID]domain.Campaign
	applications map[uuid.UUID]domain.Application
	deliverables map[uuid.UUID]domain.Deliverable
	reports      map[uuid.UUID]domain.Report
	transactions map[uuid.UUID]domain.Transaction
	companies    map[uuid.UUID]domain.CompanyProfile
	clubs        map[uuid.UUID]domain.ClubProfile
	reviews      map[uuid.UUID]domain.Review
}

func NewStore() *Store {
	return &Store{
		campaigns:    make(map[uuid.UUID]domain.Campaign),
		applications: make(map[uuid.UUID]domain.Application),
		deliverables: make(map[uuid.UUID]domain.Deliverable),
		reports:      make(map[uuid.UUID]domain.Report),
		transactions: make(map[uuid.UUID]domain.Transaction),
		companies:    make(map[uuid.UUID]domain.CompanyProfile),
		clubs:        make(map[uuid.UUID]domain.ClubProfile),
		reviews:      make(map[uuid.UUID]domain.Review),
	}
}

// PutCompany inserts or replaces a company profile.
func (s *Store) PutCompany(c domain.CompanyProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = c
}

// PutClub inserts or replaces a club profile. A missing rank defaults to C.
func (s *Store) PutClub(c domain.ClubProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Rank == "" {
		c.Rank = domain.RankC
	}
	s.clubs[c.ID] = c
}

// Campaigns

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	cp.Requirements = slices.Clone(c.Requirements)
	s.campaigns[c.ID] = cp
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	c.Requirements = slices.Clone(c.Requirements)
	return &c, nil
}

func (s *Store) ListCampaigns(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if filter.CompanyID != nil && c.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		c.Requirements = slices.Clone(c.Requirements)
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return page(items, filter.Offset, filter.Limit), nil
}

func (s *Store) TransitionCampaign(_ context.Context, id uuid.UUID, from, to domain.CampaignStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return port.ErrCampaignNotFound
	}
	if c.Status != from {
		return port.ErrStatusChanged
	}
	c.Status = to
	c.UpdatedAt = time.Now().UTC()
	s.campaigns[id] = c
	return nil
}

// Applications

func (s *Store) CreateApplication(_ context.Context, a *domain.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.applications {
		if existing.CampaignID == a.CampaignID && existing.ClubID == a.ClubID {
			return port.ErrDuplicateApplication
		}
	}
	s.applications[a.ID] = *a
	return nil
}

func (s *Store) GetApplication(_ context.Context, id uuid.UUID) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[id]
	if !ok {
		return nil, port.ErrApplicationNotFound
	}
	return &a, nil
}

func (s *Store) ListApplications(_ context.Context, campaignID uuid.UUID) ([]domain.Application, error) {
	return s.filterApplications(func(a domain.Application) bool { return a.CampaignID == campaignID }), nil
}

func (s *Store) ListApplicationsByClub(_ context.Context, clubID uuid.UUID) ([]domain.Application, error) {
	return s.filterApplications(func(a domain.Application) bool { return a.ClubID == clubID }), nil
}

func (s *Store) AwardedApplication(_ context.Context, campaignID uuid.UUID) (*domain.Application, error) {
	items := s.filterApplications(func(a domain.Application) bool {
		return a.CampaignID == campaignID && a.Status == domain.ApplicationAwarded
	})
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (s *Store) filterApplications(keep func(domain.Application) bool) []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Application, 0)
	for _, a := range s.applications {
		if keep(a) {
			items = append(items, a)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].SubmittedAt.Before(items[j].SubmittedAt)
	})
	return items
}

func (s *Store) AwardApplication(_ context.Context, campaignID, applicationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[campaignID]
	if !ok {
		return port.ErrCampaignNotFound
	}
	if c.Status != domain.CampaignOpen {
		return port.ErrCampaignNotOpen
	}
	target, ok := s.applications[applicationID]
	if !ok || target.CampaignID != campaignID {
		return port.ErrApplicationNotFound
	}

	for id, a := range s.applications {
		if a.CampaignID != campaignID {
			continue
		}
		if id == applicationID {
			a.Status = domain.ApplicationAwarded
		} else {
			a.Status = domain.ApplicationNotSelected
		}
		s.applications[id] = a
	}
	c.Status = domain.CampaignInProgress
	c.UpdatedAt = time.Now().UTC()
	s.campaigns[campaignID] = c
	return nil
}

// Deliverables and reports

func (s *Store) CreateDeliverable(_ context.Context, d *domain.Deliverable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliverables[d.ID] = *d
	return nil
}

func (s *Store) ListDeliverables(_ context.Context, applicationID uuid.UUID) ([]domain.Deliverable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Deliverable, 0)
	for _, d := range s.deliverables {
		if d.ApplicationID == applicationID {
			items = append(items, d)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UploadedAt.Before(items[j].UploadedAt)
	})
	return items, nil
}

func (s *Store) SaveReport(_ context.Context, r *domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.CampaignID] = *r
	return nil
}

func (s *Store) GetReport(_ context.Context, campaignID uuid.UUID) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[campaignID]
	if !ok {
		return nil, port.ErrReportNotFound
	}
	return &r, nil
}

// Ledger

func (s *Store) CreateTransaction(_ context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[tx.ID] = *tx
	return nil
}

func (s *Store) GetTransaction(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.transactions[id]
	if !ok {
		return nil, port.ErrTransactionNotFound
	}
	return &tx, nil
}

func (s *Store) SettleTransaction(_ context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return port.ErrTransactionNotFound
	}
	if tx.Status != domain.TransactionPending {
		return port.ErrTransactionSettled
	}
	tx.Status = status
	s.transactions[id] = tx
	return nil
}

func (s *Store) SettleWithTier(_ context.Context, id, companyID uuid.UUID, tier domain.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return port.ErrTransactionNotFound
	}
	if tx.Status != domain.TransactionPending {
		return port.ErrTransactionSettled
	}
	c, ok := s.companies[companyID]
	if !ok {
		return port.ErrCompanyNotFound
	}
	tx.Status = domain.TransactionSuccess
	s.transactions[id] = tx
	c.Tier = tier
	s.companies[companyID] = c
	return nil
}

func (s *Store) ListTransactions(_ context.Context, companyID uuid.UUID) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.CompanyID == companyID {
			items = append(items, tx)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) HasSuccessfulFindersFee(_ context.Context, companyID, campaignID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.CompanyID == companyID &&
			tx.CampaignID != nil && *tx.CampaignID == campaignID &&
			tx.Type == domain.TransactionFindersFee &&
			tx.Status == domain.TransactionSuccess {
			return true, nil
		}
	}
	return false, nil
}

// Profiles

func (s *Store) GetCompany(_ context.Context, id uuid.UUID) (*domain.CompanyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, port.ErrCompanyNotFound
	}
	return &c, nil
}

func (s *Store) SetCompanyTier(_ context.Context, id uuid.UUID, tier domain.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return port.ErrCompanyNotFound
	}
	c.Tier = tier
	s.companies[id] = c
	return nil
}

func (s *Store) GetClub(_ context.Context, id uuid.UUID) (*domain.ClubProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clubs[id]
	if !ok {
		return nil, port.ErrClubNotFound
	}
	return &c, nil
}

func (s *Store) ListClubIDs(_ context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(s.clubs))
	for id := range s.clubs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

func (s *Store) SetClubRank(_ context.Context, id uuid.UUID, rank domain.Rank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.clubs[id]
	if !ok {
		return port.ErrClubNotFound
	}
	c.Rank = rank
	s.clubs[id] = c
	return nil
}

// Reviews

func (s *Store) CreateReview(_ context.Context, r *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reviews {
		if existing.ReviewerID == r.ReviewerID && existing.CampaignID == r.CampaignID {
			return port.ErrDuplicateReview
		}
	}
	s.reviews[r.ID] = *r
	return nil
}

func (s *Store) ListReviewsSince(_ context.Context, clubID uuid.UUID, since time.Time) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if r.RevieweeID == clubID && !r.CreatedAt.Before(since) {
			items = append(items, r)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// PutReview stores a review as is, bypassing the uniqueness rule. It lets
// tests and seeding place reviews at arbitrary times.
func (s *Store) PutReview(r domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[r.ID] = r
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"
	"errors"
	"strings"
	"time"
)

var errNotFound = errors.New("record not found")

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*model.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Login, login) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	var users []model.User
	for id := uint(1); id < r.nextID; id++ {
		if user, ok := r.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeSessionRepo struct {
	sessions map[string]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *model.Session) error {
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *session
	return &clone, nil
}

func (r *fakeSessionRepo) GetValidByUserID(_ context.Context, userID uint) (*model.Session, error) {
	var latest *model.Session
	for _, session := range r.sessions {
		if session.UserID != userID || !session.ExpiresAt.After(time.Now()) {
			continue
		}
		if latest == nil || session.CreatedAt.After(latest.CreatedAt) {
			latest = session
		}
	}
	if latest == nil {
		return nil, errNotFound
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) (bool, error) {
	removed := false
	for id, session := range r.sessions {
		if !session.ExpiresAt.After(time.Now()) {
			delete(r.sessions, id)
			removed = true
		}
	}
	return removed, nil
}

type fakeMaterialRepo struct {
	materials map[uint]*model.Material
	nextID    uint
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[uint]*model.Material), nextID: 1}
}

func (r *fakeMaterialRepo) Create(_ context.Context, m *model.Material) error {
	m.ID = r.nextID
	r.nextID++
	clone := *m
	r.materials[m.ID] = &clone
	return nil
}

func (r *fakeMaterialRepo) GetByID(_ context.Context, id uint) (*model.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *fakeMaterialRepo) List(_ context.Context) ([]model.Material, error) {
	var out []model.Material
	for id := uint(1); id < r.nextID; id++ {
		if m, ok := r.materials[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) Update(_ context.Context, m *model.Material) error {
	if _, ok := r.materials[m.ID]; !ok {
		return errNotFound
	}
	clone := *m
	r.materials[m.ID] = &clone
	return nil
}

func (r *fakeMaterialRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.materials[id]; !ok {
		return false, nil
	}
	delete(r.materials, id)
	return true, nil
}

type fakeSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uint]*model.Supplier), nextID: 1}
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	s.ID = r.nextID
	r.nextID++
	clone := *s
	r.suppliers[s.ID] = &clone
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.suppliers[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return errNotFound
	}
	clone := *s
	r.suppliers[s.ID] = &clone
	return nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.suppliers[id]; !ok {
		return false, nil
	}
	delete(r.suppliers, id)
	return true, nil
}

type fakeSupplyRepo struct {
	supplies map[uint]*model.Supply
	nextID   uint
}

func newFakeSupplyRepo() *fakeSupplyRepo {
	return &fakeSupplyRepo{supplies: make(map[uint]*model.Supply), nextID: 1}
}

func (r *fakeSupplyRepo) Create(_ context.Context, s *model.Supply) error {
	s.ID = r.nextID
	r.nextID++
	clone := *s
	r.supplies[s.ID] = &clone
	return nil
}

func (r *fakeSupplyRepo) GetByID(_ context.Context, id uint) (*model.Supply, error) {
	s, ok := r.supplies[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSupplyRepo) List(_ context.Context) ([]repository.SupplyRow, error) {
	var rows []repository.SupplyRow
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.supplies[id]; ok {
			rows = append(rows, repository.SupplyRow{
				ID: s.ID, MaterialID: s.MaterialID, SupplierID: s.SupplierID,
				Quantity: s.Quantity, Date: s.Date,
			})
		}
	}
	return rows, nil
}

func (r *fakeSupplyRepo) Update(_ context.Context, s *model.Supply) error {
	if _, ok := r.supplies[s.ID]; !ok {
		return errNotFound
	}
	clone := *s
	r.supplies[s.ID] = &clone
	return nil
}

func (r *fakeSupplyRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.supplies[id]; !ok {
		return false, nil
	}
	delete(r.supplies, id)
	return true, nil
}

type fakeSpendRepo struct {
	spends map[uint]*model.Spend
	nextID uint
}

func newFakeSpendRepo() *fakeSpendRepo {
	return &fakeSpendRepo{spends: make(map[uint]*model.Spend), nextID: 1}
}

func (r *fakeSpendRepo) Create(_ context.Context, s *model.Spend) error {
	s.ID = r.nextID
	r.nextID++
	clone := *s
	r.spends[s.ID] = &clone
	return nil
}

func (r *fakeSpendRepo) GetByID(_ context.Context, id uint) (*model.Spend, error) {
	s, ok := r.spends[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSpendRepo) List(_ context.Context) ([]repository.SpendRow, error) {
	var rows []repository.SpendRow
	for id := uint(1); id < r.nextID; id++ {
		if s, ok := r.spends[id]; ok {
			rows = append(rows, repository.SpendRow{
				ID: s.ID, MaterialID: s.MaterialID, Quantity: s.Quantity, Date: s.Date,
			})
		}
	}
	return rows, nil
}

func (r *fakeSpendRepo) Update(_ context.Context, s *model.Spend) error {
	if _, ok := r.spends[s.ID]; !ok {
		return errNotFound
	}
	clone := *s
	r.spends[s.ID] = &clone
	return nil
}

func (r *fakeSpendRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.spends[id]; !ok {
		return false, nil
	}
	delete(r.spends, id)
	return true, nil
}

type fakeReportRepo struct {
	reports  map[uint]*model.Report
	totals   []repository.MaterialTotal
	balances []repository.MaterialBalance
	nextID   uint
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uint]*model.Report), nextID: 1}
}

func (r *fakeReportRepo) Create(_ context.Context, report *model.Report) error {
	report.ID = r.nextID
	r.nextID++
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *fakeReportRepo) List(_ context.Context) ([]repository.ReportRow, error) {
	var rows []repository.ReportRow
	for id := uint(1); id < r.nextID; id++ {
		if rep, ok := r.reports[id]; ok {
			rows = append(rows, repository.ReportRow{
				ID: rep.ID, ReportType: rep.ReportType, ReportDate: rep.ReportDate,
				PeriodStart: rep.PeriodStart, PeriodEnd: rep.PeriodEnd, Content: rep.Content,
			})
		}
	}
	return rows, nil
}

func (r *fakeReportRepo) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := r.reports[id]; !ok {
		return false, nil
	}
	delete(r.reports, id)
	return true, nil
}

func (r *fakeReportRepo) SumSpentByMaterial(_ context.Context, _, _ *time.Time) ([]repository.MaterialTotal, error) {
	return r.totals, nil
}

func (r *fakeReportRepo) MaterialBalances(_ context.Context) ([]repository.MaterialBalance, error) {
	return r.balances, nil
}

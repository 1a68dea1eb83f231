package usecases

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/expohub/expohub/internal/application/hooks"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/lifecycle"
	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	svo "github.com/expohub/expohub/internal/domain/shared/valueobjects"
	"github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

var testNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

// memorySubjects stores entities of one family in memory.
type memorySubjects struct {
	items    map[uint]lifecycle.Subject
	notFound error
	saveErr  error
	saves    int
}

func newMemorySubjects(notFound error, items ...lifecycle.Subject) *memorySubjects {
	m := &memorySubjects{items: make(map[uint]lifecycle.Subject), notFound: notFound}
	for _, it := range items {
		m.items[it.Ref().ID()] = it
	}
	return m
}

func (m *memorySubjects) Load(_ context.Context, id uint) (lifecycle.Subject, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, m.notFound
	}
	return s, nil
}

func (m *memorySubjects) Save(_ context.Context, s lifecycle.Subject) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.items[s.Ref().ID()] = s
	return nil
}

// expiredLister serves ListPublishedEndedBefore from memorySubjects.
type expiredLister struct {
	exhibition.Repository
	subjects *memorySubjects
}

func (l *expiredLister) ListPublishedEndedBefore(_ context.Context, cutoff time.Time, limit int) ([]*exhibition.Exhibition, error) {
	var out []*exhibition.Exhibition
	for _, s := range l.subjects.items {
		e := s.(*exhibition.Exhibition)
		if e.Lifecycle().Status() == lvo.StatusPublished && e.Details().EndDate.Before(cutoff) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type recordingHook struct {
	events []lifecycle.Event
}

func (h *recordingHook) Name() string { return "recording" }

func (h *recordingHook) Handle(_ context.Context, e lifecycle.Event) error {
	h.events = append(h.events, e)
	return nil
}

func (h *recordingHook) types() []lifecycle.EventType {
	out := make([]lifecycle.EventType, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.Type)
	}
	return out
}

func newTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func newExhibitionAt(t *testing.T, id, ownerID uint, status lvo.Status, endDate time.Time) *exhibition.Exhibition {
	t.Helper()
	state, err := lifecycle.ReconstructState(lvo.KindExhibition, status, nil, nil, nil, "", "")
	require.NoError(t, err)
	e, err := exhibition.ReconstructExhibition(
		id, fmt.Sprintf("expo-%d", id), ownerID,
		exhibition.Details{
			Title:     "Expo",
			StartDate: endDate.Add(-48 * time.Hour),
			EndDate:   endDate,
			VenueName: "Expocentre",
			City:      "Moscow",
		},
		"", "", false, state, svo.Stats{}, 0, 1, testNow, testNow,
	)
	require.NoError(t, err)
	return e
}

func newCompanyAt(t *testing.T, id, ownerID uint, status lvo.Status) *company.Company {
	t.Helper()
	state, err := lifecycle.ReconstructState(lvo.KindCompany, status, nil, nil, nil, "", "")
	require.NoError(t, err)
	c, err := company.ReconstructCompany(
		id, fmt.Sprintf("company-%d", id), ownerID,
		company.Profile{Name: "Acme", Country: "Россия"},
		"", state, svo.Stats{}, 0, false, false, 1, testNow, testNow,
	)
	require.NoError(t, err)
	return c
}

type fixture struct {
	exhibitions *memorySubjects
	companies   *memorySubjects
	subjects    SubjectRepositories
	hook        *recordingHook
	dispatcher  *hooks.Dispatcher
	txManager   *db.TransactionManager
}

func newFixture(t *testing.T, items ...lifecycle.Subject) *fixture {
	t.Helper()
	f := &fixture{
		exhibitions: newMemorySubjects(exhibition.ErrExhibitionNotFound),
		companies:   newMemorySubjects(company.ErrCompanyNotFound),
		hook:        &recordingHook{},
		txManager:   newTxManager(t),
	}
	for _, it := range items {
		switch it.Ref().Kind() {
		case lvo.KindExhibition:
			f.exhibitions.items[it.Ref().ID()] = it
		case lvo.KindCompany:
			f.companies.items[it.Ref().ID()] = it
		}
	}
	f.subjects = SubjectRepositories{
		lvo.KindExhibition: f.exhibitions,
		lvo.KindCompany:    f.companies,
	}
	f.dispatcher = hooks.NewDispatcher(logger.NewNopLogger(), f.hook)
	return f
}

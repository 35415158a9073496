package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/parishbooks/parish_registry_app/internal/core/domain"
)

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, parishID, recordID string) (*domain.SacramentalRecord, error) {
	args := m.Called(ctx, parishID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SacramentalRecord), args.Error(1)
}

func (m *MockRecordRepository) FindRecordByKey(ctx context.Context, key domain.NaturalKey) (*domain.SacramentalRecord, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SacramentalRecord), args.Error(1)
}

func (m *MockRecordRepository) ListRecordsByParish(ctx context.Context, parishID string, sacramentType *domain.SacramentType) ([]domain.SacramentalRecord, error) {
	args := m.Called(ctx, parishID, sacramentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SacramentalRecord), args.Error(1)
}

func (m *MockRecordRepository) ApplyCorrection(ctx context.Context, original domain.SacramentalRecord, newRecord domain.SacramentalRecord, decree domain.Decree) (*domain.SacramentalRecord, error) {
	args := m.Called(ctx, original, newRecord, decree)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SacramentalRecord), args.Error(1)
}

func (m *MockRecordRepository) ApplyReplacement(ctx context.Context, newRecord domain.SacramentalRecord, decree domain.Decree) (*domain.SacramentalRecord, error) {
	args := m.Called(ctx, newRecord, decree)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SacramentalRecord), args.Error(1)
}

func (m *MockRecordRepository) AppendRecords(ctx context.Context, parishID string, records []domain.SacramentalRecord) (int, []domain.NaturalKey, error) {
	args := m.Called(ctx, parishID, records)
	var skipped []domain.NaturalKey
	if args.Get(1) != nil {
		skipped = args.Get(1).([]domain.NaturalKey)
	}
	return args.Int(0), skipped, args.Error(2)
}

// --- Mock DecreeRepository ---
type MockDecreeRepository struct {
	mock.Mock
}

func (m *MockDecreeRepository) FindDecreeByID(ctx context.Context, tenantID, decreeID string) (*domain.Decree, error) {
	args := m.Called(ctx, tenantID, decreeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Decree), args.Error(1)
}

func (m *MockDecreeRepository) FindDecreeByNewRecordID(ctx context.Context, parishID, recordID string) (*domain.Decree, error) {
	args := m.Called(ctx, parishID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Decree), args.Error(1)
}

func (m *MockDecreeRepository) ListDecreesByTenant(ctx context.Context, tenantID string) ([]domain.Decree, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Decree), args.Error(1)
}

func (m *MockDecreeRepository) CountDecreesByConcept(ctx context.Context, tenantID, conceptID string) (int, error) {
	args := m.Called(ctx, tenantID, conceptID)
	return args.Int(0), args.Error(1)
}

func (m *MockDecreeRepository) SaveChanceryCopy(ctx context.Context, chanceryID string, decree domain.Decree, originType domain.OriginType) error {
	args := m.Called(ctx, chanceryID, decree, originType)
	return args.Error(0)
}

// --- Mock ConceptRepository ---
type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) FindConceptByID(ctx context.Context, tenantID, conceptID string) (*domain.AnnulmentConcept, error) {
	args := m.Called(ctx, tenantID, conceptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnulmentConcept), args.Error(1)
}

func (m *MockConceptRepository) ListConcepts(ctx context.Context, tenantID string, category *domain.DecreeCategory) ([]domain.AnnulmentConcept, error) {
	args := m.Called(ctx, tenantID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnnulmentConcept), args.Error(1)
}

func (m *MockConceptRepository) SaveConcept(ctx context.Context, tenantID string, concept domain.AnnulmentConcept) error {
	args := m.Called(ctx, tenantID, concept)
	return args.Error(0)
}

func (m *MockConceptRepository) UpdateConcept(ctx context.Context, tenantID string, concept domain.AnnulmentConcept) error {
	args := m.Called(ctx, tenantID, concept)
	return args.Error(0)
}

func (m *MockConceptRepository) DeleteConcept(ctx context.Context, tenantID, conceptID string) error {
	args := m.Called(ctx, tenantID, conceptID)
	return args.Error(0)
}

// --- Mock TemplateRepository ---
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) FindTemplateSet(ctx context.Context, parishID string) (*domain.MarginalNoteTemplateSet, error) {
	args := m.Called(ctx, parishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarginalNoteTemplateSet), args.Error(1)
}

func (m *MockTemplateRepository) SaveTemplateSet(ctx context.Context, templates domain.MarginalNoteTemplateSet) error {
	args := m.Called(ctx, templates)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/hoopside/hoopside-backend/hoopside/database/models"
	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"
)

// MockLedgerRepository is a mock of LedgerRepository interface.
type MockLedgerRepository struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerRepositoryMockRecorder
	isgomock struct{}
}

// MockLedgerRepositoryMockRecorder is the mock recorder for MockLedgerRepository.
type MockLedgerRepositoryMockRecorder struct {
	mock *MockLedgerRepository
}

// NewMockLedgerRepository creates a new mock instance.
func NewMockLedgerRepository(ctrl *gomock.Controller) *MockLedgerRepository {
	mock := &MockLedgerRepository{ctrl: ctrl}
	mock.recorder = &MockLedgerRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerRepository) EXPECT() *MockLedgerRepositoryMockRecorder {
	return m.recorder
}

// AdjustXP mocks base method.
func (m *MockLedgerRepository) AdjustXP(ctx context.Context, tx bun.Tx, playerID string, delta int64) (*models.PlayerLedger, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdjustXP", ctx, tx, playerID, delta)
	ret0, _ := ret[0].(*models.PlayerLedger)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdjustXP indicates an expected call of AdjustXP.
func (mr *MockLedgerRepositoryMockRecorder) AdjustXP(ctx, tx, playerID, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdjustXP", reflect.TypeOf((*MockLedgerRepository)(nil).AdjustXP), ctx, tx, playerID, delta)
}

// CreateTx mocks base method.
func (m *MockLedgerRepository) CreateTx(ctx context.Context, tx bun.Tx, ledger *models.PlayerLedger) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTx", ctx, tx, ledger)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTx indicates an expected call of CreateTx.
func (mr *MockLedgerRepositoryMockRecorder) CreateTx(ctx, tx, ledger any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTx", reflect.TypeOf((*MockLedgerRepository)(nil).CreateTx), ctx, tx, ledger)
}

// GetByPlayerID mocks base method.
func (m *MockLedgerRepository) GetByPlayerID(ctx context.Context, playerID string) (*models.PlayerLedger, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPlayerID", ctx, playerID)
	ret0, _ := ret[0].(*models.PlayerLedger)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPlayerID indicates an expected call of GetByPlayerID.
func (mr *MockLedgerRepositoryMockRecorder) GetByPlayerID(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPlayerID", reflect.TypeOf((*MockLedgerRepository)(nil).GetByPlayerID), ctx, playerID)
}

// GetForUpdateTx mocks base method.
func (m *MockLedgerRepository) GetForUpdateTx(ctx context.Context, tx bun.Tx, playerID string) (*models.PlayerLedger, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetForUpdateTx", ctx, tx, playerID)
	ret0, _ := ret[0].(*models.PlayerLedger)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetForUpdateTx indicates an expected call of GetForUpdateTx.
func (mr *MockLedgerRepositoryMockRecorder) GetForUpdateTx(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetForUpdateTx", reflect.TypeOf((*MockLedgerRepository)(nil).GetForUpdateTx), ctx, tx, playerID)
}

// GetTop mocks base method.
func (m *MockLedgerRepository) GetTop(ctx context.Context, limit int) ([]*models.PlayerLedger, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTop", ctx, limit)
	ret0, _ := ret[0].([]*models.PlayerLedger)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTop indicates an expected call of GetTop.
func (mr *MockLedgerRepositoryMockRecorder) GetTop(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTop", reflect.TypeOf((*MockLedgerRepository)(nil).GetTop), ctx, limit)
}

// UpdateStatsTx mocks base method.
func (m *MockLedgerRepository) UpdateStatsTx(ctx context.Context, tx bun.Tx, ledger *models.PlayerLedger) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatsTx", ctx, tx, ledger)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatsTx indicates an expected call of UpdateStatsTx.
func (mr *MockLedgerRepositoryMockRecorder) UpdateStatsTx(ctx, tx, ledger any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatsTx", reflect.TypeOf((*MockLedgerRepository)(nil).UpdateStatsTx), ctx, tx, ledger)
}

// MockBadgeRepository is a mock of BadgeRepository interface.
type MockBadgeRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBadgeRepositoryMockRecorder
	isgomock struct{}
}

// MockBadgeRepositoryMockRecorder is the mock recorder for MockBadgeRepository.
type MockBadgeRepositoryMockRecorder struct {
	mock *MockBadgeRepository
}

// NewMockBadgeRepository creates a new mock instance.
func NewMockBadgeRepository(ctrl *gomock.Controller) *MockBadgeRepository {
	mock := &MockBadgeRepository{ctrl: ctrl}
	mock.recorder = &MockBadgeRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBadgeRepository) EXPECT() *MockBadgeRepositoryMockRecorder {
	return m.recorder
}

// GetAwardedNamesTx mocks base method.
func (m *MockBadgeRepository) GetAwardedNamesTx(ctx context.Context, tx bun.Tx, playerID string) (map[string]struct{}, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAwardedNamesTx", ctx, tx, playerID)
	ret0, _ := ret[0].(map[string]struct{})
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAwardedNamesTx indicates an expected call of GetAwardedNamesTx.
func (mr *MockBadgeRepositoryMockRecorder) GetAwardedNamesTx(ctx, tx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAwardedNamesTx", reflect.TypeOf((*MockBadgeRepository)(nil).GetAwardedNamesTx), ctx, tx, playerID)
}

// GetByPlayerID mocks base method.
func (m *MockBadgeRepository) GetByPlayerID(ctx context.Context, playerID string) ([]*models.BadgeAward, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPlayerID", ctx, playerID)
	ret0, _ := ret[0].([]*models.BadgeAward)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPlayerID indicates an expected call of GetByPlayerID.
func (mr *MockBadgeRepositoryMockRecorder) GetByPlayerID(ctx, playerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPlayerID", reflect.TypeOf((*MockBadgeRepository)(nil).GetByPlayerID), ctx, playerID)
}

// InsertTx mocks base method.
func (m *MockBadgeRepository) InsertTx(ctx context.Context, tx bun.Tx, awards []models.BadgeAward) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertTx", ctx, tx, awards)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertTx indicates an expected call of InsertTx.
func (mr *MockBadgeRepositoryMockRecorder) InsertTx(ctx, tx, awards any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertTx", reflect.TypeOf((*MockBadgeRepository)(nil).InsertTx), ctx, tx, awards)
}

// MockNotificationRepository is a mock of NotificationRepository interface.
type MockNotificationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNotificationRepositoryMockRecorder
	isgomock struct{}
}

// MockNotificationRepositoryMockRecorder is the mock recorder for MockNotificationRepository.
type MockNotificationRepositoryMockRecorder struct {
	mock *MockNotificationRepository
}

// NewMockNotificationRepository creates a new mock instance.
func NewMockNotificationRepository(ctrl *gomock.Controller) *MockNotificationRepository {
	mock := &MockNotificationRepository{ctrl: ctrl}
	mock.recorder = &MockNotificationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotificationRepository) EXPECT() *MockNotificationRepositoryMockRecorder {
	return m.recorder
}

// GetByPlayerID mocks base method.
func (m *MockNotificationRepository) GetByPlayerID(ctx context.Context, playerID string, limit int) ([]*models.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPlayerID", ctx, playerID, limit)
	ret0, _ := ret[0].([]*models.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPlayerID indicates an expected call of GetByPlayerID.
func (mr *MockNotificationRepositoryMockRecorder) GetByPlayerID(ctx, playerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPlayerID", reflect.TypeOf((*MockNotificationRepository)(nil).GetByPlayerID), ctx, playerID, limit)
}

// InsertTx mocks base method.
func (m *MockNotificationRepository) InsertTx(ctx context.Context, tx bun.Tx, notification *models.Notification) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertTx", ctx, tx, notification)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertTx indicates an expected call of InsertTx.
func (mr *MockNotificationRepositoryMockRecorder) InsertTx(ctx, tx, notification any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertTx", reflect.TypeOf((*MockNotificationRepository)(nil).InsertTx), ctx, tx, notification)
}

// MarkRead mocks base method.
func (m *MockNotificationRepository) MarkRead(ctx context.Context, playerID string, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRead", ctx, playerID, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRead indicates an expected call of MarkRead.
func (mr *MockNotificationRepositoryMockRecorder) MarkRead(ctx, playerID, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRead", reflect.TypeOf((*MockNotificationRepository)(nil).MarkRead), ctx, playerID, id)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: chat.go
//
// Generated by this command:
//
//	mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "tradepost/domain"

	badger "github.com/dgraph-io/badger/v4"
	gomock "go.uber.org/mock/gomock"
)

// MockIChatRepository is a mock of IChatRepository interface.
type MockIChatRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIChatRepositoryMockRecorder
	isgomock struct{}
}

// MockIChatRepositoryMockRecorder is the mock recorder for MockIChatRepository.
type MockIChatRepositoryMockRecorder struct {
	mock *MockIChatRepository
}

// NewMockIChatRepository creates a new mock instance.
func NewMockIChatRepository(ctrl *gomock.Controller) *MockIChatRepository {
	mock := &MockIChatRepository{ctrl: ctrl}
	mock.recorder = &MockIChatRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIChatRepository) EXPECT() *MockIChatRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockIChatRepository) Create(c domain.Chat) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", c)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockIChatRepositoryMockRecorder) Create(c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockIChatRepository)(nil).Create), c)
}

// CreateTxn mocks base method.
func (m *MockIChatRepository) CreateTxn(txn *badger.Txn, c domain.Chat) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTxn", txn, c)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTxn indicates an expected call of CreateTxn.
func (mr *MockIChatRepositoryMockRecorder) CreateTxn(txn, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTxn", reflect.TypeOf((*MockIChatRepository)(nil).CreateTxn), txn, c)
}

// Get mocks base method.
func (m *MockIChatRepository) Get(id string) (domain.Chat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Chat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIChatRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIChatRepository)(nil).Get), id)
}

// ListByProduct mocks base method.
func (m *MockIChatRepository) ListByProduct(productID string) ([]domain.Chat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByProduct", productID)
	ret0, _ := ret[0].([]domain.Chat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByProduct indicates an expected call of ListByProduct.
func (mr *MockIChatRepositoryMockRecorder) ListByProduct(productID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByProduct", reflect.TypeOf((*MockIChatRepository)(nil).ListByProduct), productID)
}

// ListByProductTxn mocks base method.
func (m *MockIChatRepository) ListByProductTxn(txn *badger.Txn, productID string) ([]domain.Chat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByProductTxn", txn, productID)
	ret0, _ := ret[0].([]domain.Chat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByProductTxn indicates an expected call of ListByProductTxn.
func (mr *MockIChatRepositoryMockRecorder) ListByProductTxn(txn, productID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByProductTxn", reflect.TypeOf((*MockIChatRepository)(nil).ListByProductTxn), txn, productID)
}

// ListByUser mocks base method.
func (m *MockIChatRepository) ListByUser(userID string) ([]domain.Chat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", userID)
	ret0, _ := ret[0].([]domain.Chat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockIChatRepositoryMockRecorder) ListByUser(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockIChatRepository)(nil).ListByUser), userID)
}

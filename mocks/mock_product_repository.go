// Code generated by MockGen. DO NOT EDIT.
// Source: product.go
//
// Generated by this command:
//
//	mockgen -source=product.go -destination=../mocks/mock_product_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "tradepost/domain"

	badger "github.com/dgraph-io/badger/v4"
	gomock "go.uber.org/mock/gomock"
)

// MockIProductRepository is a mock of IProductRepository interface.
type MockIProductRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIProductRepositoryMockRecorder
	isgomock struct{}
}

// MockIProductRepositoryMockRecorder is the mock recorder for MockIProductRepository.
type MockIProductRepositoryMockRecorder struct {
	mock *MockIProductRepository
}

// NewMockIProductRepository creates a new mock instance.
func NewMockIProductRepository(ctrl *gomock.Controller) *MockIProductRepository {
	mock := &MockIProductRepository{ctrl: ctrl}
	mock.recorder = &MockIProductRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIProductRepository) EXPECT() *MockIProductRepositoryMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockIProductRepository) Get(id string) (domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", id)
	ret0, _ := ret[0].(domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockIProductRepositoryMockRecorder) Get(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockIProductRepository)(nil).Get), id)
}

// GetTxn mocks base method.
func (m *MockIProductRepository) GetTxn(txn *badger.Txn, id string) (domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTxn", txn, id)
	ret0, _ := ret[0].(domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTxn indicates an expected call of GetTxn.
func (mr *MockIProductRepositoryMockRecorder) GetTxn(txn, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTxn", reflect.TypeOf((*MockIProductRepository)(nil).GetTxn), txn, id)
}

// Put mocks base method.
func (m *MockIProductRepository) Put(p domain.Product) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", p)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *MockIProductRepositoryMockRecorder) Put(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockIProductRepository)(nil).Put), p)
}

// PutTxn mocks base method.
func (m *MockIProductRepository) PutTxn(txn *badger.Txn, p domain.Product) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PutTxn", txn, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// PutTxn indicates an expected call of PutTxn.
func (mr *MockIProductRepositoryMockRecorder) PutTxn(txn, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PutTxn", reflect.TypeOf((*MockIProductRepository)(nil).PutTxn), txn, p)
}

// UpdateStatusIf mocks base method.
func (m *MockIProductRepository) UpdateStatusIf(id string, from, to domain.ProductStatus) (domain.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatusIf", id, from, to)
	ret0, _ := ret[0].(domain.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStatusIf indicates an expected call of UpdateStatusIf.
func (mr *MockIProductRepositoryMockRecorder) UpdateStatusIf(id, from, to any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatusIf", reflect.TypeOf((*MockIProductRepository)(nil).UpdateStatusIf), id, from, to)
}

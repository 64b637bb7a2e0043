// Code generated by MockGen. DO NOT EDIT.
// Source: message.go
//
// Generated by this command:
//
//	mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "tradepost/domain"

	badger "github.com/dgraph-io/badger/v4"
	gomock "go.uber.org/mock/gomock"
)

// MockIMessageRepository is a mock of IMessageRepository interface.
type MockIMessageRepository struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageRepositoryMockRecorder
	isgomock struct{}
}

// MockIMessageRepositoryMockRecorder is the mock recorder for MockIMessageRepository.
type MockIMessageRepositoryMockRecorder struct {
	mock *MockIMessageRepository
}

// NewMockIMessageRepository creates a new mock instance.
func NewMockIMessageRepository(ctrl *gomock.Controller) *MockIMessageRepository {
	mock := &MockIMessageRepository{ctrl: ctrl}
	mock.recorder = &MockIMessageRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageRepository) EXPECT() *MockIMessageRepositoryMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockIMessageRepository) List(chatID string, cursor *string) ([]domain.Message, *string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", chatID, cursor)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(*string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockIMessageRepositoryMockRecorder) List(chatID, cursor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockIMessageRepository)(nil).List), chatID, cursor)
}

// Store mocks base method.
func (m_2 *MockIMessageRepository) Store(m domain.Message) error {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "Store", m)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store.
func (mr *MockIMessageRepositoryMockRecorder) Store(m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockIMessageRepository)(nil).Store), m)
}

// StoreTxn mocks base method.
func (m_2 *MockIMessageRepository) StoreTxn(txn *badger.Txn, m domain.Message) error {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "StoreTxn", txn, m)
	ret0, _ := ret[0].(error)
	return ret0
}

// StoreTxn indicates an expected call of StoreTxn.
func (mr *MockIMessageRepositoryMockRecorder) StoreTxn(txn, m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreTxn", reflect.TypeOf((*MockIMessageRepository)(nil).StoreTxn), txn, m)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: notification.go
//
// Generated by this command:
//
//	mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "tradepost/domain"

	badger "github.com/dgraph-io/badger/v4"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockINotificationRepository is a mock of INotificationRepository interface.
type MockINotificationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockINotificationRepositoryMockRecorder
	isgomock struct{}
}

// MockINotificationRepositoryMockRecorder is the mock recorder for MockINotificationRepository.
type MockINotificationRepositoryMockRecorder struct {
	mock *MockINotificationRepository
}

// NewMockINotificationRepository creates a new mock instance.
func NewMockINotificationRepository(ctrl *gomock.Controller) *MockINotificationRepository {
	mock := &MockINotificationRepository{ctrl: ctrl}
	mock.recorder = &MockINotificationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockINotificationRepository) EXPECT() *MockINotificationRepositoryMockRecorder {
	return m.recorder
}

// ListByRecipient mocks base method.
func (m *MockINotificationRepository) ListByRecipient(recipientID string) ([]domain.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByRecipient", recipientID)
	ret0, _ := ret[0].([]domain.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByRecipient indicates an expected call of ListByRecipient.
func (mr *MockINotificationRepositoryMockRecorder) ListByRecipient(recipientID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByRecipient", reflect.TypeOf((*MockINotificationRepository)(nil).ListByRecipient), recipientID)
}

// MarkRead mocks base method.
func (m *MockINotificationRepository) MarkRead(recipientID string, notificationID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRead", recipientID, notificationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRead indicates an expected call of MarkRead.
func (mr *MockINotificationRepositoryMockRecorder) MarkRead(recipientID, notificationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRead", reflect.TypeOf((*MockINotificationRepository)(nil).MarkRead), recipientID, notificationID)
}

// Store mocks base method.
func (m *MockINotificationRepository) Store(n domain.Notification) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Store", n)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store.
func (mr *MockINotificationRepositoryMockRecorder) Store(n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockINotificationRepository)(nil).Store), n)
}

// StoreTxn mocks base method.
func (m *MockINotificationRepository) StoreTxn(txn *badger.Txn, n domain.Notification) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StoreTxn", txn, n)
	ret0, _ := ret[0].(error)
	return ret0
}

// StoreTxn indicates an expected call of StoreTxn.
func (mr *MockINotificationRepositoryMockRecorder) StoreTxn(txn, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreTxn", reflect.TypeOf((*MockINotificationRepository)(nil).StoreTxn), txn, n)
}

// Code generated by MockGen. DO NOT EDIT.
// Source: notification_service.go
//
// Generated by this command:
//
//	mockgen -source=notification_service.go -destination=../mocks/mock_notification_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	domain "tradepost/domain"

	badger "github.com/dgraph-io/badger/v4"
	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockINotificationService is a mock of INotificationService interface.
type MockINotificationService struct {
	ctrl     *gomock.Controller
	recorder *MockINotificationServiceMockRecorder
	isgomock struct{}
}

// MockINotificationServiceMockRecorder is the mock recorder for MockINotificationService.
type MockINotificationServiceMockRecorder struct {
	mock *MockINotificationService
}

// NewMockINotificationService creates a new mock instance.
func NewMockINotificationService(ctrl *gomock.Controller) *MockINotificationService {
	mock := &MockINotificationService{ctrl: ctrl}
	mock.recorder = &MockINotificationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockINotificationService) EXPECT() *MockINotificationServiceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockINotificationService) List(recipientID string) ([]domain.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", recipientID)
	ret0, _ := ret[0].([]domain.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockINotificationServiceMockRecorder) List(recipientID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockINotificationService)(nil).List), recipientID)
}

// MarkRead mocks base method.
func (m *MockINotificationService) MarkRead(recipientID string, notificationID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRead", recipientID, notificationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRead indicates an expected call of MarkRead.
func (mr *MockINotificationServiceMockRecorder) MarkRead(recipientID, notificationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRead", reflect.TypeOf((*MockINotificationService)(nil).MarkRead), recipientID, notificationID)
}

// Notify mocks base method.
func (m *MockINotificationService) Notify(ctx context.Context, recipientID, content, link string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Notify", ctx, recipientID, content, link)
	ret0, _ := ret[0].(error)
	return ret0
}

// Notify indicates an expected call of Notify.
func (mr *MockINotificationServiceMockRecorder) Notify(ctx, recipientID, content, link any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notify", reflect.TypeOf((*MockINotificationService)(nil).Notify), ctx, recipientID, content, link)
}

// NotifyTxn mocks base method.
func (m *MockINotificationService) NotifyTxn(txn *badger.Txn, recipientID, content, link string) (domain.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NotifyTxn", txn, recipientID, content, link)
	ret0, _ := ret[0].(domain.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NotifyTxn indicates an expected call of NotifyTxn.
func (mr *MockINotificationServiceMockRecorder) NotifyTxn(txn, recipientID, content, link any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NotifyTxn", reflect.TypeOf((*MockINotificationService)(nil).NotifyTxn), txn, recipientID, content, link)
}

// Push mocks base method.
func (m *MockINotificationService) Push(n domain.Notification) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Push", n)
}

// Push indicates an expected call of Push.
func (mr *MockINotificationServiceMockRecorder) Push(n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Push", reflect.TypeOf((*MockINotificationService)(nil).Push), n)
}

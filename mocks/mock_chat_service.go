// Code generated by MockGen. DO NOT EDIT.
// Source: chat_service.go
//
// Generated by this command:
//
//	mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	domain "tradepost/domain"

	gomock "go.uber.org/mock/gomock"
)

// MockIChatService is a mock of IChatService interface.
type MockIChatService struct {
	ctrl     *gomock.Controller
	recorder *MockIChatServiceMockRecorder
	isgomock struct{}
}

// MockIChatServiceMockRecorder is the mock recorder for MockIChatService.
type MockIChatServiceMockRecorder struct {
	mock *MockIChatService
}

// NewMockIChatService creates a new mock instance.
func NewMockIChatService(ctrl *gomock.Controller) *MockIChatService {
	mock := &MockIChatService{ctrl: ctrl}
	mock.recorder = &MockIChatServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIChatService) EXPECT() *MockIChatServiceMockRecorder {
	return m.recorder
}

// GetChat mocks base method.
func (m *MockIChatService) GetChat(userID, chatID string, cursor *string) (domain.Chat, []domain.Message, *string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetChat", userID, chatID, cursor)
	ret0, _ := ret[0].(domain.Chat)
	ret1, _ := ret[1].([]domain.Message)
	ret2, _ := ret[2].(*string)
	ret3, _ := ret[3].(error)
	return ret0, ret1, ret2, ret3
}

// GetChat indicates an expected call of GetChat.
func (mr *MockIChatServiceMockRecorder) GetChat(userID, chatID, cursor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetChat", reflect.TypeOf((*MockIChatService)(nil).GetChat), userID, chatID, cursor)
}

// JoinAndAnnounce mocks base method.
func (m *MockIChatService) JoinAndAnnounce(chat domain.Chat) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "JoinAndAnnounce", chat)
}

// JoinAndAnnounce indicates an expected call of JoinAndAnnounce.
func (mr *MockIChatServiceMockRecorder) JoinAndAnnounce(chat any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "JoinAndAnnounce", reflect.TypeOf((*MockIChatService)(nil).JoinAndAnnounce), chat)
}

// RejoinRooms mocks base method.
func (m *MockIChatService) RejoinRooms(userID string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RejoinRooms", userID)
}

// RejoinRooms indicates an expected call of RejoinRooms.
func (mr *MockIChatServiceMockRecorder) RejoinRooms(userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RejoinRooms", reflect.TypeOf((*MockIChatService)(nil).RejoinRooms), userID)
}

// SendMessage mocks base method.
func (m *MockIChatService) SendMessage(ctx context.Context, senderID, chatID, content string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", ctx, senderID, chatID, content)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockIChatServiceMockRecorder) SendMessage(ctx, senderID, chatID, content any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*MockIChatService)(nil).SendMessage), ctx, senderID, chatID, content)
}

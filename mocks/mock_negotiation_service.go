// Code generated by MockGen. DO NOT EDIT.
// Source: negotiation_service.go
//
// Generated by this command:
//
//	mockgen -source=negotiation_service.go -destination=../mocks/mock_negotiation_service.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	domain "tradepost/domain"

	gomock "go.uber.org/mock/gomock"
)

// MockINegotiationService is a mock of INegotiationService interface.
type MockINegotiationService struct {
	ctrl     *gomock.Controller
	recorder *MockINegotiationServiceMockRecorder
	isgomock struct{}
}

// MockINegotiationServiceMockRecorder is the mock recorder for MockINegotiationService.
type MockINegotiationServiceMockRecorder struct {
	mock *MockINegotiationService
}

// NewMockINegotiationService creates a new mock instance.
func NewMockINegotiationService(ctrl *gomock.Controller) *MockINegotiationService {
	mock := &MockINegotiationService{ctrl: ctrl}
	mock.recorder = &MockINegotiationServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockINegotiationService) EXPECT() *MockINegotiationServiceMockRecorder {
	return m.recorder
}

// AcceptRequest mocks base method.
func (m *MockINegotiationService) AcceptRequest(ctx context.Context, sellerID, buyerID, productID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcceptRequest", ctx, sellerID, buyerID, productID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AcceptRequest indicates an expected call of AcceptRequest.
func (mr *MockINegotiationServiceMockRecorder) AcceptRequest(ctx, sellerID, buyerID, productID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcceptRequest", reflect.TypeOf((*MockINegotiationService)(nil).AcceptRequest), ctx, sellerID, buyerID, productID)
}

// MarkSold mocks base method.
func (m *MockINegotiationService) MarkSold(ctx context.Context, sellerID, productID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSold", ctx, sellerID, productID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkSold indicates an expected call of MarkSold.
func (mr *MockINegotiationServiceMockRecorder) MarkSold(ctx, sellerID, productID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSold", reflect.TypeOf((*MockINegotiationService)(nil).MarkSold), ctx, sellerID, productID)
}

// RequestPurchase mocks base method.
func (m *MockINegotiationService) RequestPurchase(ctx context.Context, buyerID, productID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RequestPurchase", ctx, buyerID, productID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RequestPurchase indicates an expected call of RequestPurchase.
func (mr *MockINegotiationServiceMockRecorder) RequestPurchase(ctx, buyerID, productID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RequestPurchase", reflect.TypeOf((*MockINegotiationService)(nil).RequestPurchase), ctx, buyerID, productID)
}

// UpdatePickupStatus mocks base method.
func (m *MockINegotiationService) UpdatePickupStatus(ctx context.Context, sellerID, productID string, newStatus domain.PickupStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePickupStatus", ctx, sellerID, productID, newStatus)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePickupStatus indicates an expected call of UpdatePickupStatus.
func (mr *MockINegotiationServiceMockRecorder) UpdatePickupStatus(ctx, sellerID, productID, newStatus any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePickupStatus", reflect.TypeOf((*MockINegotiationService)(nil).UpdatePickupStatus), ctx, sellerID, productID, newStatus)
}

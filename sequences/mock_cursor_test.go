package sequences_test

import (
	gomock "github.com/golang/mock/gomock"
	reflect "reflect"
)

// MockIntCursor is a mock of IntCursor interface.
// It is hand written in the layout mockgen produces.
type MockIntCursor struct {
	ctrl     *gomock.Controller
	recorder *MockIntCursorMockRecorder
}

// MockIntCursorMockRecorder is the mock recorder for MockIntCursor
type MockIntCursorMockRecorder struct {
	mock *MockIntCursor
}

// NewMockIntCursor creates a new mock instance
func NewMockIntCursor(ctrl *gomock.Controller) *MockIntCursor {
	mock := &MockIntCursor{ctrl: ctrl}
	mock.recorder = &MockIntCursorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockIntCursor) EXPECT() *MockIntCursorMockRecorder {
	return m.recorder
}

// Current mocks base method
func (m *MockIntCursor) Current() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Current")
	ret0, _ := ret[0].(int)
	return ret0
}

// Current indicates an expected call of Current
func (mr *MockIntCursorMockRecorder) Current() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Current", reflect.TypeOf((*MockIntCursor)(nil).Current))
}

// Advance mocks base method
func (m *MockIntCursor) Advance() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Advance")
}

// Advance indicates an expected call of Advance
func (mr *MockIntCursorMockRecorder) Advance() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Advance", reflect.TypeOf((*MockIntCursor)(nil).Advance))
}

// Key mocks base method
func (m *MockIntCursor) Key() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Key")
	ret0, _ := ret[0].(int)
	return ret0
}

// Key indicates an expected call of Key
func (mr *MockIntCursorMockRecorder) Key() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Key", reflect.TypeOf((*MockIntCursor)(nil).Key))
}

// AtEnd mocks base method
func (m *MockIntCursor) AtEnd() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AtEnd")
	ret0, _ := ret[0].(bool)
	return ret0
}

// AtEnd indicates an expected call of AtEnd
func (mr *MockIntCursorMockRecorder) AtEnd() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AtEnd", reflect.TypeOf((*MockIntCursor)(nil).AtEnd))
}

// Restart mocks base method
func (m *MockIntCursor) Restart() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Restart")
}

// Restart indicates an expected call of Restart
func (mr *MockIntCursorMockRecorder) Restart() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Restart", reflect.TypeOf((*MockIntCursor)(nil).Restart))
}

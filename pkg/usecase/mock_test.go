package usecase_test

import (
	"context"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
)

// mockAPI is a function-field Dialpad API stub
type mockAPI struct {
	listUsers       func(ctx context.Context, cursor string) ([]*model.User, string, error)
	getUserStatus   func(ctx context.Context, id types.UserID) (*dialpad.UserStatus, error)
	listOffices     func(ctx context.Context) ([]*model.Office, error)
	listCallCenters func(ctx context.Context) ([]*model.CallCenter, error)
	listCalls       func(ctx context.Context, q dialpad.CallQuery) ([]*model.Call, error)
}

func (m *mockAPI) ListUsers(ctx context.Context, cursor string) ([]*model.User, string, error) {
	if m.listUsers == nil {
		return nil, "", nil
	}
	return m.listUsers(ctx, cursor)
}

func (m *mockAPI) GetUserStatus(ctx context.Context, id types.UserID) (*dialpad.UserStatus, error) {
	if m.getUserStatus == nil {
		return &dialpad.UserStatus{ID: id}, nil
	}
	return m.getUserStatus(ctx, id)
}

func (m *mockAPI) ListOffices(ctx context.Context) ([]*model.Office, error) {
	if m.listOffices == nil {
		return nil, nil
	}
	return m.listOffices(ctx)
}

func (m *mockAPI) ListCallCenters(ctx context.Context) ([]*model.CallCenter, error) {
	if m.listCallCenters == nil {
		return nil, nil
	}
	return m.listCallCenters(ctx)
}

func (m *mockAPI) ListCalls(ctx context.Context, q dialpad.CallQuery) ([]*model.Call, error) {
	if m.listCalls == nil {
		return nil, nil
	}
	return m.listCalls(ctx, q)
}

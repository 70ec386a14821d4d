package handler

import (
	"context"

	registrypb "github.com/ogurasousui/garage-registry/internal/adapters/grpc/registry/v1"
	"github.com/ogurasousui/garage-registry/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// AccessRecorder は入館判定の結果を記録します。
type AccessRecorder interface {
	RecordAccessDecision(allowed bool)
}

// EmployeeGrpcHandler は EmployeeRegistry の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc      employee.UseCase
	recorder AccessRecorder
	registrypb.UnimplementedEmployeeRegistryServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。recorder は nil でも構いません。
func NewEmployeeGrpcHandler(svc employee.UseCase, recorder AccessRecorder) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc, recorder: recorder}
}

// AddEmployee は社員を登録します。
func (h *EmployeeGrpcHandler) AddEmployee(ctx context.Context, req *registrypb.AddEmployeeRequest) (*registrypb.AddEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.AddEmployee(ctx, employee.AddEmployeeInput{
		Address: req.Address,
		Name:    req.Name,
		Role:    employee.RoleFromName(req.Role),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &registrypb.AddEmployeeResponse{Employee: toProtoEmployee(created)}, nil
}

// ToggleEmploymentStatus は在籍状態を反転します。
func (h *EmployeeGrpcHandler) ToggleEmploymentStatus(ctx context.Context, req *registrypb.ToggleEmploymentStatusRequest) (*registrypb.ToggleEmploymentStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.ToggleEmploymentStatus(ctx, employee.ToggleEmploymentStatusInput{Address: req.Address})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &registrypb.ToggleEmploymentStatusResponse{Employee: toProtoEmployee(updated)}, nil
}

// GetEmployeeByAddress はアドレスで社員を取得します。
func (h *EmployeeGrpcHandler) GetEmployeeByAddress(ctx context.Context, req *registrypb.GetEmployeeByAddressRequest) (*registrypb.GetEmployeeByAddressResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployeeByAddress(ctx, employee.GetEmployeeInput{Address: req.Address})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &registrypb.GetEmployeeByAddressResponse{Employee: toProtoEmployee(found)}, nil
}

// GetAllEmployees は登録順に全社員を返します。
func (h *EmployeeGrpcHandler) GetAllEmployees(ctx context.Context, _ *registrypb.GetAllEmployeesRequest) (*registrypb.GetAllEmployeesResponse, error) {
	employees, err := h.svc.GetAllEmployees(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	resp := &registrypb.GetAllEmployeesResponse{
		Employees: make([]*registrypb.Employee, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, toProtoEmployee(e))
	}

	return resp, nil
}

// UpdateEmployeeRole は役割を更新します。
func (h *EmployeeGrpcHandler) UpdateEmployeeRole(ctx context.Context, req *registrypb.UpdateEmployeeRoleRequest) (*registrypb.UpdateEmployeeRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateEmployeeRole(ctx, employee.UpdateEmployeeRoleInput{
		Address: req.Address,
		Role:    employee.RoleFromName(req.Role),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &registrypb.UpdateEmployeeRoleResponse{Employee: toProtoEmployee(updated)}, nil
}

// UpdateEmployeeData は役割と氏名をまとめて更新します。
func (h *EmployeeGrpcHandler) UpdateEmployeeData(ctx context.Context, req *registrypb.UpdateEmployeeDataRequest) (*registrypb.UpdateEmployeeDataResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateEmployeeData(ctx, employee.UpdateEmployeeDataInput{
		Address: req.Address,
		Role:    employee.RoleFromName(req.Role),
		Name:    req.Name,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &registrypb.UpdateEmployeeDataResponse{Employee: toProtoEmployee(updated)}, nil
}

// UpdateEmployeeName は氏名を更新します。
func (h *EmployeeGrpcHandler) UpdateEmployeeName(ctx context.Context, req *registrypb.UpdateEmployeeNameRequest) (*registrypb.UpdateEmployeeNameResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateEmployeeName(ctx, employee.UpdateEmployeeNameInput{
		Address: req.Address,
		Name:    req.Name,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &registrypb.UpdateEmployeeNameResponse{Employee: toProtoEmployee(updated)}, nil
}

// CanAccessGarage はガレージへの入館可否を返します。
func (h *EmployeeGrpcHandler) CanAccessGarage(ctx context.Context, req *registrypb.CanAccessGarageRequest) (*registrypb.CanAccessGarageResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	allowed, err := h.svc.CanAccessGarage(ctx, employee.CanAccessGarageInput{Address: req.Address})
	if err != nil {
		return nil, toStatusError(err)
	}

	if h.recorder != nil {
		h.recorder.RecordAccessDecision(allowed)
	}

	return &registrypb.CanAccessGarageResponse{Allowed: allowed}, nil
}

func toProtoEmployee(e *employee.Employee) *registrypb.Employee {
	if e == nil {
		return nil
	}
	return &registrypb.Employee{
		Address:    e.Address,
		Name:       e.Name,
		Role:       e.Role.String(),
		IsEmployed: e.IsEmployed,
		CreatedAt:  timestamppb.New(e.CreatedAt),
		UpdatedAt:  timestamppb.New(e.UpdatedAt),
	}
}

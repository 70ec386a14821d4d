package registrypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "garage.registry.v1.EmployeeRegistry"

const (
	EmployeeRegistry_AddEmployee_FullMethodName            = "/" + ServiceName + "/AddEmployee"
	EmployeeRegistry_ToggleEmploymentStatus_FullMethodName = "/" + ServiceName + "/ToggleEmploymentStatus"
	EmployeeRegistry_GetEmployeeByAddress_FullMethodName   = "/" + ServiceName + "/GetEmployeeByAddress"
	EmployeeRegistry_GetAllEmployees_FullMethodName        = "/" + ServiceName + "/GetAllEmployees"
	EmployeeRegistry_UpdateEmployeeRole_FullMethodName     = "/" + ServiceName + "/UpdateEmployeeRole"
	EmployeeRegistry_UpdateEmployeeData_FullMethodName     = "/" + ServiceName + "/UpdateEmployeeData"
	EmployeeRegistry_UpdateEmployeeName_FullMethodName     = "/" + ServiceName + "/UpdateEmployeeName"
	EmployeeRegistry_CanAccessGarage_FullMethodName        = "/" + ServiceName + "/CanAccessGarage"
)

// EmployeeRegistryServer は EmployeeRegistry サービスのサーバー側インターフェースです。
type EmployeeRegistryServer interface {
	AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error)
	ToggleEmploymentStatus(context.Context, *ToggleEmploymentStatusRequest) (*ToggleEmploymentStatusResponse, error)
	GetEmployeeByAddress(context.Context, *GetEmployeeByAddressRequest) (*GetEmployeeByAddressResponse, error)
	GetAllEmployees(context.Context, *GetAllEmployeesRequest) (*GetAllEmployeesResponse, error)
	UpdateEmployeeRole(context.Context, *UpdateEmployeeRoleRequest) (*UpdateEmployeeRoleResponse, error)
	UpdateEmployeeData(context.Context, *UpdateEmployeeDataRequest) (*UpdateEmployeeDataResponse, error)
	UpdateEmployeeName(context.Context, *UpdateEmployeeNameRequest) (*UpdateEmployeeNameResponse, error)
	CanAccessGarage(context.Context, *CanAccessGarageRequest) (*CanAccessGarageResponse, error)
	mustEmbedUnimplementedEmployeeRegistryServer()
}

// UnimplementedEmployeeRegistryServer は前方互換のために埋め込む既定実装です。
type UnimplementedEmployeeRegistryServer struct{}

func (UnimplementedEmployeeRegistryServer) AddEmployee(context.Context, *AddEmployeeRequest) (*AddEmployeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddEmployee not implemented")
}

func (UnimplementedEmployeeRegistryServer) ToggleEmploymentStatus(context.Context, *ToggleEmploymentStatusRequest) (*ToggleEmploymentStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleEmploymentStatus not implemented")
}

func (UnimplementedEmployeeRegistryServer) GetEmployeeByAddress(context.Context, *GetEmployeeByAddressRequest) (*GetEmployeeByAddressResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployeeByAddress not implemented")
}

func (UnimplementedEmployeeRegistryServer) GetAllEmployees(context.Context, *GetAllEmployeesRequest) (*GetAllEmployeesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAllEmployees not implemented")
}

func (UnimplementedEmployeeRegistryServer) UpdateEmployeeRole(context.Context, *UpdateEmployeeRoleRequest) (*UpdateEmployeeRoleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployeeRole not implemented")
}

func (UnimplementedEmployeeRegistryServer) UpdateEmployeeData(context.Context, *UpdateEmployeeDataRequest) (*UpdateEmployeeDataResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployeeData not implemented")
}

func (UnimplementedEmployeeRegistryServer) UpdateEmployeeName(context.Context, *UpdateEmployeeNameRequest) (*UpdateEmployeeNameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployeeName not implemented")
}

func (UnimplementedEmployeeRegistryServer) CanAccessGarage(context.Context, *CanAccessGarageRequest) (*CanAccessGarageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CanAccessGarage not implemented")
}

func (UnimplementedEmployeeRegistryServer) mustEmbedUnimplementedEmployeeRegistryServer() {}

// RegisterEmployeeRegistryServer はサーバーへ EmployeeRegistry サービスを登録します。
func RegisterEmployeeRegistryServer(s grpc.ServiceRegistrar, srv EmployeeRegistryServer) {
	s.RegisterService(&EmployeeRegistry_ServiceDesc, srv)
}

// EmployeeRegistry_ServiceDesc は EmployeeRegistry サービスの grpc.ServiceDesc です。
var EmployeeRegistry_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeRegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddEmployee", Handler: unaryHandler(EmployeeRegistry_AddEmployee_FullMethodName, EmployeeRegistryServer.AddEmployee)},
		{MethodName: "ToggleEmploymentStatus", Handler: unaryHandler(EmployeeRegistry_ToggleEmploymentStatus_FullMethodName, EmployeeRegistryServer.ToggleEmploymentStatus)},
		{MethodName: "GetEmployeeByAddress", Handler: unaryHandler(EmployeeRegistry_GetEmployeeByAddress_FullMethodName, EmployeeRegistryServer.GetEmployeeByAddress)},
		{MethodName: "GetAllEmployees", Handler: unaryHandler(EmployeeRegistry_GetAllEmployees_FullMethodName, EmployeeRegistryServer.GetAllEmployees)},
		{MethodName: "UpdateEmployeeRole", Handler: unaryHandler(EmployeeRegistry_UpdateEmployeeRole_FullMethodName, EmployeeRegistryServer.UpdateEmployeeRole)},
		{MethodName: "UpdateEmployeeData", Handler: unaryHandler(EmployeeRegistry_UpdateEmployeeData_FullMethodName, EmployeeRegistryServer.UpdateEmployeeData)},
		{MethodName: "UpdateEmployeeName", Handler: unaryHandler(EmployeeRegistry_UpdateEmployeeName_FullMethodName, EmployeeRegistryServer.UpdateEmployeeName)},
		{MethodName: "CanAccessGarage", Handler: unaryHandler(EmployeeRegistry_CanAccessGarage_FullMethodName, EmployeeRegistryServer.CanAccessGarage)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "garage/registry/v1/registry.proto",
}

func unaryHandler[Req, Resp any](fullMethod string, call func(EmployeeRegistryServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EmployeeRegistryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EmployeeRegistryServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EmployeeRegistryClient は EmployeeRegistry サービスのクライアントです。
type EmployeeRegistryClient interface {
	AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error)
	ToggleEmploymentStatus(ctx context.Context, in *ToggleEmploymentStatusRequest, opts ...grpc.CallOption) (*ToggleEmploymentStatusResponse, error)
	GetEmployeeByAddress(ctx context.Context, in *GetEmployeeByAddressRequest, opts ...grpc.CallOption) (*GetEmployeeByAddressResponse, error)
	GetAllEmployees(ctx context.Context, in *GetAllEmployeesRequest, opts ...grpc.CallOption) (*GetAllEmployeesResponse, error)
	UpdateEmployeeRole(ctx context.Context, in *UpdateEmployeeRoleRequest, opts ...grpc.CallOption) (*UpdateEmployeeRoleResponse, error)
	UpdateEmployeeData(ctx context.Context, in *UpdateEmployeeDataRequest, opts ...grpc.CallOption) (*UpdateEmployeeDataResponse, error)
	UpdateEmployeeName(ctx context.Context, in *UpdateEmployeeNameRequest, opts ...grpc.CallOption) (*UpdateEmployeeNameResponse, error)
	CanAccessGarage(ctx context.Context, in *CanAccessGarageRequest, opts ...grpc.CallOption) (*CanAccessGarageResponse, error)
}

type employeeRegistryClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeRegistryClient はクライアントを生成します。
func NewEmployeeRegistryClient(cc grpc.ClientConnInterface) EmployeeRegistryClient {
	return &employeeRegistryClient{cc: cc}
}

func (c *employeeRegistryClient) AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*AddEmployeeResponse, error) {
	return invoke[AddEmployeeResponse](ctx, c.cc, EmployeeRegistry_AddEmployee_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) ToggleEmploymentStatus(ctx context.Context, in *ToggleEmploymentStatusRequest, opts ...grpc.CallOption) (*ToggleEmploymentStatusResponse, error) {
	return invoke[ToggleEmploymentStatusResponse](ctx, c.cc, EmployeeRegistry_ToggleEmploymentStatus_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) GetEmployeeByAddress(ctx context.Context, in *GetEmployeeByAddressRequest, opts ...grpc.CallOption) (*GetEmployeeByAddressResponse, error) {
	return invoke[GetEmployeeByAddressResponse](ctx, c.cc, EmployeeRegistry_GetEmployeeByAddress_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) GetAllEmployees(ctx context.Context, in *GetAllEmployeesRequest, opts ...grpc.CallOption) (*GetAllEmployeesResponse, error) {
	return invoke[GetAllEmployeesResponse](ctx, c.cc, EmployeeRegistry_GetAllEmployees_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) UpdateEmployeeRole(ctx context.Context, in *UpdateEmployeeRoleRequest, opts ...grpc.CallOption) (*UpdateEmployeeRoleResponse, error) {
	return invoke[UpdateEmployeeRoleResponse](ctx, c.cc, EmployeeRegistry_UpdateEmployeeRole_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) UpdateEmployeeData(ctx context.Context, in *UpdateEmployeeDataRequest, opts ...grpc.CallOption) (*UpdateEmployeeDataResponse, error) {
	return invoke[UpdateEmployeeDataResponse](ctx, c.cc, EmployeeRegistry_UpdateEmployeeData_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) UpdateEmployeeName(ctx context.Context, in *UpdateEmployeeNameRequest, opts ...grpc.CallOption) (*UpdateEmployeeNameResponse, error) {
	return invoke[UpdateEmployeeNameResponse](ctx, c.cc, EmployeeRegistry_UpdateEmployeeName_FullMethodName, in, opts)
}

func (c *employeeRegistryClient) CanAccessGarage(ctx context.Context, in *CanAccessGarageRequest, opts ...grpc.CallOption) (*CanAccessGarageResponse, error) {
	return invoke[CanAccessGarageResponse](ctx, c.cc, EmployeeRegistry_CanAccessGarage_FullMethodName, in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

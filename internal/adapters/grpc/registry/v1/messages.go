package registrypb

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Employee は社員記録のワイヤ表現です。Role は MEDIA_TEAM などの正規名です。
type Employee struct {
	Address    string
	Name       string
	Role       string
	IsEmployed bool
	CreatedAt  *timestamppb.Timestamp
	UpdatedAt  *timestamppb.Timestamp
}

type AddEmployeeRequest struct {
	Address string
	Name    string
	Role    string
}

type AddEmployeeResponse struct {
	Employee *Employee
}

type ToggleEmploymentStatusRequest struct {
	Address string
}

type ToggleEmploymentStatusResponse struct {
	Employee *Employee
}

type GetEmployeeByAddressRequest struct {
	Address string
}

type GetEmployeeByAddressResponse struct {
	Employee *Employee
}

type GetAllEmployeesRequest struct{}

type GetAllEmployeesResponse struct {
	Employees []*Employee
}

type UpdateEmployeeRoleRequest struct {
	Address string
	Role    string
}

type UpdateEmployeeRoleResponse struct {
	Employee *Employee
}

type UpdateEmployeeDataRequest struct {
	Address string
	Role    string
	Name    string
}

type UpdateEmployeeDataResponse struct {
	Employee *Employee
}

type UpdateEmployeeNameRequest struct {
	Address string
	Name    string
}

type UpdateEmployeeNameResponse struct {
	Employee *Employee
}

type CanAccessGarageRequest struct {
	Address string
}

type CanAccessGarageResponse struct {
	Allowed bool
}

func (x *Employee) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *Employee) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Employee) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Employee) GetIsEmployed() bool {
	if x != nil {
		return x.IsEmployed
	}
	return false
}

func (x *Employee) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Employee) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// フィールド番号は garage/registry/v1/registry.proto と一致させています。

func (x *Employee) marshalWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Address)
	b = appendString(b, 2, x.Name)
	b = appendString(b, 3, x.Role)
	b = appendBool(b, 4, x.IsEmployed)
	b, err := appendTimestamp(b, 5, x.CreatedAt)
	if err != nil {
		return nil, err
	}
	return appendTimestamp(b, 6, x.UpdatedAt)
}

func (x *Employee) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		var err error
		switch num {
		case 1:
			x.Address, err = consumeString(typ, v)
		case 2:
			x.Name, err = consumeString(typ, v)
		case 3:
			x.Role, err = consumeString(typ, v)
		case 4:
			x.IsEmployed, err = consumeBool(typ, v)
		case 5:
			x.CreatedAt, err = consumeTimestamp(typ, v)
		case 6:
			x.UpdatedAt, err = consumeTimestamp(typ, v)
		}
		return err
	})
}

func (x *AddEmployeeRequest) marshalWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Address)
	b = appendString(b, 2, x.Name)
	return appendString(b, 3, x.Role), nil
}

func (x *AddEmployeeRequest) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		var err error
		switch num {
		case 1:
			x.Address, err = consumeString(typ, v)
		case 2:
			x.Name, err = consumeString(typ, v)
		case 3:
			x.Role, err = consumeString(typ, v)
		}
		return err
	})
}

func (x *ToggleEmploymentStatusRequest) marshalWire(b []byte) ([]byte, error) {
	return appendString(b, 1, x.Address), nil
}

func (x *ToggleEmploymentStatusRequest) unmarshalWire(b []byte) error {
	return unmarshalAddress(b, &x.Address)
}

func (x *GetEmployeeByAddressRequest) marshalWire(b []byte) ([]byte, error) {
	return appendString(b, 1, x.Address), nil
}

func (x *GetEmployeeByAddressRequest) unmarshalWire(b []byte) error {
	return unmarshalAddress(b, &x.Address)
}

func (x *CanAccessGarageRequest) marshalWire(b []byte) ([]byte, error) {
	return appendString(b, 1, x.Address), nil
}

func (x *CanAccessGarageRequest) unmarshalWire(b []byte) error {
	return unmarshalAddress(b, &x.Address)
}

func (x *GetAllEmployeesRequest) marshalWire(b []byte) ([]byte, error) {
	return b, nil
}

func (x *GetAllEmployeesRequest) unmarshalWire(b []byte) error {
	return rangeFields(b, func(protowire.Number, protowire.Type, []byte) error { return nil })
}

func (x *UpdateEmployeeRoleRequest) marshalWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Address)
	return appendString(b, 2, x.Role), nil
}

func (x *UpdateEmployeeRoleRequest) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		var err error
		switch num {
		case 1:
			x.Address, err = consumeString(typ, v)
		case 2:
			x.Role, err = consumeString(typ, v)
		}
		return err
	})
}

func (x *UpdateEmployeeDataRequest) marshalWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Address)
	b = appendString(b, 2, x.Role)
	return appendString(b, 3, x.Name), nil
}

func (x *UpdateEmployeeDataRequest) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		var err error
		switch num {
		case 1:
			x.Address, err = consumeString(typ, v)
		case 2:
			x.Role, err = consumeString(typ, v)
		case 3:
			x.Name, err = consumeString(typ, v)
		}
		return err
	})
}

func (x *UpdateEmployeeNameRequest) marshalWire(b []byte) ([]byte, error) {
	b = appendString(b, 1, x.Address)
	return appendString(b, 2, x.Name), nil
}

func (x *UpdateEmployeeNameRequest) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		var err error
		switch num {
		case 1:
			x.Address, err = consumeString(typ, v)
		case 2:
			x.Name, err = consumeString(typ, v)
		}
		return err
	})
}

func (x *AddEmployeeResponse) marshalWire(b []byte) ([]byte, error) {
	return appendEmployee(b, 1, x.Employee)
}

func (x *AddEmployeeResponse) unmarshalWire(b []byte) error {
	return unmarshalEmployeeField(b, &x.Employee)
}

func (x *ToggleEmploymentStatusResponse) marshalWire(b []byte) ([]byte, error) {
	return appendEmployee(b, 1, x.Employee)
}

func (x *ToggleEmploymentStatusResponse) unmarshalWire(b []byte) error {
	return unmarshalEmployeeField(b, &x.Employee)
}

func (x *GetEmployeeByAddressResponse) marshalWire(b []byte) ([]byte, error) {
	return appendEmployee(b, 1, x.Employee)
}

func (x *GetEmployeeByAddressResponse) unmarshalWire(b []byte) error {
	return unmarshalEmployeeField(b, &x.Employee)
}

func (x *UpdateEmployeeRoleResponse) marshalWire(b []byte) ([]byte, error) {
	return appendEmployee(b, 1, x.Employee)
}

func (x *UpdateEmployeeRoleResponse) unmarshalWire(b []byte) error {
	return unmarshalEmployeeField(b, &x.Employee)
}

func (x *UpdateEmployeeDataResponse) marshalWire(b []byte) ([]byte, error) {
	return appendEmployee(b, 1, x.Employee)
}

func (x *UpdateEmployeeDataResponse) unmarshalWire(b []byte) error {
	return unmarshalEmployeeField(b, &x.Employee)
}

func (x *UpdateEmployeeNameResponse) marshalWire(b []byte) ([]byte, error) {
	return appendEmployee(b, 1, x.Employee)
}

func (x *UpdateEmployeeNameResponse) unmarshalWire(b []byte) error {
	return unmarshalEmployeeField(b, &x.Employee)
}

func (x *GetAllEmployeesResponse) marshalWire(b []byte) ([]byte, error) {
	for _, e := range x.Employees {
		var err error
		if b, err = appendEmployee(b, 1, e); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (x *GetAllEmployeesResponse) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		if num != 1 {
			return nil
		}
		e, err := consumeEmployee(typ, v)
		if err != nil {
			return err
		}
		x.Employees = append(x.Employees, e)
		return nil
	})
}

func (x *CanAccessGarageResponse) marshalWire(b []byte) ([]byte, error) {
	return appendBool(b, 1, x.Allowed), nil
}

func (x *CanAccessGarageResponse) unmarshalWire(b []byte) error {
	return rangeFields(b, func(num protowire.Number, typ protowire.Type, v []byte) error {
		var err error
		if num == 1 {
			x.Allowed, err = consumeBool(typ, v)
		}
		return err
	})
}

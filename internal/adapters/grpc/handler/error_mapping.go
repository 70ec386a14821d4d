package handler

import (
	"errors"

	registrypb "github.com/ogurasousui/garage-registry/internal/adapters/grpc/registry/v1"
	"github.com/ogurasousui/garage-registry/internal/core/employee"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return invalidDataStatus(codes.NotFound, err)
	case errors.Is(err, employee.ErrEmployeeAlreadyExists):
		return invalidDataStatus(codes.AlreadyExists, err)
	case errors.Is(err, employee.ErrInvalidDataPassed):
		return invalidDataStatus(codes.InvalidArgument, err)
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// invalidDataStatus は INVALID_DATA_PASSED の ErrorInfo を付与したステータスを返します。
func invalidDataStatus(code codes.Code, err error) error {
	st := status.New(code, err.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: registrypb.ReasonInvalidDataPassed,
		Domain: registrypb.ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

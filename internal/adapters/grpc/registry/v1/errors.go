package registrypb

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

const (
	// ReasonInvalidDataPassed は拒否された呼び出しの ErrorInfo.Reason です。
	ReasonInvalidDataPassed = "INVALID_DATA_PASSED"
	// ErrorDomain は ErrorInfo.Domain です。
	ErrorDomain = "garage-registry"
)

// IsInvalidDataPassed は err が INVALID_DATA_PASSED による拒否かどうかを判定します。
// gRPC のステータスコードではなく ErrorInfo の reason で判定します。
func IsInvalidDataPassed(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.GetReason() == ReasonInvalidDataPassed {
			return true
		}
	}
	return false
}

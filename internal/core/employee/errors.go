package employee

import (
	"errors"
	"fmt"
)

// ReasonInvalidDataPassed は呼び出し側が照合するエラー種別名です。
const ReasonInvalidDataPassed = "INVALID_DATA_PASSED"

// ErrInvalidDataPassed は登録簿が返す唯一のエラー種別です。以下の詳細エラーはすべてこれをラップします。
var ErrInvalidDataPassed = errors.New(ReasonInvalidDataPassed)

var (
	ErrInvalidAddress        = fmt.Errorf("employee: invalid address: %w", ErrInvalidDataPassed)
	ErrInvalidName           = fmt.Errorf("employee: invalid name: %w", ErrInvalidDataPassed)
	ErrInvalidRole           = fmt.Errorf("employee: invalid role: %w", ErrInvalidDataPassed)
	ErrEmployeeNotFound      = fmt.Errorf("employee: not found: %w", ErrInvalidDataPassed)
	ErrEmployeeAlreadyExists = fmt.Errorf("employee: already exists: %w", ErrInvalidDataPassed)
)

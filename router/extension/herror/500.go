package herror

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
)

// InternalError 内部エラー
type InternalError struct {
	// Err エラー
	Err error
	// Stack スタックトレース
	Stack []byte
	// Fields zapログ用フィールド
	Fields []zap.Field
	// Panic panicによるエラーかどうか
	Panic bool
}

func (i *InternalError) Error() string {
	return fmt.Sprintf("%s\n%s", i.Err.Error(), i.Stack)
}

func (i *InternalError) Unwrap() error {
	return i.Err
}

// InternalServerError 500エラー
func InternalServerError(err error) error {
	return internalError(err, 2)
}

// Panic panicから回復したエラー
func Panic(err error) error {
	ie := internalError(err, 4)
	ie.Panic = true
	ie.Fields = append(ie.Fields, zap.Bool("panic", true))
	return ie
}

func internalError(err error, skip int) *InternalError {
	return &InternalError{
		Err:    err,
		Stack:  debug.Stack(),
		Fields: []zap.Field{zapdriver.ErrorReport(runtime.Caller(skip)), zap.Error(err)},
	}
}

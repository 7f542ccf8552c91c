package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/knn/vector"
	sqlite "modernc.org/sqlite"
)

var registerOnce sync.Once
var registerErr error

// RegisterFunctions registers knn_l2 with the driver so it is available on
// new connections opened after this call. Existing open connections will not
// see the function. Calling it more than once is safe.
func RegisterFunctions() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction("knn_l2", 2, knnL2Impl)
	})
	return registerErr
}

func asFeatures(arg driver.Value) ([]float64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.DecodeFeatures(v)
	default:
		return nil, fmt.Errorf("knn_l2: unsupported argument type %T for features; want BLOB", arg)
	}
}

func knnL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("knn_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asFeatures(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asFeatures(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	d, err := vector.Distance(a, b)
	if err != nil {
		return nil, err
	}
	return d, nil
}

package js

import (
	"errors"
	"iter"

	"github.com/grafana/sobek"
)

// Throw js exception
func Throw(rt *sobek.Runtime, err error) {
	var ex *sobek.Exception
	if errors.As(err, &ex) { //nolint:errorlint
		panic(ex)
	}
	panic(rt.NewGoError(err))
}

// Iterator returns a JavaScript iterator
func Iterator(rt *sobek.Runtime, fn iter.Seq[any]) *sobek.Object {
	p := rt.NewObject()
	next, _ := iter.Pull(fn)
	_ = p.SetSymbol(sobek.SymIterator, func(call sobek.FunctionCall) sobek.Value { return call.This })
	_ = p.Set("next", func(call sobek.FunctionCall) sobek.Value {
		ret := rt.NewObject()
		value, ok := next()
		_ = ret.Set("value", value)
		_ = ret.Set("done", !ok)
		return ret
	})
	return p
}

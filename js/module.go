// Package js exposes the searchparams functions to JavaScript code
// running on the sobek runtime.
package js

import (
	"github.com/grafana/sobek"
	"github.com/shiroyk/searchparams"
)

// Module the searchparams JavaScript module.
type Module struct{}

// Instantiate returns the module object with the parse, build, encode
// and decode functions and the SearchParams constructor.
func (m Module) Instantiate(rt *sobek.Runtime) (sobek.Value, error) {
	ret := rt.NewObject()
	ctor, err := new(SearchParams).Instantiate(rt)
	if err != nil {
		return nil, err
	}
	_ = ret.Set("SearchParams", ctor)
	_ = ret.Set("parse", m.parse)
	_ = ret.Set("build", m.build)
	_ = ret.Set("encode", m.encode)
	_ = ret.Set("decode", m.decode)
	return ret, nil
}

// Enable installs the module object as the "searchparams" global, for
// hosts that do not run a module loader.
func Enable(rt *sobek.Runtime) error {
	mod, err := Module{}.Instantiate(rt)
	if err != nil {
		return err
	}
	return rt.GlobalObject().Set("searchparams", mod)
}

func (Module) parse(query string) map[string]string { return searchparams.Parse(query) }

func (Module) build(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	arg := call.Argument(0)
	switch {
	case sobek.IsUndefined(arg):
		return rt.ToValue("")
	case arg.ExportType() == TypeSearchParams:
		other := arg.Export().(*searchParams)
		return rt.ToValue(searchparams.Build(other.data))
	default:
		params, ok := arg.Export().(map[string]any)
		if !ok {
			panic(rt.NewTypeError("expected an object of parameters, got %s", arg))
		}
		query, err := searchparams.BuildAny(params)
		if err != nil {
			Throw(rt, err)
		}
		return rt.ToValue(query)
	}
}

func (Module) encode(s string) string { return searchparams.EncodeComponent(s) }

func (Module) decode(s string) string { return searchparams.DecodeComponent(s) }

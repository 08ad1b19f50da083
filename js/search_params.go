package js

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/grafana/sobek"
	"github.com/shiroyk/searchparams"
)

// SearchParams defines utility methods to work with the query string of
// a URL as a single valued parameter mapping: set overwrites, later
// duplicates win. Keys keep their insertion order until sort is called.
type SearchParams struct{}

func (u *SearchParams) prototype(rt *sobek.Runtime) *sobek.Object {
	p := rt.NewObject()
	_ = p.Set("delete", u.delete)
	_ = p.Set("forEach", u.forEach)
	_ = p.Set("get", u.get)
	_ = p.Set("has", u.has)
	_ = p.Set("set", u.set)
	_ = p.Set("sort", u.sort)
	_ = p.Set("keys", u.keys)
	_ = p.Set("values", u.values)
	_ = p.Set("entries", u.entries)
	_ = p.SetSymbol(sobek.SymIterator, u.entries)
	_ = p.SetSymbol(sobek.SymToStringTag, rt.ToValue("SearchParams"))
	_ = p.SetSymbol(sobek.SymHasInstance, func(call sobek.FunctionCall) sobek.Value {
		return rt.ToValue(call.Argument(0).ExportType() == TypeSearchParams)
	})
	return p
}

func (u *SearchParams) constructor(call sobek.ConstructorCall, rt *sobek.Runtime) *sobek.Object {
	params := call.Argument(0)

	var ret searchParams
	ret.data = make(map[string]string)

	switch {
	case sobek.IsUndefined(params):

	case params.ExportType().Kind() == reflect.String:
		// "foo=1&bar=2"
		str := strings.TrimPrefix(params.String(), "?")
		for _, kv := range strings.Split(str, "&") {
			k, v, _ := strings.Cut(kv, "=")
			if k == "" {
				continue
			}
			key := searchparams.DecodeComponent(k)
			if _, ok := ret.data[key]; !ok {
				ret.keys = append(ret.keys, key)
			}
			ret.data[key] = searchparams.DecodeComponent(v)
		}

	case params.ExportType() == TypeSearchParams:
		other := params.Export().(*searchParams)
		ret.keys = slices.Clone(other.keys)
		ret.data = maps.Clone(other.data)

	default:
		// {foo: "1", bar: 2}
		object := params.ToObject(rt)
		for _, key := range object.Keys() {
			if _, ok := ret.data[key]; !ok {
				ret.keys = append(ret.keys, key)
			}
			ret.data[key] = object.Get(key).String()
		}
	}

	obj := rt.ToValue(&ret).ToObject(rt)
	_ = obj.SetPrototype(call.This.Prototype())
	return obj
}

// Instantiate returns the SearchParams constructor.
func (u *SearchParams) Instantiate(rt *sobek.Runtime) (sobek.Value, error) {
	proto := u.prototype(rt)
	ctor := rt.ToValue(u.constructor).(*sobek.Object)
	_ = proto.DefineDataProperty("constructor", ctor, sobek.FLAG_FALSE, sobek.FLAG_FALSE, sobek.FLAG_FALSE)
	_ = ctor.Set("prototype", proto)
	return ctor, nil
}

// TypeSearchParams the reflect type of the SearchParams inner value.
var TypeSearchParams = reflect.TypeOf((*searchParams)(nil))

func toSearchParams(rt *sobek.Runtime, value sobek.Value) *searchParams {
	if value.ExportType() == TypeSearchParams {
		return value.Export().(*searchParams)
	}
	panic(rt.NewTypeError(`Value of "this" must be of type SearchParams`))
}

type searchParams struct {
	keys []string
	data map[string]string
}

func (u searchParams) String() string {
	if u.data == nil {
		return ""
	}
	var buf strings.Builder
	for _, key := range u.keys {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(searchparams.EncodeComponent(key))
		buf.WriteByte('=')
		buf.WriteString(searchparams.EncodeComponent(u.data[key]))
	}
	return buf.String()
}

func (*SearchParams) delete(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	name := call.Argument(0).String()
	this.keys = slices.DeleteFunc(this.keys, func(k string) bool { return k == name })
	delete(this.data, name)
	return sobek.Undefined()
}

func (*SearchParams) forEach(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	callback, ok := sobek.AssertFunction(call.Argument(0))
	if !ok {
		panic(rt.NewTypeError("callback is not a function"))
	}

	for _, key := range this.keys {
		// forEach callback signature: (value, key, this)
		_, err := callback(sobek.Undefined(), rt.ToValue(this.data[key]), rt.ToValue(key), call.This)
		if err != nil {
			Throw(rt, err)
		}
	}

	return sobek.Undefined()
}

func (*SearchParams) get(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	name := call.Argument(0).String()
	if v, ok := this.data[name]; ok {
		return rt.ToValue(v)
	}
	return rt.ToValue(nil)
}

func (*SearchParams) has(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	name := call.Argument(0).String()
	_, ok := this.data[name]
	return rt.ToValue(ok)
}

func (*SearchParams) set(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	name := call.Argument(0).String()
	value := call.Argument(1).String()

	if _, ok := this.data[name]; !ok {
		this.keys = append(this.keys, name)
	}
	this.data[name] = value
	return sobek.Undefined()
}

func (*SearchParams) sort(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	slices.Sort(this.keys)
	return sobek.Undefined()
}

func (*SearchParams) keys(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	return Iterator(rt, func(yield func(any) bool) {
		for _, key := range this.keys {
			if !yield(key) {
				return
			}
		}
	})
}

func (*SearchParams) values(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	return Iterator(rt, func(yield func(any) bool) {
		for _, key := range this.keys {
			if !yield(this.data[key]) {
				return
			}
		}
	})
}

func (*SearchParams) entries(call sobek.FunctionCall, rt *sobek.Runtime) sobek.Value {
	this := toSearchParams(rt, call.This)
	return Iterator(rt, func(yield func(any) bool) {
		for _, key := range this.keys {
			if !yield(rt.NewArray(key, this.data[key])) {
				return
			}
		}
	})
}

package js

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchParams(t *testing.T) {
	t.Parallel()
	rt := sobek.New()
	require.NoError(t, Enable(rt))

	run := func(t *testing.T, script string) sobek.Value {
		v, err := rt.RunString(script)
		require.NoError(t, err)
		return v
	}

	t.Run("constructor", func(t *testing.T) {
		tests := []struct {
			name     string
			script   string
			expected string
		}{
			{"empty", `new searchparams.SearchParams()`, ""},
			{"query string", `new searchparams.SearchParams("a=1&b=2")`, "a=1&b=2"},
			{"leading question mark", `new searchparams.SearchParams("?a=1&b=2")`, "a=1&b=2"},
			{"empty key dropped", `new searchparams.SearchParams("=&key2=value2")`, "key2=value2"},
			{"duplicate key last wins", `new searchparams.SearchParams("k=1&k=2")`, "k=2"},
			{"escapes decoded", `new searchparams.SearchParams("key1%26=test1%3D")`, "key1%26=test1%3D"},
			{"object", `new searchparams.SearchParams({a: 1, b: "2"})`, "a=1&b=2"},
			{"copy", `new searchparams.SearchParams(new searchparams.SearchParams("a=1"))`, "a=1"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, run(t, tt.script+`.toString()`).String())
			})
		}
	})

	t.Run("copy is independent", func(t *testing.T) {
		v := run(t, `(() => {
			const src = new searchparams.SearchParams("a=1");
			const copy = new searchparams.SearchParams(src);
			copy.set("a", "changed");
			return src.toString() + "|" + copy.toString();
		})()`)
		assert.Equal(t, "a=1|a=changed", v.String())
	})

	t.Run("get set has delete", func(t *testing.T) {
		v := run(t, `(() => {
			const sp = new searchparams.SearchParams("a=1&b=2");
			sp.set("a", "11");
			sp.set("c", "3");
			sp.delete("b");
			return [sp.get("a"), sp.get("b"), sp.get("c"), sp.has("a"), sp.has("b")];
		})()`)
		obj := v.ToObject(rt)
		assert.Equal(t, "11", obj.Get("0").String())
		assert.True(t, sobek.IsNull(obj.Get("1")))
		assert.Equal(t, "3", obj.Get("2").String())
		assert.True(t, obj.Get("3").ToBoolean())
		assert.False(t, obj.Get("4").ToBoolean())
	})

	t.Run("set keeps insertion order", func(t *testing.T) {
		v := run(t, `(() => {
			const sp = new searchparams.SearchParams("b=2&a=1");
			sp.set("b", "22");
			return sp.toString();
		})()`)
		assert.Equal(t, "b=22&a=1", v.String())
	})

	t.Run("sort", func(t *testing.T) {
		v := run(t, `(() => {
			const sp = new searchparams.SearchParams("c=3&a=1&b=2");
			sp.sort();
			return sp.toString();
		})()`)
		assert.Equal(t, "a=1&b=2&c=3", v.String())
	})

	t.Run("forEach", func(t *testing.T) {
		v := run(t, `(() => {
			const sp = new searchparams.SearchParams("a=1&b=2");
			const seen = [];
			sp.forEach((value, key) => seen.push(key + ":" + value));
			return seen.join(",");
		})()`)
		assert.Equal(t, "a:1,b:2", v.String())
	})

	t.Run("iterators", func(t *testing.T) {
		v := run(t, `(() => {
			const sp = new searchparams.SearchParams("b=2&a=1");
			return {
				keys: [...sp.keys()].join(","),
				values: [...sp.values()].join(","),
				entries: [...sp.entries()].map((e) => e.join(":")).join(","),
				spread: [...sp].map((e) => e.join(":")).join(","),
			};
		})()`)
		obj := v.ToObject(rt)
		assert.Equal(t, "b,a", obj.Get("keys").String())
		assert.Equal(t, "2,1", obj.Get("values").String())
		assert.Equal(t, "b:2,a:1", obj.Get("entries").String())
		assert.Equal(t, "b:2,a:1", obj.Get("spread").String())
	})

	t.Run("toString escapes", func(t *testing.T) {
		v := run(t, `(() => {
			const sp = new searchparams.SearchParams();
			sp.set("key1&", "test1=");
			return sp.toString();
		})()`)
		assert.Equal(t, "key1%26=test1%3D", v.String())
	})

	t.Run("instanceof", func(t *testing.T) {
		v := run(t, `new searchparams.SearchParams() instanceof searchparams.SearchParams`)
		assert.True(t, v.ToBoolean())
	})

	t.Run("toStringTag", func(t *testing.T) {
		v := run(t, `Object.prototype.toString.call(new searchparams.SearchParams())`)
		assert.Equal(t, "[object SearchParams]", v.String())
	})

	t.Run("this type checked", func(t *testing.T) {
		_, err := rt.RunString(`searchparams.SearchParams.prototype.get.call({}, "a")`)
		assert.Error(t, err)
	})
}

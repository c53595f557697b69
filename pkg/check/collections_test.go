package check

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vnykmshr/guard/internal/testutil"
)

type stringSet map[string]struct{}

func (s stringSet) Len() int { return len(s) }

type ids []int

type counted struct{ n int }

func (c *counted) Len() int { return c.n }

func TestNotEmpty(t *testing.T) {
	const defaultMsg = "this array must not be empty: it must contain at least 1 element"

	t.Run("nil slice", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmpty([]string(nil)), defaultMsg)
	})

	t.Run("empty slice", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmpty([]any{}), defaultMsg)
	})

	t.Run("named slice type", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmpty(ids{}), defaultMsg)
		assert.NoError(t, NotEmpty(ids{7}))
	})

	t.Run("one element", func(t *testing.T) {
		assert.NoError(t, NotEmpty([]string{""}))
	})

	t.Run("nil element counts", func(t *testing.T) {
		assert.NoError(t, NotEmpty([]*counted{nil}))
	})

	t.Run("custom message", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmpty([]int{}, "The array must have elements"), "The array must have elements")
	})
}

func TestNotEmptyCollection(t *testing.T) {
	const defaultMsg = "this collection must not be empty: it must contain at least 1 element"

	var nilCounted *counted
	var nilSet stringSet

	populated := list.New()
	populated.PushBack(1)

	tests := []struct {
		name    string
		c       Collection
		wantErr bool
	}{
		{"nil", nil, true},
		{"typed nil pointer", nilCounted, true},
		{"typed nil map", nilSet, true},
		{"empty list", list.New(), true},
		{"zero length", &counted{}, true},
		{"empty set", stringSet{}, true},
		{"populated list", populated, false},
		{"populated set", stringSet{"a": {}}, false},
		{"positive length", &counted{n: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotEmptyCollection(tt.c)
			if tt.wantErr {
				testutil.AssertArgumentViolation(t, err, defaultMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("custom message", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmptyCollection(list.New(), "Collection must have elements"), "Collection must have elements")
	})
}

func TestNotEmptyMap(t *testing.T) {
	const defaultMsg = "this map must not be empty; it must contain at least one entry"

	t.Run("nil map", func(t *testing.T) {
		var m map[string]string
		testutil.AssertArgumentViolation(t, NotEmptyMap(m), defaultMsg)
	})

	t.Run("empty map", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmptyMap(map[string]int{}), defaultMsg)
	})

	t.Run("one entry", func(t *testing.T) {
		assert.NoError(t, NotEmptyMap(map[string]string{"k": "v"}))
	})

	t.Run("named map type", func(t *testing.T) {
		assert.NoError(t, NotEmptyMap(stringSet{"a": {}}))
	})

	t.Run("custom message", func(t *testing.T) {
		testutil.AssertArgumentViolation(t, NotEmptyMap(map[int]bool{}, "Map must have entries"), "Map must have entries")
	})
}

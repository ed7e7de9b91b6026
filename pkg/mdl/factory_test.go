package mdl_test

import (
	"testing"

	"github.com/justtrackio/graphmail/pkg/mdl"
	"github.com/stretchr/testify/assert"
)

func TestBox(t *testing.T) {
	s := mdl.Box("string")
	assert.Equal(t, "string", *s)

	i := mdl.Box(42)
	assert.Equal(t, 42, *i)
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, mdl.NilIfEmpty(""))

	s := mdl.NilIfEmpty("value")
	assert.NotNil(t, s)
	assert.Equal(t, "value", *s)
}

func TestEmptyIfNil(t *testing.T) {
	assert.Equal(t, "", mdl.EmptyIfNil[string](nil))
	assert.Equal(t, "value", mdl.EmptyIfNil(mdl.Box("value")))
}

func TestIsNil(t *testing.T) {
	var m map[string]string
	var s []string
	var p *int

	assert.True(t, mdl.IsNil(nil))
	assert.True(t, mdl.IsNil(m))
	assert.True(t, mdl.IsNil(s))
	assert.True(t, mdl.IsNil(p))
	assert.False(t, mdl.IsNil(""))
	assert.False(t, mdl.IsNil(0))
	assert.False(t, mdl.IsNil(map[string]string{}))
}

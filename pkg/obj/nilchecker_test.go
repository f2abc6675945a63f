package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type store struct{}

func TestIsNil(t *testing.T) {
	var s *store
	var i interface{} = s

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(i))
	assert.True(t, IsNil(map[string]int(nil)))
	assert.False(t, IsNil(&store{}))
	assert.False(t, IsNil(3))
}

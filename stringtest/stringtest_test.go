package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jlv/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stringtest.JoinLF())
	assert.Equal(t, "one", stringtest.JoinLF("one"))
	assert.Equal(t, "one\ntwo\nthree", stringtest.JoinLF("one", "two", "three"))
}

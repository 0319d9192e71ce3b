package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem(t *testing.T) {
	var buf bytes.Buffer

	Item(&buf, 42)
	Item(&buf, true)
	Item(&buf, 2.5)
	assert.Equal(t, "42 true 2.5 ", buf.String())

	buf.Reset()
	Item(&buf, "hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestSeq(t *testing.T) {
	var buf bytes.Buffer

	Seq(&buf, []int{1, 2, 3})
	assert.Equal(t, "1 2 3 \n", buf.String())

	buf.Reset()
	Seq(&buf, []int{})
	assert.Equal(t, "\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	err := Table(&buf, []string{"a", "b"}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, "a\tx\nb\ty\n", buf.String())

	err = Table(&buf, []string{"a"}, []string{"x", "y"})
	assert.Error(t, err)
}

func TestChrome(t *testing.T) {
	banner := Banner("ContainerAlgorithm:Exercise 1")
	assert.Contains(t, banner, "ContainerAlgorithm:Exercise 1")
	assert.True(t, strings.HasSuffix(banner, "\n\n"))

	rule := Rule()
	assert.Contains(t, rule, "------------------")
	assert.True(t, strings.HasPrefix(rule, "\n"))
	assert.True(t, strings.HasSuffix(rule, "\n\n"))
}

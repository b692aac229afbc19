package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestYAMLParser_KeepsUnsetFields(t *testing.T) {
	d := doc{Name: "default", Count: 3}
	require.NoError(t, NewYAMLParser(true).Parse([]byte("count: 5\n"), &d))
	assert.Equal(t, doc{Name: "default", Count: 5}, d)
}

func TestYAMLParser_Empty(t *testing.T) {
	d := doc{Name: "default"}
	require.NoError(t, NewYAMLParser(true).Parse(nil, &d))
	assert.Equal(t, "default", d.Name)
}

func TestYAMLParser_Strict(t *testing.T) {
	var d doc
	assert.Error(t, NewYAMLParser(true).Parse([]byte("nmae: typo\n"), &d))
	assert.NoError(t, NewYAMLParser(false).Parse([]byte("nmae: typo\n"), &d))
}

func TestYAMLParser_Malformed(t *testing.T) {
	var d doc
	assert.Error(t, NewYAMLParser(false).Parse([]byte("name: [\n"), &d))
}

package values_test

import (
	"testing"

	"fjacquet/proposal-search/cmd/values"

	"github.com/stretchr/testify/assert"
)

func TestValuesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "values", values.Cmd.Use)
	assert.Contains(t, values.Cmd.Short, "unique categories")
	assert.Contains(t, values.Cmd.Long, "distinct, sorted values")
	assert.NotNil(t, values.Cmd.RunE)
	assert.Error(t, values.Cmd.Args(values.Cmd, []string{"extra"}))
}

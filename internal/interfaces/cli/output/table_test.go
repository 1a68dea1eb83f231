package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "ID", "RESULT")
	tbl.Row(7, Outcome(true))
	tbl.Row(1234, Outcome(false))
	require.NoError(t, tbl.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID    RESULT", lines[0])
	assert.Equal(t, "7     ok", lines[1])
	assert.Equal(t, "1234  failed", lines[2])
}

package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	fxtesting "github.com/clktmr/fx/testing"
	"github.com/clktmr/fx/tools/table"
)

func TestMain(m *testing.M) { fxtesting.TestMain(m) }

func TestOperations(t *testing.T) {
	assert.Equal(t, []string{"abs", "cos", "neg", "recip", "sin", "sqrt", "square", "tan"}, table.Operations())
}

func TestWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	err := table.Write(&buf, "exp", table.Options{From: 0, To: 1, Step: 1})
	assert.ErrorIs(t, err, table.ErrUnknownOp)

	for _, opts := range []table.Options{
		{From: 0, To: 1, Step: 0},
		{From: 0, To: 1, Step: -1},
		{From: 1, To: 0, Step: 1},
	} {
		err = table.Write(&buf, "abs", opts)
		assert.ErrorIs(t, err, table.ErrRange, "%+v", opts)
	}
	assert.Zero(t, buf.Len())
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	err := table.Write(&buf, "sin", table.Options{From: -1, To: 1, Step: 0.25, Lang: language.English})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1+9)
	assert.Equal(t, []string{"x", "fx", "value", "ref", "err"}, strings.Fields(lines[0]))
	for _, line := range lines[1:] {
		assert.Len(t, strings.Fields(line), 5, line)
	}
}

func TestWriteLocalized(t *testing.T) {
	var buf bytes.Buffer
	err := table.Write(&buf, "square", table.Options{From: 1.5, To: 1.5, Step: 1, Lang: language.German})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2,25000")
}

package msa

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/xiles84/pancol/internal/panerr"
)

func TestLoadParsesRecordsInOrder(t *testing.T) {
	m, err := Load(strings.NewReader(">seq0\nA-CGT\n>seq1\nAACGT\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"seq0", "seq1"}, m.Names)
	require.Equal(t, []string{"A-CGT", "AACGT"}, m.Rows)
	require.Equal(t, 5, m.Width)
}

func TestLoadJoinsMultilineRecords(t *testing.T) {
	m, err := Load(strings.NewReader(">seq0\nAC\nGT\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"ACGT"}, m.Rows)
}

func TestLoadRejectsUnequalWidth(t *testing.T) {
	_, err := Load(strings.NewReader(">seq0\nACGT\n>seq1\nAC\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, panerr.ErrInputFormat))
}

func TestLoadRejectsEmptyCorpus(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	require.Error(t, err)
	require.True(t, errors.Is(err, panerr.ErrEmptyCorpus))
}

func TestLoadRejectsReservedSymbols(t *testing.T) {
	_, err := Load(strings.NewReader(">seq0\nAC$T\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, panerr.ErrInputFormat))
}

func TestLoadRejectsNonASCII(t *testing.T) {
	_, err := Load(strings.NewReader(">seq0\nACé T\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, panerr.ErrInputFormat))
}

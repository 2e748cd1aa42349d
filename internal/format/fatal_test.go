package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlfmt/internal/token"
)

func TestBlockUseClauseIsUnsupported(t *testing.T) {
	ts, file := parseSource(t, "configuration c of e is for rtl use work.pkg.all; end for; end;")
	out, err := FormatFile(ts, file, Options{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrUnsupportedConstruct)

	var ie *InternalError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, token.KwUse, ts.Kind(ie.Token))
}

func TestTokenRoleMismatchIsFatal(t *testing.T) {
	ts, file := parseSource(t, "configuration c of e is for rtl end for; end;")
	blk := file.Units[0].Block
	blk.EndForToken = blk.EndToken

	_, err := FormatFile(ts, file, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenContract)
	assert.Contains(t, err.Error(), "want [for]")
}

func TestOutOfRangeTokenIsFatal(t *testing.T) {
	ts, file := parseSource(t, "configuration c of e is for rtl end for; end;")
	file.Units[0].IsToken = token.ID(ts.Len() + 10)

	out, err := Configuration(ts, file.Units[0], Options{})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrTokenContract)
}

func TestNestingLimit(t *testing.T) {
	src := "configuration c of e is for a for b for c end for; end for; end for; end;"
	ts, file := parseSource(t, src)

	_, err := FormatFile(ts, file, Options{MaxDepth: 3})
	require.NoError(t, err)

	_, err = FormatFile(ts, file, Options{MaxDepth: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNestingTooDeep)
}

func TestNilInputs(t *testing.T) {
	ts, _ := parseSource(t, "")
	_, err := FormatFile(ts, nil, Options{})
	require.Error(t, err)
	_, err = BlockConfiguration(nil, nil, Options{})
	require.Error(t, err)
}

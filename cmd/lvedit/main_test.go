package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/lvedit/internal/config"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestDistanceCommand(t *testing.T) {
	out, err := execute(t, "", "distance", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = execute(t, "", "distance", "--deletion", "2", "--insertion", "3", "abc", "")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, err = execute(t, "", "distance", "-t", "words", "-f", "json", "the cat sat", "the cat")
	require.NoError(t, err)
	assert.Equal(t, 1.0, gjson.Get(out, "distance").Float())
	assert.Equal(t, int64(3), gjson.Get(out, "source.#").Int())
}

func TestAlignCommand(t *testing.T) {
	out, err := execute(t, "", "align", "-f", "plain", "ab", "ab")
	require.NoError(t, err)
	assert.Equal(t, "<MAT>\t<MAT>\na\tb\na\tb\n", out)

	out, err = execute(t, "", "align", "-f", "plain", "abc", "ac")
	require.NoError(t, err)
	assert.Equal(t, "<MAT>\t<DEL>\t<MAT>\na\tb\tc\na\t<PAD>\tc\n", out)

	out, err = execute(t, "", "align", "-f", "json", "--seed", "7", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, 3.0, gjson.Get(out, "distance").Float())
	assert.Equal(t, int64(7), gjson.Get(out, "seed").Int())
	assert.Equal(t, int64(7), gjson.Get(out, "ops.#").Int())
	assert.Equal(t, int64(4), gjson.Get(out, "counts.matches").Int())

	out, err = execute(t, "", "align", "abc", "axc")
	require.NoError(t, err)
	assert.Contains(t, out, "<SUB>")
	assert.Contains(t, out, "distance")
}

func TestAlignCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "", "align", "-f", "yaml", "a", "b")
	assert.ErrorContains(t, err, "unsupported --format")
}

func TestMatrixCommand(t *testing.T) {
	out, err := execute(t, "", "matrix", "ab", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "ε")
	assert.Contains(t, out, "2")
}

func TestBatchCommand(t *testing.T) {
	in := `{"id":"a","source":"kitten","target":"sitting"}
{"id":"b","source":"abc","target":"abc"}
`
	out, err := execute(t, in, "batch", "--workers", "2", "--align")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a", gjson.Get(lines[0], "id").String())
	assert.Equal(t, 3.0, gjson.Get(lines[0], "distance").Float())
	assert.Equal(t, 0.0, gjson.Get(lines[1], "distance").Float())
	assert.Equal(t, "<MAT>", gjson.Get(lines[1], "ops.0").String())
}

func TestConfigCommands(t *testing.T) {
	out, err := execute(t, "", "config", "sample")
	require.NoError(t, err)
	assert.Equal(t, config.SampleConfig(), out)

	out, err = execute(t, "", "config", "show", "--deletion", "2.5", "-t", "words")
	require.NoError(t, err)
	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Cost.Deletion)
	assert.Equal(t, "words", cfg.Tokenize.Mode)
}

func TestInvalidOverride(t *testing.T) {
	_, err := execute(t, "", "distance", "--substitution", "-1", "a", "b")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

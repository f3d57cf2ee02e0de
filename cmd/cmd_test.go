package cmd

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/redneckbeard/rangedint/emitter"
	"github.com/redneckbeard/rangedint/table"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	verbose, tablePath = false, ""
	Target, Package, highlight = "", emitter.DefaultPackage, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTable(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestGenerateToStdout(t *testing.T) {
	out, _, err := run(t, "generate")
	require.NoError(t, err)
	want, err := emitter.Source(table.Builtin(), emitter.Options{})
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestGenerateToTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "params.go")
	out, errOut, err := run(t, "generate", "--target", target, "--package", "params")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Wrote 10 types to "+target)

	f, err := parser.ParseFile(token.NewFileSet(), target, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "params", f.Name.Name)
}

func TestGenerateFromTable(t *testing.T) {
	path := writeTable(t, "types:\n  - name: Volume\n    description: Volume\n    lower: 0\n    upper: 127\n    default: 100\n")
	out, _, err := run(t, "generate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "type Volume struct")
	assert.NotContains(t, out, "type Fine struct")
}

func TestGenerateInvalidTable(t *testing.T) {
	path := writeTable(t, "types:\n  - name: Volume\n    lower: 127\n    upper: 0\n")
	out, _, err := run(t, "generate", "-f", path)
	require.ErrorIs(t, err, table.ErrInvalidSpec)
	assert.Empty(t, out)
}

func TestGenerateHighlight(t *testing.T) {
	out, _, err := run(t, "generate", "--highlight")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Fine")
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	for _, s := range table.Builtin() {
		assert.Contains(t, out, s.Name)
		assert.Contains(t, out, s.Interval())
	}
	assert.Contains(t, out, "Fine tuning")
}

func TestCheckBuiltin(t *testing.T) {
	out, _, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Checking 'Fine': PASS")
	assert.Contains(t, out, "10 passing types, 0 failures")
}

func TestCheckDefaultOutOfRange(t *testing.T) {
	path := writeTable(t, "types:\n  - name: EffectPath\n    description: Effect path\n    lower: 1\n    upper: 4\n    default: 0\n  - name: Gain\n    lower: 1\n    upper: 63\n    default: 1\n")
	out, _, err := run(t, "check", "--table", path)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "Checking 'EffectPath': FAIL")
	assert.Contains(t, out, "default 0 is outside 1...4")
	assert.Contains(t, out, "Checking 'Gain': PASS")
	assert.Contains(t, out, "1 passing types, 1 failures")
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := run(t, "generate", "extra")
	assert.Error(t, err)
}

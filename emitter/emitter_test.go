package emitter

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/redneckbeard/rangedint/table"
)

func parse(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "k5000.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source does not parse:\n%s", src)
	return f
}

func typeNames(f *ast.File) []string {
	var names []string
	for _, decl := range f.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.TYPE {
			names = append(names, gen.Specs[0].(*ast.TypeSpec).Name.Name)
		}
	}
	return names
}

func constants(f *ast.File) map[string]string {
	consts := map[string]string{}
	for _, decl := range f.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.CONST {
			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)
				consts[vs.Names[0].Name] = types.ExprString(vs.Values[0])
			}
		}
	}
	return consts
}

func funcs(f *ast.File) map[string]*ast.FuncDecl {
	fns := map[string]*ast.FuncDecl{}
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			name := fn.Name.Name
			if fn.Recv != nil {
				name = types.ExprString(fn.Recv.List[0].Type) + "." + name
			}
			fns[name] = fn
		}
	}
	return fns
}

func TestSourceBuiltin(t *testing.T) {
	specs := table.Builtin()
	src, err := Source(specs, Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(src), "// Code generated by rangedint. DO NOT EDIT.\n"))
	f := parse(t, src)
	assert.True(t, ast.IsGenerated(f))
	assert.Equal(t, DefaultPackage, f.Name.Name)

	var want []string
	for _, s := range specs {
		want = append(want, s.Name)
	}
	if diff := cmp.Diff(want, typeNames(f)); diff != "" {
		t.Errorf("type order mismatch (-want +got):\n%s", diff)
	}

	var paths []string
	for _, imp := range f.Imports {
		paths = append(paths, imp.Path.Value)
	}
	assert.ElementsMatch(t, []string{`"strconv"`, `"` + DefaultRuntimeImport + `"`}, paths)
}

func TestFineBlock(t *testing.T) {
	src, err := Source([]table.TypeSpec{{Name: "Fine", Description: "Fine tuning", Lower: -63, Upper: 63, Default: 0}}, Options{})
	require.NoError(t, err)
	f := parse(t, src)

	assert.Contains(t, string(src), "// Fine: Fine tuning (-63...63).\ntype Fine struct {\n\tValue int\n}")
	assert.Equal(t, map[string]string{
		"FineMin":     "-63",
		"FineMax":     "63",
		"FineDefault": "0",
	}, constants(f))
	assert.Contains(t, string(src), "func FineRange() ranged.Range {\n\treturn ranged.Range{Lower: FineMin, Upper: FineMax}\n}")
	assert.NotContains(t, string(src), "var ")
	assert.Contains(t, string(src), `ranged.MustContain(FineRange(), FineDefault, "Fine")`)
	assert.Contains(t, string(src), "return Fine{Value: FineRange().Clamp(v)}")
	assert.Contains(t, string(src), "// NewFine returns the Fine holding FineDefault.")
	assert.Contains(t, string(src), "// FineOf returns v clamped to FineRange as the Fine.")
	assert.Contains(t, string(src), "v, err := ranged.ParseLiteral(s)")

	fns := funcs(f)
	for _, name := range []string{
		"FineRange", "NewFine", "FineOf", "ParseFine",
		"Fine.String", "Fine.MarshalText", "*Fine.UnmarshalText",
		"Fine.MarshalJSON", "*Fine.UnmarshalJSON",
	} {
		assert.Contains(t, fns, name)
	}
	assert.Equal(t, "f", fns["Fine.String"].Recv.List[0].Names[0].Name)
	assert.Empty(t, fns["NewFine"].Type.Params.List)
}

func TestBlocksSeparatedByBlankLine(t *testing.T) {
	specs := table.Builtin()
	src, err := Source(specs, Options{})
	require.NoError(t, err)
	for _, s := range specs[1:] {
		assert.Contains(t, string(src), "}\n\n// "+describe(s)+"\ntype "+s.Name)
	}
}

func TestIdempotent(t *testing.T) {
	first, err := Source(table.Builtin(), Options{})
	require.NoError(t, err)
	second, err := Source(table.Builtin(), Options{})
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
}

func TestOrderFollowsInput(t *testing.T) {
	specs := table.Builtin()
	for i, j := 0, len(specs)-1; i < j; i, j = i+1, j-1 {
		specs[i], specs[j] = specs[j], specs[i]
	}
	src, err := Source(specs, Options{})
	require.NoError(t, err)
	names := typeNames(parse(t, src))
	require.Len(t, names, len(specs))
	assert.Equal(t, "Transpose", names[0])
	assert.Equal(t, "Fine", names[len(names)-1])
}

func TestDefaultOutsideRangeStillGenerates(t *testing.T) {
	src, err := Source([]table.TypeSpec{{Name: "EffectPath", Description: "Effect path", Lower: 1, Upper: 4, Default: 0}}, Options{})
	require.NoError(t, err)
	f := parse(t, src)
	assert.Equal(t, "0", constants(f)["EffectPathDefault"])
	assert.Contains(t, string(src), `ranged.MustContain(EffectPathRange(), EffectPathDefault, "EffectPath")`)
}

func TestInvalidTableWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, []table.TypeSpec{
		{Name: "Fine", Lower: -63, Upper: 63},
		{Name: "Broken", Lower: 10, Upper: 1},
	}, Options{})
	require.ErrorIs(t, err, table.ErrInvalidSpec)
	assert.Zero(t, buf.Len())
}

func TestDerivedNameCollision(t *testing.T) {
	_, err := Source([]table.TypeSpec{
		{Name: "Fine", Upper: 1},
		{Name: "FineOf", Upper: 1},
	}, Options{})
	require.ErrorIs(t, err, table.ErrInvalidSpec)
	assert.Contains(t, err.Error(), "FineOf is declared by both Fine and FineOf")
}

func TestReceiverAvoidsLocals(t *testing.T) {
	src, err := Source([]table.TypeSpec{{Name: "Volume", Description: "Volume", Lower: 0, Upper: 127, Default: 100}}, Options{})
	require.NoError(t, err)
	fns := funcs(parse(t, src))
	assert.Equal(t, "v1", fns["*Volume.UnmarshalText"].Recv.List[0].Names[0].Name)
	assert.Contains(t, string(src), "*v1 = v")
}

func TestPackageOption(t *testing.T) {
	src, err := Source(table.Builtin()[:1], Options{Package: "params", Generator: "paramgen"})
	require.NoError(t, err)
	f := parse(t, src)
	assert.Equal(t, "params", f.Name.Name)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by paramgen. DO NOT EDIT.\n"))

	for _, pkg := range []string{"not-a-package", "_", "1params"} {
		_, err = Source(table.Builtin(), Options{Package: pkg})
		assert.Error(t, err, pkg)
	}
}

func TestNonASCIIName(t *testing.T) {
	specs := []table.TypeSpec{{Name: "Élan", Description: "Élan", Lower: 0, Upper: 3}}
	require.NoError(t, table.Validate(specs))
	src, err := Source(specs, Options{})
	require.NoError(t, err)
	fns := funcs(parse(t, src))
	assert.Equal(t, "é", fns["Élan.String"].Recv.List[0].Names[0].Name)
	assert.Contains(t, fns, "NewÉlan")
}

func TestEmptyTable(t *testing.T) {
	src, err := Source(nil, Options{})
	require.NoError(t, err)
	f := parse(t, src)
	assert.Empty(t, f.Imports)
	assert.Empty(t, f.Decls)
}

func TestEmitLogsEachType(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, table.Builtin(), Options{Logger: zap.New(core)}))
	assert.NotZero(t, buf.Len())

	entries := logs.All()
	require.Len(t, entries, 10)
	assert.Equal(t, "Fine", entries[0].ContextMap()["name"])
	assert.Equal(t, "-63...63", entries[0].ContextMap()["range"])
	assert.Equal(t, "Transpose", entries[9].ContextMap()["name"])
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Fine: Fine tuning (-63...63).", describe(table.TypeSpec{Name: "Fine", Description: "Fine tuning", Lower: -63, Upper: 63}))
	assert.Equal(t, "Gain: Output gain (1...63).", describe(table.TypeSpec{Name: "Gain", Description: "Output\n  gain", Lower: 1, Upper: 63}))
	assert.Equal(t, "Gain (1...63).", describe(table.TypeSpec{Name: "Gain", Lower: 1, Upper: 63}))
}

// The checked-in k5000 package must declare what the generator produces for
// the built-in table. Run `go generate ./k5000` when this fails.
func TestGeneratedPackageUpToDate(t *testing.T) {
	checkedIn, err := os.ReadFile(filepath.Join("..", "k5000", "zz_rangedint.go"))
	require.NoError(t, err)
	src, err := Source(table.Builtin(), Options{})
	require.NoError(t, err)

	if diff := cmp.Diff(string(src), string(checkedIn)); diff != "" {
		t.Errorf("k5000/zz_rangedint.go is stale (-generated +checked in):\n%s", diff)
	}
}

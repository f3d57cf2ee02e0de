// Package emitter turns a table of ranged integer specs into Go source.
//
// Each spec yields one block of declarations: a struct wrapping an int, its
// bounds and default as constants, a function returning its ranged.Range, a
// zero-argument
// constructor guarded by ranged.MustContain, a clamping constructor, and a
// literal parser that clamps identically. Blocks appear in table order and
// nothing is shared between them, so the output is a pure function of the
// table.
package emitter

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/redneckbeard/rangedint/bst"
	"github.com/redneckbeard/rangedint/table"
)

const (
	DefaultPackage       = "k5000"
	DefaultRuntimeImport = "github.com/redneckbeard/rangedint/ranged"
	DefaultGenerator     = "rangedint"
)

type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// RuntimeImport is the import path of the ranged runtime package.
	RuntimeImport string
	// Generator is named in the "Code generated" header.
	Generator string
	Logger    *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.RuntimeImport == "" {
		o.RuntimeImport = DefaultRuntimeImport
	}
	if o.Generator == "" {
		o.Generator = DefaultGenerator
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Emit writes the generated source for specs to w. Nothing is written if the
// table is invalid.
func Emit(w io.Writer, specs []table.TypeSpec, opts Options) error {
	src, err := Source(specs, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns the generated, gofmt-formatted file for specs.
func Source(specs []table.TypeSpec, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if !token.IsIdentifier(opts.Package) || opts.Package == "_" {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}
	if err := table.Validate(specs); err != nil {
		return nil, err
	}
	if err := checkCollisions(specs); err != nil {
		return nil, err
	}

	g := &generator{runtime: path.Base(opts.RuntimeImport)}
	f := &dst.File{Name: dst.NewIdent(opts.Package)}
	if len(specs) > 0 {
		f.Decls = append(f.Decls, importDecl("strconv", opts.RuntimeImport))
	}
	for i, spec := range specs {
		opts.Logger.Debug("emitting type",
			zap.Int("position", i),
			zap.String("name", spec.Name),
			zap.String("range", spec.Interval()),
			zap.Int("default", spec.Default))
		f.Decls = append(f.Decls, g.block(spec)...)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", opts.Generator)
	if err := decorator.Fprint(&buf, f); err != nil {
		return nil, fmt.Errorf("printing generated source: %w", err)
	}
	out, err := imports.Process(opts.Package+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

// Names lists the package level identifiers declared for one type.
type Names struct {
	Type, Min, Max, Default, Range, New, Of, Parse string
}

func NamesFor(name string) Names {
	return Names{
		Type:    name,
		Min:     name + "Min",
		Max:     name + "Max",
		Default: name + "Default",
		Range:   name + "Range",
		New:     "New" + name,
		Of:      name + "Of",
		Parse:   "Parse" + name,
	}
}

func (n Names) all() []string {
	return []string{n.Type, n.Min, n.Max, n.Default, n.Range, n.New, n.Of, n.Parse}
}

// checkCollisions rejects tables where one type's derived identifiers clash
// with another's, e.g. a Fine and a FineOf.
func checkCollisions(specs []table.TypeSpec) error {
	owner := map[string]string{}
	var errs []error
	for _, s := range specs {
		for _, name := range NamesFor(s.Name).all() {
			if prev, ok := owner[name]; ok && prev != s.Name {
				errs = append(errs, fmt.Errorf("%w: %s is declared by both %s and %s", table.ErrInvalidSpec, name, prev, s.Name))
				continue
			}
			owner[name] = s.Name
		}
	}
	return errors.Join(errs...)
}

func importDecl(paths ...string) dst.Decl {
	decl := &dst.GenDecl{Tok: token.IMPORT, Lparen: true, Rparen: true}
	for _, p := range paths {
		decl.Specs = append(decl.Specs, &dst.ImportSpec{Path: bst.String(p)})
	}
	decl.Decs.Before = dst.EmptyLine
	return decl
}

type generator struct {
	// package name the runtime is referred to by
	runtime string
}

// block returns every declaration for spec, in the order they are printed.
func (g *generator) block(spec table.TypeSpec) []dst.Decl {
	n := NamesFor(spec.Name)

	it := make(bst.IdentTracker)
	it.Reserve("v", "err", "s", "text", "data")
	first, _ := utf8.DecodeRuneInString(spec.Name)
	rcvr := it.New(string(unicode.ToLower(first))).Name

	return []dst.Decl{
		bst.Doc(g.typeDecl(n), describe(spec)),
		bst.Doc(g.constDecl(n, spec), fmt.Sprintf("Bounds and default value of %s.", n.Type)),
		bst.Doc(g.rangeDecl(n), fmt.Sprintf("%s returns the closed interval %s values are clamped to.", n.Range, n.Type)),
		bst.Doc(g.newFunc(n, spec),
			fmt.Sprintf("%s returns the %s holding %s. It panics if %s", n.New, n.Type, n.Default, n.Default),
			fmt.Sprintf("lies outside %s.", n.Range)),
		bst.Doc(g.ofFunc(n), fmt.Sprintf("%s returns v clamped to %s as the %s.", n.Of, n.Range, n.Type)),
		bst.Doc(g.parseFunc(n),
			fmt.Sprintf("%s parses an integer literal such as \"-12\" or \"0x7f\" and clamps", n.Parse),
			fmt.Sprintf("it like %s.", n.Of)),
		bst.Doc(g.stringMethod(n, rcvr)),
		bst.Doc(g.marshalText(n, rcvr), "MarshalText implements encoding.TextMarshaler."),
		bst.Doc(g.unmarshalText(n, rcvr), fmt.Sprintf("UnmarshalText implements encoding.TextUnmarshaler using %s.", n.Parse)),
		bst.Doc(g.marshalJSON(n, rcvr), "MarshalJSON encodes the value as a bare JSON number."),
		bst.Doc(g.unmarshalJSON(n, rcvr), "UnmarshalJSON accepts a JSON number and clamps it. null is a no-op."),
	}
}

func describe(spec table.TypeSpec) string {
	desc := strings.Join(strings.Fields(spec.Description), " ")
	if desc == "" {
		return fmt.Sprintf("%s (%s).", spec.Name, spec.Interval())
	}
	return fmt.Sprintf("%s: %s (%s).", spec.Name, desc, spec.Interval())
}

func (g *generator) typeDecl(n Names) dst.Decl {
	return &dst.GenDecl{
		Tok: token.TYPE,
		Specs: []dst.Spec{
			&dst.TypeSpec{
				Name: dst.NewIdent(n.Type),
				Type: bst.Struct(bst.Field("Value", dst.NewIdent("int"))),
			},
		},
	}
}

func (g *generator) constDecl(n Names, spec table.TypeSpec) dst.Decl {
	value := func(name string, v int) dst.Spec {
		return &dst.ValueSpec{
			Names:  []*dst.Ident{dst.NewIdent(name)},
			Values: []dst.Expr{bst.Int(v)},
		}
	}
	return &dst.GenDecl{
		Tok:    token.CONST,
		Lparen: true,
		Specs: []dst.Spec{
			value(n.Min, spec.Lower),
			value(n.Max, spec.Upper),
			value(n.Default, spec.Default),
		},
		Rparen: true,
	}
}

func (g *generator) rangeDecl(n Names) dst.Decl {
	// a func, not a var, so importers cannot reassign the bounds
	return fn(n.Range, nil,
		[]*dst.Field{bst.Field("", bst.Dot(g.runtime, "Range"))},
		bst.Block(
			bst.Return(&dst.CompositeLit{
				Type: bst.Dot(g.runtime, "Range"),
				Elts: []dst.Expr{
					&dst.KeyValueExpr{Key: dst.NewIdent("Lower"), Value: dst.NewIdent(n.Min)},
					&dst.KeyValueExpr{Key: dst.NewIdent("Upper"), Value: dst.NewIdent(n.Max)},
				},
			}),
		))
}

// value builds T{Value: expr}.
func value(typ string, expr dst.Expr) dst.Expr {
	return &dst.CompositeLit{
		Type: dst.NewIdent(typ),
		Elts: []dst.Expr{&dst.KeyValueExpr{Key: dst.NewIdent("Value"), Value: expr}},
	}
}

func fn(name string, params, results []*dst.Field, body *dst.BlockStmt) *dst.FuncDecl {
	return &dst.FuncDecl{
		Name: dst.NewIdent(name),
		Type: &dst.FuncType{
			Func:    true,
			Params:  bst.Fields(params...),
			Results: bst.Fields(results...),
		},
		Body: body,
	}
}

func method(rcvr string, rcvrType dst.Expr, name string, params, results []*dst.Field, body *dst.BlockStmt) *dst.FuncDecl {
	decl := fn(name, params, results, body)
	decl.Recv = bst.Fields(bst.Field(rcvr, rcvrType))
	return decl
}

func byteSlice() dst.Expr {
	return &dst.ArrayType{Elt: dst.NewIdent("byte")}
}

func (g *generator) newFunc(n Names, spec table.TypeSpec) dst.Decl {
	return fn(n.New, nil,
		[]*dst.Field{bst.Field("", dst.NewIdent(n.Type))},
		bst.Block(
			&dst.ExprStmt{X: bst.Call(g.runtime, "MustContain", bst.Call(nil, n.Range), dst.NewIdent(n.Default), bst.String(spec.Name))},
			bst.Return(value(n.Type, dst.NewIdent(n.Default))),
		))
}

func (g *generator) ofFunc(n Names) dst.Decl {
	return fn(n.Of,
		[]*dst.Field{bst.Field("v", dst.NewIdent("int"))},
		[]*dst.Field{bst.Field("", dst.NewIdent(n.Type))},
		bst.Block(
			bst.Return(value(n.Type, bst.Call(bst.Call(nil, n.Range), "Clamp", dst.NewIdent("v")))),
		))
}

func (g *generator) parseFunc(n Names) dst.Decl {
	return fn(n.Parse,
		[]*dst.Field{bst.Field("s", dst.NewIdent("string"))},
		[]*dst.Field{bst.Field("", dst.NewIdent(n.Type)), bst.Field("", dst.NewIdent("error"))},
		bst.Block(
			bst.Define([]dst.Expr{dst.NewIdent("v"), dst.NewIdent("err")}, bst.Call(g.runtime, "ParseLiteral", dst.NewIdent("s"))),
			bst.IfErr("err", &dst.CompositeLit{Type: dst.NewIdent(n.Type)}, dst.NewIdent("err")),
			bst.Return(bst.Call(nil, n.Of, dst.NewIdent("v")), dst.NewIdent("nil")),
		))
}

func (g *generator) stringMethod(n Names, rcvr string) dst.Decl {
	return method(rcvr, dst.NewIdent(n.Type), "String", nil,
		[]*dst.Field{bst.Field("", dst.NewIdent("string"))},
		bst.Block(
			bst.Return(bst.Call("strconv", "Itoa", bst.Dot(rcvr, "Value"))),
		))
}

func (g *generator) marshalText(n Names, rcvr string) dst.Decl {
	return method(rcvr, dst.NewIdent(n.Type), "MarshalText", nil,
		[]*dst.Field{bst.Field("", byteSlice()), bst.Field("", dst.NewIdent("error"))},
		bst.Block(
			bst.Return(&dst.CallExpr{Fun: byteSlice(), Args: []dst.Expr{bst.Call(rcvr, "String")}}, dst.NewIdent("nil")),
		))
}

func (g *generator) unmarshalText(n Names, rcvr string) dst.Decl {
	return method(rcvr, &dst.StarExpr{X: dst.NewIdent(n.Type)}, "UnmarshalText",
		[]*dst.Field{bst.Field("text", byteSlice())},
		[]*dst.Field{bst.Field("", dst.NewIdent("error"))},
		bst.Block(
			bst.Define([]dst.Expr{dst.NewIdent("v"), dst.NewIdent("err")}, bst.Call(nil, n.Parse, bst.Call(nil, "string", dst.NewIdent("text")))),
			bst.IfErr("err", dst.NewIdent("err")),
			bst.Assign(&dst.StarExpr{X: dst.NewIdent(rcvr)}, dst.NewIdent("v")),
			bst.Return(dst.NewIdent("nil")),
		))
}

func (g *generator) marshalJSON(n Names, rcvr string) dst.Decl {
	return method(rcvr, dst.NewIdent(n.Type), "MarshalJSON", nil,
		[]*dst.Field{bst.Field("", byteSlice()), bst.Field("", dst.NewIdent("error"))},
		bst.Block(
			bst.Return(bst.Call(rcvr, "MarshalText")),
		))
}

func (g *generator) unmarshalJSON(n Names, rcvr string) dst.Decl {
	isNull := bst.Binary(bst.Call(nil, "string", dst.NewIdent("data")), token.EQL, bst.String("null"))
	return method(rcvr, &dst.StarExpr{X: dst.NewIdent(n.Type)}, "UnmarshalJSON",
		[]*dst.Field{bst.Field("data", byteSlice())},
		[]*dst.Field{bst.Field("", dst.NewIdent("error"))},
		bst.Block(
			&dst.IfStmt{Cond: isNull, Body: bst.Block(bst.Return(dst.NewIdent("nil")))},
			bst.Return(bst.Call(rcvr, "UnmarshalText", dst.NewIdent("data"))),
		))
}

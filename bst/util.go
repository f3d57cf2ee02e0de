package bst

import (
	"go/token"
	"strconv"

	"github.com/dave/dst"
)

func Call(rcvr interface{}, method interface{}, args ...dst.Expr) *dst.CallExpr {
	var fun dst.Expr
	if rcvr == nil {
		fun = toExpr(method)
	} else {
		fun = Dot(rcvr, method)
	}
	return &dst.CallExpr{
		Fun:  fun,
		Args: args,
	}
}

func Binary(left dst.Expr, op token.Token, right dst.Expr) dst.Expr {
	return &dst.BinaryExpr{
		X:  left,
		Op: op,
		Y:  right,
	}
}

func Dot(obj, member interface{}) *dst.SelectorExpr {
	return &dst.SelectorExpr{
		X:   toExpr(obj),
		Sel: toExpr(member).(*dst.Ident),
	}
}

func toExpr(i interface{}) dst.Expr {
	switch x := i.(type) {
	case string:
		return dst.NewIdent(x)
	case dst.Expr:
		return x
	default:
		panic("only supported types are string and dst.Expr")
	}
}

func String(s string) *dst.BasicLit {
	return &dst.BasicLit{
		Kind:  token.STRING,
		Value: strconv.Quote(s),
	}
}

// Int returns a literal for i, wrapping negative values in a unary minus the
// way the parser would.
func Int(i int) dst.Expr {
	if i < 0 {
		return &dst.UnaryExpr{
			Op: token.SUB,
			X:  &dst.BasicLit{Kind: token.INT, Value: strconv.Itoa(i)[1:]},
		}
	}
	return &dst.BasicLit{
		Kind:  token.INT,
		Value: strconv.Itoa(i),
	}
}

func Assign(lhs, rhs interface{}) *dst.AssignStmt {
	return &dst.AssignStmt{
		Lhs: toExprSlice(lhs),
		Tok: token.ASSIGN,
		Rhs: toExprSlice(rhs),
	}
}

func Define(lhs, rhs interface{}) *dst.AssignStmt {
	return &dst.AssignStmt{
		Lhs: toExprSlice(lhs),
		Tok: token.DEFINE,
		Rhs: toExprSlice(rhs),
	}
}

func Return(results ...dst.Expr) *dst.ReturnStmt {
	return &dst.ReturnStmt{Results: results}
}

// IfErr builds `if err != nil { return results... }`.
func IfErr(err string, results ...dst.Expr) *dst.IfStmt {
	return &dst.IfStmt{
		Cond: Binary(dst.NewIdent(err), token.NEQ, dst.NewIdent("nil")),
		Body: Block(Return(results...)),
	}
}

// Block puts every statement on its own line so the printer never collapses
// a body onto the function header.
func Block(stmts ...dst.Stmt) *dst.BlockStmt {
	for _, s := range stmts {
		s.Decorations().Before = dst.NewLine
	}
	if len(stmts) > 0 {
		stmts[len(stmts)-1].Decorations().After = dst.NewLine
	}
	return &dst.BlockStmt{List: stmts}
}

func Field(name string, typ dst.Expr) *dst.Field {
	f := &dst.Field{Type: typ}
	if name != "" {
		f.Names = []*dst.Ident{dst.NewIdent(name)}
	}
	return f
}

func Fields(fields ...*dst.Field) *dst.FieldList {
	return &dst.FieldList{Opening: true, List: fields, Closing: true}
}

// Struct builds a struct type with one field per line.
func Struct(fields ...*dst.Field) *dst.StructType {
	for _, f := range fields {
		f.Decs.Before = dst.NewLine
		f.Decs.After = dst.NewLine
	}
	return &dst.StructType{Fields: &dst.FieldList{Opening: true, List: fields, Closing: true}}
}

func Declare(kind token.Token, name *dst.Ident, goType dst.Expr, val dst.Expr) *dst.GenDecl {
	spec := &dst.ValueSpec{
		Names: []*dst.Ident{name},
		Type:  goType,
	}
	if val != nil {
		spec.Values = []dst.Expr{val}
	}
	return &dst.GenDecl{
		Tok:   kind,
		Specs: []dst.Spec{spec},
	}
}

// Doc attaches comment lines above a top level declaration and separates it
// from the previous one with an empty line.
func Doc(decl dst.Decl, lines ...string) dst.Decl {
	decs := decl.Decorations()
	decs.Before = dst.EmptyLine
	for _, l := range lines {
		decs.Start.Append("// " + l)
	}
	return decl
}

func toExprSlice(i interface{}) []dst.Expr {
	if slice, ok := i.([]dst.Expr); ok {
		return slice
	} else {
		return []dst.Expr{i.(dst.Expr)}
	}
}

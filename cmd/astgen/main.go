package main

import (
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

//go:generate go run . Expr ../../internal/expr.go
//go:generate go run . Stmt ../../internal/stmt.go

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: expression expr",
		"Var: name *token, initializer expr",
		"Block: stmts []stmt",
	},
	"Expr": {
		"Assign: name *token, value expr",
		"Ternary: condition expr, thenBranch expr, elseBranch expr",
		"Binary: left expr, operator *token, right expr",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
}

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: astgen Expr|Stmt /path/to/output.go")
		os.Exit(64)
	}

	types, ok := nodes[os.Args[1]]
	if !ok {
		log.Fatalf("unknown node family %q", os.Args[1])
	}

	src, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(os.Args[2], src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by astgen. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// astGrammar describes the syntax tree node set for the gen-ast tool.
// Each field entry is a "Name Type" pair; every node additionally gets
// the position field and the Pos accessor.
type astGrammar struct {
	Package     string     `yaml:"package"`
	Expressions []nodeSpec `yaml:"expressions"`
	Statements  []nodeSpec `yaml:"statements"`
}

type nodeSpec struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	Fields []string `yaml:"fields"`
}

// defaultGrammar mirrors the node set the interpreter ships with.
const defaultGrammar = `package: lox

expressions:
  - name: NumberLiteral
    doc: is a numeric literal such as 12 or 3.5.
    fields:
      - Value float64
  - name: StringLiteral
    doc: is a double-quoted string literal.
    fields:
      - Value string
  - name: BoolLiteral
    doc: is the literal true or false.
    fields:
      - Value bool
  - name: NilLiteral
    doc: is the literal nil.
  - name: GroupingExpr
    doc: is a parenthesized expression.
    fields:
      - Expr Expression
  - name: UnaryExpr
    doc: applies a prefix operator, one of ! or -.
    fields:
      - Operator TokenType
      - Right Expression
  - name: BinaryExpr
    doc: applies an arithmetic, comparison, or equality operator.
    fields:
      - Operator TokenType
      - Left Expression
      - Right Expression
  - name: LogicalExpr
    doc: applies and/or with short-circuit evaluation.
    fields:
      - Operator TokenType
      - Left Expression
      - Right Expression
  - name: VariableExpr
    doc: reads a variable by name.
    fields:
      - Name string
  - name: AssignExpr
    doc: writes a named variable and yields the assigned value.
    fields:
      - Name string
      - Value Expression
  - name: CallExpr
    doc: invokes a callee with zero or more arguments.
    fields:
      - Callee Expression
      - Args []Expression
  - name: GetExpr
    doc: reads a property from an object.
    fields:
      - Object Expression
      - Name string
  - name: SetExpr
    doc: writes a field on an object.
    fields:
      - Object Expression
      - Name string
      - Value Expression
  - name: ThisExpr
    doc: refers to the instance a method was invoked on.
  - name: SuperExpr
    doc: looks up a method starting in the superclass.
    fields:
      - Method string

statements:
  - name: ExpressionStmt
    doc: evaluates an expression for its side effects.
    fields:
      - Expr Expression
  - name: PrintStmt
    doc: writes a value to the configured output.
    fields:
      - Expr Expression
  - name: VarStmt
    doc: declares a variable, optionally initialized.
    fields:
      - Name string
      - Initializer Expression
  - name: BlockStmt
    doc: groups statements in their own scope.
    fields:
      - Statements []Statement
  - name: IfStmt
    doc: branches on a condition.
    fields:
      - Condition Expression
      - Then Statement
      - Else Statement
  - name: WhileStmt
    doc: loops while a condition holds.
    fields:
      - Condition Expression
      - Body Statement
      - Increment Expression
  - name: FunctionStmt
    doc: declares a named function.
    fields:
      - Name string
      - Params []Param
      - Body []Statement
  - name: ReturnStmt
    doc: exits the enclosing function with an optional value.
    fields:
      - Value Expression
  - name: ClassStmt
    doc: declares a class with methods and an optional superclass.
    fields:
      - Name string
      - Superclass *VariableExpr
      - Methods []*FunctionStmt
  - name: BreakStmt
    doc: exits the innermost loop.
  - name: ContinueStmt
    doc: skips to the next iteration of the innermost loop.
`

func genASTCommand(grammarPath, outDir string) error {
	if outDir == "" {
		return errors.New("rslox tool gen-ast: output directory required")
	}

	grammar := defaultGrammar
	if grammarPath != "" {
		data, err := os.ReadFile(grammarPath)
		if err != nil {
			return tracerr.Wrap(err)
		}
		grammar = string(data)
	}

	var g astGrammar
	if err := yaml.Unmarshal([]byte(grammar), &g); err != nil {
		return fmt.Errorf("parse grammar: %w", err)
	}

	src, err := generateAST(g)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return tracerr.Wrap(err)
	}
	outPath := filepath.Join(outDir, "ast_gen.go")
	if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
		return tracerr.Wrap(err)
	}
	fmt.Println(alertSuccess("wrote " + outPath))
	return nil
}

func generateAST(g astGrammar) (string, error) {
	if g.Package == "" {
		return "", errors.New("grammar: package name required")
	}

	var b strings.Builder
	b.WriteString("// Code generated by rslox tool gen-ast. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n", g.Package)

	for _, node := range g.Expressions {
		if err := writeNode(&b, node, "exprNode"); err != nil {
			return "", err
		}
	}
	for _, node := range g.Statements {
		if err := writeNode(&b, node, "stmtNode"); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeNode(b *strings.Builder, node nodeSpec, marker string) error {
	if node.Name == "" {
		return errors.New("grammar: node with empty name")
	}
	fields, err := parseFields(node.Fields)
	if err != nil {
		return fmt.Errorf("grammar: %s: %w", node.Name, err)
	}

	b.WriteString("\n")
	if node.Doc != "" {
		fmt.Fprintf(b, "// %s %s\n", node.Name, node.Doc)
	}
	fmt.Fprintf(b, "type %s struct {\n", node.Name)

	width := len("position")
	for _, f := range fields {
		if len(f.name) > width {
			width = len(f.name)
		}
	}
	fmt.Fprintf(b, "\t%-*s Position\n", width, "position")
	for _, f := range fields {
		fmt.Fprintf(b, "\t%-*s %s\n", width, f.name, f.typ)
	}
	b.WriteString("}\n\n")

	recv := strings.ToLower(node.Name[:1])
	fmt.Fprintf(b, "func (%s *%s) Pos() Position { return %s.position }\n", recv, node.Name, recv)

	// Pad the marker body so its brace lines up with the Pos line, the
	// way gofmt keeps adjacent one-line functions.
	pad := len("Pos() Position") - len(marker+"()") + 1
	fmt.Fprintf(b, "func (%s *%s) %s()%s{}\n", recv, node.Name, marker, strings.Repeat(" ", pad))
	return nil
}

type fieldSpec struct {
	name string
	typ  string
}

func parseFields(raw []string) ([]fieldSpec, error) {
	fields := make([]fieldSpec, 0, len(raw))
	for _, entry := range raw {
		parts := strings.Fields(entry)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad field %q (want \"Name Type\")", entry)
		}
		fields = append(fields, fieldSpec{name: parts[0], typ: parts[1]})
	}
	return fields, nil
}

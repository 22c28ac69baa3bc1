package frontend

import (
	"fmt"
	"strconv"
	"strings"
)

// StringifyAST renders a tree as indented S-expressions, one statement per
// line. It backs the AST dumps of the command line tools
func StringifyAST(root Node) string {
	return stringifyNode(root, true)
}

// StringifyNode renders any node as a single line S-expression
func StringifyNode(node Node) string {
	return stringifyNode(node, false)
}

func stringifyNode(generic Node, pretty bool) string {
	switch node := generic.(type) {
	case *Program:
		if node.Body == nil {
			return fmt.Sprintf("(program %q)", node.Name)
		}

		return fmt.Sprintf("(program %q%s)",
			node.Name,
			block([]Node{node.Body}, pretty))
	case *Compound:
		return "(compound" + block(node.Children(), pretty) + ")"
	case *Loop:
		return "(loop" + block(node.Children(), pretty) + ")"
	case *If:
		return fmt.Sprintf("(if %s%s)",
			stringifyNode(node.Condition, pretty),
			block(node.Children()[1:], pretty))
	case *Test:
		return fmt.Sprintf("(test %s)", stringifyNode(node.Condition, pretty))
	case *Assign:
		return fmt.Sprintf("(assign %s %s)",
			stringifyNode(node.Target, pretty),
			stringifyNode(node.Value, pretty))
	case *Write:
		name := "write"
		if node.Newline {
			name = "writeln"
		}

		return "(" + name + inline(node.Children(), pretty) + ")"
	case *Binary:
		return fmt.Sprintf("(%s %s %s)",
			strings.ToLower(string(node.Operator)),
			stringifyNode(node.Left, pretty),
			stringifyNode(node.Right, pretty))
	case *Unary:
		return fmt.Sprintf("(%s %s)",
			strings.ToLower(string(node.Operator)),
			stringifyNode(node.Operand, pretty))
	case *Variable:
		if node.Entry == nil {
			return fmt.Sprintf("(variable %s undeclared)", node.Name)
		}

		return fmt.Sprintf("(variable %s)", node.Name)
	case *IntegerConst:
		return fmt.Sprintf("(integer %d)", node.Value)
	case *RealConst:
		return fmt.Sprintf("(real %s)", strconv.FormatFloat(node.Value, 'g', -1, 64))
	case *StringConst:
		return fmt.Sprintf("(string %q)", node.Value)
	case *BadExpr:
		return "(bad)"
	default:
		return fmt.Sprintf("<Unknown %T>", node)
	}
}

// block renders statement-like children, each on its own indented line when
// pretty printing
func block(nodes []Node, pretty bool) string {
	if !pretty {
		return inline(nodes, pretty)
	}

	var out string

	for _, node := range nodes {
		out += "\n" + indentString(stringifyNode(node, pretty))
	}

	return out
}

func inline(nodes []Node, pretty bool) string {
	var out string

	for _, node := range nodes {
		out += " " + stringifyNode(node, pretty)
	}

	return out
}

func indentString(s string) string {
	lines := strings.Split(s, "\n")

	for i, l := range lines {
		lines[i] = "   " + l
	}

	return strings.Join(lines, "\n")
}

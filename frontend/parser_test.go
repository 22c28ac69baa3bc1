package frontend

import (
	"strings"
	"testing"

	"github.com/isaacev/tpas/feedback"
	"github.com/isaacev/tpas/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*Program, *Symtab, *feedback.Log) {
	t.Helper()

	table := NewSymtab()
	prog, log := Parse(source.NewFile("test.pas", src), table, Options{})
	require.NotNil(t, prog)
	require.NotNil(t, prog.Body)
	return prog, table, log
}

func descriptions(log *feedback.Log) (descs []string) {
	for _, err := range log.Errors() {
		descs = append(descs, err.What.Description)
	}

	return descs
}

// expectTree parses a program which must be free of errors and compares the
// single line rendering of its body
func expectTree(t *testing.T, src string, body string) {
	t.Helper()

	prog, _, log := parse(t, src)
	assert.Zero(t, log.ErrorCount(), "%v", descriptions(log))
	assert.Equal(t, body, StringifyNode(prog.Body))
}

func TestMinimalProgram(t *testing.T) {
	prog, table, log := parse(t, "PROGRAM test; BEGIN x := 1 + 2 END.")
	assert.Zero(t, log.ErrorCount())
	assert.Equal(t, "test", prog.Name)
	assert.Equal(t, `(program "test" (compound (assign (variable x) (add (integer 1) (integer 2)))))`, StringifyNode(prog))

	require.Equal(t, 2, table.Len())
	assert.Equal(t, ProgramName, table.Lookup("test").Kind)
	assert.Equal(t, VariableName, table.Lookup("x").Kind)
}

func TestProgramHeaderIsOptional(t *testing.T) {
	prog, _, log := parse(t, "BEGIN END.")
	assert.Zero(t, log.ErrorCount())
	assert.Equal(t, "", prog.Name)
	assert.Equal(t, `(program "" (compound))`, StringifyNode(prog))
}

func TestTextAfterPeriodIsIgnored(t *testing.T) {
	_, _, log := parse(t, "BEGIN x := 1 END. this is not read")
	assert.Zero(t, log.ErrorCount())
}

func TestForLowering(t *testing.T) {
	prog, table, log := parse(t, "BEGIN FOR i := 1 TO 10 DO x := i END.")
	assert.Zero(t, log.ErrorCount())

	assert.Equal(t, "(compound (compound "+
		"(assign (variable i) (integer 1)) "+
		"(loop (test (gt (variable i) (integer 10))) "+
		"(assign (variable x) (variable i)) "+
		"(assign (variable i) (add (variable i) (integer 1))))))",
		StringifyNode(prog.Body))

	lowered := prog.Body.Statements[0].(*Compound)
	initial := lowered.Statements[0].(*Assign)
	loop := lowered.Statements[1].(*Loop)
	test := loop.Parts[0].(*Test)
	step := loop.Parts[2].(*Assign)

	// Every occurrence of the control variable is its own node, all of them
	// sharing one symbol table entry
	occurrences := []*Variable{
		initial.Target,
		test.Condition.(*Binary).Left.(*Variable),
		step.Target,
		step.Value.(*Binary).Left.(*Variable),
	}

	entry := table.Lookup("i")
	require.NotNil(t, entry)

	for i, a := range occurrences {
		assert.Same(t, entry, a.Entry)

		for _, b := range occurrences[i+1:] {
			assert.NotSame(t, a, b)
		}
	}
}

func TestForDowntoLowering(t *testing.T) {
	expectTree(t, "BEGIN FOR i := 10 DOWNTO 1 DO BEGIN END END.",
		"(compound (compound "+
			"(assign (variable i) (integer 10)) "+
			"(loop (test (lt (variable i) (integer 1))) "+
			"(compound) "+
			"(assign (variable i) (subtract (variable i) (integer 1))))))")
}

func TestWhileLowering(t *testing.T) {
	expectTree(t, "BEGIN i := 0; WHILE i < 10 DO i := i + 1 END.",
		"(compound (assign (variable i) (integer 0)) "+
			"(loop (test (not (lt (variable i) (integer 10)))) "+
			"(assign (variable i) (add (variable i) (integer 1)))))")
}

func TestRepeatLowering(t *testing.T) {
	expectTree(t, "BEGIN i := 0; REPEAT i := i + 1; WRITELN UNTIL i = 10 END.",
		"(compound (assign (variable i) (integer 0)) "+
			"(loop (assign (variable i) (add (variable i) (integer 1))) "+
			"(writeln) "+
			"(test (eq (variable i) (integer 10)))))")
}

func TestIfStatement(t *testing.T) {
	expectTree(t, "BEGIN x := 1; IF x > 0 THEN y := 1 ELSE y := 2 END.",
		"(compound (assign (variable x) (integer 1)) "+
			"(if (gt (variable x) (integer 0)) "+
			"(assign (variable y) (integer 1)) "+
			"(assign (variable y) (integer 2))))")

	prog, _, log := parse(t, "BEGIN x := 1; IF x > 0 THEN y := 1 END.")
	assert.Zero(t, log.ErrorCount())
	stmt := prog.Body.Statements[1].(*If)
	assert.Nil(t, stmt.Else)
	assert.Len(t, stmt.Children(), 2)

	expectTree(t, "BEGIN x := 1; IF x > 0 THEN ELSE y := 2 END.",
		"(compound (assign (variable x) (integer 1)) "+
			"(if (gt (variable x) (integer 0)) (compound) (assign (variable y) (integer 2))))")
}

func TestCaseBodyIsFlattened(t *testing.T) {
	prog, _, log := parse(t, "BEGIN x := 1; CASE x OF y := 1; z := 2 END; w := 3 END.")
	assert.Zero(t, log.ErrorCount(), "%v", descriptions(log))

	warnings := log.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, feedback.SyntaxError, warnings[0].Classification)
	assert.Equal(t, "CASE", warnings[0].Offending)

	assert.Equal(t, "(compound (assign (variable x) (integer 1)) "+
		"(compound (assign (variable y) (integer 1)) (assign (variable z) (integer 2))) "+
		"(assign (variable w) (integer 3)))",
		StringifyNode(prog.Body))
}

func TestCaseNeedsSemicolon(t *testing.T) {
	_, _, log := parse(t, "BEGIN x := 1; CASE x OF y := 1 END END.")
	assert.Equal(t, []string{"Expecting ;"}, descriptions(log))

	// A statement right after the CASE is reported once, by the statement list
	_, _, log = parse(t, "BEGIN x := 1; CASE x OF y := 1 END y := 2 END.")
	assert.Equal(t, []string{"Missing ;"}, descriptions(log))
}

func TestWriteStatements(t *testing.T) {
	prog, _, log := parse(t, "BEGIN x := 1; WRITE(x:10:2); WRITE('a'); WRITELN('hi':5); WRITELN END.")
	assert.Zero(t, log.ErrorCount(), "%v", descriptions(log))

	assert.Equal(t, "(compound (assign (variable x) (integer 1)) "+
		"(write (variable x) (integer 10) (integer 2)) "+
		"(write (string \"a\")) "+
		"(writeln (string \"hi\") (integer 5)) "+
		"(writeln))",
		StringifyNode(prog.Body))

	write := prog.Body.Statements[1].(*Write)
	assert.Equal(t, WriteNode, write.Kind())
	assert.Equal(t, int64(10), write.Width.Value)
	assert.Equal(t, int64(2), write.Precision.Value)

	bare := prog.Body.Statements[4].(*Write)
	assert.Equal(t, WritelnNode, bare.Kind())
	assert.Nil(t, bare.Argument)
	assert.Empty(t, bare.Children())
}

func TestWriteErrors(t *testing.T) {
	tests := []struct {
		src  string
		desc string
	}{
		{"BEGIN WRITE END.", "Missing left parenthesis"},
		{"BEGIN WRITE(1) END.", "Invalid WRITE or WRITELN statement"},
		{"BEGIN WRITELN('a':x) END.", "Invalid field width"},
		{"BEGIN WRITELN('a':1:'b') END.", "Invalid count of decimal places"},
		{"BEGIN WRITELN('a' END.", "Missing right parenthesis"},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, _, log := parse(t, test.src)
			assert.Equal(t, []string{test.desc}, descriptions(log))
		})
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// AND binds no tighter than the comparisons and everything on that level
	// associates to the left
	expectTree(t, "BEGIN a := 1; b := 2; c := a + b * 2 > 3 AND b = 2 END.",
		"(compound (assign (variable a) (integer 1)) (assign (variable b) (integer 2)) "+
			"(assign (variable c) (eq (and (gt (add (variable a) (multiply (variable b) (integer 2))) "+
			"(integer 3)) (variable b)) (integer 2))))")

	expectTree(t, "BEGIN a := 8 DIV 2 / 2 - 1 - 1 END.",
		"(compound (assign (variable a) (subtract (subtract (divide (integer_divide "+
			"(integer 8) (integer 2)) (integer 2)) (integer 1)) (integer 1))))")

	expectTree(t, "BEGIN a := 1; b := NOT a = 1 OR a <> 2 END.",
		"(compound (assign (variable a) (integer 1)) "+
			"(assign (variable b) (ne (or (eq (not (variable a)) (integer 1)) (variable a)) (integer 2))))")
}

func TestUnaryMinus(t *testing.T) {
	expectTree(t, "BEGIN x := -5; y := -(x + 1.5) END.",
		"(compound (assign (variable x) (negate (integer 5))) "+
			"(assign (variable y) (negate (add (variable x) (real 1.5)))))")

	_, _, log := parse(t, "BEGIN x := 1; y := -x END.")
	require.Len(t, log.Errors(), 1)
	assert.Equal(t, "SYNTAX ERROR at line 1: Unary minus not allowed before identifier at 'x'", log.Errors()[0].Summary())
}

func TestUndeclaredIdentifier(t *testing.T) {
	prog, _, log := parse(t, "BEGIN y := z END.")
	require.Equal(t, 1, log.ErrorCount())
	assert.Equal(t, "SEMANTIC ERROR at line 1: Undeclared identifier at 'z'", log.Errors()[0].Summary())

	// The tree is still built, with an unresolved variable
	assert.Equal(t, "(compound (assign (variable y) (variable z undeclared)))", StringifyNode(prog.Body))
}

func TestNamesIgnoreCase(t *testing.T) {
	prog, table, log := parse(t, "BEGIN Count := 1; y := COUNT END.")
	assert.Zero(t, log.ErrorCount())
	assert.Equal(t, 2, table.Len())

	first := prog.Body.Statements[0].(*Assign).Target
	second := prog.Body.Statements[1].(*Assign).Value.(*Variable)
	assert.Equal(t, "Count", first.Name)
	assert.Equal(t, "COUNT", second.Name)
	assert.Same(t, first.Entry, second.Entry)
	assert.Equal(t, 1, first.Entry.Line)
}

func TestMissingSemicolon(t *testing.T) {
	prog, _, log := parse(t, "BEGIN\n  x := 1\n  y := 2\nEND.")
	require.Equal(t, 1, log.ErrorCount())
	assert.Equal(t, "SYNTAX ERROR at line 3: Missing ; at 'y'", log.Errors()[0].Summary())

	// Both assignments survive
	assert.Len(t, prog.Body.Statements, 2)
}

func TestRecoveryResumesAtNextStatement(t *testing.T) {
	prog, _, log := parse(t, "BEGIN x := 1 + * 2; y := 3; z := ; w := 4 END.")
	assert.Equal(t, []string{"Unexpected token", "Unexpected token"}, descriptions(log))
	assert.Equal(t, "(compound (assign (variable x) (add (integer 1) (bad))) "+
		"(assign (variable y) (integer 3)) "+
		"(assign (variable z) (bad)) "+
		"(assign (variable w) (integer 4)))",
		StringifyNode(prog.Body))
}

func TestMissingAssignmentOperator(t *testing.T) {
	_, _, log := parse(t, "BEGIN x 1; y := 2 END.")
	assert.Equal(t, []string{"Missing :="}, descriptions(log))
}

func TestMissingBegin(t *testing.T) {
	prog, _, log := parse(t, "PROGRAM p; x := 1 END.")
	assert.Equal(t, []string{"Expecting BEGIN"}, descriptions(log))
	assert.Len(t, prog.Body.Statements, 1)
}

func TestMissingPeriod(t *testing.T) {
	_, _, log := parse(t, "BEGIN x := 1 END")
	require.Equal(t, 1, log.ErrorCount())
	assert.Equal(t, "SYNTAX ERROR at line 1: Expecting . at ''", log.Errors()[0].Summary())
}

func TestMissingEnd(t *testing.T) {
	_, _, log := parse(t, "BEGIN x := 1; BEGIN y := 2 END.")
	assert.Contains(t, descriptions(log), "Expecting END")
}

func TestStrayUntilDoesNotStall(t *testing.T) {
	_, _, log := parse(t, "BEGIN x := 1; UNTIL x = 1 END.")
	assert.NotZero(t, log.ErrorCount())
}

func TestLexicalErrorsCountTwice(t *testing.T) {
	_, _, log := parse(t, "BEGIN x := 1.2.3 END.")
	assert.Equal(t, 2, log.ErrorCount())
	assert.Equal(t, 1, log.CountOf(feedback.TokenError))
	assert.Equal(t, 1, log.CountOf(feedback.SyntaxError))
}

func TestNestingLimit(t *testing.T) {
	src := "BEGIN x := " + strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20) + " END."

	table := NewSymtab()
	_, log := Parse(source.NewFile("test.pas", src), table, Options{MaxDepth: 10})
	assert.Equal(t, []string{"Nesting too deep"}, descriptions(log))

	// The default limit turns runaway input into a single error instead of
	// exhausting the stack
	src = "BEGIN x := " + strings.Repeat("(", 100000) + "1 END."
	_, _, log = parse(t, src)
	assert.Equal(t, []string{"Nesting too deep"}, descriptions(log))

	src = "BEGIN " + strings.Repeat("BEGIN ", 100000) + " END."
	_, _, log = parse(t, src)
	assert.Contains(t, descriptions(log), "Nesting too deep")
}

func TestNodePositions(t *testing.T) {
	prog, _, _ := parse(t, "BEGIN\n  x := 1;\n  WRITELN(x)\nEND.")
	assert.Equal(t, 1, prog.Line())
	assert.Equal(t, 2, prog.Body.Statements[0].Line())
	assert.Equal(t, source.Pos{Line: 3, Col: 3}, prog.Body.Statements[1].Pos())
}

package regexnfa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Malyuk-afk/regular-expression-to-NFA/ast"
	"github.com/Malyuk-afk/regular-expression-to-NFA/nfa"
)

func digits() ast.Node {
	return ast.NewConcat(ast.NewRange('0', '9'), ast.NewStar(ast.NewRange('0', '9')))
}

func TestCompileAndMatch(t *testing.T) {
	// [0-9][0-9]*.[0-9][0-9]* | .[0-9][0-9]*
	tree := ast.NewAlt(
		ast.NewConcat(ast.NewConcat(digits(), ast.NewLiteral('.')), digits()),
		ast.NewConcat(ast.NewLiteral('.'), digits()),
	)
	re, err := Compile(tree)
	require.Nil(t, err)

	tests := []struct {
		input string
		want  bool
	}{
		{"3.1415926", true},
		{".5", true},
		{"a rational number", false},
		{"3", false},
	}
	for _, tt := range tests {
		got, err := re.MatchString(tt.input)
		require.Nil(t, err)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestMatchEmptyInput(t *testing.T) {
	re, err := Compile(ast.NewStar(ast.Str("ab")))
	require.Nil(t, err)

	ok, err := re.MatchString("")
	require.Nil(t, err)
	require.True(t, ok)

	ok, err = re.Match(nil)
	require.Nil(t, err)
	require.True(t, ok)
}

func TestMatchInvalidInput(t *testing.T) {
	re, err := Compile(ast.NewStar(ast.NewRange('a', 'z')))
	require.Nil(t, err)

	_, err = re.MatchString("caf\xC3\xA9")
	require.ErrorIs(t, err, nfa.ErrInvalidCharacter)

	var me *nfa.MatchError
	require.ErrorAs(t, err, &me)
	require.Equal(t, 3, me.Pos)
}

func TestCompileInvalidTree(t *testing.T) {
	_, err := Compile(ast.NewLiteral('\n'))
	require.ErrorIs(t, err, nfa.ErrInvalidCharacter)

	_, err = Compile(ast.NewRange('z', 'a'))
	require.ErrorIs(t, err, nfa.ErrMalformedTree)
}

func TestMustCompilePanics(t *testing.T) {
	require.Panics(t, func() {
		MustCompile(ast.NewLiteral(0x07))
	})
	require.NotPanics(t, func() {
		MustCompile(ast.NewLiteral('a'))
	})
}

func TestCompileWithConfig(t *testing.T) {
	_, err := CompileWithConfig(ast.Str("abcdef"), nfa.Config{MaxStates: 3, MaxStackDepth: 300})
	require.ErrorIs(t, err, nfa.ErrCapacityExceeded)

	re, err := CompileWithConfig(ast.NewStar(ast.NewLiteral('a')), nfa.Config{MaxStates: 100, MaxStackDepth: 5000})
	require.Nil(t, err)
	ok, err := re.MatchString(strings.Repeat("a", 2000))
	require.Nil(t, err)
	require.True(t, ok)
}

func TestPrefilterAgreesWithMatcher(t *testing.T) {
	// The prefilter may only reject inputs the automaton rejects too;
	// compare filtered matching against the bare backtracker.
	tree := ast.NewAlt(ast.Str("foo"), ast.NewConcat(ast.Str("bar"), ast.NewStar(ast.NewRange('0', '9'))))
	re, err := Compile(tree)
	require.Nil(t, err)

	bare := nfa.NewBacktracker(re.NFA())
	inputs := []string{"foo", "bar", "bar123", "baz", "", "fo", "barfoo", "123"}
	for _, input := range inputs {
		want, err := bare.MatchString(input)
		require.Nil(t, err)
		got, err := re.MatchString(input)
		require.Nil(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestPattern(t *testing.T) {
	re, err := Compile(ast.NewAlt(ast.NewLiteral('a'), ast.Str("ab")))
	require.Nil(t, err)
	require.Equal(t, "(a | (ab))", re.Pattern())
}

func TestNFADump(t *testing.T) {
	re, err := Compile(ast.NewLiteral('a'))
	require.Nil(t, err)

	dump := re.NFA().String()
	require.Contains(t, dump, "state 1")
	require.Contains(t, dump, "ε:")
	require.Contains(t, dump, "a: 0")
}

package poly_test

import (
	"testing"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/poly"
	"github.com/stretchr/testify/require"
)

// mono is a short constructor for integer-coefficient monomials.
func mono(f field.Field, c int64, terms ...poly.Term) poly.Monomial {
	return poly.NewMonomial(f.FromInt(c), terms...)
}

// TestNewMonomialCanonical checks sorting, merging and the zero rule.
func TestNewMonomialCanonical(t *testing.T) {
	f := field.MustNew(field.KindFloat)

	m := mono(f, 2, poly.Var("y"), poly.Pow("x", 2), poly.Var("y"))
	require.Equal(t, "x^2y^2", m.Hash())
	require.Equal(t, 2, m.Degree())

	z := mono(f, 0, poly.Var("x"))
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Degree())
	require.Equal(t, "", z.Hash())

	blank := mono(f, 4, poly.Pow("", 3))
	require.Equal(t, 0, blank.Degree())
	require.Equal(t, "4", blank.String())
}

// TestMonomialMulExponentLaw: x^a · x^b = x^(a+b).
func TestMonomialMulExponentLaw(t *testing.T) {
	f := field.MustNew(field.KindDecimal)

	for _, tc := range []struct{ a, b int }{{2, 3}, {1, 1}, {4, -1}, {-2, 5}} {
		got := mono(f, 2, poly.Pow("x", tc.a)).Mul(mono(f, 3, poly.Pow("x", tc.b), poly.Var("y")))
		term, ok := got.Term("x")
		require.True(t, ok)
		require.Equal(t, tc.a+tc.b, term.Exp)
		require.True(t, got.Coeff().Equal(f.FromInt(6)))
		require.Equal(t, 2, got.Degree())
	}
}

// TestMonomialMulZeroExponentPlaceholder keeps x^0 after cancellation of powers.
func TestMonomialMulZeroExponentPlaceholder(t *testing.T) {
	f := field.MustNew(field.KindFloat)

	got := mono(f, 1, poly.Pow("x", 2)).Mul(mono(f, 1, poly.Pow("x", -2)))
	term, ok := got.Term("x")
	require.True(t, ok)
	require.Equal(t, 0, term.Exp)
	require.Equal(t, 1, got.Degree())
	require.Equal(t, "x", got.String())
}

// TestMonomialMulZeroShortCircuit drops all terms when the product is zero.
func TestMonomialMulZeroShortCircuit(t *testing.T) {
	f := field.MustNew(field.KindFloat)

	got := mono(f, 0).Mul(mono(f, 5, poly.Var("x")))
	require.True(t, got.IsZero())
	require.Empty(t, got.Terms())
}

// TestMonomialDiff covers present, absent, first-power and zero-exponent cases.
func TestMonomialDiff(t *testing.T) {
	f := field.MustNew(field.KindDecimal)

	require.Equal(t, "12x^2y", mono(f, 4, poly.Pow("x", 3), poly.Var("y")).Diff("x").String())
	require.Equal(t, "4y", mono(f, 4, poly.Var("x"), poly.Var("y")).Diff("x").String())
	require.True(t, mono(f, 4, poly.Var("y")).Diff("x").IsZero())
	require.True(t, mono(f, 9).Diff("x").IsZero())
	require.True(t, mono(f, 5, poly.Pow("x", 0)).Diff("x").IsZero())
	require.Equal(t, "-2x^-3", mono(f, 1, poly.Pow("x", -2)).Diff("x").String())
}

// TestMonomialIntegrate covers present, absent and the logarithmic case.
func TestMonomialIntegrate(t *testing.T) {
	f := field.MustNew(field.KindDecimal)

	got, err := mono(f, 6, poly.Pow("x", 2)).Integrate("x")
	require.NoError(t, err)
	require.Equal(t, "2x^3", got.String())

	got, err = mono(f, 3, poly.Var("y")).Integrate("x")
	require.NoError(t, err)
	require.Equal(t, "3xy", got.String())

	got, err = mono(f, 5, poly.Pow("x", 0)).Integrate("x")
	require.NoError(t, err)
	require.Equal(t, "5x", got.String())

	_, err = mono(f, 1, poly.Pow("x", -1)).Integrate("x")
	require.ErrorIs(t, err, poly.ErrNonIntegrable)
}

// TestDiffIntegrateDuality: ∫(d/dx m) dx = m for exponents >= 1.
func TestDiffIntegrateDuality(t *testing.T) {
	for _, f := range []field.Field{field.MustNew(field.KindFloat), field.MustNew(field.KindDecimal)} {
		for exp := 1; exp <= 5; exp++ {
			m := mono(f, 7, poly.Pow("x", exp), poly.Pow("y", 2))
			back, err := m.Diff("x").Integrate("x")
			require.NoError(t, err)
			require.True(t, m.Equal(back), "exp=%d: %s vs %s", exp, m, back)
		}
	}
}

// TestMonomialEval substitutes only resolved symbols.
func TestMonomialEval(t *testing.T) {
	f := field.MustNew(field.KindDecimal)
	env := poly.Env{}
	env.Bind("x", f.FromInt(2))
	env.Declare("y", f.FromInt(100))

	got := mono(f, 3, poly.Pow("x", 2), poly.Var("y"), poly.Var("z")).Eval(env)
	require.Equal(t, "12yz", got.String())
	require.Equal(t, 2, got.Degree())

	all := mono(f, 3, poly.Pow("x", 3)).Eval(env)
	require.Equal(t, 0, all.Degree())
	require.True(t, all.Coeff().Equal(f.FromInt(24)))

	require.Equal(t, "3x", mono(f, 3, poly.Var("x")).Eval(nil).String())
}

// TestMonomialString checks the unit, negative-unit and constant renderings.
func TestMonomialString(t *testing.T) {
	f := field.MustNew(field.KindFloat)

	require.Equal(t, "x", mono(f, 1, poly.Var("x")).String())
	require.Equal(t, "x", mono(f, 1, poly.Pow("x", 0)).String())
	require.Equal(t, "-x^2", mono(f, -1, poly.Pow("x", 2)).String())
	require.Equal(t, "3ab", mono(f, 3, poly.Var("b"), poly.Var("a")).String())
	require.Equal(t, "1", mono(f, 1).String())
	require.Equal(t, "-7", mono(f, -7).String())
	require.Equal(t, "0", mono(f, 0, poly.Var("x")).String())
}

// TestMonomialNeg flips the sign only.
func TestMonomialNeg(t *testing.T) {
	f := field.MustNew(field.KindFloat)
	m := mono(f, 2, poly.Var("x"))
	require.Equal(t, "-2x", m.Neg().String())
	require.Equal(t, "2x", m.String())
}

// TestMonomialZeroValue treats Monomial{} as zero in every operation.
func TestMonomialZeroValue(t *testing.T) {
	f := field.MustNew(field.KindDecimal)
	var z poly.Monomial
	x := mono(f, 3, poly.Var("x"))

	require.NotPanics(t, func() {
		require.True(t, z.Neg().IsZero())
		require.True(t, z.Mul(z).IsZero())
		require.True(t, z.Diff("x").IsZero())
		require.True(t, z.Eval(poly.Env{"x": {Value: f.One(), Resolved: true}}).IsZero())
	})
	require.Nil(t, z.Coeff())
	require.Equal(t, "0", z.Neg().String())
	require.True(t, z.Equal(mono(f, 0)))

	p := z.Mul(x)
	require.True(t, p.IsZero())
	require.NotNil(t, p.Coeff(), "zero takes the field of the other operand")
	require.Equal(t, f.Kind(), x.Mul(z).Coeff().Field().Kind())

	i, err := z.Integrate("x")
	require.NoError(t, err)
	require.True(t, i.IsZero())
	require.True(t, poly.New(f, z, x).Equal(poly.New(f, x)))
}

package poly_test

import (
	"testing"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/poly"
	"github.com/stretchr/testify/require"
)

func fields() []field.Field {
	return []field.Field{field.MustNew(field.KindFloat), field.MustNew(field.KindDecimal)}
}

// samples returns a few polynomials with overlapping monomials so that sums
// and products exercise merging and cancellation.
func samples(f field.Field) []poly.Polynomial {
	return []poly.Polynomial{
		poly.New(f, mono(f, 1, poly.Var("x")), mono(f, 2, poly.Var("y"))),
		poly.New(f, mono(f, 3), mono(f, -1, poly.Var("x"))),
		poly.New(f, mono(f, 1, poly.Var("x"), poly.Var("y")), mono(f, -4, poly.Pow("y", 2)), mono(f, 5)),
		poly.Zero(f),
		poly.New(f, mono(f, 2, poly.Pow("x", 3))),
	}
}

// TestNewCanonicalizes merges equal hashes and drops zero monomials.
func TestNewCanonicalizes(t *testing.T) {
	f := field.MustNew(field.KindDecimal)

	p := poly.New(f,
		mono(f, 2, poly.Var("x")),
		mono(f, 0, poly.Var("z")),
		mono(f, 3, poly.Var("y")),
		mono(f, 5, poly.Var("x")),
		mono(f, -3, poly.Var("y")),
	)
	require.Equal(t, 1, p.Len())
	require.Equal(t, "7x", p.String())
}

// TestAdditiveCancellation: p + (-p) = 0.
func TestAdditiveCancellation(t *testing.T) {
	for _, f := range fields() {
		for _, p := range samples(f) {
			sum := p.Add(p.Neg())
			require.True(t, sum.IsZero(), "%s", p)
			require.Equal(t, "0", sum.String())
			require.True(t, p.Sub(p).IsZero())
		}
	}
}

// TestAddCommutative compares both operand orders structurally.
func TestAddCommutative(t *testing.T) {
	for _, f := range fields() {
		ps := samples(f)
		for _, a := range ps {
			for _, b := range ps {
				require.True(t, a.Add(b).Equal(b.Add(a)), "%s + %s", a, b)
			}
		}
	}
}

// TestMulDistributes: (p1 + p2)·p3 = p1·p3 + p2·p3.
func TestMulDistributes(t *testing.T) {
	for _, f := range fields() {
		ps := samples(f)
		for _, p1 := range ps {
			for _, p2 := range ps {
				for _, p3 := range ps {
					left := p1.Add(p2).Mul(p3)
					right := p1.Mul(p3).Add(p2.Mul(p3))
					require.True(t, left.Equal(right), "(%s + %s)(%s): %s vs %s", p1, p2, p3, left, right)
				}
			}
		}
	}
}

// TestMulCancellation: (x + y)(x - y) = x^2 - y^2.
func TestMulCancellation(t *testing.T) {
	f := field.MustNew(field.KindFloat)
	x, y := poly.Symbol(f, "x"), poly.Symbol(f, "y")

	got := x.Add(y).Mul(x.Sub(y))
	want := poly.New(f, mono(f, 1, poly.Pow("x", 2)), mono(f, -1, poly.Pow("y", 2)))
	require.True(t, got.Equal(want), got.String())
	require.Equal(t, "x^2-y^2", got.String())
}

// TestScale multiplies every coefficient.
func TestScale(t *testing.T) {
	f := field.MustNew(field.KindDecimal)
	p := poly.New(f, mono(f, 1, poly.Var("x")), mono(f, -2))
	require.Equal(t, "3x-6", p.Scale(f.FromInt(3)).String())
	require.True(t, p.Scale(f.Zero()).IsZero())
}

// TestPolynomialDiffIntegrate maps the monomial rules across all terms.
func TestPolynomialDiffIntegrate(t *testing.T) {
	f := field.MustNew(field.KindDecimal)
	// 3x^2 + 2xy + 7
	p := poly.New(f, mono(f, 3, poly.Pow("x", 2)), mono(f, 2, poly.Var("x"), poly.Var("y")), mono(f, 7))

	d := p.Diff("x")
	require.Equal(t, "6x+2y", d.String())

	back, err := d.Integrate("x")
	require.NoError(t, err)
	require.Equal(t, "3x^2+2xy", back.String())

	require.True(t, p.Diff("q").IsZero())

	_, err = poly.New(f, mono(f, 1, poly.Pow("x", -1))).Integrate("x")
	require.ErrorIs(t, err, poly.ErrNonIntegrable)
}

// TestEvalAndValue resolves a polynomial step by step.
func TestEvalAndValue(t *testing.T) {
	f := field.MustNew(field.KindDecimal)
	// xy + 2x - y + 4
	p := poly.New(f,
		mono(f, 1, poly.Var("x"), poly.Var("y")),
		mono(f, 2, poly.Var("x")),
		mono(f, -1, poly.Var("y")),
		mono(f, 4),
	)

	_, err := p.Value()
	require.ErrorIs(t, err, poly.ErrUnresolved)

	env := poly.Env{}
	env.Bind("x", f.FromInt(3))
	env.Declare("y", f.Zero())

	half := p.Eval(env) // 3y + 6 - y + 4 = 2y + 10
	require.Equal(t, "2y+10", half.String())
	require.Equal(t, []string{"y"}, half.Vars())
	r := half.Resolve()
	require.False(t, r.Resolved())
	require.Len(t, r.Remaining, 1)

	env.Bind("y", f.FromInt(-5))
	v, err := p.Eval(env).Value()
	require.NoError(t, err)
	require.True(t, v.IsZero(), v.String())
	require.True(t, p.Eval(env).Resolve().Resolved())
}

// TestValueOfEmptyAndConstant covers the scalar edge cases.
func TestValueOfEmptyAndConstant(t *testing.T) {
	f := field.MustNew(field.KindFloat)

	v, err := poly.Zero(f).Value()
	require.NoError(t, err)
	require.True(t, v.IsZero())

	v, err = poly.Const(f.FromInt(9)).Value()
	require.NoError(t, err)
	require.True(t, v.Equal(f.FromInt(9)))

	_, err = poly.Polynomial{}.Value()
	require.ErrorIs(t, err, poly.ErrNoField)
}

// TestUnresolvedDegreeOne returns only monomials with a single free symbol.
func TestUnresolvedDegreeOne(t *testing.T) {
	f := field.MustNew(field.KindFloat)
	p := poly.New(f,
		mono(f, 1, poly.Var("x"), poly.Var("y")),
		mono(f, 2, poly.Var("z")),
		mono(f, 3),
		mono(f, 4, poly.Pow("w", 2)),
	)

	got := p.Unresolved()
	require.Len(t, got, 2)
	require.Equal(t, "2z", got[0].String())
	require.Equal(t, "4w^2", got[1].String())
	require.Equal(t, []string{"w", "x", "y", "z"}, p.Vars())
}

// TestPolynomialString checks sign prefixes and the empty rendering.
func TestPolynomialString(t *testing.T) {
	f := field.MustNew(field.KindFloat)

	require.Equal(t, "0", poly.Zero(f).String())
	require.Equal(t, "0", poly.Polynomial{}.String())
	require.Equal(t, "-x+2y-3", poly.New(f, mono(f, -1, poly.Var("x")), mono(f, 2, poly.Var("y")), mono(f, -3)).String())
	require.Equal(t, "x+1", poly.New(f, mono(f, 1, poly.Pow("x", 0)), mono(f, 1)).String())
}

// TestFloatToleranceCancels drops sums that fall within epsilon of zero.
func TestFloatToleranceCancels(t *testing.T) {
	f := field.MustNew(field.KindFloat, field.WithEpsilon(1e-9))
	a, err := f.FromFloat(0.1 + 0.2)
	require.NoError(t, err)
	b, err := f.FromFloat(-0.3)
	require.NoError(t, err)

	p := poly.New(f, poly.NewMonomial(a, poly.Var("x")), poly.NewMonomial(b, poly.Var("x")))
	require.True(t, p.IsZero())
}

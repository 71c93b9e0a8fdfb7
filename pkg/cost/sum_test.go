package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// three single-point least-squares terms with overlapping parameters,
// used to exercise combination and flattening
func threeCosts(t *testing.T) (lsq1, lsq2, lsq3 *LeastSquares) {
	t.Helper()

	model1 := func(x float64, p []float64) float64 { return p[0] + x }      // a + x
	model2 := func(x float64, p []float64) float64 { return p[1] + p[0]*x } // a + b*x, declared (b, a)
	model3 := func(x float64, p []float64) float64 { return p[0] }          // c

	var err error
	lsq1, err = NewLeastSquares([]float64{1}, []float64{2}, []float64{3}, model1, []string{"a"}, LossLinear)
	require.NoError(t, err)
	lsq2, err = NewLeastSquares([]float64{1}, []float64{3}, []float64{4}, model2, []string{"b", "a"}, LossLinear)
	require.NoError(t, err)
	lsq3, err = NewLeastSquares([]float64{1}, []float64{1}, []float64{1}, model3, []string{"c"}, LossLinear)
	require.NoError(t, err)
	return lsq1, lsq2, lsq3
}

func TestCombineMergesSignatures(t *testing.T) {
	lsq1, lsq2, lsq3 := threeCosts(t)
	assert.Equal(t, []string{"a"}, lsq1.Parameters())
	assert.Equal(t, []string{"b", "a"}, lsq2.Parameters())
	assert.Equal(t, []string{"c"}, lsq3.Parameters())

	lsq12 := Combine(lsq1, lsq2)
	assert.Equal(t, []string{"a", "b"}, lsq12.Parameters())

	items := lsq12.Items()
	require.Len(t, items, 2)
	assert.Same(t, lsq1, items[0])
	assert.Same(t, lsq2, items[1])
}

func TestCombineJointEvaluation(t *testing.T) {
	lsq1, lsq2, _ := threeCosts(t)
	lsq12 := Combine(lsq1, lsq2)

	// joint parameters are (a, b); lsq2 declared (b, a)
	for _, p := range [][2]float64{{1, 2}, {0.5, -1.5}, {0, 0}} {
		a, b := p[0], p[1]
		want := lsq1.Eval([]float64{a}) + lsq2.Eval([]float64{b, a})
		assert.InDelta(t, want, lsq12.Eval([]float64{a, b}), 1e-12)
	}
}

func TestCombineFlattens(t *testing.T) {
	lsq1, lsq2, lsq3 := threeCosts(t)

	lsq12 := Combine(lsq1, lsq2)
	lsq121 := Combine(lsq12, lsq1)
	require.Len(t, lsq121.Items(), 3)
	assert.Same(t, lsq1, lsq121.Items()[0])
	assert.Same(t, lsq2, lsq121.Items()[1])
	assert.Same(t, lsq1, lsq121.Items()[2])
	assert.Equal(t, []string{"a", "b"}, lsq121.Parameters())

	lsq312 := Combine(lsq3, lsq12)
	require.Len(t, lsq312.Items(), 3)
	assert.Same(t, lsq3, lsq312.Items()[0])
	assert.Same(t, lsq1, lsq312.Items()[1])
	assert.Same(t, lsq2, lsq312.Items()[2])
	assert.Equal(t, []string{"c", "a", "b"}, lsq312.Parameters())

	lsq31212 := Combine(lsq312, lsq12)
	require.Len(t, lsq31212.Items(), 5)
	assert.Equal(t, []string{"c", "a", "b"}, lsq31212.Parameters())
	assert.Equal(t, 5, lsq31212.Len())
}

func TestCombineAssociative(t *testing.T) {
	lsq1, lsq2, lsq3 := threeCosts(t)

	left := Combine(Combine(lsq1, lsq2), lsq3)
	right := Combine(lsq1, Combine(lsq2, lsq3))
	flat := Combine(lsq1, lsq2, lsq3)

	assert.Equal(t, flat.Parameters(), left.Parameters())
	assert.Equal(t, flat.Parameters(), right.Parameters())
	require.Equal(t, 3, left.Len())
	require.Equal(t, 3, right.Len())
	for i, it := range flat.Items() {
		assert.Same(t, it, left.Items()[i])
		assert.Same(t, it, right.Items()[i])
	}

	p := []float64{0.3, -0.7, 1.1}
	assert.InDelta(t, flat.Eval(p), left.Eval(p), 1e-12)
	assert.InDelta(t, flat.Eval(p), right.Eval(p), 1e-12)
}

func TestCombineSharedParameterCoupling(t *testing.T) {
	lsq1, _, _ := threeCosts(t)

	nc, err := NewNormalConstraint([]string{"a"}, []float64{1}, []float64{0.1})
	require.NoError(t, err)

	joint := Combine(lsq1, nc)
	assert.Equal(t, []string{"a"}, joint.Parameters())
	assert.InDelta(t, lsq1.Eval([]float64{2})+nc.Eval([]float64{2}), joint.Eval([]float64{2}), 1e-12)
}

package correlation_test

import (
	"math/rand"
	"testing"

	"github.com/st-1989/Correlation-game/internal/domain/correlation"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/stat"
)

func TestPearson(t *testing.T) {
	Convey("Given a textbook dataset", t, func() {
		x := []float64{43, 21, 25, 42, 57, 59}
		y := []float64{99, 65, 79, 75, 87, 81}

		Convey("When computing Pearson's r", func() {
			r, err := correlation.Pearson(x, y)

			Convey("Then it should match the known value", func() {
				So(err, ShouldBeNil)
				So(r, ShouldAlmostEqual, 0.5298, 0.0001)
			})

			Convey("And it should agree with gonum", func() {
				So(err, ShouldBeNil)
				So(r, ShouldAlmostEqual, stat.Correlation(x, y, nil), 1e-12)
			})
		})
	})

	Convey("Given perfectly linear data", t, func() {
		x := []float64{1, 2, 3, 4, 5}

		Convey("When y rises with x", func() {
			r, err := correlation.Pearson(x, []float64{2, 4, 6, 8, 10})
			So(err, ShouldBeNil)
			So(r, ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("When y falls with x", func() {
			r, err := correlation.Pearson(x, []float64{10, 8, 6, 4, 2})
			So(err, ShouldBeNil)
			So(r, ShouldAlmostEqual, -1, 1e-12)
		})
	})

	Convey("Given arbitrary seeded data", t, func() {
		rng := rand.New(rand.NewSource(11))
		x := make([]float64, 200)
		y := make([]float64, 200)
		for i := range x {
			x[i] = rng.NormFloat64()
			y[i] = rng.NormFloat64() + 0.5*x[i]
		}

		Convey("When computing Pearson's r", func() {
			r, err := correlation.Pearson(x, y)

			Convey("Then it should stay within [-1, 1] and match gonum", func() {
				So(err, ShouldBeNil)
				So(r, ShouldBeBetweenOrEqual, -1, 1)
				So(r, ShouldAlmostEqual, stat.Correlation(x, y, nil), 1e-12)
			})
		})
	})

	Convey("Given degenerate inputs", t, func() {
		Convey("When lengths differ", func() {
			_, err := correlation.Pearson([]float64{1, 2}, []float64{1, 2, 3})
			So(err, ShouldWrap, correlation.ErrLengthMismatch)
		})

		Convey("When fewer than two observations are given", func() {
			_, err := correlation.Pearson([]float64{1}, []float64{1})
			So(err, ShouldWrap, correlation.ErrTooFewValues)
		})

		Convey("When one sequence is constant", func() {
			_, err := correlation.Pearson([]float64{3, 3, 3}, []float64{1, 2, 3})
			So(err, ShouldWrap, correlation.ErrZeroVariance)

			_, err = correlation.Pearson([]float64{1, 2, 3}, []float64{7, 7, 7})
			So(err, ShouldWrap, correlation.ErrZeroVariance)
		})
	})
}

func TestRanks(t *testing.T) {
	Convey("Given a sequence without ties", t, func() {
		Convey("When ranking", func() {
			ranks := correlation.Ranks([]float64{30, 10, 20})

			Convey("Then ranks should follow ascending order", func() {
				So(ranks, ShouldResemble, []float64{3, 1, 2})
			})
		})
	})

	Convey("Given a two-way tie", t, func() {
		ranks := correlation.Ranks([]float64{10, 20, 20, 30})

		Convey("Then both tied values should get the mid-rank", func() {
			So(ranks, ShouldResemble, []float64{1, 2.5, 2.5, 4})
		})
	})

	Convey("Given a three-way tie", t, func() {
		ranks := correlation.Ranks([]float64{5, 7, 7, 7, 9})

		Convey("Then the tied block should share the mean of ranks 2,3,4", func() {
			So(ranks, ShouldResemble, []float64{1, 3, 3, 3, 5})
		})
	})

	Convey("Given any tied sequence", t, func() {
		v := []float64{4, 4, 1, 9, 9, 9, 2, 2, 7, 4}

		Convey("When ranking", func() {
			ranks := correlation.Ranks(v)

			Convey("Then the rank sum should equal n(n+1)/2", func() {
				sum := 0.0
				for _, r := range ranks {
					sum += r
				}
				n := float64(len(v))
				So(sum, ShouldAlmostEqual, n*(n+1)/2, 1e-9)
			})
		})
	})
}

func TestSpearman(t *testing.T) {
	Convey("Given a tied dataset", t, func() {
		x := []float64{1, 2, 2, 4, 5}
		y := []float64{3, 1, 4, 4, 6}

		Convey("When computing Spearman's rho", func() {
			rho, err := correlation.Spearman(x, y)

			Convey("Then it should equal Pearson on the rank transforms", func() {
				So(err, ShouldBeNil)
				expected, perr := correlation.Pearson(correlation.Ranks(x), correlation.Ranks(y))
				So(perr, ShouldBeNil)
				So(rho, ShouldAlmostEqual, expected, 1e-12)
			})

			Convey("And the rank-based Pearson should agree with gonum", func() {
				So(err, ShouldBeNil)
				So(rho, ShouldAlmostEqual, stat.Correlation(correlation.Ranks(x), correlation.Ranks(y), nil), 1e-12)
			})
		})
	})

	Convey("Given a monotone relation", t, func() {
		x := []float64{1, 2, 3, 4, 5}
		y := []float64{10, 100, 1000, 10000, 100000}

		Convey("When computing Spearman's rho", func() {
			rho, err := correlation.Spearman(x, y)

			Convey("Then a nonlinear but monotone relation should score 1", func() {
				So(err, ShouldBeNil)
				So(rho, ShouldAlmostEqual, 1, 1e-12)
			})
		})
	})

	Convey("Given mismatched lengths", t, func() {
		_, err := correlation.Spearman([]float64{1, 2, 3}, []float64{1, 2})
		So(err, ShouldWrap, correlation.ErrLengthMismatch)
	})
}

func TestKendall(t *testing.T) {
	Convey("Given perfectly concordant data", t, func() {
		tau, err := correlation.Kendall([]float64{1, 2, 3, 4, 5}, []float64{2, 5, 9, 14, 20})
		So(err, ShouldBeNil)
		So(tau, ShouldEqual, 1)
	})

	Convey("Given perfectly discordant data", t, func() {
		tau, err := correlation.Kendall([]float64{1, 2, 3, 4, 5}, []float64{20, 14, 9, 5, 2})
		So(err, ShouldBeNil)
		So(tau, ShouldEqual, -1)
	})

	Convey("Given a mixed permutation", t, func() {
		// y = 3,4,1,2,5 over ascending x: 6 concordant pairs, 4 discordant
		tau, err := correlation.Kendall([]float64{1, 2, 3, 4, 5}, []float64{3, 4, 1, 2, 5})
		So(err, ShouldBeNil)
		So(tau, ShouldAlmostEqual, 0.2, 1e-12)
	})

	Convey("Given data with a tie in x", t, func() {
		// The tied pair drops from the numerator but not the denominator:
		// 5 concordant of 6 pairs.
		tau, err := correlation.Kendall([]float64{1, 1, 2, 3}, []float64{1, 2, 3, 4})
		So(err, ShouldBeNil)
		So(tau, ShouldAlmostEqual, 5.0/6.0, 1e-12)
	})

	Convey("Given degenerate inputs", t, func() {
		_, err := correlation.Kendall([]float64{2, 2, 2}, []float64{1, 2, 3})
		So(err, ShouldWrap, correlation.ErrZeroVariance)

		_, err = correlation.Kendall([]float64{1, 2}, []float64{1})
		So(err, ShouldWrap, correlation.ErrLengthMismatch)
	})
}

func TestCompute(t *testing.T) {
	Convey("Given a valid sample", t, func() {
		rng := rand.New(rand.NewSource(23))
		x := make([]float64, 80)
		y := make([]float64, 80)
		for i := range x {
			x[i] = rng.NormFloat64()
			y[i] = 0.7*x[i] + rng.NormFloat64()
		}

		Convey("When computing the triple twice", func() {
			first, err1 := correlation.Compute(x, y)
			second, err2 := correlation.Compute(x, y)

			Convey("Then both runs should be identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first, ShouldResemble, second)
			})

			Convey("And all three values should be in range", func() {
				So(err1, ShouldBeNil)
				So(first.Pearson, ShouldBeBetweenOrEqual, -1, 1)
				So(first.Spearman, ShouldBeBetweenOrEqual, -1, 1)
				So(first.Kendall, ShouldBeBetweenOrEqual, -1, 1)
			})
		})
	})

	Convey("Given a constant sequence", t, func() {
		_, err := correlation.Compute([]float64{1, 1, 1}, []float64{1, 2, 3})

		Convey("Then the zero-variance error should surface", func() {
			So(err, ShouldWrap, correlation.ErrZeroVariance)
		})
	})
}

package qsim

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"
)

func TestNewRegister(t *testing.T) {
	Convey("Given a new single qubit", t, func() {
		q := NewRegister(1)

		Convey("It should be in the ground state", func() {
			So(q.Qubits(), ShouldEqual, 1)
			So(q.Dim(), ShouldEqual, 2)
			So(q.Amplitudes(), ShouldResemble, []float64{1, 0})
		})

		Convey("Amplitudes should return a copy", func() {
			amps := q.Amplitudes()
			amps[0] = 0
			So(q.At(0), ShouldEqual, 1.0)
		})
	})

	Convey("Given a new two qubit register", t, func() {
		q := NewRegister(2)

		So(q.Dim(), ShouldEqual, 4)
		So(q.Amplitudes(), ShouldResemble, []float64{1, 0, 0, 0})
		So(q.Norm(), ShouldEqual, 1.0)
	})

	Convey("Given a qubit count below one", t, func() {
		So(func() { NewRegister(0) }, ShouldPanic)
	})
}

func TestApplyMatrix(t *testing.T) {
	Convey("Given a qubit in the ground state", t, func() {
		q := NewRegister(1)

		Convey("When a swap matrix is applied", func() {
			err := q.ApplyMatrix(mat.NewDense(2, 2, []float64{0, 1, 1, 0}))

			So(err, ShouldBeNil)
			So(q.Amplitudes(), ShouldResemble, []float64{0, 1})
		})

		Convey("When a matrix is applied it should act on the row vector", func() {
			err := q.ApplyMatrix(mat.NewDense(2, 2, []float64{
				0.6, 0.8,
				-0.8, 0.6,
			}))

			So(err, ShouldBeNil)
			So(q.At(0), ShouldAlmostEqual, 0.6, 1e-12)
			So(q.At(1), ShouldAlmostEqual, 0.8, 1e-12)
		})

		Convey("When a matrix of the wrong size is applied", func() {
			err := q.ApplyMatrix(mat.NewDense(4, 4, nil))

			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
			So(q.Amplitudes(), ShouldResemble, []float64{1, 0})
		})

		Convey("When a non-square matrix is applied", func() {
			err := q.ApplyMatrix(mat.NewDense(2, 4, nil))
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})
	})

	Convey("Given a two qubit register", t, func() {
		q := NewRegister(2)

		Convey("The identity should leave it unchanged", func() {
			err := q.ApplyMatrix(mat.NewDiagDense(4, []float64{1, 1, 1, 1}))

			So(err, ShouldBeNil)
			So(q.Amplitudes(), ShouldResemble, []float64{1, 0, 0, 0})
		})
	})
}

func TestProbability(t *testing.T) {
	Convey("Given a qubit with amplitudes [0.6, 0.8]", t, func() {
		q := newRegisterFrom([]float64{0.6, 0.8})

		Convey("Probability should only count basis state 0", func() {
			p, err := q.Probability()

			So(err, ShouldBeNil)
			So(p, ShouldAlmostEqual, 0.36, 1e-12)
		})

		Convey("Probabilities should cover every basis state", func() {
			probs := q.Probabilities()

			So(probs[0], ShouldAlmostEqual, 0.36, 1e-12)
			So(probs[1], ShouldAlmostEqual, 0.64, 1e-12)
		})
	})

	Convey("Given a two qubit register spread evenly", t, func() {
		q := newRegisterFrom([]float64{0.5, 0.5, 0.5, 0.5})

		p, err := q.Probability()
		So(err, ShouldBeNil)
		So(p, ShouldEqual, 0.25)
	})

	Convey("Given a register scaled past unit norm", t, func() {
		q := NewRegister(1)
		So(q.ApplyMatrix(mat.NewDiagDense(2, []float64{2, 2})), ShouldBeNil)

		Convey("The probability should be reported, not clamped", func() {
			p, err := q.Probability()

			So(errors.Is(err, ErrInvalidProbability), ShouldBeTrue)
			So(p, ShouldEqual, 4.0)
		})
	})

	Convey("Given a register holding a NaN amplitude", t, func() {
		q := NewRegister(1)
		So(q.ApplyMatrix(mat.NewDiagDense(2, []float64{math.NaN(), 1})), ShouldBeNil)

		Convey("The probability should be reported as invalid", func() {
			_, err := q.Probability()
			So(errors.Is(err, ErrInvalidProbability), ShouldBeTrue)
		})
	})

	Convey("Given a released register", t, func() {
		q := NewRegister(2)
		q.release()

		_, err := q.Probability()
		So(err, ShouldEqual, ErrEmptyRegister)
		So(q.Dim(), ShouldEqual, 0)
		So(q.At(0), ShouldEqual, 0.0)
		So(q.Amplitudes(), ShouldBeNil)
		So(q.Apply(CNOTGate()), ShouldEqual, ErrEmptyRegister)
		So(q.String(), ShouldEqual, "Register(empty)")
	})
}

package qsim

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSample(t *testing.T) {
	Convey("Given a Bell pair and a seeded measurer", t, func() {
		m := NewMeasurer(WithSeed(3))

		q1 := NewRegister(1)
		q2 := NewRegister(1)
		So(Hadamard(q1), ShouldBeNil)

		pair := Tensor(q1, q2)
		So(pair.Apply(CNOTGate()), ShouldBeNil)

		Convey("Only correlated outcomes should be counted", func() {
			counts, err := m.Sample(pair, 2000)
			t.Log(spew.Sdump(counts))

			So(err, ShouldBeNil)
			So(counts.Total(), ShouldEqual, 2000)
			So(counts.Keys(), ShouldResemble, []string{"00", "11"})
			So(counts.Frequency("00"), ShouldAlmostEqual, 0.5, 0.05)
			So(counts.Frequency("01"), ShouldEqual, 0.0)
		})
	})

	Convey("Given a released register", t, func() {
		q := NewRegister(1)
		q.release()

		_, err := NewMeasurer().Sample(q, 10)
		So(err, ShouldEqual, ErrEmptyRegister)
	})

	Convey("Given no shots", t, func() {
		counts := Counts{}
		So(counts.Frequency("0"), ShouldEqual, 0.0)
		So(Bitstring([]Outcome{One, Zero, One}), ShouldEqual, "101")
	})
}

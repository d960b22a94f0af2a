// gate.go
package qsim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
Gate is an immutable transform matrix, stored in the row-vector convention
used by Register.ApplyMatrix. Gates are cheap to build and every constructor
returns a fresh matrix, so a Gate is never shared or mutated.
*/
type Gate struct {
	name   string
	matrix *mat.Dense
}

func newGate(name string, dim int, data ...float64) Gate {
	return Gate{
		name:   name,
		matrix: mat.NewDense(dim, dim, data),
	}
}

func (g Gate) Name() string {
	return g.name
}

func (g Gate) Dim() int {
	r, _ := g.matrix.Dims()
	return r
}

func (g Gate) At(i, j int) float64 {
	return g.matrix.At(i, j)
}

// Matrix returns a copy of the gate's matrix.
func (g Gate) Matrix() mat.Matrix {
	return mat.DenseCopyOf(g.matrix)
}

/*
Orthogonal reports whether G·Gᵀ is the identity within DefaultEpsilon. Only
orthogonal gates are guaranteed to keep a register at unit norm; the real-only
phase gates are not.
*/
func (g Gate) Orthogonal() bool {
	dim := g.Dim()

	ones := make([]float64, dim)
	for i := range ones {
		ones[i] = 1
	}

	var product mat.Dense
	product.Mul(g.matrix, g.matrix.T())

	return mat.EqualApprox(&product, mat.NewDiagDense(dim, ones), DefaultEpsilon)
}

func (g Gate) String() string {
	return g.name
}

// HadamardGate is 1/√2 * [[1, 1], [1, -1]].
func HadamardGate() Gate {
	s := 1 / math.Sqrt2
	return newGate("hadamard", 2,
		s, s,
		s, -s,
	)
}

func PauliXGate() Gate {
	return newGate("pauli-x", 2,
		0, 1,
		1, 0,
	)
}

// PauliYGate drops the imaginary unit of the textbook Pauli-Y.
func PauliYGate() Gate {
	return newGate("pauli-y", 2,
		0, -1,
		1, 0,
	)
}

func PauliZGate() Gate {
	return newGate("pauli-z", 2,
		1, 0,
		0, -1,
	)
}

// PhaseGate is the real-only stand-in for S; it scales |1⟩ by 1/√2.
func PhaseGate() Gate {
	return newGate("phase", 2,
		1, 0,
		0, 1/math.Sqrt2,
	)
}

func PhaseInverseGate() Gate {
	return newGate("phase-inverse", 2,
		1, 0,
		0, -1/math.Sqrt2,
	)
}

// TGate shares the Phase matrix, since the π/4 phase cannot be expressed without complex amplitudes.
func TGate() Gate {
	return newGate("t", 2,
		1, 0,
		0, 1/math.Sqrt2,
	)
}

func TInverseGate() Gate {
	return newGate("t-inverse", 2,
		1, 0,
		0, -1/math.Sqrt2,
	)
}

// CNOTGate swaps basis states |10⟩ and |11⟩ of a control ⊗ target composite.
func CNOTGate() Gate {
	return newGate("cnot", 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	)
}

// Gates returns every single-qubit gate in the library.
func Gates() []Gate {
	return []Gate{
		HadamardGate(),
		PauliXGate(),
		PauliYGate(),
		PauliZGate(),
		PhaseGate(),
		PhaseInverseGate(),
		TGate(),
		TInverseGate(),
	}
}

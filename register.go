// register.go
package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
Register is one or more qubits held as a vector of real probability amplitudes.
A register of n qubits has dimension 2^n and always starts in the ground state,
with all of its weight on basis state 0.

Amplitudes are real-valued: phase is not represented, which makes Pauli-Y and
the phase gates approximations of their textbook definitions.
*/
type Register struct {
	qubits     int
	amplitudes *mat.VecDense
}

/*
NewRegister creates a register of the given number of qubits in the ground state.
It panics with ErrInvalidQubitCount when qubits is less than one.
*/
func NewRegister(qubits int) *Register {
	if qubits < 1 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidQubitCount, qubits))
	}

	data := make([]float64, 1<<qubits)
	data[0] = 1

	return &Register{
		qubits:     qubits,
		amplitudes: mat.NewVecDense(len(data), data),
	}
}

// newRegisterFrom takes ownership of data, which must have a power-of-two length.
func newRegisterFrom(data []float64) *Register {
	qubits := 0
	for n := len(data); n > 1; n >>= 1 {
		qubits++
	}

	return &Register{
		qubits:     qubits,
		amplitudes: mat.NewVecDense(len(data), data),
	}
}

// Qubits returns the number of qubits in the register.
func (r *Register) Qubits() int {
	return r.qubits
}

// Dim returns the number of amplitudes, 2^Qubits.
func (r *Register) Dim() int {
	if r.empty() {
		return 0
	}
	return r.amplitudes.Len()
}

// At returns the amplitude of basis state i, or 0 for a released register.
func (r *Register) At(i int) float64 {
	if r.empty() {
		return 0
	}
	return r.amplitudes.AtVec(i)
}

// Amplitudes returns a copy of the amplitude vector.
func (r *Register) Amplitudes() []float64 {
	if r.empty() {
		return nil
	}

	out := make([]float64, r.amplitudes.Len())
	copy(out, r.amplitudes.RawVector().Data)
	return out
}

// Norm returns the Euclidean norm of the amplitudes, 1 for a valid state.
func (r *Register) Norm() float64 {
	if r.empty() {
		return 0
	}
	return floats.Norm(r.amplitudes.RawVector().Data, 2)
}

/*
ApplyMatrix transforms the register in place, treating the amplitudes as a row
vector multiplied on the right by m:

	new[i] = Σ_j amp[j] * m[j][i]

Matrices written in the usual column-vector notation must therefore be passed
transposed. Orthogonal matrices preserve the norm of the register.
*/
func (r *Register) ApplyMatrix(m mat.Matrix) error {
	if r.empty() {
		return ErrEmptyRegister
	}

	rows, cols := m.Dims()
	if dim := r.amplitudes.Len(); rows != dim || cols != dim {
		return fmt.Errorf(
			"%w: %dx%d matrix on %d-qubit register (dim %d)",
			ErrDimensionMismatch, rows, cols, r.qubits, dim,
		)
	}

	next := mat.NewVecDense(r.amplitudes.Len(), nil)
	next.MulVec(m.T(), r.amplitudes)
	r.amplitudes = next

	return nil
}

// Apply transforms the register with a gate from the library.
func (r *Register) Apply(g Gate) error {
	return r.ApplyMatrix(g.matrix)
}

/*
Probability returns the probability of observing every qubit in basis state 0,
amp[0]^2. The value is returned unclamped together with ErrInvalidProbability
when it falls outside [0,1] by more than DefaultEpsilon.
*/
func (r *Register) Probability() (float64, error) {
	return r.probability(DefaultEpsilon)
}

func (r *Register) probability(epsilon float64) (float64, error) {
	if r.empty() {
		return 0, ErrEmptyRegister
	}

	p := r.amplitudes.AtVec(0) * r.amplitudes.AtVec(0)
	if !(p <= 1+epsilon) {
		return p, fmt.Errorf("%w: p0=%v", ErrInvalidProbability, p)
	}

	return p, nil
}

// Probabilities returns the Born-rule weight amp[i]^2 of every basis state.
func (r *Register) Probabilities() []float64 {
	probs := r.Amplitudes()
	for i, a := range probs {
		probs[i] = a * a
	}
	return probs
}

func (r *Register) String() string {
	if r.empty() {
		return "Register(empty)"
	}
	return fmt.Sprintf("Register(%d) %v", r.qubits, mat.Formatted(r.amplitudes.T(), mat.Squeeze()))
}

func (r *Register) empty() bool {
	return r == nil || r.amplitudes == nil
}

// release drops the amplitude storage; the register is unusable afterwards.
func (r *Register) release() {
	r.amplitudes = nil
}

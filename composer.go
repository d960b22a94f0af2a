// composer.go
package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
Tensor combines two registers into a new composite register holding their
joint product state:

	amp[i*dim(b)+j] = a[i] * b[j]

The inputs are left untouched. The composite only describes an unentangled
product state at the moment it is built. Tensoring an empty register yields an
empty register.
*/
func Tensor(a, b *Register) *Register {
	if a.empty() || b.empty() {
		return &Register{}
	}

	var product mat.Dense
	product.Kronecker(a.amplitudes, b.amplitudes)

	return newRegisterFrom(mat.Col(nil, 0, &product))
}

/*
Halves partitions a composite into the two contiguous halves of its amplitude
array, amp[:dim/2] and amp[dim/2:]. This is a plain index partition, not an
inverse of Tensor. The composite is released.
*/
func Halves(composite *Register) (*Register, *Register, error) {
	if composite.empty() {
		return nil, nil, ErrEmptyRegister
	}

	if composite.qubits < 2 {
		return nil, nil, ErrNotComposite
	}

	data := composite.Amplitudes()
	half := len(data) / 2
	composite.release()

	return newRegisterFrom(data[:half:half]), newRegisterFrom(data[half:]), nil
}

/*
Split separates the leading Qubits()/2 qubits of a composite from the rest and
releases the composite.

The composite is read as a block matrix whose rows are its contiguous index
blocks (for two qubits, exactly the two Halves). The block with the largest
norm, normalised, becomes the second register; the first register holds every
block's projection onto it. For a product state this inverts Tensor only up to
a global sign: the first register's largest amplitude always comes back
positive, so Split(Tensor([-1,0], [1,0])) returns [1,0] and [-1,0].

An entangled composite has no such factorisation. Split still returns two
registers, but they are not an independent description of the pair and the
correlation between them is lost. No partial trace is attempted.
*/
func Split(composite *Register) (*Register, *Register, error) {
	if composite.empty() {
		return nil, nil, ErrEmptyRegister
	}

	a, b, _, err := splitAt(composite, composite.qubits/2)
	return a, b, err
}

// splitAt also returns the distance between the composite and the tensor of its factors.
func splitAt(composite *Register, leading int) (*Register, *Register, float64, error) {
	if composite.empty() {
		return nil, nil, 0, ErrEmptyRegister
	}

	if composite.qubits < 2 {
		return nil, nil, 0, ErrNotComposite
	}

	if leading < 1 || leading >= composite.qubits {
		return nil, nil, 0, fmt.Errorf(
			"%w: cannot split %d leading qubits from a %d-qubit register",
			ErrDimensionMismatch, leading, composite.qubits,
		)
	}

	data := composite.Amplitudes()
	rows := 1 << leading
	cols := len(data) / rows
	blocks := mat.NewDense(rows, cols, data)

	pivot, pivotNorm := 0, 0.0
	for i := 0; i < rows; i++ {
		if n := floats.Norm(blocks.RawRowView(i), 2); n > pivotNorm {
			pivot, pivotNorm = i, n
		}
	}

	first := make([]float64, rows)
	second := make([]float64, cols)

	if pivotNorm > 0 {
		floats.ScaleTo(second, 1/pivotNorm, blocks.RawRowView(pivot))

		for i := range first {
			first[i] = floats.Dot(blocks.RawRowView(i), second)
		}
	}

	a := newRegisterFrom(first)
	b := newRegisterFrom(second)

	residual := floats.Distance(data, Tensor(a, b).Amplitudes(), 2)
	composite.release()

	return a, b, residual, nil
}

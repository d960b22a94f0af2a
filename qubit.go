package qsim

import (
	"github.com/theapemachine/errnie"
)

func Hadamard(q *Register) error {
	return q.Apply(HadamardGate())
}

func PauliX(q *Register) error {
	return q.Apply(PauliXGate())
}

func PauliY(q *Register) error {
	return q.Apply(PauliYGate())
}

func PauliZ(q *Register) error {
	return q.Apply(PauliZGate())
}

func Phase(q *Register) error {
	return q.Apply(PhaseGate())
}

func PhaseInverse(q *Register) error {
	return q.Apply(PhaseInverseGate())
}

func T(q *Register) error {
	return q.Apply(TGate())
}

func TInverse(q *Register) error {
	return q.Apply(TInverseGate())
}

/*
CNOT flips target when control is in basis state 1. Both qubits are combined
into a composite, transformed, and split back, overwriting control and target.

Once the composite is entangled (control in superposition) the split cannot
recover two independent qubits: the results are still written back, and the
discarded part of the state is logged.
*/
func CNOT(control, target *Register) error {
	if control.empty() || target.empty() {
		return ErrEmptyRegister
	}

	if control == target {
		return ErrAliasedRegisters
	}

	composite := Tensor(control, target)
	if err := composite.Apply(CNOTGate()); err != nil {
		return err
	}

	c, t, residual, err := splitAt(composite, control.qubits)
	if err != nil {
		return err
	}

	if residual > DefaultEpsilon {
		errnie.Info(
			"CNOT - entangled composite split lossily, residual %v, control %v, target %v",
			residual, c, t,
		)
	}

	control.amplitudes = c.amplitudes
	target.amplitudes = t.amplitudes

	return nil
}

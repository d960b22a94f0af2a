package qsim

import "errors"

var (
	// ErrDimensionMismatch indicates a matrix whose size does not match the register it is applied to.
	ErrDimensionMismatch = errors.New("qsim: matrix dimension does not match register dimension")
	// ErrInvalidProbability indicates a probability outside [0,1], usually the result of a non-unitary matrix.
	ErrInvalidProbability = errors.New("qsim: probability outside [0,1]")
	// ErrNotComposite indicates an attempt to split a single-qubit register.
	ErrNotComposite = errors.New("qsim: register holds a single qubit and cannot be split")
	// ErrEmptyRegister indicates use of a register whose amplitudes were released by Split.
	ErrEmptyRegister = errors.New("qsim: register has no amplitudes")
	// ErrAliasedRegisters indicates a two-qubit operation given the same register twice.
	ErrAliasedRegisters = errors.New("qsim: control and target must be distinct registers")
	// ErrInvalidQubitCount is the panic value for a register constructed with fewer than one qubit.
	ErrInvalidQubitCount = errors.New("qsim: a register needs at least one qubit")
)

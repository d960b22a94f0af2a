// measure.go
package qsim

import (
	"fmt"
	"math/rand/v2"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/stat/distuv"
)

// Outcome is a single classical bit read from a register.
type Outcome uint8

const (
	Zero Outcome = 0
	One  Outcome = 1
)

func (o Outcome) String() string {
	return fmt.Sprintf("%d", uint8(o))
}

/*
Measurer samples classical outcomes from registers. Every draw comes from the
configured source, so a Measurer built with a fixed seed produces the same
sequence of outcomes on every run.

Measurement does not collapse or renormalise the register: it is a pure read
of the amplitudes plus one draw from the source. A Measurer is not safe for
concurrent use.
*/
type Measurer struct {
	src     rand.Source
	epsilon float64
}

func NewMeasurer(opts ...Option) *Measurer {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}

	errnie.Info(
		"NewMeasurer - seed %v, external source %v, epsilon %v",
		config.Seed,
		config.Source != nil,
		config.Epsilon,
	)

	return &Measurer{
		src:     config.source(),
		epsilon: config.Epsilon,
	}
}

/*
Measure draws u uniformly from [0,1) and returns Zero when u is below the
register's Probability, One otherwise.
*/
func (m *Measurer) Measure(r *Register) (Outcome, error) {
	p, err := r.probability(m.epsilon)
	if err != nil {
		m.diagnose(r, err)
		return Zero, err
	}

	// Bernoulli yields 1 when the draw falls below P, which is our Zero.
	hit := distuv.Bernoulli{P: p, Src: m.src}.Rand()
	if hit == 1 {
		return Zero, nil
	}

	return One, nil
}

/*
MeasureAll samples one basis state of the whole register from its Born
distribution and returns its bits, first qubit first. Unlike measuring the
qubits one at a time, this keeps the correlations of an entangled register.
*/
func (m *Measurer) MeasureAll(r *Register) ([]Outcome, error) {
	if r.empty() {
		return nil, ErrEmptyRegister
	}

	weights := r.Probabilities()

	var total float64
	for _, w := range weights {
		total += w
	}

	if !(total > 0 && total <= 1+m.epsilon) {
		err := fmt.Errorf("%w: total weight %v", ErrInvalidProbability, total)
		m.diagnose(r, err)
		return nil, err
	}

	index := int(distuv.NewCategorical(weights, m.src).Rand())

	bits := make([]Outcome, r.qubits)
	for i := range bits {
		bits[i] = Outcome((index >> (r.qubits - 1 - i)) & 1)
	}

	return bits, nil
}

func (m *Measurer) diagnose(r *Register, err error) {
	errnie.Info("Measurer - %v, register %v, norm %v", err, r, r.Norm())
}

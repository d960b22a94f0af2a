package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsim"
	"gonum.org/v1/gonum/mat"
)

// labels in the order they are printed, keyed by measured bits.
var labels = []struct {
	bits  string
	label string
}{
	{"00", "Φ⁺"},
	{"01", "Ψ⁺"},
	{"10", "Ψ⁻"},
	{"11", "Φ⁻"},
}

func classify(bits []qsim.Outcome) string {
	key := qsim.Bitstring(bits)
	for _, l := range labels {
		if l.bits == key {
			return l.label
		}
	}
	return "?"
}

// tally groups counts by Bell label.
func tally(counts qsim.Counts) map[string]int {
	out := make(map[string]int, len(labels))
	for _, l := range labels {
		out[l.label] = counts[l.bits]
	}
	return out
}

func runBell(w io.Writer, seed uint64, shots int) error {
	if shots < 1 {
		return fmt.Errorf("shots must be positive, got %d", shots)
	}

	m := qsim.NewMeasurer(qsim.WithSeed(seed))

	pair, err := bellPair()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "pair %v\n", pair)

	counts, err := m.Sample(pair, shots)
	if err != nil {
		return err
	}

	byLabel := tally(counts)
	for _, l := range labels {
		fmt.Fprintf(w, "%s %s %d\n", l.label, l.bits, byLabel[l.label])
	}

	// The two-register CNOT splits the pair back into independent qubits,
	// which loses the correlation measured above.
	control := qsim.NewRegister(1)
	target := qsim.NewRegister(1)

	if err := qsim.Hadamard(control); err != nil {
		return err
	}
	if err := qsim.CNOT(control, target); err != nil {
		return err
	}

	c, err := m.Measure(control)
	if err != nil {
		return err
	}
	t, err := m.Measure(target)
	if err != nil {
		return err
	}

	bits := []qsim.Outcome{c, t}
	fmt.Fprintf(w, "split control %v target %v measured %s %s\n", control, target, qsim.Bitstring(bits), classify(bits))

	return nil
}

func bellPair() (*qsim.Register, error) {
	q1 := qsim.NewRegister(1)
	q2 := qsim.NewRegister(1)

	if err := qsim.Hadamard(q1); err != nil {
		return nil, err
	}

	pair := qsim.Tensor(q1, q2)
	if err := pair.Apply(qsim.CNOTGate()); err != nil {
		return nil, err
	}

	return pair, nil
}

func newGatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the gate matrices",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, g := range append(qsim.Gates(), qsim.CNOTGate()) {
				fmt.Fprintf(w, "%s orthogonal=%v\n", g.Name(), g.Orthogonal())
				fmt.Fprintf(w, "%v\n\n", mat.Formatted(g.Matrix(), mat.Prefix(""), mat.Squeeze()))
			}
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qsim"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "bell",
		Short: "Prepare and measure Bell pairs",
		Long: `bell prepares two qubits, applies Hadamard and CNOT, and measures the pair.

Each shot is classified as one of the four Bell labels. The seed and shot
count can also be set through QSIM_SEED and QSIM_SHOTS.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBell(cmd.OutOrStdout(), v.GetUint64("seed"), v.GetInt("shots"))
		},
	}

	rootCmd.Flags().Uint64("seed", qsim.DefaultSeed, "Seed for the measurement source")
	rootCmd.Flags().Int("shots", 1000, "Number of measurements to take")

	v.SetEnvPrefix("QSIM")
	v.AutomaticEnv()
	_ = v.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("shots", rootCmd.Flags().Lookup("shots"))

	rootCmd.AddCommand(
		newGatesCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bell version %s\n", version)
		},
	}
}

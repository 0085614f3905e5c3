package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "rewardgen",
		Short: "Generate a transaction log for load testing ingestion",
		Long: `rewardgen writes identity,timestamp,amount lines in the format accepted by
POST /rewards/batch. Every identity gets --per-user transactions spread over
the selected months of --year.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Users, "users", opts.Users, "number of distinct identities")
	cmd.Flags().IntVar(&opts.PerUser, "per-user", opts.PerUser, "transactions per identity")
	cmd.Flags().IntVar(&opts.Year, "year", opts.Year, "calendar year of every transaction")
	cmd.Flags().IntSliceVar(&opts.Months, "months", opts.Months, "months (1-12) transactions are spread across")
	cmd.Flags().Float64Var(&opts.MaxAmount, "max-amount", opts.MaxAmount, "upper bound of purchase amounts")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", opts.Out, "output file (- for stdout)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "hide the progress bar")

	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

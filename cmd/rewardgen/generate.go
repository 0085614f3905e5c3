package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type options struct {
	Users     int
	PerUser   int
	Year      int
	Months    []int
	MaxAmount float64
	Out       string
	Seed      int64
	Quiet     bool
}

func defaultOptions() *options {
	return &options{
		Users:     2000,
		PerUser:   1000,
		Year:      2023,
		Months:    []int{1, 2, 3},
		MaxAmount: 550,
		Out:       "rewards.csv",
	}
}

func (o *options) validate() error {
	if o.Users <= 0 {
		return fmt.Errorf("--users must be > 0")
	}
	if o.PerUser <= 0 {
		return fmt.Errorf("--per-user must be > 0")
	}
	if o.Year < 1000 || o.Year > 9999 {
		return fmt.Errorf("--year must be a four digit year")
	}
	if len(o.Months) == 0 {
		return fmt.Errorf("--months must list at least one month")
	}
	for _, m := range o.Months {
		if m < 1 || m > 12 {
			return fmt.Errorf("--months: %d is not a month (1-12)", m)
		}
	}
	if o.MaxAmount <= 0 {
		return fmt.Errorf("--max-amount must be > 0")
	}
	return nil
}

func run(cmd *cobra.Command, opts *options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.Out != "-" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", opts.Out, err)
		}
		defer f.Close()
		out = f
	}

	total := opts.Users * opts.PerUser
	var bar *progressbar.ProgressBar
	if !opts.Quiet && opts.Out != "-" {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Generating transactions"),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
	}

	err := generate(out, opts, rand.New(rand.NewSource(seed)), func() {
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	})
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	slog.Info("Generated transaction log", "lines", total, "out", opts.Out, "seed", seed)
	return nil
}

// generate writes opts.Users*opts.PerUser lines to w. Output is fully
// determined by rng.
func generate(w io.Writer, opts *options, rng *rand.Rand, onLine func()) error {
	bw := bufio.NewWriter(w)

	for u := 0; u < opts.Users; u++ {
		identity, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return fmt.Errorf("failed to generate identity: %w", err)
		}

		for i := 0; i < opts.PerUser; i++ {
			month := opts.Months[rng.Intn(len(opts.Months))]
			ts := time.Date(opts.Year, time.Month(month), 1+rng.Intn(28),
				rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.UTC)
			amount := rng.Float64() * opts.MaxAmount

			if _, err := fmt.Fprintf(bw, "%s,%s,%.2f\n", identity, ts.Format(time.RFC3339), amount); err != nil {
				return fmt.Errorf("failed to write line: %w", err)
			}
			if onLine != nil {
				onLine()
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

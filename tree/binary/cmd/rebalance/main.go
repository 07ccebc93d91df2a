package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/treebuild/sweep"
	"go.lepak.sg/treebuild/tree/binary"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rebalance: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// rebuilder returns the rebuild strategy named by mode.
func rebuilder(mode string, rd *rand.Rand) (func(tr *binary.Tree[string]), error) {
	switch mode {
	case "balanced":
		return (*binary.Tree[string]).RebuildBalanced, nil
	case "random":
		return func(tr *binary.Tree[string]) {
			tr.RebuildRandom(rd)
		}, nil
	default:
		return nil, fmt.Errorf("not a valid mode: %q", mode)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seed int64
		num  int
		mode string
	)

	var cmdShow = &cobra.Command{
		Use:   "show [keys...]",
		Short: "Build a tree, print it, rebuild it and print it again",
		Long: `Show inserts the given keys in order into an empty tree.
Without keys, -n keys are generated and inserted in a shuffled order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rd := rand.New(rand.NewSource(seed))

			rebuild, err := rebuilder(mode, rd)
			if err != nil {
				return err
			}

			keys := args
			if len(keys) == 0 {
				keys = generateKeys(num, rd)
			}

			out := cmd.OutOrStdout()

			tr := binary.FromKeys(keys)
			printTree(out, "before", tr)

			rebuild(tr)

			printTree(out, "after "+mode, tr)
			fmt.Fprintln(out, "seed:", seed)
			return nil
		},
	}

	cmdShow.Flags().Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmdShow.Flags().IntVarP(&num, "num", "n", 10, "number of generated keys when none are given")
	cmdShow.Flags().StringVarP(&mode, "mode", "m", "balanced", "rebuild strategy (balanced/random)")

	var (
		configPath string
		cfg        = sweep.DefaultConfig()
		full       bool
	)

	var cmdSweep = &cobra.Command{
		Use:   "sweep",
		Short: "Measure both rebuild strategies over many seeded trees",
		Long: `Sweep builds trials trees for each size, rebuilds each one with both
strategies and prints a YAML report of the heights before and after.
Flags given on the command line override the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := sweep.LoadConfig(configPath)
				if err != nil {
					return err
				}
				overlay(cmd, &fileCfg, cfg)
				cfg = fileCfg
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			start := time.Now()
			results, err := sweep.Run(ctx, cfg)
			if err != nil {
				return err
			}
			log.Printf("measured %d trees in %v", len(results), time.Since(start))

			rep := sweep.Report{
				Config:  cfg,
				Summary: sweep.Summarize(results),
			}
			if full {
				rep.Results = results
			}

			return sweep.WriteReport(cmd.OutOrStdout(), rep)
		},
	}

	cmdSweep.Flags().StringVarP(&configPath, "config", "c", "", "YAML sweep config file")
	cmdSweep.Flags().IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "tree sizes to measure")
	cmdSweep.Flags().IntVarP(&cfg.Trials, "trials", "t", cfg.Trials, "trees per size")
	cmdSweep.Flags().Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "seed for the whole sweep")
	cmdSweep.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "trees measured at once")
	cmdSweep.Flags().StringVar(&cfg.Shape, "shape", cfg.Shape, "starting shape (random/sorted)")
	cmdSweep.Flags().BoolVar(&full, "full", false, "include every tree in the report, not just the summary")

	var rootCmd = &cobra.Command{
		Use:           "rebalance",
		Short:         "Rebuild binary search trees and measure their balance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cmdShow, cmdSweep)

	return rootCmd
}

// overlay copies into dst the fields of flags whose flags were set
// on the command line.
func overlay(cmd *cobra.Command, dst *sweep.Config, flags sweep.Config) {
	changed := cmd.Flags().Changed
	if changed("sizes") {
		dst.Sizes = flags.Sizes
	}
	if changed("trials") {
		dst.Trials = flags.Trials
	}
	if changed("seed") {
		dst.Seed = flags.Seed
	}
	if changed("workers") {
		dst.Workers = flags.Workers
	}
	if changed("shape") {
		dst.Shape = flags.Shape
	}
}

// generateKeys returns num zero-padded keys in a shuffled order.
// Padding keeps string order the same as numeric order.
func generateKeys(num int, rd *rand.Rand) []string {
	width := len(fmt.Sprint(num))

	keys := make([]string, num)
	for i, k := range rd.Perm(num) {
		keys[i] = fmt.Sprintf("%0*d", width, k)
	}
	return keys
}

func printTree(w io.Writer, label string, tr *binary.Tree[string]) {
	fmt.Fprintf(w, "%s:\n", label)
	fmt.Fprint(w, tr.String())

	fmt.Fprintln(w, "size:", tr.Size())
	fmt.Fprintln(w, "height:", tr.Height(), "ideal:", tr.OptimalHeight())
	fmt.Fprintf(w, "balance: %.3f\n", tr.Balance())
	fmt.Fprintln(w)
}

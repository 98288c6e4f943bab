// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command robdd runs a Lua formula script, compiles the recorded instruction
// stream into a shared ROBDD, and prints the number of satisfying assignments
// of every named output. An optional second argument writes the resulting
// graph in GraphViz DOT format.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dalzilio/pardd"
	"github.com/dalzilio/pardd/script"
)

type options struct {
	threads int
	nodes   int
	cache   int
	verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "robdd <input-script> [<output-file>]",
		Short: "Compile Boolean formulas into a shared ROBDD",
		Long: `robdd executes a Lua script describing Boolean formulas, compiles the
recorded formulas into a canonical shared ROBDD, and prints the number of
satisfying assignments of every root assigned to the script's output table.

Example:
  robdd majority.lua
  robdd -j 8 majority.lua majority.dot`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(opts, args)
		},
	}
	cmd.Flags().IntVarP(&opts.threads, "threads", "j", 0, "number of workers inside apply (0 = all cores)")
	cmd.Flags().IntVar(&opts.nodes, "nodes", 0, "capacity of the node pool (0 = default)")
	cmd.Flags().IntVar(&opts.cache, "cache", 0, "capacity of the computed cache (0 = default)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runScript(opts *options, args []string) error {
	if opts.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	res, err := script.Run(args[0])
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"instructions": res.Program.Len(),
		"inputs":       res.Program.NumInputs(),
		"roots":        len(res.Program.Roots()),
	}).Debug("script recorded")

	start := time.Now()
	b, roots, err := pardd.Compile(res.Program, pardd.Threads(opts.threads),
		pardd.PoolSize(opts.nodes), pardd.CacheSize(opts.cache))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, r := range roots {
		fmt.Printf("%s: %s solutions\n", r.Name, b.Satcount(r.Node))
	}
	fmt.Printf("compiled %d instructions over %d variables in %v\n",
		res.Program.Len(), b.Varnum(), elapsed)
	logrus.Debug("\n" + b.Stats())

	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		if err := b.WriteDot(f, res.Title, roots); err != nil {
			return err
		}
		logrus.WithField("file", args[1]).Debug("graph written")
	}
	return nil
}

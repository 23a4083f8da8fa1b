package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cli "go.dedis.ch/sssrecover/cmd"
)

func main() {
	opts := cli.Options{}

	command := &cobra.Command{
		Use:   "sssrecover [path]",
		Short: "Recover a Shamir secret from its shares",
		Long: "Recover the constant term of the polynomial through the shares " +
			"of a test case file, using exact Lagrange interpolation",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return cli.Solve(cmd.OutOrStdout(), args[0], opts)
		},
	}
	addGlobalFlags(command, &opts)
	addSolveCmd(command, &opts)
	addBatchCmd(command, &opts)
	addInteractiveCmd(command, &opts)
	addServeCmd(command, &opts)

	err := command.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// addGlobalFlags registers the flags understood by every command
func addGlobalFlags(command *cobra.Command, opts *cli.Options) {
	flags := command.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.Method, "method", "m", "", "interpolation method: lagrange or vandermonde")
	flags.StringVar(&opts.Modulus, "modulus", "", "prime modulus, interpolate in Z_p")
	flags.BoolVar(&opts.Round, "round", false, "round a non-integral result instead of failing")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug information to stderr")
	flags.BoolVar(&opts.JSON, "json", false, "print the result with its metadata as JSON")
}

// addSolveCmd solves a single test case
func addSolveCmd(command *cobra.Command, opts *cli.Options) {
	solveCmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Recover the secret of a test case",
		Long:  "Recover the secret of a JSON or YAML test case and print it to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Solve(cmd.OutOrStdout(), args[0], *opts)
		},
	}

	command.AddCommand(solveCmd)
}

// addBatchCmd solves many test cases in parallel
func addBatchCmd(command *cobra.Command, opts *cli.Options) {
	var jobs int

	batchCmd := &cobra.Command{
		Use:   "batch <path>...",
		Short: "Recover the secrets of several test cases",
		Long:  "Recover the secrets of several test cases, printing one line per file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Batch(cmd.OutOrStdout(), args, jobs, *opts)
		},
	}

	batchCmd.Flags().IntVarP(&jobs, "jobs", "j", cli.DefaultJobs, "number of test cases solved at once")

	command.AddCommand(batchCmd)
}

// addInteractiveCmd starts the prompt
func addInteractiveCmd(command *cobra.Command, opts *cli.Options) {
	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "Recover secrets from an interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.StartCMD(cmd.OutOrStdout(), *opts)
		},
	}

	command.AddCommand(interactiveCmd)
}

// addServeCmd starts the HTTP server
func addServeCmd(command *cobra.Command, opts *cli.Options) {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve secret recovery over HTTP",
		Long:  "Serve POST /solve with a JSON test case as body, and GET /healthz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Serve(addr, *opts)
		},
	}

	serveCmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")

	command.AddCommand(serveCmd)
}

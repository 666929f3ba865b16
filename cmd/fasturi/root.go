package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputYAML = "yaml"

	outputEnv = "FASTURI_OUTPUT"
)

// cli holds the state shared by all the subcommands.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	output  string
	verbose bool
	quiet   bool

	log zerolog.Logger
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{
		stdout: stdout,
		stderr: stderr,
		log:    newLogger(stderr, zerolog.InfoLevel),
	}
	cmd := c.newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		c.log.Error().Err(err).Msg("fasturi failed")
		return 1
	}
	return 0
}

func (c *cli) newRootCommand() *cobra.Command {
	defaultOutput := os.Getenv(outputEnv)
	if defaultOutput == "" {
		defaultOutput = outputText
	}

	cmd := &cobra.Command{
		Use:           "fasturi",
		Short:         "Parse, build and split URIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.output {
			case outputText, outputYAML:
			default:
				return fmt.Errorf("unsupported output format %q. Expecting %q or %q", c.output, outputText, outputYAML)
			}
			level := zerolog.InfoLevel
			if c.verbose {
				level = zerolog.DebugLevel
			}
			if c.quiet {
				level = zerolog.ErrorLevel
			}
			c.log = newLogger(c.stderr, level)
			return nil
		},
	}
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&c.output, "output", "o", defaultOutput, "output format: text or yaml")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug messages")
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "log errors only")

	cmd.AddCommand(
		c.newParseCommand(),
		c.newBuildCommand(),
		c.newParamsCommand(),
	)
	return cmd
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

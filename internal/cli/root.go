package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/read-lnk/read-lnk/internal/branding"
	"github.com/read-lnk/read-lnk/internal/config"
	"github.com/read-lnk/read-lnk/internal/logging"
	"github.com/read-lnk/read-lnk/internal/report"
	"github.com/read-lnk/read-lnk/internal/shortcut"
	"github.com/spf13/cobra"
)

// env carries the streams and collaborators a command run writes to.
type env struct {
	stdout     io.Writer
	stderr     io.Writer
	decoder    shortcut.Decoder
	configPath string
	build      buildInfo
}

func newRootCmd(e env) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:           branding.CLIName() + " path_to_shortcut.lnk",
		Short:         branding.Description(),
		Long:          longHelp(e.configPath),
		Version:       e.build.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &exitError{code: exitUsage, usage: true}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadFrom(e.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(settings.Output)
			if err != nil {
				return &exitError{code: exitUsage, err: err}
			}

			log := logging.New(e.stderr, settings.Debug)
			return readLnk(e.stdout, e.decoder, args[0], report.Options{Format: format, All: all}, log)
		},
	}

	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.SetVersionTemplate(versionTemplate(e.build))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: exitUsage, err: err, usage: true}
	})

	f := cmd.Flags()
	f.StringP(config.KeyOutput, "o", "text", "Output format: text, json, or yaml")
	f.BoolVar(&all, "all", false, "Also print description, relative path, icon location, and target size")
	f.Bool(config.KeyDebug, false, "Log decoding steps to stderr")

	return cmd
}

func longHelp(configPath string) string {
	return fmt.Sprintf(`%s decodes a Windows shortcut (.lnk) file and prints where it points:
the target path, the working directory, and the launch arguments.

Defaults for --output and --debug are read from %s
and from the %s and %s environment variables.`,
		branding.DisplayName(), configPath,
		branding.EnvVar(config.KeyOutput), branding.EnvVar(config.KeyDebug))
}

// Execute runs the command against the process arguments and returns the
// exit status. Build info is injected via ldflags.
func Execute(version, commit, date string) int {
	e := env{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		decoder:    shortcut.LnkDecoder{},
		configPath: config.FilePath(),
		build:      buildInfo{version: version, commit: commit, date: date},
	}
	return run(e, os.Args[1:])
}

func run(e env, args []string) int {
	if args == nil {
		// Cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	return exitCode(e, cmd.Execute())
}

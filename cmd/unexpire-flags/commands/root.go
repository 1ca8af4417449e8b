// Package commands implements the CLI for the unexpire-flags generator.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/unexpire/internal/app"
	"go.trai.ch/unexpire/internal/build"
	"go.trai.ch/unexpire/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for unexpire-flags.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	program string
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "unexpire-flags <version-file> <impl-output> <header-output> <fragment-output>",
		Short: "Generate the features and flag entries that temporarily unexpire recent flags",
		Long: `Reads the MAJOR key from the version file and writes three generated files for the
most recent milestones: the feature definitions, their header, and a flag table fragment.
Files whose contents are already current are left untouched.`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		program: rootCmd.Name(),
	}

	rootCmd.Flags().String("program", "", "Program name written into the generated-by banner (defaults to the invoked path)")
	rootCmd.Flags().Int("milestones", 0, "Number of recent milestones to generate (overrides the config file)")
	rootCmd.Flags().String("config", "", "Path to a YAML generator configuration file")
	rootCmd.Flags().Bool("check", false, "Report generated files that are out of date without writing them")
	rootCmd.RunE = c.runGenerate

	return c
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string) error {
	program, _ := cmd.Flags().GetString("program")
	if program == "" {
		program = c.program
	}
	configPath, _ := cmd.Flags().GetString("config")
	check, _ := cmd.Flags().GetBool("check")

	milestones, _ := cmd.Flags().GetInt("milestones")
	if cmd.Flags().Changed("milestones") && milestones < 1 {
		return zerr.With(domain.ErrInvalidMilestoneCount, "milestones", milestones)
	}

	return c.app.Generate(cmd.Context(), app.GenerateOptions{
		VersionFile: args[0],
		Outputs: domain.OutputPaths{
			FeaturesImpl:   args[1],
			FeaturesHeader: args[2],
			FlagsFragment:  args[3],
		},
		ConfigPath:     configPath,
		Program:        program,
		MilestoneCount: milestones,
		Check:          check,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetProgram sets the default program name for the generated-by banner.
// It is normally the path the binary was invoked as.
func (c *CLI) SetProgram(name string) {
	if name != "" {
		c.program = name
	}
}

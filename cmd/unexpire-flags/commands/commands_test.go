package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unexpire/cmd/unexpire-flags/commands"
	"go.trai.ch/unexpire/internal/app"
	"go.trai.ch/unexpire/internal/build"
	"go.trai.ch/unexpire/internal/core/domain"
)

type mockApp struct {
	generateFunc func(ctx context.Context, opts app.GenerateOptions) error
}

func (m *mockApp) Generate(ctx context.Context, opts app.GenerateOptions) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, opts)
	}
	return nil
}

var positional = []string{"chrome/VERSION", "gen/flags.cc", "gen/flags.h", "gen/flags.inc"}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires arguments and defaults", func(t *testing.T) {
		var captured app.GenerateOptions
		called := false

		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetProgram("tools/flags/generate_unexpire_flags")
		cli.SetArgs(positional)

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, app.GenerateOptions{
			VersionFile: "chrome/VERSION",
			Outputs: domain.OutputPaths{
				FeaturesImpl:   "gen/flags.cc",
				FeaturesHeader: "gen/flags.h",
				FlagsFragment:  "gen/flags.inc",
			},
			Program: "tools/flags/generate_unexpire_flags",
		}, captured)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.GenerateOptions

		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetProgram("ignored")
		cli.SetArgs(append([]string{
			"--program", "gen",
			"--milestones", "3",
			"--config", "unexpire.yaml",
			"--check",
		}, positional...))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "gen", captured.Program)
		assert.Equal(t, 3, captured.MilestoneCount)
		assert.Equal(t, "unexpire.yaml", captured.ConfigPath)
		assert.True(t, captured.Check)
	})

	t.Run("defaults program to command name", func(t *testing.T) {
		var captured app.GenerateOptions

		mock := &mockApp{
			generateFunc: func(_ context.Context, opts app.GenerateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetProgram("")
		cli.SetArgs(positional)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "unexpire-flags", captured.Program)
	})

	t.Run("returns error on generate failure", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(positional)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(positional[:3])
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 4 arg(s), received 3")
	})

	t.Run("rejects non-positive milestone count", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ app.GenerateOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs(append([]string{"--milestones", "0"}, positional...))
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		assert.ErrorContains(t, err, domain.ErrInvalidMilestoneCount.Error())
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"--version"})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"unexpire-flags version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String(),
	)
}

package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pixi-envsync/internal/app"
	"pixi-envsync/internal/core"
	"pixi-envsync/internal/types"
)

func newCheckCommand() *cobra.Command {
	opts := environmentOptions{}
	cmd := &cobra.Command{
		Use:   "check [flags] <pixi.toml|pyproject.toml|pixi.lock>...",
		Short: "Report environment files that differ, without modifying them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, opts, args)
		},
	}
	addEnvironmentFlags(cmd, &opts)
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts environmentOptions, inputs []string) error {
	ctx = log.Logger.WithContext(ctx)
	built := buildOptions(cmd, opts, types.ModeCheck)
	service := newAppService()
	result, err := service.Sync(ctx, app.SyncRequest{
		Inputs:  inputs,
		Options: built,
	})
	if err != nil {
		return err
	}
	for _, dir := range result.Results {
		if dir.Err != nil || dir.Action.Kind != types.ActionReport {
			continue
		}
		fmt.Printf("differences in %s:\n%s",
			filepath.Join(dir.Dir, built.EnvironmentFile),
			core.FormatDiff(dir.Action.Diff))
	}
	if err := firstError(result); err != nil {
		return err
	}
	if count := result.OutOfSync(); count > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d environment file(s) out of sync", count))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pixi-envsync/internal/app"
	"pixi-envsync/internal/types"
)

func newSyncCommand() *cobra.Command {
	opts := environmentOptions{}
	cmd := &cobra.Command{
		Use:   "sync [flags] <pixi.toml|pyproject.toml|pixi.lock>...",
		Short: "Update environment files that differ from the pixi workspace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), cmd, opts, args)
		},
	}
	addEnvironmentFlags(cmd, &opts)
	return cmd
}

func runSync(ctx context.Context, cmd *cobra.Command, opts environmentOptions, inputs []string) error {
	ctx = log.Logger.WithContext(ctx)
	service := newAppService()
	result, err := service.Sync(ctx, app.SyncRequest{
		Inputs:  inputs,
		Options: buildOptions(cmd, opts, types.ModeSync),
	})
	if err != nil {
		return err
	}
	for _, dir := range result.Results {
		if dir.Err == nil && dir.Action.Kind == types.ActionWrite {
			fmt.Printf("updated: %s\n", dir.Dir)
		}
	}
	return firstError(result)
}

func firstError(result app.SyncResult) error {
	for _, dir := range result.Results {
		if dir.Err != nil {
			return dir.Err
		}
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pixi-envsync/internal/app"
	"pixi-envsync/internal/types"
)

func newExportCommand() *cobra.Command {
	opts := environmentOptions{}
	cmd := &cobra.Command{
		Use:   "export [flags] <pixi.toml|pyproject.toml|pixi.lock>",
		Short: "Print the normalized environment descriptor for a pixi workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), cmd, opts, args)
		},
	}
	addEnvironmentFlags(cmd, &opts)
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts environmentOptions, inputs []string) error {
	ctx = log.Logger.WithContext(ctx)
	service := newAppService()
	data, err := service.Export(ctx, app.SyncRequest{
		Inputs:  inputs,
		Options: buildOptions(cmd, opts, types.ModeCheck),
	})
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

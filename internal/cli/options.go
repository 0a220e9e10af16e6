package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pixi-envsync/internal/app"
	"pixi-envsync/internal/types"
)

func newAppService() app.Service {
	return app.NewService()
}

// environmentOptions holds the flag values shared by the sync, check,
// and export commands.
type environmentOptions struct {
	EnvironmentFile string
	Environment     string
	Name            string
	Prefix          string
	Explicit        bool
	IncludePip      bool
	IncludeChannels bool
	IncludeBuild    bool
}

func addEnvironmentFlags(cmd *cobra.Command, opts *environmentOptions) {
	cmd.Flags().StringVar(&opts.EnvironmentFile, "environment-file", "environment.yml", "Name of the environment file")
	cmd.Flags().StringVar(&opts.Environment, "environment", "default", "Name of the pixi environment")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Environment name override")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Environment prefix path")
	cmd.Flags().BoolVar(&opts.Explicit, "explicit", false, "Pin exact versions, discarding ranges")
	cmd.Flags().BoolVar(&opts.IncludePip, "include-pip-packages", false, "Include pip packages in the environment")
	cmd.Flags().BoolVar(&opts.IncludeChannels, "include-conda-channels", true, "Include conda channels in the environment")
	cmd.Flags().BoolVar(&opts.IncludeBuild, "include-build", false, "Include build strings in package specs")
	_ = viper.BindPFlag("environment_file", cmd.Flags().Lookup("environment-file"))
	_ = viper.BindPFlag("environment", cmd.Flags().Lookup("environment"))
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))
	_ = viper.BindPFlag("prefix", cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("explicit", cmd.Flags().Lookup("explicit"))
	_ = viper.BindPFlag("include_pip_packages", cmd.Flags().Lookup("include-pip-packages"))
	_ = viper.BindPFlag("include_conda_channels", cmd.Flags().Lookup("include-conda-channels"))
	_ = viper.BindPFlag("include_build", cmd.Flags().Lookup("include-build"))
}

func buildOptions(cmd *cobra.Command, opts environmentOptions, mode types.Mode) types.Options {
	built := types.Options{
		EnvironmentFile: resolveString(cmd, opts.EnvironmentFile, "environment_file", "environment-file"),
		Environment:     resolveString(cmd, opts.Environment, "environment", "environment"),
		Name:            resolveString(cmd, opts.Name, "name", "name"),
		Prefix:          resolveString(cmd, opts.Prefix, "prefix", "prefix"),
		Explicit:        resolveBool(cmd, opts.Explicit, "explicit", "explicit"),
		IncludePip:      resolveBool(cmd, opts.IncludePip, "include_pip_packages", "include-pip-packages"),
		IncludeChannels: resolveBool(cmd, opts.IncludeChannels, "include_conda_channels", "include-conda-channels"),
		IncludeBuild:    resolveBool(cmd, opts.IncludeBuild, "include_build", "include-build"),
		Mode:            mode,
	}
	if built.EnvironmentFile == "" {
		built.EnvironmentFile = "environment.yml"
	}
	return built
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

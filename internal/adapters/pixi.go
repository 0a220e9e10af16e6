package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pixi-envsync/internal/ports"
	"pixi-envsync/internal/shared"
	"pixi-envsync/internal/types"
)

// PixiAdapter shells out to the pixi binary. Binary defaults to "pixi"
// and is overridable for tests and non-standard installs.
type PixiAdapter struct {
	Binary string
}

func NewPixiAdapter() PixiAdapter {
	return PixiAdapter{Binary: "pixi"}
}

func (a PixiAdapter) Version(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(a.binary()); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("pixi command not found, install it first (https://pixi.sh)").
			WithCause(err)
	}
	output, err := exec.CommandContext(ctx, a.binary(), "--version").CombinedOutput()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("pixi command is not working properly").
			WithCause(shared.CommandError(output, err))
	}
	version := strings.TrimSpace(string(output))
	log.Ctx(ctx).Debug().Str("version", version).Msg("found pixi")
	return version, nil
}

// ExportCondaEnvironment writes the export to a temporary file rather
// than reading stdout; pixi's export command does not reliably stream
// the document to stdout.
func (a PixiAdapter) ExportCondaEnvironment(ctx context.Context, manifestPath string, environment string, name string) ([]byte, error) {
	if _, err := os.Stat(manifestPath); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("manifest file not found: %s", manifestPath)).
			WithCause(err)
	}

	tmp, err := os.CreateTemp("", "pixi-envsync-*.yml")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temporary export file").
			WithCause(err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	args := []string{
		"workspace", "export", "conda-environment",
		"--manifest-path", manifestPath,
		tmpPath,
	}
	if environment != "" {
		args = append(args, "--environment", environment)
	}
	if name != "" {
		args = append(args, "--name", name)
	}
	log.Ctx(ctx).Debug().Strs("args", args).Msg("running pixi export")

	output, err := exec.CommandContext(ctx, a.binary(), args...).CombinedOutput()
	if err != nil {
		return nil, exportError(environment, manifestPath, output, err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pixi export did not produce an output file").
			WithCause(err)
	}
	return data, nil
}

func (a PixiAdapter) ListPackages(ctx context.Context, manifestPath string, environment string, explicit bool) ([]types.PackageInfo, error) {
	args := []string{"list", "--json", "--manifest-path", manifestPath}
	if environment != "" {
		args = append(args, "--environment", environment)
	}
	if explicit {
		args = append(args, "--explicit")
	}
	log.Ctx(ctx).Debug().Strs("args", args).Msg("running pixi list")

	cmd := exec.CommandContext(ctx, a.binary(), args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	stdout, err := cmd.Output()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pixi list command failed").
			WithCause(shared.CommandError([]byte(stderr.String()), err))
	}

	var packages []types.PackageInfo
	if err := json.Unmarshal(stdout, &packages); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pixi list returned invalid JSON").
			WithCause(err)
	}
	return packages, nil
}

func (a PixiAdapter) binary() string {
	if a.Binary != "" {
		return a.Binary
	}
	return "pixi"
}

// exportError maps pixi export failures onto more specific messages
// based on the command's stderr, matching the hints pixi itself gives.
func exportError(environment string, manifestPath string, output []byte, err error) error {
	stderr := strings.ToLower(string(output))
	switch {
	case environment != "" && strings.Contains(stderr, "environment"):
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("environment %q not found in pixi manifest, list available ones with 'pixi info'", environment)).
			WithCause(shared.CommandError(output, err))
	case strings.Contains(stderr, "manifest"):
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid or corrupted pixi manifest at %s", manifestPath)).
			WithCause(shared.CommandError(output, err))
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pixi workspace export command failed").
			WithCause(shared.CommandError(output, err))
	}
}

var _ ports.ExporterPort = PixiAdapter{}

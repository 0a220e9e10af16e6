package app

import (
	"pixi-envsync/internal/adapters"
	"pixi-envsync/internal/ports"
)

type Service struct {
	Exporter  ports.ExporterPort
	EnvFile   ports.EnvironmentFilePort
	Workspace ports.WorkspacePort
}

func NewService() Service {
	return Service{
		Exporter:  adapters.NewPixiAdapter(),
		EnvFile:   adapters.NewEnvironmentFileAdapter(),
		Workspace: adapters.NewWorkspaceAdapter(),
	}
}

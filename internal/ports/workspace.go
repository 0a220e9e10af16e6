package ports

// WorkspacePort locates pixi project directories and manifests from
// the input files given on the command line.
type WorkspacePort interface {
	// ProjectDirs maps accepted input files (manifest, project file,
	// or lock file) to their containing directories, deduplicated in
	// first-occurrence order.
	ProjectDirs(inputs []string) ([]string, error)

	// ManifestPath returns the pixi manifest for a project directory,
	// preferring pixi.toml over pyproject.toml.
	ManifestPath(dir string) (string, error)
}

package ports

// EnvironmentFilePort reads and replaces the on-disk environment
// descriptor. Load reports absence as ok=false rather than an error;
// an absent file is compared as an empty descriptor.
type EnvironmentFilePort interface {
	Load(dir string, filename string) (data []byte, ok bool, err error)
	Save(dir string, filename string, data []byte) error
}

package filestorage

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile writes data under name and returns the full path
	SaveFile(name string, data []byte) (string, error)

	// DeleteFile removes a stored file; a missing file is not an error
	DeleteFile(name string) error

	// GetFullPath returns the filesystem path for a stored name
	GetFullPath(name string) string
}

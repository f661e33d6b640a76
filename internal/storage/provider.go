package storage

// Provider abstracts the vault write primitive so the bookmark service can be
// tested against a temporary directory.
type Provider interface {
	// Write creates the parent directory if needed and writes the note,
	// silently overwriting any existing file at the same path.
	Write(path string, content []byte) error
}

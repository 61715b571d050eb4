package ingest

import "context"

// External collaborators that feed files into the pipeline. Their internals
// live outside this module; the pipeline only requires a readable local path
// matching the statement naming convention.

// FileNotifier supplies paths of new or changed statement files, typically
// from a directory watcher. Implementations own their own debounce and retry
// policy.
type FileNotifier interface {
	// Watch delivers file paths on the returned channel until ctx is done.
	Watch(ctx context.Context, dir string) (<-chan string, error)
}

// RemoteSource downloads statement files by name into a local directory,
// typically from a credential-backed document store.
type RemoteSource interface {
	// Fetch retrieves the named file into destDir and returns its local path.
	Fetch(ctx context.Context, name, destDir string) (string, error)
}

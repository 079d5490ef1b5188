package domain

// BundleReader loads a bundle's structural facts from a directory.
type BundleReader interface {
	Read(path string) (*BundleFacts, error)
}

// ConfigLoader loads the optional .skillkraft.yaml for a bundle.
type ConfigLoader interface {
	Load(bundlePath string) (ProjectConfig, error)
}

// ScoreHistory records evaluation runs for a bundle.
type ScoreHistory interface {
	Save(bundlePath string, entry ScoreEntry) error
	Load(bundlePath string) ([]ScoreEntry, error)
}

// ReportStore persists reports as opaque JSON for later comparison.
type ReportStore interface {
	Save(path string, report *Report) error
	Load(path string) (*Report, error)
}

// GitInfo resolves version-control metadata for a bundle.
type GitInfo interface {
	CommitHash(path string) (string, error)
}

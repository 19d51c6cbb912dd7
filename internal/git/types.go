package git

import "time"

// Commit represents a git commit with its metadata.
type Commit struct {
	// Hash is the full commit hash.
	Hash string

	// ShortHash is the abbreviated commit hash.
	ShortHash string

	// Author is the commit author name.
	Author string

	// Date is the commit timestamp.
	Date time.Time

	// Subject is the first line of the commit message.
	Subject string
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	// FilesChanged is the total number of files changed.
	FilesChanged int

	// Additions is the total number of lines added.
	Additions int

	// Deletions is the total number of lines deleted.
	Deletions int
}

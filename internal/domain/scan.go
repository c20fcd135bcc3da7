package domain

import "time"

// FolderScan reports the outcome of scanning one folder
type FolderScan struct {
	Folder string
	Images int   // Matching images found
	Err    error // Non-nil when the folder could not be listed and was skipped
}

// Skipped reports whether the folder was left out of the index because of an error
func (s FolderScan) Skipped() bool {
	return s.Err != nil
}

// ScanSummary holds totals from a full index build
type ScanSummary struct {
	Folders  int // Folders that contributed images
	Images   int
	Skipped  int // Folders that could not be listed
	Duration time.Duration
}

// Counters tracks what happened during a review session
type Counters struct {
	Deleted int
	Skipped int
	Missing int
}

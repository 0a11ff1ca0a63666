package model

// FileEntry is one file seen while walking a member's tree
type FileEntry struct {
	Path string // Remote path as displayed by the API
	Name string // File name including extension
	Size uint64 // Size in bytes
}

package model

// Path represents a file system path.
type Path string

// Source identifies a single analyzable compilation unit on disk.
type Source struct {
	Origin Path
	Hash   string // SHA-256 of the file contents
}

package model

// FilePath represents a file system path.
type FilePath string

// File represents a source code file.
type File struct {
	FullPath  FilePath
	ShortPath FilePath // slash separated, relative to the project root
	Hash      string
}

// Source is a Go file discovered by the scanner together with the import
// path of the package that declares it.
type Source struct {
	Origin  *File
	Package string
}

// ScannedFile holds the units of code declared by one source file.
type ScannedFile struct {
	Source Source
	Units  []UnitSpec
}

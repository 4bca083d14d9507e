// Package mapfile loads haystacks from files.
//
// On unix platforms regular files are memory-mapped read-only, so scanning a
// large file does not copy it onto the heap. Elsewhere, and for non-regular
// files such as pipes, the contents are read into memory.
package mapfile

import (
	"io"
	"os"
	"unsafe"
)

// File is a loaded haystack. The string returned by String aliases the
// mapping and must not be used after Close.
type File struct {
	name   string
	data   []byte
	mapped bool
}

// Open loads the file at path, mapping it when possible.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Mode().IsRegular() && info.Size() > 0 {
		data, err := mmap(f, info.Size())
		if err == nil {
			return &File{name: path, data: data, mapped: true}, nil
		}
	}
	return Read(path, f)
}

// Read loads r into memory under name.
func Read(name string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &File{name: name, data: data}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

// Len returns the size of the haystack in bytes.
func (f *File) Len() int { return len(f.data) }

// Mapped reports whether the contents are memory-mapped.
func (f *File) Mapped() bool { return f.mapped }

// String returns the contents without copying. Every call returns a string
// with the same data pointer, so searchers built from separate calls share
// one haystack.
func (f *File) String() string {
	if len(f.data) == 0 {
		return ""
	}
	return unsafe.String(&f.data[0], len(f.data))
}

// Close releases the mapping. It is safe to call more than once.
func (f *File) Close() error {
	data := f.data
	f.data = nil
	if !f.mapped || data == nil {
		return nil
	}
	f.mapped = false
	return munmap(data)
}

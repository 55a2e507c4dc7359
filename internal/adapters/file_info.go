package adapters

import (
	"github.com/spf13/afero"

	"fxpath/internal/ports"
)

type FileInfoAdapter struct {
	Fs afero.Fs
}

func NewFileInfoAdapter(fs afero.Fs) FileInfoAdapter {
	return FileInfoAdapter{Fs: fs}
}

func (a FileInfoAdapter) IsRegularFile(path string) bool {
	info, err := a.Fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

var _ ports.FileInfoPort = FileInfoAdapter{}

package functions

import (
	"os"

	"github.com/funcbase/cli/internal/host"
	"github.com/funcbase/cli/internal/secrets"
)

type Deps struct {
	Getwd         func() (string, error)
	LoadFunctions func(root string) ([]host.Function, error)
	LoadSettings  func(root string) (*secrets.LocalSettings, error)
	MkdirAll      func(path string, perm os.FileMode) error
	WriteFile     func(name string, data []byte, perm os.FileMode) error
	Stat          func(name string) (os.FileInfo, error)
}

func DefaultDeps() Deps {
	return Deps{
		Getwd:         os.Getwd,
		LoadFunctions: host.LoadFunctions,
		LoadSettings:  secrets.Load,
		MkdirAll:      os.MkdirAll,
		WriteFile:     os.WriteFile,
		Stat:          os.Stat,
	}
}

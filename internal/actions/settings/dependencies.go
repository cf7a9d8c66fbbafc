package settings

import (
	"os"

	"github.com/funcbase/cli/internal/secrets"
)

type Deps struct {
	Getwd        func() (string, error)
	LoadSettings func(root string) (*secrets.LocalSettings, error)
	SetSecret    func(name, value string) error
	DeleteSecret func(name string) error
}

func DefaultDeps() Deps {
	return Deps{
		Getwd:        os.Getwd,
		LoadSettings: secrets.Load,
		SetSecret:    secrets.SetSecret,
		DeleteSecret: secrets.DeleteSecret,
	}
}

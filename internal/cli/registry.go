// Package cli assembles the registration table: every dispatchable
// action under its (context, subContext, name) triple.
package cli

import (
	"github.com/funcbase/cli/internal/actions/functions"
	"github.com/funcbase/cli/internal/actions/hosting"
	settingsact "github.com/funcbase/cli/internal/actions/settings"
	"github.com/funcbase/cli/internal/binding"
	"github.com/funcbase/cli/internal/dispatchers"
	"github.com/funcbase/cli/internal/domain"
)

// BuildRegistry registers the full command surface. A duplicate triple
// is a programming error and surfaces here at startup.
func BuildRegistry(app *domain.Application) (*dispatchers.Registry, error) {
	reg := dispatchers.NewRegistry()

	table := []dispatchers.ActionDescriptor{
		// start works bare and under the host context; both entries
		// share the action type.
		{
			Context: dispatchers.ContextNone, Name: "start",
			Help: "start the local functions host",
			New:  func() binding.Action { return hosting.NewStart(app) },
		},
		{
			Context: dispatchers.ContextHost, Name: "start",
			Help: "start the local functions host",
			New:  func() binding.Action { return hosting.NewStart(app) },
		},
		{
			Context: dispatchers.ContextHost, Name: "logs",
			Help: "show recorded function invocations",
			New:  func() binding.Action { return hosting.NewLogs(app) },
		},
		{
			Context: dispatchers.ContextFunction, Name: "list",
			Help: "list functions under the current directory",
			New:  func() binding.Action { return functions.NewList(app) },
		},
		{
			Context: dispatchers.ContextFunction, Name: "new",
			Help: "scaffold a new function",
			New:  func() binding.Action { return functions.NewNew(app) },
		},
		{
			Context: dispatchers.ContextSettings, Name: "list",
			Help: "list settings (protected values masked)",
			New:  func() binding.Action { return settingsact.NewList(app) },
		},
		{
			Context: dispatchers.ContextSettings, Name: "add",
			Help: "add or update a plain setting",
			New:  func() binding.Action { return settingsact.NewAdd(app) },
		},
		{
			Context: dispatchers.ContextSettings, Name: "delete",
			Help: "delete a setting",
			New:  func() binding.Action { return settingsact.NewDelete(app) },
		},
		{
			Context: dispatchers.ContextSettings, SubContext: dispatchers.SubContextKeys, Name: "set",
			Help: "store a protected value in the OS keyring",
			New:  func() binding.Action { return settingsact.NewKeysSet(app) },
		},
		{
			Context: dispatchers.ContextSettings, SubContext: dispatchers.SubContextKeys, Name: "delete",
			Help: "remove a protected value from the OS keyring",
			New:  func() binding.Action { return settingsact.NewKeysDelete(app) },
		},
		{
			Context: dispatchers.ContextSettings, SubContext: dispatchers.SubContextKeys, Name: "list",
			Help: "list protected value names",
			New:  func() binding.Action { return settingsact.NewKeysList(app) },
		},
	}

	for _, d := range table {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

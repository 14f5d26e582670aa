// Package di wires geprotocol services together with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to modules and handlers.
type Injector = do.Injector

// Module registers dependencies on an injector.
type Module func(Injector) error

// Runtime holds the base modules applied to every invocation.
type Runtime struct {
	modules []Module
}

// New creates a runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke builds a fresh injector, applies the base modules followed by
// extraModules, runs handler and shuts the injector down. Nil modules are
// skipped.
func (r *Runtime) Invoke(handler func(Injector) error, extraModules ...Module) error {
	injector := do.New()

	defer func() { _ = injector.Shutdown() }()

	modules := append(append([]Module{}, r.modules...), extraModules...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler into a cobra RunE function. The injector
// passed to handler also carries the command-scoped dependencies.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, args []string, injector Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, args, injector)
		}, CommandModule(cmd))
	}
}

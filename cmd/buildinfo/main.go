// Package main is the entry point for the buildinfo tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/cmd/buildinfo/commands"
	"go.trai.ch/buildinfo/internal/adapters/telemetry"
	"go.trai.ch/buildinfo/internal/app"
	_ "go.trai.ch/buildinfo/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

type jsonSwitch interface {
	SetJSON(enable bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	shutdown := func(context.Context) error { return nil }

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)
	cli.OnGlobals(func(g commands.Globals) {
		if s, ok := components.Logger.(jsonSwitch); ok {
			s.SetJSON(g.JSON)
		}
		shutdown = telemetry.Setup(components.Logger, g.Verbose)
	})

	err = cli.Execute(ctx)
	_ = shutdown(context.WithoutCancel(ctx))
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

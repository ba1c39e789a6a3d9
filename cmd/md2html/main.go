package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("github.com/alnah/go-md2html")
}

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose") {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], env)
	stop()
	os.Exit(code)
}

// run dispatches args to a command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var (
		configName string
		err        error
	)
	switch cmd, rest := args[0], args[1:]; cmd {
	case "build":
		configName, err = runBuild(ctx, rest, env)
	case "convert":
		configName, err = runConvert(ctx, rest, env)
	case "config":
		configName, err = runConfig(rest, env)
	case "version", "--version":
		runVersion(env)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
		if err != nil {
			return ExitUsage
		}
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, withHint(err, configName))
	return exitCodeFor(err)
}

// runVersion prints the module path and version.
func runVersion(env *Environment) {
	fmt.Fprintln(env.Stdout, version.Module(), version.Current())
}

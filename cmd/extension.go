package cmd

import (
	"errors"
	"os"
	"os/exec"

	"github.com/google/subcommands"
)

// Environment variables passed to extensions, so that they act on the same
// wallet with the same settings.
const (
	EnvWalletFile = "WALLET_FILE"
	EnvCurrency   = "WALLET_CURRENCY"
	EnvLogLevel   = "WALLET_LOG_LEVEL"
	EnvRedisURL   = "WALLET_REDIS_URL"
)

// IsCommand reports whether name is a command registered in c.
func IsCommand(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external wlt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "wlt-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	// the resolved configuration overrides the inherited one.
	cmd.Env = append(os.Environ(),
		EnvWalletFile+"="+config.File,
		EnvCurrency+"="+config.Currency,
		EnvLogLevel+"="+config.LogLevel,
		EnvRedisURL+"="+config.RedisURL,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		logger.Error().Err(err).Str("extension", name).Msg("cannot execute extension")
		return true, 1
	}
	return true, 0
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/RubachokBoss/learnbook/internal/apiclient"
	"github.com/RubachokBoss/learnbook/internal/legacy"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the clients built from flags once the command line is parsed.
type cli struct {
	v      *viper.Viper
	client *apiclient.Client
	shim   *legacy.Shim
	legacy bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "learnctl",
		Short: "Command line client for the learnbook API",
		Long: `learnctl reads and writes learnbook resources over HTTP.

Every flag on the root command can also be set through the environment
with the LEARNCTL_ prefix, e.g. LEARNCTL_BASE_URL and LEARNCTL_TOKEN.

With --legacy, reads go through the compatibility layer: failures are
logged to stderr and the documented fallback value is printed instead.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.String("base-url", "http://localhost:8080", "API base URL")
	flags.String("token", "", "bearer token sent in the Authorization header")
	flags.Duration("timeout", 30*time.Second, "per-request timeout")
	flags.Bool("legacy", false, "use the fallback-returning compatibility layer")
	flags.String("log-level", "warn", "log level for the compatibility layer")

	c.v.SetEnvPrefix("LEARNCTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindPFlags(flags)

	root.AddCommand(
		c.prefsCmd(),
		c.progressCmd(),
		c.achievementsCmd(),
		c.sharedCmd(),
		c.catalogCmd(),
		c.sessionCmd(),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(level)

	c.client = apiclient.New(apiclient.Config{
		BaseURL: c.v.GetString("base-url"),
		Token:   c.v.GetString("token"),
		Timeout: c.v.GetDuration("timeout"),
	})
	c.shim = legacy.New(c.client, logger)
	c.legacy = c.v.GetBool("legacy")

	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "DOCSWITCH"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "docswitch",
		Short:   "Cross-version page resolver for versioned documentation sites",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().String("site", "", "Site base URL (defaults to site_url from --mkdocs)")
	cmd.PersistentFlags().String("mkdocs", "", "mkdocs.yml path used to default site settings")
	cmd.PersistentFlags().String("username", "", "Basic auth user for protected sites")
	cmd.PersistentFlags().String("api-key", "", "Basic auth secret for protected sites")
	cmd.PersistentFlags().Int("http-timeout", 0, "HTTP timeout in seconds")
	cmd.PersistentFlags().Int("http-retries", 0, "HTTP retry count")
	cmd.PersistentFlags().Int("http-retry-delay-ms", 0, "HTTP retry base delay in milliseconds")
	cmd.PersistentFlags().String("banner-state", "", "Banner dismissal state file path")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("site", cmd.PersistentFlags().Lookup("site"))
	_ = viper.BindPFlag("mkdocs", cmd.PersistentFlags().Lookup("mkdocs"))
	_ = viper.BindPFlag("username", cmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("api_key", cmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("http_timeout", cmd.PersistentFlags().Lookup("http-timeout"))
	_ = viper.BindPFlag("http_retries", cmd.PersistentFlags().Lookup("http-retries"))
	_ = viper.BindPFlag("http_retry_delay_ms", cmd.PersistentFlags().Lookup("http-retry-delay-ms"))
	_ = viper.BindPFlag("banner_state", cmd.PersistentFlags().Lookup("banner-state"))

	cmd.AddCommand(newSwitchCommand())
	cmd.AddCommand(newVersionsCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newOutdatedCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("docswitch")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/docswitch")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		if strings.HasPrefix(message, "unknown version") {
			return 3
		}
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind    string
	port    int
	prefix  string
	profile bool
	tlsCert string
	tlsKey  string
	verbose bool
	version bool

	syncCountdownSeconds      int
	nextQuestionDelaySeconds  int
	disconnectGraceSeconds    int
	wagerPhaseDeadlineSeconds int
	maxMultiplier             float64
	survivalLives             int
	wagerStartingScore        int

	// baseURL *url.URL
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("QUIZENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "quizengine",
		Short:         "A real-time multiplayer quiz session engine.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: QUIZENGINE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: QUIZENGINE_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: QUIZENGINE_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: QUIZENGINE_PROFILE)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: QUIZENGINE_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: QUIZENGINE_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: QUIZENGINE_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: QUIZENGINE_VERSION)")

	fs.IntVar(&cfg.syncCountdownSeconds, "sync-countdown-seconds", 5, "countdown length between game-started and the first question (env: QUIZENGINE_SYNC_COUNTDOWN_SECONDS)")
	fs.IntVar(&cfg.nextQuestionDelaySeconds, "next-question-delay-seconds", 5, "delay between a question's results and the next question (env: QUIZENGINE_NEXT_QUESTION_DELAY_SECONDS)")
	fs.IntVar(&cfg.disconnectGraceSeconds, "disconnect-grace-seconds", 30, "time a disconnected player may reconnect before being marked gone (env: QUIZENGINE_DISCONNECT_GRACE_SECONDS)")
	fs.IntVar(&cfg.wagerPhaseDeadlineSeconds, "wager-phase-deadline-seconds", 30, "time wager mode waits for every player to submit a wager (env: QUIZENGINE_WAGER_PHASE_DEADLINE_SECONDS)")
	fs.Float64Var(&cfg.maxMultiplier, "max-multiplier", 5.0, "streak multiplier ceiling (env: QUIZENGINE_MAX_MULTIPLIER)")
	fs.IntVar(&cfg.survivalLives, "survival-lives", 3, "starting lives in survival mode (env: QUIZENGINE_SURVIVAL_LIVES)")
	fs.IntVar(&cfg.wagerStartingScore, "wager-starting-score", 100, "starting score in wager mode (env: QUIZENGINE_WAGER_STARTING_SCORE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("quizengine v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

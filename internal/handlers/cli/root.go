package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bip39dice/internal/dice"
	"github.com/KirkDiggler/bip39dice/internal/services/seedphrase"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
)

// Config holds configuration for the command line interface
type Config struct {
	// Version printed by --version
	Version string

	// DiceRoller draws random phrase bases, defaults to system randomness
	DiceRoller dice.Roller
}

// app carries the service built from the global flags
type app struct {
	config   *Config
	language string
	service  seedphrase.Service
}

// NewRootCommand creates the bip39dice command tree
func NewRootCommand(cfg *Config) *cobra.Command {
	if cfg == nil {
		cfg = &Config{}
	}
	a := &app{config: cfg}

	root := &cobra.Command{
		Use:           "bip39dice",
		Short:         "Utility for generating BIP39 seed phrases with dice",
		Version:       cfg.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.language, "language", wordlist.Languages[0], "BIP39 wordlist language")

	root.AddCommand(
		a.newConvertDiceCommand(),
		a.newDiceWordlistCommand(),
		a.newSolveCheckwordCommand(),
	)

	return root
}

func (a *app) setup() error {
	wl, err := wordlist.ForLanguage(a.language)
	if err != nil {
		return err
	}

	roller := a.config.DiceRoller
	if roller == nil {
		roller = dice.New(nil)
	}

	svc, err := seedphrase.New(&seedphrase.Config{
		Wordlist:   wl,
		DiceRoller: roller,
	})
	if err != nil {
		return err
	}
	a.service = svc
	return nil
}

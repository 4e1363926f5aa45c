package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bip39dice/internal/mnemonic"
	"github.com/KirkDiggler/bip39dice/internal/services/seedphrase"
)

func (a *app) newConvertDiceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert-dice <dice_roll>",
		Short: "Convert a 5-dice roll to a BIP39 word",
		Long: "Convert a 5-dice roll to a BIP39 word.\n" +
			"NOTE: To prevent biasing the output, not all rolls map to words",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.service.ConvertDice(cmd.Context(), &seedphrase.ConvertDiceInput{
				Roll: args[0],
			})
			if errors.Is(err, seedphrase.ErrRollOutOfBounds) {
				fmt.Fprintln(cmd.OutOrStdout(), "Roll out of bounds! Re-roll and try again")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output.DiceRoll.Word)
			return nil
		},
	}
}

func (a *app) newDiceWordlistCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dice-wordlist",
		Short: "Print a dice-roll to BIP39 wordlist mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := a.service.DiceWordlist(cmd.Context(), &seedphrase.DiceWordlistInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, roll := range output.Rolls {
				fmt.Fprintf(w, "%s  %s\n", roll.Roll, roll.Word)
			}
			return nil
		},
	}
}

func (a *app) newSolveCheckwordCommand() *cobra.Command {
	var (
		length string
		random bool
	)

	lengths := make([]string, len(mnemonic.Lengths))
	for i, l := range mnemonic.Lengths {
		lengths[i] = strconv.Itoa(l.WordCount())
	}

	cmd := &cobra.Command{
		Use:   "solve-checkword [seed_phrase_word...]",
		Short: "Solve for the checkword options of a seed phrase base",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !random && len(args) == 0 {
				return errors.New("seed phrase words are required unless --random is set")
			}

			wordCount, err := strconv.Atoi(length)
			if err != nil {
				return fmt.Errorf("invalid --length %q, expected one of %v", length, lengths)
			}

			output, err := a.service.SolveCheckwords(cmd.Context(), &seedphrase.SolveCheckwordsInput{
				Words:     args,
				WordCount: wordCount,
				Random:    random,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, c := range output.Candidates {
				fmt.Fprintf(w, "%-5t  %s\n", c.Valid, c.Phrase)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&length, "length", lengths[0], fmt.Sprintf("Number of words in seed phrase %v", lengths))
	cmd.Flags().BoolVar(&random, "random", false, "Generate random seed phrase base")

	return cmd
}

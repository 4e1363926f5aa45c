package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/bip39dice/internal/common/clock"
	"github.com/KirkDiggler/bip39dice/internal/common/uuid"
	"github.com/KirkDiggler/bip39dice/internal/mnemonic"
	"github.com/KirkDiggler/bip39dice/internal/services/seedphrase"
)

// Subcommand names
const (
	SubcommandConvertDice    = "convert-dice"
	SubcommandLookup         = "lookup"
	SubcommandSolveCheckword = "solve-checkword"
)

// Bip39Command handles the /bip39 command
type Bip39Command struct {
	BaseCommand
	seedPhraseService seedphrase.Service
	clock             clock.Clock
	uuid              uuid.UUID
}

// NewBip39Command creates a new bip39 command handler
func NewBip39Command(seedPhraseService seedphrase.Service, clk clock.Clock, ids uuid.UUID) *Bip39Command {
	lengthChoices := []*discordgo.ApplicationCommandOptionChoice{}
	for _, l := range mnemonic.Lengths {
		lengthChoices = append(lengthChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  l.String(),
			Value: l.WordCount(),
		})
	}

	return &Bip39Command{
		BaseCommand: BaseCommand{
			Name:        "bip39",
			Description: "Build BIP39 seed phrases with dice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandConvertDice,
					Description: "Convert a 5-dice roll to a BIP39 word",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "roll",
							Description: "Five dice, e.g. 16253",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLookup,
					Description: "Show the dice rolls that select a word",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "word",
							Description: "A BIP39 word",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSolveCheckword,
					Description: "Solve for the checkword options of a seed phrase base",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "words",
							Description: "The seed phrase base, space separated",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "length",
							Description: "Number of words in the seed phrase",
							Choices:     lengthChoices,
						},
					},
				},
			},
		},
		seedPhraseService: seedPhraseService,
		clock:             clk,
		uuid:              ids,
	}
}

// Handle processes a Discord interaction for the bip39 command
func (c *Bip39Command) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	requestID := c.uuid.NewUUID()
	embed, err := c.execute(context.Background(), data.Options[0])
	if err != nil {
		log.Printf("[%s] %s %s failed: %v", requestID, c.Name, data.Options[0].Name, err)
		return RespondWithError(s, i, userMessage(err))
	}

	embed.Footer = &discordgo.MessageEmbedFooter{Text: "request " + requestID}
	return RespondWithEphemeralEmbed(s, i, embed)
}

// execute runs a subcommand and renders its result
func (c *Bip39Command) execute(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		opts[opt.Name] = opt
	}

	var embed *discordgo.MessageEmbed
	switch sub.Name {
	case SubcommandConvertDice:
		output, err := c.seedPhraseService.ConvertDice(ctx, &seedphrase.ConvertDiceInput{
			Roll: stringOption(opts, "roll"),
		})
		if err != nil {
			return nil, err
		}
		embed = renderConvertDice(output)
	case SubcommandLookup:
		word := strings.ToLower(strings.TrimSpace(stringOption(opts, "word")))
		output, err := c.seedPhraseService.LookupWord(ctx, &seedphrase.LookupWordInput{
			Word: word,
		})
		if err != nil {
			return nil, err
		}
		embed = renderLookup(word, output)
	case SubcommandSolveCheckword:
		input := &seedphrase.SolveCheckwordsInput{
			Words: strings.Fields(strings.ToLower(stringOption(opts, "words"))),
		}
		if opt, ok := opts["length"]; ok {
			input.WordCount = int(opt.IntValue())
		}
		output, err := c.seedPhraseService.SolveCheckwords(ctx, input)
		if err != nil {
			return nil, err
		}
		embed = renderSolveCheckwords(output)
	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub.Name)
	}

	embed.Timestamp = c.clock.Now().Format(time.RFC3339)
	return embed, nil
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}

// userMessage turns a service error into text for the invoking user
func userMessage(err error) string {
	if errors.Is(err, seedphrase.ErrRollOutOfBounds) {
		return "Roll out of bounds! Re-roll and try again"
	}
	return err.Error()
}

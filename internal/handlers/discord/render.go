package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/bip39dice/internal/services/seedphrase"
)

// renderConvertDice renders the word selected by a roll
func renderConvertDice(output *seedphrase.ConvertDiceOutput) *discordgo.MessageEmbed {
	roll := output.DiceRoll
	return &discordgo.MessageEmbed{
		Title:       roll.Word,
		Description: fmt.Sprintf("🎲 `%s` selects word #%d", roll.Roll, roll.WordIndex),
		Color:       colorSuccess,
	}
}

// renderLookup renders the rolls that select a word
func renderLookup(word string, output *seedphrase.LookupWordOutput) *discordgo.MessageEmbed {
	rolls := make([]string, len(output.Rolls))
	for i, r := range output.Rolls {
		rolls[i] = "`" + r + "`"
	}

	return &discordgo.MessageEmbed{
		Title:       word,
		Description: fmt.Sprintf("Word #%d is selected by %s", output.WordIndex, strings.Join(rolls, ", ")),
		Color:       colorSuccess,
	}
}

// renderSolveCheckwords renders every candidate final word. Invalid
// candidates are struck through.
func renderSolveCheckwords(output *seedphrase.SolveCheckwordsOutput) *discordgo.MessageEmbed {
	words := make([]string, len(output.Candidates))
	for i, c := range output.Candidates {
		if c.Valid {
			words[i] = c.Word
		} else {
			words[i] = "~~" + c.Word + "~~"
		}
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%d checkword options", len(output.Candidates)),
		Description: fmt.Sprintf("||%s||\n\n%s", strings.Join(output.Base, " "), strings.Join(words, ", ")),
		Color:       colorSuccess,
	}
}

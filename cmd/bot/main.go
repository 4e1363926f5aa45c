package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/bip39dice/internal/common/clock"
	"github.com/KirkDiggler/bip39dice/internal/common/uuid"
	"github.com/KirkDiggler/bip39dice/internal/dice"
	"github.com/KirkDiggler/bip39dice/internal/handlers/discord"
	"github.com/KirkDiggler/bip39dice/internal/services/seedphrase"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
)

func main() {
	// A missing .env file is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	wl, err := wordlist.ForLanguage(getEnv("BIP39_LANGUAGE", "english"))
	if err != nil {
		log.Fatalf("Failed to load wordlist: %v", err)
	}

	seedPhraseSvc, err := seedphrase.New(&seedphrase.Config{
		Wordlist:   wl,
		DiceRoller: dice.New(nil),
	})
	if err != nil {
		log.Fatalf("Failed to create seed phrase service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	bot, err := discord.New(&discord.Config{
		Token:             discordToken,
		ApplicationID:     getEnv("APPLICATION_ID", ""),
		GuildID:           getEnv("GUILD_ID", ""),
		SeedPhraseService: seedPhraseSvc,
		Clock:             &clock.DefaultClock{},
		UUIDGenerator:     uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

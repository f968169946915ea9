/* main.go
 * The "main" method for running the bot. Send `$help` to the bot for the list of commands
 * Usage: go run . -test=false -config=config.yaml
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"previsioni-bot/api/api"
	"previsioni-bot/api/metrics"
	"previsioni-bot/bot"
	"previsioni-bot/web"

	"github.com/joho/godotenv"
)

func main() {
	//Flags
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	configPtr := flag.String("config", "", "Optional YAML config file, environment variables override it")
	flag.Parse()

	// A missing .env is fine when the variables come from the environment
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	testMode, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatalf("invalid \"test\" flag, should be true or false: %v", err)
	}

	cfg, err := loadConfig(*configPtr, os.LookupEnv)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	discordToken, err := cfg.DiscordToken(testMode)
	if err != nil {
		log.Fatalf("failed to load discord token: %v", err)
	}

	m := metrics.NewMetrics()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	apiPtr, err := api.NewAPI(ctx, cfg, m)
	cancel()
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := apiPtr.Store.GetClient().Disconnect(ctx); err != nil {
			log.Println("failed to disconnect from mongo:", err)
		}
	}()

	go func() {
		if err := web.Start(web.Config{Addr: cfg.Web.Addr, API: apiPtr, Metrics: m}); err != nil {
			log.Println("HTTP server stopped:", err)
		}
	}()

	b, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Printf("bot stopped with error: %v", err)
	}
}

// Command token issues bearer tokens for the chat server.
//
// Usage:
//
//	APP_TOKEN_SIGN_KEY=secret token alice bob
//
// One token per user id is printed, in argument order.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
)

func main() {
	log := logger.NewLogger("go-chat-token")

	users := os.Args[1:]
	if len(users) == 0 {
		fmt.Fprintln(os.Stderr, "usage: token <user-id>...")
		os.Exit(2)
	}

	appCfg, err := config.GetTokenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	auth := service.NewAuthService(appCfg, log)
	for _, user := range users {
		token, err := auth.CreateToken(context.Background(), user)
		if err != nil {
			log.Fatal().Err(err).Str("user_id", user).Msg("error creating token")
		}
		fmt.Printf("%s\t%s\n", user, token.SignedString)
	}
}

// Command narrative-token mints a bearer token for the narrative layer,
// signed with the secret the server reads from NOVEL_TACTICS_NARRATIVE_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ericogr/novel-tactics/internal/api"
	"github.com/ericogr/novel-tactics/internal/config"
	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/logging"
)

type tokenEnv struct {
	Secret string        `env:"NOVEL_TACTICS_NARRATIVE_SECRET"`
	TTL    time.Duration `env:"NOVEL_TACTICS_TOKEN_TTL" envDefault:"24h"`
}

func main() {
	var e tokenEnv
	if err := config.ParseEnv(&e); err != nil {
		logging.Fatal("Failed to read environment", err, nil)
	}
	subject := flag.String("subject", "narrative", "subject recorded in the token")
	ttl := flag.Duration("ttl", e.TTL, "token lifetime")
	flag.Parse()

	if e.Secret == "" {
		logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": constants.EnvNarrativeSecret})
	}
	tok, err := api.CreateNarrativeToken([]byte(e.Secret), *subject, *ttl)
	if err != nil {
		logging.Fatal("Failed to sign token", err, nil)
	}
	fmt.Fprintln(os.Stdout, tok)
}

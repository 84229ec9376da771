package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/songvote/game"
)

type Config struct {
	Port             int    `env:"PORT" envDefault:"3318"`
	SongsFile        string `env:"SONGS_FILE" envDefault:"songs.txt"`
	PlayersFile      string `env:"PLAYERS_FILE" envDefault:"players.txt"`
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseType     string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	SeedDatabase     bool   `env:"SEED_DATABASE"`
	Points           string `env:"POINT_SEQUENCE" envDefault:"1,3,6,9"`
	EndPolicy        string `env:"END_POLICY" envDefault:"terminate"`
	FinalizePolicy   string `env:"FINALIZE_POLICY" envDefault:"block"`
	RevotePolicy     string `env:"REVOTE_POLICY" envDefault:"accumulate"`
	PresenterKeySalt string `env:"PRESENTER_KEY_SALT"`

	// Rules is derived from Points and the three policy names
	Rules game.Rules `env:"-"`
}

// ParseFlags loads the .env file, reads the environment and applies CLI
// overrides. Flags win over environment variables.
func ParseFlags(args []string) (Config, error) {
	fs := flag.NewFlagSet("songvote", flag.ContinueOnError)

	envFile := fs.String("env", ".env", "Path to a .env file")

	// Event config (can be CLI args or env)
	port := fs.Int("p", 0, "Server port")
	songs := fs.String("songs", "", "Songs file, one per line")
	players := fs.String("players", "", "Players file, one per line")
	dbURL := fs.String("d", "", "Roster database URL (overrides the files)")
	dbType := fs.String("t", "", "Database type (sqlite or postgres)")
	seed := fs.Bool("seed", false, "Copy the roster files into the database before loading")
	points := fs.String("points", "", "Point sequence, e.g. 1,3,6,9")
	endPolicy := fs.String("end", "", "After the last player: terminate or wrap")
	finalizePolicy := fs.String("finalize", "", "Incomplete turns: block or allow")
	revotePolicy := fs.String("revote", "", "Repeat vote for a song: accumulate, overwrite or reject")

	// Secrets (prefer env variables, but allow CLI for dev)
	salt := fs.String("presenter-salt", "", "Presenter key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := loadEnvFile(*envFile, set["env"]); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	if set["p"] {
		cfg.Port = *port
	}
	if set["songs"] {
		cfg.SongsFile = *songs
	}
	if set["players"] {
		cfg.PlayersFile = *players
	}
	if set["d"] {
		cfg.DatabaseURL = *dbURL
	}
	if set["t"] {
		cfg.DatabaseType = *dbType
	}
	if set["seed"] {
		cfg.SeedDatabase = *seed
	}
	if set["points"] {
		cfg.Points = *points
	}
	if set["end"] {
		cfg.EndPolicy = *endPolicy
	}
	if set["finalize"] {
		cfg.FinalizePolicy = *finalizePolicy
	}
	if set["revote"] {
		cfg.RevotePolicy = *revotePolicy
	}
	if set["presenter-salt"] {
		cfg.PresenterKeySalt = *salt
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.SeedDatabase && cfg.DatabaseURL == "" {
		return Config{}, errors.New("-seed requires a database URL")
	}

	rules, err := ParseRules(cfg.Points, cfg.EndPolicy, cfg.FinalizePolicy, cfg.RevotePolicy)
	if err != nil {
		return Config{}, err
	}
	cfg.Rules = rules

	// Secrets - MUST be provided
	if cfg.PresenterKeySalt == "" {
		return Config{}, errors.New("PRESENTER_KEY_SALT required")
	}

	return cfg, nil
}

// ParseRules turns the textual settings into game rules
func ParseRules(points, end, finalize, revote string) (game.Rules, error) {
	var (
		rules game.Rules
		err   error
	)
	if rules.Points, err = game.ParsePoints(points); err != nil {
		return game.Rules{}, err
	}
	if rules.End, err = game.ParseEndPolicy(end); err != nil {
		return game.Rules{}, err
	}
	if rules.Finalize, err = game.ParseFinalizePolicy(finalize); err != nil {
		return game.Rules{}, err
	}
	if rules.Revote, err = game.ParseRevotePolicy(revote); err != nil {
		return game.Rules{}, err
	}
	return rules, nil
}

// loadEnvFile reads KEY=VALUE pairs without overriding the real environment.
// A missing default file is fine; a missing explicit one is not.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

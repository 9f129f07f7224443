// Command cardgame plays the card battle against the AI from a terminal,
// keeping records in a local SQLite file or a shared Redis.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"cardgame/internal/app"
	"cardgame/internal/auth"
	"cardgame/internal/config"
	"cardgame/internal/domain"
	"cardgame/internal/logging"
	"cardgame/internal/ports"
	"cardgame/internal/ports/redis"
	"cardgame/internal/ports/sqlite"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cardgame login [flags] NAME")
	fmt.Fprintln(w, "  cardgame start [flags]")
	fmt.Fprintln(w, "  cardgame play  [flags] SLOT")
	fmt.Fprintln(w, "  cardgame next  [flags]")
	fmt.Fprintln(w, "  cardgame end   [flags]")
	fmt.Fprintln(w, "  cardgame show  [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --db PATH       SQLite file (env CARDGAME_DB, default cardgame.db)")
	fmt.Fprintln(w, "  --redis ADDR    use Redis instead of SQLite (env CARDGAME_REDIS_ADDR)")
	fmt.Fprintln(w, "  --ticket T      ticket printed by login (env CARDGAME_TICKET)")
	fmt.Fprintln(w, "  --seed N        fixed seed for shuffles and AI choices")
	fmt.Fprintln(w, "  --config FILE   game config JSON")
	fmt.Fprintln(w, "  --cards FILE    card catalog YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CARDGAME_TICKET_SECRET must be set; it signs and verifies tickets.")
}

type options struct {
	db         string
	redisAddr  string
	ticket     string
	seed       int64
	configPath string
	cardsPath  string
	logLevel   string
}

// output is printed as JSON after every command.
type output struct {
	User   *domain.User `json:"user"`
	Events []app.Event  `json:"events,omitempty"`
	Ticket string       `json:"ticket,omitempty"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	if len(args) < 1 {
		return errUsage
	}
	cmd := args[0]
	switch cmd {
	case "login", "start", "play", "next", "end", "show":
	default:
		return errUsage
	}

	opts := options{logLevel: getenv("CARDGAME_LOG_LEVEL")}
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.db, "db", envOr(getenv, "CARDGAME_DB", "cardgame.db"), "SQLite database path")
	fs.StringVar(&opts.redisAddr, "redis", getenv("CARDGAME_REDIS_ADDR"), "Redis address")
	fs.StringVar(&opts.ticket, "ticket", getenv("CARDGAME_TICKET"), "ticket from login")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	fs.StringVar(&opts.configPath, "config", "", "game config JSON path")
	fs.StringVar(&opts.cardsPath, "cards", "", "card catalog YAML path")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	rest := fs.Args()

	logger := logging.NewText(stderr, opts.logLevel)

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.ReadGameConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.cardsPath != "" {
		cfg.CardsPath = opts.cardsPath
	}

	tickets, err := auth.NewTickets(getenv("CARDGAME_TICKET_SECRET"), cfg.TicketIssuer, time.Duration(cfg.TicketTTLSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("CARDGAME_TICKET_SECRET: %w", err)
	}

	store, closeStore, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewSource(opts.seed))
	}
	svc, err := app.NewServiceFromConfig(store, cfg, logger, rng)
	if err != nil {
		return err
	}

	var out output
	if cmd == "login" {
		if len(rest) != 1 || rest[0] == "" {
			return errUsage
		}
		out.Ticket, err = tickets.Issue(rest[0])
		if err != nil {
			return err
		}
		opts.ticket = out.Ticket
	}

	grant, err := tickets.Verify(opts.ticket)
	if err != nil {
		return fmt.Errorf("%s: %w (run login first)", cmd, err)
	}
	identity := grant.Subject()

	switch cmd {
	case "login":
		out.User, out.Events, err = svc.Login(ctx, grant, identity)
	case "start":
		out.User, out.Events, err = svc.StartGame(ctx, grant, identity)
	case "play":
		if len(rest) != 1 {
			return errUsage
		}
		slot, convErr := strconv.Atoi(rest[0])
		if convErr != nil {
			return fmt.Errorf("slot must be a number: %w", convErr)
		}
		out.User, out.Events, err = svc.PlayCard(ctx, grant, identity, slot)
	case "next":
		out.User, out.Events, err = svc.NextRound(ctx, grant, identity)
	case "end":
		out.User, out.Events, err = svc.EndGame(ctx, grant, identity)
	case "show":
		out.User, err = svc.Show(ctx, grant, identity)
	}
	if err != nil {
		return err
	}

	for _, ev := range out.Events {
		logger.Debug("event %s: %+v", ev.Kind, ev.Payload)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func openStore(ctx context.Context, opts options) (ports.UserStore, func(), error) {
	if opts.redisAddr != "" {
		store, err := redis.Dial(ctx, opts.redisAddr)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
	store, err := sqlite.Open(opts.db)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package chatserv parses service command flags and composes the running
// daemon: storage, dialect, hooks, and the authentication service.
package chatserv

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/veldt-labs/chatserv/internal/badpass"
	"github.com/veldt-labs/chatserv/internal/command"
	"github.com/veldt-labs/chatserv/internal/dialect/console"
	"github.com/veldt-labs/chatserv/internal/help"
	"github.com/veldt-labs/chatserv/internal/hook"
	"github.com/veldt-labs/chatserv/internal/nickserv"
	entrypoint "github.com/veldt-labs/chatserv/internal/platform/cmd"
	"github.com/veldt-labs/chatserv/internal/protocol"
	"github.com/veldt-labs/chatserv/internal/session"
	"github.com/veldt-labs/chatserv/internal/storage/sqlite"
)

// Config holds chatserv command configuration.
type Config struct {
	DBPath      string `env:"CHATSERV_DB_PATH"      envDefault:"chatserv.db"`
	HelpDir     string `env:"CHATSERV_HELP_DIR"     envDefault:"help"`
	HelpChan    string `env:"CHATSERV_HELP_CHANNEL"`
	HelpURL     string `env:"CHATSERV_HELP_URL"`
	RedisAddr   string `env:"CHATSERV_REDIS_ADDR"`
	LoginPolicy string `env:"CHATSERV_LOGIN_POLICY"`
	MaxLogins   uint   `env:"CHATSERV_MAX_LOGINS"   envDefault:"5"`

	NicknameOwnership bool `env:"CHATSERV_NICKNAME_OWNERSHIP" envDefault:"false"`
	UsesHalfops       bool `env:"CHATSERV_USES_HALFOPS"       envDefault:"false"`
	UsesOwner         bool `env:"CHATSERV_USES_OWNER"         envDefault:"false"`
	UsesProtect       bool `env:"CHATSERV_USES_PROTECT"       envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "account database path")
	fs.StringVar(&cfg.HelpDir, "help-dir", cfg.HelpDir, "help content root directory")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis address for login penalty tracking")
	fs.StringVar(&cfg.LoginPolicy, "login-policy", cfg.LoginPolicy, "lua login policy script path")
	fs.UintVar(&cfg.MaxLogins, "max-logins", cfg.MaxLogins, "maximum concurrent sessions per account")
	fs.BoolVar(&cfg.NicknameOwnership, "nickname-ownership", cfg.NicknameOwnership, "run in identify-to-nickname mode")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the daemon and serves the console transport until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceChatserv, func(ctx context.Context) error {
		if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
			return fmt.Errorf("serve chatserv: %w", err)
		}
		return nil
	})
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	// Penalty tracking degrades to a no-op without Redis.
	var penalties *badpass.Tracker
	if cfg.RedisAddr != "" {
		penalties = badpass.New(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	hooks := hook.NewDispatcher()
	hooks.AddEvent(hook.EventUserCanLogin)
	if cfg.LoginPolicy != "" {
		policy, err := hook.LoginPolicy(cfg.LoginPolicy)
		if err != nil {
			return err
		}
		hooks.AddHook(hook.EventUserCanLogin, policy)
	}

	table := protocol.NewTable()
	if err := console.Register(table, out); err != nil {
		return err
	}

	machine := session.NewMachine(store, hooks, table, penalties, session.Config{
		MaxLogins:         cfg.MaxLogins,
		NicknameOwnership: cfg.NicknameOwnership,
	})

	renderer := &help.Renderer{
		Root:              cfg.HelpDir,
		HelpChan:          cfg.HelpChan,
		HelpURL:           cfg.HelpURL,
		NicknameOwnership: cfg.NicknameOwnership,
		UsesHalfops:       cfg.UsesHalfops,
		UsesOwner:         cfg.UsesOwner,
		UsesProtect:       cfg.UsesProtect,
	}

	svcName := "UserServ"
	if cfg.NicknameOwnership {
		svcName = "NickServ"
	}
	svc := &command.Service{Nick: svcName, Disp: svcName, Commands: command.NewRegistry()}
	if err := nickserv.Bind(svc, nickserv.Deps{
		Machine:           machine,
		Renderer:          renderer,
		NicknameOwnership: cfg.NicknameOwnership,
	}); err != nil {
		return err
	}

	log.Printf("serving as %s (db=%s help=%s)", svcName, cfg.DBPath, cfg.HelpDir)
	return serveConsole(ctx, svc, table, in)
}

// serveConsole dispatches commands read line by line until EOF or shutdown.
// The whole console is one connection, so session state carries across lines.
func serveConsole(ctx context.Context, svc *command.Service, table *protocol.Table, in io.Reader) error {
	const consoleNick = "console"
	src := &command.Source{
		Nick:    consoleNick,
		Lang:    "en-US",
		Service: svc,
		Reply: func(line string) {
			table.Notice(ctx, svc.Disp, consoleNick, line)
		},
	}

	lines := make(chan string)
	scanner := bufio.NewScanner(in)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return scanner.Err()
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			svc.Commands.Execute(ctx, src, fields[0], fields[1:])
		}
	}
}

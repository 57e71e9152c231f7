package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/profile-card/internal/adapter"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/MKhiriev/profile-card/models"
)

// Usage lists the supported commands.
const Usage = `usage: profile-card-client [-a url] [-timeout d] [-token t] <command> [args]

commands:
  register <email> <password>   create an account
  login <email> <password>      log in and print the bearer token
  verify                        show the user the token belongs to
  profile                       show your profile
  qr <file.png>                 save the QR code of your public profile
  public <userId>               show a public profile
  scan <text>                   resolve text decoded from a profile QR code
`

type command struct {
	args int
	run  func(ctx context.Context, args []string) (any, error)
}

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register": {args: 2, run: a.register},
		"login":    {args: 2, run: a.login},
		"verify":   {args: 0, run: a.verify},
		"profile":  {args: 0, run: a.profile},
		"qr":       {args: 1, run: a.qr},
		"public":   {args: 1, run: a.public},
		"scan":     {args: 1, run: a.scan},
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if len(rest) != cmd.args {
		return fmt.Errorf("%w: %s expects %d, got %d", ErrWrongArguments, name, cmd.args, len(rest))
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	result, err := cmd.run(ctx, rest)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (a *App) register(ctx context.Context, args []string) (any, error) {
	return a.adapter.Register(ctx, models.Credentials{Email: args[0], Password: args[1]})
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	return a.adapter.Login(ctx, models.Credentials{Email: args[0], Password: args[1]})
}

func (a *App) verify(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Verify(ctx)
}

func (a *App) profile(ctx context.Context, _ []string) (any, error) {
	return a.adapter.GetProfile(ctx)
}

func (a *App) qr(ctx context.Context, args []string) (any, error) {
	png, err := a.adapter.GetProfileQR(ctx)
	if err != nil {
		return nil, err
	}
	if err = os.WriteFile(args[0], png, 0o644); err != nil {
		return nil, fmt.Errorf("error saving qr code: %w", err)
	}
	return models.MessageResponse{Message: fmt.Sprintf("QR code saved to %s", args[0])}, nil
}

func (a *App) public(ctx context.Context, args []string) (any, error) {
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be a positive integer", ErrWrongArguments)
	}
	return a.adapter.GetPublicProfile(ctx, userID)
}

// scan accepts the text decoded from a profile QR code.
func (a *App) scan(ctx context.Context, args []string) (any, error) {
	userID, err := adapter.ParseProfileURL(args[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.GetPublicProfile(ctx, userID)
}

// session-cli drives a running session service through its public HTTP api.
//
//	session-cli login <username> <password>
//	session-cli current <tokenId> <key>
//	session-cli logout <tokenId> <key>
//
// The service address is read from SESSION_SERVICE_URL.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/pflag"

	commonhttp "github.com/klwxsrx/hawk-session-service/internal/pkg/http"
	"github.com/klwxsrx/hawk-session-service/pkg/log"
	"github.com/klwxsrx/hawk-session-service/pkg/metric"
	"github.com/klwxsrx/hawk-session-service/pkg/observability"
)

type (
	loginIn struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	accountOut struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	errorOut struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
		Reason     string `json:"reason,omitempty"`
	}
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var timeout time.Duration
	var verbose bool

	flagSet := pflag.NewFlagSet("session-cli", pflag.ContinueOnError)
	flagSet.DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log http calls to stderr")
	flagSet.Usage = func() { printUsage(flagSet) }

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	args := flagSet.Args()
	if len(args) != 3 {
		printUsage(flagSet)
		return errors.New("expected a command and two arguments")
	}

	logLevel := log.LevelWarn
	if verbose {
		logLevel = log.LevelInfo
	}

	factory := commonhttp.NewClientFactory(
		observability.New(),
		metric.NewStub(),
		log.NewWithWriter(os.Stderr, logLevel),
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	switch command := args[0]; command {
	case "login":
		return login(ctx, factory, args[1], args[2])
	case "current":
		return current(ctx, factory, args[1], args[2])
	case "logout":
		return logout(ctx, factory, args[1], args[2])
	default:
		printUsage(flagSet)
		return fmt.Errorf("unknown command %q", command)
	}
}

func login(ctx context.Context, factory *commonhttp.ClientFactory, username, password string) error {
	client := factory.MustInitClient(commonhttp.DestinationSessionService)

	resp, err := client.NewRequest(ctx).
		SetBody(loginIn{Username: username, Password: password}).
		SetError(&errorOut{}).
		Post("/api/users/login")
	if err := checkResponse(resp, err); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	tokenID, key, ok := strings.Cut(resp.Header().Get(commonhttp.HeaderToken), " ")
	if !ok {
		return fmt.Errorf("login: response has no %q header", commonhttp.HeaderToken)
	}

	fmt.Printf("tokenId: %s\nkey: %s\n", tokenID, key)
	return nil
}

func current(ctx context.Context, factory *commonhttp.ClientFactory, tokenID, key string) error {
	client := factory.MustInitClient(
		commonhttp.DestinationSessionService,
		commonhttp.WithHawkCredentials(tokenID, key),
	)

	var account accountOut
	resp, err := client.NewRequest(ctx).
		SetResult(&account).
		SetError(&errorOut{}).
		Get("/api/users/current")
	if err := checkResponse(resp, err); err != nil {
		return fmt.Errorf("get current account: %w", err)
	}

	fmt.Printf("id: %s\nusername: %s\n", account.ID, account.Username)
	return nil
}

func logout(ctx context.Context, factory *commonhttp.ClientFactory, tokenID, key string) error {
	client := factory.MustInitClient(
		commonhttp.DestinationSessionService,
		commonhttp.WithHawkCredentials(tokenID, key),
	)

	resp, err := client.NewRequest(ctx).
		SetError(&errorOut{}).
		Get("/api/users/logout")
	if err := checkResponse(resp, err); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	fmt.Println("session revoked")
	return nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	out, ok := resp.Error().(*errorOut)
	if !ok || out.Message == "" {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	if out.Reason != "" {
		return fmt.Errorf("%s (%s)", out.Message, out.Reason)
	}

	return errors.New(out.Message)
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage:
  session-cli [flags] login <username> <password>
  session-cli [flags] current <tokenId> <key>
  session-cli [flags] logout <tokenId> <key>

Flags:
%s`, flagSet.FlagUsages())
}

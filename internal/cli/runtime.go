package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/studyhubhq/studyhub/internal/store/bbolt"
	"github.com/studyhubhq/studyhub/internal/store/sqlite"
	"github.com/studyhubhq/studyhub/pkg/slogx"
	"github.com/studyhubhq/studyhub/pkg/studysdk"

	"golang.org/x/time/rate"
)

// buildVersion should be set at build time via ldflags.
var buildVersion = "dev"

// runtime bundles everything a command needs: config, the SDK client, the
// hydrated session and the role gate. Constructed per invocation and closed
// when the command returns.
type runtime struct {
	cfg     Config
	client  *studysdk.Client
	store   studysdk.TokenStore
	session *studysdk.Session
	gate    studysdk.Gate

	closer io.Closer
}

// newRuntime loads config, opens the credential store and hydrates the
// session.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := slogx.New(slogx.Config{
		Service: "studyhub-cli",
		Version: buildVersion,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	store, closer, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	opts := []studysdk.ClientOption{studysdk.WithLogger(logger)}
	if cfg.RateLimit > 0 {
		opts = append(opts, studysdk.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst))
	}
	client := studysdk.NewClient(cfg.BaseURL, opts...)

	session, err := studysdk.NewSession(ctx, client, store,
		studysdk.WithExpiredNotice(func() {
			fmt.Fprintln(os.Stderr, "Your session has expired. Please log in again.")
		}),
	)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	return &runtime{
		cfg:     cfg,
		client:  client,
		store:   store,
		session: session,
		closer:  closer,
	}, nil
}

func (rt *runtime) close() {
	if rt.closer != nil {
		_ = rt.closer.Close()
	}
}

// openStore builds the configured credential store driver.
func openStore(cfg Config) (studysdk.TokenStore, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	switch cfg.StoreDriver {
	case "bbolt":
		s, err := bbolt.NewStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		s, err := sqlite.NewStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
}

// requireRole gates a command on the caller's role, the CLI's equivalent of
// the app's role-based routes. Denied callers are pointed at the login
// command instead of being silently rejected.
func (rt *runtime) requireRole(allowed ...studysdk.Role) error {
	decision := rt.gate.Authorize(rt.session.CurrentIdentity(), allowed...)
	if decision.Allowed {
		return nil
	}

	names := make([]string, len(allowed))
	for i, role := range allowed {
		names[i] = string(role)
	}
	return fmt.Errorf("access denied: requires a %s account, run 'studyhub login' first", strings.Join(names, " or "))
}

// currentIdentity returns the logged-in identity or a login hint error.
func (rt *runtime) currentIdentity() (*studysdk.Identity, error) {
	id := rt.session.CurrentIdentity()
	if id == nil {
		return nil, fmt.Errorf("not logged in, run 'studyhub login' first")
	}
	return id, nil
}

package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/internal/config"
	"github.com/sevatrack/volunteer-hours/pkg/clients/gmailclient"
	"github.com/sevatrack/volunteer-hours/pkg/clients/sheetsclient"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// AppContext holds the application dependencies shared across all commands.
// The Google clients are created lazily so database-only commands never
// trigger the OAuth flow.
type AppContext struct {
	Cfg      *config.Config
	Env      string
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	oauthCfg     *config.OAuthClientConfig
	sheetsClient *sheetsclient.Client
	gmailClient  *gmailclient.Client
}

// Sheets returns the Sheets client, creating it (and running the OAuth flow
// if no valid token is cached) on first use
func (a *AppContext) Sheets() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	if err := a.loadOAuthConfig(); err != nil {
		return nil, err
	}

	a.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.Ctx, a.oauthCfg, a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheetsClient = client
	return client, nil
}

// Gmail returns the Gmail client, reusing the Sheets client's OAuth token
func (a *AppContext) Gmail() (*gmailclient.Client, error) {
	if a.gmailClient != nil {
		return a.gmailClient, nil
	}

	sheets, err := a.Sheets()
	if err != nil {
		return nil, err
	}

	a.Logger.Info("Initializing gmail client")
	client, err := gmailclient.NewClient(a.Ctx, a.oauthCfg, sheets.Token())
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	a.gmailClient = client
	return client, nil
}

func (a *AppContext) loadOAuthConfig() error {
	if a.oauthCfg != nil {
		return nil
	}

	a.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.oauthCfg = oauthCfg
	return nil
}

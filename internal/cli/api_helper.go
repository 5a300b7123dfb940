package cli

import (
	"fmt"

	"github.com/frogworks/frogworks/internal/api"
	"github.com/frogworks/frogworks/internal/config"
)

// newAPIClient builds an API client from the config file and global
// flags. Flags win over the config file.
func newAPIClient() (*api.Client, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	baseURL := cfg.APIURL
	if apiURL != "" {
		baseURL = apiURL
	}

	client := api.NewClient(baseURL, logger)

	sid := cfg.SessionID
	if sessionID != "" {
		sid = sessionID
	}
	if sid != "" {
		client = client.WithSession(sid)
	}

	return client, nil
}

// newAuthenticatedAPIClient is like newAPIClient but requires a session id.
func newAuthenticatedAPIClient() (*api.Client, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}
	if client.SessionID() == "" {
		return nil, fmt.Errorf("a session id is required; log in with 'account login' or pass --session-id")
	}
	return client, nil
}

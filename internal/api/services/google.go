package services

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var DataRepoScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// NewDataRepoTokenSource loads service account credentials from
// credentialsFile, or application default credentials when it is empty.
func NewDataRepoTokenSource(ctx context.Context, credentialsFile string) (oauth2.TokenSource, error) {
	if credentialsFile == "" {
		ts, err := google.DefaultTokenSource(ctx, DataRepoScopes...)
		if err != nil {
			return nil, fmt.Errorf("load default credentials: %w", err)
		}
		return ts, nil
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, DataRepoScopes...)
	if err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	return creds.TokenSource, nil
}

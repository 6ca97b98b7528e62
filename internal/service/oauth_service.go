package service

import (
	"fmt"

	"pdfchat-api/internal/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

var (
	githubScopes = []string{"read:user", "user:email"}
	googleScopes = []string{"openid", "email", "profile"}
)

type oauthService struct {
	providers map[domain.OAuthProvider]*oauth2.Config
}

// NewOAuthService builds an authorization-code config for each provider with
// both a client id and a redirect URI. Providers missing either are reported
// as not configured.
func NewOAuthService(config domain.Config) domain.OAuthService {
	providers := make(map[domain.OAuthProvider]*oauth2.Config)

	if id, redirect := config.GetGitHubClientID(), config.GetGitHubRedirectURI(); id != "" && redirect != "" {
		providers[domain.OAuthProviderGitHub] = &oauth2.Config{
			ClientID:    id,
			RedirectURL: redirect,
			Scopes:      githubScopes,
			Endpoint:    github.Endpoint,
		}
	}
	if id, redirect := config.GetGoogleClientID(), config.GetGoogleRedirectURI(); id != "" && redirect != "" {
		providers[domain.OAuthProviderGoogle] = &oauth2.Config{
			ClientID:    id,
			RedirectURL: redirect,
			Scopes:      googleScopes,
			Endpoint:    google.Endpoint,
		}
	}

	return &oauthService{providers: providers}
}

// AuthURL returns the provider's consent URL. The callback is handled by the
// frontend, which owns the state parameter, so none is added here.
func (s *oauthService) AuthURL(provider domain.OAuthProvider) (string, error) {
	switch provider {
	case domain.OAuthProviderGitHub, domain.OAuthProviderGoogle:
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownOAuthProvider, provider)
	}

	cfg, ok := s.providers[provider]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrOAuthNotConfigured, provider)
	}
	return cfg.AuthCodeURL(""), nil
}

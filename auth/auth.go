// Package auth obtains Twitch user tokens: a refresh-grant exchange for
// servers that already hold a refresh token, and an interactive
// authorization-code flow with a local loopback listener for first-time
// setup.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Endpoint is Twitch's OAuth2 endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://id.twitch.tv/oauth2/authorize",
	TokenURL: "https://id.twitch.tv/oauth2/token",
}

// loopbackAddr is where the authorization redirect lands during the
// interactive flow. Must match a redirect URL registered for the client id.
const loopbackAddr = "127.0.0.1:8080"

// Tokens is an access/refresh token pair.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Refresh trades a refresh token for a fresh token pair.
func Refresh(ctx context.Context, clientID, clientSecret, refreshToken string) (*Tokens, error) {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     Endpoint,
	}

	token, err := config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}
	if token.RefreshToken == "" {
		return nil, errors.New("refresh token missing from response")
	}
	return &Tokens{AccessToken: token.AccessToken, RefreshToken: token.RefreshToken}, nil
}

// AuthorizeLocal runs the authorization-code flow: it opens the consent page
// in the user's browser, waits for the redirect on the loopback listener,
// and exchanges the returned code. It blocks until the user completes or
// cancels the consent, or ctx expires.
func AuthorizeLocal(ctx context.Context, clientID, clientSecret string, scopes []Scope) (*Tokens, error) {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     Endpoint,
		RedirectURL:  "http://localhost:8080",
		Scopes:       scopeStrings(scopes),
	}

	listener, err := net.Listen("tcp", loopbackAddr)
	if err != nil {
		return nil, fmt.Errorf("starting loopback listener: %w", err)
	}
	defer listener.Close()

	state := uuid.NewString()
	if err := openBrowser(config.AuthCodeURL(state)); err != nil {
		return nil, fmt.Errorf("opening authorization page: %w", err)
	}

	code, err := waitForCode(ctx, listener, state)
	if err != nil {
		return nil, err
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}
	if token.RefreshToken == "" {
		return nil, errors.New("refresh token missing from response")
	}
	return &Tokens{AccessToken: token.AccessToken, RefreshToken: token.RefreshToken}, nil
}

// waitForCode serves the loopback listener until the authorization redirect
// arrives with a matching state.
func waitForCode(ctx context.Context, listener net.Listener, state string) (string, error) {
	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if query.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				return
			}
			if errName := query.Get("error"); errName != "" {
				fmt.Fprintln(w, "Authorization failed, you can close this window.")
				results <- result{err: fmt.Errorf("authorization denied: %s", errName)}
				return
			}
			code := query.Get("code")
			if code == "" {
				http.Error(w, "code missing", http.StatusBadRequest)
				return
			}
			fmt.Fprintln(w, "Authorization complete, you can close this window.")
			results <- result{code: code}
		}),
	}
	go server.Serve(listener)
	defer server.Close()

	select {
	case res := <-results:
		return res.code, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

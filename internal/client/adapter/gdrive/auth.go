package gdrive

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// signInTimeout сколько ждать, пока пользователь подтвердит доступ в браузере
const signInTimeout = 5 * time.Minute

// SignIn выполняет OAuth2 authorization code flow с PKCE.
// Код принимается локальным HTTP сервером на 127.0.0.1.
func (a *Adapter) SignIn(ctx context.Context) error {
	if a.prompt == nil {
		return a.authError(errors.New("interactive input is not available"))
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return a.authError(fmt.Errorf("failed to start callback listener: %w", err))
	}

	cfg := *a.config
	cfg.RedirectURL = "http://" + ln.Addr().String() + "/callback"

	state, err := randomState()
	if err != nil {
		_ = ln.Close()
		return a.authError(err)
	}
	verifier := oauth2.GenerateVerifier()

	codes := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackHandler(state, codes),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Warn("Callback server stopped", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	a.prompt.Println("Open the following link in your browser to grant access to Google Drive:")
	a.prompt.Println(url)

	waitCtx, cancel := context.WithTimeout(ctx, signInTimeout)
	defer cancel()

	var res callbackResult
	select {
	case res = <-codes:
	case <-waitCtx.Done():
		return a.authError(fmt.Errorf("waiting for authorization: %w", waitCtx.Err()))
	}
	if res.err != nil {
		return a.authError(res.err)
	}

	tok, err := cfg.Exchange(ctx, res.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return a.authError(fmt.Errorf("failed to exchange authorization code: %w", err))
	}
	if err := a.saveToken(ctx, tok); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	a.mu.Lock()
	a.service = nil
	a.mu.Unlock()

	a.prompt.Println("Google Drive access granted")
	return nil
}

type callbackResult struct {
	err  error
	code string
}

func callbackHandler(state string, out chan<- callbackResult) http.Handler {
	var once sync.Once
	deliver := func(r callbackResult) {
		once.Do(func() { out <- r })
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("state") != state:
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		case q.Get("error") != "":
			deliver(callbackResult{err: fmt.Errorf("authorization denied: %s", q.Get("error"))})
			http.Error(w, "authorization denied", http.StatusForbidden)
			return
		case q.Get("code") == "":
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		deliver(callbackResult{code: q.Get("code")})
		_, _ = w.Write([]byte("Access granted. You can close this tab."))
	})
	return mux
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (a *Adapter) loadToken(ctx context.Context) (*oauth2.Token, error) {
	data, err := a.creds.GetCredential(ctx, a.source.ID)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &tok, nil
}

func (a *Adapter) saveToken(ctx context.Context, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return a.creds.SaveCredential(ctx, a.source.ID, data)
}

// savingTokenSource сохраняет обновлённый токен в хранилище учётных данных
type savingTokenSource struct {
	base     oauth2.TokenSource
	save     func(*oauth2.Token) error
	logger   *slog.Logger
	last     string
	sourceID string
	mu       sync.Mutex
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if err := s.save(tok); err != nil {
			s.logger.Warn("Failed to persist refreshed token", "source_id", s.sourceID, "error", err)
		}
	}
	return tok, nil
}

package google

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// CodeSource performs the interactive consent step and returns the
// authorization code Google issued for it
type CodeSource interface {
	AuthorizationCode(ctx context.Context, authURL, state string) (string, error)
}

// PromptCodeSource asks the user to open the consent URL and paste back
// either the authorization code or the full redirect URL
type PromptCodeSource struct {
	in  *bufio.Reader
	out io.Writer
}

var _ CodeSource = &PromptCodeSource{}

// NewPromptCodeSource creates a terminal based code source
func NewPromptCodeSource(in io.Reader, out io.Writer) *PromptCodeSource {
	return &PromptCodeSource{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// AuthorizationCode prompts for the authorization code. An empty answer cancels the sign-in.
func (source *PromptCodeSource) AuthorizationCode(ctx context.Context, authURL, state string) (string, error) {
	fmt.Fprintf(source.out, "Open the following URL in your browser and paste the authorization code (empty to cancel):\n%s\n> ", authURL)
	line, err := source.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", ErrSignInCancelled
	}
	if !strings.Contains(answer, "://") {
		return answer, nil
	}

	redirect, err := url.Parse(answer)
	if err != nil {
		return "", fmt.Errorf("invalid redirect url: %w", err)
	}
	query := redirect.Query()
	if query.Get("error") == "access_denied" {
		return "", ErrSignInCancelled
	}
	if query.Get("state") != state {
		return "", errors.New("redirect state does not match")
	}
	code := query.Get("code")
	if code == "" {
		return "", errors.New("redirect url has no authorization code")
	}
	return code, nil
}

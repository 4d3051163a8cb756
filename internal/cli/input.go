package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MrSnakeDoc/backoffice/internal/form"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }

// prompt prints label and reads one trimmed line. A partial last line
// before EOF is accepted.
func (a *App) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(a.out, label+": "); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// password reads a secret without echo on a terminal, and as a plain line
// otherwise.
func (a *App) password(label string) (string, error) {
	if !a.tty {
		return a.prompt(label)
	}
	if _, err := fmt.Fprint(a.out, label+": "); err != nil {
		return "", err
	}
	pw, err := readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// valueOrPrompt returns v, or asks for it when blank.
func (a *App) valueOrPrompt(v, label string) (string, error) {
	if v = strings.TrimSpace(v); v != "" {
		return v, nil
	}
	return a.prompt(label)
}

// parseSet turns repeated field=value flags into form values. The value
// may contain '=' and may be empty.
func parseSet(pairs []string) (form.Values, error) {
	v := form.Values{}
	for _, p := range pairs {
		key, val, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want field=value", p)
		}
		v[key] = val
	}
	return v, nil
}

// Package credential resolves the statistics API token from an ordered chain
// of sources. The first source that yields a non-empty value wins.
package credential

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/muhammadchandra19/wb-report/pkg/errors"
)

// TokenEnv is the environment variable and configuration file key holding the token.
const TokenEnv = "WB_API_TOKEN"

// Provider yields a token, or an empty string when its source has none.
type Provider interface {
	Name() string
	Token(ctx context.Context) (string, error)
}

type providerFunc struct {
	name string
	fn   func(ctx context.Context) (string, error)
}

func (p providerFunc) Name() string { return p.name }

func (p providerFunc) Token(ctx context.Context) (string, error) { return p.fn(ctx) }

// NewProvider adapts a function into a Provider.
func NewProvider(name string, fn func(ctx context.Context) (string, error)) Provider {
	return providerFunc{name: name, fn: fn}
}

// Static returns the explicitly supplied token.
func Static(token string) Provider {
	return NewProvider("argument", func(context.Context) (string, error) {
		return token, nil
	})
}

// Env reads the token from the process environment.
func Env(name string) Provider {
	return NewProvider("env:"+name, func(context.Context) (string, error) {
		return os.Getenv(name), nil
	})
}

// File reads key from a dotenv-style configuration file. A missing file
// yields no token.
func File(path, key string) Provider {
	return NewProvider("file:"+path, func(context.Context) (string, error) {
		if path == "" {
			return "", nil
		}
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", nil
			}
			return "", errors.Wrap(err, errors.FileReadError, fmt.Sprintf("failed to read %s", path))
		}
		return values[key], nil
	})
}

// Terminal prompts for the token without echo. It yields no token when in is
// not an interactive terminal, so scheduled runs fail fast instead of hanging.
func Terminal(in *os.File, out io.Writer) Provider {
	return NewProvider("prompt", func(context.Context) (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return "", nil
		}
		fmt.Fprint(out, "Wildberries API token: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", errors.Wrap(err, errors.ConfigError, "failed to read token from terminal")
		}
		return string(b), nil
	})
}

// Resolve walks providers in order and returns the first non-empty token
// together with the name of the provider that supplied it. A provider error
// stops the walk.
func Resolve(ctx context.Context, providers ...Provider) (token string, source string, err error) {
	for _, p := range providers {
		v, err := p.Token(ctx)
		if err != nil {
			return "", p.Name(), err
		}
		if v = clean(v); v != "" {
			return v, p.Name(), nil
		}
	}
	return "", "", errors.Newf(errors.ConfigError,
		"no API token found: pass --token, set %s, add it to the configuration file or run interactively", TokenEnv)
}

// DefaultChain is the standard order: explicit argument, environment,
// configuration file, interactive prompt.
func DefaultChain(explicit, file string) []Provider {
	return []Provider{
		Static(explicit),
		Env(TokenEnv),
		File(file, TokenEnv),
		Terminal(os.Stdin, os.Stderr),
	}
}

func clean(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			v = strings.TrimSpace(v[1 : len(v)-1])
		}
	}
	return v
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombowditch/patisserie/internal/pasterytest"
)

func newServer(t *testing.T) *pasterytest.Server {
	t.Helper()
	s := pasterytest.NewServer()
	t.Cleanup(s.Close)
	return s
}

func last(t *testing.T, s *pasterytest.Server) pasterytest.Paste {
	t.Helper()
	p, ok := s.Last()
	require.True(t, ok, "no paste was created")
	return p
}

func noEnv(string) (string, bool) { return "", false }

type result struct {
	code   int
	stdout string
	stderr string
}

func invoke(t *testing.T, stdin string, lookup func(string) (string, bool), args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	// keep the user's real env file out of the way
	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "env")}, args...)
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr, lookup)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRunFromFile(t *testing.T) {
	s := newServer(t)

	path := filepath.Join(t.TempDir(), "main.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o600))

	res := invoke(t, "", noEnv, "--endpoint", s.Endpoint(), "--api-key", "k", "-d", "2h", path)
	require.Equal(t, exitOK, res.code, res.stderr)

	p := last(t, s)
	assert.Equal(t, s.URL+"/"+p.ID+"/\n", res.stdout)
	assert.Equal(t, "fn main() {}\n", p.Body)
	assert.Equal(t, []string{"k"}, p.Query["api_key"])
	assert.Equal(t, "120", p.Duration)
	assert.Equal(t, "rust", p.Language)
	assert.Equal(t, "main.rs", p.Title)
	assert.NotContains(t, p.Query, "max_views")
}

func TestRunFromStdinWithEnvKey(t *testing.T) {
	s := newServer(t)
	lookup := func(key string) (string, bool) {
		if key == "PASTERY_API_KEY" {
			return "env-key", true
		}
		return "", false
	}

	res := invoke(t, "hello", lookup, "--endpoint", s.Endpoint(), "--max-views", "3", "-l", "python", "-t", "greeting")
	require.Equal(t, exitOK, res.code, res.stderr)

	p := last(t, s)
	assert.Equal(t, s.URL+"/"+p.ID+"/\n", res.stdout)
	assert.Equal(t, "hello", p.Body)
	assert.Equal(t, []string{"env-key"}, p.Query["api_key"])
	assert.Equal(t, "1440", p.Duration)
	assert.Equal(t, "python", p.Language)
	assert.Equal(t, "greeting", p.Title)
	assert.Equal(t, "3", p.MaxViews)
}

func TestRunStdinDefaults(t *testing.T) {
	s := newServer(t)

	res := invoke(t, "x", noEnv, "--endpoint", s.Endpoint(), "--api-key", "k")
	require.Equal(t, exitOK, res.code, res.stderr)

	p := last(t, s)
	assert.Equal(t, "autodetect", p.Language)
	assert.NotContains(t, p.Query, "title")
}

func TestRunExplicitEmptyTitle(t *testing.T) {
	s := newServer(t)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o600))

	res := invoke(t, "", noEnv, "--endpoint", s.Endpoint(), "--api-key", "k", "-t", "", path)
	require.Equal(t, exitOK, res.code, res.stderr)

	p := last(t, s)
	assert.Equal(t, []string{""}, p.Query["title"])
}

func TestRunKeyFromEnvFile(t *testing.T) {
	s := newServer(t)
	envFile := filepath.Join(t.TempDir(), "env")
	require.NoError(t, os.WriteFile(envFile, []byte("PASTERY_API_KEY=file-key\n"), 0o600))

	res := invoke(t, "x", noEnv, "--endpoint", s.Endpoint(), "--env-file", envFile)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, []string{"file-key"}, last(t, s).Query["api_key"])
}

func TestRunRemoteError(t *testing.T) {
	s := newServer(t)
	s.APIKey = "good"

	res := invoke(t, "x", noEnv, "--endpoint", s.Endpoint(), "--api-key", "bad")
	assert.Equal(t, exitError, res.code)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "patisserie: Invalid API key.\n", res.stderr)
}

func TestRunMalformedResponse(t *testing.T) {
	s := newServer(t)
	s.Reply(`{"foo":1}`)

	res := invoke(t, "x", noEnv, "--endpoint", s.Endpoint(), "--api-key", "k")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "Could not parse JSON response")
}

func TestRunMissingKey(t *testing.T) {
	res := invoke(t, "x", noEnv)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "no API key given")
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	res := invoke(t, "", noEnv, "--api-key", "k", path)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "Could not open file `"+path+"' for reading")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"bad unit", []string{"-d", "5x"}, "Unknown unit `x'"},
		{"too long", []string{"-d", "101y"}, "Duration `101y' is too long"},
		{"bad language", []string{"-l", "bogus"}, "Unknown language `bogus'"},
		{"zero views", []string{"--max-views", "0"}, "positive"},
		{"negative views", []string{"--max-views", "-1"}, "max-views"},
		{"unknown flag", []string{"--nope"}, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := invoke(t, "x", noEnv, append([]string{"--api-key", "k"}, tt.args...)...)
			assert.Equal(t, exitUsage, res.code)
			assert.Contains(t, res.stderr, tt.msg)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRunExtraArgs(t *testing.T) {
	res := invoke(t, "", noEnv, "--api-key", "k", "a.txt", "b.txt")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "b.txt")
}

func TestRunHelp(t *testing.T) {
	res := invoke(t, "", noEnv, "--help")
	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "--duration")
	assert.Contains(t, res.stdout, "pastery")
	assert.NotContains(t, res.stdout, "--endpoint")
}

func TestRunListLanguages(t *testing.T) {
	res := invoke(t, "", noEnv, "--list-languages")
	assert.Equal(t, exitOK, res.code)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	assert.Equal(t, "autodetect", lines[0])
	assert.Contains(t, res.stdout, "rust")
}

func TestRunVerboseRedactsKey(t *testing.T) {
	s := newServer(t)

	res := invoke(t, "x", noEnv, "--endpoint", s.Endpoint(), "--api-key", "supersecret", "-v")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stderr, "creating paste")
	assert.NotContains(t, res.stderr, "supersecret")
}

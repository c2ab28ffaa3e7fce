package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRun_root(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, "doc.json", `{"foo": "bar", "a": "1"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"root", doc}, nil, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Equal(t, "3dc61dae35173f16f09a179097d2cca49bd73c7f3293fb722f24702600f1d6d0\n", stdout.String())
}

func TestRun_root_stdin(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"root", "-"}, strings.NewReader(`{"foo": "bar"}`), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Equal(t, "fcde2b2edba56bf408601fb721fe9b5c338d10ee429ea04fae5511b68fbf8fb9\n", stdout.String())
}

func TestRun_root_nestedDocumentRejected(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	code := run([]string{"root", "-"}, strings.NewReader(`{"foo": {"bar": "baz"}}`), &stdout, &stderr)
	require.Equal(t, exitError, code)
	require.Contains(t, stderr.String(), "string values")
}

func TestRun_discloseThenVerify(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, "doc.json", `{"givenName": "John", "familyName": "Smith", "gender": "M"}`)

	var rootOut, stderr bytes.Buffer
	require.Equal(t, exitOK, run([]string{"root", doc}, nil, &rootOut, &stderr), stderr.String())
	root := strings.TrimSpace(rootOut.String())

	for _, framed := range []bool{false, true} {
		args := []string{"disclose", "-reveal", "givenName"}
		if framed {
			args = append(args, "-framed")
		}
		args = append(args, doc)

		var recsOut bytes.Buffer
		require.Equal(t, exitOK, run(args, nil, &recsOut, &stderr), stderr.String())
		if !framed {
			require.NotContains(t, recsOut.String(), "Smith")
			require.Contains(t, recsOut.String(), "John")
		}

		vargs := []string{"verify", "-root", root}
		if framed {
			vargs = append(vargs, "-framed")
		}
		vargs = append(vargs, "-")

		var out bytes.Buffer
		code := run(vargs, bytes.NewReader(recsOut.Bytes()), &out, &stderr)
		require.Equal(t, exitOK, code, stderr.String())
		require.Equal(t, "OK\n", out.String())

		out.Reset()
		vargs[2] = strings.Repeat("0", 64)
		code = run(vargs, bytes.NewReader(recsOut.Bytes()), &out, &stderr)
		require.Equal(t, exitMismatch, code)
		require.Equal(t, "INVALID\n", out.String())
	}
}

func TestRun_errors(t *testing.T) {
	t.Parallel()

	for name, args := range map[string][]string{
		"no command":      nil,
		"unknown command": {"frobnicate"},
		"missing root":    {"verify", "x.json"},
		"no path":         {"root"},
		"unknown key":     {"disclose", "-reveal", "nope", writeFile(t, "d.json", `{"a": "1"}`)},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			require.Equal(t, exitError, run(args, nil, &stdout, &stderr))
			require.NotEmpty(t, stderr.String())
		})
	}
}

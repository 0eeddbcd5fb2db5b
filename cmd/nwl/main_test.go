package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const homePage = `page:
  name: home
  children:
    - element: heading
      content: Hello
    - element: button
      content: Go
      onClick: doThing()
`

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nwl.yaml"), []byte("name: demo\ncss_theme: default\nroutes:\n  - path: /\n    page: home.yaml\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.yaml"), []byte(homePage), 0o644))
	return dir
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-01"

	out, err := executeCommand("version")
	require.NoError(t, err)
	require.Equal(t, "nwl 1.2.3 (commit abcdef1, built 2026-10-01)\n", out)
}

func TestBuildCommandWritesProject(t *testing.T) {
	t.Parallel()

	dir := writeProject(t)
	out, err := executeCommand("build", dir)
	require.NoError(t, err)

	require.Contains(t, out, "Building NWL project in "+dir)
	require.Contains(t, out, "Build successful! Routes generated automatically.")
	require.FileExists(t, filepath.Join(dir, "src", "home.tsx"))
	require.FileExists(t, filepath.Join(dir, "src", "main.tsx"))
	require.FileExists(t, filepath.Join(dir, "themes", "processed.css"))
}

func TestBuildCommandDryRunPrintsDiff(t *testing.T) {
	t.Parallel()

	dir := writeProject(t)
	out, err := executeCommand("build", dir, "--dry-run")
	require.NoError(t, err)

	require.Contains(t, out, "--- /dev/null")
	require.Contains(t, out, "+export default function Home() {")
	require.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestBuildCommandFailsWithoutConfig(t *testing.T) {
	t.Parallel()

	_, err := executeCommand("build", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "config not found")
}

func TestBuildCommandRejectsMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := executeCommand("build", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestBuildCommandStrictFailsOnUndeclaredBinding(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nwl.yaml"), []byte("name: demo\nroutes:\n  - path: /\n    page: home.yaml\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "home.yaml"), []byte("page:\n  name: home\n  children:\n    - element: input\n      bind: ghost\n"), 0o644))

	out, err := executeCommand("build", dir)
	require.NoError(t, err)
	require.Contains(t, out, `warning: page home: input references undeclared state "ghost"`)

	_, err = executeCommand("build", dir, "--strict")
	require.Error(t, err)
	require.Contains(t, err.Error(), "binding error")
}

func TestCompileCommandPrintsToStdout(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "home.yaml")
	require.NoError(t, os.WriteFile(file, []byte(homePage), 0o644))

	out, err := executeCommand("compile", file)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "import React from 'react';\n"))
	require.Contains(t, out, "onClick={() => doThing()}")
}

func TestCompileCommandWritesOutputAndDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "home.yaml")
	target := filepath.Join(dir, "Home.jsx")
	require.NoError(t, os.WriteFile(file, []byte(homePage), 0o644))

	out, err := executeCommand("compile", file, "-o", target)
	require.NoError(t, err)
	require.Contains(t, out, "Compiled to "+target)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(written), "export default function Home() {")

	require.NoError(t, os.WriteFile(file, []byte(strings.Replace(homePage, "Hello", "Bonjour", 1)), 0o644))
	out, err = executeCommand("compile", file, "-o", target, "--diff", "--dry-run")
	require.NoError(t, err)
	require.Contains(t, out, "-      <h1>Hello</h1>")
	require.Contains(t, out, "+      <h1>Bonjour</h1>")

	unchanged, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, written, unchanged)
}

func TestCompileCommandSplitsMultiPageDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(file, []byte("pages:\n  - name: home\n    children:\n      - element: text\n        content: one\n  - name: contact us\n    children:\n      - element: text\n        content: two\n"), 0o644))

	out, err := executeCommand("compile", file)
	require.NoError(t, err)
	require.Contains(t, out, "// home.tsx\n")
	require.Contains(t, out, "// contactus.tsx\n")

	outDir := filepath.Join(dir, "out")
	_, err = executeCommand("compile", file, "-o", outDir)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(outDir, "home.tsx"))
	require.FileExists(t, filepath.Join(outDir, "contactus.tsx"))
}

func TestCompileCommandValidatesFlags(t *testing.T) {
	t.Parallel()

	_, err := executeCommand("compile", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorContains(t, err, "does not exist")

	file := filepath.Join(t.TempDir(), "home.yaml")
	require.NoError(t, os.WriteFile(file, []byte(homePage), 0o644))
	_, err = executeCommand("compile", file, "--diff")
	require.ErrorContains(t, err, "--diff requires --output")
}

func TestNewCommandScaffoldsBlankProject(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	out, err := executeCommand("new", "shop", "--location", parent)
	require.NoError(t, err)

	require.Contains(t, out, "Next steps:")
	require.Contains(t, out, "npm install")
	require.Contains(t, out, "nwl dev")

	data, err := os.ReadFile(filepath.Join(parent, "shop", "nwl.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "name: shop")

	_, err = executeCommand("new", "shop", "--location", parent)
	require.ErrorContains(t, err, "not empty")
}

func TestCheckCommandVerifiesBuiltProject(t *testing.T) {
	t.Parallel()

	dir := writeProject(t)
	_, err := executeCommand("build", dir, "--no-check")
	require.NoError(t, err)

	out, err := executeCommand("check", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Check passed: 2 modules")
}

func TestRootRejectsUnknownLogFormat(t *testing.T) {
	t.Parallel()

	_, err := executeCommand("build", writeProject(t), "--log-format", "xml")
	require.ErrorContains(t, err, "unknown log format")
}

package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/project"
)

func TestCreateBlankProjectBuilds(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	created, err := New().Create(context.Background(), Options{Name: "demo-app", Location: parent})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(parent, "demo-app"), created.Dir)
	require.Equal(t, BlankTemplate, created.Template)
	require.Contains(t, created.Files, "nwl.yaml")
	require.Contains(t, created.Files, ".gitignore")
	require.Contains(t, created.Files, "pages/home.yaml")

	cfg, err := document.LoadProject(filepath.Join(created.Dir, "nwl.yaml"))
	require.NoError(t, err)
	require.Equal(t, "demo-app", cfg.Name)
	require.Len(t, cfg.Routes, 2)

	home, err := os.ReadFile(filepath.Join(created.Dir, "pages", "home.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(home), "Welcome to demo-app")
	require.NotContains(t, string(home), Placeholder)

	result, err := project.New().Build(context.Background(), created.Dir)
	require.NoError(t, err)
	_, ok := result.File("themes/processed.css")
	require.True(t, ok)
}

func TestCreateRefusesNonEmptyDirectory(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "site"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "site", "README.md"), []byte("keep"), 0o644))

	_, err := New().Create(context.Background(), Options{Name: "site", Location: parent})
	require.ErrorIs(t, err, ErrNotEmpty)

	data, err := os.ReadFile(filepath.Join(parent, "site", "README.md"))
	require.NoError(t, err)
	require.Equal(t, "keep", string(data))
}

func TestCreateAcceptsEmptyDirectory(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "site"), 0o755))

	_, err := New().Create(context.Background(), Options{Name: "site", Location: parent})
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(parent, "site", "nwl.yaml"))
}

func TestCreateRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "  ", ".", "..", "a/b", `a\b`} {
		_, err := New().Create(context.Background(), Options{Name: name, Location: t.TempDir()})
		require.Error(t, err, name)
	}
}

func TestCreateFromRemoteTemplate(t *testing.T) {
	t.Parallel()

	var got *git.CloneOptions
	fake := func(_ context.Context, dir string, opts *git.CloneOptions) error {
		got = opts
		if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref: refs/heads/main\n"), 0o644); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "nwl.yaml"), []byte("name: {PROJECT_NAME}\n"), 0o644)
	}

	parent := t.TempDir()
	created, err := New(WithCloner(fake)).Create(context.Background(), Options{
		Name:     "shop",
		Location: parent,
		Template: "https://example.com/nwl/starter.git",
		Branch:   "main",
	})
	require.NoError(t, err)

	require.Equal(t, "https://example.com/nwl/starter.git", got.URL)
	require.Equal(t, 1, got.Depth)
	require.True(t, got.SingleBranch)
	require.Equal(t, "refs/heads/main", got.ReferenceName.String())

	require.NoDirExists(t, filepath.Join(created.Dir, ".git"))
	data, err := os.ReadFile(filepath.Join(created.Dir, "nwl.yaml"))
	require.NoError(t, err)
	require.Equal(t, "name: shop\n", string(data))
	require.Equal(t, []string{"nwl.yaml"}, created.Files)
}

func TestCreateReportsCloneFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("network unreachable")
	_, err := New(WithCloner(func(context.Context, string, *git.CloneOptions) error { return boom })).
		Create(context.Background(), Options{Name: "x", Location: t.TempDir(), Template: "git@example.com:nwl/starter.git"})
	require.ErrorIs(t, err, boom)
}

func TestCreateClonesLocalRepository(t *testing.T) {
	t.Parallel()

	source := initGitRepo(t)
	parent := t.TempDir()

	created, err := New().Create(context.Background(), Options{Name: "local", Location: parent, Template: source})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(created.Dir, "nwl.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "name: local")
	require.NoDirExists(t, filepath.Join(created.Dir, ".git"))
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"https://github.com/org/repo.git": true,
		"ssh://git@github.com/org/repo":   true,
		"git@github.com:org/repo.git":     true,
		"file:///tmp/repo":                false,
		"/tmp/repo":                       false,
		"../templates/starter":            false,
	}
	for source, want := range cases {
		require.Equal(t, want, IsRemote(source), source)
	}
}

func initGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nwl.yaml"), []byte("name: {PROJECT_NAME}\nroutes:\n  - path: /\n    page: home.yaml\n"), 0o644))
	_, err = wt.Add("nwl.yaml")
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "NWL",
			Email: "nwl@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

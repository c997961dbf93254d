package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/easylog/internal/api"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/factory"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/suggest"
	"github.com/mcoot/easylog/internal/testutil"
)

type cliEnv struct {
	t         *testing.T
	serverURL string
	tokenFile string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	color.NoColor = true
	t.Setenv("HOME", t.TempDir())

	app := factory.NewTestApp()
	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		AuthService:    app.AuthService,
		Guard:          app.Guard,
		JournalService: app.JournalService,
		StorageType:    app.StorageType,
	}))
	t.Cleanup(server.Close)

	return &cliEnv{
		t:         t,
		serverURL: server.URL,
		tokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

func (e *cliEnv) runWithInput(stdin string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--server", e.serverURL, "--token-file", e.tokenFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *cliEnv) run(args ...string) (string, error) {
	return e.runWithInput("", args...)
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, out)
	return out
}

func (e *cliEnv) login() {
	e.t.Helper()
	e.mustRun("login", "--email", "anna@example.com", "--password", "pw")
}

func TestCLI_Health(t *testing.T) {
	e := newCLIEnv(t)

	out := e.mustRun("health")
	assert.Contains(t, out, "Status:")
	assert.Contains(t, out, "memory")
}

func TestCLI_LoginSavesToken(t *testing.T) {
	e := newCLIEnv(t)

	out := e.mustRun("--output", "json", "login", "--email", "anna@example.com", "--password", "pw")

	var sess response.SessionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &sess))
	assert.Equal(t, "anna", sess.User.Name)

	token, err := os.ReadFile(e.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, "dummy-jwt-token-1704110400000", string(token))
}

func TestCLI_WhoamiRequiresLogin(t *testing.T) {
	e := newCLIEnv(t)

	_, err := e.run("whoami")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)

	e.login()
	out := e.mustRun("whoami")
	assert.Contains(t, out, "anna@example.com")
	assert.Contains(t, out, "staff")
}

func TestCLI_Logout(t *testing.T) {
	e := newCLIEnv(t)
	e.login()

	out := e.mustRun("logout")
	assert.Contains(t, out, "Signed out")

	_, err := os.Stat(e.tokenFile)
	assert.True(t, os.IsNotExist(err))

	_, err = e.run("whoami")
	assert.Error(t, err)
}

func TestCLI_Entities(t *testing.T) {
	e := newCLIEnv(t)
	e.login()

	e.mustRun("entities", "add", "clients", "Acme")
	out := e.mustRun("entities", "list", "client")
	assert.Contains(t, out, "Clients")
	assert.Contains(t, out, "Default")
	assert.Contains(t, out, "(default)")
	assert.Contains(t, out, "Acme")

	out = e.mustRun("-o", "json", "entities", "list", "client")
	var list response.EntitiesResponse
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, []string{"Default", "Acme"}, list.Names)
}

func TestCLI_EntitiesUnknownCategory(t *testing.T) {
	e := newCLIEnv(t)

	_, err := e.run("entities", "list", "vendors")
	assert.Error(t, err)
}

func TestCLI_DeletePromptsForConfirmation(t *testing.T) {
	e := newCLIEnv(t)
	e.login()
	e.mustRun("entities", "add", "customer", "Big Co")

	out, err := e.runWithInput("n\n", "entities", "delete", "customer", "Big Co")
	require.NoError(t, err)
	assert.Contains(t, out, `Really delete customer "Big Co"?`)
	assert.Contains(t, out, "Cancelled")
	assert.Contains(t, e.mustRun("entities", "list", "customer"), "Big Co")

	out, err = e.runWithInput("y\n", "entities", "delete", "customer", "Big Co")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted "Big Co"`)
	assert.NotContains(t, e.mustRun("entities", "list", "customer"), "Big Co")
}

func TestCLI_DeleteDefaultRefusedWithoutPrompt(t *testing.T) {
	e := newCLIEnv(t)
	e.login()

	out, err := e.runWithInput("y\n", "entities", "delete", "customer", "DefaultCustomer")
	assert.ErrorIs(t, err, model.ErrDefaultEntityProtected)
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, e.mustRun("entities", "list", "customer"), "DefaultCustomer")
}

func TestCLI_Entries(t *testing.T) {
	e := newCLIEnv(t)
	e.login()

	out := e.mustRun("entries", "add", "client", "Default", "called", "the", "office")
	assert.Contains(t, out, "Added entry")

	out = e.mustRun("entries", "list", "client", "Default")
	assert.Contains(t, out, "called the office")
	assert.Contains(t, out, "anna")
	assert.Contains(t, out, "1.1.2024")
}

func TestCLI_Journal(t *testing.T) {
	e := newCLIEnv(t)
	e.login()
	e.mustRun("entries", "add", "customer", "DefaultCustomer", "hello")

	out := e.mustRun("journal", "customer", "DefaultCustomer")
	assert.Contains(t, out, "Clients")
	assert.Contains(t, out, "> DefaultCustomer")
	assert.Contains(t, out, "hello")

	out = e.mustRun("journal", "client", "Ghost")
	assert.Contains(t, out, `"Ghost" not found`)
	assert.Contains(t, out, "/journal/Default")
}

func TestCLI_JournalFollow(t *testing.T) {
	e := newCLIEnv(t)
	e.login()
	e.mustRun("entries", "add", "client", "Default", "on the default")

	out := e.mustRun("journal", "--follow", "client", "Ghost")
	assert.Contains(t, out, `"Ghost" not found, showing "Default"`)
	assert.Contains(t, out, "> Default")
	assert.Contains(t, out, "on the default")

	out = e.mustRun("--output", "json", "journal", "--follow", "client", "Ghost")
	var page JournalPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "ready", page.Resolution.State)
	assert.Equal(t, "Ghost", page.Resolution.Requested)
	assert.Equal(t, "/journal/Default", page.Resolution.RedirectTo)
	require.Len(t, page.Entries, 1)
}

func TestCLI_Suggest(t *testing.T) {
	e := newCLIEnv(t)
	e.login()

	out := e.mustRun("suggest", "Server", "was", "patched")
	assert.Contains(t, out, suggest.ServerHint)

	out = e.mustRun("suggest", "hi")
	assert.Contains(t, out, "No suggestion")
}

func TestCLI_Verbose(t *testing.T) {
	e := newCLIEnv(t)

	out := e.mustRun("-v", "health")
	assert.Contains(t, out, "GET "+e.serverURL+"/api/v1/health -> 200")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes ", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}
	for _, tt := range tests {
		var prompt bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &prompt, "Delete?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Delete? [y/N]: ", prompt.String())
	}
}

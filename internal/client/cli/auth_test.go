package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redsocial/redsocial-cli/internal/client/api"
	"github.com/redsocial/redsocial-cli/internal/client/repositories/localstore"
	"github.com/redsocial/redsocial-cli/internal/client/session"

	_ "modernc.org/sqlite"
)

type fakeAuth struct {
	token       string
	loginErr    error
	registerErr error

	lastEmail string
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (string, error) {
	f.lastEmail = email
	return f.token, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) error {
	f.lastEmail = email
	return f.registerErr
}

func newTestApp(t *testing.T, auth *fakeAuth, input string) (*App, *localstore.SessionStore) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE local_store (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	store := localstore.NewSessionStore(db)
	return &App{
		session: session.NewManager(auth, store),
		reader:  bufio.NewReader(strings.NewReader(input)),
	}, store
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = old })
}

func validToken(t *testing.T) string {
	t.Helper()
	return "h." + base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"a@b.com","exp":9999999999}`)) + ".s"
}

func TestLoginCommand_Success(t *testing.T) {
	fa := &fakeAuth{token: validToken(t)}
	app, store := newTestApp(t, fa, "a@b.com\n")
	stubPassword(t, "secret")

	require.NoError(t, app.Login(context.Background()))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "(a@b.com)", app.status())

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tok)
}

func TestLoginCommand_RejectionKeepsGuestState(t *testing.T) {
	fa := &fakeAuth{loginErr: &api.Error{StatusCode: 401, Message: "bad credentials"}}
	app, store := newTestApp(t, fa, "a@b.com\n")
	stubPassword(t, "wrong")

	err := app.Login(context.Background())
	require.Error(t, err)
	require.False(t, app.isLoggedIn())
	require.Equal(t, "(guest)", app.status())

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestRegisterCommand_DoesNotLogIn(t *testing.T) {
	fa := &fakeAuth{}
	app, store := newTestApp(t, fa, "new@b.com\n")
	stubPassword(t, "pw")

	require.NoError(t, app.Register(context.Background()))
	require.Equal(t, "new@b.com", fa.lastEmail)
	require.False(t, app.isLoggedIn())

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestLogoutCommand_ClearsSession(t *testing.T) {
	fa := &fakeAuth{token: validToken(t)}
	app, store := newTestApp(t, fa, "a@b.com\n")
	stubPassword(t, "pw")

	require.NoError(t, app.Login(context.Background()))
	require.NoError(t, app.Logout(context.Background()))
	require.False(t, app.isLoggedIn())

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, tok)

	// logging out twice is fine
	require.NoError(t, app.Logout(context.Background()))
}

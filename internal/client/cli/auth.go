package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/redsocial/redsocial-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to
// create a new account. Registration never logs the user in: the session
// is untouched even on success, and the user is told to log in next.
// The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, string(password)); err != nil {
		fmt.Println("Registration failed:", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session (token + user summary) is persisted by the session
// manager and the prompt switches to the logged-in email. On rejection
// the server's message is shown and nothing changes.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Println("Login failed:", err.Error())
		return err
	}

	a.email = email
	fmt.Println("Login successful")
	return nil
}

// Logout clears the stored session. Logging out while already logged out
// is fine and still reports success.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err.Error())
		return err
	}
	a.email = ""
	fmt.Println("Logged out")
	return nil
}

// Whoami prints the current session: cached email, the user identifier
// carried by the token, and whether the token is past its expiry.
func (a *App) Whoami(ctx context.Context) error {
	ok, err := a.session.IsAuthenticated(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Not logged in")
		return nil
	}

	user, err := a.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user != nil {
		fmt.Println("Email:", user.Email)
	}

	id, err := a.session.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	if id != "" {
		fmt.Println("User id (from token):", id)
	}

	expired, err := a.session.IsTokenExpired(ctx)
	if err != nil {
		return err
	}
	if expired {
		fmt.Println("Token: expired")
	} else {
		fmt.Println("Token: valid")
	}
	return nil
}

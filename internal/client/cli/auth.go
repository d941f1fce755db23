package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/ekuzmina/notekeeper/internal/client/remote"
	"github.com/ekuzmina/notekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account on the server.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.remote.Register(ctx, userName, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

// Login prompts the user for credentials and authenticates against the
// server. Authentication requires connectivity; when the server is
// unreachable the attempt fails and the user keeps working logged out.
//
// On success the session identity is set and a reconcile pass is kicked
// off to push any notes left dirty from a previous session and pull the
// server's copy.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ownerID, err := a.remote.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			log.Printf("Server unavailable, cannot log in")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.session.SetOwner(ownerID, userName)
	a.monitor.Probe(ctx)
	log.Printf("Login successful")

	if err := a.engine.Reconcile(ctx); err != nil {
		log.Printf("Initial sync failed: %s", err.Error())
	}
	return nil
}

// Logout purges the owner's locally cached notes, drops the remote
// tokens and clears the session identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.engine.HandleLogout(ctx); err != nil {
		return err
	}
	a.remote.Logout()
	a.session.Clear()
	return nil
}

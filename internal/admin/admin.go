// Package admin implements the operator commands behind cmd/admin.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/eduhub/eduhub/internal/flagx"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/services"
	"golang.org/x/term"
)

const usage = "usage: admin create-user -email E -first F -last L [-phone P]"

// ErrUsage is returned for an unknown command or missing flags.
var ErrUsage = errors.New(usage)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

// Signer is implemented by *services.AuthService.
type Signer interface {
	Signup(ctx context.Context, in models.NewUser) (*services.Session, error)
}

// Connector opens the backing store and returns a Signer over it together
// with the handle to release once the command is done.
type Connector func(ctx context.Context) (Signer, io.Closer, error)

type CreateUserOptions struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// ParseCreateUser reads the create-user flags. Flags it does not own, such
// as the server config flags, are ignored.
func ParseCreateUser(args []string) (CreateUserOptions, error) {
	var opts CreateUserOptions

	args = flagx.FilterArgs(args, []string{"-email", "-first", "-last", "-phone"})

	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Email, "email", "", "email of the new user")
	fs.StringVar(&opts.FirstName, "first", "", "first name")
	fs.StringVar(&opts.LastName, "last", "", "last name")
	fs.StringVar(&opts.Phone, "phone", "", "phone number (optional)")

	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if opts.Email == "" || opts.FirstName == "" || opts.LastName == "" {
		return opts, ErrUsage
	}
	return opts, nil
}

// GetPassword prompts on w and reads a password from the terminal without
// echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// CreateUser signs the user up and prints the new id and a token.
func CreateUser(ctx context.Context, svc Signer, opts CreateUserOptions, password string, w io.Writer) error {
	in := models.NewUser{
		FirstName: opts.FirstName,
		LastName:  opts.LastName,
		Email:     opts.Email,
		Password:  password,
	}
	if opts.Phone != "" {
		in.Phone = &opts.Phone
	}

	sess, err := svc.Signup(ctx, in)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(w, "Created user %d (%s)\n", sess.User.ID, sess.User.Email)
	fmt.Fprintf(w, "Token: %s\n", sess.Token)
	return nil
}

// Run dispatches args to a command. Input is validated and the password read
// before any connection is opened.
func Run(ctx context.Context, args []string, w io.Writer, connect Connector) error {
	if len(args) == 0 || args[0] != "create-user" {
		return ErrUsage
	}

	opts, err := ParseCreateUser(args[1:])
	if err != nil {
		return err
	}

	password, err := GetPassword(w)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password == "" || len(password) > maxPasswordBytes {
		return errors.New("password must be 1 to 72 bytes")
	}

	svc, closer, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	return CreateUser(ctx, svc, opts, password, w)
}

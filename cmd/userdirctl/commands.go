package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"userdir/internal/domain/entity"
	"userdir/internal/usecase"

	"github.com/pkg/errors"
)

// userView is the CLI output shape. The password hash never leaves the process.
type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Articles  []string  `json:"articles"`
	CreatedAt time.Time `json:"createdAt"`
}

func toView(user *entity.User) userView {
	articles := user.Articles
	if articles == nil {
		articles = []string{}
	}

	return userView{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		Articles:  articles,
		CreatedAt: user.CreatedAt,
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(v), "failed to encode output")
}

func runCommand(ctx context.Context, directory usecase.DirectoryUsecase, name string, args []string) error {
	switch name {
	case "create":
		return runCreate(ctx, directory, args)
	case "get":
		return runGet(ctx, directory, args)
	case "list":
		return runList(ctx, directory)
	case "delete":
		return runDelete(ctx, directory, args)
	case "attach":
		return runAttach(ctx, directory, args)
	case "login":
		return runLogin(ctx, directory, args)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func runCreate(ctx context.Context, directory usecase.DirectoryUsecase, args []string) error {
	cmd := newFlagSet("create")
	email := cmd.String("email", "", "Email address of the new account")
	username := cmd.String("username", "", "Alphanumeric username")
	password := cmd.String("password", "", "Account password")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	user, err := directory.Register(ctx, &usecase.RegisterInput{
		Email:    *email,
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	return printJSON(toView(user))
}

func runGet(ctx context.Context, directory usecase.DirectoryUsecase, args []string) error {
	cmd := newFlagSet("get")
	id := cmd.String("id", "", "Account identifier")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	user, err := directory.Get(ctx, *id)
	if err != nil {
		return err
	}

	return printJSON(toView(user))
}

func runList(ctx context.Context, directory usecase.DirectoryUsecase) error {
	users, err := directory.List(ctx)
	if err != nil {
		return err
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toView(user))
	}

	return printJSON(views)
}

func runDelete(ctx context.Context, directory usecase.DirectoryUsecase, args []string) error {
	cmd := newFlagSet("delete")
	id := cmd.String("id", "", "Account identifier")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	user, err := directory.Delete(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "deleted:")

	return printJSON(toView(user))
}

func runAttach(ctx context.Context, directory usecase.DirectoryUsecase, args []string) error {
	cmd := newFlagSet("attach")
	id := cmd.String("id", "", "Account identifier")
	article := cmd.String("article", "", "Article identifier to attach")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	user, err := directory.AttachArticle(ctx, *id, *article)
	if err != nil {
		return err
	}

	return printJSON(toView(user))
}

func runLogin(ctx context.Context, directory usecase.DirectoryUsecase, args []string) error {
	cmd := newFlagSet("login")
	email := cmd.String("email", "", "Email to authenticate with")
	username := cmd.String("username", "", "Username to authenticate with (used when -email is empty)")
	password := cmd.String("password", "", "Account password")
	if err := cmd.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	var user *entity.User
	var err error
	if *email != "" {
		user, err = directory.AuthenticateByEmail(ctx, *email, *password)
	} else {
		user, err = directory.AuthenticateByUsername(ctx, *username, *password)
	}
	if err != nil {
		return err
	}

	return printJSON(toView(user))
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// brainctl is a command-line consumer of the Brainly API: sign up, sign in,
// save and list links, and toggle the public share view.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/shivamkr082003/Brainly/internal/client"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	baseURL := os.Getenv("BRAINLY_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	c := client.New(baseURL)

	if token, err := loadToken(); err == nil && token != "" {
		c.SetToken(token)
	}

	ctx := context.Background()
	if err := run(ctx, c, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, cmd string, args []string) error {
	switch cmd {
	case "signup":
		return cmdSignup(ctx, c, args)
	case "signin":
		return cmdSignin(ctx, c, args)
	case "add":
		return cmdAdd(ctx, c, args)
	case "list":
		return cmdList(ctx, c)
	case "rm":
		return cmdRm(ctx, c, args)
	case "share":
		return cmdShare(ctx, c, args)
	case "view":
		return cmdView(ctx, c, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdSignup(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "display name")
	fs.Parse(args)
	if *email == "" || *name == "" {
		return fmt.Errorf("signup requires -email and -name")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	user, err := c.Signup(ctx, *email, password, *name)
	if err != nil {
		return err
	}
	fmt.Printf("Account created for %s <%s>. Run 'brainctl signin' next.\n", user.Name, user.Email)
	return nil
}

func cmdSignin(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	fs.Parse(args)
	if *email == "" {
		return fmt.Errorf("signin requires -email")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	token, user, err := c.Signin(ctx, *email, password)
	if err != nil {
		return err
	}
	if err := saveToken(token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Printf("Signed in as %s.\n", user.Name)
	return nil
}

func cmdAdd(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	link := fs.String("link", "", "URL to save")
	kind := fs.String("type", "link", "platform label (youtube, twitter, ...)")
	title := fs.String("title", "", "item title")
	fs.Parse(args)
	if *link == "" {
		return fmt.Errorf("add requires -link")
	}

	if err := c.AddContent(ctx, *link, *kind, *title); err != nil {
		return err
	}
	fmt.Println("Saved.")
	return nil
}

func cmdList(ctx context.Context, c *client.Client) error {
	items, err := c.ListContent(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No saved content.")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%s  [%s]  %s\n    %s\n", it.ID, it.Type, it.Title, it.Link)
	}
	return nil
}

func cmdRm(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: brainctl rm <content-id>")
	}
	if err := c.DeleteContent(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func cmdShare(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("usage: brainctl share on|off")
	}
	if args[0] == "off" {
		if err := c.DisableShare(ctx); err != nil {
			return err
		}
		fmt.Println("Sharing disabled.")
		return nil
	}
	hash, err := c.EnableShare(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Sharing enabled: /api/v1/brain/%s\n", hash)
	return nil
}

func cmdView(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: brainctl view <hash>")
	}
	brain, err := c.ViewBrain(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", brain.Name, brain.Email)
	for _, it := range brain.Content {
		fmt.Printf("  [%s]  %s\n      %s\n", it.Type, it.Title, it.Link)
	}
	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".brainctl"), nil
}

func saveToken(token string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

func loadToken() (string, error) {
	path, err := sessionPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: brainctl <command> [flags]

Commands:
  signup  -email <email> -name <name>   create an account
  signin  -email <email>                sign in and cache the token
  add     -link <url> [-type t] [-title s]  save a link
  list                                  list saved content
  rm      <content-id>                  delete an item
  share   on|off                        toggle the public share link
  view    <hash>                        view a shared brain (no auth)

Environment:
  BRAINLY_URL   API base URL (default http://localhost:8080)`)
}

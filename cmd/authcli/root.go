package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qd-authentication-gateway/internal/application"
	"qd-authentication-gateway/internal/config"
	"qd-authentication-gateway/internal/form"
	"qd-authentication-gateway/internal/google"
)

type cli struct {
	configPath string
	jsonOutput bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// overridden in tests
	readPassword func(prompt string) (string, error)
	newRunner    func(ctx context.Context) (*commandRunner, func(), error)
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	c := &cli{
		in:     in,
		out:    out,
		errOut: errOut,
	}
	c.readPassword = c.promptPassword
	c.newRunner = c.applicationRunner
	return c
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "authcli",
		Short: "Authenticate against Firebase with email/password or Google",
		Long: `authcli runs a single authentication operation and prints the user facing
result. It exits with status 1 when the operation fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "./", "directory holding config.<env>.yml")
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "print the operation result as JSON")
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.googleCommand(),
		c.logoutCommand(),
		c.resetCommand(),
	)
	return root
}

func (c *cli) registerCommand() *cobra.Command {
	var registration form.RegistrationForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.passwordUnlessSet(&registration.Password, "Password: "); err != nil {
				return err
			}
			if err := c.passwordUnlessSet(&registration.ConfirmPassword, "Confirm password: "); err != nil {
				return err
			}
			return c.withRunner(cmd.Context(), func(runner *commandRunner) error {
				return runner.register(cmd.Context(), registration)
			})
		},
	}
	cmd.Flags().StringVar(&registration.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "email address")
	cmd.Flags().StringVar(&registration.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().StringVar(&registration.ConfirmPassword, "confirm", "", "password confirmation (prompted when omitted)")
	return cmd
}

func (c *cli) loginCommand() *cobra.Command {
	var login form.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.passwordUnlessSet(&login.Password, "Password: "); err != nil {
				return err
			}
			return c.withRunner(cmd.Context(), func(runner *commandRunner) error {
				return runner.login(cmd.Context(), login)
			})
		},
	}
	cmd.Flags().StringVar(&login.Email, "email", "", "email address")
	cmd.Flags().StringVar(&login.Password, "password", "", "password (prompted when omitted)")
	return cmd
}

func (c *cli) googleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "google",
		Short: "Sign in with a Google account",
		Long: `Prints the Google consent URL and waits for the authorization code or the
full redirect URL. An empty answer cancels the sign-in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRunner(cmd.Context(), func(runner *commandRunner) error {
				return runner.loginWithGoogle(cmd.Context())
			})
		},
	}
}

func (c *cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of Firebase and Google",
		Long: `Signs out of Firebase and Google. Sessions are not persisted, so a session only
lives for one invocation and running logout on its own always succeeds without
contacting either provider.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRunner(cmd.Context(), func(runner *commandRunner) error {
				return runner.logout(cmd.Context())
			})
		},
	}
}

func (c *cli) resetCommand() *cobra.Command {
	var reset form.PasswordResetForm
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Send a password reset email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRunner(cmd.Context(), func(runner *commandRunner) error {
				return runner.resetPassword(cmd.Context(), reset)
			})
		},
	}
	cmd.Flags().StringVar(&reset.Email, "email", "", "email address")
	return cmd
}

func (c *cli) withRunner(ctx context.Context, operation func(runner *commandRunner) error) error {
	runner, closeRunner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer closeRunner()
	return operation(runner)
}

func (c *cli) applicationRunner(ctx context.Context) (*commandRunner, func(), error) {
	var configurations config.Config
	if err := configurations.Load(c.configPath); err != nil {
		return nil, nil, fmt.Errorf("Error loading configuration: %w", err)
	}
	app, err := application.NewApplication(ctx, &configurations, google.NewPromptCodeSource(c.in, c.out))
	if err != nil {
		return nil, nil, fmt.Errorf("Error creating application: %w", err)
	}
	return &commandRunner{
		service:    app.AuthenticationService(),
		validator:  app.Validator(),
		out:        c.out,
		jsonOutput: c.jsonOutput,
	}, app.Close, nil
}

func (c *cli) passwordUnlessSet(password *string, prompt string) error {
	if *password != "" {
		return nil
	}
	value, err := c.readPassword(prompt)
	if err != nil {
		return err
	}
	*password = value
	return nil
}

// promptPassword reads without echo from a terminal, or a single line otherwise
func (c *cli) promptPassword(prompt string) (string, error) {
	fmt.Fprint(c.errOut, prompt)
	if file, ok := c.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		password, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(c.errOut)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

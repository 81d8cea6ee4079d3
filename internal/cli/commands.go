package cli

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/identitytoolkit/pkg/identitytoolkit"
)

// ============================================================================
// signup
// ============================================================================

type SignUpCommand struct {
	*Command

	flagEmail       string
	flagPassword    string
	flagDisplayName string
}

func (c *SignUpCommand) Synopsis() string {
	return "Create an account"
}

func (c *SignUpCommand) Help() string {
	return `Usage: idtk signup [options]

  Creates a new account. Without -email and -password the account is
  anonymous.` + c.Flags().Help()
}

func (c *SignUpCommand) Flags() *FlagSet {
	f := c.newFlagSet("signup")
	f.StringVar(&c.flagEmail, "email", "", "Email address of the new account.")
	f.StringVar(&c.flagPassword, "password", "", "Password of the new account.")
	f.StringVar(&c.flagDisplayName, "display-name", "", "Display name of the new account.")
	return f
}

func (c *SignUpCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		return a.SignUp(ctx, identitytoolkit.SignUpRequest{
			Email:       optional(c.flagEmail),
			Password:    optional(c.flagPassword),
			DisplayName: optional(c.flagDisplayName),
		})
	})
}

// ============================================================================
// signin-password
// ============================================================================

type SignInPasswordCommand struct {
	*Command

	flagEmail    string
	flagPassword string
	flagTenantID string
}

func (c *SignInPasswordCommand) Synopsis() string {
	return "Sign in with email and password"
}

func (c *SignInPasswordCommand) Help() string {
	return `Usage: idtk signin-password -email <email> -password <password> [options]

  Signs in with an email and password and prints the ID and refresh tokens.` +
		c.Flags().Help()
}

func (c *SignInPasswordCommand) Flags() *FlagSet {
	f := c.newFlagSet("signin-password")
	f.StringVar(&c.flagEmail, "email", "", "(Required) Email address.")
	f.StringVar(&c.flagPassword, "password", "", "(Required) Password.")
	f.StringVar(&c.flagTenantID, "tenant-id", "", "Tenant the account belongs to.")
	return f
}

func (c *SignInPasswordCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		if c.flagEmail == "" || c.flagPassword == "" {
			return nil, errors.New("email and password flags are required")
		}
		return a.SignInWithPassword(ctx, identitytoolkit.SignInWithPasswordRequest{
			Email:    c.flagEmail,
			Password: c.flagPassword,
			TenantID: optional(c.flagTenantID),
		})
	})
}

// ============================================================================
// signin-custom-token
// ============================================================================

type SignInCustomTokenCommand struct {
	*Command

	flagCustomToken string
	flagTenantID    string
}

func (c *SignInCustomTokenCommand) Synopsis() string {
	return "Exchange a custom token for ID and refresh tokens"
}

func (c *SignInCustomTokenCommand) Help() string {
	return `Usage: idtk signin-custom-token -custom-token <token> [options]

  Exchanges a custom token minted by a backend for an ID and refresh token.` +
		c.Flags().Help()
}

func (c *SignInCustomTokenCommand) Flags() *FlagSet {
	f := c.newFlagSet("signin-custom-token")
	f.StringVar(&c.flagCustomToken, "custom-token", "", "(Required) Custom token.")
	f.StringVar(&c.flagTenantID, "tenant-id", "", "Tenant the account belongs to.")
	return f
}

func (c *SignInCustomTokenCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		if c.flagCustomToken == "" {
			return nil, errors.New("custom-token flag is required")
		}
		return a.SignInWithCustomToken(ctx, identitytoolkit.SignInWithCustomTokenRequest{
			Token:    c.flagCustomToken,
			TenantID: optional(c.flagTenantID),
		})
	})
}

// ============================================================================
// lookup
// ============================================================================

type LookupCommand struct {
	*Command

	flagIDToken  string
	flagLocalIDs string
	flagEmails   string
}

func (c *LookupCommand) Synopsis() string {
	return "Look up accounts"
}

func (c *LookupCommand) Help() string {
	return `Usage: idtk lookup [options]

  Looks up the account of -id-token, or accounts by -local-id or -email.
  Looking up by local id or email needs an admin credential.` + c.Flags().Help()
}

func (c *LookupCommand) Flags() *FlagSet {
	f := c.newFlagSet("lookup")
	f.StringVar(&c.flagIDToken, "id-token", "", "ID token of the account.")
	f.StringVar(&c.flagLocalIDs, "local-id", "", "Comma separated local ids.")
	f.StringVar(&c.flagEmails, "email", "", "Comma separated email addresses.")
	return f
}

func (c *LookupCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		req := identitytoolkit.LookupRequest{
			IDToken: optional(c.flagIDToken),
			LocalID: splitList(c.flagLocalIDs),
			Email:   splitList(c.flagEmails),
		}
		if req.IDToken == nil && len(req.LocalID) == 0 && len(req.Email) == 0 {
			return nil, errors.New("one of id-token, local-id or email is required")
		}
		return a.Lookup(ctx, req)
	})
}

// ============================================================================
// delete
// ============================================================================

type DeleteCommand struct {
	*Command

	flagIDToken string
	flagLocalID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete an account"
}

func (c *DeleteCommand) Help() string {
	return `Usage: idtk delete [options]

  Deletes the account of -id-token, or the account -local-id with an admin
  credential.` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *FlagSet {
	f := c.newFlagSet("delete")
	f.StringVar(&c.flagIDToken, "id-token", "", "ID token of the account.")
	f.StringVar(&c.flagLocalID, "local-id", "", "Local id of the account.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		if c.flagIDToken == "" && c.flagLocalID == "" {
			return nil, errors.New("one of id-token or local-id is required")
		}
		return a.DeleteAccount(ctx, identitytoolkit.DeleteAccountRequest{
			IDToken: optional(c.flagIDToken),
			LocalID: optional(c.flagLocalID),
		})
	})
}

// ============================================================================
// send-oob-code
// ============================================================================

type SendOobCodeCommand struct {
	*Command

	flagType        string
	flagEmail       string
	flagIDToken     string
	flagContinueURL string
	flagReturnLink  bool
}

func (c *SendOobCodeCommand) Synopsis() string {
	return "Send a password reset, sign-in or verification email"
}

func (c *SendOobCodeCommand) Help() string {
	return `Usage: idtk send-oob-code -type <type> [options]

  Sends an out-of-band code by email. -type is one of PASSWORD_RESET,
  EMAIL_SIGNIN, VERIFY_EMAIL or VERIFY_AND_CHANGE_EMAIL. With -return-link the
  link is printed instead of sent, which needs an admin credential.` +
		c.Flags().Help()
}

func (c *SendOobCodeCommand) Flags() *FlagSet {
	f := c.newFlagSet("send-oob-code")
	f.StringVar(&c.flagType, "type", string(identitytoolkit.OobReqTypePasswordReset), "Request type.")
	f.StringVar(&c.flagEmail, "email", "", "Email address to send to.")
	f.StringVar(&c.flagIDToken, "id-token", "", "ID token, for VERIFY_EMAIL.")
	f.StringVar(&c.flagContinueURL, "continue-url", "", "URL to continue to after the action.")
	f.BoolVar(&c.flagReturnLink, "return-link", false, "Return the link instead of sending it.")
	return f
}

func (c *SendOobCodeCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		req := identitytoolkit.SendOobCodeRequest{
			RequestType: identitytoolkit.OobReqType(c.flagType),
			Email:       optional(c.flagEmail),
			IDToken:     optional(c.flagIDToken),
			ContinueURL: optional(c.flagContinueURL),
		}
		if c.flagReturnLink {
			req.ReturnOobLink = identitytoolkit.Bool(true)
		}
		return a.SendOobCode(ctx, req)
	})
}

// ============================================================================
// reset-password
// ============================================================================

type ResetPasswordCommand struct {
	*Command

	flagOobCode     string
	flagNewPassword string
}

func (c *ResetPasswordCommand) Synopsis() string {
	return "Apply or inspect a password reset code"
}

func (c *ResetPasswordCommand) Help() string {
	return `Usage: idtk reset-password -oob-code <code> [options]

  Applies a password reset code. Without -new-password the code is only
  checked and the email it belongs to is printed.` + c.Flags().Help()
}

func (c *ResetPasswordCommand) Flags() *FlagSet {
	f := c.newFlagSet("reset-password")
	f.StringVar(&c.flagOobCode, "oob-code", "", "(Required) Code from the reset email.")
	f.StringVar(&c.flagNewPassword, "new-password", "", "New password.")
	return f
}

func (c *ResetPasswordCommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		if c.flagOobCode == "" {
			return nil, errors.New("oob-code flag is required")
		}
		return a.ResetPassword(ctx, identitytoolkit.ResetPasswordRequest{
			OobCode:     optional(c.flagOobCode),
			NewPassword: optional(c.flagNewPassword),
		})
	})
}

// ============================================================================
// create-auth-uri
// ============================================================================

type CreateAuthURICommand struct {
	*Command

	flagIdentifier  string
	flagContinueURI string
	flagProviderID  string
}

func (c *CreateAuthURICommand) Synopsis() string {
	return "List sign-in methods or get a provider auth URI"
}

func (c *CreateAuthURICommand) Help() string {
	return `Usage: idtk create-auth-uri -continue-uri <uri> [options]

  With -identifier, lists the sign-in methods registered for an email. With
  -provider-id, returns the URI to start a federated sign-in.` +
		c.Flags().Help()
}

func (c *CreateAuthURICommand) Flags() *FlagSet {
	f := c.newFlagSet("create-auth-uri")
	f.StringVar(&c.flagIdentifier, "identifier", "", "Email address.")
	f.StringVar(&c.flagContinueURI, "continue-uri", "http://localhost", "Redirect URI.")
	f.StringVar(&c.flagProviderID, "provider-id", "", "Identity provider, e.g. google.com.")
	return f
}

func (c *CreateAuthURICommand) Run(args []string) int {
	return c.execute(args, c.Flags(), func(ctx context.Context, a *identitytoolkit.AccountsService) (any, error) {
		return a.CreateAuthURI(ctx, identitytoolkit.CreateAuthURIRequest{
			Identifier:  optional(c.flagIdentifier),
			ContinueURI: optional(c.flagContinueURI),
			ProviderID:  optional(c.flagProviderID),
		})
	})
}

// ============================================================================
// version
// ============================================================================

type VersionCommand struct {
	*Command
}

func (c *VersionCommand) Synopsis() string {
	return "Print the version"
}

func (c *VersionCommand) Help() string {
	return "Usage: idtk version"
}

func (c *VersionCommand) Run(args []string) int {
	c.UI.Output("idtk " + Version)
	return 0
}

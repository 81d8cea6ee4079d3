package identitytoolkit

import (
	"context"
	"net/http"
)

// Header names used by individual operations.
const (
	HeaderFirebaseLocale = "X-Firebase-Locale"
	HeaderIOSBundleID    = "x-ios-bundle-identifier"
	accountsPathPrefix   = "/v1/accounts:"
)

// AccountsService groups the accounts:* operations. It holds no state of its
// own; every method issues exactly one POST and performs no validation, so
// malformed input surfaces as a KindRemote error from the service.
type AccountsService struct {
	r *requester
}

func accountsPath(op string) string {
	return accountsPathPrefix + op
}

func localeHeader(locale string) map[string]string {
	if locale == "" {
		return nil
	}
	return map[string]string{HeaderFirebaseLocale: locale}
}

func bundleIDHeader(bundleID string) map[string]string {
	return map[string]string{HeaderIOSBundleID: bundleID}
}

// SendVerificationCode sends an SMS verification code for phone sign-in.
// Locale, when set, localizes the SMS text.
func (s *AccountsService) SendVerificationCode(
	ctx context.Context,
	req SendVerificationCodeRequest,
) (*SendVerificationCodeResponse, error) {
	return send[SendVerificationCodeResponse](ctx, s.r, http.MethodPost,
		accountsPath("sendVerificationCode"), localeHeader(req.Locale), req)
}

// SendOobCode sends an out-of-band code for email sign-in, password reset
// or email verification.
func (s *AccountsService) SendOobCode(ctx context.Context, req SendOobCodeRequest) (*SendOobCodeResponse, error) {
	return send[SendOobCodeResponse](ctx, s.r, http.MethodPost, accountsPath("sendOobCode"), nil, req)
}

// CreateAuthURI returns the provider auth URI for a federated sign-in, or
// the sign-in methods registered for an email.
func (s *AccountsService) CreateAuthURI(ctx context.Context, req CreateAuthURIRequest) (*CreateAuthURIResponse, error) {
	return send[CreateAuthURIResponse](ctx, s.r, http.MethodPost, accountsPath("createAuthUri"), nil, req)
}

// DeleteAccount deletes the account identified by IDToken, or by LocalID
// when called with an admin credential.
func (s *AccountsService) DeleteAccount(ctx context.Context, req DeleteAccountRequest) (*DeleteAccountResponse, error) {
	return send[DeleteAccountResponse](ctx, s.r, http.MethodPost, accountsPath("delete"), nil, req)
}

// IssueSamlResponse issues a SAML response for the user in IDToken.
func (s *AccountsService) IssueSamlResponse(
	ctx context.Context,
	req IssueSamlResponseRequest,
) (*IssueSamlResponseResponse, error) {
	return send[IssueSamlResponseResponse](ctx, s.r, http.MethodPost, accountsPath("issueSamlResponse"), nil, req)
}

// Lookup returns account information.
func (s *AccountsService) Lookup(ctx context.Context, req LookupRequest) (*LookupResponse, error) {
	return send[LookupResponse](ctx, s.r, http.MethodPost, accountsPath("lookup"), nil, req)
}

// ResetPassword applies a password reset code, or inspects it when no new
// password is given.
func (s *AccountsService) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*ResetPasswordResponse, error) {
	return send[ResetPasswordResponse](ctx, s.r, http.MethodPost, accountsPath("resetPassword"), nil, req)
}

// SignInWithCustomToken exchanges a custom token for an ID and refresh token.
// ReturnSecureToken defaults to true.
func (s *AccountsService) SignInWithCustomToken(
	ctx context.Context,
	req SignInWithCustomTokenRequest,
) (*SignInWithCustomTokenResponse, error) {
	if req.ReturnSecureToken == nil {
		req.ReturnSecureToken = Bool(true)
	}
	return send[SignInWithCustomTokenResponse](ctx, s.r, http.MethodPost,
		accountsPath("signInWithCustomToken"), nil, req)
}

// SignInWithEmailLink signs in with an EMAIL_SIGNIN out-of-band code.
func (s *AccountsService) SignInWithEmailLink(
	ctx context.Context,
	req SignInWithEmailLinkRequest,
) (*SignInWithEmailLinkResponse, error) {
	return send[SignInWithEmailLinkResponse](ctx, s.r, http.MethodPost,
		accountsPath("signInWithEmailLink"), nil, req)
}

// SignInWithGameCenter signs in with an iOS Game Center credential. BundleID
// is sent as the x-ios-bundle-identifier header.
func (s *AccountsService) SignInWithGameCenter(
	ctx context.Context,
	req SignInWithGameCenterRequest,
) (*SignInWithGameCenterResponse, error) {
	return send[SignInWithGameCenterResponse](ctx, s.r, http.MethodPost,
		accountsPath("signInWithGameCenter"), bundleIDHeader(req.BundleID), req)
}

// SignInWithIdp signs in with an identity provider credential.
// ReturnSecureToken defaults to true.
func (s *AccountsService) SignInWithIdp(ctx context.Context, req SignInWithIdpRequest) (*SignInWithIdpResponse, error) {
	if req.ReturnSecureToken == nil {
		req.ReturnSecureToken = Bool(true)
	}
	return send[SignInWithIdpResponse](ctx, s.r, http.MethodPost, accountsPath("signInWithIdp"), nil, req)
}

// SignInWithPassword signs in with email and password. ReturnSecureToken
// defaults to true.
func (s *AccountsService) SignInWithPassword(
	ctx context.Context,
	req SignInWithPasswordRequest,
) (*SignInWithPasswordResponse, error) {
	if req.ReturnSecureToken == nil {
		req.ReturnSecureToken = Bool(true)
	}
	return send[SignInWithPasswordResponse](ctx, s.r, http.MethodPost,
		accountsPath("signInWithPassword"), nil, req)
}

// SignInWithPhoneNumber completes a phone sign-in with the SMS code or a
// temporary proof. Locale, when set, is sent as X-Firebase-Locale.
func (s *AccountsService) SignInWithPhoneNumber(
	ctx context.Context,
	req SignInWithPhoneNumberRequest,
) (*SignInWithPhoneNumberResponse, error) {
	return send[SignInWithPhoneNumberResponse](ctx, s.r, http.MethodPost,
		accountsPath("signInWithPhoneNumber"), localeHeader(req.Locale), req)
}

// SignUp creates a new account, anonymous when no email, password or phone
// number is given.
func (s *AccountsService) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	return send[SignUpResponse](ctx, s.r, http.MethodPost, accountsPath("signUp"), nil, req)
}

// Update changes account attributes.
func (s *AccountsService) Update(ctx context.Context, req UpdateAccountRequest) (*UpdateAccountResponse, error) {
	return send[UpdateAccountResponse](ctx, s.r, http.MethodPost, accountsPath("update"), nil, req)
}

// VerifyIosClient verifies an iOS client is a real device. BundleID is sent
// as the x-ios-bundle-identifier header.
func (s *AccountsService) VerifyIosClient(
	ctx context.Context,
	req VerifyIosClientRequest,
) (*VerifyIosClientResponse, error) {
	return send[VerifyIosClientResponse](ctx, s.r, http.MethodPost,
		accountsPath("verifyIosClient"), bundleIDHeader(req.BundleID), req)
}

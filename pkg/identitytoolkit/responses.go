package identitytoolkit

// Response records. ExpiresIn values are decimal seconds encoded as strings,
// as the service sends them.

// ============================================================================
// Phone
// ============================================================================

// SendVerificationCodeResponse is returned by accounts:sendVerificationCode.
type SendVerificationCodeResponse struct {
	// SessionInfo is passed to SignInWithPhoneNumber with the SMS code
	SessionInfo string `json:"sessionInfo"`
}

// SignInWithPhoneNumberResponse is returned by accounts:signInWithPhoneNumber.
type SignInWithPhoneNumberResponse struct {
	IDToken                    string `json:"idToken,omitempty"`
	RefreshToken               string `json:"refreshToken,omitempty"`
	ExpiresIn                  string `json:"expiresIn,omitempty"`
	LocalID                    string `json:"localId,omitempty"`
	IsNewUser                  bool   `json:"isNewUser,omitempty"`
	TemporaryProof             string `json:"temporaryProof,omitempty"`
	PhoneNumber                string `json:"phoneNumber"`
	TemporaryProofExpiresIn    string `json:"temporaryProofExpiresIn,omitempty"`
	VerificationProof          string `json:"verificationProof,omitempty"`
	VerificationProofExpiresIn string `json:"verificationProofExpiresIn,omitempty"`
}

// ============================================================================
// Email / OOB
// ============================================================================

// SendOobCodeResponse is returned by accounts:sendOobCode.
type SendOobCodeResponse struct {
	Email string `json:"email"`

	// OobCode and OobLink are only returned when ReturnOobLink was set
	OobCode string `json:"oobCode,omitempty"`
	OobLink string `json:"oobLink,omitempty"`
}

// SignInWithEmailLinkResponse is returned by accounts:signInWithEmailLink.
type SignInWithEmailLinkResponse struct {
	IDToken              string          `json:"idToken"`
	Email                string          `json:"email"`
	RefreshToken         string          `json:"refreshToken"`
	ExpiresIn            string          `json:"expiresIn"`
	LocalID              string          `json:"localId"`
	IsNewUser            bool            `json:"isNewUser"`
	MfaPendingCredential string          `json:"mfaPendingCredential,omitempty"`
	MfaInfo              []MfaEnrollment `json:"mfaInfo,omitempty"`
	Kind                 string          `json:"kind,omitempty"`
}

// ResetPasswordResponse is returned by accounts:resetPassword.
type ResetPasswordResponse struct {
	Email       string         `json:"email,omitempty"`
	NewEmail    string         `json:"newEmail,omitempty"`
	RequestType OobReqType     `json:"requestType,omitempty"`
	MfaInfo     *MfaEnrollment `json:"mfaInfo,omitempty"`
	Kind        string         `json:"kind,omitempty"`
}

// ============================================================================
// Federated / Custom
// ============================================================================

// CreateAuthURIResponse is returned by accounts:createAuthUri.
type CreateAuthURIResponse struct {
	AuthURI             string   `json:"authUri,omitempty"`
	Registered          bool     `json:"registered,omitempty"`
	ProviderID          string   `json:"providerId,omitempty"`
	ForExistingProvider bool     `json:"forExistingProvider,omitempty"`
	CaptchaRequired     bool     `json:"captchaRequired,omitempty"`
	SessionID           string   `json:"sessionId,omitempty"`
	SigninMethods       []string `json:"signinMethods,omitempty"`
	Kind                string   `json:"kind,omitempty"`
	AllProviders        []string `json:"allProviders,omitempty"`
}

// SignInWithIdpResponse is returned by accounts:signInWithIdp.
type SignInWithIdpResponse struct {
	FederatedID   string `json:"federatedId"`
	ProviderID    string `json:"providerId"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"emailVerified,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	FullName      string `json:"fullName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	NickName      string `json:"nickName,omitempty"`
	Language      string `json:"language,omitempty"`
	TimeZone      string `json:"timeZone,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	OriginalEmail string `json:"originalEmail,omitempty"`
	LocalID       string `json:"localId"`
	EmailRecycled bool   `json:"emailRecycled,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	IDToken       string `json:"idToken"`

	// Context echoes CreateAuthURIRequest.Context
	Context          string   `json:"context,omitempty"`
	VerifiedProvider []string `json:"verifiedProvider,omitempty"`
	NeedConfirmation bool     `json:"needConfirmation,omitempty"`

	OauthAccessToken       string `json:"oauthAccessToken,omitempty"`
	OauthRefreshToken      string `json:"oauthRefreshToken,omitempty"`
	OauthExpireIn          int    `json:"oauthExpireIn,omitempty"`
	OauthAuthorizationCode string `json:"oauthAuthorizationCode,omitempty"`
	OauthTokenSecret       string `json:"oauthTokenSecret,omitempty"`
	OauthIDToken           string `json:"oauthIdToken,omitempty"`

	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    string `json:"expiresIn,omitempty"`
	ScreenName   string `json:"screenName,omitempty"`
	RawUserInfo  string `json:"rawUserInfo,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	IsNewUser    bool   `json:"isNewUser,omitempty"`
	PendingToken string `json:"pendingToken,omitempty"`
	TenantID     string `json:"tenantId,omitempty"`

	MfaPendingCredential string          `json:"mfaPendingCredential,omitempty"`
	MfaInfo              []MfaEnrollment `json:"mfaInfo,omitempty"`

	InputEmail string `json:"inputEmail,omitempty"`
	NeedEmail  bool   `json:"needEmail,omitempty"`
	Kind       string `json:"kind,omitempty"`
}

// SignInWithCustomTokenResponse is returned by accounts:signInWithCustomToken.
type SignInWithCustomTokenResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	IsNewUser    bool   `json:"isNewUser"`
	Kind         string `json:"kind,omitempty"`
}

// SignInWithGameCenterResponse is returned by accounts:signInWithGameCenter.
type SignInWithGameCenterResponse struct {
	LocalID      string `json:"localId"`
	PlayerID     string `json:"playerId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	IsNewUser    bool   `json:"isNewUser"`
	DisplayName  string `json:"displayName,omitempty"`
	TeamPlayerID string `json:"teamPlayerId,omitempty"`
	GamePlayerID string `json:"gamePlayerId,omitempty"`
}

// ============================================================================
// Password
// ============================================================================

// SignInWithPasswordResponse is returned by accounts:signInWithPassword.
type SignInWithPasswordResponse struct {
	LocalID        string `json:"localId"`
	Email          string `json:"email"`
	DisplayName    string `json:"displayName,omitempty"`
	IDToken        string `json:"idToken"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	RefreshToken   string `json:"refreshToken,omitempty"`
	ExpiresIn      string `json:"expiresIn,omitempty"`

	// MfaPendingCredential is set instead of IDToken when a second factor is
	// required
	MfaPendingCredential string             `json:"mfaPendingCredential,omitempty"`
	MfaInfo              []MfaEnrollment    `json:"mfaInfo,omitempty"`
	UserNotifications    []UserNotification `json:"userNotifications,omitempty"`

	Kind                   string `json:"kind,omitempty"`
	Registered             bool   `json:"registered,omitempty"`
	OauthAccessToken       string `json:"oauthAccessToken,omitempty"`
	OauthExpireIn          int    `json:"oauthExpireIn,omitempty"`
	OauthAuthorizationCode string `json:"oauthAuthorizationCode,omitempty"`
}

// SignUpResponse is returned by accounts:signUp.
type SignUpResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    string `json:"expiresIn,omitempty"`
	Kind         string `json:"kind,omitempty"`
}

// ============================================================================
// Account Management
// ============================================================================

// LookupResponse is returned by accounts:lookup.
type LookupResponse struct {
	Users []UserInfo `json:"users,omitempty"`
	Kind  string     `json:"kind,omitempty"`
}

// DeleteAccountResponse is returned by accounts:delete.
type DeleteAccountResponse struct {
	Kind string `json:"kind,omitempty"`
}

// UpdateAccountResponse is returned by accounts:update.
type UpdateAccountResponse struct {
	DisplayName   string `json:"displayName,omitempty"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"emailVerified,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	PasswordHash  string `json:"passwordHash,omitempty"`
	Salt          string `json:"salt,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	LastLoginAt   string `json:"lastLoginAt,omitempty"`
	IDToken       string `json:"idToken,omitempty"`
	RefreshToken  string `json:"refreshToken,omitempty"`
	ExpiresIn     string `json:"expiresIn,omitempty"`
	LocalID       string `json:"localId,omitempty"`
	Kind          string `json:"kind,omitempty"`

	ProviderUserInfo []ProviderUserInfo `json:"providerUserInfo,omitempty"`
}

// ============================================================================
// SAML / iOS
// ============================================================================

// IssueSamlResponseResponse is returned by accounts:issueSamlResponse.
type IssueSamlResponseResponse struct {
	SamlResponse string `json:"samlResponse"`
	AcsEndpoint  string `json:"acsEndpoint"`
	RelayState   string `json:"relayState,omitempty"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	IsNewUser    bool   `json:"isNewUser"`
}

// VerifyIosClientResponse is returned by accounts:verifyIosClient.
type VerifyIosClientResponse struct {
	Receipt string `json:"receipt"`

	// SuggestedTimeout is in seconds
	SuggestedTimeout string `json:"suggestedTimeout"`
}

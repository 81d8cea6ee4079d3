package identitytoolkit

// Request records. Required fields are plain values; optional fields are
// pointers, slices or maps and are omitted from the body when unset. Fields
// tagged `json:"-"` are sent as headers instead.

// ============================================================================
// Phone
// ============================================================================

// SendVerificationCodeRequest is the body of accounts:sendVerificationCode.
type SendVerificationCodeRequest struct {
	// PhoneNumber in E.164 format
	PhoneNumber string `json:"phoneNumber"`

	// IosReceipt is the receipt of a successful iOS app token validation
	IosReceipt *string `json:"iosReceipt,omitempty"`

	// IosSecret is the secret delivered to the iOS app as a push notification
	IosSecret *string `json:"iosSecret,omitempty"`

	RecaptchaToken    *string            `json:"recaptchaToken,omitempty"`
	TenantID          *string            `json:"tenantId,omitempty"`
	AutoRetrievalInfo *AutoRetrievalInfo `json:"autoRetrievalInfo,omitempty"`

	// SafetyNetToken and PlayIntegrityToken are Android-only alternatives to
	// a reCAPTCHA token
	SafetyNetToken     *string `json:"safetyNetToken,omitempty"`
	PlayIntegrityToken *string `json:"playIntegrityToken,omitempty"`

	// CaptchaResponse is a reCAPTCHA Enterprise token
	CaptchaResponse  *string           `json:"captchaResponse,omitempty"`
	ClientType       *ClientType       `json:"clientType,omitempty"`
	RecaptchaVersion *RecaptchaVersion `json:"recaptchaVersion,omitempty"`

	// Locale localizes the SMS text, sent as X-Firebase-Locale.
	Locale string `json:"-"`
}

// SignInWithPhoneNumberRequest is the body of accounts:signInWithPhoneNumber.
type SignInWithPhoneNumberRequest struct {
	// SessionInfo is the value returned by SendVerificationCode
	SessionInfo *string `json:"sessionInfo,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`

	// Code is the SMS code the user entered
	Code           *string `json:"code,omitempty"`
	TemporaryProof *string `json:"temporaryProof,omitempty"`
	IDToken        *string `json:"idToken,omitempty"`
	TenantID       *string `json:"tenantId,omitempty"`

	// Deprecated: no longer read by the service.
	VerificationProof *string `json:"verificationProof,omitempty"`

	// Deprecated: no longer read by the service.
	Operation *VerifyOp `json:"operation,omitempty"`

	// Locale is sent as X-Firebase-Locale.
	Locale string `json:"-"`
}

// ============================================================================
// Email / OOB
// ============================================================================

// SendOobCodeRequest is the body of accounts:sendOobCode.
type SendOobCodeRequest struct {
	RequestType OobReqType `json:"requestType"`

	Email *string `json:"email,omitempty"`

	// CaptchaResp is required for PASSWORD_RESET from untrusted callers
	CaptchaResp *string `json:"captchaResp,omitempty"`
	UserIP      *string `json:"userIp,omitempty"`

	// NewEmail is used by VERIFY_AND_CHANGE_EMAIL
	NewEmail *string `json:"newEmail,omitempty"`
	IDToken  *string `json:"idToken,omitempty"`

	ContinueURL           *string `json:"continueUrl,omitempty"`
	IOSBundleID           *string `json:"iOSBundleId,omitempty"`
	IOSAppStoreID         *string `json:"iOSAppStoreId,omitempty"`
	AndroidPackageName    *string `json:"androidPackageName,omitempty"`
	AndroidInstallApp     *bool   `json:"androidInstallApp,omitempty"`
	AndroidMinimumVersion *string `json:"androidMinimumVersion,omitempty"`
	CanHandleCodeInApp    *bool   `json:"canHandleCodeInApp,omitempty"`

	TenantID          *string `json:"tenantId,omitempty"`
	TargetProjectID   *string `json:"targetProjectId,omitempty"`
	DynamicLinkDomain *string `json:"dynamicLinkDomain,omitempty"`

	// ReturnOobLink returns the link instead of sending the email. Requires
	// an OAuth credential with admin access.
	ReturnOobLink    *bool             `json:"returnOobLink,omitempty"`
	ClientType       *ClientType       `json:"clientType,omitempty"`
	RecaptchaVersion *RecaptchaVersion `json:"recaptchaVersion,omitempty"`
}

// SignInWithEmailLinkRequest is the body of accounts:signInWithEmailLink.
type SignInWithEmailLinkRequest struct {
	OobCode  string  `json:"oobCode"`
	Email    string  `json:"email"`
	IDToken  *string `json:"idToken,omitempty"`
	TenantID *string `json:"tenantId,omitempty"`
}

// ResetPasswordRequest is the body of accounts:resetPassword.
type ResetPasswordRequest struct {
	OobCode     *string `json:"oobCode,omitempty"`
	NewPassword *string `json:"newPassword,omitempty"`
	OldPassword *string `json:"oldPassword,omitempty"`
	Email       *string `json:"email,omitempty"`
	TenantID    *string `json:"tenantId,omitempty"`
}

// ============================================================================
// Federated / Custom
// ============================================================================

// CreateAuthURIRequest is the body of accounts:createAuthUri.
type CreateAuthURIRequest struct {
	// Identifier is the user's email address
	Identifier  *string `json:"identifier,omitempty"`
	ContinueURI *string `json:"continueUri,omitempty"`
	ProviderID  *string `json:"providerId,omitempty"`
	OauthScope  *string `json:"oauthScope,omitempty"`

	// Context is opaque and echoed back by signInWithIdp
	Context         *string           `json:"context,omitempty"`
	HostedDomain    *string           `json:"hostedDomain,omitempty"`
	SessionID       *string           `json:"sessionId,omitempty"`
	AuthFlowType    *string           `json:"authFlowType,omitempty"`
	CustomParameter map[string]string `json:"customParameter,omitempty"`
	TenantID        *string           `json:"tenantId,omitempty"`

	// Deprecated: no longer read by the service.
	OpenidRealm *string `json:"openidRealm,omitempty"`

	// Deprecated: no longer read by the service.
	OauthConsumerKey *string `json:"oauthConsumerKey,omitempty"`

	// Deprecated: no longer read by the service.
	OtaApp *string `json:"otaApp,omitempty"`

	// Deprecated: no longer read by the service.
	AppID *string `json:"appId,omitempty"`
}

// SignInWithIdpRequest is the body of accounts:signInWithIdp.
type SignInWithIdpRequest struct {
	RequestURI string `json:"requestUri"`

	// PostBody carries the IdP credential, e.g. "id_token=...&providerId=google.com"
	PostBody string `json:"postBody"`

	ReturnRefreshToken *bool   `json:"returnRefreshToken,omitempty"`
	SessionID          *string `json:"sessionId,omitempty"`
	IDToken            *string `json:"idToken,omitempty"`

	// ReturnSecureToken defaults to true when nil.
	ReturnSecureToken   *bool   `json:"returnSecureToken,omitempty"`
	ReturnIdpCredential *bool   `json:"returnIdpCredential,omitempty"`
	TenantID            *string `json:"tenantId,omitempty"`
	PendingToken        *string `json:"pendingToken,omitempty"`

	// Deprecated: use PendingToken.
	PendingIDToken *string `json:"pendingIdToken,omitempty"`

	// Deprecated: no longer read by the service.
	DelegatedProjectNumber *string `json:"delegatedProjectNumber,omitempty"`

	// Deprecated: no longer read by the service.
	AutoCreate *bool `json:"autoCreate,omitempty"`
}

// SignInWithCustomTokenRequest is the body of accounts:signInWithCustomToken.
type SignInWithCustomTokenRequest struct {
	Token string `json:"token"`

	// ReturnSecureToken defaults to true when nil.
	ReturnSecureToken *bool   `json:"returnSecureToken,omitempty"`
	TenantID          *string `json:"tenantId,omitempty"`

	// Deprecated: no longer read by the service.
	InstanceID *string `json:"instanceId,omitempty"`

	// Deprecated: no longer read by the service.
	DelegatedProjectNumber *string `json:"delegatedProjectNumber,omitempty"`
}

// SignInWithGameCenterRequest is the body of accounts:signInWithGameCenter.
type SignInWithGameCenterRequest struct {
	PlayerID     string `json:"playerId"`
	PublicKeyURL string `json:"publicKeyUrl"`
	Signature    string `json:"signature"`
	Salt         string `json:"salt"`
	Timestamp    string `json:"timestamp"`

	IDToken      *string `json:"idToken,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	TenantID     *string `json:"tenantId,omitempty"`
	TeamPlayerID *string `json:"teamPlayerId,omitempty"`
	GamePlayerID *string `json:"gamePlayerId,omitempty"`

	// BundleID is sent as x-ios-bundle-identifier.
	BundleID string `json:"-"`
}

// ============================================================================
// Password
// ============================================================================

// SignInWithPasswordRequest is the body of accounts:signInWithPassword.
type SignInWithPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	CaptchaResponse *string `json:"captchaResponse,omitempty"`

	// ReturnSecureToken defaults to true when nil.
	ReturnSecureToken *bool             `json:"returnSecureToken,omitempty"`
	TenantID          *string           `json:"tenantId,omitempty"`
	ClientType        *ClientType       `json:"clientType,omitempty"`
	RecaptchaVersion  *RecaptchaVersion `json:"recaptchaVersion,omitempty"`

	// Deprecated: no longer read by the service.
	PendingIDToken *string `json:"pendingIdToken,omitempty"`

	// Deprecated: no longer read by the service.
	CaptchaChallenge *string `json:"captchaChallenge,omitempty"`

	// Deprecated: no longer read by the service.
	InstanceID *string `json:"instanceId,omitempty"`

	// Deprecated: no longer read by the service.
	DelegatedProjectNumber *string `json:"delegatedProjectNumber,omitempty"`

	// Deprecated: no longer read by the service.
	IDToken *string `json:"idToken,omitempty"`
}

// SignUpRequest is the body of accounts:signUp. With no email, password or
// phone number it creates an anonymous user.
type SignUpRequest struct {
	Email            *string           `json:"email,omitempty"`
	Password         *string           `json:"password,omitempty"`
	DisplayName      *string           `json:"displayName,omitempty"`
	CaptchaResponse  *string           `json:"captchaResponse,omitempty"`
	IDToken          *string           `json:"idToken,omitempty"`
	EmailVerified    *bool             `json:"emailVerified,omitempty"`
	PhotoURL         *string           `json:"photoUrl,omitempty"`
	Disabled         *bool             `json:"disabled,omitempty"`
	LocalID          *string           `json:"localId,omitempty"`
	PhoneNumber      *string           `json:"phoneNumber,omitempty"`
	TenantID         *string           `json:"tenantId,omitempty"`
	TargetProjectID  *string           `json:"targetProjectId,omitempty"`
	MfaInfo          []MfaFactor       `json:"mfaInfo,omitempty"`
	ClientType       *ClientType       `json:"clientType,omitempty"`
	RecaptchaVersion *RecaptchaVersion `json:"recaptchaVersion,omitempty"`

	// Deprecated: no longer read by the service.
	CaptchaChallenge *string `json:"captchaChallenge,omitempty"`

	// Deprecated: no longer read by the service.
	InstanceID *string `json:"instanceId,omitempty"`
}

// ============================================================================
// Account Management
// ============================================================================

// LookupRequest is the body of accounts:lookup. Looking up by anything other
// than IDToken requires an OAuth credential with admin access.
type LookupRequest struct {
	IDToken         *string                   `json:"idToken,omitempty"`
	LocalID         []string                  `json:"localId,omitempty"`
	Email           []string                  `json:"email,omitempty"`
	PhoneNumber     []string                  `json:"phoneNumber,omitempty"`
	FederatedUserID []FederatedUserIdentifier `json:"federatedUserId,omitempty"`
	TenantID        *string                   `json:"tenantId,omitempty"`
	TargetProjectID *string                   `json:"targetProjectId,omitempty"`
	InitialEmail    []string                  `json:"initialEmail,omitempty"`

	// Deprecated: no longer read by the service.
	DelegatedProjectNumber *string `json:"delegatedProjectNumber,omitempty"`
}

// DeleteAccountRequest is the body of accounts:delete.
type DeleteAccountRequest struct {
	LocalID         *string `json:"localId,omitempty"`
	IDToken         *string `json:"idToken,omitempty"`
	TenantID        *string `json:"tenantId,omitempty"`
	TargetProjectID *string `json:"targetProjectId,omitempty"`

	// Deprecated: no longer read by the service.
	DelegatedProjectNumber *string `json:"delegatedProjectNumber,omitempty"`
}

// UpdateAccountRequest is the body of accounts:update.
type UpdateAccountRequest struct {
	IDToken     *string  `json:"idToken,omitempty"`
	LocalID     *string  `json:"localId,omitempty"`
	DisplayName *string  `json:"displayName,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Password    *string  `json:"password,omitempty"`
	Provider    []string `json:"provider,omitempty"`

	// OobCode confirms an email change or verification
	OobCode                 *string `json:"oobCode,omitempty"`
	EmailVerified           *bool   `json:"emailVerified,omitempty"`
	UpgradeToFederatedLogin *bool   `json:"upgradeToFederatedLogin,omitempty"`
	CaptchaResponse         *string `json:"captchaResponse,omitempty"`

	// ValidSince revokes tokens issued before this epoch second
	ValidSince  *string `json:"validSince,omitempty"`
	DisableUser *bool   `json:"disableUser,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`

	DeleteAttribute   []UserAttributeName `json:"deleteAttribute,omitempty"`
	ReturnSecureToken *bool               `json:"returnSecureToken,omitempty"`
	DeleteProvider    []string            `json:"deleteProvider,omitempty"`

	LastLoginAt      *string `json:"lastLoginAt,omitempty"`
	CreatedAt        *string `json:"createdAt,omitempty"`
	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	CustomAttributes *string `json:"customAttributes,omitempty"`
	TenantID         *string `json:"tenantId,omitempty"`
	TargetProjectID  *string `json:"targetProjectId,omitempty"`

	Mfa                  *MfaInfo          `json:"mfa,omitempty"`
	LinkProviderUserInfo *ProviderUserInfo `json:"linkProviderUserInfo,omitempty"`

	// Deprecated: no longer read by the service.
	CaptchaChallenge *string `json:"captchaChallenge,omitempty"`

	// Deprecated: no longer read by the service.
	InstanceID *string `json:"instanceId,omitempty"`

	// Deprecated: no longer read by the service.
	DelegatedProjectNumber *string `json:"delegatedProjectNumber,omitempty"`
}

// ============================================================================
// SAML / iOS
// ============================================================================

// IssueSamlResponseRequest is the body of accounts:issueSamlResponse.
type IssueSamlResponseRequest struct {
	// RPID is the relying party identifier
	RPID            string  `json:"rpId"`
	IDToken         string  `json:"idToken"`
	SamlAppEntityID *string `json:"samlAppEntityId,omitempty"`
}

// VerifyIosClientRequest is the body of accounts:verifyIosClient.
type VerifyIosClientRequest struct {
	// AppToken is the APNs device token
	AppToken  string `json:"appToken"`
	IsSandbox bool   `json:"isSandbox"`

	// BundleID is sent as x-ios-bundle-identifier.
	BundleID string `json:"-"`
}

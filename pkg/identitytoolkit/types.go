package identitytoolkit

// String returns a pointer to v, for optional request fields.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for optional request fields.
func Bool(v bool) *bool { return &v }

// ============================================================================
// Enums
// ============================================================================

// ClientType identifies the platform a request originates from.
type ClientType string

const (
	ClientTypeWeb     ClientType = "WEB"
	ClientTypeAndroid ClientType = "ANDROID"
	ClientTypeIOS     ClientType = "IOS"
)

// RecaptchaVersion is the reCAPTCHA flavour a captcha response was produced with.
type RecaptchaVersion string

const (
	RecaptchaVersionV2          RecaptchaVersion = "RECAPTCHA_V2"
	RecaptchaVersionUnspecified RecaptchaVersion = "RECAPTCHA_UNSPECIFIED"
	RecaptchaVersionEnterprise  RecaptchaVersion = "RECAPTCHA_ENTERPRISE"
)

// OobReqType is the kind of out-of-band code sendOobCode delivers.
type OobReqType string

const (
	OobReqTypePasswordReset        OobReqType = "PASSWORD_RESET"
	OobReqTypeEmailSignIn          OobReqType = "EMAIL_SIGNIN"
	OobReqTypeVerifyEmail          OobReqType = "VERIFY_EMAIL"
	OobReqTypeVerifyAndChangeEmail OobReqType = "VERIFY_AND_CHANGE_EMAIL"
)

// UserAttributeName names an account attribute that update can delete.
type UserAttributeName string

const (
	UserAttributeUnspecified UserAttributeName = "USER_ATTRIBUTE_NAME_UNSPECIFIED"
	UserAttributeEmail       UserAttributeName = "EMAIL"
	UserAttributeDisplayName UserAttributeName = "DISPLAY_NAME"
	UserAttributeProvider    UserAttributeName = "PROVIDER"
	UserAttributePhotoURL    UserAttributeName = "PHOTO_URL"
	UserAttributePassword    UserAttributeName = "PASSWORD"
	UserAttributeRawUserInfo UserAttributeName = "RAW_USER_INFO"
)

// VerifyOp is the phone verification operation being performed.
type VerifyOp string

const (
	VerifyOpUnspecified VerifyOp = "VERIFY_OP_UNSPECIFIED"
	VerifyOpSignUpOrIn  VerifyOp = "SIGN_UP_OR_IN"
	VerifyOpReauth      VerifyOp = "REAUTH"
	VerifyOpUpdate      VerifyOp = "UPDATE"
	VerifyOpLink        VerifyOp = "LINK"
)

// NotificationCode classifies a password policy notification.
type NotificationCode string

const (
	NotificationCodeUnspecified                     NotificationCode = "NOTIFICATION_CODE_UNSPECIFIED"
	NotificationCodeMissingLowercaseCharacter       NotificationCode = "MISSING_LOWERCASE_CHARACTER"
	NotificationCodeMissingUppercaseCharacter       NotificationCode = "MISSING_UPPERCASE_CHARACTER"
	NotificationCodeMissingNumericCharacter         NotificationCode = "MISSING_NUMERIC_CHARACTER"
	NotificationCodeMissingNonAlphanumericCharacter NotificationCode = "MISSING_NON_ALPHANUMERIC_CHARACTER"
	NotificationCodeMinimumPasswordLength           NotificationCode = "MINIMUM_PASSWORD_LENGTH"
	NotificationCodeMaximumPasswordLength           NotificationCode = "MAXIMUM_PASSWORD_LENGTH"
)

// ============================================================================
// Shared Types
// ============================================================================

// AutoRetrievalInfo lets Google Play Services identify the app for SMS
// auto-retrieval. Android only.
type AutoRetrievalInfo struct {
	AppSignatureHash string `json:"appSignatureHash"`
}

// FederatedUserIdentifier identifies a user by their identity provider.
type FederatedUserIdentifier struct {
	// ProviderID is e.g. "google.com"
	ProviderID string `json:"providerId"`

	// RawID is the user's id at the provider
	RawID string `json:"rawId"`
}

// MfaFactor is a second factor to enroll at sign-up.
type MfaFactor struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhoneInfo   *string `json:"phoneInfo,omitempty"`
}

// TotpInfo marks a TOTP enrollment. It carries no fields.
type TotpInfo struct{}

// EmailInfo describes an email second factor.
type EmailInfo struct {
	EmailAddress string `json:"emailAddress"`
}

// MfaEnrollment is a registered second factor on an account.
type MfaEnrollment struct {
	MfaEnrollmentID string `json:"mfaEnrollmentId"`

	DisplayName string `json:"displayName,omitempty"`

	// EnrolledAt is an RFC 3339 timestamp
	EnrolledAt string `json:"enrolledAt"`

	// PhoneInfo is the obfuscated phone number for phone factors
	PhoneInfo string `json:"phoneInfo,omitempty"`

	TotpInfo  *TotpInfo  `json:"totpInfo,omitempty"`
	EmailInfo *EmailInfo `json:"emailInfo,omitempty"`

	// UnobfuscatedPhoneInfo is only returned to privileged callers
	UnobfuscatedPhoneInfo string `json:"unobfuscatedPhoneInfo,omitempty"`
}

// MfaInfo groups a user's second factor enrollments.
type MfaInfo struct {
	Enrollments []MfaEnrollment `json:"enrollments,omitempty"`
}

// ProviderUserInfo is a user's identity at one linked provider.
type ProviderUserInfo struct {
	ProviderID  string `json:"providerId"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	FederatedID string `json:"federatedId,omitempty"`
	Email       string `json:"email,omitempty"`
	RawID       string `json:"rawId,omitempty"`
	ScreenName  string `json:"screenName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// UserNotification is a password policy warning returned on sign-in.
type UserNotification struct {
	NotificationCode    NotificationCode `json:"notificationCode"`
	NotificationMessage string           `json:"notificationMessage"`
}

// UserInfo is one account as returned by lookup.
type UserInfo struct {
	LocalID           string             `json:"localId"`
	Email             string             `json:"email,omitempty"`
	EmailVerified     bool               `json:"emailVerified,omitempty"`
	DisplayName       string             `json:"displayName,omitempty"`
	PhotoURL          string             `json:"photoUrl,omitempty"`
	PhoneNumber       string             `json:"phoneNumber,omitempty"`
	LastLoginAt       string             `json:"lastLoginAt,omitempty"`
	CreatedAt         string             `json:"createdAt,omitempty"`
	CustomAttributes  string             `json:"customAttributes,omitempty"`
	Disabled          bool               `json:"disabled,omitempty"`
	TenantID          string             `json:"tenantId,omitempty"`
	InitialEmail      string             `json:"initialEmail,omitempty"`
	PasswordHash      string             `json:"passwordHash,omitempty"`
	Salt              string             `json:"salt,omitempty"`
	PasswordUpdatedAt float64            `json:"passwordUpdatedAt,omitempty"`
	ProviderUserInfo  []ProviderUserInfo `json:"providerUserInfo,omitempty"`
	MfaInfo           []MfaEnrollment    `json:"mfaInfo,omitempty"`
	LastRefreshAt     string             `json:"lastRefreshAt,omitempty"`
}

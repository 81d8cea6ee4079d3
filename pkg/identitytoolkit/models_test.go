package identitytoolkit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	itk "github.com/aussiebroadwan/identitytoolkit/pkg/identitytoolkit"
)

func TestRequestEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  any
		want string
	}{
		{
			name: "header fields stay out of the body",
			req: itk.SendVerificationCodeRequest{
				PhoneNumber:       "+15555550100",
				AutoRetrievalInfo: &itk.AutoRetrievalInfo{AppSignatureHash: "hash"},
				ClientType:        ptr(itk.ClientTypeAndroid),
				RecaptchaVersion:  ptr(itk.RecaptchaVersionEnterprise),
				Locale:            "fr",
			},
			want: `{
				"phoneNumber": "+15555550100",
				"autoRetrievalInfo": {"appSignatureHash": "hash"},
				"clientType": "ANDROID",
				"recaptchaVersion": "RECAPTCHA_ENTERPRISE"
			}`,
		},
		{
			name: "required fields are always present",
			req:  itk.SignInWithEmailLinkRequest{},
			want: `{"oobCode":"","email":""}`,
		},
		{
			name: "deprecated fields still encode",
			req: itk.SignInWithPhoneNumberRequest{
				VerificationProof: itk.String("proof"),
				Operation:         ptr(itk.VerifyOpSignUpOrIn),
			},
			want: `{"verificationProof":"proof","operation":"SIGN_UP_OR_IN"}`,
		},
		{
			name: "sign up with mfa",
			req: itk.SignUpRequest{
				Email:         itk.String("a@b.com"),
				Password:      itk.String("secret"),
				EmailVerified: itk.Bool(false),
				MfaInfo:       []itk.MfaFactor{{DisplayName: itk.String("phone"), PhoneInfo: itk.String("+15555550100")}},
			},
			want: `{
				"email": "a@b.com",
				"password": "secret",
				"emailVerified": false,
				"mfaInfo": [{"displayName": "phone", "phoneInfo": "+15555550100"}]
			}`,
		},
		{
			name: "update with nested records",
			req: itk.UpdateAccountRequest{
				LocalID: itk.String("uid-1"),
				Mfa: &itk.MfaInfo{Enrollments: []itk.MfaEnrollment{{
					MfaEnrollmentID: "enr-1",
					EnrolledAt:      "2024-01-01T00:00:00Z",
					TotpInfo:        &itk.TotpInfo{},
				}}},
				LinkProviderUserInfo: &itk.ProviderUserInfo{ProviderID: "google.com", RawID: "123"},
			},
			want: `{
				"localId": "uid-1",
				"mfa": {"enrollments": [{"mfaEnrollmentId": "enr-1", "enrolledAt": "2024-01-01T00:00:00Z", "totpInfo": {}}]},
				"linkProviderUserInfo": {"providerId": "google.com", "rawId": "123"}
			}`,
		},
		{
			name: "custom token keeps an explicit false",
			req:  itk.SignInWithCustomTokenRequest{Token: "t", ReturnSecureToken: itk.Bool(false)},
			want: `{"token":"t","returnSecureToken":false}`,
		},
		{
			name: "saml",
			req:  itk.IssueSamlResponseRequest{RPID: "rp", IDToken: "id", SamlAppEntityID: itk.String("entity")},
			want: `{"rpId":"rp","idToken":"id","samlAppEntityId":"entity"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.req)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestResponseDecoding(t *testing.T) {
	t.Parallel()

	t.Run("sign in with idp", func(t *testing.T) {
		t.Parallel()

		var resp itk.SignInWithIdpResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"federatedId": "https://accounts.google.com/123",
			"providerId": "google.com",
			"email": "a@b.com",
			"emailVerified": true,
			"localId": "uid-1",
			"idToken": "id",
			"oauthExpireIn": 3599,
			"needConfirmation": true,
			"verifiedProvider": ["google.com"],
			"mfaInfo": [{"mfaEnrollmentId": "enr-1", "enrolledAt": "2024-01-01T00:00:00Z", "emailInfo": {"emailAddress": "a@b.com"}}],
			"kind": "identitytoolkit#VerifyAssertionResponse"
		}`), &resp))

		require.Equal(t, itk.SignInWithIdpResponse{
			FederatedID:      "https://accounts.google.com/123",
			ProviderID:       "google.com",
			Email:            "a@b.com",
			EmailVerified:    true,
			LocalID:          "uid-1",
			IDToken:          "id",
			OauthExpireIn:    3599,
			NeedConfirmation: true,
			VerifiedProvider: []string{"google.com"},
			MfaInfo: []itk.MfaEnrollment{{
				MfaEnrollmentID: "enr-1",
				EnrolledAt:      "2024-01-01T00:00:00Z",
				EmailInfo:       &itk.EmailInfo{EmailAddress: "a@b.com"},
			}},
			Kind: "identitytoolkit#VerifyAssertionResponse",
		}, resp)
	})

	t.Run("sign in with password needing a second factor", func(t *testing.T) {
		t.Parallel()

		var resp itk.SignInWithPasswordResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"localId": "uid-1",
			"email": "a@b.com",
			"mfaPendingCredential": "pending",
			"mfaInfo": [{"mfaEnrollmentId": "enr-1", "enrolledAt": "2024-01-01T00:00:00Z", "phoneInfo": "+1*******00"}],
			"userNotifications": [{"notificationCode": "MISSING_NUMERIC_CHARACTER", "notificationMessage": "add a digit"}]
		}`), &resp))

		require.Equal(t, "pending", resp.MfaPendingCredential)
		require.Empty(t, resp.IDToken)
		require.Len(t, resp.MfaInfo, 1)
		require.Equal(t, "+1*******00", resp.MfaInfo[0].PhoneInfo)
		require.Equal(t, []itk.UserNotification{{
			NotificationCode:    itk.NotificationCodeMissingNumericCharacter,
			NotificationMessage: "add a digit",
		}}, resp.UserNotifications)
	})

	t.Run("reset password", func(t *testing.T) {
		t.Parallel()

		var resp itk.ResetPasswordResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"email": "a@b.com",
			"requestType": "PASSWORD_RESET",
			"kind": "identitytoolkit#ResetPasswordResponse"
		}`), &resp))

		require.Equal(t, itk.ResetPasswordResponse{
			Email:       "a@b.com",
			RequestType: itk.OobReqTypePasswordReset,
			Kind:        "identitytoolkit#ResetPasswordResponse",
		}, resp)
	})

	t.Run("create auth uri", func(t *testing.T) {
		t.Parallel()

		var resp itk.CreateAuthURIResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"registered": true,
			"signinMethods": ["password", "emailLink"],
			"allProviders": ["password"],
			"sessionId": "s"
		}`), &resp))

		require.True(t, resp.Registered)
		require.Equal(t, []string{"password", "emailLink"}, resp.SigninMethods)
		require.Equal(t, []string{"password"}, resp.AllProviders)
		require.Equal(t, "s", resp.SessionID)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		t.Parallel()

		var resp itk.VerifyIosClientResponse
		require.NoError(t, json.Unmarshal([]byte(`{"receipt":"r","suggestedTimeout":"60","extra":1}`), &resp))
		require.Equal(t, itk.VerifyIosClientResponse{Receipt: "r", SuggestedTimeout: "60"}, resp)
	})
}

func ptr[T any](v T) *T { return &v }

func TestResponseDecoding_AllFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		got  any
		want any
	}{
		{
			name: "send verification code",
			raw:  `{"sessionInfo":"session"}`,
			got:  &itk.SendVerificationCodeResponse{},
			want: &itk.SendVerificationCodeResponse{SessionInfo: "session"},
		},
		{
			name: "sign in with phone number",
			raw: `{
				"idToken": "id",
				"refreshToken": "refresh",
				"expiresIn": "3600",
				"localId": "uid-1",
				"isNewUser": true,
				"temporaryProof": "tp",
				"phoneNumber": "+15555550100",
				"temporaryProofExpiresIn": "300",
				"verificationProof": "vp",
				"verificationProofExpiresIn": "600"
			}`,
			got: &itk.SignInWithPhoneNumberResponse{},
			want: &itk.SignInWithPhoneNumberResponse{
				IDToken:                    "id",
				RefreshToken:               "refresh",
				ExpiresIn:                  "3600",
				LocalID:                    "uid-1",
				IsNewUser:                  true,
				TemporaryProof:             "tp",
				PhoneNumber:                "+15555550100",
				TemporaryProofExpiresIn:    "300",
				VerificationProof:          "vp",
				VerificationProofExpiresIn: "600",
			},
		},
		{
			name: "send oob code",
			raw:  `{"email":"a@b.com","oobCode":"code","oobLink":"https://example.com/action?oobCode=code"}`,
			got:  &itk.SendOobCodeResponse{},
			want: &itk.SendOobCodeResponse{
				Email:   "a@b.com",
				OobCode: "code",
				OobLink: "https://example.com/action?oobCode=code",
			},
		},
		{
			name: "sign in with email link",
			raw: `{
				"idToken": "id",
				"email": "a@b.com",
				"refreshToken": "refresh",
				"expiresIn": "3600",
				"localId": "uid-1",
				"isNewUser": true,
				"mfaPendingCredential": "pending",
				"mfaInfo": [{"mfaEnrollmentId": "enr-1", "displayName": "totp", "enrolledAt": "2024-01-01T00:00:00Z", "totpInfo": {}}],
				"kind": "identitytoolkit#EmailLinkSigninResponse"
			}`,
			got: &itk.SignInWithEmailLinkResponse{},
			want: &itk.SignInWithEmailLinkResponse{
				IDToken:              "id",
				Email:                "a@b.com",
				RefreshToken:         "refresh",
				ExpiresIn:            "3600",
				LocalID:              "uid-1",
				IsNewUser:            true,
				MfaPendingCredential: "pending",
				MfaInfo: []itk.MfaEnrollment{{
					MfaEnrollmentID: "enr-1",
					DisplayName:     "totp",
					EnrolledAt:      "2024-01-01T00:00:00Z",
					TotpInfo:        &itk.TotpInfo{},
				}},
				Kind: "identitytoolkit#EmailLinkSigninResponse",
			},
		},
		{
			name: "sign in with custom token",
			raw: `{
				"idToken": "id",
				"refreshToken": "refresh",
				"expiresIn": "3600",
				"isNewUser": true,
				"kind": "identitytoolkit#VerifyCustomTokenResponse"
			}`,
			got: &itk.SignInWithCustomTokenResponse{},
			want: &itk.SignInWithCustomTokenResponse{
				IDToken:      "id",
				RefreshToken: "refresh",
				ExpiresIn:    "3600",
				IsNewUser:    true,
				Kind:         "identitytoolkit#VerifyCustomTokenResponse",
			},
		},
		{
			name: "sign in with game center",
			raw: `{
				"localId": "uid-1",
				"playerId": "G:1",
				"idToken": "id",
				"refreshToken": "refresh",
				"expiresIn": "3600",
				"isNewUser": true,
				"displayName": "Player One",
				"teamPlayerId": "T:1",
				"gamePlayerId": "A:1"
			}`,
			got: &itk.SignInWithGameCenterResponse{},
			want: &itk.SignInWithGameCenterResponse{
				LocalID:      "uid-1",
				PlayerID:     "G:1",
				IDToken:      "id",
				RefreshToken: "refresh",
				ExpiresIn:    "3600",
				IsNewUser:    true,
				DisplayName:  "Player One",
				TeamPlayerID: "T:1",
				GamePlayerID: "A:1",
			},
		},
		{
			name: "sign up",
			raw: `{
				"localId": "uid-1",
				"email": "a@b.com",
				"displayName": "Alice",
				"idToken": "id",
				"refreshToken": "refresh",
				"expiresIn": "3600",
				"kind": "identitytoolkit#SignupNewUserResponse"
			}`,
			got: &itk.SignUpResponse{},
			want: &itk.SignUpResponse{
				LocalID:      "uid-1",
				Email:        "a@b.com",
				DisplayName:  "Alice",
				IDToken:      "id",
				RefreshToken: "refresh",
				ExpiresIn:    "3600",
				Kind:         "identitytoolkit#SignupNewUserResponse",
			},
		},
		{
			name: "delete",
			raw:  `{"kind":"identitytoolkit#DeleteAccountResponse"}`,
			got:  &itk.DeleteAccountResponse{},
			want: &itk.DeleteAccountResponse{Kind: "identitytoolkit#DeleteAccountResponse"},
		},
		{
			name: "update",
			raw: `{
				"displayName": "Alice",
				"email": "a@b.com",
				"emailVerified": true,
				"photoUrl": "https://example.com/a.png",
				"passwordHash": "hash",
				"salt": "salt",
				"phoneNumber": "+15555550100",
				"lastLoginAt": "1700000000000",
				"idToken": "id",
				"refreshToken": "refresh",
				"expiresIn": "3600",
				"localId": "uid-1",
				"kind": "identitytoolkit#SetAccountInfoResponse",
				"providerUserInfo": [{
					"providerId": "google.com",
					"displayName": "Alice",
					"photoUrl": "https://example.com/a.png",
					"federatedId": "https://accounts.google.com/123",
					"email": "a@b.com",
					"rawId": "123",
					"screenName": "alice",
					"phoneNumber": "+15555550100"
				}]
			}`,
			got: &itk.UpdateAccountResponse{},
			want: &itk.UpdateAccountResponse{
				DisplayName:   "Alice",
				Email:         "a@b.com",
				EmailVerified: true,
				PhotoURL:      "https://example.com/a.png",
				PasswordHash:  "hash",
				Salt:          "salt",
				PhoneNumber:   "+15555550100",
				LastLoginAt:   "1700000000000",
				IDToken:       "id",
				RefreshToken:  "refresh",
				ExpiresIn:     "3600",
				LocalID:       "uid-1",
				Kind:          "identitytoolkit#SetAccountInfoResponse",
				ProviderUserInfo: []itk.ProviderUserInfo{{
					ProviderID:  "google.com",
					DisplayName: "Alice",
					PhotoURL:    "https://example.com/a.png",
					FederatedID: "https://accounts.google.com/123",
					Email:       "a@b.com",
					RawID:       "123",
					ScreenName:  "alice",
					PhoneNumber: "+15555550100",
				}},
			},
		},
		{
			name: "issue saml response",
			raw: `{
				"samlResponse": "PHNhbWw+",
				"acsEndpoint": "https://sp.example.com/acs",
				"relayState": "state",
				"email": "a@b.com",
				"firstName": "Alice",
				"lastName": "Smith",
				"isNewUser": true
			}`,
			got: &itk.IssueSamlResponseResponse{},
			want: &itk.IssueSamlResponseResponse{
				SamlResponse: "PHNhbWw+",
				AcsEndpoint:  "https://sp.example.com/acs",
				RelayState:   "state",
				Email:        "a@b.com",
				FirstName:    "Alice",
				LastName:     "Smith",
				IsNewUser:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, json.Unmarshal([]byte(tt.raw), tt.got))
			require.Equal(t, tt.want, tt.got)
		})
	}
}

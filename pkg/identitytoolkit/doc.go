/*
Package identitytoolkit provides a typed client for the Google Identity Toolkit
REST API (v1 accounts:* operations).

# Overview

Every operation is a single POST to

	<base>/v1/accounts:<operation>?key=<api key>

with a JSON body and an "Authorization: Bearer <token>" header. The client
encodes the request record, attaches the resolved API key and a bearer token
from the configured credential, and decodes the response into the matching
response record. Nothing is retried and no request is validated client-side;
malformed input is reported by the service.

# Configuration

A Client is built once and is immutable afterwards:

	client, err := identitytoolkit.NewClient(ctx,
		credentials.Config{CredentialsFile: "service-account.json"},
		identitytoolkit.DefaultConfig(),
	)

The project id is the first non-empty of:

 1. GOOGLE_PROJECT_ID
 2. PROJECT_ID
 3. the project embedded in a service account key
 4. Config.Project
 5. credentials.Config.Project

The API key is the first non-empty of GOOGLE_API_KEY and API_KEY. When either
value is missing NewClient fails with ErrProjectIDMissing, ErrAPIKeyMissing or
both (match them with errors.Is).

Set Config.BaseURL to target the Firebase Auth emulator:

	cfg := identitytoolkit.DefaultConfig()
	cfg.BaseURL = "http://localhost:9099/identitytoolkit.googleapis.com"

# Operations

All operations live on Client.Accounts:

	resp, err := client.Accounts.SignInWithPassword(ctx, identitytoolkit.SignInWithPasswordRequest{
		Email:    "user@example.com",
		Password: "secret",
	})

Optional request fields are pointers; use String and Bool to set them.
SignInWithPassword and SignInWithIdp send returnSecureToken=true unless the
caller sets it. SendVerificationCode and SignInWithPhoneNumber send Locale as
the X-Firebase-Locale header; SignInWithGameCenter and VerifyIosClient send
BundleID as x-ios-bundle-identifier.

# Error Handling

Every failure is an *Error with one of these kinds:

  - KindConfigurationMissing: project id or API key unresolved (NewClient only)
  - KindTransport: no response was received, or no token could be obtained
  - KindDecodeFailure: the body was neither a response nor an error envelope
  - KindRemote: the service returned an error envelope
  - KindUnknown: anything else, e.g. a request that could not be encoded

Remote errors keep the service's status, code and message verbatim:

	if identitytoolkit.HasStatus(err, identitytoolkit.StatusInvalidArgument) {
		// ...
	}
	if e, ok := identitytoolkit.AsError(err); ok && e.UnknownStatus() {
		// status outside the documented vocabulary
	}

# Thread Safety

Client and AccountsService are safe for concurrent use. Credentials refresh
internally and serialise refreshes themselves.
*/
package identitytoolkit

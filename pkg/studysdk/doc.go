/*
Package studysdk provides a client SDK for the StudyHub tutoring platform's
REST API.

# Overview

The package is organized around two main types:

  - Client: carries the HTTP plumbing and unauthenticated operations
    (login grants, registration, token refresh)
  - Session: carries the current identity and all authenticated operations,
    with automatic recovery when the backend rejects the credential

Create a Client against the API base URL, pick a TokenStore, and build a
Session:

	client := studysdk.NewClient("https://api.studyhub.example")
	store := studysdk.NewMemoryTokenStore()

	session, err := studysdk.NewSession(ctx, client, store)

Session construction hydrates from the store: a stored credential with a
usable subject id restores the identity without any network traffic, while a
credential that decodes without one triggers a single refresh cycle before
the session settles.

# Logging in

	identity, err := session.Login(ctx, studysdk.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2...",
	})

Social logins hand over the identity provider's popup result:

	identity, err := session.LoginWithProvider(ctx, providerResult)

# Automatic session recovery

Every authenticated operation flows through one pipeline. When a request
comes back 401, the session refreshes the credential and resubmits the
request exactly once. Concurrent failures share a single refresh call: the
first failure starts it, the rest join it and retry with the same new
credential. A request that is rejected again after its retry, or a failed
refresh call, expires the session: the credential and identity are dropped
and the WithExpiredNotice hook fires.

# Role gating

Identity roles form a closed set (student, tutor, admin). Use a Gate to
authorize navigation into gated areas:

	gate := studysdk.Gate{}
	if d := gate.Authorize(session.CurrentIdentity(), studysdk.RoleAdmin); !d.Allowed {
		// send the user to d.RedirectTo
	}

Decisions are recomputed on every call, never cached.

# Errors

Failures are typed: *ValidationError never leaves the process,
ErrInvalidCredentials and *ProviderError come from login, *APIError carries
any other non-2xx response, *RequestError wraps transport failures, and
ErrSessionExpired marks the terminal 401-after-retry and failed-refresh
paths. Only the 401 path is ever retried, and only once.
*/
package studysdk

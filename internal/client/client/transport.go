package client

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/common"
)

// AuthorizationHeader derives the Authorization header value for token.
// ok is false when there is nothing to send.
func AuthorizationHeader(token string) (value string, ok bool) {
	if token == "" {
		return "", false
	}
	return common.BearerScheme + " " + token, true
}

// bearerTransport attaches the current bearer token to each outgoing request.
// The token is read from the source at dispatch time and never cached, so a
// request dispatched after sign-out goes out unauthenticated.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	out.Header.Del(common.AuthorizationHeaderName)
	if t.tokens != nil {
		if v, ok := AuthorizationHeader(t.tokens.Token()); ok {
			out.Header.Set(common.AuthorizationHeaderName, v)
		}
	}
	if out.Header.Get(common.RequestIDHeaderName) == "" {
		out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return t.base.RoundTrip(out)
}

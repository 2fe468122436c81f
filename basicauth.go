// Package basicauth builds and parses HTTP Basic Authentication
// credentials as specified by RFC 7617.
//
// Credentials are secret material, so the Base64 encoding runs in
// constant time and comparisons use constant-time equality.
package basicauth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ericlagergren/basicauth/base64"
)

// ErrInvalidHeader is returned when an Authorization header value
// is not a well-formed Basic credential.
var ErrInvalidHeader = errors.New("basicauth: invalid Authorization header")

const scheme = "Basic"

// Credential is a username and password pair.
//
// Neither component is validated: RFC 7617 permits empty
// usernames and passwords, and this package places no
// restrictions on their contents. A username containing ':'
// encodes unambiguously, but cannot be recovered by Parse, which
// splits at the first ':'.
type Credential struct {
	Username string
	Password string
}

// Header returns the value of an Authorization header carrying c:
// the string "Basic " followed by the Base64 encoding of
// "username:password".
//
// Header is total and deterministic; every Credential, including
// the zero value, has a well-formed header.
func (c Credential) Header() string {
	tok := []byte(c.Username + ":" + c.Password)
	defer Wipe(tok)
	return scheme + " " + base64.StdEncoding.EncodeToString(tok)
}

// SetHeader sets the Authorization header in h to c's header
// value, replacing any existing value.
func (c Credential) SetHeader(h http.Header) {
	h.Set("Authorization", c.Header())
}

// Parse parses the value of an Authorization header produced by
// Header.
//
// The scheme name is matched case-insensitively, per RFC 7617
// section 2. The decoded credential is split at its first ':';
// everything after it, including any further ':' characters, is
// the password.
func Parse(value string) (Credential, error) {
	name, tok, ok := strings.Cut(value, " ")
	if !ok || !strings.EqualFold(name, scheme) {
		return Credential{}, ErrInvalidHeader
	}
	dec, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return Credential{}, ErrInvalidHeader
	}
	defer Wipe(dec)
	user, pass, ok := strings.Cut(string(dec), ":")
	if !ok {
		return Credential{}, ErrInvalidHeader
	}
	return Credential{Username: user, Password: pass}, nil
}

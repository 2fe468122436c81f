package basicauth

import "crypto/subtle"

// Equal reports whether c and o carry the same username and
// password.
//
// The time taken is a function of the lengths of the credentials
// and is independent of their contents, making Equal suitable for
// checking a presented credential against an expected one.
func (c Credential) Equal(o Credential) bool {
	u := subtle.ConstantTimeCompare([]byte(c.Username), []byte(o.Username))
	p := subtle.ConstantTimeCompare([]byte(c.Password), []byte(o.Password))
	return u&p == 1
}

package basicauth

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestHeader tests Header against independently computed RFC 7617
// values.
func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		cred Credential
		want string
	}{
		{"basic", Credential{"myusername", "mypassword"}, "Basic bXl1c2VybmFtZTpteXBhc3N3b3Jk"},
		{"empty", Credential{"", ""}, "Basic Og=="},
		{"empty password", Credential{"user", ""}, "Basic dXNlcjo="},
		{"rfc7617", Credential{"Aladdin", "open sesame"}, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ=="},
		{"non-ascii", Credential{"test", "123£"}, "Basic dGVzdDoxMjPCow=="},
		{"colon in username", Credential{"user:name", "pw"}, "Basic dXNlcjpuYW1lOnB3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cred.Header(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			// Header must be deterministic.
			if got := tc.cred.Header(); got != tc.want {
				t.Fatalf("second call: expected %q, got %q", tc.want, got)
			}
		})
	}
}

// TestParse tests Parse over well-formed header values.
func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Credential
	}{
		{"basic", "Basic bXl1c2VybmFtZTpteXBhc3N3b3Jk", Credential{"myusername", "mypassword"}},
		{"empty", "Basic Og==", Credential{"", ""}},
		{"rfc7617", "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", Credential{"Aladdin", "open sesame"}},
		{"lowercase scheme", "basic dXNlcjpwYXNz", Credential{"user", "pass"}},
		{"uppercase scheme", "BASIC dXNlcjpwYXNz", Credential{"user", "pass"}},
		// The password keeps every ':' after the first.
		{"colon in password", "Basic dXNlcjpuYW1lOnB3", Credential{"user", "name:pw"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.value)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("mismatch: %s", cmp.Diff(tc.want, got))
			}
		})
	}
}

// TestParseInvalid tests Parse over malformed header values.
func TestParseInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"Basic",               // no token
		"Bearer dXNlcjpwYXNz", // wrong scheme
		"Basic !!!!",          // corrupt Base64
		"Basic bm9jb2xvbg==",  // no ':' separator
		"Basic  dXNlcjpwYXNz", // doubled separator space
	} {
		if _, err := Parse(s); err != ErrInvalidHeader {
			t.Errorf("Parse(%q): expected ErrInvalidHeader, got %v", s, err)
		}
	}
}

// TestRoundTrip tests that Parse inverts Header.
func TestRoundTrip(t *testing.T) {
	creds := []Credential{
		{"myusername", "mypassword"},
		{"", ""},
		{"", "password-only"},
		{"user-only", ""},
		{"Aladdin", "open sesame"},
		{"test", "123£"},
		{"user", "pa:ss:wd"},
	}
	for _, c := range creds {
		got, err := Parse(c.Header())
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		if got != c {
			t.Fatalf("mismatch: %s", cmp.Diff(c, got))
		}
	}
}

func TestEqual(t *testing.T) {
	a := Credential{"user", "pass"}
	if !a.Equal(a) {
		t.Error("expected a == a")
	}
	for _, b := range []Credential{
		{"user", "Pass"},
		{"User", "pass"},
		{"user", "pass "},
		{"", ""},
		{"pass", "user"},
	} {
		if a.Equal(b) {
			t.Errorf("expected %v != %v", a, b)
		}
	}
	if !(Credential{}).Equal(Credential{}) {
		t.Error("expected zero credentials to be equal")
	}
}

func TestSetHeader(t *testing.T) {
	c := Credential{"myusername", "mypassword"}
	h := make(http.Header)
	h.Set("Authorization", "Bearer stale")
	c.SetHeader(h)
	want := "Basic bXl1c2VybmFtZTpteXBhc3N3b3Jk"
	if got := h.Get("Authorization"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWipe(t *testing.T) {
	x := []byte("user:pass")
	Wipe(x)
	for i, b := range x {
		if b != 0 {
			t.Fatalf("#%d: expected 0, got %#x", i, b)
		}
	}
}

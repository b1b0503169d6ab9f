package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/powertrack/powertrack/internal/errors"
)

// signedToken builds a signed HS256 token with the given claims. The client
// never verifies signatures, but real backend tokens are signed, so the
// fixtures are too.
func signedToken(t *testing.T, role string, sub string) string {
	t.Helper()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw    string
		want   Role
		wantOK bool
	}{
		{"Manager", RoleManager, true},
		{"manager", RoleManager, true},
		{"MANAGER", RoleManager, true},
		{" manager ", RoleManager, true},
		{"Detailer", RoleDetailer, true},
		{"detailer", RoleDetailer, true},
		{"Employee", RoleDetailer, true},
		{"employee", RoleDetailer, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseRole(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		token := signedToken(t, "Manager", "7")
		claims, ok := Decode(token)
		if !ok {
			t.Fatal("Decode failed on a valid token")
		}
		if claims.Role != "Manager" {
			t.Errorf("Role = %q, want Manager", claims.Role)
		}
		if claims.UserID() != "7" {
			t.Errorf("UserID() = %q, want 7", claims.UserID())
		}
	})

	t.Run("soft failures", func(t *testing.T) {
		tests := []struct {
			name  string
			token string
		}{
			{"empty token", ""},
			{"not a jwt", "garbage"},
			{"two segments", "aaaa.bbbb"},
			{"bad base64 payload", "aaaa.!!!.cccc"},
			{"missing role claim", signedToken(t, "", "7")},
			{"unknown role claim", signedToken(t, "superuser", "7")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if claims, ok := Decode(tt.token); ok || claims != nil {
					t.Errorf("Decode(%q) = (%v, %v), want (nil, false)", tt.token, claims, ok)
				}
			})
		}
	})
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "token"))

	if _, err := store.Token(); !errors.Is(err, errors.ErrNoToken) {
		t.Errorf("Token() on empty store = %v, want ErrNoToken", err)
	}

	if err := store.SetToken("abc.def.ghi"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("Token() = %q, want abc.def.ghi", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := store.Token(); !errors.Is(err, errors.ErrNoToken) {
		t.Errorf("Token() after Clear = %v, want ErrNoToken", err)
	}

	// Clearing twice is fine
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}

func TestSessionLoginLogout(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	sess := New(store)

	if sess.IsAuthenticated() {
		t.Error("fresh session should not be authenticated")
	}

	var events []Event
	sess.Subscribe(func(e Event) { events = append(events, e) })

	token := signedToken(t, "Employee", "42")
	if err := sess.Login(token); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if !sess.IsAuthenticated() {
		t.Error("session should be authenticated after Login")
	}
	if role, ok := sess.CurrentRole(); !ok || role != RoleDetailer {
		t.Errorf("CurrentRole() = (%q, %v), want (Detailer, true)", role, ok)
	}
	if sess.CurrentUserID() != "42" {
		t.Errorf("CurrentUserID() = %q, want 42", sess.CurrentUserID())
	}

	// Token survives a restart
	if reloaded := New(store); !reloaded.IsAuthenticated() {
		t.Error("reloaded session should pick up the stored token")
	}

	if err := sess.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if sess.IsAuthenticated() {
		t.Error("session should not be authenticated after Logout")
	}
	if _, ok := sess.CurrentRole(); ok {
		t.Error("CurrentRole should be unavailable after Logout")
	}

	want := []Event{EventLogin, EventLogout}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestSessionRejectsMalformedToken(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	sess := New(store)

	if err := sess.Login("not-a-token"); !errors.Is(err, errors.ErrTokenMalformed) {
		t.Errorf("Login with malformed token = %v, want ErrTokenMalformed", err)
	}
	if sess.IsAuthenticated() {
		t.Error("rejected login must not authenticate the session")
	}
	if _, err := store.Token(); !errors.Is(err, errors.ErrNoToken) {
		t.Error("rejected login must not store the token")
	}
}

package domain

import "testing"

func TestSession_Valid(t *testing.T) {
	record := &Client{ID: "c1", Username: "giulia"}
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"admin without record", Session{Role: RoleAdmin}, true},
		{"admin with record", Session{Role: RoleAdmin, Client: record}, false},
		{"client with record", Session{Role: RoleClient, Client: record}, true},
		{"client without record", Session{Role: RoleClient}, false},
		{"unknown role", Session{Role: "superuser", Client: record}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.session.Valid(); got != tc.want {
				t.Fatalf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClient_Sanitized(t *testing.T) {
	c := Client{ID: "c1", Username: "giulia", Password: "pw", CompanyName: "Bianchi SNC"}
	s := c.Sanitized()
	if s.Password != "" {
		t.Fatalf("password not cleared")
	}
	if s.ID != "c1" || s.Username != "giulia" || s.CompanyName != "Bianchi SNC" {
		t.Fatalf("other fields must survive sanitization: %+v", s)
	}
	if c.Password != "pw" {
		t.Fatalf("Sanitized must not mutate the receiver")
	}
}

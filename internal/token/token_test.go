package token

import "testing"

const secret = "test-secret"

func TestEncodeDecode(t *testing.T) {
	tok, err := Encode(42, "alice@example.com", "alice", secret)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	claims, err := Decode(tok, secret)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if claims.UserId != 42 {
		t.Errorf("UserId = %d, want 42", claims.UserId)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want alice@example.com", claims.Email)
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	tok, err := Encode(42, "", "alice", secret)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, err := Decode(tok, "other-secret"); err == nil {
		t.Error("Decode accepted a token signed with a different secret")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode("not-a-token", secret); err == nil {
		t.Error("Decode accepted garbage")
	}
}

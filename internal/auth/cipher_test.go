package auth

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestNewPasswordCipherRejectsShortKey(t *testing.T) {
	if _, err := NewPasswordCipher([]byte("too short")); err == nil {
		t.Fatal("expected error for 9-byte key")
	}
	if _, err := NewPasswordCipher(testKey(0x01)); err != nil {
		t.Fatalf("unexpected error for 32-byte key: %v", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	cipher, err := NewPasswordCipher(testKey(0x42))
	if err != nil {
		t.Fatal(err)
	}

	for _, plaintext := range []string{"hunter2", "", "pässwörd with ünïcode", strings.Repeat("x", 100)} {
		encoded, err := cipher.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("encrypt %q: %v", plaintext, err)
		}
		got, err := cipher.Decrypt(encoded)
		if err != nil {
			t.Fatalf("decrypt %q: %v", plaintext, err)
		}
		if got != plaintext {
			t.Errorf("round trip: got %q, want %q", got, plaintext)
		}
	}
}

func TestEncryptFormat(t *testing.T) {
	cipher, _ := NewPasswordCipher(testKey(0x42))
	encoded, err := cipher.Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}

	ivHex, ctHex, ok := strings.Cut(encoded, ":")
	if !ok {
		t.Fatalf("missing iv separator in %q", encoded)
	}
	if len(ivHex) != 32 {
		t.Errorf("iv is %d hex chars, want 32", len(ivHex))
	}
	if len(ctHex) == 0 || len(ctHex)%32 != 0 {
		t.Errorf("ciphertext length %d is not a multiple of the block size", len(ctHex))
	}
}

func TestEncryptUsesFreshIV(t *testing.T) {
	cipher, _ := NewPasswordCipher(testKey(0x42))
	first, err := cipher.Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	second, err := cipher.Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two encryptions of the same plaintext produced identical output")
	}
}

func TestDecryptMalformedInput(t *testing.T) {
	cipher, _ := NewPasswordCipher(testKey(0x42))

	for _, encoded := range []string{
		"",
		"no-separator",
		"deadbeef:00",                        // iv too short
		strings.Repeat("0", 32) + ":zz",      // bad hex ciphertext
		strings.Repeat("0", 32) + ":deadbeef", // ciphertext not block aligned
	} {
		if _, err := cipher.Decrypt(encoded); !errors.Is(err, ErrDecrypt) {
			t.Errorf("Decrypt(%q): got %v, want ErrDecrypt", encoded, err)
		}
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	cipherA, _ := NewPasswordCipher(testKey(0x0a))
	cipherB, _ := NewPasswordCipher(testKey(0x0b))

	encoded, err := cipherA.Encrypt("original password")
	if err != nil {
		t.Fatal(err)
	}

	got, err := cipherB.Decrypt(encoded)
	if err == nil && got == "original password" {
		t.Fatal("wrong key recovered the plaintext")
	}
	if err != nil && !errors.Is(err, ErrDecrypt) {
		t.Errorf("wrong key: got %v, want ErrDecrypt", err)
	}
}

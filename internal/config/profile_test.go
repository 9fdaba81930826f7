package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfileMissingFile(t *testing.T) {
	p, err := LoadProfile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing profile should not fail, got %v", err)
	}
	if p != DefaultProfile() {
		t.Errorf("expected default profile, got %+v", p)
	}
}

func TestLoadProfileFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Profile
	}{
		{"full", `{"name":"Boss","gender":"female"}`, Profile{Name: "Boss", Gender: GenderFemale}},
		{"blank name", `{"name":"   ","gender":"female"}`, Profile{Name: DefaultName, Gender: GenderFemale}},
		{"unknown gender", `{"name":"Ex","gender":"robot"}`, Profile{Name: "Ex", Gender: GenderMale}},
		{"empty object", `{}`, DefaultProfile()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadProfile(writeProfile(t, tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p != tt.want {
				t.Errorf("got %+v, want %+v", p, tt.want)
			}
		})
	}
}

func TestLoadProfileRelativeImage(t *testing.T) {
	path := writeProfile(t, `{"name":"X","image":"face.png"}`)
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(filepath.Dir(path), "face.png")
	if p.Image != want {
		t.Errorf("image path = %q, want %q", p.Image, want)
	}
}

func TestLoadProfileInvalidJSON(t *testing.T) {
	p, err := LoadProfile(writeProfile(t, `{not json`))
	if err == nil {
		t.Fatal("expected an error for malformed json")
	}
	if p != DefaultProfile() {
		t.Errorf("malformed profile should fall back to defaults, got %+v", p)
	}
}

func TestLoadProfileKeepsDataURI(t *testing.T) {
	const img = "data:image/png;base64,iVBORw0KGgo="
	p, err := LoadProfile(writeProfile(t, `{"name":"X","image":"`+img+`"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Image != img {
		t.Errorf("data URI was rewritten to %q", p.Image)
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultName   = "TARGET"
	GenderMale    = "male"
	GenderFemale  = "female"
	profileFolder = "RageRoom"
	profileFile   = "profile.json"
)

// Profile: настройки цели, записанные экраном подготовки.
// Читается один раз при старте и дальше не меняется.
type Profile struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Image  string `json:"image,omitempty"` // путь к фото или data:image/...;base64
}

// DefaultProfile возвращает профиль-заглушку.
func DefaultProfile() Profile {
	return Profile{Name: DefaultName, Gender: GenderMale}
}

// ProfilePath возвращает путь к профилю в каталоге настроек ОС.
func ProfilePath() (string, error) {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, profileFolder, profileFile), nil
	}
	if dir, err := os.UserHomeDir(); err == nil && dir != "" {
		return filepath.Join(dir, "."+profileFolder, profileFile), nil
	}
	return "", errors.New("no config dir")
}

// LoadProfile reads the profile at path. A missing file is not an error:
// the default profile is returned. Every field that is absent or invalid
// falls back to its default.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read profile: %w", err)
	}

	var raw Profile
	if err := json.Unmarshal(data, &raw); err != nil {
		return p, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return raw.normalized(filepath.Dir(path)), nil
}

func (p Profile) normalized(baseDir string) Profile {
	out := DefaultProfile()
	if name := strings.TrimSpace(p.Name); name != "" {
		out.Name = name
	}
	if p.Gender == GenderFemale {
		out.Gender = GenderFemale
	}
	if img := strings.TrimSpace(p.Image); img != "" {
		if !strings.HasPrefix(img, "data:") && !filepath.IsAbs(img) {
			img = filepath.Join(baseDir, img)
		}
		out.Image = img
	}
	return out
}

package storage

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"studydesk/internal/core/model"
	"studydesk/internal/session"
)

const sessionFileName = "session.yaml"

type yamlCookie struct {
	Name     string    `yaml:"name"`
	Value    string    `yaml:"value"`
	Path     string    `yaml:"path,omitempty"`
	Domain   string    `yaml:"domain,omitempty"`
	Expires  time.Time `yaml:"expires,omitempty"`
	Secure   bool      `yaml:"secure,omitempty"`
	HTTPOnly bool      `yaml:"http_only,omitempty"`
}

type yamlSession struct {
	User    *model.User  `yaml:"user"`
	Cookies []yamlCookie `yaml:"cookies"`
}

// SessionFile persists the signed-in user next to the settings file.
type SessionFile struct {
	appName string
}

// NewSessionFile returns the session persister for appName.
func NewSessionFile(appName string) *SessionFile {
	return &SessionFile{appName: appName}
}

// LoadSession reads the stored session. A missing file is an empty session.
func (file *SessionFile) LoadSession() (session.Record, error) {
	path, err := resolveConfigPath(file.appName, sessionFileName)
	if err != nil {
		return session.Record{}, err
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return session.Record{}, nil
		}
		return session.Record{}, fmt.Errorf("read session file: %w", err)
	}

	var fileData yamlSession
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return session.Record{}, fmt.Errorf("parse session yaml: %w", err)
	}

	record := session.Record{User: fileData.User}
	now := time.Now()
	for _, cookie := range fileData.Cookies {
		if !cookie.Expires.IsZero() && cookie.Expires.Before(now) {
			continue
		}
		record.Cookies = append(record.Cookies, &http.Cookie{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Path:     cookie.Path,
			Domain:   cookie.Domain,
			Expires:  cookie.Expires,
			Secure:   cookie.Secure,
			HttpOnly: cookie.HTTPOnly,
		})
	}
	return record, nil
}

// SaveSession writes the session with owner-only permissions.
func (file *SessionFile) SaveSession(record session.Record) error {
	path, err := resolveConfigPath(file.appName, sessionFileName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSession{User: record.User}
	for _, cookie := range record.Cookies {
		fileData.Cookies = append(fileData.Cookies, yamlCookie{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Path:     cookie.Path,
			Domain:   cookie.Domain,
			Expires:  cookie.Expires,
			Secure:   cookie.Secure,
			HTTPOnly: cookie.HttpOnly,
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal session yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// ClearSession removes the session file.
func (file *SessionFile) ClearSession() error {
	path, err := resolveConfigPath(file.appName, sessionFileName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

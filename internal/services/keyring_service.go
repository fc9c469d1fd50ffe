package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/99designs/keyring"
)

const serviceName = "eoapi"

func GetOS() string {
	return runtime.GOOS
}

// OpenKeyring opens the OS credential store. The encrypted file backend in
// the user config dir is the last resort on systems without one.
func OpenKeyring() (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:              serviceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  serviceName,
		KWalletAppID:             serviceName,
		KWalletFolder:            serviceName,
		WinCredPrefix:            serviceName,
		FilePasswordFunc:         keyring.FixedStringPrompt(serviceName),
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		cfg.FileDir = filepath.Join(configDir, serviceName, "keyring")
	}
	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

type KeyringService struct {
	ring keyring.Keyring
}

// NewKeyringService wraps ring; a nil ring falls back to an in-memory one.
func NewKeyringService(ring keyring.Keyring) *KeyringService {
	if ring == nil {
		ring = keyring.NewArrayKeyring(nil)
	}
	return &KeyringService{ring: ring}
}

func (s *KeyringService) StoreToken(key string, token string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if token == "" {
		return errors.New("token is empty")
	}
	return s.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(token),
		Label:       key,
		Description: "eoapi credential for " + key,
	})
}

// GetToken returns "" when nothing is stored under key.
func (s *KeyringService) GetToken(key string) (string, error) {
	if key == "" {
		return "", errors.New("key is required")
	}
	item, err := s.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(item.Data), nil
}

func (s *KeyringService) DeleteToken(key string) error {
	if key == "" {
		return errors.New("key is required")
	}
	if err := s.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

func (s *KeyringService) ListTokens() ([]map[string]string, error) {
	keys, err := s.ring.Keys()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	results := make([]map[string]string, 0, len(keys))
	for _, key := range keys {
		results = append(results, map[string]string{
			"key":         key,
			"label":       key,
			"description": "eoapi credential for " + key,
		})
	}
	return results, nil
}

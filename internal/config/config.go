package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/crazywolf132/statscmd/internal/ui"
	"golang.org/x/crypto/pbkdf2"
)

var data = map[string]string{}

// LoadAllConfigs reads the config file into memory. A missing file is not an
// error.
func LoadAllConfigs() error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			data = map[string]string{}
			return nil
		}
		return err
	}
	tmp := map[string]string{}
	if err := toml.Unmarshal(b, &tmp); err != nil {
		return fmt.Errorf("failed to parse %s: %w", p, err)
	}
	data = tmp
	return nil
}

// Get returns the value stored for key, decrypting sensitive keys.
func Get(key string) string {
	val, ok := data[key]
	if !ok {
		return ""
	}
	if IsSensitive(key) {
		decrypted, err := decryptValue(val)
		if err != nil {
			ui.Warnf("Failed to decrypt sensitive value: %v\n", err)
			return ""
		}
		return decrypted
	}
	return val
}

// Set stores key=value and writes the config file. Sensitive values are
// encrypted before they are written.
func Set(key, value string) error {
	if IsSensitive(key) {
		encrypted, err := encryptValue(value)
		if err != nil {
			return fmt.Errorf("failed to secure sensitive value: %w", err)
		}
		value = encrypted
	}
	data[key] = value
	return writeConfig()
}

// Unset removes a configuration value
func Unset(key string) error {
	delete(data, key)
	return writeConfig()
}

// Keys returns the stored keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every stored setting with sensitive values decrypted.
func All() map[string]string {
	all := make(map[string]string, len(data))
	for k := range data {
		all[k] = Get(k)
	}
	return all
}

// Dir returns the statscmd configuration directory, creating it if needed.
func Dir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// On Windows, use %APPDATA%
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "statscmd")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "statscmd")
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			xdgConfig = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfig, "statscmd")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

// Path returns the location of config.toml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func writeConfig() error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := toml.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0600)
}

// keys whose values are encrypted at rest
var sensitiveKeys = []string{
	"github.token",
	"auth.token",
}

// IsSensitive reports whether key holds a secret.
func IsSensitive(key string) bool {
	for _, k := range sensitiveKeys {
		if strings.HasPrefix(strings.ToLower(key), k) {
			return true
		}
	}
	return false
}

// getMasterKey derives a master encryption key from system-specific data
func getMasterKey() ([]byte, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	// machine-id is usually in /etc/machine-id or /var/lib/dbus/machine-id
	var machineID string
	if runtime.GOOS != "windows" {
		if id, err := os.ReadFile("/etc/machine-id"); err == nil {
			machineID = string(id)
		} else if id, err := os.ReadFile("/var/lib/dbus/machine-id"); err == nil {
			machineID = string(id)
		}
	}

	systemData := fmt.Sprintf("%s:%s:%s:%s", homeDir, runtime.GOOS, runtime.GOARCH, machineID)

	salt := []byte("statscmd-config-v1")
	return pbkdf2.Key([]byte(systemData), salt, 100000, 32, sha256.New), nil
}

func newGCM() (cipher.AEAD, error) {
	masterKey, err := getMasterKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key: %w", err)
	}
	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// encryptValue seals value with AES-GCM and base64 encodes nonce+ciphertext.
func encryptValue(value string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(value), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func decryptValue(encrypted string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decode encrypted value: %w", err)
	}

	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("invalid ciphertext length")
	}

	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt value (possibly corrupted or from different system)")
	}
	return string(plaintext), nil
}

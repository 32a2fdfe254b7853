// Package vancli holds the state shared by the vancli subcommands:
// the settings written by `vancli configure`, the home directory
// layout, and the configured API client.
package vancli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/apex/log"
	everyaction "github.com/everyaction/everyaction-go"
	"github.com/everyaction/everyaction-go/internal/kvstore"
	"github.com/pkg/errors"
)

// settingsKey is the file name of the settings inside the home
// directory.
const settingsKey = "settings.json"

// Settings is what `vancli configure` writes. Empty credentials fall
// back to the EVERYACTION_APP_NAME and EVERYACTION_API_KEY
// environment variables when the client is constructed.
type Settings struct {
	AppName  string `json:"app_name"`
	APIKey   string `json:"api_key"`
	Endpoint string `json:"endpoint"`
	Mode     string `json:"mode"`
}

// Context carries what the subcommands need to talk to the API.
type Context struct {
	// Home is the vancli home directory.
	Home string

	// Settings are the stored settings.
	Settings *Settings

	// Client is the configured API client.
	Client *everyaction.Client
}

// DefaultHome returns the default vancli home directory.
func DefaultHome() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locating the user config directory")
	}
	return filepath.Join(dir, "vancli"), nil
}

// DatabasePath returns the path of the sync database inside home.
func DatabasePath(home string) string {
	return filepath.Join(home, "vancli.sqlite3")
}

// ReadSettings loads the stored settings. A missing settings file
// yields empty settings rather than an error, so that the environment
// fallback still applies on a never-configured installation.
func ReadSettings(home string) (*Settings, error) {
	store, err := kvstore.NewFS(home)
	if err != nil {
		return nil, errors.Wrap(err, "opening the settings store")
	}
	data, err := store.Get(settingsKey)
	if errors.Is(err, kvstore.ErrNoSuchKey) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading settings")
	}
	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrap(err, "parsing settings")
	}
	return settings, nil
}

// WriteSettings stores the settings in the home directory.
func WriteSettings(home string, settings *Settings) error {
	store, err := kvstore.NewFS(home)
	if err != nil {
		return errors.Wrap(err, "opening the settings store")
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}
	return errors.Wrap(store.Set(settingsKey, data), "writing settings")
}

// New loads the settings from home and constructs the API client.
func New(home string) (*Context, error) {
	settings, err := ReadSettings(home)
	if err != nil {
		return nil, err
	}
	log.Debugf("vancli home: %s", home)
	client, err := everyaction.New(&everyaction.Config{
		AppName:  settings.AppName,
		APIKey:   settings.APIKey,
		Endpoint: settings.Endpoint,
		Mode:     settings.Mode,
		Logger:   log.Log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "run `vancli configure` first")
	}
	return &Context{Home: home, Settings: settings, Client: client}, nil
}

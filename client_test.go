package everyaction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/everyaction/everyaction-go/internal/testingx"
)

func TestNewCredentials(t *testing.T) {
	t.Run("explicit credentials with a mode name", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret", Mode: "MyCampaign"})
		if err != nil {
			t.Fatal(err)
		}
		if client.AppName() != "app" {
			t.Fatal("unexpected app name", client.AppName())
		}
		if client.Mode() != "MyCampaign" {
			t.Fatal("unexpected mode", client.Mode())
		}
	})

	t.Run("mode names are case-insensitive", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret", Mode: "voterfile"})
		if err != nil {
			t.Fatal(err)
		}
		if client.Mode() != "VoterFile" {
			t.Fatal("unexpected mode", client.Mode())
		}
	})

	t.Run("the mode may be given as a digit", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret", Mode: "1"})
		if err != nil {
			t.Fatal(err)
		}
		if client.Mode() != "MyCampaign" {
			t.Fatal("unexpected mode", client.Mode())
		}
	})

	t.Run("a key may carry its own mode suffix", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0"})
		if err != nil {
			t.Fatal(err)
		}
		if client.Mode() != "VoterFile" {
			t.Fatal("unexpected mode", client.Mode())
		}
	})

	t.Run("a key suffix and an explicit mode conflict", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret|0", Mode: "VoterFile"})
		if err == nil || !strings.Contains(err.Error(), "already indicated") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("a mode is required somewhere", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret"})
		if err == nil || !strings.Contains(err.Error(), "mode must either be specified") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("at most one pipe in the key", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "se|cret|0"})
		if err == nil || !strings.Contains(err.Error(), "at most 1") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("the pipe must be second-to-last", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret|00"})
		if err == nil || !strings.Contains(err.Error(), "second-to-last") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("the mode suffix must be a known digit", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret|7"})
		if err == nil || !strings.Contains(err.Error(), "too high") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("unknown mode names list the supported ones", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret", Mode: "BothFiles"})
		if err == nil || !strings.Contains(err.Error(), "VoterFile, MyCampaign") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("an app name alone is not enough", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", Mode: "VoterFile"})
		if err == nil || !strings.Contains(err.Error(), "APIKey must be set") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("credentials fall back to the environment", func(t *testing.T) {
		t.Setenv(AppNameEnv, "envapp")
		t.Setenv(APIKeyEnv, "envsecret|1")
		client, err := New(nil)
		if err != nil {
			t.Fatal(err)
		}
		if client.AppName() != "envapp" || client.Mode() != "MyCampaign" {
			t.Fatal("unexpected client", client)
		}
	})

	t.Run("a missing environment is an error", func(t *testing.T) {
		t.Setenv(AppNameEnv, "")
		t.Setenv(APIKeyEnv, "")
		_, err := New(nil)
		if err == nil || !strings.Contains(err.Error(), AppNameEnv) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestNewEndpoint(t *testing.T) {
	t.Run("the default region is US", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0"})
		if err != nil {
			t.Fatal(err)
		}
		if client.Endpoint() != EndpointUS {
			t.Fatal("unexpected endpoint", client.Endpoint())
		}
	})

	t.Run("region aliases are case-insensitive", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0", Endpoint: "Intl"})
		if err != nil {
			t.Fatal(err)
		}
		if client.Endpoint() != EndpointINTL {
			t.Fatal("unexpected endpoint", client.Endpoint())
		}
	})

	t.Run("full URLs pass through", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0", Endpoint: "http://127.0.0.1:9999"})
		if err != nil {
			t.Fatal(err)
		}
		if client.Endpoint() != "http://127.0.0.1:9999" {
			t.Fatal("unexpected endpoint", client.Endpoint())
		}
	})

	t.Run("unknown aliases list what is supported", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret|0", Endpoint: "EU"})
		if err == nil || !strings.Contains(err.Error(), "unrecognized endpoint alias") {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestDefaultLimit(t *testing.T) {
	t.Run("a new client starts at fifty", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0"})
		if err != nil {
			t.Fatal(err)
		}
		if client.DefaultLimit() != 50 {
			t.Fatal("unexpected default limit", client.DefaultLimit())
		}
	})

	t.Run("the config may override the initial limit", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0", DefaultLimit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if client.DefaultLimit() != 10 {
			t.Fatal("unexpected default limit", client.DefaultLimit())
		}
	})

	t.Run("a negative config limit is rejected", func(t *testing.T) {
		_, err := New(&Config{AppName: "app", APIKey: "secret|0", DefaultLimit: -1})
		if err == nil || !strings.Contains(err.Error(), "at least 0") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("zero lifts the limit", func(t *testing.T) {
		client, err := New(&Config{AppName: "app", APIKey: "secret|0"})
		if err != nil {
			t.Fatal(err)
		}
		if err := client.SetDefaultLimit(0); err != nil {
			t.Fatal(err)
		}
		if client.DefaultLimit() != 0 {
			t.Fatal("unexpected default limit", client.DefaultLimit())
		}
		if err := client.SetDefaultLimit(-3); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestClientString(t *testing.T) {
	client, err := New(&Config{AppName: "app", APIKey: "secret|1"})
	if err != nil {
		t.Fatal(err)
	}
	expect := "Client(appName=app, endpoint=" + EndpointUS + ", mode=MyCampaign, defaultLimit=50)"
	if got := client.String(); got != expect {
		t.Fatal("unexpected string", got)
	}
}

func TestAPIKeyProfile(t *testing.T) {
	t.Run("returns the single profile", func(t *testing.T) {
		fake := &testingx.FakeVAN{}
		fake.Register("apiKeyProfiles", "userId")
		fake.Append("apiKeyProfiles", map[string]any{
			"username":      "alice",
			"committeeName": "Good Committee",
		})
		client := newTestClient(t, fake)
		profile, err := client.APIKeyProfile(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		username, err := profile.GetString("username")
		if err != nil || username != "alice" {
			t.Fatal("unexpected profile", profile)
		}
	})

	t.Run("no profile means not found", func(t *testing.T) {
		fake := &testingx.FakeVAN{}
		fake.Register("apiKeyProfiles", "userId")
		client := newTestClient(t, fake)
		_, err := client.APIKeyProfile(context.Background())
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatal("unexpected error", err)
		}
	})
}

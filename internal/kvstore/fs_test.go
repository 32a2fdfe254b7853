package kvstore

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestFSRoundTrip(t *testing.T) {
	kvs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	value := []byte(`{"app_name":"fieldapp","endpoint":"US"}`)
	if err := kvs.Set("config.json", value); err != nil {
		t.Fatal(err)
	}
	ovalue, err := kvs.Get("config.json")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ovalue, value) {
		t.Fatal("invalid value")
	}
}

func TestFSNoSuchKey(t *testing.T) {
	kvs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	value, err := kvs.Get("config.json")
	if !errors.Is(err, ErrNoSuchKey) {
		t.Fatal("not the error we expected", err)
	}
	if value != nil {
		t.Fatal("expected nil value")
	}
}

func TestFSMkdirFailure(t *testing.T) {
	expect := errors.New("mocked error")
	mkdir := func(path string, perm fs.FileMode) error {
		return expect
	}
	kvs, err := newFS(filepath.Join("testdata", "state"), mkdir)
	if !errors.Is(err, expect) {
		t.Fatal("not the error we expected", err)
	}
	if kvs != nil {
		t.Fatal("expected nil here")
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	kvs := &Memory{}
	if _, err := kvs.Get("sync.state"); !errors.Is(err, ErrNoSuchKey) {
		t.Fatal("expected ErrNoSuchKey for the empty store")
	}
	value := []byte(`{"last_sync":"2024-06-01T00:00:00Z"}`)
	if err := kvs.Set("sync.state", value); err != nil {
		t.Fatal(err)
	}
	ovalue, err := kvs.Get("sync.state")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ovalue, value) {
		t.Fatal("invalid value")
	}
}

package must

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	data := MarshalJSON("foobar")
	if string(data) != "\"foobar\"" {
		t.Fatal("incorrect marshalling")
	}
}

type example struct {
	Name string
	Age  int
}

func TestMarshalAndIndentJSON(t *testing.T) {
	input := &example{Name: "ada", Age: 36}
	data := MarshalAndIndentJSON(input, "", "    ")
	expected := []byte("{\n    \"Name\": \"ada\",\n    \"Age\": 36\n}")
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Fatal(diff)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var entry example
	UnmarshalJSON([]byte(`{"Name": "ada", "Age": 36}`), &entry)
	if entry.Name != "ada" || entry.Age != 36 {
		t.Fatal("incorrect unmarshalling")
	}
}

func TestUnmarshalJSONPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	var entry example
	UnmarshalJSON([]byte(`{`), &entry)
}

func TestParseURL(t *testing.T) {
	URL := ParseURL("https://api.securevan.com/v4")
	if URL.Scheme != "https" || URL.Host != "api.securevan.com" || URL.Path != "/v4" {
		t.Fatal("unexpected parsed URL")
	}
}

func TestNewHTTPRequest(t *testing.T) {
	req := NewHTTPRequest("GET", "https://api.securevan.com/v4/people", nil)
	if req.Method != "GET" || req.URL.Host != "api.securevan.com" {
		t.Fatal("unexpected request")
	}
}

func TestFprintf(t *testing.T) {
	w := &bytes.Buffer{}
	Fprintf(w, "hello %s", "world")
	if w.String() != "hello world" {
		t.Fatal("unexpected buffer content")
	}
}

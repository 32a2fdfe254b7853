package everyaction

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPersonKind(t *testing.T) {
	t.Run("the id answers to vanId and its snake form", func(t *testing.T) {
		bare := Person.MustNew(Args{"id": 3})
		for _, spelling := range []string{"vanId", "van_id"} {
			other := Person.MustNew(Args{spelling: 3})
			if !bare.Equal(other) {
				t.Fatalf("Person(%s=3) differs from Person(id=3)", spelling)
			}
		}
	})

	t.Run("a bare phone string becomes a one-element phone list", func(t *testing.T) {
		person := Person.MustNew(Args{"phone": "5125550117"})
		raw, err := person.Get("phones")
		if err != nil {
			t.Fatal(err)
		}
		elems, _ := asSlice(raw)
		if len(elems) != 1 {
			t.Fatal("expected one phone, got", raw)
		}
		number, err := elems[0].(*Object).GetString("phoneNumber")
		if err != nil || number != "5125550117" {
			t.Fatal("unexpected phone", elems[0], err)
		}
	})

	t.Run("preferred accessors", func(t *testing.T) {
		person := Person.MustNew(Args{
			"emails": []any{
				Args{"email": "old@example.org"},
				Args{"email": "new@example.org", "isPreferred": true},
			},
		})
		if got := PreferredEmail(person); got != "new@example.org" {
			t.Fatal("unexpected preferred email", got)
		}
		if PreferredAddress(person) != nil {
			t.Fatal("expected no preferred address")
		}
	})
}

func TestPhoneFactory(t *testing.T) {
	t.Run("an integer is the id", func(t *testing.T) {
		phone, err := phoneFactory(7)
		if err != nil {
			t.Fatal(err)
		}
		if !phone.(*Object).Equal(Phone.ID(7)) {
			t.Fatal("unexpected phone", phone)
		}
	})

	t.Run("a string is the number", func(t *testing.T) {
		phone, err := phoneFactory("5125550117")
		if err != nil {
			t.Fatal(err)
		}
		number, err := phone.(*Object).GetString("number")
		if err != nil || number != "5125550117" {
			t.Fatal("unexpected phone", phone, err)
		}
	})

	t.Run("a mapping constructs by keyword", func(t *testing.T) {
		phone, err := phoneFactory(map[string]any{"number": "5125550117", "ext": "12"})
		if err != nil {
			t.Fatal(err)
		}
		if phone.(*Object).Len() != 2 {
			t.Fatal("unexpected phone", phone)
		}
	})

	t.Run("anything else is an error", func(t *testing.T) {
		if _, err := phoneFactory(3.25); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestEmailFactory(t *testing.T) {
	t.Run("a string is the address", func(t *testing.T) {
		email, err := emailFactory("alice@example.com")
		if err != nil {
			t.Fatal(err)
		}
		address, err := email.(*Object).GetString("email")
		if err != nil || address != "alice@example.com" {
			t.Fatal("unexpected email", email, err)
		}
	})

	t.Run("a mapping constructs by keyword", func(t *testing.T) {
		email, err := emailFactory(map[string]any{"email": "a@b.org", "isPreferred": true})
		if err != nil {
			t.Fatal(err)
		}
		if email.(*Object).Len() != 2 {
			t.Fatal("unexpected email", email)
		}
	})

	t.Run("anything else is an error", func(t *testing.T) {
		if _, err := emailFactory(12); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestSuppression(t *testing.T) {
	t.Run("codes and names cross-fill", func(t *testing.T) {
		byCode := NewSuppression("NC")
		name, err := byCode.GetString("name")
		if err != nil || name != "do not call" {
			t.Fatal("unexpected name", name, err)
		}
		byName := NewSuppression("do not call")
		if !SameSuppression(byCode, byName) {
			t.Fatal("code and name spellings must denote the same suppression")
		}
	})

	t.Run("codes compare case-insensitively", func(t *testing.T) {
		if !SameSuppression(NewSuppression("nc"), NoCall) {
			t.Fatal("expected a match")
		}
		if SameSuppression(NoCall, NoEmail) {
			t.Fatal("expected no match")
		}
	})

	t.Run("add, query, and remove on a person", func(t *testing.T) {
		person := Person.MustNew(Args{"id": 3})
		if _, known := HasSuppression(person, NoCall); known {
			t.Fatal("no suppression information yet")
		}
		changed, err := AddSuppression(person, NoCall)
		if err != nil || !changed {
			t.Fatal("expected a change", err)
		}
		changed, err = AddSuppression(person, NewSuppression("nc"))
		if err != nil || changed {
			t.Fatal("an equivalent suppression must not change the person", err)
		}
		has, known := HasSuppression(person, NoCall)
		if !has || !known {
			t.Fatal("expected the suppression to be present")
		}
		changed, err = RemoveSuppression(person, NoCall)
		if err != nil || !changed {
			t.Fatal("expected a change", err)
		}
		has, known = HasSuppression(person, NoCall)
		if has || !known {
			t.Fatal("expected the suppression to be gone")
		}
	})
}

func TestChangeTypeKind(t *testing.T) {
	// The wire format capitalizes this identity field as "ID", so the
	// assembled canonical name is "changeTypeID" rather than
	// "changeTypeId".
	ct := ChangeType.MustNew(Args{"ID": 5, "name": "created"})
	if diff := cmp.Diff([]string{"changeTypeID", "changeTypeName"}, ct.Fields()); diff != "" {
		t.Fatal(diff)
	}
	if !ct.Equal(ChangeType.MustNew(Args{"change_type_id": 5, "changeTypeName": "created"})) {
		t.Fatal("alias spellings produced unequal objects")
	}
}

func TestScriptResponseFactory(t *testing.T) {
	t.Run("dispatches on the type property", func(t *testing.T) {
		raw, err := scriptResponseFactory(map[string]any{
			"type":   "activistCode",
			"id":     12,
			"action": "Apply",
		})
		if err != nil {
			t.Fatal(err)
		}
		obj := raw.(*Object)
		if obj.Kind() != ActivistCodeResponse {
			t.Fatal("unexpected kind", obj.Kind().Name())
		}
		typ, err := obj.GetString("type")
		if err != nil || typ != "ActivistCode" {
			t.Fatal("the type must be stored canonically capitalized:", typ, err)
		}
	})

	t.Run("a missing type is an error", func(t *testing.T) {
		if _, err := scriptResponseFactory(map[string]any{"id": 12}); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestJobActionTypeFactory(t *testing.T) {
	raw, err := jobActionTypeFactory(map[string]any{
		"actionType":     "loadSavedListFile",
		"listName":       "walk list",
		"folderId":       4,
		"personIdType":   "VANID",
		"personIdColumn": "vanid",
	})
	if err != nil {
		t.Fatal(err)
	}
	obj := raw.(*Object)
	if obj.Kind() != SavedListLoadAction {
		t.Fatal("unexpected kind", obj.Kind().Name())
	}
	actionType, err := obj.GetString("actionType")
	if err != nil || actionType != "LoadSavedListFile" {
		t.Fatal("unexpected action type", actionType, err)
	}
	if _, err := jobActionTypeFactory(map[string]any{"listName": "x"}); err == nil {
		t.Fatal("a missing actionType must be an error")
	}
}

func TestExpandFactory(t *testing.T) {
	joined, err := expandFactory([]string{"phones", "emails"})
	if err != nil || joined != "phones,emails" {
		t.Fatal("unexpected result", joined, err)
	}
	passthrough, err := expandFactory("phones")
	if err != nil || passthrough != "phones" {
		t.Fatal("unexpected result", passthrough, err)
	}
	if _, err := expandFactory(3); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseChangedEntityValue(t *testing.T) {
	boolField := ChangedEntityField.MustNew(Args{"name": "IsDeceased", "fieldType": "B"})
	dateField := ChangedEntityField.MustNew(Args{"name": "DateChanged", "fieldType": "D"})
	numField := ChangedEntityField.MustNew(Args{"name": "VanID", "fieldType": "N"})
	textField := ChangedEntityField.MustNew(Args{"name": "FirstName", "fieldType": "T"})

	t.Run("empty cells yield nil", func(t *testing.T) {
		value, err := ParseChangedEntityValue(boolField, "")
		if err != nil || value != nil {
			t.Fatal("unexpected result", value, err)
		}
	})

	t.Run("booleans", func(t *testing.T) {
		value, err := ParseChangedEntityValue(boolField, "TRUE")
		if err != nil || value != true {
			t.Fatal("unexpected result", value, err)
		}
		if _, err := ParseChangedEntityValue(boolField, "maybe"); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("timestamps", func(t *testing.T) {
		value, err := ParseChangedEntityValue(dateField, "2024-06-01T09:00:00")
		if err != nil {
			t.Fatal(err)
		}
		expect := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		if !value.(time.Time).Equal(expect) {
			t.Fatal("unexpected time", value)
		}
	})

	t.Run("integers", func(t *testing.T) {
		value, err := ParseChangedEntityValue(numField, "123")
		if err != nil || value != 123 {
			t.Fatal("unexpected result", value, err)
		}
	})

	t.Run("text passes through", func(t *testing.T) {
		value, err := ParseChangedEntityValue(textField, "Ann")
		if err != nil || value != "Ann" {
			t.Fatal("unexpected result", value, err)
		}
	})

	t.Run("unknown type codes are errors", func(t *testing.T) {
		weird := ChangedEntityField.MustNew(Args{"name": "X", "fieldType": "Z"})
		_, err := ParseChangedEntityValue(weird, "1")
		if err == nil || !strings.Contains(err.Error(), "unknown field type") {
			t.Fatal("unexpected error", err)
		}
	})
}

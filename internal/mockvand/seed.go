package mockvand

//
// Seed data for the fake committee
//

import "github.com/everyaction/everyaction-go/internal/testingx"

// newSeededVAN constructs the fake API server and populates it with a
// small committee: a handful of people, events, saved lists and codes.
func newSeededVAN() *testingx.FakeVAN {
	fake := &testingx.FakeVAN{}

	fake.Register("people", "vanId")
	fake.Append("people", map[string]any{
		"vanId":     101,
		"firstName": "Elaine",
		"lastName":  "Ramirez",
		"emails":    []any{map[string]any{"email": "elaine.ramirez@example.org"}},
		"phones":    []any{map[string]any{"phoneNumber": "5125550117"}},
	}, map[string]any{
		"vanId":     102,
		"firstName": "Marcus",
		"lastName":  "Okafor",
		"emails":    []any{map[string]any{"email": "marcus.okafor@example.org"}},
	}, map[string]any{
		"vanId":     103,
		"firstName": "Priya",
		"lastName":  "Natarajan",
		"emails":    []any{map[string]any{"email": "priya.n@example.org"}},
	})

	fake.Register("events", "eventId")
	fake.Append("events", map[string]any{
		"eventId":   750000401,
		"name":      "Canvass Launch Northside",
		"shortName": "CanvassN",
		"eventType": map[string]any{"eventTypeId": 296199, "name": "Canvass"},
		"startDate": "2024-06-01T09:00:00-05:00",
		"endDate":   "2024-06-01T13:00:00-05:00",
	}, map[string]any{
		"eventId":   750000402,
		"name":      "Phone Bank Tuesday",
		"shortName": "PhoneTue",
		"eventType": map[string]any{"eventTypeId": 296200, "name": "Phone Bank"},
		"startDate": "2024-06-04T17:00:00-05:00",
		"endDate":   "2024-06-04T20:00:00-05:00",
	})

	fake.Register("savedLists", "savedListId")
	fake.Append("savedLists", map[string]any{
		"savedListId": 420117,
		"name":        "Likely Supporters Q2",
		"description": "Scores above 70 in the support model",
		"listCount":   18244,
		"doorCount":   9120,
	}, map[string]any{
		"savedListId": 420118,
		"name":        "Lapsed Volunteers",
		"description": nil,
		"listCount":   312,
		"doorCount":   297,
	})

	fake.Register("codes", "codeId")
	fake.Append("codes", map[string]any{
		"codeId":   30031,
		"name":     "Yard Sign",
		"codeType": "Tag",
	}, map[string]any{
		"codeId":   30032,
		"name":     "Do Not Mail",
		"codeType": "Tag",
	})

	fake.Register("activistCodes", "activistCodeId")
	fake.Append("activistCodes", map[string]any{
		"activistCodeId": 4501,
		"name":           "Volunteer Prospect",
		"type":           "Volunteer",
		"status":         "Active",
	}, map[string]any{
		"activistCodeId": 4502,
		"name":           "Union Member",
		"type":           "Constituency",
		"status":         "Active",
	})

	fake.Register("surveyQuestions", "surveyQuestionId")
	fake.Append("surveyQuestions", map[string]any{
		"surveyQuestionId": 8801,
		"name":             "Candidate ID",
		"mediumName":       "CandID",
		"scriptQuestion":   "Who do you plan to support?",
		"status":           "Active",
		"cycle":            2024,
	})

	return fake
}

// newSeededExports constructs the fake export service with a small
// contact changes file matching the seeded people.
func newSeededExports() *testingx.FakeChangedEntities {
	return &testingx.FakeChangedEntities{
		CSVFiles: []string{
			"VanID,ChangeTypeID,ChangeTypeName,DateChanged,FirstName,LastName\r\n" +
				"101,0,CreatedContact,2024-05-01T10:00:00Z,Elaine,Ramirez\r\n" +
				"102,2,ContactMiddleNameChanged,2024-05-02T11:30:00Z,Marcus,Okafor\r\n" +
				"103,0,CreatedContact,2024-05-03T09:15:00Z,Priya,Natarajan\r\n",
		},
		ChangeTypes: []map[string]any{{
			"changeTypeID":   0,
			"changeTypeName": "CreatedContact",
		}, {
			"changeTypeID":   2,
			"changeTypeName": "ContactMiddleNameChanged",
		}},
		Fields: []map[string]any{{
			"fieldName": "VanID",
			"fieldType": "N",
		}, {
			"fieldName": "FirstName",
			"fieldType": "T",
		}, {
			"fieldName": "LastName",
			"fieldType": "T",
		}},
		Resources: []string{"Contacts", "ContactsActivistCodes"},
	}
}

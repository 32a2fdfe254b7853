package everyaction

//
// The kind catalog: every remote object type the services traffic in,
// declared under the names the API reference uses. Kinds referencing
// other kinds name them as strings, resolved at conversion time, so
// declaration order only matters for readers.
//

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ActivistCode represents an activist code.
var ActivistCode = declareKind("ActivistCode", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "activistCode",
	Shared: []string{
		"description", "isMultiAssign", "mediumName", "scriptQuestion",
		"shortName", "status", "type",
	},
})

// ActivistCodeData represents an activist code as it appears in a
// person's activist code list.
var ActivistCodeData = declareKind("ActivistCodeData", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "activistCode",
	Prefixed: []string{"name", "typeAndName"},
	Shared:   []string{"canvassedBy", "dateCanvassed", "dateCreated"},
})

// Adjustment represents an adjustment to a contribution.
var Adjustment = declareKind("Adjustment", kindSpec{
	Shared: []string{"adjustmentType", "amount", "datePosted"},
})

// AdjustmentResponse is the result of posting an [Adjustment].
var AdjustmentResponse = declareKind("AdjustmentResponse", kindSpec{
	Shared: []string{"contributionId", "dateAdjusted", "originalAmount", "remainingAmount"},
})

// APIKeyProfile describes the committee and permissions of an API key.
var APIKeyProfile = declareKind("APIKeyProfile", kindSpec{
	Shared: []string{
		"apiKeyTypeName", "committeeId", "committeeName", "databaseName",
		"hasMyCampaign", "hasMyVoters", "keyReference", "stateId",
		"username", "userFirstName", "userLastName",
	},
})

// Attribution represents a contribution attribution.
var Attribution = declareKind("Attribution", kindSpec{
	Shared: []string{"amountAttributed", "attributionType", "dateThanked", "notes", "vanId"},
})

// AvailableValue is one selectable value of a custom field.
var AvailableValue = declareKind("AvailableValue", kindSpec{
	ID:      "id",
	NameKey: "name",
	Shared:  []string{"parentValueId"},
})

// Ballot reference kinds.
var (
	BallotRequestType  = declareKind("BallotRequestType", kindSpec{ID: "id", NameKey: "name", Prefix: "ballotRequestType"})
	BallotReturnStatus = declareKind("BallotReturnStatus", kindSpec{ID: "id", NameKey: "name", Prefix: "ballotReturnStatus"})
	BallotType         = declareKind("BallotType", kindSpec{ID: "id", NameKey: "name", Prefix: "ballotType"})
)

// BankAccount represents a committee bank account.
var BankAccount = declareKind("BankAccount", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "bankAccount",
})

// BargainingUnit represents a bargaining unit.
var BargainingUnit = declareKind("BargainingUnit", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "bargainingUnit",
	Shared:  []string{"employerBargainingUnitId", "shortName"},
})

// Canvasser represents a MiniVAN canvasser.
var Canvasser = declareKind("Canvasser", kindSpec{
	ID:     "id",
	Prefix: "canvasser",
})

// CanvassFileRequest represents a canvass file request.
var CanvassFileRequest = declareKind("CanvassFileRequest", kindSpec{
	ID: "id",
	Shared: []string{
		"dateExpired", "downloadUrl", "errorCode", "guid", "savedListId",
		"status", "type", "webhookUrl",
	},
})

// ChangedEntityExportRequest asks for an export of changed entities.
var ChangedEntityExportRequest = declareKind("ChangedEntityExportRequest", kindSpec{
	ID:     "id",
	Prefix: "exportJob",
	Shared: []string{
		"dateChangedFrom", "dateChangedTo", "excludeChangesFromSelf",
		"includeInactive", "requestedCustomFieldIds", "requestedFields",
		"requestedIds", "resourceType",
	},
})

// ChangeType represents a changed entity change type. The id field is
// spelled ID on the wire, giving the unusual canonical changeTypeID.
var ChangeType = declareKind("ChangeType", kindSpec{
	ID:       "ID",
	NameKey:  "name",
	Prefix:   "changeType",
	Prefixed: []string{"name"},
	Shared:   []string{"Description"},
	Fields:   map[string]*Field{"ID": prop()},
})

// CodeResult reports the outcome of one code in a batch operation.
var CodeResult = declareKind("CodeResult", kindSpec{
	ID:     "id",
	Prefix: "code",
	Shared: []string{"message"},
})

// Column names one column of a bulk import file.
var Column = declareKind("Column", kindSpec{NameKey: "name"})

// Commitment represents a recurring commitment.
var Commitment = declareKind("Commitment", kindSpec{
	ID:     "id",
	Prefix: "commitment",
	Shared: []string{
		"amount", "ccExpirationMonth", "ccExpirationYear", "creditCardLast4",
		"currency", "designationId", "endDate", "frequency",
		"nextTransactionDate", "paymentType", "startDate", "status",
	},
})

// ConfirmationEmailData configures an online actions form's
// confirmation email.
var ConfirmationEmailData = declareKind("ConfirmationEmailData", kindSpec{
	Shared: []string{
		"copyToEmails", "fromEmail", "fromName", "fromSubject",
		"isConfirmationEmailEnabled", "isRecurringEmailEnabled", "replyToEmail",
	},
})

// ContactType represents a canvass contact type.
var ContactType = declareKind("ContactType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "contactType",
	Shared:  []string{"channelTypeName"},
})

// Constraints describes the validation rules of a value.
var Constraints = declareKind("Constraints", kindSpec{
	Shared: []string{"invalidCharacters", "maxLength"},
})

// ContactHistory records how a note's canvass contact happened.
var ContactHistory = declareKind("ContactHistory", kindSpec{
	Shared: []string{"contactTypeId", "dateCanvassed", "inputTypeId", "resultCodeId"},
})

// Currency is an amount in a currency.
var Currency = declareKind("Currency", kindSpec{
	Shared: []string{"amount", "currencyType"},
})

// CustomFieldValue assigns a value to a custom field.
var CustomFieldValue = declareKind("CustomFieldValue", kindSpec{
	Shared: []string{"assignedValue", "customFieldGroupId", "customFieldId"},
})

// Department represents an employer department.
var Department = declareKind("Department", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "department",
	Shared:  []string{"employer", "parentDepartmentId"},
})

// Designation represents a contribution designation.
var Designation = declareKind("Designation", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "designation",
})

// DisclosureFieldValue assigns a value to a disclosure field.
var DisclosureFieldValue = declareKind("DisclosureFieldValue", kindSpec{
	ID:       "id",
	Prefix:   "disclosureField",
	Prefixed: []string{"value"},
	Shared:   []string{"designationId"},
})

// DistrictFieldValue is one value of a district field.
var DistrictFieldValue = declareKind("DistrictFieldValue", kindSpec{
	ID:      "id",
	NameKey: "name",
	Shared:  []string{"parentId"},
})

// Email represents a person's email address.
var Email = declareKind("Email", kindSpec{
	Shared: []string{
		"dateCreated", "email", "isPreferred", "isSubscribed",
		"subscriptionStatus", "type",
	},
})

// EmailMessageContentDistributions carries the statistics of one email
// message content distribution.
var EmailMessageContentDistributions = declareKind("EmailMessageContentDistributions", kindSpec{
	Shared: []string{
		"bounceCount", "contributionCount", "contributionTotal", "dateSent",
		"formSubmissionCount", "linksClickedCount", "machineOpenCount",
		"openCount", "recipientCount", "unsubscribeCount",
	},
})

// EmployerPhone represents an employer's phone number.
var EmployerPhone = declareKind("EmployerPhone", kindSpec{
	ID:     "id",
	Prefix: "organizationPhone",
	Shared: []string{
		"confidenceLevel", "countryCode", "dialingPrefix", "organizationId",
		"phone", "phoneSourceId",
	},
	Fields: map[string]*Field{"phoneType": prop("type")},
})

// EventRole represents a role a person may have at an event.
var EventRole = declareKind("EventRole", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "role",
	Shared:  []string{"goal", "isEventLead", "max", "min"},
})

// EventShift represents a shift of an event.
var EventShift = declareKind("EventShift", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "eventShift",
	Shared:  []string{"endTime", "startTime"},
})

// ExportJobType represents an export job type.
var ExportJobType = declareKind("ExportJobType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "exportJobType",
})

// File describes a downloadable file produced by a job.
var File = declareKind("File", kindSpec{
	Shared: []string{"dateExpired", "downloadUrl", "recordCount"},
})

// FinancialBatch represents a financial batch.
var FinancialBatch = declareKind("FinancialBatch", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "financialBatch",
	Prefixed: []string{"name", "number"},
	Shared: []string{
		"bankAccountId", "checkDate", "checkNumber", "dateClosed",
		"dateDeposited", "dateOpened", "depositNumber", "designationId",
		"expectedContributionCount", "expectedContributionTotalAmount",
		"isAutoGenerated", "isOpen",
	},
})

// Folder represents a folder.
var Folder = declareKind("Folder", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "folder",
})

// GeoCoordinate is a latitude and longitude pair.
var GeoCoordinate = declareKind("GeoCoordinate", kindSpec{
	Shared: []string{"lat", "lon"},
})

// Identifier is an external identifier attached to a record.
var Identifier = declareKind("Identifier", kindSpec{
	Shared: []string{"externalId", "type"},
})

// IsCellStatus represents a phone's is-a-cell confidence status.
var IsCellStatus = declareKind("IsCellStatus", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "status",
	Prefixed: []string{"name"},
})

// JobActionType is the common shape of file loading job actions; the
// concrete kinds are [ScoreLoadAction], [AVEVDataFileAction],
// [SavedListLoadAction], and [PhonesFileAction].
var JobActionType = declareKind("JobActionType", kindSpec{
	Shared: []string{"actionType"},
})

// JobClass represents a job class.
var JobClass = declareKind("JobClass", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "jobClass",
	Shared:  []string{"shortName"},
})

// JobNotification is a status message attached to a file loading job.
var JobNotification = declareKind("JobNotification", kindSpec{
	Shared: []string{"description", "message", "status"},
})

// InputType represents a canvass input type.
var InputType = declareKind("InputType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "inputType",
})

// KeyValuePair is a generic key and value pairing.
var KeyValuePair = declareKind("KeyValuePair", kindSpec{
	Shared: []string{"key", "value"},
})

// Listener receives callbacks about a file loading job.
var Listener = declareKind("Listener", kindSpec{
	Shared: []string{"type", "value"},
})

// MappingValue maps a source value to a target value in a bulk import.
var MappingValue = declareKind("MappingValue", kindSpec{
	ID:      "id",
	NameKey: "name",
	Shared:  []string{"parentId", "sourceValue", "targetValue"},
})

// MembershipSourceCode represents a membership source code.
var MembershipSourceCode = declareKind("MembershipSourceCode", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "code",
	Prefixed: []string{"name"},
})

// MemberStatus represents a member status.
var MemberStatus = declareKind("MemberStatus", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "memberStatus",
	Shared:  []string{"isMember"},
})

// NoteCategory represents a note category.
var NoteCategory = declareKind("NoteCategory", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "noteCategory",
	Shared:  []string{"assignableTypes"},
})

// Pledge represents a pledge.
var Pledge = declareKind("Pledge", kindSpec{
	ID:     "id",
	Prefix: "pledge",
})

// PrintedList represents a printed list.
var PrintedList = declareKind("PrintedList", kindSpec{
	NameKey: "name",
	Shared:  []string{"number"},
})

// ProgramType represents a voter registration program type.
var ProgramType = declareKind("ProgramType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "programType",
})

// Pronoun represents a preferred pronoun set.
var Pronoun = declareKind("Pronoun", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "pronoun",
	Prefixed: []string{"name"},
	Fields: map[string]*Field{
		"id":   prop("preferredPronounId", "preferred_pronoun_id"),
		"name": prop("preferredPronounName", "preferred_pronoun_name"),
	},
})

// RegistrationForm represents a voter registration form.
var RegistrationForm = declareKind("RegistrationForm", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "form",
})

// RelationalMapping maps a field name to a value in a bulk import.
var RelationalMapping = declareKind("RelationalMapping", kindSpec{
	Shared: []string{"fieldName", "value"},
})

// Relationship represents a relationship type between two people.
var Relationship = declareKind("Relationship", kindSpec{
	ID:      "id",
	NameKey: "name",
	Shared: []string{
		"restrictToRelationshipContactMode",
		"restrictToReverseRelationshipContactMode",
	},
})

// Self-reported demographic reference kinds.
var (
	ReportedEthnicity          = declareKind("ReportedEthnicity", kindSpec{ID: "id", NameKey: "name", Prefix: "reportedEthnicity", Prefixed: []string{"name"}})
	ReportedGender             = declareKind("ReportedGender", kindSpec{ID: "id", NameKey: "name", Prefix: "reportedGender", Prefixed: []string{"name"}})
	ReportedLanguagePreference = declareKind("ReportedLanguagePreference", kindSpec{ID: "id", NameKey: "name", Prefix: "reportedLanguagePreference", Prefixed: []string{"name"}})
	ReportedRace               = declareKind("ReportedRace", kindSpec{ID: "id", NameKey: "name", Prefix: "reportedRace", Prefixed: []string{"name"}})
	ReportedSexualOrientation  = declareKind("ReportedSexualOrientation", kindSpec{ID: "id", NameKey: "name", Prefix: "reportedSexualOrientation", Prefixed: []string{"name"}})
)

// ResultCode represents a canvass result code.
var ResultCode = declareKind("ResultCode", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "resultCode",
	Shared:  []string{"mediumName", "resultOutcomeGroup", "shortName"},
})

// SavedList represents a saved list.
var SavedList = declareKind("SavedList", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "savedList",
	Shared:  []string{"description", "doorCount", "listCount"},
})

// SavedListData reports the load statistics of a saved list.
var SavedListData = declareKind("SavedListData", kindSpec{
	ID:     "id",
	Prefix: "savedList",
	Shared: []string{"matchedRowsCount", "originalRowCount", "unmatchedRowsCount"},
})

// ScheduleType represents a schedule type.
var ScheduleType = declareKind("ScheduleType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "scheduleType",
})

// Score represents a score.
var Score = declareKind("Score", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "score",
	Shared:  []string{"description", "maxValue", "minValue", "shortName"},
})

// ScoreApprovalCriteria bounds the values a score load will accept.
var ScoreApprovalCriteria = declareKind("ScoreApprovalCriteria", kindSpec{
	Shared: []string{"average", "tolerance"},
})

// ScriptResponse is the common shape of canvass script responses; the
// concrete kinds are [ActivistCodeResponse], [SurveyCanvassResponse],
// and [VolunteerActivityResponse].
var ScriptResponse = declareKind("ScriptResponse", kindSpec{
	Shared: []string{"type"},
})

// ShiftType represents a shift type.
var ShiftType = declareKind("ShiftType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "shiftType",
	Shared:  []string{"defaultEndTime", "defaultStartTime"},
})

// Status represents a generic named status.
var Status = declareKind("Status", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "status",
})

// StoryStatus represents the status of a story.
var StoryStatus = declareKind("StoryStatus", kindSpec{
	ID:      "id",
	NameKey: "statusName",
	Prefix:  "storyStatus",
})

// Subgroup represents a target subgroup.
var Subgroup = declareKind("Subgroup", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "subgroup",
	Shared:  []string{"fullName", "isAssociatedWithBadges"},
})

// SupportedEntity names an entity type a code may be applied to.
var SupportedEntity = declareKind("SupportedEntity", kindSpec{
	NameKey: "name",
	Shared:  []string{"isApplicable", "isSearchable"},
})

// SupporterGroup represents a supporter group.
var SupporterGroup = declareKind("SupporterGroup", kindSpec{
	ID:      "id",
	NameKey: "name",
	Shared:  []string{"description"},
})

// Suppression represents a contact suppression such as "do not call".
// Build one from a bare code or name with [NewSuppression].
var Suppression = declareKind("Suppression", kindSpec{
	NameKey:  "name",
	Prefix:   "suppression",
	Prefixed: []string{"code", "name"},
})

// suppressionNameByCode maps the documented suppression codes to their
// names; suppressionCodeByName is its inverse.
var suppressionNameByCode = map[string]string{
	"NA": "do not contact",
	"NC": "do not call",
	"NE": "do not email",
	"NM": "do not mail",
	"NT": "do not text",
	"NW": "do not walk",
}

var suppressionCodeByName = func() map[string]string {
	inverse := make(map[string]string, len(suppressionNameByCode))
	for code, name := range suppressionNameByCode {
		inverse[name] = code
	}
	return inverse
}()

// suppressionArgs spells out a bare code or name. Values of length at
// most two are taken to be codes. The counterpart spelling is filled
// in when the code or name is a documented one.
func suppressionArgs(codeOrName string) Args {
	args := Args{}
	if codeOrName == "" {
		return args
	}
	if len(codeOrName) > 2 {
		args["name"] = codeOrName
		if code, ok := suppressionCodeByName[strings.ToLower(codeOrName)]; ok {
			args["code"] = code
		}
	} else {
		args["code"] = codeOrName
		if name, ok := suppressionNameByCode[strings.ToUpper(codeOrName)]; ok {
			args["name"] = name
		}
	}
	return args
}

// NewSuppression builds a [Suppression] from either its two-letter
// code or its name.
func NewSuppression(codeOrName string) *Object {
	return Suppression.MustNew(suppressionArgs(codeOrName))
}

// The standard suppressions.
var (
	NoCall    = NewSuppression("NC")
	NoContact = NewSuppression("NA")
	NoEmail   = NewSuppression("NE")
	NoMail    = NewSuppression("NM")
	NoText    = NewSuppression("NT")
	NoWalk    = NewSuppression("NW")
)

// SameSuppression reports whether two suppressions denote the same
// restriction: codes compare case-insensitively when both carry one,
// then names, and two empty suppressions match each other.
func SameSuppression(a, b *Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != Suppression || b.Kind() != Suppression {
		return false
	}
	aCode, _ := a.GetString("code")
	bCode, _ := b.GetString("code")
	if aCode != "" && bCode != "" {
		return strings.EqualFold(aCode, bCode)
	}
	aName, _ := a.GetString("name")
	bName, _ := b.GetString("name")
	if aName != "" && bName != "" {
		return strings.EqualFold(aName, bName)
	}
	return aCode == "" && bCode == "" && aName == "" && bName == ""
}

// suppressionFactory accepts a suppression as a mapping or as a bare
// code or name string.
func suppressionFactory(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if obj, ok := raw.(*Object); ok {
		return obj, nil
	}
	if s, ok := raw.(string); ok {
		return kindByName("Suppression").New(suppressionArgs(s))
	}
	if m, ok := asStringMap(raw); ok {
		return kindByName("Suppression").New(Args(m))
	}
	return nil, fmt.Errorf("expected string or mapping for Suppression, got %T: %v", raw, raw)
}

// SurveyResponse represents a survey question response option.
var SurveyResponse = declareKind("SurveyResponse", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "surveyResponse",
	Shared:  []string{"mediumName", "shortName"},
})

// UpdateStatistics carries the statistics of a score update.
var UpdateStatistics = declareKind("UpdateStatistics", kindSpec{})

// User represents a VAN user.
var User = declareKind("User", kindSpec{
	ID:     "id",
	Prefix: "user",
	Shared: []string{"firstName", "lastName"},
})

// WorkArea represents a worksite work area.
var WorkArea = declareKind("WorkArea", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "workArea",
})

// ActivistCodeResponse is the script response applying or removing an
// activist code.
var ActivistCodeResponse = declareKind("ActivistCodeResponse", kindSpec{
	Base:   ScriptResponse,
	ID:     "id",
	Prefix: "activistCode",
	Shared: []string{"action"},
})

// Address represents a street address.
var Address = declareKind("Address", kindSpec{
	ID:       "id",
	Prefix:   "address",
	Prefixed: []string{"line1", "line2", "line3"},
	Shared: []string{
		"city", "countryCode", "displayMode", "geoLocation", "isPreferred",
		"preview", "stateOrProvince", "type", "zipOrPostalCode",
	},
})

// AVEVDataFileAction is the file loading job action loading an AVEV
// data file.
var AVEVDataFileAction = declareKind("AVEVDataFileAction", kindSpec{
	Base: JobActionType,
})

// BargainingUnitJobClass associates a job class with an employer
// bargaining unit.
var BargainingUnitJobClass = declareKind("BargainingUnitJobClass", kindSpec{
	ID:     "id",
	Prefix: "employerBargainingUnitJobClass",
	Shared: []string{"bargainingUnit", "employerBargainingUnitId", "jobClass"},
})

// ChangedEntityBulkImportField maps a changed entity field onto bulk
// import fields.
var ChangedEntityBulkImportField = declareKind("ChangedEntityBulkImportField", kindSpec{
	Shared: []string{"fieldName", "mappingTypeName", "relationalMappings"},
})

// ChangedEntityExportJob represents a changed entity export job.
var ChangedEntityExportJob = declareKind("ChangedEntityExportJob", kindSpec{
	ID:     "id",
	Prefix: "exportJob",
	Shared: []string{
		"dateChangedFrom", "dateChangedTo", "exportedRecordCount", "files",
		"jobStatus", "message",
	},
})

// Code represents a source code or tag.
var Code = declareKind("Code", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "code",
	Prefixed: []string{"type"},
	Shared: []string{
		"dateCreated", "dateModified", "description", "parentCodeId",
		"supportedEntities",
	},
})

// CustomField represents a custom field.
var CustomField = declareKind("CustomField", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "customField",
	Prefixed: []string{"groupId", "groupName", "groupType", "name", "parentId", "typeId"},
	Shared:   []string{"availableValues", "isEditable", "isExportable", "maxTextboxCharacters"},
})

// DistrictField represents a district field.
var DistrictField = declareKind("DistrictField", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "districtField",
	Prefixed: []string{"values"},
	Shared:   []string{"isCustomDistrict", "parentFieldId"},
})

// EmailMessageContent is one piece of content of an email message.
var EmailMessageContent = declareKind("EmailMessageContent", kindSpec{
	Shared: []string{
		"createdBy", "dateCreated", "emailMessageContentDistributions",
		"name", "senderDisplayName", "senderEmailAddress", "subject",
	},
})

// EmployerBargainingUnit associates a bargaining unit with an employer.
var EmployerBargainingUnit = declareKind("EmployerBargainingUnit", kindSpec{
	ID:     "id",
	Prefix: "employerBargainingUnit",
	Shared: []string{"bargainingUnit"},
})

// errorKind is the shape of the error objects the API returns in the
// errors collection of a failed response.
var errorKind = declareKind("Error", kindSpec{
	Shared: []string{
		"code", "detailedConstraints", "detailedCode", "hint", "properties",
		"referenceCode", "resourceUrl", "text",
	},
})

// ExtendedSourceCode represents an extended source code.
var ExtendedSourceCode = declareKind("ExtendedSourceCode", kindSpec{
	ID:       "id",
	NameKey:  "name",
	Prefix:   "extendedSourceCode",
	Prefixed: []string{"name"},
	Shared:   []string{"dateCreated", "dateModified", "modifiedBy"},
	Fields:   map[string]*Field{"createdBy": kindProp("User", "creator")},
})

// FieldValueMapping maps a bulk import field to a column or value.
var FieldValueMapping = declareKind("FieldValueMapping", kindSpec{
	Shared: []string{"columnName", "fieldName", "staticValue", "values"},
})

// JobFile describes the input file of a file loading or bulk import
// job.
var JobFile = declareKind("JobFile", kindSpec{
	Prefix:   "file",
	Prefixed: []string{"name"},
	Shared:   []string{"columns", "columnDelimiter", "hasHeader", "hasQuotes", "sourceUrl"},
})

// ListLoadCallbackData is the callback payload of a saved list load.
var ListLoadCallbackData = declareKind("ListLoadCallbackData", kindSpec{
	Base:   JobNotification,
	Shared: []string{"description", "message", "savedList", "status"},
})

// MappingParent constrains a mapping value to its parent's values.
var MappingParent = declareKind("MappingParent", kindSpec{
	Shared: []string{"limitedToParentValues", "parentFieldName"},
})

// Membership describes a person's membership record.
var Membership = declareKind("Membership", kindSpec{
	Shared: []string{
		"changeTypeName", "dateCardsSent", "dateExpireMembership",
		"dateLastRenewed", "dateStartMembership", "duesAttributionTypeName",
		"duesEntityTypeName", "duesPaid", "enrollmentTypeName",
		"firstMembershipSourceCode", "levelId", "levelName", "numberOfCards",
		"numberTimesRenewed", "statusName", "totalDuesPaid",
	},
})

// MiniVANExport represents a MiniVAN export.
var MiniVANExport = declareKind("MiniVANExport", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "minivanExport",
	Shared:  []string{"canvassers", "databaseMode", "dateCreated"},
	Fields:  map[string]*Field{"createdBy": kindProp("User", "creator")},
})

// Note represents a note on a person.
var Note = declareKind("Note", kindSpec{
	ID:     "id",
	Prefix: "note",
	Shared: []string{"category", "contactHistory", "createdDate", "isViewRestricted", "text"},
})

// OnlineActionsForm represents an online actions form.
var OnlineActionsForm = declareKind("OnlineActionsForm", kindSpec{
	ID:      "id",
	NameKey: "formName",
	Prefix:  "formTracking",
	Shared: []string{
		"activistCodes", "campaignId", "codeId", "confirmationEmailData",
		"createdByEmail", "dateCreated", "dateModified", "designation",
		"eventId", "isActive", "isConfirmedOptInEnabled", "modifiedByEmail",
	},
	Fields: map[string]*Field{
		"formName":   prop("name"),
		"formType":   prop("type"),
		"formTypeId": prop("type_id"),
	},
})

// Phone represents a person's phone number. Build one from a bare id
// or number through any field with a phone factory; an integer is the
// id and a string is the number.
var Phone = declareKind("Phone", kindSpec{
	ID:       "id",
	Prefix:   "phone",
	Prefixed: []string{"number", "optInStatus", "type"},
	Shared: []string{
		"countryCode", "dateCreated", "dialingPrefix", "ext", "isCellStatus",
		"isPreferred", "smsOptInStatus",
	},
})

// emailFactory accepts an email as a mapping or as the address itself
// when given a string.
func emailFactory(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if obj, ok := raw.(*Object); ok {
		return obj, nil
	}
	if m, ok := asStringMap(raw); ok {
		return kindByName("Email").New(Args(m))
	}
	if s, ok := raw.(string); ok {
		return kindByName("Email").New(Args{"email": s})
	}
	return nil, fmt.Errorf("expected address or mapping for Email, got %T: %v", raw, raw)
}

// phoneFactory accepts a phone as a mapping, as a bare id, or as the
// number itself when given a string.
func phoneFactory(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if obj, ok := raw.(*Object); ok {
		return obj, nil
	}
	if m, ok := asStringMap(raw); ok {
		return kindByName("Phone").New(Args(m))
	}
	if n, ok := asInt(raw); ok {
		return kindByName("Phone").New(Args{"id": n})
	}
	if s, ok := raw.(string); ok {
		return kindByName("Phone").New(Args{"number": s})
	}
	return nil, fmt.Errorf("expected id, number, or mapping for Phone, got %T: %v", raw, raw)
}

// PhonesFileAction is the file loading job action loading a phones
// file. The phones bulk-load format capitalizes its field names.
var PhonesFileAction = declareKind("PhonesFileAction", kindSpec{
	Base:     JobActionType,
	Prefix:   "Phone",
	Prefixed: []string{"ext", "optInStatus", "source", "type"},
	Shared:   []string{"Phone", "PreferredPhone", "SonarScore", "VANID"},
})

// SavedListLoadAction is the file loading job action loading a saved
// list.
var SavedListLoadAction = declareKind("SavedListLoadAction", kindSpec{
	Base: JobActionType,
	Shared: []string{
		"folderId", "listDescription", "listName", "overwriteExistingListId",
		"personIdColumn", "personIdType",
	},
})

// ScoreLoadAction is the file loading job action loading score values.
var ScoreLoadAction = declareKind("ScoreLoadAction", kindSpec{
	Base: JobActionType,
	Shared: []string{
		"approvalCriteria", "personIdColumn", "personIdType", "scoreColumn",
		"scoreId",
	},
})

// jobActionTypeFactory builds the concrete job action kind selected by
// the actionType property, which may appear under any of its aliases.
func jobActionTypeFactory(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if obj, ok := raw.(*Object); ok {
		return obj, nil
	}
	m, ok := asStringMap(raw)
	if !ok {
		return nil, fmt.Errorf("expected mapping for a job action, got %T: %v", raw, raw)
	}
	args := make(Args, len(m))
	for k, v := range m {
		args[k] = v
	}
	value, err := sharedFields.Get("actionType").find("actionType", args, true)
	if err != nil {
		return nil, err
	}
	actionType, _ := value.(string)
	if actionType == "" {
		return nil, fmt.Errorf("expected an actionType for a job action: %v", raw)
	}
	var kindName, canonical string
	switch strings.ToLower(actionType) {
	case "score":
		kindName, canonical = "ScoreLoadAction", "Score"
	case "avevdatafile":
		kindName, canonical = "AVEVDataFileAction", "AVEVDataFile"
	case "loadsavedlistfile":
		kindName, canonical = "SavedListLoadAction", "LoadSavedListFile"
	case "phonesfile":
		kindName, canonical = "PhonesFileAction", "phonesFile"
	default:
		return nil, fmt.Errorf("unrecognized job action type %q", actionType)
	}
	obj, err := kindByName(kindName).New(args)
	if err != nil {
		return nil, err
	}
	if err := obj.Set("actionType", canonical); err != nil {
		return nil, err
	}
	return obj, nil
}

// ScoreUpdate represents a score update.
var ScoreUpdate = declareKind("ScoreUpdate", kindSpec{
	ID:     "id",
	Prefix: "scoreUpdate",
	Shared: []string{"dateProcessed", "loadStatus", "score", "updateStatistics"},
})

// SupportField describes a state-supported voter registration field.
var SupportField = declareKind("SupportField", kindSpec{
	Shared: []string{
		"customPropertyKey", "displayName", "fieldType", "maxFieldLength",
		"possibleValues",
	},
})

// SurveyCanvassResponse is the script response answering a survey
// question.
var SurveyCanvassResponse = declareKind("SurveyCanvassResponse", kindSpec{
	Base:   ScriptResponse,
	Shared: []string{"mediumName", "name", "shortName", "surveyQuestionId", "surveyResponseId"},
})

// Target represents a target.
var Target = declareKind("Target", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "target",
	Shared: []string{
		"areSubgroupsSticky", "description", "points", "status", "subgroups",
		"type",
	},
})

// TargetExportJob represents a target export job.
var TargetExportJob = declareKind("TargetExportJob", kindSpec{
	ID:     "id",
	Prefix: "exportJob",
	Shared: []string{"file", "jobStatus", "targetId", "webhookUrl"},
})

// VolunteerActivityResponse is the script response recording a
// volunteer activity.
var VolunteerActivityResponse = declareKind("VolunteerActivityResponse", kindSpec{
	Base:   ScriptResponse,
	ID:     "id",
	Prefix: "volunteerActivity",
	Shared: []string{"action"},
})

// scriptResponseFactory builds the concrete script response kind
// selected by the type property and stores the type under its
// canonical capitalization.
func scriptResponseFactory(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if obj, ok := raw.(*Object); ok {
		return obj, nil
	}
	m, ok := asStringMap(raw)
	if !ok {
		return nil, fmt.Errorf("expected mapping for a script response, got %T: %v", raw, raw)
	}
	args := make(Args, len(m))
	for k, v := range m {
		args[k] = v
	}
	typ, _ := args["type"].(string)
	if typ == "" {
		return nil, fmt.Errorf("expected a type for a script response: %v", raw)
	}
	delete(args, "type")
	var kindName, canonical string
	switch strings.ToLower(typ) {
	case "activistcode":
		kindName, canonical = "ActivistCodeResponse", "ActivistCode"
	case "surveyresponse":
		kindName, canonical = "SurveyCanvassResponse", "SurveyResponse"
	case "volunteeractivity":
		kindName, canonical = "VolunteerActivityResponse", "VolunteerActivity"
	default:
		return nil, fmt.Errorf("unrecognized script response type %q", typ)
	}
	obj, err := kindByName(kindName).New(args)
	if err != nil {
		return nil, err
	}
	if err := obj.Set("type", canonical); err != nil {
		return nil, err
	}
	return obj, nil
}

// VoterRegistrationBatch represents a voter registration batch.
var VoterRegistrationBatch = declareKind("VoterRegistrationBatch", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "voterRegistrationBatch",
	Shared: []string{
		"dateCreated", "description", "form", "personType", "programType",
		"stateCode", "status",
	},
})

// AddRegistrantsResponse reports the outcome of adding one registrant
// to a voter registration batch.
var AddRegistrantsResponse = declareKind("AddRegistrantsResponse", kindSpec{
	Shared: []string{"alternateId", "errors", "result", "vanId"},
})

// BulkImportField describes a mappable bulk import field.
var BulkImportField = declareKind("BulkImportField", kindSpec{
	NameKey: "name",
	Shared: []string{
		"canBeMappedToColumn", "description", "hasPredefinedValues",
		"isRequired", "parents",
	},
})

// BulkImportJobData reports the state of a bulk import job.
var BulkImportJobData = declareKind("BulkImportJobData", kindSpec{
	ID:     "id",
	Prefix: "job",
	Shared: []string{"errors", "resourceType", "resultFileSizeLimitKb", "resultFiles", "status"},
})

// CanvassContext describes how a canvass contact happened.
var CanvassContext = declareKind("CanvassContext", kindSpec{
	Shared: []string{
		"campaignId", "contactTypeId", "contentId", "dateCanvassed",
		"inputTypeId", "omitActivistCodeContactHistory", "phoneId",
		"skipMatching",
	},
	Fields: map[string]*Field{"phone": funcProp(phoneFactory)},
})

// ChangedEntityField describes one exportable field of a changed
// entity resource; [ParseChangedEntityValue] converts its CSV cells.
var ChangedEntityField = declareKind("ChangedEntityField", kindSpec{
	NameKey:  "name",
	Prefix:   "field",
	Prefixed: []string{"name", "type"},
	Shared:   []string{"availableValues", "bulkImportFields", "isCoreField", "maxTextboxCharacters"},
})

// changedEntityTimeLayouts lists the timestamp shapes changed entity
// exports use, longest first.
var changedEntityTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseChangedEntityValue converts one CSV cell of a changed entity
// export according to the declared type of field: B parses booleans,
// D timestamps, N integers, and M and T keep the string. An empty
// cell yields nil.
func ParseChangedEntityValue(field *Object, value string) (any, error) {
	if value == "" {
		return nil, nil
	}
	fieldType, err := field.GetString("fieldType")
	if err != nil {
		return nil, err
	}
	switch fieldType {
	case "B":
		if strings.EqualFold(value, "true") {
			return true, nil
		}
		if strings.EqualFold(value, "false") {
			return false, nil
		}
		return nil, fmt.Errorf("cannot parse %q as a boolean", value)
	case "D":
		for _, layout := range changedEntityTimeLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("cannot parse %q as a timestamp", value)
	case "M", "T":
		return value, nil
	case "N":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as an integer", value)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown field type %q", fieldType)
	}
}

// Contribution represents a contribution.
var Contribution = declareKind("Contribution", kindSpec{
	Shared: []string{
		"acceptedOneTimeAmount", "acceptedRecurringAmount", "amount",
		"bankAccount", "checkDate", "checkNumber", "codes", "contact",
		"contactAttributions", "contributionBankAccount", "contributionId",
		"coverCostsAmount", "dateReceived", "dateThanked", "depositDate",
		"depositNumber", "designation", "directMarketingCode",
		"disclosureFieldValues", "extendedSourceCode", "identifiers",
		"isUpsellAccepted", "isUpsellShown",
		"linkedJointFundraisingContributionId",
		"linkedPartnershipContributionId", "notes", "onlineReferenceNumber",
		"paymentType", "pledge", "processedAmount", "processedCurrency",
		"selectedOneTimeAmount", "status", "upsellType",
	},
})

// Disbursement represents a disbursement.
var Disbursement = declareKind("Disbursement", kindSpec{
	ID:     "id",
	Prefix: "disbursement",
	Shared: []string{
		"amount", "batchCode", "checkDate", "checkNumber", "codes", "contact",
		"dateIssued", "designation", "disclosureFieldValues",
		"linkedCreditCardPaymentDisbursementId",
		"linkedReimbursementDisbursementId", "notes",
	},
})

// EmailMessage represents an email message.
var EmailMessage = declareKind("EmailMessage", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "foreignMessage",
	Shared:  []string{"createdBy", "dateCreated", "dateModified", "dateScheduled", "emailMessageContent"},
	Fields:  map[string]*Field{"campaignID": prop("campaign")},
})

// FileLoadingJob represents a file loading job.
var FileLoadingJob = declareKind("FileLoadingJob", kindSpec{
	ID:     "id",
	Prefix: "job",
	Shared: []string{"description", "interventionCallbackUrl", "invalidRowsFileUrl", "listeners"},
	Fields: map[string]*Field{
		"actions": funcListProp(jobActionTypeFactory, "action"),
		"file":    kindProp("JobFile"),
	},
})

// Location represents a location.
var Location = declareKind("Location", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "location",
	Shared:  []string{"address", "displayName"},
})

// MappingType names a bulk import mapping type and its value mappings.
var MappingType = declareKind("MappingType", kindSpec{
	NameKey: "name",
	Shared:  []string{"fieldValueMappings", "resultFileColumnName"},
})

// Person represents a person.
var Person = declareKind("Person", kindSpec{
	ID:     "id",
	Prefix: "van",
	Shared: []string{
		"additionalEnvelopeName", "additionalSalutation", "addresses",
		"biographyImageUrl", "caseworkCases", "caseworkIssues",
		"caseworkStories", "collectedLocationId",
		"contactMethodPreferenceCode", "contactMode", "contactModeId",
		"contactSource", "customFieldValues", "customProperties", "cycle",
		"dateAcquired", "dateCreated", "dateOfBirth", "disclosureFieldValues",
		"districts", "electionRecords", "electionType", "emails",
		"envelopeName", "finderNumber", "firstName", "formalEnvelopeName",
		"formalSalutation", "identifiers", "isDeceased", "jobTitle",
		"lastName", "middleName", "nickname", "occupation",
		"organizationContactCommonName", "organizationContactOfficialName",
		"organizationRoles", "partialDateOfBirth", "party", "phones",
		"pronouns", "primaryContact", "recordedAddresses", "salutation",
		"scores", "selfReportedEthnicities", "selfReportedEthnicity",
		"selfReportedGenders", "selfReportedLanguagePreference",
		"selfReportedRace", "selfReportedRaces",
		"selfReportedSexualOrientations", "sex", "suppressions",
		"surveyQuestionResponses", "suffix", "title", "website",
	},
	Fields: map[string]*Field{"employer": prop()},
})

// preferredIn returns the element of a person's list field with
// isPreferred set, or nil when none is marked.
func preferredIn(person *Object, field string) *Object {
	raw, err := person.Get(field)
	if err != nil {
		return nil
	}
	elems, _ := asSlice(raw)
	for _, elem := range elems {
		obj, ok := elem.(*Object)
		if !ok {
			continue
		}
		if preferred, _ := obj.Get("isPreferred"); preferred == true {
			return obj
		}
	}
	return nil
}

// PreferredAddress returns a person's preferred mailing address, or
// nil when the person has no address marked preferred.
func PreferredAddress(person *Object) *Object {
	return preferredIn(person, "addresses")
}

// PreferredEmail returns the address of a person's preferred email,
// or the empty string when none is marked preferred.
func PreferredEmail(person *Object) string {
	obj := preferredIn(person, "emails")
	if obj == nil {
		return ""
	}
	s, _ := obj.GetString("email")
	return s
}

// PreferredPhone returns the number of a person's preferred phone, or
// the empty string when none is marked preferred.
func PreferredPhone(person *Object) string {
	obj := preferredIn(person, "phones")
	if obj == nil {
		return ""
	}
	s, _ := obj.GetString("number")
	return s
}

// HasSuppression reports whether a person carries the given
// suppression. The second result is false when the person carries no
// suppression information at all, in which case the first says
// nothing.
func HasSuppression(person, suppression *Object) (has, known bool) {
	raw, err := person.Get("suppressions")
	if err != nil || raw == nil {
		return false, false
	}
	elems, _ := asSlice(raw)
	for _, elem := range elems {
		obj, _ := elem.(*Object)
		if SameSuppression(obj, suppression) {
			return true, true
		}
	}
	return false, true
}

// AddSuppression adds a suppression to a person unless an equivalent
// one is already present, reporting whether the person changed.
func AddSuppression(person, suppression *Object) (bool, error) {
	raw, err := person.Get("suppressions")
	if err != nil {
		return false, err
	}
	elems, _ := asSlice(raw)
	for _, elem := range elems {
		obj, _ := elem.(*Object)
		if SameSuppression(obj, suppression) {
			return false, nil
		}
	}
	return true, person.Set("suppressions", append(elems, suppression))
}

// RemoveSuppression removes the equivalent of a suppression from a
// person, reporting whether one was found.
func RemoveSuppression(person, suppression *Object) (bool, error) {
	raw, err := person.Get("suppressions")
	if err != nil {
		return false, err
	}
	elems, _ := asSlice(raw)
	for i, elem := range elems {
		obj, _ := elem.(*Object)
		if SameSuppression(obj, suppression) {
			rest := append(elems[:i:i], elems[i+1:]...)
			return true, person.Set("suppressions", rest)
		}
	}
	return false, nil
}

// SetSuppression adds or removes a suppression, reporting whether the
// person changed.
func SetSuppression(person, suppression *Object, value bool) (bool, error) {
	if value {
		return AddSuppression(person, suppression)
	}
	return RemoveSuppression(person, suppression)
}

// Story represents a story.
var Story = declareKind("Story", kindSpec{
	ID:       "id",
	Prefix:   "story",
	Prefixed: []string{"text"},
	Shared:   []string{"campaignId", "storyStatus", "tags", "title", "vanId"},
})

// SurveyQuestion represents a survey question.
var SurveyQuestion = declareKind("SurveyQuestion", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "surveyQuestion",
	Shared:  []string{"cycle", "mediumName", "scriptQuestion", "shortName", "status", "type"},
	Fields: map[string]*Field{
		"responses": kindListProp("SurveyCanvassResponse", "response"),
	},
})

// ValueMappingData describes the values available to a bulk import
// mapping type field.
var ValueMappingData = declareKind("ValueMappingData", kindSpec{
	ID:      "id",
	NameKey: "name",
	Shared:  []string{"parents"},
})

// Worksite represents a worksite.
var Worksite = declareKind("Worksite", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "worksite",
	Shared:  []string{"address", "employer", "isPreferred", "workAreas"},
})

// BulkImportAction is one action of a bulk import job.
var BulkImportAction = declareKind("BulkImportAction", kindSpec{
	Shared: []string{
		"actionType", "columnsToIncludeInResultsFile", "mappingTypes",
		"resultFileSizeKbLimit", "resourceType",
	},
})

// CanvassResponse reports the responses gathered in one canvass
// contact.
var CanvassResponse = declareKind("CanvassResponse", kindSpec{
	Shared: []string{"canvassContext", "responses", "resultCodeId"},
})

// Employer represents an employer.
var Employer = declareKind("Employer", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "employer",
	Shared: []string{
		"bargainingUnits", "departments", "isMyOrganization", "jobClasses",
		"parentOrganization", "shortName", "website", "worksites",
	},
	Fields: map[string]*Field{
		"phones": kindListProp("EmployerPhone", "phone"),
		"shifts": kindListProp("ShiftType", "shift"),
	},
})

// EventType represents an event type.
var EventType = declareKind("EventType", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "eventType",
	Shared: []string{
		"canBeRepeatable", "canHaveGoals", "canHaveMultipleLocations",
		"canHaveMultipleShifts", "canHaveRoleMaximums", "canHaveRoleMinimums",
		"color", "defaultLocation", "isAtLeastOneLocationRequired",
		"isOnlineActionsAvailable", "isSharedWithChildCommitteesByDefault",
		"isSharedWithMasterCommitteeByDefault", "roles",
	},
	Fields: map[string]*Field{"statuses": kindArrayProp("Status")},
})

// ExportJob represents an export job.
var ExportJob = declareKind("ExportJob", kindSpec{
	ID:       "id",
	Prefix:   "exportJob",
	Prefixed: []string{"guid"},
	Shared: []string{
		"activistCodes", "canvassFileRequestId", "canvassFileRequestGuid",
		"customFields", "dateExpired", "districtFields", "downloadUrl",
		"errorCode", "savedListId", "status", "surveyQuestions", "type",
		"webhookUrl",
	},
})

// MappingTypeData describes a bulk import mapping type.
var MappingTypeData = declareKind("MappingTypeData", kindSpec{
	NameKey: "name",
	Shared:  []string{"allowMultipleMode", "displayName", "fields", "resourceTypes"},
})

// Registrant is one person to add to a voter registration batch.
var Registrant = declareKind("Registrant", kindSpec{
	Shared: []string{"alternateId", "customProperties", "person"},
})

// BulkImportJob represents a bulk import job.
var BulkImportJob = declareKind("BulkImportJob", kindSpec{
	Shared: []string{"actions", "description"},
	Fields: map[string]*Field{"file": kindProp("JobFile")},
})

// Event represents an event.
var Event = declareKind("Event", kindSpec{
	ID:      "id",
	NameKey: "name",
	Prefix:  "event",
	Shared: []string{
		"codes", "createdDate", "description", "districtFieldValue",
		"dotNetTimeZoneId", "endDate", "eventType", "isActive",
		"isOnlyEditableByCreatingUser", "isPubliclyViewable", "locations",
		"roles", "shifts", "shortName", "startDate",
		"voterRegistrationBatches",
	},
	Fields: map[string]*Field{"notes": kindListProp("Note", "note")},
})

// Signup represents an event signup.
var Signup = declareKind("Signup", kindSpec{
	ID:     "id",
	Prefix: "eventSignup",
	Shared: []string{
		"dateModified", "endTimeOverride", "event", "isOfflineSignup",
		"location", "modifiedBy", "notes", "person", "shift",
		"startTimeOverride", "supporterGroupId", "role",
	},
	Fields: map[string]*Field{"status": kindProp("Status")},
})

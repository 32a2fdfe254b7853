package everyaction

//
// The shared field registry. Most fields appear on several object
// kinds and endpoints with the same aliases and conversion rules, so
// they are declared once here and referenced by name from the kind
// catalog in objects.go and from the endpoint declarations in the
// service files.
//
// Fields whose values are objects reference their kind by name
// through factoryFor, which defers the catalog lookup until a value
// is actually converted. Mutually referencing kinds, such as
// Department and Employer, need no special treatment this way.
//

import (
	"fmt"
	"strings"
)

// sharedFields holds every shared descriptor. It is fully built and
// frozen before the kind catalog assembles.
var sharedFields = buildSharedFields()

func buildSharedFields() *Registry {
	r := NewRegistry()
	shareIdentityFields(r)
	shareScalarFields(r)
	shareObjectFields(r)
	r.Freeze()
	return r
}

// prop declares a plain field with the given extra aliases.
func prop(aliases ...string) *Field {
	return &Field{Aliases: aliases}
}

// arrayProp declares a repeated field without a singular alias.
func arrayProp(aliases ...string) *Field {
	return &Field{Aliases: aliases, IsArray: true}
}

// listProp declares a repeated field whose singular alias wraps one
// element into a one-element list.
func listProp(singular string, aliases ...string) *Field {
	return &Field{Aliases: aliases, Singular: singular}
}

// kindProp declares a field holding one instance of the named kind.
func kindProp(kind string, aliases ...string) *Field {
	return &Field{Aliases: aliases, Factory: factoryFor(kind)}
}

// kindArrayProp declares a repeated field of instances of the named
// kind, without a singular alias.
func kindArrayProp(kind string, aliases ...string) *Field {
	return &Field{Aliases: aliases, IsArray: true, Factory: factoryFor(kind)}
}

// kindListProp declares a repeated field of instances of the named
// kind with a singular alias.
func kindListProp(kind, singular string, aliases ...string) *Field {
	return &Field{Aliases: aliases, Singular: singular, Factory: factoryFor(kind)}
}

// funcProp declares a field with a custom conversion.
func funcProp(factory FactoryFunc, aliases ...string) *Field {
	return &Field{Aliases: aliases, Factory: factory}
}

// funcListProp declares a repeated field with a custom per-element
// conversion and a singular alias.
func funcListProp(factory FactoryFunc, singular string, aliases ...string) *Field {
	return &Field{Aliases: aliases, Singular: singular, Factory: factory}
}

// expandFactory normalizes the $expand query argument: a string
// passes through and a list of names is comma-joined.
func expandFactory(raw any) (any, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}
	elems, ok := asSlice(raw)
	if !ok {
		return nil, fmt.Errorf("expected string or list of strings for expand, got %T: %v", raw, raw)
	}
	names := make([]string, 0, len(elems))
	for _, elem := range elems {
		s, ok := elem.(string)
		if !ok {
			return nil, fmt.Errorf("expected string or list of strings for expand, got %T element: %v", elem, elem)
		}
		names = append(names, s)
	}
	return strings.Join(names, ","), nil
}

// shareIdentityFields declares the two fields simple objects are made
// of; the catalog expands them under kind prefixes.
func shareIdentityFields(r *Registry) {
	r.Share("id", prop())
	r.Share("name", prop())
}

// shareScalarFields declares every shared field holding plain values.
// Names and aliases follow the API reference; the capitalized entries
// at the bottom belong to the phones bulk-load format, which
// upper-cases its field names.
func shareScalarFields(r *Registry) {
	for name, field := range map[string]*Field{
		"acceptedOneTimeAmount":           prop("accepted_one_time"),
		"acceptedRecurringAmount":         prop("accepted_recurring", "recurring"),
		"action":                          prop(),
		"actionType":                      prop("type"),
		"added":                           prop(),
		"additionalEnvelopeName":          prop("additional_envelope"),
		"additionalSalutation":            prop(),
		"adjustmentType":                  prop("type"),
		"allowMultipleMode":               prop("multiple_mode", "mode"),
		"alternateId":                     prop("alternate", "alt"),
		"amount":                          prop(),
		"amountAttributed":                prop("amount"),
		"apiKeyTypeName":                  prop("type_name", "type"),
		"areSubgroupsSticky":              prop("sticky_subgroups", "sticky_groups"),
		"assignableTypes":                 listProp("assignable_type"),
		"assignedValue":                   prop("value"),
		"attributionType":                 prop("type"),
		"average":                         prop(),
		"averageValue":                    prop("average"),
		"badValues":                       prop("bad"),
		"bankAccount":                     prop("account"),
		"bankAccountId":                   prop("bank_account", "account"),
		"batchCode":                       prop("batch"),
		"biographyImageUrl":               prop("biography_image", "bio_image_url", "bio_image"),
		"bounceCount":                     prop("bounces"),
		"campaignId":                      prop("campaign"),
		"canBeMappedToColumn":             prop("column_mappable", "mappable"),
		"canBeRepeatable":                 prop("allows_repeats"),
		"canHaveGoals":                    prop("allows_goals"),
		"canHaveMultipleLocations":        prop("allows_multiple_locations"),
		"canHaveMultipleShifts":           prop("allows_multiple_shifts"),
		"canHaveRoleMaximums":             prop("allows_role_maximums"),
		"canHaveRoleMinimums":             prop("allows_role_minimums"),
		"canvassedBy":                     prop("canvasser"),
		"canvassFileRequestId":            prop("canvass_id"),
		"canvassFileRequestGuid":          prop("canvass_guid"),
		"caseworkCases":                   listProp("case", "cases"),
		"caseworkIssues":                  listProp("issue", "issues"),
		"caseworkStories":                 listProp("story", "stories"),
		"ccExpirationMonth":               prop("cc_exp_month"),
		"ccExpirationYear":                prop("cc_exp_year"),
		"changeTypeName":                  prop("change_type", "change"),
		"channelTypeName":                 prop("channel_type", "channel"),
		"checkDate":                       prop(),
		"checkNumber":                     prop(),
		"city":                            prop(),
		"code":                            prop(),
		"codeId":                          prop("code"),
		"codeIds":                         prop("codes"),
		"collectedLocationId":             prop("collected_location", "location"),
		"color":                           prop(),
		"columnDelimiter":                 prop("delimiter"),
		"columnName":                      prop("column"),
		"committeeId":                     prop(),
		"committeeName":                   prop("committee"),
		"commonName":                      prop("common"),
		"confidenceLevel":                 prop("confidence"),
		"contact":                         prop(),
		"contactMethodPreferenceCode":     prop("contact_preference_code", "preference_code", "contact_preference"),
		"contactMode":                     prop(),
		"contactModeId":                   prop(),
		"contactSource":                   prop(),
		"contactTypeId":                   prop("contact_type"),
		"contentId":                       prop("content"),
		"contributionCount":               prop("contributions"),
		"contributionId":                  prop("contribution"),
		"contributionSummary":             prop(),
		"contributionTotal":               prop(),
		"copyToEmails":                    arrayProp("copy_to"),
		"countryCode":                     prop("country"),
		"coverCostsAmount":                prop("cover_costs"),
		"createdAfter":                    prop("after"),
		"createdBefore":                   prop("before"),
		"createdBy":                       prop("creator"),
		"createdByCommitteeId":            prop("committee"),
		"createdByEmail":                  prop("created_by", "creator_email", "creator"),
		"createdDate":                     prop("created"),
		"creditCardLast4":                 prop("cc_last4", "last4"),
		"currency":                        prop(),
		"currencyType":                    prop("type"),
		"custom":                          prop(),
		"customFieldGroupId":              prop("group"),
		"customFieldId":                   prop("field"),
		"customFieldsGroupType":           prop("group_type", "type"),
		"customPropertyKey":               prop("property_key", "custom_key", "key"),
		"cycle":                           prop(),
		"databaseMode":                    prop("mode"),
		"databaseName":                    prop(),
		"dateAcquired":                    prop(),
		"dateAdjusted":                    prop("adjusted", "date"),
		"dateCanvassed":                   prop("canvassed"),
		"dateCardsSent":                   prop("cards_sent"),
		"dateChangedFrom":                 prop("changed_from"),
		"dateChangedTo":                   prop("changed_to"),
		"dateClosed":                      prop("closed"),
		"dateCreated":                     prop("created"),
		"dateDeposited":                   prop("deposited"),
		"dateExpired":                     prop("expired"),
		"dateExpireMembership":            prop("expiration_date", "expiration", "expires"),
		"dateIssued":                      prop("issued"),
		"dateLastRenewed":                 prop("last_renewed", "renewed"),
		"dateModified":                    prop("modified"),
		"dateOfBirth":                     prop("birthday"),
		"dateOpened":                      prop("opened"),
		"datePosted":                      prop("posted"),
		"dateProcessed":                   prop("processed"),
		"dateReceived":                    prop("received"),
		"dateScheduled":                   prop("scheduled"),
		"dateSent":                        prop("sent"),
		"dateStartMembership":             prop("start_date", "started"),
		"dateThanked":                     prop("thanked"),
		"decreasedBy":                     prop("decrease"),
		"defaultEndTime":                  prop("default_end"),
		"defaultStartTime":                prop("default_start"),
		"depositDate":                     prop(),
		"depositNumber":                   prop(),
		"detailedCode":                    prop(),
		"description":                     prop("desc"),
		"designationId":                   prop("designation"),
		"dialingPrefix":                   prop("prefix"),
		"directMarketingCode":             prop("marketing_code"),
		"disclosureFieldValue":            prop("field_value", "disclosure_value", "value"),
		"displayMode":                     prop(),
		"displayName":                     prop("display"),
		"doorCount":                       prop("door"),
		"dotNetTimeZoneId":                prop("dot_net_time_zone", "time_zone"),
		"downloadUrl":                     prop("download"),
		"duesAttributionTypeName":         prop("dues_attribution_type", "dues_attribution"),
		"duesEntityTypeName":              prop("dues_entity_type", "dues_entity"),
		"duplicateRows":                   prop("duplicates"),
		"electionRecords":                 listProp("election_record"),
		"electionType":                    prop(),
		"email":                           prop(),
		"employerBargainingUnitId":        prop("employer_bargaining_unit"),
		"employerId":                      prop("employer"),
		"endDate":                         prop("end"),
		"endTime":                         prop("end"),
		"endTimeOverride":                 prop("end_override", "end"),
		"enrollmentTypeName":              prop("enrollment_type", "enrollment"),
		"envelopeName":                    prop("envelope"),
		"errorCode":                       prop("error"),
		"eventId":                         prop("event"),
		"eventTypeId":                     prop("event_type", "type"),
		"eventTypeIds":                    prop("event_types"),
		"excludeChangesFromSelf":          prop("exclude_self"),
		"expand":                          funcProp(expandFactory),
		"expectedContributionCount":       prop("expected_count"),
		"expectedContributionTotalAmount": prop("expected_total", "expected_amount"),
		"exportedRecordCount":             prop("exported_records", "record_count", "records", "count"),
		"ext":                             prop(),
		"externalId":                      prop("external"),
		"fieldName":                       prop("field"),
		"fieldType":                       prop("field", "type"),
		"fileSizeKbLimit":                 prop("size_kb_limit", "kb_limit"),
		"financialBatchId":                prop("financial_batch"),
		"finderNumber":                    prop("finder"),
		"firstName":                       prop("first"),
		"folderId":                        prop("folder"),
		"folderName":                      prop("folder"),
		"formalEnvelopeName":              prop("formal_envelope"),
		"formalSalutation":                prop(),
		"formSubmissionCount":             prop("form_submissions", "forms", "submissions"),
		"frequency":                       prop(),
		"fromEmail":                       prop(),
		"fromName":                        prop("sender"),
		"fromSubject":                     prop("subject"),
		"fullName":                        prop(),
		"generatedAfter":                  prop("after"),
		"generatedBefore":                 prop("before"),
		"goal":                            prop(),
		"groupId":                         prop(),
		"groupName":                       prop(),
		"groupType":                       prop(),
		"guid":                            prop(),
		"hasHeader":                       prop(),
		"hasMyCampaign":                   prop("my_campaign"),
		"hasMyVoters":                     prop("my_voters"),
		"hasPredefinedValues":             prop("has_predefined"),
		"hasQuotes":                       prop(),
		"hint":                            prop(),
		"increasedBy":                     prop("increase"),
		"includeAllAutoGenerated":         prop("include_auto_generated", "include_generated"),
		"includeAllStatuses":              prop("include_statuses", "include_closed"),
		"includeInactive":                 prop(),
		"includeUnassigned":               prop(),
		"inputTypeId":                     prop("input_type"),
		"interventionCallbackUrl":         prop("intervention_url", "callback_url"),
		"invalidCharacters":               prop("invalid_chars"),
		"invalidRowsFileUrl":              prop("invalid_rows_url", "invalid_url"),
		"inRepetitionWithEventId":         prop("repeat_of"),
		"isActive":                        prop("active"),
		"isApplicable":                    prop("applicable"),
		"isAssociatedWithBadges":          prop("associated_with_badges"),
		"isAtLeastOneLocationRequired":    prop("needs_location", "location_required", "requires_location"),
		"isAutoGenerated":                 prop("auto_generated", "generated"),
		"isConfirmationEmailEnabled":      prop("confirmation_email_enabled", "confirmation_enabled", "confirmation"),
		"isConfirmedOptInEnabled":         prop("confirmed_opt_in_enabled", "opt_in_enabled", "opt_in"),
		"isCoreField":                     prop("is_core", "core_field", "core"),
		"isCustomDistrict":                prop("custom_district", "is_custom", "custom"),
		"isDeceased":                      prop("deceased"),
		"isEditable":                      prop("editable"),
		"isEventLead":                     prop("event_lead", "lead"),
		"isExportable":                    prop("exportable"),
		"isMember":                        prop("member"),
		"isMultiAssign":                   prop("multi_assign"),
		"isMyOrganization":                prop("my_organization", "my_org"),
		"isOfflineSignup":                 prop("offline_property", "offline"),
		"isOnlineActionsAvailable":        prop("online_actions_available", "actions_available"),
		"isOnlyEditableByCreatingUser":    prop("only_editable_by_creating_user", "only_editable_by_creator", "only_creator_may_edit"),
		"isOpen":                          prop("open"),
		"isPreferred":                     prop("preferred"),
		"isPubliclyViewable":              prop("publicly_viewable", "public"),
		"isRecurringEmailEnabled":         prop("recurring_email_enabled", "recurring_enabled", "recurring"),
		"isRequired":                      prop("required"),
		"isSearchable":                    prop("searchable"),
		"isSharedWithChildCommitteesByDefault": prop("default_share_child"),
		"isSharedWithMasterCommitteeByDefault": prop("default_share_master"),
		"isSubscribed":                    prop("subscribed"),
		"isUpsellAccepted":                prop("upsell_accepted"),
		"isUpsellShown":                   prop("upsell_shown"),
		"isViewRestricted":                prop("view_restricted"),
		"jobStatus":                       prop("status"),
		"jobTitle":                        prop(),
		"key":                             prop(),
		"keyReference":                    prop("reference"),
		"lastName":                        prop("last"),
		"lat":                             prop(),
		"levelId":                         prop(),
		"levelName":                       prop(),
		"line1":                           prop(),
		"line2":                           prop(),
		"line3":                           prop(),
		"linkedCreditCardPaymentDisbursementId": prop("credit_card_payment"),
		"linkedJointFundraisingContributionId":  prop("joint_fundraising_contribution", "fundraising_contribution", "fundraising"),
		"linkedPartnershipContributionId":       prop("partnership_contribution", "partnership"),
		"linkedReimbursementDisbursementId":     prop("reimbursement"),
		"linksClickedCount":               prop("links_clicked"),
		"listCount":                       prop("list"),
		"listDescription":                 prop("description", "desc"),
		"listName":                        prop("list", "name"),
		"loadStatus":                      prop("status"),
		"lon":                             prop(),
		"machineOpenCount":                prop(),
		"mappingTypeName":                 prop("mapping_type", "mapping"),
		"matchedRows":                     prop("matched"),
		"matchedRowsCount":                prop("matched_count", "matched"),
		"matchPercent":                    prop("match", "percent"),
		"max":                             prop(),
		"maxDoorCount":                    prop("max_door"),
		"maxFieldLength":                  prop("max_length", "max_len"),
		"maxLength":                       prop(),
		"maxPeopleCount":                  prop("max_people"),
		"maxTextboxCharacters":            prop("max_box_chars"),
		"maxValue":                        prop("max"),
		"medianValue":                     prop("median"),
		"mediumName":                      prop("medium"),
		"message":                         prop(),
		"middleName":                      prop("middle"),
		"min":                             prop(),
		"minValue":                        prop("min"),
		"modifiedBy":                      prop("modifier"),
		"modifiedByEmail":                 prop("modified_by", "modifier_email", "modifier"),
		"nextTransactionDate":             prop("next_transaction", "next"),
		"nickname":                        prop(),
		"notes":                           prop(),
		"nulledOut":                       prop("nulled"),
		"number":                          prop(),
		"numberOfCards":                   prop("num_cards", "cards"),
		"numberTimesRenewed":              prop("times_renewed", "renewals"),
		"occupation":                      prop(),
		"officialName":                    prop("official"),
		"omitActivistCodeContactHistory":  prop("omit_contact_history", "omit_history"),
		"onlineReferenceNumber":           prop("reference_number", "ref_number"),
		"onlyMyBatches":                   prop("only_mine"),
		"openCount":                       prop("opens"),
		"optInStatus":                     prop("opt_in"),
		"orderby":                         prop("order_by"),
		"organizationContactCommonName":   prop("organization_contact", "org_contact_common", "org_common"),
		"organizationContactOfficialName": prop("organization_contact_official", "org_contact_official", "org_official"),
		"organizationId":                  prop("organization", "org"),
		"organizationRoles":               listProp("org_role", "org_roles"),
		"organizeAt":                      prop(),
		"originalAmount":                  prop("original"),
		"originalRowCount":                prop("original_count", "original"),
		"outOfRange":                      prop("OOR"),
		"overwriteExistingListId":         prop("overwrite_existing_id", "overwrite_id", "overwrite"),
		"parentCodeId":                    prop("parent_code"),
		"parentDepartmentId":              prop("parent_department", "parent"),
		"parentFieldId":                   prop("parent_field", "parent"),
		"parentFieldName":                 prop("parent_field", "parent"),
		"parentId":                        prop("parent"),
		"parentValueId":                   prop("parent_value"),
		"partialDateOfBirth":              prop("partial_birthday"),
		"party":                           prop(),
		"paymentType":                     prop(),
		"personIdColumn":                  prop("id_column", "id_col"),
		"personIdType":                    prop("person_type"),
		"personType":                      prop(),
		"phone":                           prop(),
		"phoneId":                         prop("phone"),
		"phoneNumber":                     prop("number"),
		"phoneSourceId":                   prop("phone_source", "source"),
		"points":                          prop(),
		"preview":                         prop(),
		"primaryContact":                  prop(),
		"primaryCustomField":              prop("primary_custom"),
		"processedAmount":                 prop(),
		"processedCurrency":               prop(),
		"professionalSuffix":              prop(),
		"properties":                      listProp("property"),
		"question":                        prop(),
		"questionId":                      prop("question"),
		"recipientCount":                  prop("recipients"),
		"recordCount":                     prop("records"),
		"recurrenceType":                  prop("recurrence"),
		"referenceCode":                   prop("reference"),
		"relationshipId":                  prop("relationship"),
		"remainingAmount":                 prop("remaining"),
		"replyToEmail":                    prop("reply_to"),
		"requestedCustomFieldIds":         listProp("custom_field", "custom_field_ids", "custom_fields"),
		"requestedFields":                 listProp("field", "fields"),
		"requestedIds":                    listProp("requested_id", "ids"),
		"resourceType":                    prop("resource"),
		"resourceTypes":                   listProp("resource", "resources"),
		"resourceUrl":                     prop("url"),
		"responseId":                      prop("response"),
		"restrictToRelationshipContactMode":        prop("restrict_to_mode"),
		"restrictToReverseRelationshipContactMode": prop("restrict_to_reverse_mode"),
		"result":                          prop(),
		"resultCodeId":                    prop("result_code"),
		"resultFileColumnName":            prop("result_column_name", "result_column", "column_name", "column"),
		"resultFileSizeKbLimit":           prop("size_kb_limit", "kb_limit"),
		"resultFileSizeLimitKb":           prop("size_kb_limit", "kb_limit"),
		"resultOutcomeGroup":              prop("outcome_group"),
		"salutation":                      prop(),
		"savedListId":                     prop("saved_list", "list"),
		"scoreColumn":                     prop("score_col"),
		"scoreId":                         prop("score"),
		"scriptQuestion":                  prop("question"),
		"searchKeyword":                   prop("search", "keyword"),
		"selectedOneTimeAmount":           prop("selected_one_time"),
		"selfReportedEthnicities":         arrayProp("ethnicities"),
		"selfReportedEthnicity":           prop("ethnicity"),
		"selfReportedGenders":             listProp("gender", "genders"),
		"selfReportedLanguagePreference":  prop("language_preference", "language"),
		"selfReportedRace":                prop("race"),
		"selfReportedRaces":               arrayProp("races"),
		"selfReportedSexualOrientations":  listProp("sexual_orientation", "sexual_orientations"),
		"senderDisplayName":               prop("sender_display", "sender_name"),
		"senderEmailAddress":              prop("sender_email"),
		"sex":                             prop(),
		"shortName":                       prop("short"),
		"skipMatching":                    prop(),
		"smsOptInStatus":                  prop("sms_opt_in"),
		"source":                          prop(),
		"sourceUrl":                       prop("source", "url"),
		"sourceValue":                     prop("source"),
		"startingAfter":                   prop("after"),
		"startingBefore":                  prop("before"),
		"startDate":                       prop("start"),
		"startTime":                       prop("start"),
		"startTimeOverride":               prop("start_override", "start"),
		"stateCode":                       prop("state"),
		"stateId":                         prop("state"),
		"stateOrProvince":                 prop("state", "province"),
		"staticValue":                     prop("static"),
		"status":                          prop(),
		"statuses":                        prop(),
		"statusName":                      prop("status"),
		"streetAddress":                   prop("address"),
		"subject":                         prop("subject"),
		"subscriptionStatus":              prop("status"),
		"supporterGroupId":                prop("supporter_group", "group"),
		"suffix":                          prop(),
		"surveyQuestionId":                prop("question"),
		"surveyResponseId":                prop("response"),
		"syncPeriodEnd":                   prop("sync_end", "end"),
		"syncPeriodStart":                 prop("sync_start", "start"),
		"targetId":                        prop("target"),
		"targetValue":                     prop("target"),
		"text":                            prop(),
		"title":                           prop(),
		"tolerance":                       prop("tolerance"),
		"totalDuesPaid":                   prop("total_paid"),
		"totalRows":                       prop("total"),
		"turfName":                        prop("turf"),
		"type":                            prop(),
		"typeAndName":                     prop(),
		"typeId":                          prop("type"),
		"unitNo":                          prop("unit"),
		"unmatchedRowsCount":              prop("unmatched_count", "unmatched"),
		"unsubscribeCount":                prop("unsubscribes"),
		"upsellType":                      prop("upsell"),
		"url":                             prop(),
		"username":                        prop("user"),
		"userFirstName":                   prop("first_name", "first"),
		"userLastName":                    prop("last_name", "last"),
		"value":                           prop(),
		"vanId":                           prop("van"),
		"webhookUrl":                      prop("webhook"),
		"website":                         prop(),
		"whatIf":                          prop(),
		"zipOrPostalCode":                 prop("zip_code", "zip", "postal_code", "postal"),
		"Description":                     prop("desc"),
		"ID":                              prop("id"),
		"Phone":                           prop("phone"),
		"PreferredPhone":                  prop("preferred"),
		"SonarScore":                      prop("sonar"),
		"VANID":                           prop("van_id", "van"),
	} {
		r.Share(name, field)
	}
}

// shareObjectFields declares every shared field whose values are
// objects of some catalog kind.
func shareObjectFields(r *Registry) {
	for name, field := range map[string]*Field{
		"actions":                  kindListProp("BulkImportAction", "action"),
		"activistCodes":            kindListProp("ActivistCode", "activist_code"),
		"address":                  kindProp("Address"),
		"addresses":                kindListProp("Address", "address"),
		"approvalCriteria":         kindProp("ScoreApprovalCriteria", "criteria"),
		"availableValues":          kindListProp("AvailableValue", "value", "available", "values"),
		"bargainingUnit":           kindProp("BargainingUnit"),
		"bargainingUnits":          kindListProp("BargainingUnit", "bargaining_unit"),
		"bulkImportFields":         kindListProp("ChangedEntityBulkImportField", "bulk_import_field"),
		"canvassContext":           kindProp("CanvassContext", "context"),
		"canvassers":               kindListProp("Canvasser", "canvasser"),
		"category":                 kindProp("NoteCategory"),
		"codes":                    kindListProp("Code", "code"),
		"columns":                  kindListProp("Column", "column"),
		"columnsToIncludeInResultsFile": kindListProp("Column", "include_column", "include_columns", "include"),
		"confirmationEmailData":    kindProp("ConfirmationEmailData", "confirmation_email", "confirmation_data", "confirmation"),
		"contactAttributions":      kindProp("Attribution", "attributions"),
		"contactHistory":           kindProp("ContactHistory", "history"),
		"contributionBankAccount":  kindProp("BankAccount", "contribution_account", "account_obj"),
		"customFields":             kindListProp("CustomField", "custom_field"),
		"customFieldValues":        kindListProp("CustomFieldValue", "custom_value", "custom_values"),
		"customProperties":         kindListProp("KeyValuePair", "property", "properties"),
		"defaultLocation":          kindProp("Location"),
		"departments":              kindListProp("Department", "department"),
		"designation":              kindProp("Designation"),
		"detailedConstraints":      kindProp("Constraints", "constraints"),
		"disclosureFieldValues":    kindListProp("DisclosureFieldValue", "disclosure", "disclosures", "field_values", "values"),
		"districts":                kindListProp("DistrictField", "district"),
		"districtFields":           kindListProp("DistrictField", "district_field"),
		"districtFieldValue":       kindProp("DistrictFieldValue"),
		"districtFieldValues":      kindListProp("DistrictFieldValue", "value", "values"),
		"duesPaid":                 kindProp("Currency"),
		"emails":                   funcListProp(emailFactory, "email"),
		"emailMessageContent":      kindListProp("EmailMessageContent", "content"),
		"emailMessageContentDistributions": kindProp("EmailMessageContentDistributions", "distributions"),
		"employer":                 kindProp("Employer"),
		"errors":                   kindListProp("Error", "error"),
		"event":                    kindProp("Event"),
		"eventType":                kindProp("EventType", "type"),
		"extendedSourceCode":       kindProp("ExtendedSourceCode", "extended_source"),
		"fields":                   kindListProp("BulkImportField", "field"),
		"fieldValueMappings":       kindListProp("FieldValueMapping", "mapping", "field_mappings", "value_mappings", "mappings"),
		"file":                     kindProp("File"),
		"files":                    kindListProp("File", "file"),
		"firstMembershipSourceCode": kindProp("MembershipSourceCode", "first_source_code", "source_code"),
		"form":                     kindProp("RegistrationForm"),
		"geoLocation":              kindProp("GeoCoordinate", "geo", "location"),
		"identifiers":              kindListProp("Identifier", "identifier"),
		"isCellStatus":             kindProp("IsCellStatus", "cell_status", "is_cell"),
		"jobClass":                 kindProp("JobClass"),
		"jobClasses":               kindListProp("BargainingUnitJobClass", "job_class"),
		"limitedToParentValues":    kindArrayProp("AvailableValue", "limited_to"),
		"listeners":                kindListProp("Listener", "listener"),
		"location":                 kindProp("Location"),
		"locations":                kindListProp("Location", "location"),
		"mappingTypes":             kindListProp("MappingType", "mapping", "mappings"),
		"parentOrganization":       kindProp("Employer", "parent"),
		"parents":                  kindListProp("MappingParent", "parent"),
		"person":                   kindProp("Person"),
		"phones":                   funcListProp(phoneFactory, "phone"),
		"pledge":                   kindProp("Pledge"),
		"possibleValues":           kindListProp("KeyValuePair", "possible_value", "possible"),
		"programType":              kindProp("ProgramType", "program"),
		"pronouns":                 kindProp("Pronoun", "pronoun", "preferredPronoun"),
		"recordedAddresses":        kindListProp("Address", "recorded_address"),
		"relationalMappings":       kindListProp("RelationalMapping", "relation", "relations"),
		"responses":                funcListProp(scriptResponseFactory, "response"),
		"resultFiles":              kindListProp("File", "file", "files"),
		"role":                     kindProp("EventRole"),
		"roles":                    kindListProp("EventRole", "role"),
		"savedList":                kindProp("SavedListData", "list"),
		"score":                    kindProp("Score"),
		"scores":                   kindListProp("Score", "score"),
		"shift":                    kindProp("EventShift"),
		"shifts":                   kindListProp("EventShift", "shift"),
		"storyStatus":              kindProp("StoryStatus", "status"),
		"subgroups":                kindListProp("Subgroup", "subgroup"),
		"suppressions":             funcListProp(suppressionFactory, "suppression"),
		"supportedEntities":        kindListProp("SupportedEntity", "entity", "entities"),
		"surveyQuestions":          kindListProp("SurveyQuestion", "question", "questions"),
		"surveyQuestionResponses":  kindListProp("SurveyResponse", "response", "responses"),
		"tags":                     kindListProp("Code", "tag"),
		"updateStatistics":         kindProp("UpdateStatistics", "update_stats", "statistics", "stats"),
		"values":                   kindListProp("MappingValue", "value"),
		"voterRegistrationBatches": kindListProp("VoterRegistrationBatch", "batch", "registration_batches", "batches"),
		"workAreas":                listProp("work_area"),
		"worksites":                kindListProp("Worksite", "worksite"),
	} {
		r.Share(name, field)
	}
}

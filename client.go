package everyaction

//
// Client configuration and the HTTP layer shared by every service.
//

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/everyaction/everyaction-go/internal/runtimex"
)

// API endpoints for the two hosting regions. Any other endpoint may be
// passed verbatim through [Config.Endpoint].
const (
	// EndpointUS serves most US-based clients.
	EndpointUS = "https://api.securevan.com/v4"

	// EndpointINTL serves most non-US clients.
	EndpointINTL = "https://intlapi.securevan.com/v4"
)

// Environment variables consulted when [Config] omits the credentials.
const (
	// AppNameEnv names the environment variable holding the
	// application name.
	AppNameEnv = "EVERYACTION_APP_NAME"

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv = "EVERYACTION_API_KEY"
)

// defaultLimitFallback is the paginated-record limit a new client
// starts out with.
const defaultLimitFallback = 50

// maxResponseBodySize bounds how much of a response body we read.
const maxResponseBodySize = 1 << 22

// endpointAliases maps short region names, lowercased, to endpoints.
var endpointAliases = map[string]string{
	"us":   EndpointUS,
	"intl": EndpointINTL,
}

// modeNames lists the database modes. The index of a mode is the
// digit appended to the API key.
var modeNames = []string{
	"VoterFile",
	"MyCampaign",
}

// HTTPClient is the interface of the HTTP client used by [Client].
// The [http.Client] type implements this interface.
type HTTPClient interface {
	// Do behaves like [http.Client.Do].
	Do(req *http.Request) (*http.Response, error)
}

// Config contains configuration for constructing a [Client]. The
// zero value is valid and reads the credentials from the environment.
type Config struct {
	// AppName is the OPTIONAL application name associated with the
	// API key. When empty we read the EVERYACTION_APP_NAME
	// environment variable, which must then be set.
	AppName string

	// APIKey is the OPTIONAL API key. When empty we read the
	// EVERYACTION_API_KEY environment variable, which must then be
	// set. A key ending with "|" and a digit carries its database
	// mode, in which case Mode must be empty; otherwise Mode is
	// mandatory.
	APIKey string

	// Endpoint is the OPTIONAL API endpoint: a full URL, or one of
	// the case-insensitive region aliases "US" and "INTL". An empty
	// value means "US".
	Endpoint string

	// Mode is the database mode: one of the case-insensitive names
	// "VoterFile" and "MyCampaign", or the corresponding digit. Leave
	// it empty when the API key carries the mode.
	Mode string

	// DefaultLimit OPTIONALLY overrides the initial limit on the
	// number of records fetched by paginated operations, which is 50.
	// Use [Client.SetDefaultLimit] to lift the limit entirely.
	DefaultLimit int

	// HTTPClient is the OPTIONAL HTTP client to use. We default to
	// [http.DefaultClient].
	HTTPClient HTTPClient

	// Logger is the OPTIONAL logger to use. We default to a logger
	// that discards all messages.
	Logger Logger

	// UserAgent OPTIONALLY overrides the User-Agent header.
	UserAgent string
}

// Client talks to the EveryAction API. Construct it with [New] and
// reach operations through the service fields, e.g. People. A Client
// is safe for concurrent use as long as [Client.SetDefaultLimit] is
// only called during setup.
type Client struct {
	appName      string
	apiKey       string // carries the mode suffix
	endpoint     string
	defaultLimit int
	httpClient   HTTPClient
	logger       Logger
	userAgent    string

	// People is the People service.
	People *PeopleService

	// ActivistCodes is the Activist Codes service.
	ActivistCodes *ActivistCodesService

	// Ballots is the Ballots service.
	Ballots *BallotsService

	// BargainingUnits is the Bargaining Units service.
	BargainingUnits *BargainingUnitsService

	// BulkImport is the Bulk Import service.
	BulkImport *BulkImportService

	// CanvassFileRequests is the Canvass File Requests service.
	CanvassFileRequests *CanvassFileRequestsService

	// CanvassResponses is the Canvass Responses service.
	CanvassResponses *CanvassResponsesService

	// ChangedEntities is the Changed Entities service.
	ChangedEntities *ChangedEntitiesService

	// Codes is the Codes service.
	Codes *CodesService

	// Commitments is the Commitments service.
	Commitments *CommitmentsService

	// Contributions is the Contributions service.
	Contributions *ContributionsService

	// CustomFields is the Custom Fields service.
	CustomFields *CustomFieldsService

	// Demographics is the Reported Demographics service.
	Demographics *DemographicsService

	// Departments is the Departments service.
	Departments *DepartmentsService

	// Designations is the Designations service.
	Designations *DesignationsService

	// Disbursements is the Disbursements service.
	Disbursements *DisbursementsService

	// DistrictFields is the District Fields service.
	DistrictFields *DistrictFieldsService

	// Email is the Email service.
	Email *EmailService

	// Employers is the Employers service.
	Employers *EmployersService

	// EventTypes is the Event Types service.
	EventTypes *EventTypesService

	// Events is the Events service.
	Events *EventsService

	// ExportJobs is the Export Jobs service.
	ExportJobs *ExportJobsService

	// ExtendedSourceCodes is the Extended Source Codes service.
	ExtendedSourceCodes *ExtendedSourceCodesService

	// FileLoadingJobs is the File-Loading Jobs service.
	FileLoadingJobs *FileLoadingJobsService

	// FinancialBatches is the Financial Batches service.
	FinancialBatches *FinancialBatchesService

	// Folders is the Folders service.
	Folders *FoldersService

	// Forms is the Online Actions Forms service.
	Forms *FormsService

	// JobClasses is the Job Classes service.
	JobClasses *JobClassesService

	// Locations is the Locations service.
	Locations *LocationsService

	// MemberStatuses is the Member Statuses service.
	MemberStatuses *MemberStatusesService

	// MiniVANExports is the MiniVAN Exports service.
	MiniVANExports *MiniVANExportsService

	// Notes is the Notes service.
	Notes *NotesService

	// Phones is the Phones service.
	Phones *PhonesService

	// PrintedLists is the Printed Lists service.
	PrintedLists *PrintedListsService

	// Relationships is the Relationships service.
	Relationships *RelationshipsService

	// SavedLists is the Saved Lists service.
	SavedLists *SavedListsService

	// ScheduleTypes is the Schedule Types service.
	ScheduleTypes *ScheduleTypesService

	// ScoreUpdates is the Score Updates service.
	ScoreUpdates *ScoreUpdatesService

	// Scores is the Scores service.
	Scores *ScoresService

	// ShiftTypes is the Shift Types service.
	ShiftTypes *ShiftTypesService

	// Signups is the Signups service.
	Signups *SignupsService

	// Stories is the Stories service.
	Stories *StoriesService

	// SupporterGroups is the Supporter Groups service.
	SupporterGroups *SupporterGroupsService

	// SurveyQuestions is the Survey Questions service.
	SurveyQuestions *SurveyQuestionsService

	// TargetExportJobs is the Target Export Jobs service.
	TargetExportJobs *TargetExportJobsService

	// Targets is the Targets service.
	Targets *TargetsService

	// Users is the Users service.
	Users *UsersService

	// VoterRegistrationBatches is the Voter Registration Batches
	// service.
	VoterRegistrationBatches *VoterRegistrationBatchesService

	// Worksites is the Worksites service.
	Worksites *WorksitesService
}

// New constructs a [Client] from the given config, which may be nil
// to read everything from the environment.
func New(config *Config) (*Client, error) {
	const op = "New"
	if config == nil {
		config = &Config{}
	}

	endpoint, err := resolveEndpoint(config.Endpoint)
	if err != nil {
		return nil, usageError(op, err)
	}

	appName, apiKey := config.AppName, config.APIKey
	if appName == "" && apiKey == "" {
		if appName = os.Getenv(AppNameEnv); appName == "" {
			return nil, usageErrorf(op, "environment variable %s is missing or empty", AppNameEnv)
		}
		if apiKey = os.Getenv(APIKeyEnv); apiKey == "" {
			return nil, usageErrorf(op, "environment variable %s is missing or empty", APIKeyEnv)
		}
	} else {
		if appName == "" {
			return nil, usageErrorf(op, "AppName must be set when APIKey is given")
		}
		if apiKey == "" {
			return nil, usageErrorf(op, "APIKey must be set when AppName is given")
		}
	}

	if pipes := strings.Count(apiKey, "|"); pipes > 0 {
		if pipes > 1 {
			return nil, usageErrorf(op, "expected at most 1 %q character in API key, found %d", "|", pipes)
		}
		if len(apiKey) < 2 || apiKey[len(apiKey)-2] != '|' {
			return nil, usageErrorf(op, "expected %q character to be second-to-last character in API key", "|")
		}
		if config.Mode != "" {
			return nil, usageErrorf(op, "mode specified but mode already indicated in API key, which contains the %q character", "|")
		}
	} else if config.Mode != "" {
		num, err := resolveMode(config.Mode)
		if err != nil {
			return nil, usageError(op, err)
		}
		apiKey += "|" + strconv.Itoa(num)
	} else {
		return nil, usageErrorf(op, "mode must either be specified or be implicit in the given API key")
	}
	if _, err := modeNumber(apiKey); err != nil {
		return nil, usageError(op, err)
	}

	defaultLimit := config.DefaultLimit
	if defaultLimit == 0 {
		defaultLimit = defaultLimitFallback
	}
	if defaultLimit < 0 {
		return nil, usageErrorf(op, "DefaultLimit must be at least 0, got %d", config.DefaultLimit)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = "everyaction-go/" + Version
	}

	c := &Client{
		appName:      appName,
		apiKey:       apiKey,
		endpoint:     endpoint,
		defaultLimit: defaultLimit,
		httpClient:   httpClient,
		logger:       validLoggerOrDefault(config.Logger),
		userAgent:    userAgent,
	}
	c.People = &PeopleService{c}
	c.ActivistCodes = &ActivistCodesService{c}
	c.Ballots = &BallotsService{c}
	c.BargainingUnits = &BargainingUnitsService{c}
	c.BulkImport = &BulkImportService{c}
	c.CanvassFileRequests = &CanvassFileRequestsService{c}
	c.CanvassResponses = &CanvassResponsesService{c}
	c.ChangedEntities = &ChangedEntitiesService{c}
	c.Codes = &CodesService{c}
	c.Commitments = &CommitmentsService{c}
	c.Contributions = &ContributionsService{c}
	c.CustomFields = &CustomFieldsService{c}
	c.Demographics = &DemographicsService{c}
	c.Departments = &DepartmentsService{c}
	c.Designations = &DesignationsService{c}
	c.Disbursements = &DisbursementsService{c}
	c.DistrictFields = &DistrictFieldsService{c}
	c.Email = &EmailService{c}
	c.Employers = &EmployersService{c}
	c.EventTypes = &EventTypesService{c}
	c.Events = &EventsService{c}
	c.ExportJobs = &ExportJobsService{c}
	c.ExtendedSourceCodes = &ExtendedSourceCodesService{c}
	c.FileLoadingJobs = &FileLoadingJobsService{c}
	c.FinancialBatches = &FinancialBatchesService{c}
	c.Folders = &FoldersService{c}
	c.Forms = &FormsService{c}
	c.JobClasses = &JobClassesService{c}
	c.Locations = &LocationsService{c}
	c.MemberStatuses = &MemberStatusesService{c}
	c.MiniVANExports = &MiniVANExportsService{c}
	c.Notes = &NotesService{c}
	c.Phones = &PhonesService{c}
	c.PrintedLists = &PrintedListsService{c}
	c.Relationships = &RelationshipsService{c}
	c.SavedLists = &SavedListsService{c}
	c.ScheduleTypes = &ScheduleTypesService{c}
	c.ScoreUpdates = &ScoreUpdatesService{c}
	c.Scores = &ScoresService{c}
	c.ShiftTypes = &ShiftTypesService{c}
	c.Signups = &SignupsService{c}
	c.Stories = &StoriesService{c}
	c.SupporterGroups = &SupporterGroupsService{c}
	c.SurveyQuestions = &SurveyQuestionsService{c}
	c.TargetExportJobs = &TargetExportJobsService{c}
	c.Targets = &TargetsService{c}
	c.Users = &UsersService{c}
	c.VoterRegistrationBatches = &VoterRegistrationBatchesService{c}
	c.Worksites = &WorksitesService{c}
	return c, nil
}

// resolveEndpoint maps a configured endpoint to a URL. Anything
// starting with "http" passes through unchanged.
func resolveEndpoint(name string) (string, error) {
	if name == "" {
		name = "US"
	}
	if strings.HasPrefix(name, "http") {
		return name, nil
	}
	endpoint, ok := endpointAliases[strings.ToLower(name)]
	if !ok {
		supported := make([]string, 0, len(endpointAliases))
		for _, alias := range sortedKeys(endpointAliases) {
			supported = append(supported, fmt.Sprintf("%s -> %s", alias, endpointAliases[alias]))
		}
		return "", fmt.Errorf(
			"unrecognized endpoint alias %s (did you forget \"https://\"?); supported aliases are: %s",
			name, strings.Join(supported, ", "))
	}
	return endpoint, nil
}

// resolveMode maps a mode name or digit to its mode number.
func resolveMode(mode string) (int, error) {
	if num, err := strconv.Atoi(mode); err == nil {
		return num, checkModeNumber(num)
	}
	lower := strings.ToLower(mode)
	for num, name := range modeNames {
		if strings.ToLower(name) == lower {
			return num, nil
		}
	}
	return 0, fmt.Errorf("unrecognized mode %q, supported modes are: %s", mode, strings.Join(modeNames, ", "))
}

// checkModeNumber ensures a mode number indexes modeNames.
func checkModeNumber(num int) error {
	if num >= len(modeNames) {
		return fmt.Errorf("mode number (%d) is too high (expected at most %d)", num, len(modeNames)-1)
	}
	if num < 0 {
		return fmt.Errorf("mode number (%d) is negative", num)
	}
	return nil
}

// modeNumber extracts and validates the mode suffix of a full API key.
func modeNumber(apiKey string) (int, error) {
	digit := apiKey[len(apiKey)-1]
	if digit < '0' || digit > '9' {
		return 0, fmt.Errorf("expected API key to end with the mode number, got %q", string(digit))
	}
	num := int(digit - '0')
	return num, checkModeNumber(num)
}

// AppName returns the application name this client authenticates as.
func (c *Client) AppName() string {
	return c.appName
}

// Endpoint returns the API endpoint this client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Mode returns the name of the database mode this client uses.
func (c *Client) Mode() string {
	num, err := modeNumber(c.apiKey)
	runtimex.PanicOnError(err, "everyaction: client carries an invalid API key")
	return modeNames[num]
}

// DefaultLimit returns the current limit on the number of records
// fetched by paginated operations. Zero means no limit.
func (c *Client) DefaultLimit() int {
	return c.defaultLimit
}

// SetDefaultLimit changes the limit on the number of records fetched
// by paginated operations. Setting the limit to 0 allows for
// unlimited results.
func (c *Client) SetDefaultLimit(limit int) error {
	if limit < 0 {
		return usageErrorf("SetDefaultLimit", "limit must be at least 0, got %d", limit)
	}
	c.defaultLimit = limit
	return nil
}

// String implements fmt.Stringer.
func (c *Client) String() string {
	return fmt.Sprintf(
		"Client(appName=%s, endpoint=%s, mode=%s, defaultLimit=%d)",
		c.appName, c.endpoint, c.Mode(), c.defaultLimit)
}

// addBase resolves a route against the endpoint. Absolute routes on
// the same endpoint, such as continuation links, pass through
// unchanged.
func (c *Client) addBase(route string) string {
	if strings.HasPrefix(route, c.endpoint) {
		return route
	}
	return c.endpoint + "/" + strings.TrimPrefix(route, "/")
}

// do sends one request and reads its response. It returns the status
// code, the URL the request went to, and the response body. A non-nil
// error means the request could not be performed at all; HTTP-level
// failures are the caller's to interpret.
func (c *Client) do(ctx context.Context, method, route string, query url.Values, body []byte) (int, string, []byte, error) {
	URL := c.addBase(route)
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(URL, "?") {
			sep = "&"
		}
		URL += sep + query.Encode()
	}
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return 0, URL, nil, err
	}
	req.SetBasicAuth(c.appName, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	c.logger.Debugf("everyaction: %s %s", method, URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, URL, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return 0, URL, nil, err
	}
	c.logger.Debugf("everyaction: %d with %d body bytes", resp.StatusCode, len(data))
	return resp.StatusCode, URL, data, nil
}

// APIKeyProfile retrieves the profile associated with the API key
// this client is using.
func (c *Client) APIKeyProfile(ctx context.Context) (*Object, error) {
	profiles, err := callList(ctx, c, apiKeyProfilesEndpoint, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, &NotFoundError{What: "API key profile", Name: c.appName}
	}
	return profiles[0], nil
}

// apiKeyProfilesEndpoint is paginated but only ever has one element,
// the profile of the key in use. [Client.APIKeyProfile] unpacks it.
var apiKeyProfilesEndpoint = mustEndpoint(&Endpoint{
	Name:       "Client.APIKeyProfile",
	Method:     http.MethodGet,
	Path:       "apiKeyProfiles",
	Paginated:  true,
	ResultKind: APIKeyProfile,
})

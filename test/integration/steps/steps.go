package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecommerce/backend/internal/domain/entity"
	"github.com/ecommerce/backend/internal/integration/adapters"
	"github.com/ecommerce/backend/internal/integration/persistence"
)

// registerSetupSteps registers steps that prepare state.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^a user "([^"]*)" exists with password "([^"]*)"$`, aUserExistsWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^the clock advances by "([^"]*)"$`, theClockAdvancesBy)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I send the issued token as "([^"]*)"$`, iSendTheIssuedTokenAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response body should be empty$`, theResponseBodyShouldBeEmpty)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, theResponseShouldNotContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response header "([^"]*)" should start with "([^"]*)"$`, theResponseHeaderShouldStartWith)
	ctx.Step(`^the response header "([^"]*)" should be absent$`, theResponseHeaderShouldBeAbsent)
}

// registerStoreSteps registers assertions against the backing stores.
func registerStoreSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the audit trail should contain (\d+) "([^"]*)" entr(?:y|ies) for "([^"]*)"$`, theAuditTrailShouldContain)
}

// Setup steps

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func aUserExistsWithPassword(ctx context.Context, username, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	hash, err := adapters.NewPasswordServiceWithCost(bcrypt.MinCost).HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return persistence.NewUserRepository(tc.db.DbConn).Create(ctx, entity.NewUser(username, hash))
}

func iAmLoggedInAsWithPassword(ctx context.Context, username, password string) (context.Context, error) {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	ctx, err := iSendARequestToWithBody(ctx, http.MethodPost, "/api/v1/auth/login", &godog.DocString{Content: body})
	if err != nil {
		return ctx, err
	}

	tc := GetTestContext(ctx)
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("login failed with status %d", tc.response.StatusCode)
	}

	header := tc.response.Header.Get(tc.cfg.Auth.HeaderName)
	tc.accessToken = strings.TrimPrefix(header, tc.cfg.Auth.TokenPrefix)
	if tc.accessToken == "" {
		return ctx, fmt.Errorf("login did not return a token")
	}
	return SetTestContext(ctx, tc), nil
}

func theClockAdvancesBy(ctx context.Context, duration string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	d, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", duration, err)
	}
	tc.clock.Advance(d)
	return nil
}

// Request steps

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add auth token if present; explicit headers win
	if tc.accessToken != "" {
		req.Header.Set(tc.cfg.Auth.HeaderName, tc.cfg.Auth.TokenPrefix+tc.accessToken)
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

// iSendTheIssuedTokenAs replaces {token} in the template with the token from the last login.
func iSendTheIssuedTokenAs(ctx context.Context, template string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.accessToken == "" {
		return ctx, fmt.Errorf("no token has been issued")
	}
	tc.requestHeaders[tc.cfg.Auth.HeaderName] = strings.ReplaceAll(template, "{token}", tc.accessToken)
	return SetTestContext(ctx, tc), nil
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseBodyShouldBeEmpty(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tc.responseBody) != 0 {
		return fmt.Errorf("expected empty body, got %s", string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldNotContain(ctx context.Context, unexpected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if strings.Contains(string(tc.responseBody), unexpected) {
		return fmt.Errorf("response unexpectedly contains '%s'. Body: %s", unexpected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	var data map[string]any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field '%s' not found in response", field)
	}
	return value, nil
}

func theResponseHeaderShouldStartWith(ctx context.Context, header, prefix string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	value := tc.response.Header.Get(header)
	if !strings.HasPrefix(value, prefix) || len(value) == len(prefix) {
		return fmt.Errorf("header '%s' expected to start with '%s' followed by a value, got '%s'", header, prefix, value)
	}
	return nil
}

func theResponseHeaderShouldBeAbsent(ctx context.Context, header string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if value := tc.response.Header.Get(header); value != "" {
		return fmt.Errorf("header '%s' expected to be absent, got '%s'", header, value)
	}
	return nil
}

// Store steps

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	count, err := tc.db.Count(table)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in %s, got %d", quantity, table, count)
	}
	return nil
}

func theAuditTrailShouldContain(ctx context.Context, quantity int, outcome, username string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	raw, err := tc.redis.LRange(ctx, testAuditKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read audit trail: %w", err)
	}

	found := 0
	for _, item := range raw {
		var entry entity.AuditEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return fmt.Errorf("invalid audit entry %q: %w", item, err)
		}
		if entry.Username == username && string(entry.Outcome) == outcome {
			found++
		}
	}
	if found != quantity {
		return fmt.Errorf("expected %d %s audit entries for %s, got %d", quantity, outcome, username, found)
	}
	return nil
}

// Package client provides the API client for interacting with the ArqFlow API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/estimator"
	"github.com/madenai/arqflow/internal/services"
	"github.com/madenai/arqflow/internal/types"
	"github.com/madenai/arqflow/pkg/api/v1/handlers"
	"github.com/madenai/arqflow/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Auth Endpoints
	Register(ctx context.Context, params handlers.RegisterParams) (models.User, error)
	Login(ctx context.Context, params handlers.LoginParams) (handlers.LoginResponse, error)
	Me(ctx context.Context) (models.User, error)

	// Project methods
	CreateProject(ctx context.Context, params handlers.ProjectCreateParams) (models.Project, error)
	GetProject(ctx context.Context, params handlers.ProjectGetParams) (models.Project, error)
	ListProjects(ctx context.Context, params handlers.ProjectListParams) ([]models.Project, error)
	DeleteProject(ctx context.Context, params handlers.ProjectDeleteParams) error

	// Budget methods
	GenerateBudget(ctx context.Context, params handlers.BudgetGenerateParams) (estimator.Budget, error)
	GetBudget(ctx context.Context, params handlers.BudgetGetParams) (estimator.Budget, error)
	UpdateBudgetItem(ctx context.Context, params handlers.BudgetUpdateItemParams) (estimator.Budget, error)
	AddBudgetItem(ctx context.Context, params handlers.BudgetAddItemParams) (estimator.Budget, error)
	RemoveBudgetItem(ctx context.Context, params handlers.BudgetRemoveItemParams) (estimator.Budget, error)

	// Schedule methods
	GenerateSchedule(ctx context.Context, params handlers.ScheduleGenerateParams) (handlers.ScheduleResponse, error)
	GetSchedule(ctx context.Context, params handlers.ScheduleGetParams) (handlers.ScheduleResponse, error)
	UpdateScheduleTask(ctx context.Context, params handlers.ScheduleUpdateTaskParams) (handlers.ScheduleResponse, error)
	AddScheduleTask(ctx context.Context, params handlers.ScheduleAddTaskParams) (handlers.ScheduleResponse, error)

	// Assistant methods
	AssistantChat(ctx context.Context, params handlers.AssistantChatParams) (services.ChatReply, error)

	// Payment methods
	CreatePayment(ctx context.Context, params handlers.PaymentCreateParams) (models.Payment, error)
	ListPayments(ctx context.Context, page int) (types.ListResponse[models.Payment], error)

	// Admin methods
	AdminMetrics(ctx context.Context) (services.AdminMetrics, error)
	AdminListUsers(ctx context.Context, page int) (types.ListResponse[models.User], error)
	AdminListAlerts(ctx context.Context, page int) (types.ListResponse[models.Alert], error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration

	// AuthToken is the Bearer token attached to authenticated requests
	AuthToken string
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL   string
	timeout   time.Duration
	AuthToken string
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (*APIClient, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	_, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return &APIClient{
		baseURL:   opts.BaseURL,
		timeout:   opts.Timeout,
		AuthToken: opts.AuthToken,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	// Resolve the endpoint URL
	fullURL := c.baseURL + endpoint

	// Create a new agent based on the HTTP method
	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	// Set common headers
	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")
	if c.AuthToken != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.AuthToken)
	}

	// Add body if provided
	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	// Execute the request
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	// Check for non-success status codes
	if statusCode < 200 || statusCode >= 300 {
		return &fiber.Error{
			Code:    statusCode,
			Message: string(body),
		}
	}

	// Decode the response body if a target is provided
	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// executeRPC performs the actual RPC call
func (c *APIClient) executeRPC(ctx context.Context, method string, params interface{}, result interface{}) error {
	endpoint := routes.RPCURL()

	// Create the request body
	requestBody := map[string]interface{}{
		"method": method,
		"params": params,
	}

	// Create the agent
	agent, err := c.createAgent(ctx, http.MethodPost, endpoint, requestBody)
	if err != nil {
		return err
	}

	// Execute the request and get the response body
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending RPC request: %w", errs[0])
	}

	// Check for non-success status codes
	if statusCode < 200 || statusCode >= 300 {
		return &fiber.Error{
			Code:    statusCode,
			Message: string(body),
		}
	}

	// Unmarshal the response into the handlers.RPCResponse struct
	var rpcResp handlers.RPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return fmt.Errorf("failed to unmarshal RPC response body: %w", err)
	}

	// Check for application-level errors
	if rpcResp.Error != nil {
		return fmt.Errorf("RPC error: %s (code: %d)", rpcResp.Error.Message, rpcResp.Error.Code)
	}

	if !rpcResp.Success {
		return fmt.Errorf("RPC call failed without specific error details")
	}

	// If result is nil, we don't need to unmarshal data
	if result == nil {
		return nil
	}

	// Unmarshal the Data field into the provided result
	dataBytes, err := json.Marshal(rpcResp.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal RPC data field: %w", err)
	}

	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("failed to unmarshal RPC data into result: %w", err)
	}

	return nil
}

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var result map[string]string
	err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &result)
	return result, err
}

// Register creates an account
func (c *APIClient) Register(ctx context.Context, params handlers.RegisterParams) (models.User, error) {
	var user models.User
	err := c.executeRequest(ctx, http.MethodPost, routes.RegisterURL(), params, &user)
	return user, err
}

// Login verifies credentials and stores the returned token on the client
func (c *APIClient) Login(ctx context.Context, params handlers.LoginParams) (handlers.LoginResponse, error) {
	var resp handlers.LoginResponse
	if err := c.executeRequest(ctx, http.MethodPost, routes.LoginURL(), params, &resp); err != nil {
		return resp, err
	}
	c.AuthToken = resp.Token
	return resp, nil
}

// Me retrieves the authenticated user's profile
func (c *APIClient) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.executeRequest(ctx, http.MethodGet, routes.MeURL(), nil, &user)
	return user, err
}

// CreateProject registers an uploaded project
func (c *APIClient) CreateProject(ctx context.Context, params handlers.ProjectCreateParams) (models.Project, error) {
	var project models.Project
	err := c.executeRPC(ctx, handlers.ProjectCreate, params, &project)
	return project, err
}

// GetProject retrieves a project by name
func (c *APIClient) GetProject(ctx context.Context, params handlers.ProjectGetParams) (models.Project, error) {
	var project models.Project
	err := c.executeRPC(ctx, handlers.ProjectGet, params, &project)
	return project, err
}

// ListProjects lists the caller's projects
func (c *APIClient) ListProjects(ctx context.Context, params handlers.ProjectListParams) ([]models.Project, error) {
	var resp types.ListResponse[models.Project]
	if err := c.executeRPC(ctx, handlers.ProjectList, params, &resp); err != nil {
		return nil, err
	}
	return resp.Rows, nil
}

// DeleteProject deletes a project by name
func (c *APIClient) DeleteProject(ctx context.Context, params handlers.ProjectDeleteParams) error {
	return c.executeRPC(ctx, handlers.ProjectDelete, params, nil)
}

// GenerateBudget derives a fresh budget for a project
func (c *APIClient) GenerateBudget(ctx context.Context, params handlers.BudgetGenerateParams) (estimator.Budget, error) {
	var budget estimator.Budget
	err := c.executeRPC(ctx, handlers.BudgetGenerate, params, &budget)
	return budget, err
}

// GetBudget retrieves a project's stored budget
func (c *APIClient) GetBudget(ctx context.Context, params handlers.BudgetGetParams) (estimator.Budget, error) {
	var budget estimator.Budget
	err := c.executeRPC(ctx, handlers.BudgetGet, params, &budget)
	return budget, err
}

// UpdateBudgetItem edits one budget line
func (c *APIClient) UpdateBudgetItem(ctx context.Context, params handlers.BudgetUpdateItemParams) (estimator.Budget, error) {
	var budget estimator.Budget
	err := c.executeRPC(ctx, handlers.BudgetUpdateItem, params, &budget)
	return budget, err
}

// AddBudgetItem appends a user-defined budget line
func (c *APIClient) AddBudgetItem(ctx context.Context, params handlers.BudgetAddItemParams) (estimator.Budget, error) {
	var budget estimator.Budget
	err := c.executeRPC(ctx, handlers.BudgetAddItem, params, &budget)
	return budget, err
}

// RemoveBudgetItem removes a budget line
func (c *APIClient) RemoveBudgetItem(ctx context.Context, params handlers.BudgetRemoveItemParams) (estimator.Budget, error) {
	var budget estimator.Budget
	err := c.executeRPC(ctx, handlers.BudgetRemoveItem, params, &budget)
	return budget, err
}

// GenerateSchedule derives a fresh schedule for a project
func (c *APIClient) GenerateSchedule(ctx context.Context, params handlers.ScheduleGenerateParams) (handlers.ScheduleResponse, error) {
	var schedule handlers.ScheduleResponse
	err := c.executeRPC(ctx, handlers.ScheduleGenerate, params, &schedule)
	return schedule, err
}

// GetSchedule retrieves a project's stored schedule
func (c *APIClient) GetSchedule(ctx context.Context, params handlers.ScheduleGetParams) (handlers.ScheduleResponse, error) {
	var schedule handlers.ScheduleResponse
	err := c.executeRPC(ctx, handlers.ScheduleGet, params, &schedule)
	return schedule, err
}

// UpdateScheduleTask edits one schedule task
func (c *APIClient) UpdateScheduleTask(ctx context.Context, params handlers.ScheduleUpdateTaskParams) (handlers.ScheduleResponse, error) {
	var schedule handlers.ScheduleResponse
	err := c.executeRPC(ctx, handlers.ScheduleUpdateTask, params, &schedule)
	return schedule, err
}

// AddScheduleTask appends a task to the end of the chain
func (c *APIClient) AddScheduleTask(ctx context.Context, params handlers.ScheduleAddTaskParams) (handlers.ScheduleResponse, error) {
	var schedule handlers.ScheduleResponse
	err := c.executeRPC(ctx, handlers.ScheduleAddTask, params, &schedule)
	return schedule, err
}

// AssistantChat sends a project-scoped chat message
func (c *APIClient) AssistantChat(ctx context.Context, params handlers.AssistantChatParams) (services.ChatReply, error) {
	var reply services.ChatReply
	err := c.executeRPC(ctx, handlers.AssistantChat, params, &reply)
	return reply, err
}

// CreatePayment submits a charge for the authenticated user
func (c *APIClient) CreatePayment(ctx context.Context, params handlers.PaymentCreateParams) (models.Payment, error) {
	var payment models.Payment
	err := c.executeRequest(ctx, http.MethodPost, routes.CreatePaymentURL(), params, &payment)
	return payment, err
}

// ListPayments lists the authenticated user's payments
func (c *APIClient) ListPayments(ctx context.Context, page int) (types.ListResponse[models.Payment], error) {
	var resp types.ListResponse[models.Payment]
	err := c.executeRequest(ctx, http.MethodGet, routes.GetPaymentsURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// AdminMetrics retrieves the admin dashboard snapshot
func (c *APIClient) AdminMetrics(ctx context.Context) (services.AdminMetrics, error) {
	var metrics services.AdminMetrics
	err := c.executeRequest(ctx, http.MethodGet, routes.AdminMetricsURL(), nil, &metrics)
	return metrics, err
}

// AdminListUsers lists all accounts
func (c *APIClient) AdminListUsers(ctx context.Context, page int) (types.ListResponse[models.User], error) {
	var resp types.ListResponse[models.User]
	err := c.executeRequest(ctx, http.MethodGet, routes.AdminUsersURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// AdminListAlerts lists operational alerts
func (c *APIClient) AdminListAlerts(ctx context.Context, page int) (types.ListResponse[models.Alert], error) {
	var resp types.ListResponse[models.Alert]
	err := c.executeRequest(ctx, http.MethodGet, routes.AdminAlertsURL(pageQuery(page)), nil, &resp)
	return resp, err
}

// pageQuery builds the pagination query string
func pageQuery(page int) url.Values {
	if page < 1 {
		return nil
	}
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	return q
}

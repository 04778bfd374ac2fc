// Package client is a Go client for the recipehub HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recipehub/models"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recipehub: %d %s", e.StatusCode, e.Message)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterResult mirrors the register endpoint's data.
type RegisterResult struct {
	Course          models.Course       `json:"course"`
	UserCourses     []models.UserCourse `json:"userCourses"`
	AlreadyEnrolled bool                `json:"alreadyEnrolled"`
	Message         string              `json:"-"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(15*time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) (string, error) {
	var env envelope
	req := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("recipehub %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := env.Message
		if msg == "" {
			msg = resp.Status()
		}
		return "", &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("recipehub %s %s: decode: %w", method, path, err)
		}
	}
	return env.Message, nil
}

// Login authenticates and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (isAdmin bool, err error) {
	var out struct {
		Token   string `json:"token"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if _, err := c.call(ctx, resty.MethodPost, "/api/users/login", map[string]string{"email": email, "password": password}, &out); err != nil {
		return false, err
	}
	c.SetToken(out.Token)
	return out.IsAdmin, nil
}

func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	_, err := c.call(ctx, resty.MethodGet, "/api/courses", nil, &out)
	return out, err
}

func (c *Client) Course(ctx context.Context, id uint) (*models.Course, error) {
	var out models.Course
	if _, err := c.call(ctx, resty.MethodGet, "/api/courses/"+strconv.FormatUint(uint64(id), 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, courseID uint) (*RegisterResult, error) {
	var out RegisterResult
	msg, err := c.call(ctx, resty.MethodPost, "/api/courses/"+strconv.FormatUint(uint64(courseID), 10)+"/register", nil, &out)
	if err != nil {
		return nil, err
	}
	out.Message = msg
	return &out, nil
}

func (c *Client) Unregister(ctx context.Context, courseID uint) ([]models.UserCourse, error) {
	var out struct {
		UserCourses []models.UserCourse `json:"userCourses"`
	}
	_, err := c.call(ctx, resty.MethodPost, "/api/courses/"+strconv.FormatUint(uint64(courseID), 10)+"/unregister", nil, &out)
	return out.UserCourses, err
}

func (c *Client) MyCourses(ctx context.Context) ([]models.UserCourse, error) {
	var out struct {
		Courses []models.UserCourse `json:"courses"`
	}
	_, err := c.call(ctx, resty.MethodGet, "/api/users/courses", nil, &out)
	return out.Courses, err
}

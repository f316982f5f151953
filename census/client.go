// Copyright 2024 the census-go authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package census

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const Version = "0.1.0"

const userAgent = "census-go/" + Version

type ClientOptions struct {
	Config
	HTTPClient *http.Client
}

func NewClientOptions(cfg *Config) *ClientOptions {
	return &ClientOptions{Config: *cfg}
}

// Client issues requests against the Census Bureau Data API. Each call
// performs exactly one outbound request, with no retries and no caching.
type Client struct {
	ctx        context.Context
	Scheme     string
	Host       string
	Dataset    string
	Key        string
	HttpClient *http.Client
}

const DefaultScheme = "https"
const DefaultHost = "api.census.gov"
const DefaultDataset = "acs/acs5"

func NewClient(ctx context.Context, opts *ClientOptions) *Client {
	if opts == nil {
		opts = &ClientOptions{}
	}
	scheme := opts.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	dataset := opts.Dataset
	if dataset == "" {
		dataset = DefaultDataset
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	return &Client{
		ctx:        ctx,
		Scheme:     scheme,
		Host:       host,
		Dataset:    dataset,
		Key:        opts.Key,
		HttpClient: opts.HTTPClient}
}

// Returns a new client using the background context and config settings
// from the named profile.
func NewClientFromConfig(profile string) (*Client, error) {
	var cfg Config
	if err := LoadConfigProfile(profile, &cfg); err != nil {
		return nil, err
	}
	opts := ClientOptions{Config: cfg}
	return NewClient(context.Background(), &opts), nil
}

// Returns a new client using the background context and config settings
// from the default profile.
func NewDefaultClient() (*Client, error) {
	return NewClientFromConfig(DefaultConfigProfile)
}

func (c *Client) Context() context.Context {
	return c.ctx
}

func (c *Client) SetContext(ctx context.Context) {
	c.ctx = ctx
}

// Returns the URL of the dataset endpoint for the given vintage, with
// any extra path segments appended.
func (c *Client) Url(vintage int, parts ...string) string {
	path := fmt.Sprintf("/data/%d/%s", vintage, c.Dataset)
	if len(parts) > 0 {
		path += "/" + strings.Join(parts, "/")
	}
	return fmt.Sprintf("%s://%s%s", c.Scheme, c.Host, path)
}

// Add any missing headers to the given request.
func (c *Client) ensureHeaders(req *http.Request) {
	if v := req.Header.Get("accept"); v == "" {
		req.Header.Set("Accept", "application/json")
	}
	if v := req.Header.Get("user-agent"); v == "" {
		req.Header.Set("User-Agent", userAgent)
	}
}

// Issue a GET against the given URL and return the raw response body.
func (c *Client) get(url string, args url.Values) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		req.URL.RawQuery = args.Encode()
	}
	c.ensureHeaders(req)
	rsp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()
	return io.ReadAll(rsp.Body)
}

// Issue a GET and unmarshal the JSON response into result.
func (c *Client) getJSON(url string, args url.Values, result interface{}) error {
	data, err := c.get(url, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, result); err != nil {
		return errors.Wrapf(err, "unmarshaling response")
	}
	return nil
}

// HTTPError represents a non-2xx response from the API. The status code
// and the raw response body are surfaced verbatim.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	statusText := http.StatusText(e.StatusCode)
	if e.Body != "" {
		return fmt.Sprintf("%d %s\n%s", e.StatusCode, statusText, e.Body)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, statusText)
}

// Returns an HTTPError corresponding to the given response.
func httpError(rsp *http.Response) error {
	// assert rsp.Status < 200 || rsp.Status > 299
	data, err := io.ReadAll(rsp.Body)
	if err != nil {
		data = []byte{}
	}
	return &HTTPError{StatusCode: rsp.StatusCode, Body: string(data)}
}

// ShapeError represents a response body that is not the expected
// non-empty rectangular 2D array of strings.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "malformed response: " + e.Reason
}

// Answers if the given response has a status code representing an error.
func isErrorStatus(rsp *http.Response) bool {
	return rsp.StatusCode < 200 || rsp.StatusCode > 299
}

// Execute the given request and return the response or error.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req = req.WithContext(c.ctx)
	rsp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if isErrorStatus(rsp) {
		defer rsp.Body.Close()
		return nil, httpError(rsp)
	}
	return rsp, nil
}

package forum

import (
	"encoding/json"
	"fmt"
	"io"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// Client fetches public Discourse JSON endpoints.
type Client struct {
	httpClient tls_client.HttpClient
	baseURL    string
	userAgent  string
}

func NewClient(baseURL string) (*Client, error) {
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithClientProfile(profiles.Chrome_133),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  "dotdigest/1.0 (forum analyzer)",
	}, nil
}

func (c *Client) getJSON(url string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("forum error %d: %s", resp.StatusCode, body)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Categories fetches all forum categories.
func (c *Client) Categories() ([]Category, error) {
	var parsed categoriesResponse
	if err := c.getJSON(fmt.Sprintf("%s/categories.json", c.baseURL), &parsed); err != nil {
		return nil, err
	}
	return parsed.CategoryList.Categories, nil
}

// CategoryTopics fetches one page of topics for a category. An empty
// slice means there are no more pages.
func (c *Client) CategoryTopics(categoryID, page int) ([]Topic, error) {
	var parsed topicListResponse
	url := fmt.Sprintf("%s/c/%d.json?page=%d", c.baseURL, categoryID, page)
	if err := c.getJSON(url, &parsed); err != nil {
		return nil, err
	}
	return parsed.TopicList.Topics, nil
}

// Topic fetches a topic with its tags and full post stream.
func (c *Client) Topic(topicID int) (*TopicDetail, error) {
	var parsed topicDetailResponse
	if err := c.getJSON(fmt.Sprintf("%s/t/%d.json", c.baseURL, topicID), &parsed); err != nil {
		return nil, err
	}

	detail := &TopicDetail{
		Topic: Topic{
			ID:         parsed.ID,
			Title:      parsed.Title,
			Views:      parsed.Views,
			PostsCount: parsed.PostsCount,
			CreatedAt:  parsed.CreatedAt,
			Tags:       parsed.Tags,
		},
		Posts: parsed.PostStream.Posts,
	}
	return detail, nil
}

// BaseURL returns the configured forum base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

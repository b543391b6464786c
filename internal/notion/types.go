// Package notion is a small typed client for the Notion REST API,
// covering the calls morrow needs: querying the task and job databases,
// creating task records, and creating the daily planner page. The client
// is an explicitly constructed instance; there is no package-level client
// or shared rate state.
package notion

import "fmt"

// API version pinned for all requests.
const notionVersion = "2022-06-28"

// RichText is one segment of Notion rich text.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// TextContent is the editable payload of a text segment.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a URL attached to a text segment.
type Link struct {
	URL string `json:"url"`
}

// Text builds a single-segment rich text array from a plain string.
func Text(s string) []RichText {
	return []RichText{{Type: "text", Text: &TextContent{Content: s}}}
}

// LinkText builds a single-segment rich text array whose text links to url.
func LinkText(s, url string) []RichText {
	return []RichText{{Type: "text", Text: &TextContent{Content: s, Link: &Link{URL: url}}}}
}

// PlainString flattens a rich text array to its plain content.
func PlainString(rt []RichText) string {
	var out string
	for _, seg := range rt {
		if seg.PlainText != "" {
			out += seg.PlainText
		} else if seg.Text != nil {
			out += seg.Text.Content
		}
	}
	return out
}

// SelectOption is a select property value.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is a date property value. Only the start date is used here.
type DateValue struct {
	Start string `json:"start"`
}

// PropertyValue is a database property value, one variant populated
// according to Type. Only the property types the planner databases use
// are modeled.
type PropertyValue struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
	URL      string        `json:"url,omitempty"`
}

// Page is a Notion page (a database row is a page too).
type Page struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url,omitempty"`
	Properties map[string]PropertyValue `json:"properties,omitempty"`
}

// DatabaseQuery is the body of a database query request.
type DatabaseQuery struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Filter is a query filter: either one property condition or a compound
// "and" of several.
type Filter struct {
	Property string          `json:"property,omitempty"`
	Date     *DateFilter     `json:"date,omitempty"`
	Checkbox *CheckboxFilter `json:"checkbox,omitempty"`
	And      []Filter        `json:"and,omitempty"`
}

// DateFilter matches date properties.
type DateFilter struct {
	Equals string `json:"equals,omitempty"`
}

// CheckboxFilter matches checkbox properties. Equals is a pointer so a
// false condition still serializes.
type CheckboxFilter struct {
	Equals *bool `json:"equals,omitempty"`
}

// Sort orders query results by a property.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// queryResponse is one page of database query results.
type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// Database describes a database, as returned by the retrieve endpoint.
type Database struct {
	ID    string     `json:"id"`
	Title []RichText `json:"title,omitempty"`
}

// User is a Notion user; the token check retrieves the integration's bot
// user.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// APIError is a non-transient Notion API failure.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case 401, 403:
		return fmt.Sprintf("notion: %d %s: %s (check the API key and the integration's permissions)", e.StatusCode, e.Code, e.Message)
	case 404:
		return fmt.Sprintf("notion: %d %s: %s (check the ID and share the resource with the integration)", e.StatusCode, e.Code, e.Message)
	default:
		return fmt.Sprintf("notion: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
}

// Package testutil provides testing utilities for the morrow project.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it, and registers cleanup to restore the original working directory.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return tmpDir
}

// NotionServer is a scripted stand-in for the Notion API.
// Script query results and failure statuses before the run, then inspect
// what the client created. Failure statuses should be 4xx (except 429) so
// the client does not retry them.
type NotionServer struct {
	URL string

	TasksDatabaseID string
	JobsDatabaseID  string

	TaskPages []map[string]any // query results for the tasks database
	JobPages  []map[string]any // query results for the jobs database

	PageStatus     int   // non-zero fails page creation with this status
	RecordStatuses []int // consumed per record creation, zero means success

	mu             sync.Mutex
	recordCalls    int
	createdPages   []map[string]any
	createdRecords []map[string]any
}

// NewNotionServer starts a fake Notion API for the given database IDs and
// registers cleanup to shut it down. Unknown database IDs return 404 the
// way the real API reports objects the integration cannot see.
func NewNotionServer(t *testing.T, tasksDatabaseID, jobsDatabaseID string) *NotionServer {
	t.Helper()

	ns := &NotionServer{
		TasksDatabaseID: tasksDatabaseID,
		JobsDatabaseID:  jobsDatabaseID,
	}
	server := httptest.NewServer(http.HandlerFunc(ns.handle))
	t.Cleanup(server.Close)
	ns.URL = server.URL
	return ns
}

func (ns *NotionServer) handle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case r.Method == http.MethodGet && path == "users/me":
		writeBody(w, map[string]any{"object": "user", "id": "bot-1", "name": "Morrow", "type": "bot"})

	case r.Method == http.MethodGet && len(parts) == 2 && parts[0] == "databases":
		ns.handleRetrieveDatabase(w, parts[1])

	case r.Method == http.MethodPost && len(parts) == 3 && parts[0] == "databases" && parts[2] == "query":
		ns.handleQuery(w, parts[1])

	case r.Method == http.MethodPost && path == "pages":
		ns.handleCreate(w, r)

	default:
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find object")
	}
}

func (ns *NotionServer) handleRetrieveDatabase(w http.ResponseWriter, id string) {
	if id != ns.TasksDatabaseID && id != ns.JobsDatabaseID {
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find database with ID: "+id)
		return
	}
	writeBody(w, map[string]any{
		"object": "database",
		"id":     id,
		"title":  []map[string]any{{"type": "text", "plain_text": "Test database"}},
	})
}

func (ns *NotionServer) handleQuery(w http.ResponseWriter, id string) {
	var results []map[string]any
	switch id {
	case ns.TasksDatabaseID:
		results = ns.TaskPages
	case ns.JobsDatabaseID:
		results = ns.JobPages
	default:
		writeAPIError(w, http.StatusNotFound, "object_not_found", "Could not find database with ID: "+id)
		return
	}
	if results == nil {
		results = []map[string]any{}
	}
	writeBody(w, map[string]any{"results": results, "has_more": false})
}

func (ns *NotionServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	parent, _ := body["parent"].(map[string]any)

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, isRecord := parent["database_id"]; isRecord {
		call := ns.recordCalls
		ns.recordCalls++
		if call < len(ns.RecordStatuses) && ns.RecordStatuses[call] != 0 {
			writeAPIError(w, ns.RecordStatuses[call], "validation_error", "Record rejected")
			return
		}
		ns.createdRecords = append(ns.createdRecords, body)
		writeBody(w, map[string]any{"object": "page", "id": "record-created"})
		return
	}

	if ns.PageStatus != 0 {
		writeAPIError(w, ns.PageStatus, "validation_error", "Page rejected")
		return
	}
	ns.createdPages = append(ns.createdPages, body)
	writeBody(w, map[string]any{
		"object": "page",
		"id":     "page-created",
		"url":    "https://notion.so/page-created",
	})
}

// CreatedPages returns the captured page creation requests.
func (ns *NotionServer) CreatedPages() []map[string]any {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return append([]map[string]any(nil), ns.createdPages...)
}

// CreatedRecords returns the captured record creation requests.
func (ns *NotionServer) CreatedRecords() []map[string]any {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return append([]map[string]any(nil), ns.createdRecords...)
}

func writeBody(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"object": "error", "code": code, "message": message})
}

// TaskPage builds a query result shaped like a task record. Empty optional
// fields are left off the page the way Notion omits unset properties.
func TaskPage(id, name, category, priority, date string) map[string]any {
	props := map[string]any{
		"Task": map[string]any{
			"type":  "title",
			"title": []map[string]any{{"type": "text", "text": map[string]any{"content": name}, "plain_text": name}},
		},
		"Status": map[string]any{"type": "checkbox", "checkbox": false},
	}
	if category != "" {
		props["Category"] = map[string]any{"type": "select", "select": map[string]any{"name": category}}
	}
	if priority != "" {
		props["Priority Level"] = map[string]any{"type": "select", "select": map[string]any{"name": priority}}
	}
	if date != "" {
		props["Next Reminder"] = map[string]any{"type": "date", "date": map[string]any{"start": date}}
	}
	return map[string]any{"object": "page", "id": id, "properties": props}
}

// JobPage builds a query result shaped like a job listing record.
func JobPage(id, name, priority, deadline, link string) map[string]any {
	props := map[string]any{
		"Name": map[string]any{
			"type":  "title",
			"title": []map[string]any{{"type": "text", "text": map[string]any{"content": name}, "plain_text": name}},
		},
	}
	if priority != "" {
		props["Priority"] = map[string]any{"type": "select", "select": map[string]any{"name": priority}}
	}
	if deadline != "" {
		props["Deadline"] = map[string]any{"type": "date", "date": map[string]any{"start": deadline}}
	}
	if link != "" {
		props["Application Link"] = map[string]any{"type": "url", "url": link}
	}
	return map[string]any{"object": "page", "id": id, "properties": props}
}

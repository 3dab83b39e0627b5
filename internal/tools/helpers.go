package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tuanngd/awxtool/internal/awx"
)

const (
	defaultPageSize = 100
	maxPageSize     = 200
	maxPage         = 999
)

// PageInput is the common pagination shape for list tools. Zero values mean
// "use defaults" (first page, page_size 100).
type PageInput struct {
	// Page is the page index to start from (1..999).
	Page int `json:"page,omitempty"`
	// PageSize is the number of items per page (1..200).
	PageSize int `json:"page_size,omitempty"`
}

func (p PageInput) query() (map[string]string, error) {
	page := p.Page
	if page == 0 {
		page = 1
	}
	if page < 1 || page > maxPage {
		return nil, awx.Validationf("page must be between 1 and %d", maxPage)
	}
	size := p.PageSize
	if size == 0 {
		size = defaultPageSize
	}
	if size < 1 || size > maxPageSize {
		return nil, awx.Validationf("page_size must be between 1 and %d", maxPageSize)
	}
	return map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(size),
	}, nil
}

func requireID(name string, v int) error {
	if v <= 0 {
		return awx.Validationf("%s must be a positive integer", name)
	}
	return nil
}

func requireString(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return awx.Validationf("%s is required", name)
	}
	return nil
}

// validJSONDoc validates that s is a JSON document. Empty strings pass; AWX
// accepts variables/extra_vars both as JSON strings and as omitted fields.
func validJSONDoc(name, s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var js json.RawMessage
	if err := json.Unmarshal([]byte(s), &js); err != nil {
		return awx.Validationf("%s must be valid JSON: %v", name, err)
	}
	return nil
}

// call performs one exchange and shapes the outcome: the parsed body on
// success, a success marker for empty bodies (e.g. 204 on DELETE), or a
// structured error derived from the status code.
func call(ctx context.Context, exec awx.Executor, spec awx.RequestSpec) (any, error) {
	res, err := exec.Do(ctx, spec)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, awx.FromStatus(res.StatusCode, res.Raw)
	}
	if res.Body == nil {
		return map[string]any{"status": "success"}, nil
	}
	return res.Body, nil
}

// listAll fetches every page of a list endpoint starting from the page in q.
func listAll(ctx context.Context, exec awx.Executor, tool, path string, q map[string]string) (any, error) {
	items, err := awx.FetchAll(ctx, exec, awx.RequestSpec{
		Method: "GET",
		Path:   path,
		Query:  q,
		Tool:   tool,
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func itemPath(collection string, id int) string {
	return fmt.Sprintf("/api/v2/%s/%d/", collection, id)
}

package managers

import (
	"context"
	"strings"

	"jupyterclient/model"
	"jupyterclient/transport"
)

// ContentsManager works with files, directories and notebooks through
// /api/contents.
type ContentsManager struct {
	transport *transport.Transport
}

func NewContentsManager(t *transport.Transport) *ContentsManager {
	return &ContentsManager{transport: t}
}

func contentPath(path string) string {
	return "/api/contents/" + strings.TrimLeft(path, "/")
}

// GetContent fetches the content record at path.
func (m *ContentsManager) GetContent(ctx context.Context, path string) (*model.Content, error) {
	var content model.Content
	if err := m.transport.GetJSON(ctx, contentPath(path), &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// ListDirectory returns the entries of the directory at path. The
// empty path lists the server root.
func (m *ContentsManager) ListDirectory(ctx context.Context, path string) ([]model.Content, error) {
	var dir struct {
		Content []model.Content `json:"content"`
	}
	if err := m.transport.GetJSON(ctx, contentPath(path), &dir); err != nil {
		return nil, err
	}
	return dir.Content, nil
}

// CreateNotebook creates an empty notebook at path.
func (m *ContentsManager) CreateNotebook(ctx context.Context, path string) (*model.Content, error) {
	body := map[string]string{"type": "notebook"}
	var content model.Content
	if err := m.transport.PutJSON(ctx, contentPath(path), body, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Delete removes the file or directory at path.
func (m *ContentsManager) Delete(ctx context.Context, path string) error {
	return m.transport.Delete(ctx, contentPath(path))
}

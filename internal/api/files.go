package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ExtractText uploads a file and returns the backend's text preview.
func (c *Client) ExtractText(ctx context.Context, filename string, file io.Reader) (*ExtractResult, error) {
	var out ExtractResult
	if err := c.postMultipart(ctx, "/api/files/extract-text", filename, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FullInterpret uploads a file for full analysis in the given language.
func (c *Client) FullInterpret(ctx context.Context, filename string, file io.Reader, language string) (*AnalysisDocument, error) {
	if language == "" {
		language = "ko"
	}
	var out struct {
		Document AnalysisDocument `json:"document"`
	}
	fields := map[string]string{"language": language}
	if err := c.postMultipart(ctx, "/api/files/full-interpret", filename, file, fields, &out); err != nil {
		return nil, err
	}
	return &out.Document, nil
}

// Ask sends a freeform legal question.
func (c *Client) Ask(ctx context.Context, question, language string) (*AskResult, error) {
	if language == "" {
		language = "ko"
	}
	in := map[string]string{"text": question, "language": language}
	var out AskResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/ask", in, &out); err != nil {
		return nil, err
	}
	if out.Question == "" {
		out.Question = question
	}
	return &out, nil
}

func (c *Client) postMultipart(ctx context.Context, path, filename string, file io.Reader, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying %s: %w", filename, err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("writing field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

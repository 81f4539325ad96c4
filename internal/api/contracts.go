package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Me returns the profile for the current credential.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.getJSON(ctx, "/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListContracts returns the saved documents of the current user.
func (c *Client) ListContracts(ctx context.Context) ([]ContractSummary, error) {
	var out []ContractSummary
	if err := c.getJSON(ctx, "/contracts/list", &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []ContractSummary{}
	}
	return out, nil
}

// GetContract returns the stored metadata of one document.
func (c *Client) GetContract(ctx context.Context, id string) (*ContractMeta, error) {
	var meta ContractMeta
	if err := c.getJSON(ctx, contractPath(id, ""), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// GetClauses returns the clause rows of one document.
func (c *Client) GetClauses(ctx context.Context, id string) ([]ClauseRow, error) {
	var out []ClauseRow
	if err := c.getJSON(ctx, contractPath(id, "/clauses"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTerms returns the glossary terms of one document.
func (c *Client) GetTerms(ctx context.Context, id string) ([]TermRow, error) {
	var out []TermRow
	if err := c.getJSON(ctx, contractPath(id, "/terms"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleFavorite flips the favorite flag server-side and returns the new value.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	var out struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, contractPath(id, "/favorite"), nil, &out); err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}

// DeleteContract removes a saved document.
func (c *Client) DeleteContract(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, contractPath(id, "/delete"), nil, nil)
}

func contractPath(id, suffix string) string {
	return fmt.Sprintf("/contracts/%s%s", url.PathEscape(id), suffix)
}

package api

import (
	"context"
	"fmt"
)

// Categories retrieves the dashboard's category overview.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	resp, err := c.doRequest(ctx, "GET", "/categories", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return out.Categories, nil
}

// Products retrieves the products within a category.
func (c *Client) Products(ctx context.Context, categoryID string) ([]Product, error) {
	resp, err := c.doRequest(ctx, "GET", fmt.Sprintf("/categories/%s/products", categoryID), nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Products []Product `json:"products"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return out.Products, nil
}

// History retrieves the stock movement log, newest first.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	resp, err := c.doRequest(ctx, "GET", "/history", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		History []HistoryEntry `json:"history"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return out.History, nil
}

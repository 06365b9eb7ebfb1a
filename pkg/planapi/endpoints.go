package planapi

import (
	"context"
	"net/http"
	"net/url"
)

// ListActionItems fetches all action items, optionally scoped to a list.
func (c *Client) ListActionItems(ctx context.Context, listID string, bustCache bool) ([]ActionItem, error) {
	query := url.Values{}
	if listID != "" {
		query.Set("listId", listID)
	}
	var items []ActionItem
	if err := c.get(ctx, "/api/action-items", query, bustCache, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateActionItem creates a new action item.
func (c *Client) CreateActionItem(ctx context.Context, req CreateActionItemRequest) (ActionItem, error) {
	var item ActionItem
	if err := c.send(ctx, http.MethodPost, "/api/action-items", req, &item); err != nil {
		return ActionItem{}, err
	}
	return item, nil
}

// UpdateActionItem patches an existing action item.
func (c *Client) UpdateActionItem(ctx context.Context, id string, req UpdateActionItemRequest) (ActionItem, error) {
	var item ActionItem
	if err := c.send(ctx, http.MethodPatch, "/api/action-items/"+id, req, &item); err != nil {
		return ActionItem{}, err
	}
	return item, nil
}

// DeleteActionItem removes an action item.
func (c *Client) DeleteActionItem(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/action-items/"+id, nil, nil)
}

// ListActionLists fetches every action list.
func (c *Client) ListActionLists(ctx context.Context, bustCache bool) ([]ActionList, error) {
	var lists []ActionList
	if err := c.get(ctx, "/api/action-item-lists", nil, bustCache, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetActionList fetches a single list by ID.
func (c *Client) GetActionList(ctx context.Context, id string) (ActionList, error) {
	var list ActionList
	if err := c.get(ctx, "/api/action-item-lists/"+id, nil, false, &list); err != nil {
		return ActionList{}, err
	}
	return list, nil
}

// GetBusinessPlan fetches a plan by ID.
func (c *Client) GetBusinessPlan(ctx context.Context, id string, bustCache bool) (BusinessPlan, error) {
	var plan BusinessPlan
	if err := c.get(ctx, "/api/business-plans/"+id, nil, bustCache, &plan); err != nil {
		return BusinessPlan{}, err
	}
	return plan, nil
}

// PutBusinessPlan replaces a plan document.
func (c *Client) PutBusinessPlan(ctx context.Context, plan BusinessPlan) (BusinessPlan, error) {
	var updated BusinessPlan
	if err := c.send(ctx, http.MethodPut, "/api/business-plans/"+plan.ID, plan, &updated); err != nil {
		return BusinessPlan{}, err
	}
	return updated, nil
}

// SaveSection saves one section of a plan. Last write wins upstream.
func (c *Client) SaveSection(ctx context.Context, planID string, req SaveSectionRequest) error {
	return c.send(ctx, http.MethodPut, "/api/business-plans/"+planID+"/section", req, nil)
}

// SuggestContent calls the AI suggestion endpoint.
func (c *Client) SuggestContent(ctx context.Context, req SuggestContentRequest) (SuggestContentResponse, error) {
	var resp SuggestContentResponse
	if err := c.send(ctx, http.MethodPost, "/api/ai/suggest-content", req, &resp); err != nil {
		return SuggestContentResponse{}, err
	}
	return resp, nil
}

// GetConversation fetches a persisted transcript.
func (c *Client) GetConversation(ctx context.Context, id string) (Conversation, error) {
	var conv Conversation
	if err := c.get(ctx, "/api/conversations/"+id, nil, false, &conv); err != nil {
		return Conversation{}, err
	}
	return conv, nil
}

// PutConversation persists a transcript.
func (c *Client) PutConversation(ctx context.Context, conv Conversation) error {
	return c.send(ctx, http.MethodPut, "/api/conversations/"+conv.ID, conv, nil)
}

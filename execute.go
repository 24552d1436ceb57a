package revrseai

import (
	"context"
	"net/url"
)

// Resolve looks up the endpoint descriptor addressed by sel.
//
// Resolution dispatches on the selector form: a direct endpoint lookup for
// [ByEndpointID], the owning task's endpoint list for [ByTask], and the
// app's endpoint list for [ByApp]. An invalid selector fails with
// [InvalidSelectorError] before any network I/O; a selector that matches
// nothing fails with [EndpointNotFoundError] carrying the selector.
//
// No caching: every call issues a fresh lookup, because the remote state can
// change between calls (generation still in progress, endpoints added).
// Resolution has no side effects and is safe to retry.
func (c *Client) Resolve(ctx context.Context, sel Selector) (*Endpoint, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}

	switch {
	case sel.EndpointID != "":
		var ep Endpoint
		if err := c.http.Get(ctx, "/api/endpoints/"+url.PathEscape(sel.EndpointID), nil, &ep); err != nil {
			return nil, notFoundFor(err, sel)
		}
		ep.client = c
		return &ep, nil

	case sel.TaskID != "":
		result, err := c.TaskResult(ctx, sel.TaskID)
		if err != nil {
			return nil, notFoundFor(err, sel)
		}
		return matchEndpoint(result, sel)

	default:
		result, err := c.info(ctx, sel)
		if err != nil {
			return nil, err
		}
		return matchEndpoint(result, sel)
	}
}

// matchEndpoint finds the endpoint named by the selector in a resolved
// endpoint list.
func matchEndpoint(result *GenerationResult, sel Selector) (*Endpoint, error) {
	if ep := result.Endpoint(sel.Endpoint); ep != nil {
		return ep, nil
	}
	return nil, &EndpointNotFoundError{Selector: sel}
}

// Execute invokes the endpoint addressed by sel with the given input data.
//
// The selector is validated locally, then exactly one remote invocation is
// issued; the service resolves the addressing mode, so execution is a single
// round trip regardless of selector form. The call is never retried:
// generated endpoints act against live app accounts, and repeating a
// possibly side-effecting action automatically would be unsafe.
//
// data may be nil. No local schema validation happens; input the endpoint
// rejects comes back as an [ExecutionResult] with [ExecutionError] status,
// which is a successful call, not a Go error.
func (c *Client) Execute(ctx context.Context, sel Selector, data map[string]any) (*ExecutionResult, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}

	var result ExecutionResult
	var err error
	switch {
	case sel.EndpointID != "":
		err = c.http.Post(ctx, "/execute/"+url.PathEscape(sel.EndpointID), data, &result)
	case sel.TaskID != "":
		err = c.http.Post(ctx, "/execute/"+url.PathEscape(sel.TaskID)+"/"+url.PathEscape(sel.Endpoint), data, &result)
	default:
		err = c.http.Post(ctx, "/execute", map[string]any{
			"app":      sel.App,
			"endpoint": sel.Endpoint,
			"data":     data,
		}, &result)
	}
	if err != nil {
		return nil, notFoundFor(err, sel)
	}

	c.logger.Debug("endpoint executed", "selector", sel.String(), "status", result.Status)
	return &result, nil
}

package lro

import "context"

// noopHandler represents synchronous completion: the initial response is
// already the final one. It is the selector's fallback (spec.md §4.5
// step 7).
type noopHandler struct {
	resp *Response
}

func newNoopHandler(initial *Response) *noopHandler { return &noopHandler{resp: initial} }

func (h *noopHandler) Last() *Response { return h.resp }

func (h *noopHandler) Done() bool { return true }

func (h *noopHandler) Poll(ctx context.Context) (*Response, error) { return h.resp, nil }

func (h *noopHandler) Result(ctx context.Context) (*Response, error) { return h.resp, nil }

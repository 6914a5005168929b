package execution

import (
	"reflect"
)

// WalkState is the pagination walker's state.
type WalkState string

const (
	WalkIdle     WalkState = "idle"
	WalkFetching WalkState = "fetching"
	WalkMore     WalkState = "more"
	WalkDone     WalkState = "done"
)

// PaginationState is threaded across the calls of one traversal. A nil Token
// means the first page.
type PaginationState struct {
	Token      *string
	MaxResults *int32
	State      WalkState
}

// NewPaginationState starts a traversal in the idle state.
func NewPaginationState(maxResults *int32) *PaginationState {
	return &PaginationState{MaxResults: maxResults, State: WalkIdle}
}

// Begin moves Idle (or More) to Fetching.
func (p *PaginationState) Begin() {
	p.State = WalkFetching
}

// Advance records the continuation token of the page just fetched. An absent
// or empty token ends the traversal.
func (p *PaginationState) Advance(next string) WalkState {
	if next == "" {
		p.Token = nil
		p.State = WalkDone
		return p.State
	}
	p.Token = &next
	p.State = WalkMore
	return p.State
}

// Stop ends the traversal without a token, e.g. after a failed page.
func (p *PaginationState) Stop() {
	p.Token = nil
	p.State = WalkDone
}

// Page is one step of a traversal.
type Page struct {
	Result InvocationResult
	// RequestToken is the token sent for this page; empty on the first page.
	RequestToken string
	// NextToken is the token the remote returned; empty on the last page.
	NextToken string
	Number    int
}

// ContinuationToken extracts the NextToken of a raw response. It understands
// generic maps and SDK output structs with a NextToken string or *string
// field. Anything else yields "".
func ContinuationToken(payload any) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case map[string]any:
		s, _ := p["NextToken"].(string)
		return s
	}

	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}

	f := v.FieldByName("NextToken")
	if !f.IsValid() {
		return ""
	}
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return ""
		}
		f = f.Elem()
	}
	if f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

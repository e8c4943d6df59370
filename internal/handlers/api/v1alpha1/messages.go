package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/entities/filter"
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/orchestrators/routing"
)

// Stack is the wire form of a stack
type Stack struct {
	ID       string            `json:"id"`
	MaxStack int               `json:"max_stack,omitempty"`
	Count    int               `json:"count"`
	Meta     map[string]string `json:"meta,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
}

// Filter is the wire form of a filter card
type Filter struct {
	Mode      string   `json:"mode,omitempty"`
	MatchMeta bool     `json:"match_meta,omitempty"`
	Stacks    []Stack  `json:"stacks,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Candidate is one stack offered to a container
type Candidate struct {
	Stack    Stack `json:"stack"`
	InFlight bool  `json:"in_flight,omitempty"`
}

// InsertRequest is shared by PlanInsert and CommitInsert
type InsertRequest struct {
	ContainerID string      `json:"container_id"`
	Candidates  []Candidate `json:"candidates"`
}

// CandidateResult reports the outcome for one candidate
type CandidateResult struct {
	Stack    Stack `json:"stack"`
	Accepted int   `json:"accepted"`
	Leftover int   `json:"leftover"`
}

// Placement is one simulated slot assignment
type Placement struct {
	Candidate int `json:"candidate"`
	Slot      int `json:"slot"`
	Count     int `json:"count"`
}

// PlanInsertResponse is returned by PlanInsert
type PlanInsertResponse struct {
	PlanID     string            `json:"plan_id"`
	Results    []CandidateResult `json:"results"`
	Placements []Placement       `json:"placements"`
}

// CommitInsertResponse is returned by CommitInsert
type CommitInsertResponse struct {
	PlanID    string            `json:"plan_id"`
	Planned   []CandidateResult `json:"planned"`
	Committed []CandidateResult `json:"committed"`
}

// CountRequest is shared by CountInventory and SnapshotCounts
type CountRequest struct {
	NodeID       string   `json:"node_id,omitempty"`
	ContainerIDs []string `json:"container_ids"`
	Filter       *Filter  `json:"filter,omitempty"`
}

// Bucket is one group of fungible units
type Bucket struct {
	Stack Stack `json:"stack"`
	Count int   `json:"count"`
}

// CountsResponse is returned by the counting methods
type CountsResponse struct {
	NodeID    string   `json:"node_id,omitempty"`
	Buckets   []Bucket `json:"buckets"`
	Total     int      `json:"total"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// NodeRequest addresses a node's persisted counts
type NodeRequest struct {
	NodeID string `json:"node_id"`
}

// StockRequest is shared by ReserveStock and ReleaseStock
type StockRequest struct {
	NodeID   string `json:"node_id"`
	Stack    Stack  `json:"stack"`
	Quantity int    `json:"quantity"`
}

// ReserveStockResponse is returned by ReserveStock
type ReserveStockResponse struct {
	Removed      Stack `json:"removed"`
	Insufficient bool  `json:"insufficient"`
	Total        int   `json:"total"`
}

// ReleaseStockResponse is returned by ReleaseStock
type ReleaseStockResponse struct {
	Total int `json:"total"`
}

// ExtractStockRequest is the request for ExtractStock. Either a stack or a
// filter selects what is pulled.
type ExtractStockRequest struct {
	ContainerID string  `json:"container_id"`
	NodeID      string  `json:"node_id,omitempty"`
	Stack       *Stack  `json:"stack,omitempty"`
	Filter      *Filter `json:"filter,omitempty"`
	Simulate    bool    `json:"simulate,omitempty"`
}

// ExtractStockResponse is returned by ExtractStock
type ExtractStockResponse struct {
	Extracted    Stack `json:"extracted"`
	Insufficient bool  `json:"insufficient"`
	NodeUpdated  bool  `json:"node_updated"`
	NodeTotal    int   `json:"node_total,omitempty"`
}

// LearnFilterRequest is the request for LearnFilter
type LearnFilterRequest struct {
	ContainerID string   `json:"container_id,omitempty"`
	Filter      Filter   `json:"filter"`
	Reset       bool     `json:"reset,omitempty"`
	AddTags     []string `json:"add_tags,omitempty"`
	RemoveTags  []string `json:"remove_tags,omitempty"`
}

// LearnFilterResponse is returned by LearnFilter
type LearnFilterResponse struct {
	Filter Filter `json:"filter"`
	Added  int    `json:"added"`
}

// Decode converts a Struct into a request value
func Decode(in *structpb.Struct, out any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// Encode converts a response value into a Struct
func Encode(in any) (*structpb.Struct, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// ToStack converts the wire form, defaulting the natural stack limit
func (s Stack) ToStack() items.Stack {
	maxStack := s.MaxStack
	if maxStack == 0 {
		maxStack = items.DefaultMaxStackSize
	}
	var meta items.Metadata
	if len(s.Meta) > 0 {
		meta = items.Metadata(s.Meta)
	}
	return items.Stack{
		Kind:  items.Kind{ID: s.ID, MaxStackSize: maxStack, Tags: items.NormalizeTags(s.Tags)},
		Meta:  meta,
		Count: s.Count,
	}
}

// FromStack converts a stack to its wire form
func FromStack(st items.Stack) Stack {
	if st.Kind.ID == "" {
		return Stack{}
	}
	return Stack{
		ID:       st.Kind.ID,
		MaxStack: st.Kind.MaxStack(),
		Count:    max(st.Count, 0),
		Meta:     st.Meta,
		Tags:     st.Kind.Tags,
	}
}

// ToCard converts the wire form of a filter
func (f *Filter) ToCard() *filter.Card {
	if f == nil {
		return nil
	}
	card := &filter.Card{Mode: filter.Mode(f.Mode), MatchMeta: f.MatchMeta}
	for _, st := range f.Stacks {
		card.Stacks = append(card.Stacks, st.ToStack())
	}
	for _, tag := range f.Tags {
		card.AddTag(tag)
	}
	return card
}

// FromCard converts a filter card to its wire form
func FromCard(card *filter.Card) Filter {
	if card == nil {
		return Filter{}
	}
	out := Filter{Mode: string(card.Mode), MatchMeta: card.MatchMeta, Tags: card.Tags}
	for _, st := range card.Stacks {
		out.Stacks = append(out.Stacks, FromStack(st))
	}
	return out
}

func toCandidates(in []Candidate) []routing.Candidate {
	out := make([]routing.Candidate, len(in))
	for i, c := range in {
		out[i] = routing.Candidate{Stack: c.Stack.ToStack(), InFlight: c.InFlight}
	}
	return out
}

func fromResults(in []routing.CandidateResult) []CandidateResult {
	out := make([]CandidateResult, len(in))
	for i, r := range in {
		out[i] = CandidateResult{Stack: FromStack(r.Stack), Accepted: r.Accepted, Leftover: r.Leftover}
	}
	return out
}

func fromPlacements(in []routing.Placement) []Placement {
	out := make([]Placement, len(in))
	for i, p := range in {
		out[i] = Placement(p)
	}
	return out
}

func fromBuckets(in []counts.Bucket) []Bucket {
	out := make([]Bucket, len(in))
	for i, b := range in {
		out[i] = Bucket{Stack: FromStack(b.Sample.WithCount(1)), Count: b.Count}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

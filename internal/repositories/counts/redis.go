package counts

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/logistics-api/internal/redis"
)

const (
	// Key pattern: counts:node:{node_id}
	snapshotKeyPrefix = "counts:node:"
	// Set of node ids with a snapshot
	nodeIndexKey = "counts:nodes"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis-backed snapshot repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get loads the snapshot for a node
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument(errNodeIDEmpty)
	}

	data, err := r.client.Get(ctx, SnapshotKey(input.NodeID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("counts for node %s not found", input.NodeID)
		}
		return nil, errors.Wrapf(err, "failed to get counts for node %s", input.NodeID)
	}

	snapshot, err := DecodeSnapshot([]byte(data))
	if err != nil {
		return nil, errors.Wrapf(err, "stored counts for node %s are unreadable", input.NodeID)
	}

	return &GetOutput{Snapshot: snapshot}, nil
}

// Save stores the records for a node and adds it to the node index
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument(errNodeIDEmpty)
	}
	if err := validateRecords(input.Records); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		NodeID:    input.NodeID,
		Records:   slices.Clone(input.Records),
		Total:     total(input.Records),
		UpdatedAt: r.clock.Now(),
	}
	if snapshot.Records == nil {
		snapshot.Records = []counts.Record{}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal counts")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, SnapshotKey(input.NodeID), data, 0)
	pipe.SAdd(ctx, nodeIndexKey, input.NodeID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store counts for node %s", input.NodeID)
	}

	return &SaveOutput{Snapshot: snapshot}, nil
}

// Delete removes a node's snapshot and index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument(errNodeIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, SnapshotKey(input.NodeID))
	pipe.SRem(ctx, nodeIndexKey, input.NodeID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete counts for node %s", input.NodeID)
	}

	return &DeleteOutput{}, nil
}

// List returns the indexed node ids
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, nodeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nodes")
	}
	slices.Sort(ids)

	return &ListOutput{NodeIDs: ids}, nil
}

// SnapshotKey returns the Redis key holding a node's snapshot
func SnapshotKey(nodeID string) string {
	return fmt.Sprintf("%s%s", snapshotKeyPrefix, nodeID)
}

// DecodeSnapshot parses a stored snapshot and checks it is internally
// consistent. Corruption is reported as DATA_LOSS.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal counts")
	}
	if snapshot.NodeID == "" {
		return nil, errors.DataLossf("snapshot is missing its node id")
	}
	if err := validateRecords(snapshot.Records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "snapshot holds invalid records")
	}
	if got := total(snapshot.Records); got != snapshot.Total {
		return nil, errors.DataLossf("snapshot total %d does not match records sum %d", snapshot.Total, got).
			WithMeta("node_id", snapshot.NodeID)
	}
	return &snapshot, nil
}

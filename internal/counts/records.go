package counts

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/errors"
)

// Record is the persisted form of one bucket
type Record struct {
	Identity []byte `json:"identity"`
	Count    int    `json:"count"`
}

// Serialize flattens the buckets into records in bucket order
func (c *Counter) Serialize() ([]Record, error) {
	out := make([]Record, 0, c.Len())
	for _, b := range c.Buckets() {
		blob, err := items.EncodeIdentity(b.Sample)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to serialize bucket for %s", b.Sample.Kind.ID)
		}
		out = append(out, Record{Identity: blob, Count: b.Count})
	}
	return out, nil
}

// FromRecords rehydrates a counter. A negative count or an identity that does
// not decode rejects the whole list. Zero-count records are skipped.
func FromRecords(records []Record) (*Counter, error) {
	c := New()
	for i, rec := range records {
		if rec.Count < 0 {
			return nil, errors.InvalidArgumentf("record %d has negative count %d", i, rec.Count).
				WithMeta("record_index", i)
		}

		sample, err := items.DecodeIdentity(rec.Identity)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed count record").
				WithMeta("record_index", i)
		}
		if rec.Count == 0 {
			continue
		}
		c.Add(sample.WithCount(1), rec.Count)
	}
	return c, nil
}

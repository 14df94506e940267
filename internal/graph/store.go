package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/rohankatakam/memoria-retrieve/internal/metrics"
)

// FetchSeed resolves a single node by its id property. Found is false (with
// a nil Node and no error) when the id does not exist in the graph — that
// is a normal outcome for a stale hybrid-search hit, not a failure.
func (c *Client) FetchSeed(ctx context.Context, nodeID string) (SeedFetchResult, error) {
	cfg := GetConfigForOperation("fetch_seed")
	defer observeQueryDuration("fetch_seed", time.Now())

	raw, err := c.ExecuteRead(ctx, cfg, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, seedQuery, map[string]any{"node_id": nodeID})
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return SeedFetchResult{Found: false}, nil
		}
		return decodeSeedRecord(nodeID, records[0])
	})
	if err != nil {
		return SeedFetchResult{}, fmt.Errorf("fetch seed %s: %w", nodeID, err)
	}
	return raw.(SeedFetchResult), nil
}

func decodeSeedRecord(nodeID string, record *neo4j.Record) (SeedFetchResult, error) {
	props, err := getProps(record, "data")
	if err != nil {
		return SeedFetchResult{}, err
	}
	labels, _ := getStringSlice(record, "labels")

	node := &Node{ID: nodeID, Labels: labels, Properties: props}
	return SeedFetchResult{Node: node, Labels: labels, Found: true}, nil
}

// ExpandFrontier advances every node on the frontier by one hop, returning
// scored candidates already filtered to transfer_energy > minThreshold and
// ordered by (parent_id, transfer_energy DESC).
func (c *Client) ExpandFrontier(
	ctx context.Context,
	frontier []FrontierInput,
	visitedIDs []string,
	queryTags []string,
	tagSimFloor float64,
	minThreshold float64,
) ([]ExpansionCandidate, error) {
	cfg := GetConfigForOperation("expand_frontier")
	defer observeQueryDuration("expand_frontier", time.Now())

	frontierParam := make([]map[string]any, 0, len(frontier))
	for _, f := range frontier {
		frontierParam = append(frontierParam, map[string]any{
			"node_id":    f.NodeID,
			"activation": f.Activation,
		})
	}

	params := map[string]any{
		"frontier":         frontierParam,
		"visited_ids":      visitedIDs,
		"query_tags":       queryTags,
		"query_tags_count": len(queryTags),
		"tag_sim_floor":    tagSimFloor,
		"min_threshold":    minThreshold,
	}

	raw, err := c.ExecuteRead(ctx, cfg, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, expandQuery, params)
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		candidates := make([]ExpansionCandidate, 0, len(records))
		for _, record := range records {
			candidate, err := decodeExpansionRecord(record)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, candidate)
		}
		return candidates, nil
	})
	if err != nil {
		return nil, fmt.Errorf("expand frontier: %w", err)
	}
	candidates := raw.([]ExpansionCandidate)
	metrics.FrontierCandidates.Observe(float64(len(candidates)))
	return candidates, nil
}

func observeQueryDuration(operation string, start time.Time) {
	metrics.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func decodeExpansionRecord(record *neo4j.Record) (ExpansionCandidate, error) {
	parentID, _, err := getString(record, "parent_id")
	if err != nil {
		return ExpansionCandidate{}, err
	}
	neighborID, _, err := getString(record, "neighbor_id")
	if err != nil {
		return ExpansionCandidate{}, err
	}
	neighborProps, err := getProps(record, "neighbor_data")
	if err != nil {
		return ExpansionCandidate{}, err
	}
	neighborLabels, _ := getStringSlice(record, "neighbor_labels")

	edgeProps, err := getProps(record, "edge_data")
	if err != nil {
		return ExpansionCandidate{}, err
	}
	edgeID, _, _ := getString(record, "edge_id")
	edgeType, _, _ := getString(record, "edge_type")
	edgeSourceID, _, _ := getString(record, "edge_source_id")
	edgeTargetID, _, _ := getString(record, "edge_target_id")

	var weight *float64
	if w, ok := edgeProps["weight"]; ok {
		if wf, ok := toFloat64(w); ok {
			weight = &wf
		}
	}
	var tags []string
	if rawTags, ok := edgeProps["tags"]; ok {
		tags = toStringSlice(rawTags)
	}

	transferEnergy, ok := record.Get("transfer_energy")
	if !ok {
		return ExpansionCandidate{}, fmt.Errorf("expansion record missing transfer_energy")
	}
	tf, ok := toFloat64(transferEnergy)
	if !ok {
		return ExpansionCandidate{}, fmt.Errorf("transfer_energy is not numeric: %v", transferEnergy)
	}

	return ExpansionCandidate{
		ParentID: parentID,
		NeighborNode: &Node{
			ID:         neighborID,
			Labels:     neighborLabels,
			Properties: neighborProps,
		},
		Edge: &Edge{
			ID:         edgeID,
			Type:       edgeType,
			SourceID:   edgeSourceID,
			TargetID:   edgeTargetID,
			Weight:     weight,
			Tags:       tags,
			Properties: edgeProps,
		},
		TransferEnergy: tf,
	}, nil
}

// --- record decoding helpers ---

func getProps(record *neo4j.Record, key string) (map[string]any, error) {
	raw, ok := record.Get(key)
	if !ok {
		return nil, fmt.Errorf("record missing key %q", key)
	}
	props, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record key %q is not a property map: %T", key, raw)
	}
	return props, nil
}

func getString(record *neo4j.Record, key string) (string, bool, error) {
	raw, ok := record.Get(key)
	if !ok {
		return "", false, fmt.Errorf("record missing key %q", key)
	}
	s, ok := raw.(string)
	return s, ok, nil
}

func getStringSlice(record *neo4j.Record, key string) ([]string, error) {
	raw, ok := record.Get(key)
	if !ok {
		return nil, fmt.Errorf("record missing key %q", key)
	}
	return toStringSlice(raw), nil
}

func toStringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

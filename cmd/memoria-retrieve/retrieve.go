package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohankatakam/memoria-retrieve/internal/graph"
	"github.com/rohankatakam/memoria-retrieve/internal/projection"
	"github.com/rohankatakam/memoria-retrieve/internal/retrieval"
	"github.com/rohankatakam/memoria-retrieve/internal/vectorstore"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Run a hybrid seed search plus BFS exploration and print LLM context",
	Long: `retrieve embeds --query, runs hybrid dense+sparse search against
Qdrant to pick seeds, explores each seed concurrently through the Neo4j
memory graph, and prints the LLM-context projection of every result
(or, with --json, the D3 force-graph projection).`,
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().String("query", "", "natural-language query to retrieve for (required)")
	retrieveCmd.Flags().StringSlice("tags", nil, "query tags used for tag-similarity scoring during expansion")
	retrieveCmd.Flags().Int("limit", 5, "number of seeds to retrieve from hybrid search")
	retrieveCmd.Flags().Bool("json", false, "print the D3 force-graph projection as JSON instead of LLM context")
	retrieveCmd.MarkFlagRequired("query")
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := rootLogger()

	query, _ := cmd.Flags().GetString("query")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	poolSize := cfg.Graph.PoolSize
	if poolSize <= 0 {
		poolSize = graph.RecommendedPoolSize(limit)
	}
	graphClient, err := graph.NewClient(ctx, cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password,
		graph.WithDatabase(cfg.Graph.Database),
		graph.WithMaxPoolSize(poolSize),
	)
	if err != nil {
		return fmt.Errorf("connect to graph: %w", err)
	}
	defer graphClient.Close(ctx)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go graphClient.WatchPoolHealth(watchCtx, 30*time.Second)

	vecStore, err := vectorstore.NewStore(ctx, vectorstore.Config{
		DSN:            cfg.Vector.DSN,
		Collection:     cfg.Vector.Collection,
		DenseDimension: cfg.Vector.DenseDimension,
		Metric:         cfg.Vector.Metric,
	})
	if err != nil {
		return fmt.Errorf("connect to vector store: %w", err)
	}
	defer vecStore.Close()

	embedder, err := vectorstore.NewOpenAIEmbedder(cfg.OpenAI.APIKey)
	if err != nil {
		return fmt.Errorf("init embedder: %w", err)
	}

	seedRetriever, err := retrieval.NewSeedRetriever(vecStore, embedder, cfg.Retrieval.DenseWeight, cfg.Retrieval.SparseWeight)
	if err != nil {
		return fmt.Errorf("init seed retriever: %w", err)
	}

	seeds, err := seedRetriever.Seeds(ctx, query, limit)
	if err != nil {
		return fmt.Errorf("retrieve seeds: %w", err)
	}
	if len(seeds) == 0 {
		return retrieval.ErrEmptySeeds()
	}
	log.Info("retrieved seeds", "count", len(seeds), "query", query)

	traversalCfg, err := retrieval.NewConfig(
		retrieval.WithMaxDepth(cfg.Retrieval.MaxDepth),
		retrieval.WithMaxBranches(cfg.Retrieval.MaxBranches),
		retrieval.WithMinActivation(cfg.Retrieval.MinActivation),
		retrieval.WithTagSimFloor(cfg.Retrieval.TagSimFloor),
		retrieval.WithMaxRetries(cfg.Retrieval.MaxRetries),
	)
	if err != nil {
		return fmt.Errorf("build retrieval config: %w", err)
	}

	outcomes := retrieval.Explore(ctx, graphClient, seeds, tags, traversalCfg, log)

	count := 0
	for outcome := range outcomes {
		count++
		if outcome.Err != nil {
			log.Warn("exploration failed", "error", outcome.Err)
			continue
		}
		if asJSON {
			printD3(outcome.Result)
		} else {
			printLLMContext(outcome.Result)
		}
	}
	log.Info("exploration complete", "seeds_explored", count)
	return nil
}

func printLLMContext(result retrieval.Result) {
	ctx := projection.ToLLMContext(result)
	fmt.Printf("=== seed %s ===\n", result.SeedID)
	fmt.Println(strings.Join(ctx.Paths, "\n"))
}

func printD3(result retrieval.Result) {
	d3 := projection.ToD3(result)
	data, err := json.MarshalIndent(d3, "", "  ")
	if err != nil {
		fmt.Printf("failed to marshal d3 graph for seed %s: %v\n", result.SeedID, err)
		return
	}
	fmt.Println(string(data))
}

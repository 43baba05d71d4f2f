package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/k0kubun/pp/v3"

	"dotdigest/internal/digest"
)

// Runs the full analysis over a saved batch JSON file and pretty-prints
// the resulting report. Handy for poking at scoring changes without
// hitting the forum.
func main() {
	path := "batch.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read batch file: %v", err)
	}

	var batch digest.Batch
	if err := json.Unmarshal(raw, &batch); err != nil {
		log.Fatalf("decode batch: %v", err)
	}

	rep := digest.Analyze(batch, "https://forum.polkadot.network", time.Now())

	pp.Print(rep.Metrics)
	pp.Print(rep.TopTopics)
	pp.Print(rep.InfluentialUsers)
	pp.Print(rep.RiskyProposals)
	pp.Print(rep.Correlations)
}

// Command textflow-batch runs a text-analysis pipeline over a JSONL
// corpus and writes one JSON result object per document.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/cognicore/textflow/internal/corpus"
	"github.com/cognicore/textflow/pkg/textflow"
	"github.com/cognicore/textflow/pkg/textflow/config"
	"github.com/cognicore/textflow/pkg/textflow/doc"
	"github.com/cognicore/textflow/pkg/textflow/pipeline"
	"github.com/cognicore/textflow/pkg/textflow/resource/sqlitestore"
)

type record struct {
	ID     string           `json:"id,omitempty"`
	Title  string           `json:"title,omitempty"`
	Result *pipeline.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func main() {
	var (
		input      = flag.String("input", "", "JSONL corpus file (required)")
		output     = flag.String("output", "", "Output JSONL file (default: stdout)")
		configPath = flag.String("config", "", "Pipeline definition YAML (mutually exclusive with --steps)")
		steps      = flag.String("steps", "", "Comma-separated operation names, e.g. CleanText,NWords")
		hintLang   = flag.String("hint-language", "", "Hint language for detection (default en)")
		vectors    = flag.String("vectors", "", "Optional: SQLite word-vector store for Embedding")
		model      = flag.String("model", "", "Optional: embedding model name")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *configPath == "" && *steps == "" {
		log.Fatal("--config or --steps required")
	}
	if *configPath != "" && *steps != "" {
		log.Fatal("--config and --steps are mutually exclusive")
	}

	ctx := context.Background()

	opts := textflow.Options{
		HintLanguage:   *hintLang,
		EmbeddingModel: *model,
	}
	if *vectors != "" {
		store, err := sqlitestore.Open(ctx, *vectors)
		if err != nil {
			log.Fatalf("open vector store: %v", err)
		}
		defer store.Close()
		opts.Vectors = store
	}

	var stepList []pipeline.Step
	if *configPath != "" {
		f, err := config.LoadPipeline(*configPath)
		if err != nil {
			log.Fatalf("load pipeline: %v", err)
		}
		stepList = f.ToSteps()
		opts.Language = f.Language
		if opts.HintLanguage == "" {
			opts.HintLanguage = f.HintLanguage
		}
	} else {
		for _, name := range strings.Split(*steps, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				stepList = append(stepList, pipeline.Step{Op: name})
			}
		}
	}

	docs, err := corpus.LoadJSONL(*input)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	pipe := textflow.New(stepList, opts)
	enc := json.NewEncoder(w)
	failed := 0
	for _, d := range docs {
		rec := record{ID: d.ID, Title: d.Title}

		var docOpts []doc.Option
		if d.Language != "" {
			docOpts = append(docOpts, doc.WithLanguage(d.Language))
		} else if opts.Language != "" {
			docOpts = append(docOpts, doc.WithLanguage(opts.Language))
		} else if opts.HintLanguage != "" {
			docOpts = append(docOpts, doc.WithHintLanguage(opts.HintLanguage))
		}
		if d.ID != "" {
			docOpts = append(docOpts, doc.WithID(d.ID))
		}

		result, err := pipe.RunDoc(ctx, doc.New(d.Text, docOpts...))
		if err != nil {
			rec.Error = err.Error()
			failed++
		} else {
			rec.Result = result
		}
		if err := enc.Encode(rec); err != nil {
			log.Fatalf("encode record: %v", err)
		}
	}

	if failed > 0 {
		log.Printf("%d of %d documents failed", failed, len(docs))
	}
}

// Command textflow-analyze runs a text-analysis pipeline over a file or
// stdin and prints the ordered result mapping as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/textflow/pkg/textflow"
	"github.com/cognicore/textflow/pkg/textflow/config"
	"github.com/cognicore/textflow/pkg/textflow/pipeline"
	"github.com/cognicore/textflow/pkg/textflow/resource/sqlitestore"
	"github.com/cognicore/textflow/pkg/textflow/sentiment"
)

func main() {
	var (
		configPath = flag.String("config", "", "Pipeline definition YAML (mutually exclusive with --steps)")
		steps      = flag.String("steps", "", "Comma-separated operation names, e.g. CleanText,NWords")
		input      = flag.String("input", "", "Input text file (default: stdin)")
		lang       = flag.String("language", "", "Fix the document language instead of detecting")
		hintLang   = flag.String("hint-language", "", "Hint language for detection (default en)")
		vectors    = flag.String("vectors", "", "Optional: SQLite word-vector store for Embedding")
		model      = flag.String("model", "", "Optional: embedding model name")
		lexicon    = flag.String("lexicon", "", "Optional: extra sentiment lexicon YAML")
		pretty     = flag.Bool("pretty", false, "Indent the JSON output")
	)
	flag.Parse()

	if *configPath == "" && *steps == "" {
		log.Fatal("--config or --steps required")
	}
	if *configPath != "" && *steps != "" {
		log.Fatal("--config and --steps are mutually exclusive")
	}

	ctx := context.Background()

	opts := textflow.Options{
		Language:       *lang,
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

	if *lexicon != "" {
		lexLang, lex, err := config.LoadLexicon(*lexicon)
		if err != nil {
			log.Fatalf("load lexicon: %v", err)
		}
		analyzer := sentiment.NewAnalyzer()
		analyzer.AddLexicon(lexLang, lex)
		opts.Sentiment = analyzer
	}

	var stepList []pipeline.Step
	if *configPath != "" {
		f, err := config.LoadPipeline(*configPath)
		if err != nil {
			log.Fatalf("load pipeline: %v", err)
		}
		stepList = f.ToSteps()
		if opts.Language == "" {
			opts.Language = f.Language
		}
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

	text, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	pipe := textflow.New(stepList, opts)
	result, err := pipe.Run(ctx, text)
	if err != nil {
		log.Fatalf("run pipeline: %v", err)
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jpdeinflect/analyze"
	"jpdeinflect/deinflect"
	"jpdeinflect/ingest"
	"jpdeinflect/logger"
	"jpdeinflect/lookup"
	"jpdeinflect/model"
	"jpdeinflect/ruleset"
	"jpdeinflect/tokenize"
)

// --- Global Command Variables ---
var (
	rulesPath   string
	dictName    string
	lexiconName string // "", "kagome" or a YAML word list
	logDir      string
	maxLen      int

	rootCmd = &cobra.Command{
		Use:   "jpdeinflect",
		Short: "Recover dictionary forms of inflected Japanese words",
		Long: `jpdeinflect lists the possible dictionary forms of inflected Japanese words,
together with the inflections that lead back to them. Candidates can be
confirmed against a kagome dictionary or a YAML word list.`,
		SilenceUsage: true,
	}

	wordCmd = &cobra.Command{
		Use:   "word [word...]",
		Short: "Deinflect each word and print its candidate forest",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWord,
	}
	textCmd = &cobra.Command{
		Use:   "text [text]",
		Short: "Deinflect every prefix of a text, longest first",
		Args:  cobra.ExactArgs(1),
		RunE:  runText,
	}
	scanCmd = &cobra.Command{
		Use:   "scan [text]",
		Short: "Find dictionary words in running text",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	analyzeCmd = &cobra.Command{
		Use:   "analyze [text]",
		Short: "Tokenize, annotate and scan each sentence of a text",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	rulesCmd = &cobra.Command{
		Use:   "rules",
		Short: "Print the active rule table as YAML",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rulesPath, "rules", "", "YAML rule table to use instead of the built-in one")
	pf.StringVar(&dictName, "dict", tokenize.DefaultDict, "kagome dictionary: ipa or uni")
	pf.StringVar(&lexiconName, "lexicon", "", `confirm candidates with "kagome" or a YAML word list`)
	pf.StringVar(&logDir, "log-dir", "", "also write JSON results to this directory")
	scanCmd.Flags().IntVar(&maxLen, "max-len", analyze.DefaultMaxLen, "longest word to try, in runes")

	rootCmd.AddCommand(wordCmd, textCmd, scanCmd, analyzeCmd, rulesCmd)
}

// loadIndex returns the built-in index, or one built from --rules.
func loadIndex() (*deinflect.Index, []deinflect.RuleGroup, error) {
	if rulesPath == "" {
		return deinflect.DefaultIndex(), deinflect.Rules(), nil
	}
	groups, err := ruleset.LoadFile(rulesPath)
	if err != nil {
		return nil, nil, err
	}
	ix, err := deinflect.NewIndex(groups)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", rulesPath, err)
	}
	log.Printf("[RULES] loaded %d rules from %s", ix.Len(), rulesPath)
	return ix, groups, nil
}

// loadLexicon resolves --lexicon. fallback is used when the flag is empty.
func loadLexicon(fallback string) (lookup.Lexicon, error) {
	name := lexiconName
	if name == "" {
		name = fallback
	}
	switch name {
	case "":
		return nil, nil
	case "kagome":
		return lookup.KagomeDict(dictName)
	default:
		ws, err := lookup.LoadWordsFile(name)
		if err != nil {
			return nil, err
		}
		log.Printf("[LEXICON] loaded %d words from %s", len(ws), name)
		return ws, nil
	}
}

func initLogs() error {
	if logDir == "" {
		return nil
	}
	if err := logger.InitLogs(logDir); err != nil {
		return fmt.Errorf("init logs: %w", err)
	}
	return nil
}

func logJSON(name string, v any) {
	if logDir == "" {
		return
	}
	if err := logger.LogJSON(logDir, name, v); err != nil {
		log.Printf("[LOG] failed to write %s: %v", name, err)
	}
}

// writeJSON prints v the same way logJSON stores it.
func writeJSON(w io.Writer, v any) error {
	return logger.Encode(w, v)
}

// forests deinflects words in parallel. The index is read-only and shared.
func forests(ctx context.Context, ix *deinflect.Index, lex lookup.Lexicon, words []string) ([]model.Forest, error) {
	out := make([]model.Forest, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d := ix.Deinflect(ingest.Normalize(w))
			if lex != nil {
				out[i] = analyze.Confirmed(d, lex)
			} else {
				out[i] = analyze.Forest(d)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runWord(cmd *cobra.Command, args []string) error {
	ix, _, err := loadIndex()
	if err != nil {
		return err
	}
	lex, err := loadLexicon("")
	if err != nil {
		return err
	}
	if err := initLogs(); err != nil {
		return err
	}
	out, err := forests(cmd.Context(), ix, lex, args)
	if err != nil {
		return err
	}
	for i, f := range out {
		log.Printf("[WORD] %s: %d candidates", f.Word, len(f.Candidates))
		logJSON(fmt.Sprintf("word_%d", i), f)
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func runText(cmd *cobra.Command, args []string) error {
	ix, _, err := loadIndex()
	if err != nil {
		return err
	}
	lex, err := loadLexicon("")
	if err != nil {
		return err
	}
	if err := initLogs(); err != nil {
		return err
	}
	text := ingest.Normalize(args[0])
	var out []model.Forest
	for _, d := range ix.DeinflectText(text) {
		if lex != nil {
			out = append(out, analyze.Confirmed(d, lex))
		} else {
			out = append(out, analyze.Forest(d))
		}
	}
	log.Printf("[TEXT] %d prefixes", len(out))
	logJSON("text", out)
	return writeJSON(cmd.OutOrStdout(), out)
}

func runScan(cmd *cobra.Command, args []string) error {
	ix, _, err := loadIndex()
	if err != nil {
		return err
	}
	lex, err := loadLexicon("kagome")
	if err != nil {
		return err
	}
	if err := initLogs(); err != nil {
		return err
	}
	matches := analyze.Scan(ix, ingest.Normalize(args[0]), lex, maxLen)
	log.Printf("[SCAN] %d matches", len(matches))
	logJSON("scan", matches)
	return writeJSON(cmd.OutOrStdout(), matches)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ix, _, err := loadIndex()
	if err != nil {
		return err
	}
	lex, err := loadLexicon("kagome")
	if err != nil {
		return err
	}
	if err := initLogs(); err != nil {
		return err
	}
	sentences := ingest.SplitSentences(args[0])
	if len(sentences) == 0 {
		return ingest.ErrEmpty
	}

	out := make([]analyze.Analysis, len(sentences))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range sentences {
		g.Go(func() error {
			a, err := analyze.Analyze(ctx, ix, dictName, s, lex)
			if err != nil {
				return fmt.Errorf("sentence %s: %w", s.ID, err)
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, a := range out {
		log.Printf("[ANALYZE] %s: %d tokens, %d matches", a.SentenceID, a.TokenCount, len(a.Matches))
		logJSON(a.SentenceID+"_analysis", a)
	}
	return writeJSON(cmd.OutOrStdout(), out)
}

func runRules(cmd *cobra.Command, _ []string) error {
	_, groups, err := loadIndex()
	if err != nil {
		return err
	}
	return ruleset.Encode(cmd.OutOrStdout(), groups)
}

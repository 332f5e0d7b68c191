package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/talentsift/cv-distiller/internal/candidate"
	"github.com/talentsift/cv-distiller/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var queryCmd = &cobra.Command{
	Use:   "query <free-text>",
	Short: "Convert a free-text recruiter query into structured search criteria",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		query(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func query(text string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	parser, err := newExtractor(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the llm parser", zap.Error(err))
	}

	callCtx, cancel := context.WithTimeout(ctx, llmTimeout(config))
	defer cancel()

	criteria, err := parser.ParseQuery(callCtx, text)
	if err != nil {
		logger.Warn("query parsing failed, returning empty criteria", zap.Error(err))
		criteria = candidate.EmptyCriteria()
	}

	encoded, err := json.MarshalIndent(criteria, "", "  ")
	if err != nil {
		logger.Fatal("encoding the criteria", zap.Error(err))
	}

	fmt.Println(string(encoded))
}

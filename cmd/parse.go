package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/talentsift/cv-distiller/internal/ai"
	"github.com/talentsift/cv-distiller/internal/document"
	"github.com/talentsift/cv-distiller/internal/logger"
	"github.com/talentsift/cv-distiller/internal/pipeline"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptPrint   = "Print the record"
	PromptSave    = "Save the record to a file"
	PromptDiscard = "Discard"
)

var errExit = errors.New("exit requested")

var recordPrompt = promptui.Select{
	Label: "What to do with the record?",
	Items: []string{PromptPrint, PromptSave, PromptDiscard},
}

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Distill a resume file into a structured candidate record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("format", "f", "", "document format (pdf or docx), detected from the file name when unset")
	parseCmd.Flags().StringP("output", "o", "", "file to write the record JSON to")
	parseCmd.Flags().BoolP("auto-approve", "y", false, "print the record without asking what to do with it")
}

// parse is the main resume command for the cli.
func parse(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-distiller", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	mode := pipeline.ModeDeterministic
	if strings.TrimSpace(config.Mode) != "" {
		mode, err = pipeline.ParseMode(strings.TrimSpace(config.Mode))
		if err != nil {
			logger.Fatal("selecting pipeline mode", zap.Error(err))
		}
	}

	submission := uuid.NewString()
	runLogger := logger.With(submissionFields(submission)...)

	// The declared format is settled before the payload is read.
	formatArg := cmd.Flag("format").Value.String()
	if formatArg == "" {
		formatArg = path
	}

	format, err := document.DetectFormat(formatArg)
	if err != nil {
		runLogger.Fatal("detecting document format", zap.Error(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		runLogger.Fatal("reading resume file", zap.Error(err))
	}

	var extractor ai.ResumeExtractor
	if mode != pipeline.ModeDeterministic {
		llm, err := newExtractor(ctx, config, runLogger)
		if err != nil {
			if mode == pipeline.ModeLLM {
				runLogger.Fatal("building the llm extractor", zap.Error(err))
			}
			runLogger.Warn("continuing without the llm pass", zap.Error(err))
		} else {
			extractor = llm
		}
	}

	p := pipeline.New(pipeline.Config{
		Mode:      mode,
		Extractor: extractor,
		Timeout:   llmTimeout(config),
		Logger:    runLogger,
	})

	record, err := p.Run(ctx, document.Document{Data: data, Format: format})
	if err != nil {
		runLogger.Fatal("extraction failed", zap.Error(err))
	}

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		runLogger.Fatal("encoding the record", zap.Error(err))
	}

	output := cmd.Flag("output").Value.String()

	if cmd.Flag("auto-approve").Value.String() == "true" {
		fmt.Println(string(encoded))
		if output != "" {
			if err := saveRecord(encoded, output, runLogger); err != nil {
				runLogger.Fatal("exiting", zap.Error(err))
			}
		}
		return
	}

	for {
		_, action, err := recordPrompt.Run()
		if err != nil {
			runLogger.Fatal("exiting", zap.Error(err))
		}

		if err := handleRecordAction(action, encoded, output, submission, runLogger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			runLogger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleRecordAction(action string, record []byte, output, submission string, logger *zap.Logger) error {
	switch action {
	case PromptPrint:
		fmt.Println(string(record))
		return nil
	case PromptSave:
		if output == "" {
			output = fmt.Sprintf("%s-%s.json", app, submission)
		}
		return saveRecord(record, output, logger)
	case PromptDiscard:
		logger.Info("exiting", zap.String("reason", "record discarded"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func saveRecord(record []byte, filename string, logger *zap.Logger) error {
	if err := os.WriteFile(filename, append(record, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing record to file: %w", err)
	}

	logger.Info("record saved", zap.String("filename", filename))
	return nil
}

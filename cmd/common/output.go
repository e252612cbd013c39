// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/render"
	"fjacquet/proposal-search/internal/store"
	"fjacquet/proposal-search/internal/validation"
)

// EmitProposals prints the matching proposals and, when outputFile is set,
// also exports them as CSV.
func EmitProposals(w io.Writer, format, outputFile string, s *store.ProposalStore, proposals []models.Proposal, log logging.Logger) error {
	if err := render.New(w, format).Proposals(proposals); err != nil {
		return err
	}
	if outputFile == "" {
		return nil
	}
	if err := validation.IsValidExportPath(outputFile, s.InputFiles()...); err != nil {
		return err
	}
	if err := s.WriteProposalsToCSV(proposals, outputFile); err != nil {
		return fmt.Errorf("error exporting proposals: %w", err)
	}
	log.Info("Exported proposals",
		logging.F(logging.FieldOutput, outputFile),
		logging.F(logging.FieldCount, len(proposals)))
	return nil
}

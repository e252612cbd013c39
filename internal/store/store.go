// Package store locates and reads the proposal table and the category
// taxonomy from disk.
package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/models"
	"fjacquet/proposal-search/internal/searcherror"
	"fjacquet/proposal-search/internal/taxonomy"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source encodings understood by the store.
const (
	EncodingUTF8 = "utf-8"
	EncodingBig5 = "big5"
)

// RequiredColumns must all appear in the proposal table header.
var RequiredColumns = []string{
	string(models.FieldCategory),
	string(models.FieldWho),
	string(models.FieldResult),
	string(models.FieldFullName),
	string(models.FieldTimePlace),
	string(models.FieldCost),
	string(models.FieldContent),
}

// ProposalStore reads the data files.
type ProposalStore struct {
	ProposalsFile  string
	CategoriesFile string
	Delimiter      rune
	Encoding       string

	// paths actually opened, set by the Load methods
	resolvedProposals  string
	resolvedCategories string

	logger logging.Logger
}

// NewProposalStore creates a store for the given files. A zero delimiter
// means ',' and an empty encoding means UTF-8.
func NewProposalStore(proposalsFile, categoriesFile string, delimiter rune, enc string, logger logging.Logger) *ProposalStore {
	if delimiter == 0 {
		delimiter = ','
	}
	if enc == "" {
		enc = EncodingUTF8
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ProposalStore{
		ProposalsFile:  proposalsFile,
		CategoriesFile: categoriesFile,
		Delimiter:      delimiter,
		Encoding:       strings.ToLower(enc),
		logger:         logger,
	}
}

// FindDataFile looks for a data file in the standard locations: the path as
// given, ./config, ./data, then ~/.config/proposal-search.
func (s *ProposalStore) FindDataFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("data", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "proposal-search", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *ProposalStore) resolve(filename, kind string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("no %s file configured", kind)
	}
	path, err := s.FindDataFile(filename)
	if err != nil {
		s.logger.Warn("Data file not found",
			logging.F(logging.FieldFile, filename),
			logging.F(logging.FieldSource, kind))
		return "", fmt.Errorf("%s file %s: %w", kind, filename, err)
	}
	return path, nil
}

// InputFiles returns the configured data file names together with the paths
// they resolved to when loaded. Empty names are omitted.
func (s *ProposalStore) InputFiles() []string {
	var files []string
	for _, name := range []string{s.ProposalsFile, s.resolvedProposals, s.CategoriesFile, s.resolvedCategories} {
		if name != "" {
			files = append(files, name)
		}
	}
	return files
}

// LoadTaxonomy reads and flattens the category taxonomy file.
func (s *ProposalStore) LoadTaxonomy() (taxonomy.Mapping, error) {
	path, err := s.resolve(s.CategoriesFile, "categories")
	if err != nil {
		return taxonomy.Mapping{}, err
	}
	s.resolvedCategories = path

	data, err := os.ReadFile(path)
	if err != nil {
		return taxonomy.Mapping{}, fmt.Errorf("error reading categories file: %w", err)
	}

	mapping, err := taxonomy.Parse(path, data)
	if err != nil {
		s.logger.WithError(err).Error("Failed to parse categories file", logging.F(logging.FieldFile, path))
		return taxonomy.Mapping{}, err
	}

	s.logger.Debug("Loaded category taxonomy",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, mapping.Len()))
	return mapping, nil
}

// LoadProposals reads the proposal table file.
func (s *ProposalStore) LoadProposals() ([]models.Proposal, error) {
	path, err := s.resolve(s.ProposalsFile, "proposals")
	if err != nil {
		return nil, err
	}
	s.resolvedProposals = path

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening proposals file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return s.ReadProposals(path, file)
}

// ReadProposals decodes a proposal table from r. source names the input in
// log messages and errors. Records get their 1-based Row.
func (s *ProposalStore) ReadProposals(source string, r io.Reader) ([]models.Proposal, error) {
	s.logger.Info("Reading proposals",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldEncoding, s.Encoding),
		logging.F(logging.FieldDelimiter, string(s.Delimiter)))

	dec, err := decoderFor(s.Encoding)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, &searcherror.MalformedInputError{Source: source, Reason: "cannot decode " + s.Encoding + " text", Err: err}
	}

	if err := s.checkHeader(source, data); err != nil {
		return nil, err
	}

	var proposals []models.Proposal
	if err := gocsv.UnmarshalCSV(s.newReader(data), &proposals); err != nil {
		s.logger.WithError(err).Error("Failed to parse proposals file", logging.F(logging.FieldFile, source))
		return nil, &searcherror.MalformedInputError{Source: source, Reason: "cannot parse rows", Err: err}
	}
	if proposals == nil {
		proposals = []models.Proposal{}
	}
	for i := range proposals {
		proposals[i].Row = i + 1
	}

	s.logger.Info("Successfully read proposals", logging.F(logging.FieldCount, len(proposals)))
	return proposals, nil
}

func (s *ProposalStore) newReader(data []byte) *csv.Reader {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = s.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader
}

func (s *ProposalStore) checkHeader(source string, data []byte) error {
	header, err := s.newReader(data).Read()
	if err == io.EOF {
		return &searcherror.MalformedInputError{Source: source, Reason: "file is empty"}
	}
	if err != nil {
		return &searcherror.MalformedInputError{Source: source, Reason: "cannot read header", Err: err}
	}

	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[column] = true
	}
	var missing []string
	for _, column := range RequiredColumns {
		if !present[column] {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &searcherror.MalformedInputError{
			Source: source,
			Reason: "missing columns: " + strings.Join(missing, ", "),
		}
	}
	return nil
}

func decoderFor(name string) (transform.Transformer, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case EncodingBig5:
		return traditionalchinese.Big5.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}

// WriteProposalsToCSV writes proposals to a UTF-8 CSV file with the standard
// column header, creating parent directories as needed.
func (s *ProposalStore) WriteProposalsToCSV(proposals []models.Proposal, csvFile string) error {
	if proposals == nil {
		return fmt.Errorf("cannot write nil proposals to CSV")
	}

	s.logger.Info("Writing proposals to CSV file",
		logging.F(logging.FieldOutput, csvFile),
		logging.F(logging.FieldCount, len(proposals)))

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, models.PermissionExportFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = s.Delimiter

	if err := gocsv.MarshalCSV(proposals, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
